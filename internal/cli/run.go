// Package cli implements the shopflow command behaviors: the scripted demo
// flow, the interactive mode, and receipt persistence wiring.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/shopflow/shopflow/internal/logging"
	"github.com/shopflow/shopflow/pkg/adapters/redis"
	"github.com/shopflow/shopflow/pkg/catalogue"
	"github.com/shopflow/shopflow/pkg/observability"
	"github.com/shopflow/shopflow/pkg/ports"
	"github.com/shopflow/shopflow/pkg/shop"
)

// RunOptions contains all the configuration for the run command.
type RunOptions struct {
	CataloguePath string
	SessionID     string
	RedisURL      string
	MetricsAddr   string
	JSONLogs      bool
	Debug         bool
	NoColor       bool
	Interactive   bool

	// The three demo branches, mirroring the original driver's booleans.
	LeaveEarly   bool // Browsing -> leave without shopping
	AbandonCart  bool // Shopping -> clear the cart and leave
	ForgotWallet bool // Checkout -> cancel, clear, leave

	// Out and In default to stdout/stdin; tests override them.
	Out io.Writer
	In  io.Reader

	// Store overrides the receipt store; when nil, one is built from
	// RedisURL (or receipts are simply not persisted).
	Store ports.ReceiptStore
}

// Execute runs the shopping flow according to the options.
func Execute(ctx context.Context, opts RunOptions) error {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.In == nil {
		opts.In = os.Stdin
	}

	logger := newLogger(opts)

	items, err := catalogue.Load(opts.CataloguePath)
	if err != nil {
		return err
	}

	store := opts.Store
	if store == nil && opts.RedisURL != "" {
		s, err := redis.NewFromURL(opts.RedisURL)
		if err != nil {
			return err
		}
		store = s
	}

	sessionID := opts.SessionID
	if sessionID == "" {
		sessionID = time.Now().UTC().Format("20060102T150405")
	}
	recorder := shop.NewRecorder(sessionID)

	shopOpts := []shop.Option{
		shop.WithOutput(NewPresenter(opts.Out, opts.NoColor)),
		shop.WithLogger(logger),
		shop.WithHooks(recorder.Hooks()),
	}

	if opts.MetricsAddr != "" {
		reg := prometheus.NewRegistry()
		metrics := observability.NewMetrics(reg)
		shopOpts = append(shopOpts, shop.WithHooks(metrics.Hooks()))
		go func() {
			logger.Info("metrics listener starting", "addr", opts.MetricsAddr)
			if err := http.ListenAndServe(opts.MetricsAddr, observability.NewHandler(reg)); err != nil {
				logger.Error("metrics listener stopped", "error", err)
			}
		}()
	}

	if opts.Interactive {
		err = runInteractive(opts.In, opts.Out, shopOpts)
	} else {
		runScripted(opts, items, shopOpts)
	}
	if err != nil {
		return err
	}

	if store != nil {
		receipt := recorder.Receipt()
		if err := store.Save(ctx, receipt); err != nil {
			return fmt.Errorf("failed to save receipt %s: %w", sessionID, err)
		}
		logger.Info("receipt saved", "session", sessionID, "paid", receipt.Paid, "items", len(receipt.Items))
	}
	return nil
}

// runScripted replays the classic demo: the first catalogue item moves the
// customer from Browsing to Shopping, then even items are added and odd items
// trigger a pop. The three branch flags pick one of the alternative endings.
func runScripted(opts RunOptions, items []shop.ItemID, shopOpts []shop.Option) {
	browsing := shop.VisitSite(shopOpts...)

	if opts.LeaveEarly {
		browsing.Leave()
		return
	}

	shopping := browsing.AddItem(items[0])
	for _, item := range items[1:] {
		if item%2 == 0 {
			shopping = shopping.AddItem(item)
		} else {
			shopping = shopping.PopItem()
		}
	}

	if opts.AbandonCart {
		shopping.ClearCart().Leave()
		return
	}

	checkout := shopping.ProceedToCheckout()

	if opts.ForgotWallet {
		checkout.CancelCheckout().ClearCart().Leave()
		return
	}

	checkout.FinalisePayment()
}

func newLogger(opts RunOptions) *slog.Logger {
	level := slog.LevelInfo
	if opts.Debug {
		level = slog.LevelDebug
	}
	if opts.JSONLogs {
		return logging.NewJSON(level)
	}
	return logging.New(level)
}
