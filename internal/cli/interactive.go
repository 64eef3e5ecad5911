package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopflow/shopflow/pkg/shop"
)

// repl drives the typestate machine from user input. At most one of the three
// slots is non-nil at any time; the machine itself stays fully type-checked
// and the repl only decides which typed value it is currently holding.
type repl struct {
	browsing *shop.Browsing
	shopping *shop.Shopping
	checkout *shop.Checkout
}

// runInteractive reads commands line by line until the flow terminates or
// input runs out. Unknown or currently-illegal commands print the set of
// commands the current state actually offers.
func runInteractive(in io.Reader, out io.Writer, shopOpts []shop.Option) error {
	browsing := shop.VisitSite(shopOpts...)
	r := &repl{browsing: &browsing}

	fmt.Fprintln(out, "Interactive mode. Type 'help' for commands.")

	scanner := bufio.NewScanner(in)
	for r.alive() {
		fmt.Fprintf(out, "%s> ", r.state())
		if !scanner.Scan() {
			break
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		cmd, args := fields[0], fields[1:]

		if cmd == "help" {
			fmt.Fprintf(out, "Available here: %s\n", strings.Join(r.commands(), ", "))
			continue
		}
		if err := r.apply(cmd, args); err != nil {
			fmt.Fprintf(out, "%v (available here: %s)\n", err, strings.Join(r.commands(), ", "))
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	// EOF with a live customer: end the flow cleanly so the value is not
	// abandoned mid-state.
	switch {
	case r.checkout != nil:
		r.checkout.CancelCheckout().ClearCart().Leave()
	case r.shopping != nil:
		r.shopping.ClearCart().Leave()
	case r.browsing != nil:
		r.browsing.Leave()
	}
	return nil
}

func (r *repl) alive() bool {
	return r.browsing != nil || r.shopping != nil || r.checkout != nil
}

func (r *repl) state() string {
	switch {
	case r.browsing != nil:
		return "browsing"
	case r.shopping != nil:
		return "shopping"
	case r.checkout != nil:
		return "checkout"
	default:
		return "done"
	}
}

func (r *repl) commands() []string {
	switch {
	case r.browsing != nil:
		return []string{"add <item>", "leave"}
	case r.shopping != nil:
		return []string{"add <item>", "pop", "clear", "checkout"}
	case r.checkout != nil:
		return []string{"cancel", "pay"}
	default:
		return nil
	}
}

func (r *repl) apply(cmd string, args []string) error {
	switch {
	case r.browsing != nil:
		b := *r.browsing
		switch cmd {
		case "add":
			item, err := parseItem(args)
			if err != nil {
				return err
			}
			r.browsing = nil
			s := b.AddItem(item)
			r.shopping = &s
		case "leave":
			r.browsing = nil
			b.Leave()
		default:
			return fmt.Errorf("unknown command %q", cmd)
		}

	case r.shopping != nil:
		s := *r.shopping
		switch cmd {
		case "add":
			item, err := parseItem(args)
			if err != nil {
				return err
			}
			next := s.AddItem(item)
			r.shopping = &next
		case "pop":
			next := s.PopItem()
			r.shopping = &next
		case "clear":
			r.shopping = nil
			b := s.ClearCart()
			r.browsing = &b
		case "checkout":
			r.shopping = nil
			c := s.ProceedToCheckout()
			r.checkout = &c
		default:
			return fmt.Errorf("unknown command %q", cmd)
		}

	case r.checkout != nil:
		c := *r.checkout
		switch cmd {
		case "cancel":
			r.checkout = nil
			s := c.CancelCheckout()
			r.shopping = &s
		case "pay":
			r.checkout = nil
			c.FinalisePayment()
		default:
			return fmt.Errorf("unknown command %q", cmd)
		}
	}
	return nil
}

func parseItem(args []string) (shop.ItemID, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("add takes exactly one item id")
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("item id must be a number, got %q", args[0])
	}
	return shop.ItemID(n), nil
}
