// Package redis provides a Redis-backed ReceiptStore so receipts survive the
// short-lived CLI process.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	backend "github.com/redis/go-redis/v9"

	"github.com/shopflow/shopflow/pkg/shop"
)

const defaultPrefix = "shopflow:receipt:"

// Store implements ports.ReceiptStore using Redis.
type Store struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

// Option configures the Store.
type Option func(*Store)

// WithTTL sets the expiration for stored receipts. Zero means no expiration.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		s.ttl = ttl
	}
}

// WithPrefix sets the key prefix for receipts.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// NewFromURL creates a store from a redis URL (redis://...).
func NewFromURL(url string, opts ...Option) (*Store, error) {
	cfg, err := backend.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	return NewFromClient(backend.NewClient(cfg), opts...), nil
}

// NewFromClient creates a store from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Store {
	store := &Store{
		client: client,
		prefix: defaultPrefix,
	}
	for _, opt := range opts {
		opt(store)
	}
	return store
}

// Save persists the receipt as JSON under prefix+sessionID.
func (s *Store) Save(ctx context.Context, receipt shop.Receipt) error {
	data, err := json.Marshal(receipt)
	if err != nil {
		return fmt.Errorf("failed to marshal receipt: %w", err)
	}
	if err := s.client.Set(ctx, s.prefix+receipt.SessionID, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis error saving receipt: %w", err)
	}
	return nil
}

// Load retrieves and decodes the receipt for a session ID.
func (s *Store) Load(ctx context.Context, sessionID string) (shop.Receipt, error) {
	data, err := s.client.Get(ctx, s.prefix+sessionID).Bytes()
	if errors.Is(err, backend.Nil) {
		return shop.Receipt{}, shop.ErrReceiptNotFound
	}
	if err != nil {
		return shop.Receipt{}, fmt.Errorf("redis error loading receipt: %w", err)
	}

	var receipt shop.Receipt
	if err := json.Unmarshal(data, &receipt); err != nil {
		return shop.Receipt{}, fmt.Errorf("failed to unmarshal receipt %s: %w", sessionID, err)
	}
	return receipt, nil
}

// Delete removes the receipt for a session ID.
func (s *Store) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, s.prefix+sessionID).Err(); err != nil {
		return fmt.Errorf("redis error deleting receipt: %w", err)
	}
	return nil
}

// List scans for stored session IDs under the configured prefix.
func (s *Store) List(ctx context.Context) ([]string, error) {
	var (
		sessions []string
		cursor   uint64
	)
	for {
		keys, next, err := s.client.Scan(ctx, cursor, s.prefix+"*", 100).Result()
		if err != nil {
			return nil, fmt.Errorf("redis error listing receipts: %w", err)
		}
		for _, key := range keys {
			sessions = append(sessions, strings.TrimPrefix(key, s.prefix))
		}
		cursor = next
		if cursor == 0 {
			return sessions, nil
		}
	}
}
