package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/shopflow/shopflow/pkg/adapters/redis"
	"github.com/shopflow/shopflow/pkg/ports"
	"github.com/shopflow/shopflow/pkg/shop"
)

func newTestStore(t *testing.T, opts ...redis.Option) (*redis.Store, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err, "failed to start miniredis")
	t.Cleanup(mr.Close)

	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})
	return redis.NewFromClient(client, opts...), mr
}

func TestRedisStore_Contract(t *testing.T) {
	store, _ := newTestStore(t)
	ports.RunReceiptStoreContract(t, store)
}

func TestRedisStore_TTL(t *testing.T) {
	store, mr := newTestStore(t, redis.WithTTL(time.Minute))
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, shop.Receipt{SessionID: "ttl-test"}))

	// miniredis lets us fast-forward past the expiration.
	mr.FastForward(2 * time.Minute)

	_, err := store.Load(ctx, "ttl-test")
	require.ErrorIs(t, err, shop.ErrReceiptNotFound)
}

func TestRedisStore_Prefix(t *testing.T) {
	store, mr := newTestStore(t, redis.WithPrefix("custom:"))
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, shop.Receipt{SessionID: "abc"}))
	require.True(t, mr.Exists("custom:abc"))
}

func TestRedisStore_NewFromURL(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	store, err := redis.NewFromURL("redis://" + mr.Addr())
	require.NoError(t, err)
	require.NoError(t, store.Save(context.Background(), shop.Receipt{SessionID: "url"}))

	_, err = redis.NewFromURL("not-a-url")
	require.Error(t, err)
}
