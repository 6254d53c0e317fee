package cache

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"marketplace/internal/domain/entity"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRedis implements the three commands the cache issues on top of an embedded Cmdable
// that panics if anything else is called.
type fakeRedis struct {
	redis.Cmdable
	store  map[string]string
	ttls   map[string]time.Duration
	getErr error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{store: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	cmd := redis.NewStringCmd(ctx, "get", key)
	if f.getErr != nil {
		cmd.SetErr(f.getErr)
		return cmd
	}
	v, ok := f.store[key]
	if !ok {
		cmd.SetErr(redis.Nil)
		return cmd
	}
	cmd.SetVal(v)

	return cmd
}

func (f *fakeRedis) Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	cmd := redis.NewStatusCmd(ctx, "set", key)
	switch v := value.(type) {
	case []byte:
		f.store[key] = string(v)
	case string:
		f.store[key] = v
	}
	f.ttls[key] = expiration
	cmd.SetVal("OK")

	return cmd
}

func (f *fakeRedis) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	cmd := redis.NewIntCmd(ctx, "del")
	var n int64
	for _, k := range keys {
		if _, ok := f.store[k]; ok {
			delete(f.store, k)
			n++
		}
	}
	cmd.SetVal(n)

	return cmd
}

func TestRedisPublicationCache_RoundTrip(t *testing.T) {
	fake := newFakeRedis()
	c := NewRedisPublicationCache(fake, time.Minute)
	ctx := context.Background()

	miss, err := c.Get(ctx, 3)
	require.NoError(t, err)
	assert.Nil(t, miss)

	publication := &entity.Publication{ID: 3, Title: "Bicicleta", Price: 1500, Category: &entity.Category{ID: 1, Name: "Deportes"}}
	require.NoError(t, c.Set(ctx, publication))
	assert.Equal(t, time.Minute, fake.ttls["publication:3"])

	hit, err := c.Get(ctx, 3)
	require.NoError(t, err)
	require.NotNil(t, hit)
	assert.Equal(t, "Bicicleta", hit.Title)
	assert.Equal(t, "Deportes", hit.Category.Name)

	require.NoError(t, c.Delete(ctx, 3))
	miss, err = c.Get(ctx, 3)
	require.NoError(t, err)
	assert.Nil(t, miss)
}

func TestRedisPublicationCache_Errors(t *testing.T) {
	fake := newFakeRedis()
	c := NewRedisPublicationCache(fake, 0)
	ctx := context.Background()

	fake.store["publication:9"] = "{not json"
	_, err := c.Get(ctx, 9)
	var syntaxErr *json.SyntaxError
	assert.ErrorAs(t, err, &syntaxErr)

	fake.getErr = errors.New("connection reset")
	_, err = c.Get(ctx, 9)
	assert.Error(t, err)
}

func TestNoopPublicationCache(t *testing.T) {
	c := noopPublicationCache{}
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, &entity.Publication{ID: 1}))
	got, err := c.Get(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, got)
}
