package summarycache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCacheWithoutRedis(t *testing.T) {
	cache := New(nil)
	ctx := context.Background()

	// no Redis: store is a silent no-op, read is always empty
	assert.NoError(t, cache.Store(ctx, "latest synthesis"))
	assert.Equal(t, "", cache.Latest(ctx))
}
