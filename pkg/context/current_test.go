package context

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurrent(t *testing.T) {
	current := NewCurrent()
	current.Set(RequestIDKey, "abc")
	current.Set("attempt", 2)

	id, ok := current.GetString(RequestIDKey)
	assert.True(t, ok)
	assert.Equal(t, "abc", id)

	_, ok = current.GetString("attempt")
	assert.False(t, ok)

	assert.Equal(t, 2, current.Get("attempt"))
	assert.Nil(t, current.Get("missing"))
}

func TestCurrentTravelsInContext(t *testing.T) {
	assert.Empty(t, RequestID(context.Background()))

	current := NewCurrent()
	current.Set(RequestIDKey, "req-1")

	ctx := WithCurrent(context.Background(), current)

	found, ok := FromContext(ctx)
	assert.True(t, ok)
	assert.Same(t, current, found)
	assert.Equal(t, "req-1", RequestID(ctx))
	assert.Same(t, current, GetCurrent(ctx))
	assert.NotSame(t, current, GetCurrent(context.Background()))
}

func TestCurrentConcurrentAccess(t *testing.T) {
	current := NewCurrent()

	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()
			current.Set("key", i)
			current.Get("key")
		}()
	}

	wg.Wait()

	assert.NotNil(t, current.Get("key"))
}
