package context

import (
	"context"
	"sync"
)

const (
	RequestIDKey = "request_id"
	UserAgentKey = "user_agent"
	IPAddressKey = "ip_address"
	MethodKey    = "method"
	PathKey      = "path"
)

// Current is the request scoped bag of values. It only ever travels inside
// a request context.
type Current struct {
	mu   sync.RWMutex
	data map[string]interface{}
}

func NewCurrent() *Current {
	return &Current{
		data: make(map[string]interface{}),
	}
}

func (c *Current) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = value
}

func (c *Current) Get(key string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.data[key]
}

func (c *Current) GetString(key string) (string, bool) {
	value := c.Get(key)
	if value == nil {
		return "", false
	}
	if str, ok := value.(string); ok {
		return str, true
	}
	return "", false
}

// RequestID returns the id assigned to the request, or "" when ctx has none.
func RequestID(ctx context.Context) string {
	if current, ok := FromContext(ctx); ok {
		id, _ := current.GetString(RequestIDKey)
		return id
	}

	return ""
}

type contextKey string

const currentKey contextKey = "current"

func WithCurrent(ctx context.Context, current *Current) context.Context {
	return context.WithValue(ctx, currentKey, current)
}

func FromContext(ctx context.Context) (*Current, bool) {
	current, ok := ctx.Value(currentKey).(*Current)
	return current, ok
}

func GetCurrent(ctx context.Context) *Current {
	if current, ok := FromContext(ctx); ok {
		return current
	}

	return NewCurrent()
}
