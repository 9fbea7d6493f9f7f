package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTTLGetSetMiss(t *testing.T) {
	c := New[string, int](50 * time.Millisecond)

	_, ok := c.Get("a")
	assert.False(t, ok)

	c.Set("a", 42)
	v, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 42, v)
}

func TestTTLExpires(t *testing.T) {
	c := New[string, int](10 * time.Millisecond)
	c.Set("a", 1)

	time.Sleep(20 * time.Millisecond)

	_, ok := c.Get("a")
	assert.False(t, ok)
}

func TestTTLInvalidate(t *testing.T) {
	c := New[string, int](time.Minute)
	c.Set("a", 1)
	c.Invalidate("a")

	_, ok := c.Get("a")
	assert.False(t, ok)
}

func TestTTLOverwriteResetsExpiry(t *testing.T) {
	c := New[string, int](20 * time.Millisecond)
	c.Set("a", 1)
	time.Sleep(15 * time.Millisecond)
	c.Set("a", 2)
	time.Sleep(15 * time.Millisecond)

	v, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 2, v)
}
