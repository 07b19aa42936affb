package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"adminpanel/internal/clock"
)

func TestTTL(t *testing.T) {
	fc := clock.NewFixed(time.Date(2025, 1, 2, 10, 0, 0, 0, time.UTC))
	c := NewTTL[int](fc, time.Minute)

	c.Set("a", 1)
	v, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	fc.Advance(59 * time.Second)
	_, ok = c.Get("a")
	assert.True(t, ok)

	fc.Advance(time.Second)
	_, ok = c.Get("a")
	assert.False(t, ok, "entry must expire exactly at ttl")

	c.Set("b", 2)
	assert.Equal(t, 1, c.Sweep(), "only the expired entry goes")
	assert.Equal(t, 0, c.Sweep())

	v, ok = c.Get("b")
	assert.True(t, ok)
	assert.Equal(t, 2, v)
}

func TestTTL_Delete(t *testing.T) {
	c := NewTTL[string](clock.NewSystem(), time.Hour)
	c.Set("k", "v")
	c.Delete("k")
	c.Delete("missing")

	_, ok := c.Get("k")
	assert.False(t, ok)
}
