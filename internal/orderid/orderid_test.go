package orderid

import (
	"math/rand/v2"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adminpanel/internal/clock"
)

var idPattern = regexp.MustCompile(`^ORDER_\d+_\d{4}$`)

func TestGenerator_Format(t *testing.T) {
	gen := New()
	for i := 0; i < 1000; i++ {
		id := gen.Next()
		require.Regexp(t, idPattern, id)

		parsed, err := Parse(id)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, parsed.Suffix, 0)
		assert.Less(t, parsed.Suffix, SuffixRange)
	}
}

func TestGenerator_TimestampNonDecreasing(t *testing.T) {
	gen := New()
	var last int64
	for i := 0; i < 500; i++ {
		parts := strings.Split(gen.Next(), "_")
		ms, err := strconv.ParseInt(parts[1], 10, 64)
		require.NoError(t, err)
		require.GreaterOrEqual(t, ms, last)
		last = ms
	}
}

func TestGenerator_UsesClock(t *testing.T) {
	now := time.Date(2025, 3, 4, 5, 6, 7, 8_000_000, time.UTC)
	fc := clock.NewFixed(now)
	gen := NewWithSource(fc, rand.New(rand.NewPCG(1, 2)))

	id := gen.Next()
	assert.True(t, strings.HasPrefix(id, "ORDER_"+strconv.FormatInt(now.UnixMilli(), 10)+"_"))

	fc.Advance(time.Second)
	parsed, err := Parse(gen.Next())
	require.NoError(t, err)
	assert.Equal(t, now.Add(time.Second).UnixMilli(), parsed.Timestamp.UnixMilli())
}

func TestGenerator_Concurrent(t *testing.T) {
	gen := New()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				assert.Regexp(t, idPattern, gen.Next())
			}
		}()
	}
	wg.Wait()
}

func TestFormat_ZeroPadsSuffix(t *testing.T) {
	ts := time.UnixMilli(1700000000123)
	assert.Equal(t, "ORDER_1700000000123_0007", Format(ts, 7))
	assert.Equal(t, "ORDER_1700000000123_0000", Format(ts, 0))
	assert.Equal(t, "ORDER_1700000000123_9999", Format(ts, 9999))
}

func TestParse(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		id, err := Parse("ORDER_1700000000123_0042")
		require.NoError(t, err)
		assert.Equal(t, int64(1700000000123), id.Timestamp.UnixMilli())
		assert.Equal(t, 42, id.Suffix)
		assert.Equal(t, "ORDER_1700000000123_0042", id.String())
	})

	for _, s := range []string{
		"",
		"ORDER_",
		"ORDER_123",
		"ORDER_123_42",
		"ORDER_123_00042",
		"ORDER_abc_0042",
		"ORDER_123_00a2",
		"order_123_0042",
		"ORDER_123_0042_1",
		"ORDER__0042",
	} {
		t.Run("malformed "+s, func(t *testing.T) {
			_, err := Parse(s)
			require.ErrorIs(t, err, ErrMalformed)
			assert.False(t, Valid(s))
		})
	}
}
