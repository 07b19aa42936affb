// Package orderid builds order identifiers of the form
// ORDER_<unix millis>_<4-digit suffix>.
//
// IDs are not guaranteed unique: two calls in the same millisecond can draw
// the same suffix. Callers that persist IDs must handle the collision.
package orderid

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"sync"
	"time"

	"adminpanel/internal/clock"
)

const (
	Prefix      = "ORDER"
	SuffixRange = 10000
)

var ErrMalformed = errors.New("malformed order id")

type ID struct {
	Timestamp time.Time
	Suffix    int
}

func (id ID) String() string {
	return Format(id.Timestamp, id.Suffix)
}

type Generator struct {
	mu    sync.Mutex
	clock clock.Clock
	rnd   *rand.Rand
}

func New() *Generator {
	return NewWithSource(clock.NewSystem(), rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
}

func NewWithSource(c clock.Clock, rnd *rand.Rand) *Generator {
	return &Generator{clock: c, rnd: rnd}
}

func (g *Generator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	return Format(g.clock.Now(), g.rnd.IntN(SuffixRange))
}

func Format(ts time.Time, suffix int) string {
	return fmt.Sprintf("%s_%d_%04d", Prefix, ts.UnixMilli(), suffix)
}

func Parse(s string) (ID, error) {
	parts := strings.Split(s, "_")
	if len(parts) != 3 || parts[0] != Prefix {
		return ID{}, fmt.Errorf("%w: %q", ErrMalformed, s)
	}
	if !allDigits(parts[1]) || len(parts[2]) != 4 || !allDigits(parts[2]) {
		return ID{}, fmt.Errorf("%w: %q", ErrMalformed, s)
	}

	ms, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return ID{}, fmt.Errorf("%w: timestamp: %v", ErrMalformed, err)
	}
	suffix, _ := strconv.Atoi(parts[2])

	return ID{Timestamp: time.UnixMilli(ms).UTC(), Suffix: suffix}, nil
}

func Valid(s string) bool {
	_, err := Parse(s)
	return err == nil
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
