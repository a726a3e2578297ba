// Package idx mints the ULIDs used for record IDs, request IDs and the
// default stored file names.
package idx

import (
	"crypto/rand"
	"io"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// ID is a canonical 26 character ULID string. IDs sort by creation time.
type ID string

func (id ID) String() string { return string(id) }

// Time returns the millisecond timestamp embedded in id, or the zero time
// when id is not a ULID.
func (id ID) Time() time.Time {
	u, err := ulid.ParseStrict(string(id))
	if err != nil {
		return time.Time{}
	}
	return ulid.Time(u.Time()).UTC()
}

// Generator mints IDs from a monotonic entropy source. It is safe for
// concurrent use; IDs minted in the same millisecond still increase.
type Generator struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

func NewGenerator(src io.Reader) *Generator {
	return &Generator{entropy: ulid.Monotonic(src, 0)}
}

func (g *Generator) NewAt(t time.Time) ID {
	g.mu.Lock()
	defer g.mu.Unlock()
	return ID(ulid.MustNew(ulid.Timestamp(t), g.entropy).String())
}

var defaultGenerator = sync.OnceValue(func() *Generator {
	return NewGenerator(rand.Reader)
})

// New mints an ID for the current time.
func New() ID { return defaultGenerator().NewAt(time.Now()) }

// NewAt mints an ID for t.
func NewAt(t time.Time) ID { return defaultGenerator().NewAt(t) }
