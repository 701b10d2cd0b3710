package friend

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
)

// IDGenerator produces identifiers for new friends
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator generates random UUIDv4 identifiers
type UUIDGenerator struct{}

// NewID returns a new random UUID string
func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// SequenceGenerator generates monotonically increasing identifiers.
// It is deterministic, which makes it the generator of choice in tests.
type SequenceGenerator struct {
	next int64
}

// NewSequenceGenerator creates a generator whose first id is start
func NewSequenceGenerator(start int64) *SequenceGenerator {
	return &SequenceGenerator{next: start}
}

// NewID returns the next number in the sequence
func (g *SequenceGenerator) NewID() string {
	id := g.next
	g.next++
	return strconv.FormatInt(id, 10)
}

// NewGenerator returns the generator registered under name ("uuid" or "sequence")
func NewGenerator(name string) (IDGenerator, error) {
	switch name {
	case "", "uuid":
		return UUIDGenerator{}, nil
	case "sequence":
		return NewSequenceGenerator(1), nil
	default:
		return nil, fmt.Errorf("unknown id strategy: %s", name)
	}
}
