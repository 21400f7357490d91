package services

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

const DefaultOrderIDPrefix = "ORD-"

// OrderIDGenerator issues order ids. Implementations state their own
// uniqueness guarantee.
type OrderIDGenerator interface {
	NewOrderID() string
}

// UUIDGenerator issues Prefix + UUIDv7. Ids sort by creation time and carry
// 74 random bits, so collisions are negligible across processes.
type UUIDGenerator struct {
	Prefix string
}

// NewOrderID panics only if the system random source fails, like uuid.New.
func (g UUIDGenerator) NewOrderID() string {
	return g.Prefix + uuid.Must(uuid.NewV7()).String()
}

// SequenceGenerator issues Prefix + a zero-padded counter. Ids never repeat
// within one generator.
type SequenceGenerator struct {
	Prefix string
	next   atomic.Uint64
}

func NewSequenceGenerator(prefix string) *SequenceGenerator {
	return &SequenceGenerator{Prefix: prefix}
}

func (g *SequenceGenerator) NewOrderID() string {
	return fmt.Sprintf("%s%06d", g.Prefix, g.next.Add(1))
}
