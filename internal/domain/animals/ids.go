package animals

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// UUIDGenerator sirve para backends reales (sin colisiones entre procesos).
type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string { return uuid.NewString() }

// Sequence genera ids "<prefix><n>" monótonos. Es lo que usa el stub en memoria.
type Sequence struct {
	mu     sync.Mutex
	prefix string
	next   int
}

func NewSequence(prefix string, next int) *Sequence {
	if next < 1 {
		next = 1
	}
	return &Sequence{prefix: prefix, next: next}
}

func (s *Sequence) NewID() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := fmt.Sprintf("%s%d", s.prefix, s.next)
	s.next++
	return id
}
