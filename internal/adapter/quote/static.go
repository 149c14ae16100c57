package quote

import (
	"errors"
	mrand "math/rand/v2"
	"sync"
)

var ErrEmpty = errors.New("responses must not be empty")

// Static picks uniformly from a fixed list. The list is never modified after
// construction, so Random is safe for concurrent use.
type Static struct {
	list []string

	mu sync.Mutex
	r  *mrand.Rand
}

// Builtin is used when no quotes file is configured.
var Builtin = []string{
	"“Do. Or do not. There is no try.” – Yoda",
	"“Simplicity is the soul of efficiency.” – Austin Freeman",
	"“Programs must be written for people to read.” – Harold Abelson",
	"“Premature optimization is the root of all evil.” – Donald Knuth",
	"“Talk is cheap. Show me the code.” – Linus Torvalds",
}

func NewStatic(list []string) (*Static, error) {
	return NewStaticWith(list, nil)
}

// NewStaticWith accepts a seeded source for tests.
func NewStaticWith(list []string, r *mrand.Rand) (*Static, error) {
	if len(list) == 0 {
		return nil, ErrEmpty
	}
	cp := make([]string, len(list))
	copy(cp, list)
	return &Static{list: cp, r: r}, nil
}

func (s *Static) Len() int { return len(s.list) }

func (s *Static) Random() string {
	if s.r == nil {
		return s.list[mrand.IntN(len(s.list))]
	}
	s.mu.Lock()
	i := s.r.IntN(len(s.list))
	s.mu.Unlock()
	return s.list[i]
}
