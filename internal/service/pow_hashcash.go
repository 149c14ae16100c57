package service

import (
	"context"
	crand "crypto/rand"
	"crypto/sha256"
	"encoding"
	"encoding/binary"
	"errors"
	"fmt"
	mrand "math/rand/v2"

	"github.com/dayanaadylkhanova/tcp-wow/internal/entity"
)

var (
	ErrInvalidSolution = errors.New("pow invalid")
	ErrDifficultyRange = fmt.Errorf("difficulty must be in [0,%d]", entity.MaxDifficulty)
)

// ctxCheckEvery is how many attempts SolveContext makes between context checks.
const ctxCheckEvery = 1 << 12

type Hashcash struct{}

func NewHashcash() *Hashcash { return &Hashcash{} }

func (h *Hashcash) NewChallenge(difficulty uint8) (entity.Challenge, error) {
	if difficulty > entity.MaxDifficulty {
		return entity.Challenge{}, ErrDifficultyRange
	}
	ch := entity.Challenge{Difficulty: difficulty}
	if _, err := crand.Read(ch.Value[:]); err != nil {
		return entity.Challenge{}, fmt.Errorf("read random value: %w", err)
	}
	return ch, nil
}

// DefaultChallenge issues a challenge at entity.DefaultDifficulty.
func (h *Hashcash) DefaultChallenge() (entity.Challenge, error) {
	return h.NewChallenge(entity.DefaultDifficulty)
}

func (h *Hashcash) Verify(ch entity.Challenge, sol entity.Solution) error {
	if !NewSolverWith(ch, nil).IsValidSolution(sol) {
		return ErrInvalidSolution
	}
	return nil
}

// LeadingZeroNibbles counts zero hex digits from the start of digest, high
// nibble first, looking at no more than maxBytes bytes. The first non-zero
// nibble ends the scan.
func LeadingZeroNibbles(digest []byte, maxBytes int) int {
	n := 0
	for i, b := range digest {
		if i >= maxBytes {
			break
		}
		if b>>4 != 0 {
			return n
		}
		n++
		if b&0x0f != 0 {
			return n
		}
		n++
	}
	return n
}

type SolvingResult struct {
	Solution entity.Solution
	Attempts uint64
}

// Solver checks and searches solutions for a single challenge. The hash state
// seeded with the challenge value is computed once and restored per attempt.
type Solver struct {
	challenge entity.Challenge
	seeded    []byte
	rng       *mrand.Rand
}

func NewSolver(ch entity.Challenge) *Solver {
	var seed [16]byte
	if _, err := crand.Read(seed[:]); err != nil {
		// crypto/rand.Read is documented never to fail on supported platforms.
		panic(fmt.Sprintf("seed solver: %v", err))
	}
	r := mrand.New(mrand.NewPCG(binary.LittleEndian.Uint64(seed[:8]), binary.LittleEndian.Uint64(seed[8:])))
	return NewSolverWith(ch, r)
}

// NewSolverWith lets tests pin the candidate sequence. A nil r gives a
// solver that can only verify.
func NewSolverWith(ch entity.Challenge, r *mrand.Rand) *Solver {
	h := sha256.New()
	h.Write(ch.Value[:])
	seeded, err := h.(encoding.BinaryMarshaler).MarshalBinary()
	if err != nil {
		// sha256 digests always support state export.
		panic(fmt.Sprintf("sha256 state export: %v", err))
	}
	return &Solver{challenge: ch, seeded: seeded, rng: r}
}

func (s *Solver) Challenge() entity.Challenge { return s.challenge }

func (s *Solver) digest(sol entity.Solution) [sha256.Size]byte {
	h := sha256.New()
	if err := h.(encoding.BinaryUnmarshaler).UnmarshalBinary(s.seeded); err != nil {
		panic(fmt.Sprintf("sha256 state restore: %v", err))
	}
	h.Write(sol[:])
	var out [sha256.Size]byte
	h.Sum(out[:0])
	return out
}

func (s *Solver) IsValidSolution(sol entity.Solution) bool {
	d := s.digest(sol)
	limit := int(s.challenge.Difficulty)/2 + 1
	return LeadingZeroNibbles(d[:], limit) >= int(s.challenge.Difficulty)
}

// Solve draws random candidates until one is valid. It never gives up.
func (s *Solver) Solve() SolvingResult {
	res, _ := s.SolveContext(context.Background())
	return res
}

// SolveContext is Solve with cancellation; on ctx done it returns the attempts
// made so far together with ctx.Err().
func (s *Solver) SolveContext(ctx context.Context) (SolvingResult, error) {
	var (
		sol      entity.Solution
		attempts uint64
	)
	for {
		binary.LittleEndian.PutUint64(sol[:8], s.rng.Uint64())
		binary.LittleEndian.PutUint64(sol[8:], s.rng.Uint64())
		attempts++
		if s.IsValidSolution(sol) {
			return SolvingResult{Solution: sol, Attempts: attempts}, nil
		}
		if attempts%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return SolvingResult{Attempts: attempts}, err
			}
		}
	}
}
