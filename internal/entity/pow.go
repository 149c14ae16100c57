package entity

import (
	"encoding/binary"
	"errors"
	"fmt"
	"unicode/utf8"
)

const (
	ValueSize         = 16
	SolutionSize      = 16
	ChallengeSize     = 1 + ValueSize
	SolutionStateSize = 4
	// LengthPrefixSize is the width of the varsize frame prefix, fixed regardless of host word size.
	LengthPrefixSize = 8

	DefaultDifficulty uint8 = 4
	// MaxDifficulty is the number of nibbles in a SHA-256 digest.
	MaxDifficulty uint8 = 64
)

var ErrMalformed = errors.New("malformed message")

// Challenge is laid out on the wire as difficulty followed by the raw value bytes.
type Challenge struct {
	Difficulty uint8
	Value      [ValueSize]byte
}

func (c Challenge) MarshalBinary() ([]byte, error) {
	out := make([]byte, ChallengeSize)
	out[0] = c.Difficulty
	copy(out[1:], c.Value[:])
	return out, nil
}

func (c *Challenge) UnmarshalBinary(b []byte) error {
	if len(b) != ChallengeSize {
		return fmt.Errorf("%w: challenge is %d bytes, want %d", ErrMalformed, len(b), ChallengeSize)
	}
	c.Difficulty = b[0]
	copy(c.Value[:], b[1:])
	return nil
}

type Solution [SolutionSize]byte

func (s Solution) MarshalBinary() ([]byte, error) {
	out := make([]byte, SolutionSize)
	copy(out, s[:])
	return out, nil
}

func (s *Solution) UnmarshalBinary(b []byte) error {
	if len(b) != SolutionSize {
		return fmt.Errorf("%w: solution is %d bytes, want %d", ErrMalformed, len(b), SolutionSize)
	}
	copy(s[:], b)
	return nil
}

type SolutionState uint32

const (
	Accepted SolutionState = iota
	Rejected
)

func (s SolutionState) String() string {
	switch s {
	case Accepted:
		return "accepted"
	case Rejected:
		return "rejected"
	default:
		return "unknown"
	}
}

func (s SolutionState) MarshalBinary() ([]byte, error) {
	if s != Accepted && s != Rejected {
		return nil, fmt.Errorf("%w: solution state %d", ErrMalformed, uint32(s))
	}
	return binary.LittleEndian.AppendUint32(nil, uint32(s)), nil
}

func (s *SolutionState) UnmarshalBinary(b []byte) error {
	if len(b) != SolutionStateSize {
		return fmt.Errorf("%w: solution state is %d bytes, want %d", ErrMalformed, len(b), SolutionStateSize)
	}
	v := SolutionState(binary.LittleEndian.Uint32(b))
	if v != Accepted && v != Rejected {
		return fmt.Errorf("%w: unknown solution state %d", ErrMalformed, uint32(v))
	}
	*s = v
	return nil
}

// Response is the quote text delivered after an accepted solution.
type Response string

func (r Response) MarshalBinary() ([]byte, error) {
	return []byte(r), nil
}

func (r *Response) UnmarshalBinary(b []byte) error {
	if !utf8.Valid(b) {
		return fmt.Errorf("%w: response is not valid utf-8", ErrMalformed)
	}
	*r = Response(b)
	return nil
}
