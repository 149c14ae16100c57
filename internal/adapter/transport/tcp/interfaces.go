package tcp

import (
	"context"

	"github.com/dayanaadylkhanova/tcp-wow/internal/entity"
	"github.com/dayanaadylkhanova/tcp-wow/internal/service"
)

//go:generate mockgen -source=interfaces.go -destination=./server_mock.go -package=tcp

type PoW interface {
	NewChallenge(difficulty uint8) (entity.Challenge, error)
	Verify(ch entity.Challenge, sol entity.Solution) error
}

type Quote interface {
	Random() string
	Len() int
}

type Solver interface {
	SolveContext(ctx context.Context) (service.SolvingResult, error)
}
