// Package player defines the move-choice plug-in point and the built-in
// policies that implement it.
package player

import (
	"context"
	"sort"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Policy chooses one move from the legal moves of a position.
//
// ChooseMove must return an element of legal. The game never asks a policy
// to move in a terminal position, so an empty legal set is a sequencing bug
// and implementations panic with errors.ErrNoLegalMoves.
type Policy interface {
	Name() string
	ChooseMove(ctx context.Context, board chess.Board, legal []chess.Move) (chess.Move, error)
}

// Policy names accepted by New and by configuration.
const (
	HumanName   = "human"
	RandomName  = "random"
	FirstName   = "first"
	CaptureName = "capture"
)

// constructors builds the engine policies. Human players need an input
// source and are created with NewHuman.
var constructors = map[string]func(seed int64) Policy{
	RandomName:  func(seed int64) Policy { return NewRandom(seed) },
	FirstName:   func(int64) Policy { return FirstMove{} },
	CaptureName: func(seed int64) Policy { return NewCapturePreferring(seed) },
}

// New creates the engine policy registered under name. Randomised
// policies are seeded with seed.
func New(name string, seed int64) (Policy, error) {
	if name == HumanName {
		return nil, errors.Wrap(errors.ErrUnknownPolicy, "human players need an input source")
	}
	ctor, ok := constructors[name]
	if !ok {
		return nil, errors.Wrapf(errors.ErrUnknownPolicy, "%q", name)
	}
	return ctor(seed), nil
}

// Names returns every policy name, including human, sorted.
func Names() []string {
	names := []string{HumanName}
	for name := range constructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsKnown reports whether name is a registered policy name.
func IsKnown(name string) bool {
	if name == HumanName {
		return true
	}
	_, ok := constructors[name]
	return ok
}

// mustHaveMoves enforces the non-empty precondition of ChooseMove.
func mustHaveMoves(legal []chess.Move) {
	if len(legal) == 0 {
		panic(errors.ErrNoLegalMoves)
	}
}
