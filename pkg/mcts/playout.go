package mcts

import (
	"fmt"
	"math/rand"

	"github.com/IlikeChooros/super-ttt/pkg/uttt"
)

// Result of a finished game, from X's perspective
type Outcome int8

const (
	OWins Outcome = -1
	Draw  Outcome = 0
	XWins Outcome = 1
)

// Convert a terminal game state into an outcome, panics if the game is still in progress
func OutcomeOf(state uttt.GameState) Outcome {
	switch state {
	case uttt.XWon:
		return XWins
	case uttt.OWon:
		return OWins
	case uttt.Tie:
		return Draw
	}
	panic(fmt.Sprintf("[MCTS] OutcomeOf: game is not finished (%v)", state))
}

// Sign of the outcome as seen by given player
func perspective(p uttt.Player) int32 {
	if p == uttt.O {
		return -1
	}
	return 1
}

func (o Outcome) String() string {
	switch o {
	case XWins:
		return "X wins"
	case OWins:
		return "O wins"
	}
	return "draw"
}

// Play uniformly random legal moves from 'start' until the game ends.
// Returns every state visited, 'start' first and the terminal state last,
// along with the final outcome.
func Simulate(start uttt.Game, r *rand.Rand) ([]uttt.Game, Outcome) {
	path := make([]uttt.Game, 1, 1+uttt.BoardSize*uttt.BoardSize*uttt.BoardSize*uttt.BoardSize)
	path[0] = start

	state := start
	for {
		moves, err := state.LegalMoves()
		if err != nil {
			// Game over
			return path, OutcomeOf(state.Winner())
		}

		next, err := state.ApplyMove(moves.Slice()[r.Intn(moves.Size())])
		if err != nil {
			panic(fmt.Sprintf("[MCTS] playout: generated move was rejected: %v", err))
		}

		state = next
		path = append(path, state)
	}
}
