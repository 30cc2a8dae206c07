package bench

import (
	"fmt"
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/IlikeChooros/super-ttt/pkg/mcts"
	"github.com/IlikeChooros/super-ttt/pkg/uttt"
)

// A player in the arena, chooses the next position for the player to move
type Agent interface {
	Name() string
	Play(g uttt.Game) uttt.Game
	// Called before every new game
	Reset()
}

// Description of an agent, Budget <= 0 means a uniformly random player,
// otherwise an MCTS engine running 'Budget' iterations per move
type AgentSpec struct {
	Name   string
	Budget int
}

func (spec AgentSpec) String() string {
	if spec.Name != "" {
		return spec.Name
	}
	if spec.Budget <= 0 {
		return "random"
	}
	return fmt.Sprintf("mcts-%d", spec.Budget)
}

// Create a new agent, with its own random number generator
func (spec AgentSpec) New(seed int64, logger zerolog.Logger) Agent {
	if spec.Budget <= 0 {
		return &RandomAgent{name: spec.String(), rand: mcts.NewRand(seed)}
	}
	return &MCTSAgent{
		name:   spec.String(),
		budget: spec.Budget,
		engine: mcts.NewEngine(mcts.WithSeed(seed), mcts.WithLogger(logger)),
	}
}

type MCTSAgent struct {
	name   string
	budget int
	engine *mcts.Engine
}

func (a *MCTSAgent) Name() string { return a.name }
func (a *MCTSAgent) Reset()       { a.engine.Reset() }

func (a *MCTSAgent) Play(g uttt.Game) uttt.Game {
	return a.engine.Search(g, a.budget)
}

type RandomAgent struct {
	name string
	rand *rand.Rand
}

func (a *RandomAgent) Name() string { return a.name }
func (a *RandomAgent) Reset()       {}

func (a *RandomAgent) Play(g uttt.Game) uttt.Game {
	moves, err := g.LegalMoves()
	if err != nil {
		panic(fmt.Sprintf("RandomAgent: %v", err))
	}

	next, err := g.ApplyMove(moves.Slice()[a.rand.Intn(moves.Size())])
	if err != nil {
		panic(fmt.Sprintf("RandomAgent: generated move was rejected: %v", err))
	}
	return next
}
