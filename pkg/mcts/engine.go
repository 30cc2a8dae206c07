package mcts

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/IlikeChooros/super-ttt/pkg/uttt"
)

// Monte Carlo tree search over ultimate tic tac toe positions.
// Statistics are stored per game state in a Registry, so transpositions
// share their visits and scores. Not safe for concurrent use, run one engine per goroutine.
type Engine struct {
	registry         *Registry
	rand             *rand.Rand
	explorationParam float64
	logger           zerolog.Logger
	listener         StatsListener
	timer            *_Timer
	stats            SearchStats

	// reused between iterations
	path    []NodeID
	untried []uttt.Game
}

type Option func(*Engine)

// Seed of the engine's random number generator, by default SeedGeneratorFn() is used
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.rand = NewRand(seed)
	}
}

func WithExplorationParam(c float64) Option {
	return func(e *Engine) {
		e.explorationParam = max(0.0, c)
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

func WithListener(listener StatsListener) Option {
	return func(e *Engine) {
		e.listener = listener
	}
}

// Use an existing registry, e.g. to keep the statistics between the moves of one game
func WithRegistry(registry *Registry) Option {
	return func(e *Engine) {
		if registry != nil {
			e.registry = registry
		}
	}
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		explorationParam: ExplorationParam,
		logger:           zerolog.Nop(),
		listener:         NewStatsListener(),
		timer:            _NewTimer(),
	}

	for _, opt := range opts {
		opt(e)
	}

	if e.registry == nil {
		e.registry = NewRegistry()
	}
	if e.rand == nil {
		e.rand = NewRand(SeedGeneratorFn())
	}
	return e
}

// Run a search with a fresh engine and registry
func Search(root uttt.Game, budget int) uttt.Game {
	return NewEngine().Search(root, budget)
}

// Discard every collected statistic
func (e *Engine) Reset() {
	e.registry = NewRegistry()
	e.stats = SearchStats{}
}

func (e *Engine) Registry() *Registry {
	return e.registry
}

func (e *Engine) SetListener(listener StatsListener) {
	e.listener = listener
}

// Statistics of the last search
func (e *Engine) Stats() SearchStats {
	return e.stats
}

// Run exactly 'budget' iterations from 'root' and return the state reached
// by the most promising move of the player to move. Panics if the budget
// is not positive or the root is already finished.
func (e *Engine) Search(root uttt.Game, budget int) uttt.Game {
	if budget <= 0 {
		panic(fmt.Sprintf("[MCTS] Search: budget must be positive, got %d", budget))
	}
	if state := root.Winner(); state.Terminal() {
		panic(fmt.Sprintf("[MCTS] Search: root position is already finished (%v)", state))
	}

	rootID := e.registry.GetOrCreate(root)
	e.stats = SearchStats{}
	e.timer.Reset()

	for range budget {
		depth := e.iteration(rootID)

		e.stats.Cycles++
		e.stats.MaxDepth = max(e.stats.MaxDepth, depth)
		if e.listener.onCycle != nil {
			e.listener.invokeCycle(e.snapshot())
		}
	}

	bestID := e.bestChild(rootID)
	best := e.registry.State(bestID)

	e.stats = e.snapshot()
	if m, ok := root.MoveTo(best); ok {
		e.stats.BestMove = m.String()
	}
	e.listener.invokeStop(e.stats)

	e.logger.Debug().
		Int("cycles", e.stats.Cycles).
		Int("size", e.stats.Size).
		Int("maxdepth", e.stats.MaxDepth).
		Uint32("cps", e.stats.Cps).
		Str("move", e.stats.BestMove).
		Int32("visits", e.registry.Visits(bestID)).
		Int32("score", e.registry.Score(bestID)).
		Msg("search done")
	return best
}

func (e *Engine) snapshot() SearchStats {
	return SearchStats{
		Cycles:   e.stats.Cycles,
		Size:     e.registry.Len(),
		MaxDepth: e.stats.MaxDepth,
		Elapsed:  e.timer.Elapsed(),
		Cps:      e.timer.Rate(e.stats.Cycles),
	}
}

// One full iteration: selection, expansion, simulation and backpropagation.
// Returns the depth of the expanded node.
func (e *Engine) iteration(rootID NodeID) int {
	reg := e.registry
	path := append(e.path[:0], rootID)

	// Selection, walk down the fully expanded nodes
	node := rootID
	for !reg.Outcome(node).Terminal() && reg.FullyExpanded(node) {
		node = e.selectChild(node)
		path = append(path, node)
	}

	var outcome Outcome
	depth := len(path) - 1
	if state := reg.Outcome(node); state.Terminal() {
		outcome = OutcomeOf(state)
	} else {
		child := e.expand(node)
		path = append(path, child)
		depth++

		// Simulation, the first state of the playout is the child itself
		playout, result := Simulate(reg.State(child), e.rand)
		for _, state := range playout[1:] {
			path = append(path, reg.GetOrCreate(state))
		}
		outcome = result
	}

	// Backpropagation
	for i, id := range path {
		if i > 0 {
			reg.RecordChild(path[i-1], id)
		}
		reg.AddVisit(id)
		reg.AddScore(id, outcome)
	}

	e.path = path
	return depth
}

// Pick the child with the highest UCB1 value, if all of them are fully expanded
// use the plain formula, so that the descent continues
func (e *Engine) selectChild(parent NodeID) NodeID {
	reg := e.registry
	mover := reg.State(parent).Turn()
	parentVisits := reg.Visits(parent)
	children := reg.Children(parent)

	best, bestValue := noNode, math.Inf(-1)
	for _, child := range children {
		value := ucb1(reg, child, parentVisits, mover, e.explorationParam)
		if best == noNode || value > bestValue {
			best, bestValue = child, value
		}
	}

	if best == noNode {
		panic(fmt.Sprintf("[MCTS] selection: fully expanded node %d has no children", parent))
	}

	if math.IsInf(bestValue, -1) {
		best, bestValue = noNode, math.Inf(-1)
		for _, child := range children {
			value := ucbValue(reg, child, parentVisits, mover, e.explorationParam)
			if best == noNode || value > bestValue {
				best, bestValue = child, value
			}
		}
	}
	return best
}

// Choose uniformly at random one of the legal successors, that was not yet
// recorded as a child of 'node', and record it
func (e *Engine) expand(node NodeID) NodeID {
	reg := e.registry
	state := reg.State(node)

	moves, err := state.LegalMoves()
	if err != nil {
		panic(fmt.Sprintf("[MCTS] expansion: %v", err))
	}

	untried := e.untried[:0]
	for _, m := range moves.Slice() {
		child, err := state.ApplyMove(m)
		if err != nil {
			panic(fmt.Sprintf("[MCTS] expansion: generated move was rejected: %v", err))
		}

		if id, ok := reg.Lookup(child); !ok || !reg.HasChild(node, id) {
			untried = append(untried, child)
		}
	}
	e.untried = untried

	if len(untried) == 0 {
		panic(fmt.Sprintf("[MCTS] expansion: no untried moves left in\n%v", state))
	}

	childID := reg.GetOrCreate(untried[e.rand.Intn(len(untried))])
	reg.RecordChild(node, childID)
	return childID
}

// Child of the root with the best average score for the root's player to move,
// ties go to the child discovered first
func (e *Engine) bestChild(rootID NodeID) NodeID {
	reg := e.registry
	sign := float64(perspective(reg.State(rootID).Turn()))

	best, bestValue := noNode, math.Inf(-1)
	for _, child := range reg.Children(rootID) {
		data := reg.Data(child)
		if data.Visits == 0 {
			continue
		}

		value := sign * float64(data.Score) / float64(data.Visits)
		if best == noNode || value > bestValue {
			best, bestValue = child, value
		}
	}

	if best == noNode {
		panic("[MCTS] Search: root has no visited children")
	}
	return best
}
