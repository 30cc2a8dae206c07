package mcts

import "time"

type SearchStats struct {
	// Iterations run so far
	Cycles int
	// Number of states in the registry
	Size int
	// Deepest selection path (from the root) reached so far
	MaxDepth int
	Elapsed  time.Duration
	// Cycles per second
	Cps uint32
	// Set only in the 'on stop' callback
	BestMove string
}

// Listener function callback, will recieve current search statistics, like
// max depth of tree, number of iterations so far
type ListenerFunc func(SearchStats)

type StatsListener struct {
	// called every N full iterations
	onCycle ListenerFunc
	nCycles int // call 'onCycle' every N cycles

	// called once the search is done
	onStop ListenerFunc
}

func NewStatsListener() StatsListener {
	return StatsListener{nCycles: 1}
}

// Attach new on iteration callback, called every 'cycle interval' iterations
func (listener *StatsListener) OnCycle(onCycle ListenerFunc) *StatsListener {
	listener.onCycle = onCycle
	return listener
}

func (listener *StatsListener) SetCycleInterval(n int) *StatsListener {
	if n < 1 {
		n = 1
	}
	listener.nCycles = n
	return listener
}

// Attach 'on search end' callback
func (listener *StatsListener) OnStop(onStop ListenerFunc) *StatsListener {
	listener.onStop = onStop
	return listener
}

func (listener *StatsListener) invokeCycle(stats SearchStats) {
	if listener.onCycle != nil && stats.Cycles%max(listener.nCycles, 1) == 0 {
		listener.onCycle(stats)
	}
}

func (listener *StatsListener) invokeStop(stats SearchStats) {
	if listener.onStop != nil {
		listener.onStop(stats)
	}
}
