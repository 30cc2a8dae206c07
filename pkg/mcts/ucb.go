package mcts

import (
	"math"

	"github.com/IlikeChooros/super-ttt/pkg/uttt"
)

// UCB1 value of 'child' as seen by the player to move in 'parent':
//
//	+Inf if the child is not registered or has no visits,
//	-Inf if the child is fully expanded (or terminal),
//	otherwise m*score/visits + sqrt(c * log2(parentVisits) / visits),
//
// where m = +1 if X moves in 'parent', -1 if O does.
func UCB1(reg *Registry, parent, child uttt.Game, c float64) float64 {
	childID, ok := reg.Lookup(child)
	if !ok {
		return math.Inf(1)
	}

	var parentVisits int32
	if parentID, ok := reg.Lookup(parent); ok {
		parentVisits = reg.Visits(parentID)
	}
	return ucb1(reg, childID, parentVisits, parent.Turn(), c)
}

func ucb1(reg *Registry, child NodeID, parentVisits int32, mover uttt.Player, c float64) float64 {
	if reg.Visits(child) == 0 {
		return math.Inf(1)
	}
	if reg.FullyExpanded(child) {
		return math.Inf(-1)
	}
	return ucbValue(reg, child, parentVisits, mover, c)
}

// The finite part of the formula
func ucbValue(reg *Registry, child NodeID, parentVisits int32, mover uttt.Player, c float64) float64 {
	data := reg.Data(child)
	if data.Visits == 0 {
		return math.Inf(1)
	}

	visits := float64(data.Visits)
	exploitation := float64(perspective(mover)*data.Score) / visits
	exploration := 0.0
	if parentVisits > 1 {
		exploration = math.Sqrt(c * math.Log2(float64(parentVisits)) / visits)
	}
	return exploitation + exploration
}
