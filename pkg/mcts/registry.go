package mcts

import (
	"fmt"

	"github.com/IlikeChooros/super-ttt/pkg/uttt"
)

// Identifier of a game state within the registry, stable for the registry's lifetime
type NodeID int32

const noNode NodeID = -1

// Search statistics of a single game state
type TreeData struct {
	// Number of iterations that passed through this state
	Visits int32
	// Sum of the outcomes seen through this state, from X's perspective
	// (+1 X won, -1 O won, 0 tie)
	Score int32
	// Successor states discovered during the search, in discovery order, no duplicates
	Children []NodeID
}

type registryEntry struct {
	state uttt.Game
	data  TreeData
	// next entry sharing the same hash, noNode if none
	next NodeID

	// lazily computed, the state never changes
	resolved  bool
	outcome   uttt.GameState
	moveCount int16
}

// Transposition table of the search: every distinct game state encountered
// gets exactly one entry, keyed by the content hash of the state.
// Hash collisions are resolved by comparing the states (==), so two different
// positions never share statistics.
type Registry struct {
	buckets map[uint64]NodeID
	entries []registryEntry
}

func NewRegistry() *Registry {
	return &Registry{
		buckets: make(map[uint64]NodeID),
		entries: make([]registryEntry, 0, 1024),
	}
}

// Find the entry of given state
func (r *Registry) Lookup(state uttt.Game) (NodeID, bool) {
	id, ok := r.buckets[state.Hash()]
	if !ok {
		return noNode, false
	}

	for ; id != noNode; id = r.entries[id].next {
		if r.entries[id].state == state {
			return id, true
		}
	}
	return noNode, false
}

// Get the entry of given state, creating a fresh one (0 visits, 0 score, no children)
// if it's not registered yet
func (r *Registry) GetOrCreate(state uttt.Game) NodeID {
	hash := state.Hash()
	head, ok := r.buckets[hash]
	if !ok {
		head = noNode
	}

	for id := head; id != noNode; id = r.entries[id].next {
		if r.entries[id].state == state {
			return id
		}
	}

	id := NodeID(len(r.entries))
	r.entries = append(r.entries, registryEntry{state: state, next: head})
	r.buckets[hash] = id
	return id
}

// Get the state stored under given id
func (r *Registry) State(id NodeID) uttt.Game {
	return r.entry(id).state
}

// Get a copy of the statistics, the Children slice must not be modified
func (r *Registry) Data(id NodeID) TreeData {
	return r.entry(id).data
}

func (r *Registry) Visits(id NodeID) int32 {
	return r.entry(id).data.Visits
}

func (r *Registry) Score(id NodeID) int32 {
	return r.entry(id).data.Score
}

func (r *Registry) Children(id NodeID) []NodeID {
	return r.entry(id).data.Children
}

// Record 'child' as a successor of 'parent', does nothing if it's already recorded
func (r *Registry) RecordChild(parent, child NodeID) {
	if r.HasChild(parent, child) {
		return
	}
	data := &r.entry(parent).data
	data.Children = append(data.Children, child)
}

// Check if 'child' was recorded as a successor of 'parent'
func (r *Registry) HasChild(parent, child NodeID) bool {
	for _, id := range r.entry(parent).data.Children {
		if id == child {
			return true
		}
	}
	return false
}

func (r *Registry) AddVisit(id NodeID) {
	r.entry(id).data.Visits++
}

func (r *Registry) AddScore(id NodeID, outcome Outcome) {
	r.entry(id).data.Score += int32(outcome)
}

// Number of registered states
func (r *Registry) Len() int {
	return len(r.entries)
}

// Outcome of the stored state
func (r *Registry) Outcome(id NodeID) uttt.GameState {
	return r.resolve(id).outcome
}

// A state is fully expanded, when it's terminal or every legal successor
// has been recorded as its child
func (r *Registry) FullyExpanded(id NodeID) bool {
	e := r.resolve(id)
	return e.outcome.Terminal() || len(e.data.Children) >= int(e.moveCount)
}

func (r *Registry) resolve(id NodeID) *registryEntry {
	e := r.entry(id)
	if !e.resolved {
		e.outcome = e.state.Winner()
		if !e.outcome.Terminal() {
			moves, _ := e.state.LegalMoves()
			e.moveCount = int16(moves.Size())
		}
		e.resolved = true
	}
	return e
}

func (r *Registry) entry(id NodeID) *registryEntry {
	if id < 0 || int(id) >= len(r.entries) {
		panic(fmt.Sprintf("[MCTS] registry: unknown node id %d (size %d)", id, len(r.entries)))
	}
	return &r.entries[id]
}
