package mcts

import (
	"time"
)

type _Timer struct {
	start time.Time
}

func _NewTimer() *_Timer {
	return &_Timer{time.Now()}
}

// Set the 'start' as now
func (t *_Timer) Reset() {
	t.start = time.Now()
}

func (t *_Timer) Elapsed() time.Duration {
	return time.Since(t.start)
}

// In milliseconds, at least 1
func (t *_Timer) Deltatime() int {
	return max(int(time.Since(t.start).Milliseconds()), 1)
}

// Rate of 'count' events per second since the start
func (t *_Timer) Rate(count int) uint32 {
	return uint32(count * 1000 / t.Deltatime())
}
