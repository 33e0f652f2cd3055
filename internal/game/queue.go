package game

import "github.com/arcadehub/tui-snake/internal/core"

// DirectionQueue buffers pending movement intents between ticks, oldest
// first. Rapid key presses may queue several turns; exactly one entry is
// consumed per tick. Once play starts the queue never drains to zero: the
// last direction is sticky so the snake keeps moving without new input.
type DirectionQueue struct {
	dirs []core.Direction
}

// NewDirectionQueue creates a queue seeded with the initial direction.
func NewDirectionQueue(initial core.Direction) *DirectionQueue {
	return &DirectionQueue{dirs: []core.Direction{initial}}
}

// Enqueue appends next unless it is the exact opposite of the most
// recently enqueued direction, in which case it is silently dropped.
// Comparing against the queue tail rather than the active direction lets
// quick double-turns (e.g. up then left while moving right) queue up while
// still rejecting a 180° reversal into the snake's own neck.
func (q *DirectionQueue) Enqueue(next core.Direction) {
	if next.IsZero() {
		return
	}
	if last := q.dirs[len(q.dirs)-1]; next.IsOpposite(last) {
		return
	}
	q.dirs = append(q.dirs, next)
}

// ConsumeOne returns the oldest queued direction. If more than one entry
// remains the head is removed; the final entry is retained so the queue is
// never empty during play.
func (q *DirectionQueue) ConsumeOne() core.Direction {
	head := q.dirs[0]
	if len(q.dirs) > 1 {
		q.dirs = q.dirs[1:]
	}
	return head
}

// Len returns the number of buffered directions.
func (q *DirectionQueue) Len() int {
	return len(q.dirs)
}

// Last returns the most recently enqueued direction.
func (q *DirectionQueue) Last() core.Direction {
	return q.dirs[len(q.dirs)-1]
}
