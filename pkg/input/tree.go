package input

import (
	"sort"

	"github.com/dmitrymomot/kit/pkg/text"
)

type stage[T any] struct {
	name     string
	priority int
	message  text.Text
	fn       func(T) (T, bool)
}

// tree maps priority to stages in insertion order.
type tree[T any] struct {
	tiers map[int][]stage[T]
	size  int
}

func (t *tree[T]) add(s stage[T]) {
	if t.tiers == nil {
		t.tiers = make(map[int][]stage[T])
	}
	t.tiers[s.priority] = append(t.tiers[s.priority], s)
	t.size++
}

func (t *tree[T]) len() int {
	return t.size
}

// ordered returns the tiers from highest to lowest priority.
func (t *tree[T]) ordered() [][]stage[T] {
	keys := make([]int, 0, len(t.tiers))
	for p := range t.tiers {
		keys = append(keys, p)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(keys)))

	out := make([][]stage[T], len(keys))
	for i, p := range keys {
		out[i] = t.tiers[p]
	}
	return out
}

// run executes the tree on value. All stages of a tier run; the first
// tier with a failure stops the run.
func (t *tree[T]) run(kind string, value T, raw any) (T, []Messenger) {
	for _, tier := range t.ordered() {
		current := value
		var failed []Messenger
		for _, s := range tier {
			out, ok := s.fn(current)
			if !ok {
				failed = append(failed, stageMessenger(kind, s.name, s.priority, s.message, raw))
				continue
			}
			current = out
		}
		if len(failed) > 0 {
			return value, failed
		}
		value = current
	}
	return value, nil
}
