package service

import (
	"sort"

	"taskboard-api/internal/models"
)

// Board groups items into the four fixed dashboard buckets. All four buckets
// are always present in the serialized form, in workflow order, even when empty.
type Board[T any] struct {
	Created    []T `json:"created"`
	InProgress []T `json:"in-progress"`
	Validating []T `json:"validating"`
	Completed  []T `json:"completed"`
}

// NewBoard returns a board with all buckets initialized to empty slices so
// they serialize as [] rather than null.
func NewBoard[T any]() Board[T] {
	return Board[T]{
		Created:    []T{},
		InProgress: []T{},
		Validating: []T{},
		Completed:  []T{},
	}
}

func (b *Board[T]) add(key string, item T) {
	switch key {
	case "in-progress":
		b.InProgress = append(b.InProgress, item)
	case "validating":
		b.Validating = append(b.Validating, item)
	case "completed":
		b.Completed = append(b.Completed, item)
	default:
		b.Created = append(b.Created, item)
	}
}

// Ordering selects how tasks are arranged before bucketing.
type Ordering int

const (
	// StoreOrder keeps tasks in the order the store returned them.
	StoreOrder Ordering = iota

	// StatusOrder stable-sorts tasks by total status order first, so the
	// flat sequence feeding the buckets is status-sorted.
	StatusOrder
)

// groupByStatus is the single grouping primitive behind all dashboard
// aggregations. It buckets tasks by status and maps each one through mapFn.
func groupByStatus[T any](tasks []models.Task, ord Ordering, mapFn func(models.Task) T) Board[T] {
	if ord == StatusOrder {
		sorted := make([]models.Task, len(tasks))
		copy(sorted, tasks)
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Status.Order() < sorted[j].Status.Order()
		})
		tasks = sorted
	}
	board := NewBoard[T]()
	for _, t := range tasks {
		board.add(t.Status.DashboardKey(), mapFn(t))
	}
	return board
}
