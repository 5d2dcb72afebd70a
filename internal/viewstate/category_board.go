package viewstate

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/ikkim/creme-backend/internal/app/menu"
	"github.com/ikkim/creme-backend/pkg/logger"
)

var (
	ErrReorderInProgress = errors.New("category reorder already in progress")
	ErrInvalidDirection  = errors.New("direction must be up or down")
)

// Direction is the way a category moves in the list.
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

func ParseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case DirectionUp, DirectionDown:
		return Direction(s), nil
	}
	return "", ErrInvalidDirection
}

// ReorderFailedError is returned when persisting a move fails. The board has
// already reloaded its list from the store when it is returned.
type ReorderFailedError struct {
	Err error
}

func (e *ReorderFailedError) Error() string {
	return "Failed to update order. Refreshing..."
}

func (e *ReorderFailedError) Unwrap() error {
	return e.Err
}

// CategoryStore persists category order.
type CategoryStore interface {
	FetchCategories(ctx context.Context) []menu.Category
	UpdateCategoryOrder(ctx context.Context, categories []menu.Category) error
}

// CategoryBoard is the admin category list with optimistic reordering. A move
// is applied locally before the store is written and rolled back by reloading
// when the write fails.
type CategoryBoard struct {
	mu         sync.Mutex
	store      CategoryStore
	categories []menu.Category
	ordering   bool
	onChange   func([]menu.Category)
}

func NewCategoryBoard(store CategoryStore) *CategoryBoard {
	return &CategoryBoard{store: store}
}

// OnChange registers a callback invoked with every list the board shows.
func (b *CategoryBoard) OnChange(fn func([]menu.Category)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.onChange = fn
}

func (b *CategoryBoard) Categories() []menu.Category {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]menu.Category(nil), b.categories...)
}

// Reload replaces the local list with the store's.
func (b *CategoryBoard) Reload(ctx context.Context) []menu.Category {
	categories := b.store.FetchCategories(ctx)

	b.mu.Lock()
	b.categories = append([]menu.Category(nil), categories...)
	notify := b.onChange
	b.mu.Unlock()

	if notify != nil {
		notify(append([]menu.Category(nil), categories...))
	}
	return categories
}

// Move swaps the category at index with its neighbour in direction. Moves past
// either end are no-ops. Only one move may be in flight at a time.
func (b *CategoryBoard) Move(ctx context.Context, index int, direction Direction) error {
	_, err := b.move(ctx, index, direction, false)
	return err
}

// ReloadAndMove refreshes the list from the store and then moves. The refresh
// runs under the reorder guard, so a request arriving while another move is
// being written is rejected before it can replace the optimistic list. It
// returns the list as it stands once this move settles.
func (b *CategoryBoard) ReloadAndMove(ctx context.Context, index int, direction Direction) ([]menu.Category, error) {
	return b.move(ctx, index, direction, true)
}

func (b *CategoryBoard) move(ctx context.Context, index int, direction Direction, reload bool) ([]menu.Category, error) {
	if _, err := ParseDirection(string(direction)); err != nil {
		return nil, err
	}

	b.mu.Lock()
	if b.ordering {
		b.mu.Unlock()
		return nil, ErrReorderInProgress
	}
	b.ordering = true
	b.mu.Unlock()

	defer func() {
		b.mu.Lock()
		b.ordering = false
		b.mu.Unlock()
	}()

	if reload {
		b.Reload(ctx)
	}

	target := index + 1
	if direction == DirectionUp {
		target = index - 1
	}

	b.mu.Lock()
	if index < 0 || index >= len(b.categories) || target < 0 || target >= len(b.categories) {
		current := append([]menu.Category(nil), b.categories...)
		b.mu.Unlock()
		return current, nil
	}

	next := append([]menu.Category(nil), b.categories...)
	next[index], next[target] = next[target], next[index]
	b.categories = next
	notify := b.onChange
	b.mu.Unlock()

	if notify != nil {
		notify(append([]menu.Category(nil), next...))
	}

	if err := b.store.UpdateCategoryOrder(ctx, append([]menu.Category(nil), next...)); err != nil {
		logger.Warn("Category reorder failed, reloading", map[string]interface{}{
			"index":     index,
			"direction": string(direction),
			"error":     err.Error(),
		})
		b.Reload(ctx)
		return nil, &ReorderFailedError{Err: fmt.Errorf("update category order: %w", err)}
	}
	return next, nil
}
