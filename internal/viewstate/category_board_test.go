package viewstate

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/ikkim/creme-backend/internal/app/menu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCategoryStore struct {
	mu        sync.Mutex
	stored    []menu.Category
	fail      error
	writes    [][]menu.Category
	inWrite   chan struct{}
	release   chan struct{}
	reloadHit int
}

func (f *fakeCategoryStore) FetchCategories(context.Context) []menu.Category {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reloadHit++
	return append([]menu.Category(nil), f.stored...)
}

func (f *fakeCategoryStore) UpdateCategoryOrder(_ context.Context, categories []menu.Category) error {
	if f.inWrite != nil {
		f.inWrite <- struct{}{}
		<-f.release
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.writes = append(f.writes, categories)
	if f.fail != nil {
		return f.fail
	}
	f.stored = append([]menu.Category(nil), categories...)
	return nil
}

func ids(categories []menu.Category) []string {
	out := make([]string, 0, len(categories))
	for _, c := range categories {
		out = append(out, c.ID)
	}
	return out
}

func newBoard(t *testing.T, store *fakeCategoryStore) *CategoryBoard {
	t.Helper()
	store.stored = []menu.Category{
		{ID: "all", Label: "All"},
		{ID: "coffee", Label: "Coffee"},
		{ID: "tea", Label: "Tea"},
	}
	board := NewCategoryBoard(store)
	board.Reload(context.Background())
	return board
}

func TestCategoryBoard_MoveDown(t *testing.T) {
	store := &fakeCategoryStore{}
	board := newBoard(t, store)

	require.NoError(t, board.Move(context.Background(), 0, DirectionDown))

	assert.Equal(t, []string{"coffee", "all", "tea"}, ids(board.Categories()))
	require.Len(t, store.writes, 1)
	assert.Equal(t, []string{"coffee", "all", "tea"}, ids(store.writes[0]))
}

func TestCategoryBoard_OutOfRangeIsNoop(t *testing.T) {
	store := &fakeCategoryStore{}
	board := newBoard(t, store)

	require.NoError(t, board.Move(context.Background(), 0, DirectionUp))
	require.NoError(t, board.Move(context.Background(), 2, DirectionDown))
	require.NoError(t, board.Move(context.Background(), 7, DirectionUp))

	assert.Equal(t, []string{"all", "coffee", "tea"}, ids(board.Categories()))
	assert.Empty(t, store.writes)
}

func TestCategoryBoard_InvalidDirection(t *testing.T) {
	board := newBoard(t, &fakeCategoryStore{})
	assert.ErrorIs(t, board.Move(context.Background(), 1, Direction("left")), ErrInvalidDirection)
}

func TestCategoryBoard_FailedWriteRollsBack(t *testing.T) {
	store := &fakeCategoryStore{fail: errors.New("connection reset")}
	board := newBoard(t, store)

	var shown [][]string
	board.OnChange(func(categories []menu.Category) {
		shown = append(shown, ids(categories))
	})

	err := board.Move(context.Background(), 1, DirectionUp)

	var reorderErr *ReorderFailedError
	require.ErrorAs(t, err, &reorderErr)
	assert.Equal(t, "Failed to update order. Refreshing...", err.Error())
	assert.ErrorIs(t, err, store.fail)

	require.Len(t, shown, 2)
	assert.Equal(t, []string{"coffee", "all", "tea"}, shown[0], "optimistic order shown first")
	assert.Equal(t, []string{"all", "coffee", "tea"}, shown[1], "store order shown after reload")
	assert.Equal(t, []string{"all", "coffee", "tea"}, ids(board.Categories()))
	assert.Equal(t, 2, store.reloadHit)
}

func TestCategoryBoard_SecondMoveWhileWriting(t *testing.T) {
	store := &fakeCategoryStore{inWrite: make(chan struct{}), release: make(chan struct{})}
	board := newBoard(t, store)

	errCh := make(chan error, 1)
	go func() {
		errCh <- board.Move(context.Background(), 1, DirectionDown)
	}()
	<-store.inWrite

	assert.ErrorIs(t, board.Move(context.Background(), 0, DirectionDown), ErrReorderInProgress)

	close(store.release)
	require.NoError(t, <-errCh)
	assert.Equal(t, []string{"all", "tea", "coffee"}, ids(board.Categories()))
	assert.Len(t, store.writes, 1)
}

func TestCategoryBoard_ReloadAndMoveRejectsBeforeReloading(t *testing.T) {
	store := &fakeCategoryStore{inWrite: make(chan struct{}), release: make(chan struct{})}
	board := newBoard(t, store)

	type result struct {
		categories []menu.Category
		err        error
	}
	first := make(chan result, 1)
	go func() {
		categories, err := board.ReloadAndMove(context.Background(), 1, DirectionDown)
		first <- result{categories, err}
	}()
	<-store.inWrite

	store.mu.Lock()
	reloads := store.reloadHit
	store.mu.Unlock()

	categories, err := board.ReloadAndMove(context.Background(), 0, DirectionDown)
	assert.ErrorIs(t, err, ErrReorderInProgress)
	assert.Nil(t, categories)

	store.mu.Lock()
	assert.Equal(t, reloads, store.reloadHit, "a rejected move must not reload")
	store.mu.Unlock()
	assert.Equal(t, []string{"all", "tea", "coffee"}, ids(board.Categories()), "optimistic order survives")

	close(store.release)
	res := <-first
	require.NoError(t, res.err)
	assert.Equal(t, []string{"all", "tea", "coffee"}, ids(res.categories))
	assert.Equal(t, []string{"all", "tea", "coffee"}, ids(store.stored))
	assert.Len(t, store.writes, 1)
}

func TestCategoryBoard_ReloadAndMovePicksUpStoreChanges(t *testing.T) {
	store := &fakeCategoryStore{}
	board := newBoard(t, store)

	store.mu.Lock()
	store.stored = append(store.stored, menu.Category{ID: "juice", Label: "Juice"})
	store.mu.Unlock()

	categories, err := board.ReloadAndMove(context.Background(), 3, DirectionUp)
	require.NoError(t, err)
	assert.Equal(t, []string{"all", "coffee", "juice", "tea"}, ids(categories))

	categories, err = board.ReloadAndMove(context.Background(), 3, DirectionDown)
	require.NoError(t, err)
	assert.Equal(t, []string{"all", "coffee", "juice", "tea"}, ids(categories), "moves past the end return the list unchanged")
}
