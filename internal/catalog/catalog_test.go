package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

const grid81 = "53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79"

func TestSaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewStore(t.TempDir())

	id, err := store.Save(ctx, &Entry{Name: "classic", Difficulty: "hard", Grid: grid81})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	got, err := store.Load(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "classic", got.Name)
	require.Equal(t, "hard", got.Difficulty)
	require.Equal(t, grid81, got.Grid)

	g, err := got.Parse()
	require.NoError(t, err)
	require.Equal(t, uint8(5), g.Cells[0][0])
}

func TestLoadMissing(t *testing.T) {
	store := NewStore(t.TempDir())
	_, err := store.Load(context.Background(), "nope")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestListGroupsByDifficulty(t *testing.T) {
	ctx := context.Background()
	store := NewStore(t.TempDir())

	_, err := store.Save(ctx, &Entry{Name: "a", Difficulty: "easy", Grid: grid81})
	require.NoError(t, err)
	_, err = store.Save(ctx, &Entry{Name: "b", Difficulty: "expert", Grid: grid81})
	require.NoError(t, err)
	// Unknown labels normalize to medium rather than failing.
	_, err = store.Save(ctx, &Entry{Name: "c", Difficulty: "bogus", Grid: grid81})
	require.NoError(t, err)

	got, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)
	require.Equal(t, "a", got[0].Name, "easy listed first")
	require.Equal(t, "medium", got[1].Difficulty)
	require.Equal(t, "b", got[2].Name)
}

func TestSaveMovesEntryAcrossDifficulties(t *testing.T) {
	ctx := context.Background()
	store := NewStore(t.TempDir())

	id, err := store.Save(ctx, &Entry{Name: "reclassified", Difficulty: "easy", Grid: grid81})
	require.NoError(t, err)

	_, err = store.Save(ctx, &Entry{ID: id, Name: "reclassified", Difficulty: "hard", Grid: grid81})
	require.NoError(t, err)

	got, err := store.Load(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "hard", got.Difficulty)

	entries, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1, "the easy copy must be gone")
}

func TestCanceledContextStopsScans(t *testing.T) {
	store := NewStore(t.TempDir())
	id, err := store.Save(context.Background(), &Entry{Difficulty: "easy", Grid: grid81})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = store.Load(ctx, id)
	require.ErrorIs(t, err, context.Canceled)

	_, err = store.List(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestSaveRejectsEmptyGrid(t *testing.T) {
	store := NewStore(t.TempDir())
	_, err := store.Save(context.Background(), &Entry{Name: "empty"})
	require.Error(t, err)
}
