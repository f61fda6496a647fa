package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type widget struct {
	ID    string
	Sub   string
	Label string
}

func (w *widget) RecordID() string      { return w.ID }
func (w *widget) SetRecordID(id string) { w.ID = id }
func (w *widget) Owner() string         { return w.Sub }
func (w *widget) SetOwner(sub string)   { w.Sub = sub }
func (w *widget) Clone() *widget        { cp := *w; return &cp }

func TestCollectionCreateList(t *testing.T) {
	c := NewCollection[*widget]("widgets", "w-")

	a := c.Create("u1", &widget{Label: "a"})
	b := c.Create("u1", &widget{Label: "b"})
	require.NotEmpty(t, a.ID)
	require.NotEqual(t, a.ID, b.ID)

	list := c.List("u1")
	require.Len(t, list, 2)
	// insertion order preserved
	require.Equal(t, "a", list[0].Label)
	require.Equal(t, "b", list[1].Label)
}

func TestCollectionOwnerScoping(t *testing.T) {
	c := NewCollection[*widget]("widgets", "w-")
	mine := c.Create("u1", &widget{Label: "mine"})
	c.Create("u2", &widget{Label: "theirs"})

	require.Len(t, c.List("u1"), 1)
	require.Len(t, c.List("u2"), 1)

	_, err := c.Get("u2", mine.ID)
	require.ErrorIs(t, err, ErrNotFound)
	err = c.Delete("u2", mine.ID, nil)
	require.ErrorIs(t, err, ErrNotFound)
	require.Equal(t, 1, c.Len("u1"))
}

func TestCollectionUpdatePreservesIdentity(t *testing.T) {
	c := NewCollection[*widget]("widgets", "w-")
	w := c.Create("u1", &widget{Label: "old"})

	merged, err := c.Update("u1", w.ID, func(cp *widget) {
		cp.Label = "new"
		cp.ID = "hijacked"
		cp.Sub = "someone-else"
	})
	require.NoError(t, err)
	require.Equal(t, w.ID, merged.ID)
	require.Equal(t, "u1", merged.Sub)
	require.Equal(t, "new", merged.Label)

	_, err = c.Update("u1", "missing", func(cp *widget) {})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCollectionDelete(t *testing.T) {
	c := NewCollection[*widget]("widgets", "w-")
	w := c.Create("u1", &widget{Label: "x"})

	require.NoError(t, c.Delete("u1", w.ID, nil))
	require.Len(t, c.List("u1"), 0)

	// second delete on the same id reports NotFound
	require.ErrorIs(t, c.Delete("u1", w.ID, nil), ErrNotFound)
}

func TestCollectionDeleteGuard(t *testing.T) {
	c := NewCollection[*widget]("widgets", "w-")
	w := c.Create("u1", &widget{Label: "keep"})

	guarded := errors.New("guarded")
	err := c.Delete("u1", w.ID, func(*widget) error { return guarded })
	require.ErrorIs(t, err, guarded)
	require.Equal(t, 1, c.Len("u1"))
}

func TestCollectionIdsNeverReused(t *testing.T) {
	c := NewCollection[*widget]("widgets", "w-")
	a := c.Create("u1", &widget{})
	require.NoError(t, c.Delete("u1", a.ID, nil))
	b := c.Create("u1", &widget{})
	require.NotEqual(t, a.ID, b.ID)
}

func TestCollectionSeedKeepsIds(t *testing.T) {
	c := NewCollection[*widget]("widgets", "card-")
	c.Seed("u1", &widget{ID: "card-1"}, &widget{ID: "card-2"})

	got, err := c.Get("u1", "card-2")
	require.NoError(t, err)
	require.Equal(t, "card-2", got.ID)

	// fresh ids skip seeded ones
	fresh := c.Create("u1", &widget{})
	require.NotEqual(t, "card-1", fresh.ID)
	require.NotEqual(t, "card-2", fresh.ID)
}

func TestCollectionUpdateEachAtomicSwap(t *testing.T) {
	c := NewCollection[*widget]("widgets", "w-")
	a := c.Create("u1", &widget{Label: "default"})
	b := c.Create("u1", &widget{Label: "plain"})
	c.Create("u2", &widget{Label: "other-user"})

	c.UpdateEach("u1", func(cp *widget) {
		if cp.ID == b.ID {
			cp.Label = "default"
		} else {
			cp.Label = "plain"
		}
	})

	gotA, _ := c.Get("u1", a.ID)
	gotB, _ := c.Get("u1", b.ID)
	require.Equal(t, "plain", gotA.Label)
	require.Equal(t, "default", gotB.Label)

	other := c.List("u2")
	require.Equal(t, "other-user", other[0].Label)
}
