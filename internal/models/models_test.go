package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/tatianab/text-adventure/internal/collection"
)

type counter struct {
	changes []collection.Change
}

func (c *counter) Notify(ch collection.Change) {
	c.changes = append(c.changes, ch)
}

func cellar() *Location {
	loc := NewLocation(0, "Cellar", "Damp stone walls.")
	loc.Searchable = true
	loc.Items.Append(&Item{Name: "Lantern", Key: "L", Visible: true})
	loc.Items.Append(&Item{Name: "Coin", Key: "C"})
	loc.Items.Append(&Item{Name: "Note", Key: "N"})
	return loc
}

func TestLocation_VisibleItems(t *testing.T) {
	loc := cellar()
	visible := loc.VisibleItems()
	require.Len(t, visible, 1)
	assert.Equal(t, "Lantern", visible[0].Name)
}

func TestLocation_SearchRevealsHiddenItems(t *testing.T) {
	loc := cellar()
	rec := &counter{}
	loc.Items.Subscribe(rec)

	revealed := loc.Search()
	require.Len(t, revealed, 2)
	assert.True(t, loc.Searched)
	assert.Len(t, loc.VisibleItems(), 3)
	assert.Equal(t, []collection.Change{
		{Kind: collection.ContentUpdated, Index: 1},
		{Kind: collection.ContentUpdated, Index: 2},
	}, rec.changes)
}

func TestLocation_SearchIsIdempotent(t *testing.T) {
	loc := cellar()
	loc.Search()

	rec := &counter{}
	loc.Items.Subscribe(rec)
	assert.Nil(t, loc.Search())
	assert.Empty(t, rec.changes)
	assert.True(t, loc.Searched)
}

func TestLocation_SearchNotSearchable(t *testing.T) {
	loc := cellar()
	loc.Searchable = false

	assert.Nil(t, loc.Search())
	assert.False(t, loc.Searched)
	assert.Len(t, loc.VisibleItems(), 1)
}

func TestAdventure_Location(t *testing.T) {
	adv := NewAdventure("Test", NewLocation(0, "A", ""), NewLocation(1, "B", ""))

	loc, ok := adv.Location(1)
	require.True(t, ok)
	assert.Equal(t, "B", loc.Title)

	_, ok = adv.Location(2)
	assert.False(t, ok)
}

func TestPlayer_Selection(t *testing.T) {
	p := NewPlayer()
	loc := cellar()

	_, ok := p.Selection()
	assert.False(t, ok)
	assert.Nil(t, p.SelectedItem(loc))

	p.Select(OwnerLocation, 0)
	sel, ok := p.Selection()
	require.True(t, ok)
	assert.Equal(t, OwnerLocation, sel.Owner)
	assert.Equal(t, "Lantern", p.SelectedItem(loc).Name)

	p.Select(OwnerInventory, 0)
	assert.Nil(t, p.SelectedItem(loc), "empty inventory has no position 0")

	p.Unselect()
	assert.Nil(t, p.SelectedItem(loc))
}

func TestPlayer_IDsAreUnique(t *testing.T) {
	assert.NotEqual(t, NewPlayer().ID, NewPlayer().ID)
}

func TestPropertySearchRevealsEverything(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		loc := NewLocation(0, "Room", "")
		loc.Searchable = true
		hidden := rapid.SliceOfN(rapid.Bool(), 0, 10).Draw(t, "visible")
		for _, v := range hidden {
			loc.Items.Append(&Item{Name: "thing", Key: "X", Visible: v})
		}

		loc.Search()
		assert.Len(t, loc.VisibleItems(), len(hidden))

		before := loc.Items.Items()
		assert.Nil(t, loc.Search())
		assert.Equal(t, before, loc.Items.Items())
	})
}
