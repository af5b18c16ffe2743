package models

import (
	"github.com/tatianab/text-adventure/internal/collection"
)

// Item is something the player can find, carry and drop. An item lives in
// exactly one collection at a time: a location's items or an inventory.
type Item struct {
	Name    string
	Detail  string // shown while examining
	Key     string
	Visible bool // hidden items are revealed by searching their location
}

// Connection is a keyed, one-way link to another location.
type Connection struct {
	ID         int // target location id
	Descriptor string
	Key        string
}

// Location is a node in the adventure graph.
type Location struct {
	ID          int
	Title       string
	Description string
	Searchable  bool
	Searched    bool
	Connections []Connection
	Items       *collection.List[*Item]
}

// NewLocation returns a location with an empty item list.
func NewLocation(id int, title, description string) *Location {
	return &Location{
		ID:          id,
		Title:       title,
		Description: description,
		Items:       collection.NewList[*Item](),
	}
}

// VisibleItems returns the items that are currently shown to the player.
func (l *Location) VisibleItems() []*Item {
	var visible []*Item
	for _, item := range l.Items.All() {
		if item.Visible {
			visible = append(visible, item)
		}
	}
	return visible
}

// CanSearch reports whether a search would do anything.
func (l *Location) CanSearch() bool {
	return l.Searchable && !l.Searched
}

// Search marks the location searched and reveals its hidden items,
// announcing each revealed position. It returns the revealed items, or nil
// when the location is not searchable or was already searched.
func (l *Location) Search() []*Item {
	if !l.CanSearch() {
		return nil
	}
	l.Searched = true

	var revealed []*Item
	for i, item := range l.Items.Items() {
		if item.Visible {
			continue
		}
		item.Visible = true
		l.Items.ReplaceAt(i, item)
		revealed = append(revealed, item)
	}
	return revealed
}

// Adventure is the loaded graph. A location's id is its position in
// Locations.
type Adventure struct {
	Title     string
	Locations *collection.List[*Location]
}

// NewAdventure returns an adventure holding the given locations.
func NewAdventure(title string, locations ...*Location) *Adventure {
	return &Adventure{
		Title:     title,
		Locations: collection.NewList(locations...),
	}
}

// Location returns the location with the given id.
func (a *Adventure) Location(id int) (*Location, bool) {
	return a.Locations.At(id)
}
