package models

import (
	"github.com/google/uuid"
	"github.com/tatianab/text-adventure/internal/collection"
)

// Inventory is the list of items the player carries.
type Inventory struct {
	Items *collection.List[*Item]
}

func NewInventory() *Inventory {
	return &Inventory{Items: collection.NewList[*Item]()}
}

// Owner names the collection a selection points into.
type Owner int

const (
	OwnerNone Owner = iota
	OwnerLocation
	OwnerInventory
)

func (o Owner) String() string {
	switch o {
	case OwnerLocation:
		return "location"
	case OwnerInventory:
		return "inventory"
	default:
		return "none"
	}
}

// Selection identifies the selected item by owning collection and
// position instead of holding the item itself.
type Selection struct {
	Owner Owner
	Index int
}

// Player is created fresh for every session.
type Player struct {
	ID        uuid.UUID
	Inventory *Inventory
	selection Selection
}

func NewPlayer() *Player {
	return &Player{
		ID:        uuid.New(),
		Inventory: NewInventory(),
	}
}

// Select points the selection at position index of owner. It does not
// move anything.
func (p *Player) Select(owner Owner, index int) {
	p.selection = Selection{Owner: owner, Index: index}
}

// Unselect clears the selection.
func (p *Player) Unselect() {
	p.selection = Selection{}
}

// Selection returns the current selection and whether one is set.
func (p *Player) Selection() (Selection, bool) {
	return p.selection, p.selection.Owner != OwnerNone
}

// SelectedItem resolves the selection against the given location. It
// returns nil when nothing is selected or the position no longer exists.
func (p *Player) SelectedItem(at *Location) *Item {
	var list *collection.List[*Item]
	switch p.selection.Owner {
	case OwnerLocation:
		if at == nil {
			return nil
		}
		list = at.Items
	case OwnerInventory:
		list = p.Inventory.Items
	default:
		return nil
	}
	item, ok := list.At(p.selection.Index)
	if !ok {
		return nil
	}
	return item
}
