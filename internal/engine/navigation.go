package engine

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/tatianab/text-adventure/internal/models"
)

// moveToLocation switches the current location and moves the location
// watcher over with it. Connections are validated at load, so an unknown
// id is fatal.
func (s *Session) moveToLocation(id int) {
	next, ok := s.adventure.Location(id)
	if !ok {
		panic(&InvariantViolation{Reason: fmt.Sprintf("location %d does not exist", id)})
	}

	if s.current != nil {
		s.current.Items.Unsubscribe(s.locationWatcher)
	}
	s.current = next
	s.current.Items.Subscribe(s.locationWatcher)

	s.logger.Info("moved to location",
		zap.Int("location_id", next.ID),
		zap.String("title", next.Title),
	)
	s.redraw()
}

func (s *Session) takeItem(item *models.Item) {
	if !s.current.Items.RemoveFirst(item) {
		panic(&InvariantViolation{Reason: fmt.Sprintf("item %q is not at location %d", item.Name, s.current.ID)})
	}
	s.player.Inventory.Items.Append(item)
	s.player.Unselect()
	s.logger.Info("took item", zap.String("item", item.Name), zap.Int("location_id", s.current.ID))
}

func (s *Session) dropItem(item *models.Item) {
	if !s.player.Inventory.Items.RemoveFirst(item) {
		panic(&InvariantViolation{Reason: fmt.Sprintf("item %q is not in the inventory", item.Name)})
	}
	s.current.Items.Append(item)
	s.player.Unselect()
	s.logger.Info("dropped item", zap.String("item", item.Name), zap.Int("location_id", s.current.ID))
}

// search is a no-op unless the current location is searchable and has not
// been searched yet.
func (s *Session) search() {
	if !s.current.CanSearch() {
		return
	}
	revealed := s.current.Search()
	s.logger.Info("searched location",
		zap.Int("location_id", s.current.ID),
		zap.Int("revealed", len(revealed)),
	)
}

func (s *Session) selectItem(owner models.Owner, index int) {
	s.player.Select(owner, index)
}

func (s *Session) unselectItem() {
	s.player.Unselect()
}

// selectedItem resolves the selection. A selected state without a
// resolvable item means the session state is corrupt.
func (s *Session) selectedItem() *models.Item {
	item := s.player.SelectedItem(s.current)
	if item == nil {
		panic(&InvariantViolation{Reason: fmt.Sprintf("state %s has no selected item", s.state)})
	}
	return item
}
