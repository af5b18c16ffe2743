package engine

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tatianab/text-adventure/internal/collection"
	"github.com/tatianab/text-adventure/internal/keys"
	"github.com/tatianab/text-adventure/internal/models"
)

// InventoryDisplay shows and hides the renderer's inventory panel.
type InventoryDisplay interface {
	Enable()
	Disable()
	Toggle()
}

// Renderer is the display side of a session. Redraw asks it to re-read
// everything from the session; there is no partial update.
type Renderer interface {
	InventoryDisplay
	Redraw()
}

type nopRenderer struct{}

func (nopRenderer) Enable()  {}
func (nopRenderer) Disable() {}
func (nopRenderer) Toggle()  {}
func (nopRenderer) Redraw()  {}

// Option configures a Session.
type Option func(*Session)

// WithStartLocation sets the location the player begins in. Defaults to 0.
func WithStartLocation(id int) Option {
	return func(s *Session) {
		s.start = id
	}
}

// WithLogger sets the session logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithRenderer sets the renderer. It can also be set later with
// SetRenderer, before Begin.
func WithRenderer(r Renderer) Option {
	return func(s *Session) {
		s.SetRenderer(r)
	}
}

// watcher forwards collection changes to the session.
type watcher struct {
	session *Session
	source  string
}

func (w *watcher) Notify(c collection.Change) {
	w.session.changed(w.source, c)
}

// Session is one player's run through an adventure. It is not safe for
// concurrent use; the host delivers one key at a time.
type Session struct {
	ID uuid.UUID

	adventure *models.Adventure
	player    *models.Player
	current   *models.Location
	state     ActionState
	start     int
	begun     bool
	consumed  bool

	renderer Renderer
	logger   *zap.Logger

	locationWatcher  *watcher
	inventoryWatcher *watcher
	adventureWatcher *watcher
}

// NewSession validates adv and returns a session ready to Begin.
func NewSession(adv *models.Adventure, opts ...Option) (*Session, error) {
	if adv == nil {
		return nil, fmt.Errorf("adventure must not be nil")
	}
	if err := keys.Validate(adv); err != nil {
		return nil, fmt.Errorf("validating adventure: %w", err)
	}

	s := &Session{
		ID:        uuid.New(),
		adventure: adv,
		player:    models.NewPlayer(),
		state:     AtLocation,
		renderer:  nopRenderer{},
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With(zap.String("session_id", s.ID.String()))
	s.locationWatcher = &watcher{session: s, source: "location_items"}
	s.inventoryWatcher = &watcher{session: s, source: "inventory_items"}
	s.adventureWatcher = &watcher{session: s, source: "locations"}
	return s, nil
}

// SetRenderer replaces the renderer. A nil renderer discards output.
func (s *Session) SetRenderer(r Renderer) {
	if r == nil {
		s.renderer = nopRenderer{}
		return
	}
	s.renderer = r
}

// Begin subscribes the session to its collections, hides the inventory
// and moves the player to the start location.
func (s *Session) Begin() error {
	if s.begun {
		return ErrAlreadyBegun
	}
	if _, ok := s.adventure.Location(s.start); !ok {
		return &InvariantViolation{Reason: fmt.Sprintf("start location %d does not exist", s.start)}
	}

	s.state = AtLocation
	s.consumed = false
	s.player.Inventory.Items.Subscribe(s.inventoryWatcher)
	s.adventure.Locations.Subscribe(s.adventureWatcher)
	s.begun = true

	s.renderer.Disable()
	s.moveToLocation(s.start)

	s.logger.Info("adventure begun",
		zap.String("adventure", s.adventure.Title),
		zap.String("player_id", s.player.ID.String()),
	)
	return nil
}

// Close detaches every listener the session registered.
func (s *Session) Close() {
	if !s.begun {
		return
	}
	if s.current != nil {
		s.current.Items.Unsubscribe(s.locationWatcher)
	}
	s.player.Inventory.Items.Unsubscribe(s.inventoryWatcher)
	s.adventure.Locations.Unsubscribe(s.adventureWatcher)
	s.begun = false
}

// HandleKey interprets one key press. Keys that mean nothing in the
// current state are ignored and return ActionNone with a nil error. Once a
// key has been accepted, further presses are ignored until KeyReleased.
func (s *Session) HandleKey(key string) (Action, error) {
	if !s.begun {
		return ActionNone, ErrNotBegun
	}
	if s.consumed || !keys.IsSingle(key) {
		return ActionNone, nil
	}

	for _, r := range rules[s.state] {
		index, ok := s.match(r, key)
		if !ok {
			continue
		}
		s.consumed = true
		s.logger.Debug("key accepted",
			zap.String("key", keys.Normalize(key)),
			zap.Stringer("state", s.state),
			zap.Stringer("action", r.action),
		)
		return r.action, s.apply(r, index)
	}
	return ActionNone, nil
}

// KeyReleased tells the session the physical key went up, so the next
// press can be accepted.
func (s *Session) KeyReleased() {
	s.consumed = false
}

// match reports whether key fires r. For connection and item triggers the
// returned index is the position of the matching element.
func (s *Session) match(r rule, key string) (int, bool) {
	switch r.trigger {
	case onKey:
		return 0, keys.Equal(r.key, key)
	case onConnection:
		for i, c := range s.current.Connections {
			if keys.Equal(c.Key, key) {
				return i, true
			}
		}
	case onLocationItem:
		for i, item := range s.current.Items.All() {
			if item.Visible && keys.Equal(item.Key, key) {
				return i, true
			}
		}
	case onInventoryItem:
		for i, item := range s.player.Inventory.Items.All() {
			if keys.Equal(item.Key, key) {
				return i, true
			}
		}
	}
	return 0, false
}

func (s *Session) apply(r rule, index int) error {
	switch r.action {
	case ActionMove:
		s.moveToLocation(s.current.Connections[index].ID)
	case ActionSelectLocationItem:
		s.selectItem(models.OwnerLocation, index)
	case ActionSelectInventoryItem:
		s.selectItem(models.OwnerInventory, index)
	case ActionSearch:
		s.search()
	case ActionShowInventory:
		s.renderer.Enable()
	case ActionHideInventory:
		s.renderer.Disable()
	case ActionTake:
		s.takeItem(s.selectedItem())
	case ActionDrop:
		s.dropItem(s.selectedItem())
	case ActionExamine:
		// The renderer shows the selected item's detail in the examining states.
	case ActionUse:
		item := s.selectedItem()
		s.logger.Warn("use is not supported", zap.String("item", item.Name))
		return &UnsupportedActionError{Action: ActionUse, Item: item.Name}
	case ActionUnselect:
		s.unselectItem()
	}

	s.state = r.next
	s.redraw()
	return nil
}

func (s *Session) changed(source string, c collection.Change) {
	s.logger.Debug("collection changed",
		zap.String("source", source),
		zap.Stringer("kind", c.Kind),
		zap.Int("index", c.Index),
	)
	s.redraw()
}

func (s *Session) redraw() {
	s.renderer.Redraw()
}

// State returns the current action state.
func (s *Session) State() ActionState {
	return s.state
}

// View is a read-only snapshot of everything a renderer needs.
type View struct {
	State       ActionState
	LocationID  int
	Title       string
	Description string
	CanSearch   bool
	Connections []models.Connection
	Items       []models.Item // visible items only
	Inventory   []models.Item
	Selected    *models.Item
}

// View returns a snapshot of the session. Mutating it has no effect on the
// session.
func (s *Session) View() View {
	v := View{State: s.state}
	if s.current == nil {
		return v
	}

	v.LocationID = s.current.ID
	v.Title = s.current.Title
	v.Description = s.current.Description
	v.CanSearch = s.current.CanSearch()
	v.Connections = append([]models.Connection(nil), s.current.Connections...)
	for _, item := range s.current.VisibleItems() {
		v.Items = append(v.Items, *item)
	}
	for _, item := range s.player.Inventory.Items.All() {
		v.Inventory = append(v.Inventory, *item)
	}
	if item := s.player.SelectedItem(s.current); item != nil {
		selected := *item
		v.Selected = &selected
	}
	return v
}

// Choice is one key the player can press right now.
type Choice struct {
	Key   string
	Label string
}

// Choices lists the keys that do something in the current state, in the
// order they are matched.
func (s *Session) Choices() []Choice {
	if s.current == nil {
		return nil
	}

	var out []Choice
	for _, r := range rules[s.state] {
		switch r.trigger {
		case onConnection:
			for _, c := range s.current.Connections {
				out = append(out, Choice{Key: keys.Normalize(c.Key), Label: c.Descriptor})
			}
		case onLocationItem:
			for _, item := range s.current.VisibleItems() {
				out = append(out, Choice{Key: keys.Normalize(item.Key), Label: item.Name})
			}
		case onInventoryItem:
			for _, item := range s.player.Inventory.Items.All() {
				out = append(out, Choice{Key: keys.Normalize(item.Key), Label: item.Name})
			}
		case onKey:
			if r.action == ActionSearch && !s.current.CanSearch() {
				continue
			}
			out = append(out, Choice{Key: r.key, Label: r.label})
		}
	}
	return out
}
