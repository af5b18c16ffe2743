package keys

import (
	"fmt"

	"github.com/tatianab/text-adventure/internal/models"
)

// Source says whether a key belongs to a connection or an item.
type Source string

const (
	FromConnection Source = "connection"
	FromItem       Source = "item"
)

// DuplicateKeyError reports two interactive elements at one location that
// share a key.
type DuplicateKeyError struct {
	LocationID int
	Location   string
	Key        string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("key %q already exists for location %d (%q)", e.Key, e.LocationID, e.Location)
}

// ReservedKeyError reports an authored key that collides with a global
// action key.
type ReservedKeyError struct {
	LocationID int
	Location   string
	Key        string
	Source     Source
}

func (e *ReservedKeyError) Error() string {
	return fmt.Sprintf("%s key %q at location %d (%q) is reserved", e.Source, e.Key, e.LocationID, e.Location)
}

// InvalidKeyError reports a key that is not exactly one character.
type InvalidKeyError struct {
	LocationID int
	Location   string
	Key        string
	Source     Source
}

func (e *InvalidKeyError) Error() string {
	return fmt.Sprintf("%s key %q at location %d (%q) must be a single character", e.Source, e.Key, e.LocationID, e.Location)
}

// UnknownTargetError reports a connection to a location id that does not
// exist.
type UnknownTargetError struct {
	LocationID int
	Location   string
	Key        string
	Target     int
}

func (e *UnknownTargetError) Error() string {
	return fmt.Sprintf("connection %q at location %d (%q) targets unknown location %d", e.Key, e.LocationID, e.Location, e.Target)
}

// MisplacedLocationError reports a location whose id does not match its
// position in the adventure.
type MisplacedLocationError struct {
	Position   int
	LocationID int
	Location   string
}

func (e *MisplacedLocationError) Error() string {
	return fmt.Sprintf("location %q at position %d has id %d", e.Location, e.Position, e.LocationID)
}

// IncompleteError reports an adventure built without one of its lists,
// or with a nil location. Position is -1 when the adventure itself has no
// location list.
type IncompleteError struct {
	Position int
	Location string
	Missing  string
}

func (e *IncompleteError) Error() string {
	if e.Position < 0 {
		return fmt.Sprintf("adventure has no %s", e.Missing)
	}
	if e.Location == "" {
		return fmt.Sprintf("position %d has no %s", e.Position, e.Missing)
	}
	return fmt.Sprintf("location %q at position %d has no %s", e.Location, e.Position, e.Missing)
}

type candidate struct {
	key    string
	source Source
}

// Validate checks every location of adv and returns the first violation
// found, or nil. Connections are checked before items, in authored order.
// Every item is checked whether or not it is currently visible. Keys only
// need to be unique within a location. An adventure or location built
// without its list is reported as an IncompleteError.
func Validate(adv *models.Adventure) error {
	if adv.Locations == nil {
		return &IncompleteError{Position: -1, Missing: "location list"}
	}
	count := adv.Locations.Len()
	for pos, loc := range adv.Locations.All() {
		if loc == nil {
			return &IncompleteError{Position: pos, Missing: "location"}
		}
		if loc.Items == nil {
			return &IncompleteError{Position: pos, Location: loc.Title, Missing: "item list"}
		}
		if loc.ID != pos {
			return &MisplacedLocationError{Position: pos, LocationID: loc.ID, Location: loc.Title}
		}

		candidates := make([]candidate, 0, len(loc.Connections)+loc.Items.Len())
		for _, c := range loc.Connections {
			if c.ID < 0 || c.ID >= count {
				return &UnknownTargetError{LocationID: loc.ID, Location: loc.Title, Key: c.Key, Target: c.ID}
			}
			candidates = append(candidates, candidate{key: c.Key, source: FromConnection})
		}
		for _, item := range loc.Items.All() {
			candidates = append(candidates, candidate{key: item.Key, source: FromItem})
		}

		if err := validateLocation(loc, candidates); err != nil {
			return err
		}
	}
	return nil
}

func validateLocation(loc *models.Location, candidates []candidate) error {
	seen := make(map[string]struct{}, len(candidates))
	for _, c := range candidates {
		if !IsSingle(c.key) {
			return &InvalidKeyError{LocationID: loc.ID, Location: loc.Title, Key: c.key, Source: c.source}
		}
		key := Normalize(c.key)
		if IsReserved(key) {
			return &ReservedKeyError{LocationID: loc.ID, Location: loc.Title, Key: key, Source: c.source}
		}
		if _, dup := seen[key]; dup {
			return &DuplicateKeyError{LocationID: loc.ID, Location: loc.Title, Key: key}
		}
		seen[key] = struct{}{}
	}
	return nil
}
