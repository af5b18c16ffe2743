package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tatianab/text-adventure/internal/keys"
	"github.com/tatianab/text-adventure/internal/models"
	"github.com/tatianab/text-adventure/internal/store"
)

type failingLoader struct {
	err error
}

func (f failingLoader) Load(context.Context, string) (*models.Adventure, error) {
	return nil, f.err
}

func TestLoad_Valid(t *testing.T) {
	mem := store.NewMemoryStore()
	mem.Put("fixture", startAndCave())

	adv, err := Load(context.Background(), mem, "fixture")
	require.NoError(t, err)
	assert.Equal(t, 2, adv.Locations.Len())
}

func TestLoad_LoaderFailure(t *testing.T) {
	cause := errors.New("disk on fire")
	_, err := Load(context.Background(), failingLoader{err: cause}, "adventure.yaml")

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, "adventure.yaml", loadErr.Path)
	assert.ErrorIs(t, err, cause)
}

func TestLoad_DuplicateKeysAbort(t *testing.T) {
	adv := startAndCave()
	start, _ := adv.Location(0)
	start.Items.Append(&models.Item{Name: "Apple", Key: "A", Visible: true})

	mem := store.NewMemoryStore()
	mem.Put("dup", adv)

	loaded, err := Load(context.Background(), mem, "dup")
	assert.Nil(t, loaded)
	var dupErr *keys.DuplicateKeyError
	require.ErrorAs(t, err, &dupErr)
	assert.Equal(t, "Start", dupErr.Location)
	assert.Equal(t, "A", dupErr.Key)
}

func TestLoad_ReservedKeyAborts(t *testing.T) {
	adv := startAndCave()
	start, _ := adv.Location(0)
	start.Items.Append(&models.Item{Name: "Spade", Key: "S"})

	mem := store.NewMemoryStore()
	mem.Put("reserved", adv)

	_, err := Load(context.Background(), mem, "reserved")
	var reservedErr *keys.ReservedKeyError
	require.ErrorAs(t, err, &reservedErr)
	assert.Equal(t, 0, reservedErr.LocationID)
	assert.Equal(t, keys.FromItem, reservedErr.Source)
}

func TestLoad_AdventureWithoutLocationList(t *testing.T) {
	mem := store.NewMemoryStore()
	mem.Put("bare", &models.Adventure{Title: "Bare"})

	loaded, err := Load(context.Background(), mem, "bare")
	assert.Nil(t, loaded)
	var incomplete *keys.IncompleteError
	assert.ErrorAs(t, err, &incomplete)
}

func TestNewSession_LocationWithoutItemList(t *testing.T) {
	_, err := NewSession(models.NewAdventure("", &models.Location{ID: 0, Title: "Bare"}))

	var incomplete *keys.IncompleteError
	require.ErrorAs(t, err, &incomplete)
	assert.Equal(t, "Bare", incomplete.Location)
}

func TestOpen(t *testing.T) {
	mem := store.NewMemoryStore()
	mem.Put("fixture", startAndCave())

	s, err := Open(context.Background(), mem, "fixture", WithStartLocation(1))
	require.NoError(t, err)
	require.NoError(t, s.Begin())
	assert.Equal(t, "Cave", s.View().Title)
}

func TestOpen_MissingAdventureIsEmpty(t *testing.T) {
	s, err := Open(context.Background(), store.NewMemoryStore(), "nothing")
	require.NoError(t, err)

	var violation *InvariantViolation
	assert.ErrorAs(t, s.Begin(), &violation)
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "action use is not supported for \"Key\"", (&UnsupportedActionError{Action: ActionUse, Item: "Key"}).Error())
	assert.Equal(t, "invariant violation: broken", (&InvariantViolation{Reason: "broken"}).Error())
}

func TestStateStrings(t *testing.T) {
	for state := range rules {
		assert.NotEqual(t, "unknown", state.String())
		for _, r := range rules[state] {
			assert.NotEqual(t, "unknown", r.action.String())
			assert.NotEqual(t, "unknown", r.next.String())
		}
	}
}
