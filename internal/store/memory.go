package store

import (
	"context"

	"github.com/tatianab/text-adventure/internal/models"
)

// MemoryStore holds adventures in a map. It hands out the stored pointer
// itself, which makes it a convenient fixture for tests.
type MemoryStore struct {
	adventures map[string]*models.Adventure
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{adventures: make(map[string]*models.Adventure)}
}

// Put stores adv under path.
func (m *MemoryStore) Put(path string, adv *models.Adventure) {
	m.adventures[path] = adv
}

func (m *MemoryStore) Load(ctx context.Context, path string) (*models.Adventure, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	adv, ok := m.adventures[path]
	if !ok {
		adv = models.NewAdventure("")
		m.adventures[path] = adv
	}
	return adv, nil
}

func (m *MemoryStore) Save(ctx context.Context, path string, adv *models.Adventure) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.adventures[path] = adv
	return nil
}
