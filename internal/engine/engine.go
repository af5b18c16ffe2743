package engine

import (
	"context"
	"fmt"

	"github.com/tatianab/text-adventure/internal/keys"
	"github.com/tatianab/text-adventure/internal/models"
)

// Loader reads an adventure. Implementations create and persist an empty
// adventure when nothing exists at path.
type Loader interface {
	Load(ctx context.Context, path string) (*models.Adventure, error)
}

// Saver writes an adventure.
type Saver interface {
	Save(ctx context.Context, path string, adv *models.Adventure) error
}

// Load reads the adventure at path and validates its keys. Either the
// whole adventure is valid or an error is returned; nothing partial is
// handed back.
func Load(ctx context.Context, loader Loader, path string) (*models.Adventure, error) {
	adv, err := loader.Load(ctx, path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	if adv == nil {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("loader returned no adventure")}
	}
	if err := keys.Validate(adv); err != nil {
		return nil, fmt.Errorf("validating adventure %s: %w", path, err)
	}
	return adv, nil
}

// Open loads the adventure at path and builds a session for it.
func Open(ctx context.Context, loader Loader, path string, opts ...Option) (*Session, error) {
	adv, err := Load(ctx, loader, path)
	if err != nil {
		return nil, err
	}
	return NewSession(adv, opts...)
}
