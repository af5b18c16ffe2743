package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/tatianab/text-adventure/internal/models"
)

// FileStore keeps adventures as YAML files.
type FileStore struct {
	logger *zap.Logger
}

func NewFileStore(logger *zap.Logger) *FileStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FileStore{logger: logger}
}

// Load reads the adventure at path. A missing file is replaced by an empty
// adventure, which is written back before returning.
func (f *FileStore) Load(ctx context.Context, path string) (*models.Adventure, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		adv := models.NewAdventure("")
		if err := f.Save(ctx, path, adv); err != nil {
			return nil, fmt.Errorf("initializing adventure file %s: %w", path, err)
		}
		f.logger.Info("created empty adventure file", zap.String("path", path))
		return adv, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading adventure file %s: %w", path, err)
	}

	adv, err := DecodeYAML(data)
	if err != nil {
		return nil, fmt.Errorf("decoding adventure file %s: %w", path, err)
	}
	f.logger.Debug("loaded adventure file",
		zap.String("path", path),
		zap.Int("locations", adv.Locations.Len()),
	)
	return adv, nil
}

// Save writes adv to path, creating parent directories as needed.
func (f *FileStore) Save(ctx context.Context, path string, adv *models.Adventure) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	data, err := EncodeYAML(adv)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// DecodeYAML parses an adventure document. Unknown fields are rejected and
// an empty document is an empty adventure.
func DecodeYAML(data []byte) (*models.Adventure, error) {
	var doc adventureDocument
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	for i := range doc.Locations {
		doc.Locations[i].Description = strings.TrimSpace(doc.Locations[i].Description)
	}
	return doc.toModel(), nil
}

// EncodeYAML renders adv as a YAML document.
func EncodeYAML(adv *models.Adventure) ([]byte, error) {
	return yaml.Marshal(newDocument(adv))
}

// ListAdventures returns the YAML files in dir, sorted by name. A missing
// directory holds no adventures.
func ListAdventures(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return []string{}, nil
	}
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml") {
			paths = append(paths, filepath.Join(dir, name))
		}
	}
	return paths, nil
}
