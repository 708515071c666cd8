package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// GameConfig holds all loaded configurations
type GameConfig struct {
	Rules    *RulesConfig
	Entities *EntitiesConfig
}

// Loader loads game configuration using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LevelPath returns the file name of level n inside the config root.
func LevelPath(n int) string {
	return fmt.Sprintf("levels/level%02d.csv", n)
}

// LoadRules loads rules.json, falling back to DefaultRules when the file is absent.
func (l *Loader) LoadRules() (*RulesConfig, error) {
	cfg := DefaultRules()
	if err := l.readJSON("rules.json", cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultRules(), nil
		}
		return nil, err
	}
	return cfg, nil
}

// LoadEntities loads entities.json, falling back to DefaultEntities when the file is absent.
// Kinds missing from the file keep their default stats.
func (l *Loader) LoadEntities() (*EntitiesConfig, error) {
	var file EntitiesConfig
	if err := l.readJSON("entities.json", &file); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultEntities(), nil
		}
		return nil, err
	}

	cfg := DefaultEntities()
	for k, v := range file.Towers {
		cfg.Towers[k] = v
	}
	for k, v := range file.Enemies {
		cfg.Enemies[k] = v
	}
	for k, v := range file.Projectiles {
		cfg.Projectiles[k] = v
	}
	return cfg, nil
}

// LoadLevel loads levels/levelNN.csv. A missing file yields an error wrapping fs.ErrNotExist.
func (l *Loader) LoadLevel(n int) (*LevelConfig, error) {
	path := LevelPath(n)
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level %s: %w", path, err)
	}

	cfg, err := ParseLevel(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse level %s: %w", path, err)
	}

	return cfg, nil
}

// LoadAll loads all base configurations (rules, entities)
func (l *Loader) LoadAll() (*GameConfig, error) {
	rules, err := l.LoadRules()
	if err != nil {
		return nil, err
	}

	entities, err := l.LoadEntities()
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Rules:    rules,
		Entities: entities,
	}, nil
}

func (l *Loader) readJSON(name string, v any) error {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}
