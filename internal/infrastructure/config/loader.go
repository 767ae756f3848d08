package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for files whose extension has no decoder.
var ErrUnsupportedFormat = errors.New("unsupported config format")

// stageExtensions is the lookup order for LoadStage.
var stageExtensions = []string{".json", ".yaml", ".yml", ".tmx"}

// Loader loads configuration from JSON, YAML or TMX files using fs.FS
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

// BasePath returns the directory the loader was created for.
func (l *Loader) BasePath() string {
	return l.basePath
}

// LoadPhysics loads physics.json, falling back to physics.yaml and
// physics.yml. Fields missing from the file keep their Default values.
func (l *Loader) LoadPhysics() (*PhysicsConfig, error) {
	name, err := l.find("physics", ".json", ".yaml", ".yml")
	if err != nil {
		return nil, err
	}
	return l.LoadPhysicsFile(name)
}

// LoadPhysicsFile loads a physics config from an explicit path within the loader's fs.
func (l *Loader) LoadPhysicsFile(name string) (*PhysicsConfig, error) {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}

	cfg := Default()
	if err := decode(name, data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", name, err)
	}

	return cfg, nil
}

// LoadStage loads stages/<name> trying .json, .yaml, .yml and .tmx in order.
func (l *Loader) LoadStage(name string) (*StageConfig, error) {
	p, err := l.find("stages/"+name, stageExtensions...)
	if err != nil {
		return nil, fmt.Errorf("stage %s: %w", name, err)
	}
	return l.LoadStageFile(p)
}

// LoadStageFile loads a stage from an explicit path within the loader's fs.
func (l *Loader) LoadStageFile(name string) (*StageConfig, error) {
	if ext(name) == ".tmx" {
		cfg, err := loadTiledStage(l.fsys, name)
		if err != nil {
			return nil, err
		}
		return cfg, nil
	}

	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read stage %s: %w", name, err)
	}

	var cfg StageConfig
	if err := decode(name, data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse stage %s: %w", name, err)
	}
	if cfg.ID == "" {
		cfg.ID = strings.TrimSuffix(path.Base(name), path.Ext(name))
	}

	return &cfg, nil
}

func (l *Loader) find(stem string, exts ...string) (string, error) {
	for _, e := range exts {
		p := stem + e
		if _, err := fs.Stat(l.fsys, p); err == nil {
			return p, nil
		}
	}
	return "", fmt.Errorf("no %s{%s} in %s: %w", stem, strings.Join(exts, ","), l.basePath, fs.ErrNotExist)
}

func decode(name string, data []byte, v any) error {
	switch ext(name) {
	case ".json":
		return json.Unmarshal(data, v)
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, v)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, name)
	}
}

func ext(name string) string {
	return strings.ToLower(path.Ext(name))
}
