package config

// StageConfig is the root config for stage files.
//
// Coordinates are world units with y pointing up. Obstacle X/Y name the
// center of the box. Rows of Layers.Collision run top to bottom, so the
// last row sits on y = 0.
type StageConfig struct {
	ID          string                       `json:"id" yaml:"id"`
	Name        string                       `json:"name" yaml:"name"`
	TileSize    int                          `json:"tileSize,omitempty" yaml:"tileSize,omitempty"`
	PlayerSpawn PositionConfig               `json:"playerSpawn" yaml:"playerSpawn"`
	Layers      LayersConfig                 `json:"layers,omitempty" yaml:"layers,omitempty"`
	TileMapping map[string]TileMappingConfig `json:"tileMapping,omitempty" yaml:"tileMapping,omitempty"`
	Obstacles   []ObstacleConfig             `json:"obstacles" yaml:"obstacles"`
}

type PositionConfig struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

type LayersConfig struct {
	Collision []string `json:"collision,omitempty" yaml:"collision,omitempty"`
}

// TileMappingConfig maps one collision layer character to an obstacle kind.
// Characters without a mapping are empty space.
type TileMappingConfig struct {
	Kind string `json:"kind" yaml:"kind"`
}

type ObstacleConfig struct {
	Name     string          `json:"name,omitempty" yaml:"name,omitempty"`
	Kind     string          `json:"kind" yaml:"kind" jsonschema:"example=ground,example=wall,example=ground|wall"`
	X        float64         `json:"x" yaml:"x"`
	Y        float64         `json:"y" yaml:"y"`
	Width    float64         `json:"width" yaml:"width"`
	Height   float64         `json:"height" yaml:"height"`
	Velocity *PositionConfig `json:"velocity,omitempty" yaml:"velocity,omitempty"`
	Path     *PathConfig     `json:"path,omitempty" yaml:"path,omitempty"`
}

// PathConfig moves an obstacle back and forth between its position and To.
type PathConfig struct {
	To       PositionConfig `json:"to" yaml:"to"`
	Duration float64        `json:"duration" yaml:"duration"`
	Easing   string         `json:"easing,omitempty" yaml:"easing,omitempty" jsonschema:"enum=linear,enum=inOutSine,enum=inOutQuad"`
}
