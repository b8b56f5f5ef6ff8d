package scene

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/lao-tseu-is-alive/go-ray-reflection/pkg/geometry"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed scene.schema.json
var schemaSource string

const schemaURL = "scene.schema.json"

// ErrInvalidConfig is wrapped by every semantic check failing in Config.Validate.
var ErrInvalidConfig = errors.New("invalid scene config")

type Config struct {
	// Window
	WindowTitle  string `json:"windowTitle"`
	ScreenWidth  int    `json:"screenWidth"`
	ScreenHeight int    `json:"screenHeight"`
	Resizable    bool   `json:"resizable"`
	Fullscreen   bool   `json:"fullscreen"`

	// Initial handle positions
	CircleCenter geometry.Point `json:"circleCenter"`
	RayOrigin    geometry.Point `json:"rayOrigin"`
	RayTarget    geometry.Point `json:"rayTarget"`

	// Circle radius and the range of its slider
	CircleRadius float64 `json:"circleRadius"`
	MinRadius    float64 `json:"minRadius"`
	MaxRadius    float64 `json:"maxRadius"`

	// Rendering
	CircleSegments    int     `json:"circleSegments"` // sides of the polygon drawn for the circle
	LineThickness     float64 `json:"lineThickness"`
	ShowTangent       bool    `json:"showTangent"`
	ShowRadius        bool    `json:"showRadius"`
	ShowIntersections bool    `json:"showIntersections"`
	ShowHandles       bool    `json:"showHandles"`

	// LogFrames logs the frame geometry on every click.
	LogFrames bool `json:"logFrames"`
}

func DefaultConfig() *Config {
	return &Config{
		WindowTitle:       "2d",
		ScreenWidth:       800,
		ScreenHeight:      600,
		Resizable:         true,
		CircleCenter:      geometry.Point{X: 400, Y: 300},
		RayOrigin:         geometry.Point{X: 100, Y: 400},
		RayTarget:         geometry.Point{X: 300, Y: 300},
		CircleRadius:      100,
		MinRadius:         10,
		MaxRadius:         280,
		CircleSegments:    255,
		LineThickness:     2,
		ShowTangent:       true,
		ShowRadius:        true,
		ShowIntersections: true,
		ShowHandles:       true,
	}
}

// Viewport returns the configured screen size as a viewport.
func (c *Config) Viewport() geometry.Viewport {
	return geometry.NewViewport(c.ScreenWidth, c.ScreenHeight)
}

// Validate checks the rules the JSON schema cannot express.
func (c *Config) Validate() error {
	if c.MinRadius > c.MaxRadius {
		return fmt.Errorf("%w: minRadius %.2f is above maxRadius %.2f", ErrInvalidConfig, c.MinRadius, c.MaxRadius)
	}
	if c.CircleRadius < c.MinRadius || c.CircleRadius > c.MaxRadius {
		return fmt.Errorf("%w: circleRadius %.2f is outside [%.2f, %.2f]", ErrInvalidConfig, c.CircleRadius, c.MinRadius, c.MaxRadius)
	}
	if c.CircleSegments < 3 {
		return fmt.Errorf("%w: circleSegments %d is below 3", ErrInvalidConfig, c.CircleSegments)
	}
	return nil
}

// LoadConfig loads configuration from a JSON file and validates it against the
// embedded schema. Keys missing from the file keep their DefaultConfig value.
func LoadConfig(configFile string) (*Config, error) {
	// 1. Compile Schema
	sch, err := jsonschema.CompileString(schemaURL, schemaSource)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	// 2. Read Config File
	b, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// 3. Validate
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, fmt.Errorf("failed to decode config json: %w", err)
	}
	if err := sch.Validate(v); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// 4. Unmarshal into Struct, over the defaults
	cfg := DefaultConfig()
	if err := json.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
