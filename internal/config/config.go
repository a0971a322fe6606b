package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Limits are the fixed bounds the parameter resolver clamps against.
type Limits struct {
	HoleRadius        float64 `json:"hole_radius"`
	MinTopShHeight    float64 `json:"min_top_shelf_height"`
	MinBotShUpHeight  float64 `json:"min_bottom_shelf_upper_height"`
	MinBotShLowHeight float64 `json:"min_bottom_shelf_lower_height"`
	MinRibHeight      float64 `json:"min_rib_height"`
}

// Geometry holds the fixed dimensions used by the beam builder.
type Geometry struct {
	ChamferSize  float64 `json:"chamfer_size"`  // bottom shelf edge chamfer
	NotchWidth   float64 `json:"notch_width"`   // top shelf strand notch
	NotchHeight  float64 `json:"notch_height"`  // top shelf strand notch
	HaunchDepth  float64 `json:"haunch_depth"`  // top shelf thickness at its outer edge
	FilletRadius float64 `json:"fillet_radius"` // rib to shelf fillet

	// TopWidthHandleDrop places the top shelf width handle this far below
	// the beam top.
	TopWidthHandleDrop float64 `json:"top_width_handle_drop"`
}

// Style holds the rendering properties of the beam element.
type Style struct {
	Pen    int `json:"pen"`
	Stroke int `json:"stroke"`
}

// Material holds the concrete properties used by reports.
type Material struct {
	Density float64 `json:"density"` // kg/m³
}

// Config aggregates everything the resolver, builder and reports need.
type Config struct {
	Limits   Limits   `json:"limits"`
	Geometry Geometry `json:"geometry"`
	Style    Style    `json:"style"`
	Material Material `json:"material"`
}

// Flags carries CLI overrides. Zero values leave the config untouched.
type Flags struct {
	HoleRadius float64
	Density    float64
}

// DefaultLimits returns the production bounds.
func DefaultLimits() Limits {
	return Limits{
		HoleRadius:        45.5,
		MinTopShHeight:    320,
		MinBotShUpHeight:  160,
		MinBotShLowHeight: 153,
		MinRibHeight:      467,
	}
}

// DefaultGeometry returns the production build constants.
func DefaultGeometry() Geometry {
	return Geometry{
		ChamferSize:        20,
		NotchWidth:         60,
		NotchHeight:        45,
		HaunchDepth:        100,
		FilletRadius:       100,
		TopWidthHandleDrop: 45,
	}
}

// Default returns the complete default configuration.
func Default() Config {
	return Config{
		Limits:   DefaultLimits(),
		Geometry: DefaultGeometry(),
		Style:    Style{Pen: 1, Stroke: 1},
		Material: Material{Density: 2500},
	}
}

// Load reads a JSON config file on top of Default.
// Fields not set in the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}

	return cfg, nil
}

// Resolve applies CLI flag overrides. Flags take priority when non-zero.
func (c *Config) Resolve(flags Flags) {
	if flags.HoleRadius > 0 {
		c.Limits.HoleRadius = flags.HoleRadius
	}
	if flags.Density > 0 {
		c.Material.Density = flags.Density
	}
}

// Validate checks that every constant is usable.
func (c Config) Validate() error {
	checks := []struct {
		name  string
		value float64
	}{
		{"hole_radius", c.Limits.HoleRadius},
		{"min_top_shelf_height", c.Limits.MinTopShHeight},
		{"min_bottom_shelf_upper_height", c.Limits.MinBotShUpHeight},
		{"min_bottom_shelf_lower_height", c.Limits.MinBotShLowHeight},
		{"min_rib_height", c.Limits.MinRibHeight},
		{"notch_width", c.Geometry.NotchWidth},
		{"notch_height", c.Geometry.NotchHeight},
		{"haunch_depth", c.Geometry.HaunchDepth},
		{"density", c.Material.Density},
	}
	for _, chk := range checks {
		if chk.value <= 0 {
			return fmt.Errorf("%s must be positive, got %.2f", chk.name, chk.value)
		}
	}
	if c.Geometry.ChamferSize < 0 || c.Geometry.FilletRadius < 0 {
		return fmt.Errorf("chamfer_size and fillet_radius must not be negative")
	}
	return nil
}
