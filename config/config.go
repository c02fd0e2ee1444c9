// Package config holds the tunable constants of the layout and routing
// core. The routing weights are empirically tuned values validated visually;
// they are configuration, not load-bearing correctness constants.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Routing controls connector path search and scoring.
type Routing struct {
	// TurnPenalty is added to a candidate's score per direction change.
	TurnPenalty float64 `yaml:"turn_penalty"`
	// FacingBonus is subtracted when the chosen sides face each other
	// along the dominant offset between the two endpoints.
	FacingBonus float64 `yaml:"facing_bonus"`
	// Clearance is the perpendicular distance a path keeps from item
	// edges when leaving and entering.
	Clearance float64 `yaml:"clearance"`
	// ArrowGap shortens the final segment so an arrowhead can be drawn
	// without overlapping the target.
	ArrowGap float64 `yaml:"arrow_gap"`
	// StartGap offsets the first segment off the source edge.
	StartGap float64 `yaml:"start_gap"`
	// MaxNodes bounds the A* waypoint expansion.
	MaxNodes int `yaml:"max_nodes"`
}

// Bounds controls how obstacle rectangles are derived from items.
type Bounds struct {
	// RoutingMargin pads every item rectangle used as a routing obstacle.
	RoutingMargin float64 `yaml:"routing_margin"`
	// SelectionMargin pads rectangles used for connection-handle hit
	// testing only.
	SelectionMargin float64 `yaml:"selection_margin"`
	// GroupMargin pads a group's descendant union.
	GroupMargin float64 `yaml:"group_margin"`
	// GroupTitleReserve reserves space above a group's content for its
	// title bar.
	GroupTitleReserve float64 `yaml:"group_title_reserve"`
	// Minimum placeholder box for groups with no visible children.
	EmptyGroupWidth  float64 `yaml:"empty_group_width"`
	EmptyGroupHeight float64 `yaml:"empty_group_height"`
}

// Grid controls the auto-arranged grid sub-layout of groups.
type Grid struct {
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
	Gap        float64 `yaml:"gap"`
	Padding    float64 `yaml:"padding"`
}

// Config is the full tunable set.
type Config struct {
	Routing Routing `yaml:"routing"`
	Bounds  Bounds  `yaml:"bounds"`
	Grid    Grid    `yaml:"grid"`
}

// Default returns the tuned defaults.
func Default() Config {
	return Config{
		Routing: Routing{
			TurnPenalty: 50,
			FacingBonus: 100,
			Clearance:   32,
			ArrowGap:    14,
			StartGap:    4,
			MaxNodes:    4096,
		},
		Bounds: Bounds{
			RoutingMargin:     8,
			SelectionMargin:   12,
			GroupMargin:       16,
			GroupTitleReserve: 32,
			EmptyGroupWidth:   160,
			EmptyGroupHeight:  120,
		},
		Grid: Grid{
			CellWidth:  160,
			CellHeight: 120,
			Gap:        24,
			Padding:    24,
		},
	}
}

// Load reads a YAML file over the defaults. Missing fields keep their
// default values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects configurations the router cannot work with.
func (c Config) Validate() error {
	if c.Routing.Clearance <= 0 {
		return fmt.Errorf("routing.clearance must be positive, got %v", c.Routing.Clearance)
	}
	if c.Routing.MaxNodes <= 0 {
		return fmt.Errorf("routing.max_nodes must be positive, got %v", c.Routing.MaxNodes)
	}
	if c.Grid.CellWidth <= 0 || c.Grid.CellHeight <= 0 {
		return fmt.Errorf("grid cells must have positive size, got %vx%v", c.Grid.CellWidth, c.Grid.CellHeight)
	}
	if c.Bounds.EmptyGroupWidth <= 0 || c.Bounds.EmptyGroupHeight <= 0 {
		return fmt.Errorf("empty group placeholder must have positive size")
	}
	return nil
}
