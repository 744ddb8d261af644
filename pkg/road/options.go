// Package road converts an ordered road centerline into DecalRoad scene
// records and renders them in the level file's object-literal format.
package road

// Options holds the export settings for one decal road. The values are
// copied into every record as-is; only the split settings are checked.
type Options struct {
	// Geometry
	Radius      float64 `yaml:"radius" toml:"radius"`
	Flip        bool    `yaml:"flip" toml:"flip"`
	OverlapEnds bool    `yaml:"overlap_ends" toml:"overlap_ends"`
	Split       bool    `yaml:"split" toml:"split"`
	SplitIter   int     `yaml:"split_iter" toml:"split_iter"` // Nodes per record when Split is set
	ParentName  string  `yaml:"parent_name" toml:"parent_name"`

	// Pathfinding
	Drivability     float64 `yaml:"drivability" toml:"drivability"`
	LanesLeft       int     `yaml:"lanes_left" toml:"lanes_left"`
	LanesRight      int     `yaml:"lanes_right" toml:"lanes_right"`
	OneWay          bool    `yaml:"one_way" toml:"one_way"`
	FlipAIDirection bool    `yaml:"flip_ai_direction" toml:"flip_ai_direction"`
	GatedRoad       bool    `yaml:"gated_road" toml:"gated_road"`
	UseSubdivision  bool    `yaml:"use_subdivision" toml:"use_subdivision"`

	// Improved spline
	ImprovedSpline bool    `yaml:"improved_spline" toml:"improved_spline"`
	StartTangent   bool    `yaml:"start_tangent" toml:"start_tangent"`
	EndTangent     bool    `yaml:"end_tangent" toml:"end_tangent"`
	Looped         bool    `yaml:"looped" toml:"looped"`
	Smoothness     float64 `yaml:"smoothness" toml:"smoothness"`
	Detail         float64 `yaml:"detail" toml:"detail"`

	// Decal rendering
	OverObjects       bool    `yaml:"over_objects" toml:"over_objects"`
	Material          string  `yaml:"material" toml:"material"`
	TextureLength     float64 `yaml:"texture_length" toml:"texture_length"`
	BreakAngle        float64 `yaml:"break_angle" toml:"break_angle"` // Degrees
	RenderPriority    int     `yaml:"render_priority" toml:"render_priority"`
	ZBias             float64 `yaml:"z_bias" toml:"z_bias"`
	DecalBias         float64 `yaml:"decal_bias" toml:"decal_bias"`
	DistanceFadeStart float64 `yaml:"distance_fade_start" toml:"distance_fade_start"`
	DistanceFadeSize  float64 `yaml:"distance_fade_size" toml:"distance_fade_size"`
	StartFade         float64 `yaml:"start_fade" toml:"start_fade"`
	EndFade           float64 `yaml:"end_fade" toml:"end_fade"`
	HiddenInNavi      bool    `yaml:"hidden_in_navi" toml:"hidden_in_navi"`
}

// DefaultOptions returns the settings the level editor uses for a new road.
func DefaultOptions() Options {
	return Options{
		Radius:         10,
		SplitIter:      21,
		Drivability:    -1,
		LanesLeft:      1,
		LanesRight:     1,
		UseSubdivision: true,
		ImprovedSpline: true,
		Smoothness:     0.5,
		Detail:         0.1,
		TextureLength:  10,
		BreakAngle:     3,
		RenderPriority: 10,
		DecalBias:      0.001,
	}
}

// stitchCount is the number of nodes copied from the previous record into
// every record after the first.
func (o Options) stitchCount() int {
	if o.OverlapEnds {
		return 2
	}
	return 1
}
