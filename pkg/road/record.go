package road

import "github.com/Faultbox/roadexport/pkg/math"

// RecordClass is the scene object class written for every record.
const RecordClass = "DecalRoad"

// Rounding applied to emitted values.
const (
	coordPlaces  = 5
	radiusPlaces = 2
	fadePlaces   = 2
)

// Node is one control point of a decal road.
type Node struct {
	X, Y, Z float64
	Radius  float64
}

// Pos returns the node position.
func (n Node) Pos() math.Vec3 {
	return math.Vec3{X: n.X, Y: n.Y, Z: n.Z}
}

// Record is one DecalRoad scene object. Fields appear here in the order
// they are written.
type Record struct {
	Class        string
	PersistentID string
	Parent       string
	Position     math.Vec3

	BreakAngle     float64
	DecalBias      float64
	Detail         float64
	DistanceFade   [2]float64 // start, size
	Drivability    float64
	EndTangent     bool
	FlipDirection  bool
	GatedRoad      bool
	HiddenInNavi   bool
	ImprovedSpline bool
	LanesLeft      int
	LanesRight     int
	Looped         bool
	Material       string
	Nodes          []Node
	OneWay         bool
	OverObjects    bool
	RenderPriority int
	Smoothness     float64
	StartEndFade   [2]float64 // start, end
	StartTangent   bool
	TextureLength  float64
	ZBias          float64
}

// newRecord returns a record with its header filled from opts and no nodes.
func newRecord(opts Options) Record {
	return Record{
		Class:          RecordClass,
		Parent:         opts.ParentName,
		BreakAngle:     opts.BreakAngle,
		DecalBias:      opts.DecalBias,
		Detail:         opts.Detail,
		DistanceFade:   [2]float64{math.Round(opts.DistanceFadeStart, fadePlaces), math.Round(opts.DistanceFadeSize, fadePlaces)},
		Drivability:    opts.Drivability,
		EndTangent:     opts.EndTangent,
		FlipDirection:  opts.FlipAIDirection,
		GatedRoad:      opts.GatedRoad,
		HiddenInNavi:   opts.HiddenInNavi,
		ImprovedSpline: opts.ImprovedSpline,
		LanesLeft:      opts.LanesLeft,
		LanesRight:     opts.LanesRight,
		Looped:         opts.Looped,
		Material:       opts.Material,
		OneWay:         opts.OneWay,
		OverObjects:    opts.OverObjects,
		RenderPriority: opts.RenderPriority,
		Smoothness:     opts.Smoothness,
		StartEndFade:   [2]float64{math.Round(opts.StartFade, fadePlaces), math.Round(opts.EndFade, fadePlaces)},
		StartTangent:   opts.StartTangent,
		TextureLength:  opts.TextureLength,
		ZBias:          opts.ZBias,
	}
}

// First returns the first node, or false if the record has none.
func (r Record) First() (Node, bool) {
	if len(r.Nodes) == 0 {
		return Node{}, false
	}
	return r.Nodes[0], true
}

// Last returns the last node, or false if the record has none.
func (r Record) Last() (Node, bool) {
	if len(r.Nodes) == 0 {
		return Node{}, false
	}
	return r.Nodes[len(r.Nodes)-1], true
}
