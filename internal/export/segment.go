package export

import (
	"github.com/Faultbox/roadexport/pkg/math"
	"github.com/Faultbox/roadexport/pkg/road"
)

// Segment summarizes one encoded record.
type Segment struct {
	Index    int
	Nodes    int
	Position math.Vec3
	End      math.Vec3
	Length   float64 // Summed node-to-node distance
}

// Summarize returns one Segment per record.
func Summarize(records []road.Record) []Segment {
	segments := make([]Segment, len(records))
	for i, r := range records {
		pts := make([]math.Vec3, len(r.Nodes))
		for j, n := range r.Nodes {
			pts[j] = n.Pos()
		}

		s := Segment{
			Index:    i,
			Nodes:    len(r.Nodes),
			Position: r.Position,
			Length:   math.PathLength(pts),
		}
		if last, ok := r.Last(); ok {
			s.End = last.Pos()
		}
		segments[i] = s
	}
	return segments
}
