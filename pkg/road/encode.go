package road

import (
	"errors"
	"fmt"

	"github.com/Faultbox/roadexport/pkg/math"
)

// ErrInvalidSplitIter is returned when the nodes-per-record setting leaves
// no room for new points after the stitched nodes, so splitting would never
// advance.
var ErrInvalidSplitIter = errors.New("split iter too small")

// traversal addresses points in export order, mirrored when flipped.
type traversal struct {
	points []math.Vec3
	flip   bool
}

// at returns the point at traversal index i. Indices outside the sequence
// are a normal miss near the ends, not an error.
func (t traversal) at(i int) (math.Vec3, bool) {
	n := len(t.points)
	if i < 0 || i >= n {
		return math.Vec3{}, false
	}
	if t.flip {
		i = (n - 1) - i
	}
	return t.points[i], true
}

// Encode converts an ordered point chain into DecalRoad records.
//
// Without splitting the whole chain becomes one record. With splitting each
// record holds at most opts.SplitIter nodes; every record after the first
// starts with the previous record's last point (and, with OverlapEnds, the
// point before that) so consecutive records join without a gap. Stitched
// nodes count toward the limit.
//
// An empty chain yields no records and no error.
func Encode(points []math.Vec3, opts Options) ([]Record, error) {
	n := len(points)
	if n == 0 {
		return nil, nil
	}

	capacity := n
	if opts.Split {
		capacity = opts.SplitIter
		if capacity <= opts.stitchCount() {
			return nil, fmt.Errorf("%w: %d nodes per record, need more than %d",
				ErrInvalidSplitIter, capacity, opts.stitchCount())
		}
	} else {
		opts.OverlapEnds = false
	}

	tr := traversal{points: points, flip: opts.Flip}
	var records []Record

	for i := 0; i < n; {
		rec := newRecord(opts)
		if opts.Split {
			rec.Nodes = make([]Node, 0, capacity)
		} else {
			rec.Nodes = make([]Node, 0, n)
		}

		if opts.OverlapEnds {
			if p, ok := tr.at(i - 2); ok {
				rec.Nodes = append(rec.Nodes, makeNode(p, opts.Radius))
			}
		}
		if p, ok := tr.at(i - 1); ok {
			rec.Nodes = append(rec.Nodes, makeNode(p, opts.Radius))
		}

		anchor, ok := rec.First()
		if !ok {
			p, _ := tr.at(i)
			anchor = makeNode(p, opts.Radius)
		}
		rec.Position = anchor.Pos()

		for len(rec.Nodes) < capacity && i < n {
			p, _ := tr.at(i)
			rec.Nodes = append(rec.Nodes, makeNode(p, opts.Radius))
			i++
		}

		records = append(records, rec)
	}

	return records, nil
}

func makeNode(p math.Vec3, radius float64) Node {
	p = p.Round(coordPlaces)
	return Node{X: p.X, Y: p.Y, Z: p.Z, Radius: math.Round(radius, radiusPlaces)}
}
