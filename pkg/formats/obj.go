package formats

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	gobj "github.com/flywave/go-obj"
	"github.com/flywave/go3d/vec3"

	"github.com/Faultbox/roadexport/pkg/math"
)

// OBJ format errors.
var (
	ErrInvalidOBJ = errors.New("invalid OBJ data")
)

// OBJ is the vertex chain of a Wavefront OBJ file. Vertices keep their file
// order, which is the order the road centerline was modeled in.
type OBJ struct {
	Vertices []math.Vec3
	Faces    int
}

// ParseOBJ parses OBJ data from bytes.
func ParseOBJ(data []byte) (*OBJ, error) {
	reader := &gobj.ObjReader{}
	if err := reader.Read(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOBJ, err)
	}

	obj := &OBJ{
		Vertices: make([]math.Vec3, len(reader.V)),
		Faces:    len(reader.F),
	}
	for i, v := range reader.V {
		obj.Vertices[i] = fromVec3(v)
	}
	return obj, nil
}

// ParseOBJFile parses an OBJ file from disk.
func ParseOBJFile(path string) (*OBJ, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading OBJ file: %w", err)
	}
	return ParseOBJ(data)
}

// Bounds returns the axis-aligned bounding box of the vertices.
func (o *OBJ) Bounds() (min, max math.Vec3) {
	if len(o.Vertices) == 0 {
		return math.Vec3{}, math.Vec3{}
	}

	min, max = o.Vertices[0], o.Vertices[0]
	for _, v := range o.Vertices[1:] {
		min.X, max.X = minMax(v.X, min.X, max.X)
		min.Y, max.Y = minMax(v.Y, min.Y, max.Y)
		min.Z, max.Z = minMax(v.Z, min.Z, max.Z)
	}
	return min, max
}

func minMax(v, lo, hi float64) (float64, float64) {
	if v < lo {
		lo = v
	}
	if v > hi {
		hi = v
	}
	return lo, hi
}

// fromVec3 widens a single precision OBJ vertex.
func fromVec3(v vec3.T) math.Vec3 {
	return math.Vec3{X: float64(v[0]), Y: float64(v[1]), Z: float64(v[2])}
}
