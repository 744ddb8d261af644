// Package export runs the mesh-to-DecalRoad conversion: it loads the
// centerline, places it in world space, encodes it and writes the records.
package export

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/roadexport/internal/config"
	"github.com/Faultbox/roadexport/pkg/formats"
	"github.com/Faultbox/roadexport/pkg/math"
	"github.com/Faultbox/roadexport/pkg/road"
)

// ErrSelectionMissing is returned when there is no centerline to export:
// no source mesh configured, or a mesh without vertices.
var ErrSelectionMissing = errors.New("no decal road selected")

// Result describes a finished export.
type Result struct {
	Path     string
	Points   int
	Records  int
	Bytes    int
	Segments []Segment
	Duration time.Duration
}

// Exporter converts the configured mesh into DecalRoad records.
type Exporter struct {
	cfg *config.Config
	log *zap.Logger

	// Debounce is how long Watch waits after the last change before
	// exporting again.
	Debounce time.Duration
}

// New creates an exporter. A nil logger discards output.
func New(cfg *config.Config, log *zap.Logger) *Exporter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Exporter{
		cfg:      cfg,
		log:      log.Named("export"),
		Debounce: 200 * time.Millisecond,
	}
}

// LoadPoints reads the source mesh and returns its vertices in world space.
func (e *Exporter) LoadPoints() ([]math.Vec3, error) {
	path := e.cfg.Source.Mesh
	if path == "" {
		return nil, fmt.Errorf("%w: no source mesh given", ErrSelectionMissing)
	}

	obj, err := formats.ParseOBJFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	if len(obj.Vertices) == 0 {
		return nil, fmt.Errorf("%w: %s has no vertices", ErrSelectionMissing, path)
	}

	points := obj.Vertices
	if m := e.cfg.Source.Matrix(); !m.IsIdentity() {
		points = m.TransformPoints(points)
	}

	min, max := obj.Bounds()
	e.log.Debug("centerline loaded",
		zap.String("mesh", path),
		zap.Int("vertices", len(points)),
		zap.Int("faces", obj.Faces),
		zap.Any("min", min),
		zap.Any("max", max),
	)
	return points, nil
}

// Encode loads the centerline and encodes it without writing anything.
func (e *Exporter) Encode() ([]math.Vec3, []road.Record, error) {
	points, err := e.LoadPoints()
	if err != nil {
		return nil, nil, err
	}

	records, err := road.Encode(points, e.cfg.Road)
	if err != nil {
		return nil, nil, err
	}
	return points, records, nil
}

// Run performs one export. The selection is checked before the output file
// is touched, and the output is replaced in a single step.
func (e *Exporter) Run() (*Result, error) {
	start := time.Now()

	points, records, err := e.Encode()
	if err != nil {
		return nil, err
	}

	segments := Summarize(records)
	for _, s := range segments {
		e.log.Debug("decal road segment",
			zap.Int("index", s.Index),
			zap.Int("nodes", s.Nodes),
			zap.Any("position", s.Position),
			zap.Float64("length", s.Length),
		)
	}

	data := road.Marshal(records)
	path := e.cfg.Output.Path
	if err := WriteFileAtomic(path, data, 0644); err != nil {
		return nil, err
	}

	res := &Result{
		Path:     path,
		Points:   len(points),
		Records:  len(records),
		Bytes:    len(data),
		Segments: segments,
		Duration: time.Since(start),
	}
	e.log.Info("decal road exported",
		zap.String("path", res.Path),
		zap.Int("points", res.Points),
		zap.Int("records", res.Records),
		zap.Int("bytes", res.Bytes),
		zap.Duration("took", res.Duration),
	)
	return res, nil
}
