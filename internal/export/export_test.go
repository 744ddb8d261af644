package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Faultbox/roadexport/internal/config"
	"github.com/Faultbox/roadexport/pkg/math"
	"github.com/Faultbox/roadexport/pkg/road"
)

// writeLineOBJ writes an OBJ with n vertices along X and returns its path.
func writeLineOBJ(t *testing.T, dir string, n int) string {
	t.Helper()
	var b strings.Builder
	b.WriteString("o Road\n")
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, "v %d.0 0.0 0.0\n", i)
	}
	path := filepath.Join(dir, "road.obj")
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		t.Fatalf("failed to write test OBJ: %v", err)
	}
	return path
}

func testConfig(dir, mesh string) *config.Config {
	cfg := config.Default()
	cfg.Source.Mesh = mesh
	cfg.Output.Path = filepath.Join(dir, "road.json")
	return cfg
}

func TestRun_WritesRecords(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(dir, writeLineOBJ(t, dir, 10))
	cfg.Road.Split = true
	cfg.Road.SplitIter = 4

	res, err := New(cfg, nil).Run()
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	// 4 + 3 + 3 new points
	if res.Records != 3 {
		t.Errorf("expected 3 records, got %d", res.Records)
	}
	if res.Points != 10 {
		t.Errorf("expected 10 points, got %d", res.Points)
	}

	data, err := os.ReadFile(cfg.Output.Path)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	if len(data) != res.Bytes {
		t.Errorf("expected %d bytes on disk, got %d", res.Bytes, len(data))
	}
	if lines := bytes.Count(data, []byte("\n")); lines != 3 {
		t.Errorf("expected 3 lines, got %d", lines)
	}
	if !bytes.HasPrefix(data, []byte(`{"class":"DecalRoad"`)) {
		t.Errorf("unexpected output start: %.40s", data)
	}
}

func TestRun_AppliesTransform(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(dir, writeLineOBJ(t, dir, 2))
	cfg.Source.Translation = [3]float64{100, 50, 0}

	_, records, err := New(cfg, nil).Encode()
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	want := road.Node{X: 101, Y: 50, Z: 0, Radius: 10}
	if got := records[0].Nodes[1]; got != want {
		t.Errorf("expected node %v, got %v", want, got)
	}
}

func TestRun_SelectionMissing(t *testing.T) {
	dir := t.TempDir()

	emptyMesh := filepath.Join(dir, "empty.obj")
	if err := os.WriteFile(emptyMesh, []byte("# nothing\n"), 0644); err != nil {
		t.Fatalf("failed to write test OBJ: %v", err)
	}

	for _, mesh := range []string{"", emptyMesh} {
		cfg := testConfig(dir, mesh)

		_, err := New(cfg, nil).Run()
		if !errors.Is(err, ErrSelectionMissing) {
			t.Errorf("mesh %q: expected ErrSelectionMissing, got %v", mesh, err)
		}
		if _, err := os.Stat(cfg.Output.Path); !os.IsNotExist(err) {
			t.Errorf("mesh %q: output must not be created", mesh)
		}
	}
}

func TestRun_InvalidSplitKeepsOldOutput(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(dir, writeLineOBJ(t, dir, 5))
	if err := os.WriteFile(cfg.Output.Path, []byte("previous\n"), 0644); err != nil {
		t.Fatalf("failed to write old output: %v", err)
	}

	cfg.Road.Split = true
	cfg.Road.SplitIter = 1

	if _, err := New(cfg, nil).Run(); !errors.Is(err, road.ErrInvalidSplitIter) {
		t.Fatalf("expected ErrInvalidSplitIter, got %v", err)
	}

	data, _ := os.ReadFile(cfg.Output.Path)
	if string(data) != "previous\n" {
		t.Errorf("expected old output untouched, got %q", data)
	}
}

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.json")

	if err := WriteFileAtomic(path, []byte("one\n"), 0644); err != nil {
		t.Fatalf("WriteFileAtomic failed: %v", err)
	}
	if err := WriteFileAtomic(path, []byte("two\n"), 0644); err != nil {
		t.Fatalf("WriteFileAtomic failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	if string(data) != "two\n" {
		t.Errorf("expected replaced contents, got %q", data)
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("expected only the output file, found %d entries", len(entries))
	}

	if err := WriteFileAtomic(filepath.Join(dir, "missing", "out.json"), nil, 0644); err == nil {
		t.Error("expected error writing into a missing directory")
	}
}

func TestSummarize(t *testing.T) {
	opts := road.DefaultOptions()
	opts.Split = true
	opts.SplitIter = 3

	records, err := road.Encode(lineVecs(5), opts)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	segs := Summarize(records)
	if len(segs) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(segs))
	}
	if segs[0].Nodes != 3 || segs[0].Length != 2 {
		t.Errorf("segment 0: expected 3 nodes length 2, got %d nodes length %v", segs[0].Nodes, segs[0].Length)
	}
	if segs[1].Position.X != 2 || segs[1].End.X != 4 {
		t.Errorf("segment 1: expected 2 -> 4, got %v -> %v", segs[1].Position.X, segs[1].End.X)
	}
}

func TestWatch_ReexportsOnChange(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(dir, writeLineOBJ(t, dir, 3))

	exp := New(cfg, nil)
	exp.Debounce = 20 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	results := make(chan *Result, 8)
	errs := make(chan error, 1)
	go func() {
		errs <- exp.Watch(ctx, func(res *Result, err error) {
			// A mesh caught mid-write may fail to parse; the next event retries.
			if err != nil {
				return
			}
			select {
			case results <- res:
			default:
			}
		})
	}()

	waitPoints := func(want int) {
		t.Helper()
		deadline := time.After(5 * time.Second)
		for {
			select {
			case res := <-results:
				if res.Points == want {
					return
				}
			case <-deadline:
				t.Fatalf("timed out waiting for export of %d points", want)
			}
		}
	}

	waitPoints(3)

	writeLineOBJ(t, dir, 6)
	waitPoints(6)

	cancel()
	select {
	case err := <-errs:
		if err != nil {
			t.Errorf("Watch returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Watch did not stop after cancel")
	}
}

func TestWatch_SelectionMissing(t *testing.T) {
	cfg := testConfig(t.TempDir(), "")
	err := New(cfg, nil).Watch(context.Background(), func(*Result, error) {})
	if !errors.Is(err, ErrSelectionMissing) {
		t.Errorf("expected ErrSelectionMissing, got %v", err)
	}
}

func lineVecs(n int) []math.Vec3 {
	pts := make([]math.Vec3, n)
	for i := range pts {
		pts[i] = math.Vec3{X: float64(i)}
	}
	return pts
}

func TestLoadPoints_LogsMeshStats(t *testing.T) {
	dir := t.TempDir()
	mesh := filepath.Join(dir, "road.obj")
	obj := "v 0 0 0\nv 1 0 0\nv 1 1 0\nf 1 2 3\n"
	if err := os.WriteFile(mesh, []byte(obj), 0644); err != nil {
		t.Fatalf("failed to write test OBJ: %v", err)
	}

	core, logs := observer.New(zapcore.DebugLevel)
	if _, err := New(testConfig(dir, mesh), zap.New(core)).LoadPoints(); err != nil {
		t.Fatalf("LoadPoints failed: %v", err)
	}

	entries := logs.FilterMessage("centerline loaded").All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 load entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["vertices"] != int64(3) {
		t.Errorf("expected 3 vertices logged, got %v", fields["vertices"])
	}
	if fields["faces"] != int64(1) {
		t.Errorf("expected 1 face logged, got %v", fields["faces"])
	}
}
