package config

import (
	"errors"
	"flag"
	"fmt"
	"strings"
)

// ErrFlagAfterPath is returned when a flag follows a positional path. The
// flag package stops at the first non-flag argument, so it would otherwise
// be taken as a path.
var ErrFlagAfterPath = errors.New("flags must come before paths")

// Flags holds the command-line overrides registered on one flag set.
type Flags struct {
	fs    *flag.FlagSet
	paths int // Positional paths accepted: mesh, then output

	config    *string
	debug     *bool
	logFile   *string
	mesh      *string
	output    *string
	radius    *float64
	split     *bool
	splitIter *int
	overlap   *bool
	flip      *bool
	material  *string
	parent    *string
}

// BindFlags registers the config flags on fs. Call fs.Parse before Load.
func BindFlags(fs *flag.FlagSet) *Flags {
	return &Flags{
		fs:        fs,
		config:    fs.String("config", "", "Path to config file (.yaml or .toml)"),
		debug:     fs.Bool("debug", false, "Enable debug logging"),
		logFile:   fs.String("log", "", "Write logs to this file as well"),
		mesh:      fs.String("mesh", "", "Source OBJ file"),
		output:    fs.String("o", "", "Output file"),
		radius:    fs.Float64("radius", 0, "Road radius"),
		split:     fs.Bool("split", false, "Split the road into several records"),
		splitIter: fs.Int("split-iter", 0, "Nodes per record when splitting"),
		overlap:   fs.Bool("overlap", false, "Overlap records at split points"),
		flip:      fs.Bool("flip", false, "Reverse the road direction"),
		material:  fs.String("material", "", "Decal material name"),
		parent:    fs.String("parent", "", "Parent group in the level editor"),
	}
}

// WithPaths makes up to n positional arguments set the mesh and output
// paths, in that order.
func (f *Flags) WithPaths(n int) *Flags {
	f.paths = n
	return f
}

// ConfigPath returns the explicit config path if provided via --config flag.
func (f *Flags) ConfigPath() string {
	if f == nil {
		return ""
	}
	return *f.config
}

// apply applies flags and positional paths given on the command line to
// the config.
func (f *Flags) apply(cfg *Config) error {
	if f == nil {
		return nil
	}
	f.fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "debug":
			if *f.debug {
				cfg.Logging.Level = "debug"
			}
		case "log":
			cfg.Logging.LogFile = *f.logFile
		case "mesh":
			cfg.Source.Mesh = *f.mesh
		case "o":
			cfg.Output.Path = *f.output
		case "radius":
			cfg.Road.Radius = *f.radius
		case "split":
			cfg.Road.Split = *f.split
		case "split-iter":
			cfg.Road.SplitIter = *f.splitIter
		case "overlap":
			cfg.Road.OverlapEnds = *f.overlap
		case "flip":
			cfg.Road.Flip = *f.flip
		case "material":
			cfg.Road.Material = *f.material
		case "parent":
			cfg.Road.ParentName = *f.parent
		}
	})

	targets := []*string{&cfg.Source.Mesh, &cfg.Output.Path}
	args := f.fs.Args()
	for i, arg := range args {
		if strings.HasPrefix(arg, "-") {
			return fmt.Errorf("%w: %q", ErrFlagAfterPath, arg)
		}
		if i >= f.paths || i >= len(targets) {
			return fmt.Errorf("unexpected argument %q", arg)
		}
		*targets[i] = arg
	}
	return nil
}
