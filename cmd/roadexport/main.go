// roadexport is a CLI utility that converts a road centerline mesh into
// DecalRoad records for a level file.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/Faultbox/roadexport/internal/config"
	"github.com/Faultbox/roadexport/internal/export"
	"github.com/Faultbox/roadexport/internal/logger"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "export", "x":
		cmdExport(args)
	case "watch", "w":
		cmdWatch(args)
	case "info":
		cmdInfo(args)
	case "init":
		cmdInit(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`roadexport - decal road exporter

Usage:
  roadexport <command> [options]

Commands:
  export [options] [mesh.obj] [out.json]  Export the centerline as DecalRoad records
  watch  [options] [mesh.obj] [out.json]  Export again whenever the mesh changes
  info   [options] [mesh.obj]             Show how the road would be split
  init   [-force] [config.yaml|.toml]     Write a config file with default settings
  init   [-force] -user                   Write the defaults to the user config directory

Options (export, watch, info) must come before the paths:
  -config <file>     Config file (default ./roadexport.yaml or ./roadexport.toml)
  -o <file>          Output file
  -split             Split the road into several records
  -split-iter <n>    Nodes per record when splitting
  -overlap           Overlap records at split points
  -flip              Reverse the road direction
  -radius <r>        Road radius
  -material <name>   Decal material
  -parent <name>     Parent group in the level editor
  -debug             Enable debug logging
  -log <file>        Also write logs to a file

Examples:
  roadexport init
  roadexport export road.obj road.json
  roadexport export -split -split-iter 21 -overlap highway.obj
  roadexport watch -config highway.yaml`)
}

// loadConfig parses the shared flags and positional paths of a subcommand
// and initializes logging.
func loadConfig(name string, args []string, positional int) *config.Config {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	flags := config.BindFlags(fs).WithPaths(positional)
	fs.Parse(args)

	cfg, err := config.Load(flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

func fail(err error) {
	if errors.Is(err, export.ErrSelectionMissing) {
		fmt.Fprintf(os.Stderr, "Error: %v, export canceled\n", err)
	} else {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	logger.Sync()
	os.Exit(1)
}

func cmdExport(args []string) {
	cfg := loadConfig("export", args, 2)
	defer logger.Sync()

	res, err := export.New(cfg, logger.Log).Run()
	if err != nil {
		fail(err)
	}

	fmt.Printf("Exported: %s (%d records, %d points, %d bytes)\n",
		res.Path, res.Records, res.Points, res.Bytes)
}

func cmdWatch(args []string) {
	cfg := loadConfig("watch", args, 2)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(os.Stderr, "Watching %s (Ctrl+C to stop)\n", cfg.Source.Mesh)

	err := export.New(cfg, logger.Log).Watch(ctx, func(res *export.Result, err error) {
		if err != nil {
			logger.Log.Error("export failed", zap.Error(err))
			return
		}
		fmt.Printf("Exported: %s (%d records, %d points)\n", res.Path, res.Records, res.Points)
	})
	if err != nil {
		fail(err)
	}
}

func cmdInfo(args []string) {
	cfg := loadConfig("info", args, 1)
	defer logger.Sync()

	points, records, err := export.New(cfg, logger.Log).Encode()
	if err != nil {
		fail(err)
	}

	opts := cfg.Road
	fmt.Printf("Mesh:     %s\n", cfg.Source.Mesh)
	fmt.Printf("Points:   %d\n", len(points))
	fmt.Printf("Split:    %v", opts.Split)
	if opts.Split {
		fmt.Printf(" (%d nodes per record, overlap %v)", opts.SplitIter, opts.OverlapEnds)
	}
	fmt.Println()
	fmt.Printf("Flipped:  %v\n", opts.Flip)
	fmt.Printf("Records:  %d\n", len(records))
	fmt.Println()

	for _, s := range export.Summarize(records) {
		fmt.Printf("  #%-3d %4d nodes  %9.2f m  (%.2f, %.2f, %.2f) -> (%.2f, %.2f, %.2f)\n",
			s.Index, s.Nodes, s.Length,
			s.Position.X, s.Position.Y, s.Position.Z,
			s.End.X, s.End.Y, s.End.Z)
	}
}

func cmdInit(args []string) {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	force := fs.Bool("force", false, "Overwrite an existing file")
	user := fs.Bool("user", false, "Write to the user config directory")
	fs.Parse(args)

	path := "roadexport.yaml"
	if *user {
		path = config.UserConfigPath()
	} else if fs.NArg() > 0 {
		path = fs.Arg(0)
	}

	if _, err := os.Stat(path); err == nil && !*force {
		fmt.Fprintf(os.Stderr, "File exists: %s (use -force to overwrite)\n", path)
		os.Exit(1)
	}

	cfg := config.Default()
	save := func() error { return cfg.SaveTo(path) }
	if *user {
		save = cfg.Save
	}
	if err := save(); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing config: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote default config: %s\n", path)
}
