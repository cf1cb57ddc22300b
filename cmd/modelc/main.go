// modelc compiles block models into material-grouped vertex buffers and
// prints a summary or the buffers themselves.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/xlab/closer"
	"go.uber.org/zap"

	"mcmodel/internal/config"
	"mcmodel/internal/logger"
	"mcmodel/internal/meshing"
	"mcmodel/internal/profiling"
	"mcmodel/pkg/animation"
	"mcmodel/pkg/blockmodel"
)

var errCompileFailed = errors.New("one or more models failed to compile")

type options struct {
	cfg      *config.Config
	json     bool
	textures bool
	profile  bool
	names    []string
}

func main() {
	fs := flag.NewFlagSet("modelc", flag.ExitOnError)
	fs.Usage = func() { printUsage(fs) }
	flags := config.RegisterFlags(fs)
	jsonOut := fs.Bool("json", false, "Print compiled buffers as JSON")
	textures := fs.Bool("textures", false, "Read texture headers to report animation periods")
	profile := fs.Bool("profile", false, "Print timing totals when done")
	fs.Parse(os.Args[1:])

	if fs.NArg() < 1 {
		printUsage(fs)
		os.Exit(1)
	}

	cfg, err := config.Load(flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Init(cfg.Logging.Level, cfg.Logging.LogFile)
	closer.Bind(logger.Sync)

	opts := options{
		cfg:      cfg,
		json:     *jsonOut,
		textures: *textures,
		profile:  *profile,
		names:    fs.Args(),
	}
	closer.Checked(func() error { return execute(opts, os.Stdout, os.Stderr) }, false)
	closer.Close()
}

// execute runs the compile and prints any error it returns to stderr.
func execute(opts options, stdout, stderr io.Writer) error {
	err := run(opts, stdout, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}
	return err
}

func printUsage(fs *flag.FlagSet) {
	fmt.Fprintln(os.Stderr, `modelc - block model compiler

Usage:
  modelc [options] <model> [model...]

Models are looked up as <assets>/models/<name>.json; bare names such as
"stone" resolve to "block/stone".

Options:`)
	fs.PrintDefaults()
}

func run(opts options, stdout, stderr io.Writer) error {
	log := logger.Named("modelc")
	loader := blockmodel.NewLoader(opts.cfg.Assets.Path, logger.Named("loader"))

	pool := meshing.NewWorkerPool(opts.cfg.Compile.Workers, opts.cfg.Compile.QueueSize, logger.Named("meshing"))
	defer pool.Shutdown()

	results, err := pool.CompileAll(context.Background(), loader, opts.names)
	if err != nil {
		return err
	}

	var textures *animation.DirResolver
	if opts.textures {
		textures = animation.NewDirResolver(opts.cfg.Assets.Path, opts.cfg.Animation.FrameTime)
	}

	reports := make([]report, 0, len(results))
	failed := 0
	for _, res := range results {
		if res.Error != nil {
			failed++
			log.Error("compile failed", zap.String("model", res.Name), zap.Error(res.Error))
			continue
		}
		if textures != nil {
			if err := res.Mesh.BindTextures(textures.Resolve); err != nil {
				log.Warn("texture unavailable", zap.String("model", res.Name), zap.Error(err))
			}
		}
		reports = append(reports, newReport(res.Name, res.Mesh, opts.cfg.AnimationPolicy(), opts.json))
	}

	if opts.json {
		if err := writeJSON(stdout, reports); err != nil {
			return err
		}
	} else {
		for _, r := range reports {
			r.writeSummary(stdout)
		}
	}

	if opts.profile {
		fmt.Fprintln(stderr, profiling.TopN(5))
	}
	if failed > 0 {
		return fmt.Errorf("%w (%d of %d)", errCompileFailed, failed, len(results))
	}
	return nil
}
