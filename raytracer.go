package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/gmittal/spheretrace/pkg/display"
	"github.com/gmittal/spheretrace/pkg/loaders"
	"github.com/gmittal/spheretrace/pkg/renderer"
	"github.com/gmittal/spheretrace/pkg/scene"
	"github.com/gmittal/spheretrace/pkg/tracer"
	"github.com/gmittal/spheretrace/pkg/window"
	"github.com/gmittal/spheretrace/web/server"
)

type options struct {
	scene     string
	sceneFile string
	width     int
	height    int
	depth     int
	workers   int
	out       string
	window    bool
	caption   bool
	font      string
	serve     int
	help      bool
}

func parseFlags(args []string, output io.Writer) (options, *flag.FlagSet, error) {
	var o options
	fs := flag.NewFlagSet("spheretrace", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&o.scene, "scene", "default", "Preset scene: "+strings.Join(presetNames(), ", "))
	fs.StringVar(&o.sceneFile, "scene-file", "", "JSON scene file (overrides -scene)")
	fs.IntVar(&o.width, "width", 0, "Window width in pixels (0 uses the scene's size)")
	fs.IntVar(&o.height, "height", 0, "Window height in pixels (0 uses the scene's size)")
	fs.IntVar(&o.depth, "depth", -1, "Reflection depth (-1 uses the scene's depth, default 4)")
	fs.IntVar(&o.workers, "workers", 0, "Rows rendered in parallel (0 uses all CPUs)")
	fs.StringVar(&o.out, "out", "", "Output PNG path (default output/<scene>/render_<timestamp>.png)")
	fs.BoolVar(&o.window, "window", false, "Show the frame in a window; Escape closes it")
	fs.BoolVar(&o.caption, "caption", false, "Stamp scene name and render time on the PNG")
	fs.StringVar(&o.font, "font", "", "TrueType font for the caption")
	fs.IntVar(&o.serve, "serve", 0, "Serve renders over HTTP on this port instead of rendering once")
	fs.BoolVar(&o.help, "help", false, "Show help information")
	err := fs.Parse(args)
	return o, fs, err
}

func presetNames() []string {
	var names []string
	for _, p := range scene.ListPresets() {
		names = append(names, p.Name)
	}
	return names
}

// job is a fully resolved render.
type job struct {
	name   string
	scene  *scene.Scene
	width  int
	height int
	depth  int
}

func resolveJob(o options) (job, error) {
	if o.sceneFile != "" {
		sf, err := loaders.LoadScene(o.sceneFile)
		if err != nil {
			return job{}, err
		}
		j := job{
			name:   strings.TrimSuffix(filepath.Base(o.sceneFile), filepath.Ext(o.sceneFile)),
			scene:  sf.Scene,
			width:  sf.Width,
			height: sf.Height,
			depth:  sf.MaxDepth,
		}
		if o.width > 0 || o.height > 0 {
			return job{}, errors.New("-width and -height cannot override a scene file; edit the file instead")
		}
		if o.depth >= 0 {
			j.depth = o.depth
		}
		return j, nil
	}

	preset, ok := scene.LookupPreset(o.scene)
	if !ok {
		return job{}, fmt.Errorf("unknown scene %q (available: %s)", o.scene, strings.Join(presetNames(), ", "))
	}
	j := job{name: preset.Name, width: preset.Width, height: preset.Height, depth: tracer.DefaultConfig().MaxDepth}
	if o.width > 0 {
		j.width = o.width
	}
	if o.height > 0 {
		j.height = o.height
	}
	if o.depth >= 0 {
		j.depth = o.depth
	}
	s, err := preset.Build(j.width, j.height)
	if err != nil {
		return job{}, err
	}
	j.scene = s
	return j, nil
}

func outputPath(o options, name string, now time.Time) string {
	if o.out != "" {
		return o.out
	}
	return filepath.Join("output", name, fmt.Sprintf("render_%s.png", now.Format("20060102_150405")))
}

func run(ctx context.Context, o options) error {
	j, err := resolveJob(o)
	if err != nil {
		return err
	}
	config := tracer.DefaultConfig()
	config.MaxDepth = j.depth
	tr, err := tracer.New(j.scene, config)
	if err != nil {
		return err
	}
	log.Printf("Rendering %s at %dx%d: %d spheres, %d lights, reflection depth %d",
		j.name, j.width, j.height, len(tr.Scene().Spheres), len(tr.Scene().Lights), tr.Config().MaxDepth)
	rd, err := renderer.New(tr, j.width, j.height, renderer.Config{Workers: o.workers})
	if err != nil {
		return err
	}

	frame, stats, err := rd.Render(ctx)
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}
	log.Printf("Render completed in %v on %d workers (%d pixels, %.1f%% hit)",
		stats.Elapsed.Round(time.Millisecond), stats.Workers, stats.TracedPixels, 100*stats.Coverage())

	opts := display.Options{FontPath: o.font}
	if o.caption {
		opts.Caption = fmt.Sprintf("%s  %v", j.name, stats.Elapsed.Round(time.Millisecond))
	}
	path := outputPath(o, j.name, time.Now())
	if err := display.SavePNG(frame, path, opts); err != nil {
		return err
	}
	log.Printf("Render saved as %s", path)

	if o.window {
		if !window.Available {
			log.Printf("Window requested but this build is headless; skipping")
			return nil
		}
		return window.Show(frame, "spheretrace - "+j.name)
	}
	return nil
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("[spheretrace] ")

	o, fs, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		os.Exit(2)
	}
	if o.help {
		fmt.Println("spheretrace - recursive sphere ray tracer")
		fmt.Println("Usage: spheretrace [options]")
		fmt.Println()
		fmt.Println("Options:")
		fs.SetOutput(os.Stdout)
		fs.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		for _, p := range scene.ListPresets() {
			fmt.Printf("  %-8s %s (%dx%d)\n", p.Name, p.Description, p.Width, p.Height)
		}
		return
	}

	if o.serve > 0 {
		if err := server.NewServer(o.serve, o.workers).Start(); err != nil {
			log.Printf("Error starting server: %v", err)
			os.Exit(1)
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := run(ctx, o); err != nil {
		log.Printf("Error: %v", err)
		stop()
		os.Exit(1)
	}
}
