package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"slate"
	"slate/config"
	"slate/export"
	"slate/geometry"
	"slate/obstacles"
)

func main() {
	var (
		interactive = flag.Bool("i", false, "Interactive viewer (pan with arrows, q to quit)")
		configPath  = flag.String("config", "", "Tuning config YAML (defaults when omitted)")
		pngPath     = flag.String("png", "", "Export the routed scene to a PNG file")
		verbose     = flag.Bool("v", false, "Verbose routing diagnostics")
		help        = flag.Bool("help", false, "Show help")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] scene.json\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Routes every connection in a canvas scene and visualizes the result.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s scene.json                 # Print ASCII visualization\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -png out.png scene.json    # Export routed scene to PNG\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -i scene.json              # Open the interactive viewer\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -config tuning.yaml scene.json\n", os.Args[0])
	}

	flag.Parse()

	if *help {
		flag.Usage()
		os.Exit(0)
	}

	if flag.NArg() == 0 {
		fmt.Fprintf(os.Stderr, "Error: please provide a scene JSON file\n\n")
		flag.Usage()
		os.Exit(1)
	}

	if err := run(flag.Arg(0), *configPath, *pngPath, *interactive, *verbose); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(scenePath, configPath, pngPath string, interactive, verbose bool) error {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	log := zap.NewNop()
	if verbose {
		dev, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("create logger: %w", err)
		}
		defer dev.Sync()
		log = dev
	}

	snapshot, err := loadScene(scenePath)
	if err != nil {
		return err
	}

	engine := slate.NewEngine(cfg)
	engine.SetLogger(log)

	obs := engine.Obstacles(snapshot, 0)
	routed := engine.RouteAll(snapshot)

	paths := make([][]geometry.Point, 0, len(routed))
	for _, r := range routed {
		paths = append(paths, r.Route.Path)
		log.Debug("routed connection",
			zap.String("from", r.Connection.From),
			zap.String("to", r.Connection.To),
			zap.Int("points", len(r.Route.Path)))
	}

	if pngPath != "" {
		scene := export.Scene{
			Obstacles: obs,
			Labels:    itemLabels(snapshot),
		}
		for _, r := range routed {
			scene.Routes = append(scene.Routes, r.Route)
		}
		if err := export.ToPNG(pngPath, scene); err != nil {
			return fmt.Errorf("export PNG: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Exported %s\n", pngPath)
	}

	if interactive {
		return runViewer(obs, paths)
	}

	viz := obstacles.NewVisualizer()
	out := viz.Render(obs, paths)
	if out == "" {
		fmt.Println("Scene is empty (no measured items).")
		return nil
	}
	fmt.Print(out)
	fmt.Println(viz.Legend())
	fmt.Printf("\n%d obstacle(s), %d connection(s) routed\n", len(obs), len(routed))
	return nil
}
