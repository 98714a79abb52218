// Touchmap runs a small Ebitengine host around a Tiled map so trigger
// scripts and touch-to-move can be tried out interactively.
//
// Click a tile to set a click-to-move destination. The crystal and the sign
// are scripted triggers; the screen corners hold block/restore buttons.
// B and R send disableTtm and enableTtm; arrow keys scroll the map. F12
// saves a screenshot.
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/touchmap"
	"github.com/spf13/cobra"
)

const (
	windowTitle = "Touchmap"
	screenW     = 640
	screenH     = 480
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		debug      bool
		opts       gameOptions
	)
	cmd := &cobra.Command{
		Use:   "touchmap",
		Short: "Run the touchmap demo host",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := newGame(configPath, debug, opts)
			if err != nil {
				return err
			}
			defer g.Close()

			ebiten.SetWindowSize(screenW, screenH)
			ebiten.SetWindowTitle(windowTitle)
			return ebiten.RunGame(g)
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", filepath.Join("assets", "touchmap.yaml"), "path to the YAML config")
	cmd.Flags().BoolVar(&debug, "debug", false, "log destinations and trigger errors to stderr")
	cmd.Flags().StringVar(&opts.screenshotDir, "screenshots", "screenshots", "directory for F12 and trigger screenshots")
	cmd.Flags().BoolVar(&opts.shootTriggers, "shoot-triggers", false, "save a screenshot whenever a trigger fires")
	return cmd
}

type gameOptions struct {
	screenshotDir string
	shootTriggers bool
}

// newGame loads the config, the map and the trigger scripts and wires them
// into a scene.
func newGame(configPath string, debug bool, opts gameOptions) (*game, error) {
	cfg, err := touchmap.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	if cfg.Map == "" {
		return nil, fmt.Errorf("config %s: no map", configPath)
	}
	mapPath := cfg.Resolve(cfg.Map)
	tm, err := touchmap.LoadTiledMap(os.DirFS(filepath.Dir(mapPath)), filepath.Base(mapPath))
	if err != nil {
		return nil, err
	}

	scene := touchmap.NewScene(touchmap.NewEbitenPointer(), tm)
	scene.SetDebugMode(debug)

	gate := touchmap.NewTouchGate(scene)
	gate.Initialize(cfg.DisableTouchToMove)
	scene.Commands().Register(gate)

	g := &game{
		scene:         scene,
		tm:            tm,
		gate:          gate,
		shots:         screenshotter{dir: opts.screenshotDir},
		shootTriggers: opts.shootTriggers,
	}
	scene.OnTrigger(g.onTrigger)

	dirs := map[string]bool{}
	for _, tc := range cfg.Triggers {
		path := cfg.Resolve(tc.Script)
		if _, err := scene.LoadTrigger(tc.Name, tc.Event, path); err != nil {
			return nil, err
		}
		dirs[filepath.Dir(path)] = true
	}

	if cfg.WatchTriggers && len(dirs) > 0 {
		list := make([]string, 0, len(dirs))
		for d := range dirs {
			list = append(list, d)
		}
		w, err := touchmap.NewTriggerWatcher(list...)
		if err != nil {
			log.Printf("trigger watcher disabled: %v", err)
		} else {
			g.watcher = w
		}
	}
	return g, nil
}
