package main

import (
	"flag"
	"io/fs"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/griddefense/internal/application/game"
	"github.com/younwookim/griddefense/internal/application/replay"
	"github.com/younwookim/griddefense/internal/application/scene/playing"
	"github.com/younwookim/griddefense/internal/application/system"
	"github.com/younwookim/griddefense/internal/infrastructure/config"
)

func main() {
	dataDir := flag.String("data", "", "Load configs and levels from this directory instead of the built-in set")
	recordFlag := flag.String("record", "", "Record intents to file (e.g., -record replay.json, .mpk for msgpack)")
	replayFlag := flag.String("replay", "", "Play a recorded file headless and print the outcome")
	ticksFlag := flag.Int("ticks", 0, "Stop a headless replay after this many pulses (0 = all recorded)")
	seedFlag := flag.Int64("seed", 0, "Seed for enemy placement jitter (0 = time based)")
	flag.Parse()

	fsys, err := configSource(*dataDir)
	if err != nil {
		log.Fatalf("Failed to open configs: %v", err)
	}

	if *replayFlag != "" {
		data, err := replay.LoadReplay(*replayFlag)
		if err != nil {
			log.Fatalf("Failed to load replay: %v", err)
		}

		engine, _, err := newSession(fsys, data.Seed)
		if err != nil {
			log.Fatalf("Failed to start session: %v", err)
		}

		res, err := runReplay(engine, *data, *ticksFlag)
		if err != nil {
			log.Fatalf("Replay failed: %v", err)
		}
		log.Printf("Replay finished: outcome=%s pulses=%d rejected=%d level=%d wave=%d lives=%d budget=%d",
			res.Outcome, res.Pulses, res.Rejected, engine.Level().Number(), engine.WaveNumber(), engine.Lives(), engine.Budget())
		return
	}

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	engine, cfg, err := newSession(fsys, seed)
	if err != nil {
		log.Fatalf("Failed to start session: %v", err)
	}

	display := cfg.Rules.Display
	scene := playing.New(engine, display, seed, *recordFlag)
	w, h := scene.Layout(0, 0)
	g := game.New(scene, w, h)
	defer g.Close()

	scale := max(display.Scale, 1)
	ebiten.SetWindowSize(w*scale, h*scale)
	ebiten.SetWindowTitle("Grid Defense")

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

// configSource returns the embedded configs, or dir when one is given
func configSource(dir string) (fs.FS, error) {
	if dir != "" {
		if _, err := os.Stat(dir); err != nil {
			return nil, err
		}
		return os.DirFS(dir), nil
	}
	return fs.Sub(configFS, "configs")
}

// newSession loads configs from fsys and builds an engine on the first level.
// seed drives the enemy jitter so a replay sees the same placement.
func newSession(fsys fs.FS, seed int64) (*system.Engine, *config.GameConfig, error) {
	loader := config.NewFSLoader(fsys, ".")
	cfg, err := loader.LoadAll()
	if err != nil {
		return nil, nil, err
	}

	catalog, err := system.NewCatalog(cfg)
	if err != nil {
		return nil, nil, err
	}

	rules, err := system.RulesFromConfig(cfg.Rules.Rules)
	if err != nil {
		return nil, nil, err
	}

	rng := rand.New(rand.NewSource(seed))
	levels := system.NewFileLevelSource(loader, catalog, rng)
	engine, err := system.NewEngine(catalog, rules, levels)
	if err != nil {
		return nil, nil, err
	}
	return engine, cfg, nil
}
