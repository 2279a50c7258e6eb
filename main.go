package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/ny1609/prefabs"
	"github.com/milk9111/ny1609/session"
)

func main() {
	seed := flag.Int64("seed", 0, "terrain and spawn seed (0 picks one from the clock)")
	tuningName := flag.String("tuning", prefabs.TuningFile, "tuning document under prefabs/")
	debug := flag.Bool("debug", false, "show frame, band and camera diagnostics")
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	tuning, err := prefabs.LoadTuning(*tuningName)
	if err != nil {
		log.Fatal(err)
	}

	input := NewKeyboardInput()
	sess, err := session.New(session.Options{
		Seed:   *seed,
		Tuning: tuning,
		Input:  input,
	})
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("ny1609: seed %d", *seed)

	var watcher *prefabs.Watcher
	if dirs := watchDirs(); len(dirs) > 0 {
		if w, err := prefabs.NewWatcher(dirs...); err != nil {
			log.Printf("ny1609: tuning hot reload disabled: %v", err)
		} else {
			watcher = w
			defer watcher.Close()
		}
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(1280, 720)
	ebiten.SetWindowTitle("NY1609")
	ebiten.SetTPS(tuning.FrameRate)

	game := NewGame(sess, watcher, *tuningName, *debug)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

// watchDirs lists the on-disk override directories that exist.
func watchDirs() []string {
	var dirs []string
	for _, dir := range []string{prefabs.Dir, filepath.Join(prefabs.Dir, "scripts")} {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}
