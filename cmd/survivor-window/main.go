package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/survivor/audio"
	"github.com/lixenwraith/survivor/component"
	"github.com/lixenwraith/survivor/config"
	"github.com/lixenwraith/survivor/engine"
	"github.com/lixenwraith/survivor/game"
	"github.com/lixenwraith/survivor/parameter"
	"github.com/lixenwraith/survivor/render/window"
	"github.com/lixenwraith/survivor/scene"
)

var (
	configFlag = flag.String("config", "", "YAML tuning overlay")
	seedFlag   = flag.Uint64("seed", 0, "Random seed, 0 picks one from the clock")
	fireFlag   = flag.String("fire", "", "Fire mode override: auto or manual")
	muteFlag   = flag.Bool("mute", false, "Disable sound effects")
)

func main() {
	flag.Parse()
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	tuning, err := config.Resolve(*configFlag, *seedFlag, *fireFlag)
	if err != nil {
		log.Printf("survivor-window: %v", err)
		os.Exit(2)
	}

	var player engine.AudioPlayer
	if !*muteFlag {
		sm := audio.NewSoundManager(audio.LoadConfig())
		if err := sm.Initialize(); err != nil {
			log.Printf("audio: %v (continuing without audio)", err)
		} else {
			defer sm.Cleanup()
			player = sm
		}
	}

	mem := scene.NewMemory()
	session := game.NewSession(tuning, mem, player)
	radius := func(k component.MonsterKind) float64 { return tuning.Monster(k).Radius }

	ebiten.SetWindowSize(parameter.WindowWidth, parameter.WindowHeight)
	ebiten.SetWindowTitle("survivor")
	if err := ebiten.RunGame(window.New(session, mem, radius)); err != nil {
		log.Printf("survivor-window: %v", err)
		os.Exit(1)
	}
}
