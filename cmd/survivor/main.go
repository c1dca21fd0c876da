package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/survivor/audio"
	"github.com/lixenwraith/survivor/config"
	"github.com/lixenwraith/survivor/core"
	"github.com/lixenwraith/survivor/engine"
	"github.com/lixenwraith/survivor/game"
	"github.com/lixenwraith/survivor/parameter"
	"github.com/lixenwraith/survivor/render"
	"github.com/lixenwraith/survivor/scene"
)

var (
	configFlag = flag.String("config", "", "YAML tuning overlay")
	debugFlag  = flag.Bool("debug", false, "Write logs to "+logDir+"/"+logFileName)
	seedFlag   = flag.Uint64("seed", 0, "Random seed, 0 picks one from the clock")
	fireFlag   = flag.String("fire", "", "Fire mode override: auto or manual")
	muteFlag   = flag.Bool("mute", false, "Disable sound effects")
	dumpFlag   = flag.Bool("dump-config", false, "Print the effective tuning as YAML and exit")
	fpsFlag    = flag.Int("fps", 0, "Frame rate, 0 uses the default interval")
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if f := setupLogging(*debugFlag); f != nil {
		defer f.Close()
	}

	tuning, err := config.Resolve(*configFlag, *seedFlag, *fireFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "survivor: %v\n", err)
		os.Exit(2)
	}

	if *dumpFlag {
		out, err := tuning.Marshal()
		if err != nil {
			fmt.Fprintf(os.Stderr, "survivor: %v\n", err)
			os.Exit(1)
		}
		os.Stdout.Write(out)
		return
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	core.SetCrashScreen(screen)
	defer core.SetCrashScreen(nil)
	screen.HideCursor()

	// Untyped nil when muted so the audio system sees no player
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
	renderer := render.NewTerminalRenderer(screen)

	run(screen, session, mem, renderer, frameInterval(*fpsFlag))
	log.Printf("survivor: exit at frame %d", session.Snapshot().Frame)
}

// run drives the simulation from a frame ticker and applies input between frames
func run(screen tcell.Screen, session *game.Session, mem *scene.Memory, renderer *render.TerminalRenderer, interval time.Duration) {
	events := make(chan tcell.Event, 256)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	})

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case ev := <-events:
			if !handleEvent(ev, screen, session, mem, renderer) {
				return
			}

		case now := <-ticker.C:
			session.Frame(now.Sub(last))
			last = now
			renderer.RenderFrame(session.Snapshot(), mem, session.Telemetry())
		}
	}
}

// frameInterval converts -fps to a ticker period, clamped to 10..240 frames per second
func frameInterval(fps int) time.Duration {
	if fps <= 0 {
		return parameter.FrameUpdateInterval
	}
	return time.Second / time.Duration(min(max(fps, 10), 240))
}

// handleEvent applies one terminal event; false means quit
func handleEvent(ev tcell.Event, screen tcell.Screen, session *game.Session, mem *scene.Memory, renderer *render.TerminalRenderer) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		screen.Sync()
		renderer.Resize(ev.Size())

	case *tcell.EventKey:
		a := keyAction(ev)
		if dir, ok := moveDir(a); ok {
			mem.SetMoveIntent(dir, parameter.MoveIntentHold)
			return true
		}
		switch a {
		case actQuit:
			return false
		case actFire:
			session.Fire()
		case actShield:
			session.TriggerInvincible()
		case actPause:
			session.TogglePause()
		case actRestart:
			session.Reset()
		case actDiagnostics:
			renderer.ToggleDiagnostics()
		case actUpgrade1, actUpgrade2, actUpgrade3:
			session.SelectUpgrade(int(a - actUpgrade1))
		}
	}
	return true
}
