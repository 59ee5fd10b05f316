// cmd/game/main.go
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"sentinel-siege/internal/config"
	"sentinel-siege/internal/defs"
	"sentinel-siege/internal/state"
)

type AppGame struct {
	stateMachine *state.StateMachine
}

func (a *AppGame) Update() error {
	a.stateMachine.Update()
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	seed := flag.Int64("seed", 0, "seed for the match generator (0 = current time)")
	enemies := flag.String("enemies", "", "JSON file overriding the enemy archetype table")
	skipMenu := flag.Bool("play", false, "start the match immediately")
	flag.Parse()

	if *enemies != "" {
		if err := defs.LoadEnemyDefinitions(*enemies); err != nil {
			log.Fatal(err)
		}
	}

	input := state.EbitenInput{}
	sm := state.NewStateMachine()
	if *skipMenu {
		sm.SetState(state.NewPlayState(sm, input, *seed))
	} else {
		sm.SetState(state.NewMenuState(sm, input, *seed))
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Sentinel Siege")
	ebiten.SetTPS(config.TicksPerSec)
	if err := ebiten.RunGame(&AppGame{stateMachine: sm}); err != nil {
		log.Fatal(err)
	}
}
