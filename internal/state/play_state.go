// internal/state/play_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"

	"sentinel-siege/internal/app"
	"sentinel-siege/internal/defs"
	"sentinel-siege/internal/system"
	"sentinel-siege/internal/ui"
)

// Commands — команды симуляции, которые вызывает экран игры.
type Commands interface {
	MovePlayer(dir system.MoveDirection)
	RotateGun(dir system.RotateDirection)
	SelectWeapon(w defs.WeaponType)
	Fire()
	SetContinuousFire(held bool)
	TogglePause()
	Restart()
	Tick()
}

var weaponKeys = [...]struct {
	key    ebiten.Key
	weapon defs.WeaponType
}{
	{ebiten.Key1, defs.WeaponNormal},
	{ebiten.Key2, defs.WeaponLaser},
	{ebiten.Key3, defs.WeaponBurst},
	{ebiten.Key4, defs.WeaponShockwave},
}

// HandleInput переводит состояние устройств ввода в команды за один тик.
// Движение и поворот срабатывают, пока клавиша удерживается.
func HandleInput(in Input, cmd Commands) {
	if in.KeyJustPressed(ebiten.KeySpace) {
		cmd.TogglePause()
	}
	if in.KeyJustPressed(ebiten.KeyR) {
		cmd.Restart()
	}
	for _, wk := range weaponKeys {
		if in.KeyJustPressed(wk.key) {
			cmd.SelectWeapon(wk.weapon)
		}
	}

	if in.KeyHeld(ebiten.KeyW) {
		cmd.MovePlayer(system.Forward)
	}
	if in.KeyHeld(ebiten.KeyS) {
		cmd.MovePlayer(system.Backward)
	}
	if in.KeyHeld(ebiten.KeyA) {
		cmd.RotateGun(system.Left)
	}
	if in.KeyHeld(ebiten.KeyD) {
		cmd.RotateGun(system.Right)
	}

	if in.MouseJustPressed() || in.KeyJustPressed(ebiten.KeyF) {
		cmd.Fire()
	}
	cmd.SetContinuousFire(in.MouseHeld() || in.KeyHeld(ebiten.KeyF))
}

// PlayState — экран партии
type PlayState struct {
	sm    *StateMachine
	input Input
	game  *app.Game
	arena *ui.ArenaView
	hud   *ui.HUD
}

func NewPlayState(sm *StateMachine, input Input, seed int64) *PlayState {
	return &PlayState{
		sm:    sm,
		input: input,
		game:  app.NewGame(seed),
		arena: ui.NewArenaView(),
		hud:   ui.NewHUD(),
	}
}

func (p *PlayState) Enter() {}

func (p *PlayState) Update() {
	if p.input.KeyJustPressed(ebiten.KeyF3) {
		p.hud.Debug = !p.hud.Debug
	}
	HandleInput(p.input, p.game)
	p.game.Tick()
}

func (p *PlayState) Draw(screen *ebiten.Image) {
	p.arena.Draw(screen, p.game)
	p.hud.Draw(screen, p.game)
}

func (p *PlayState) Exit() {}

// Game открывает симуляцию, например для отладки.
func (p *PlayState) Game() *app.Game {
	return p.game
}
