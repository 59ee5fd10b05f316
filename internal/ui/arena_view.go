// internal/ui/arena_view.go
package ui

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"sentinel-siege/internal/component"
	"sentinel-siege/internal/config"
	"sentinel-siege/pkg/geom"
	"sentinel-siege/pkg/render"
)

// ArenaView рисует арену сверху, камера следует за игроком.
type ArenaView struct {
	camera *render.Camera
	shapes render.Shapes
	colors render.ArenaColors
}

func NewArenaView() *ArenaView {
	camera := render.NewCamera(config.ScreenWidth, config.ScreenHeight, config.CameraZoom)
	return &ArenaView{
		camera: camera,
		shapes: render.Shapes{Camera: camera},
		colors: render.ArenaColors{
			Background:  config.BackgroundColor,
			Wall:        config.WallColor,
			Pond:        config.PondColor,
			Tree:        config.TreeColor,
			Trunk:       config.TrunkColor,
			Player:      config.PlayerColor,
			Gun:         config.GunColor,
			Pickup:      config.PickupColor,
			Bullet:      config.BulletColor,
			Shockwave:   config.ShockwaveColor,
			Laser:       config.LaserColor,
			Text:        config.TextColor,
			HealthBack:  config.HealthBarBack,
			StrokeWidth: 3,
		},
	}
}

func (v *ArenaView) Draw(screen *ebiten.Image, s Snapshot) {
	player := s.Player()
	v.camera.Center = player.Pos
	screen.Fill(v.colors.Background)

	v.shapes.Square(screen, config.ArenaHalfSize, v.colors.StrokeWidth*2, v.colors.Wall)
	v.drawScenery(screen, s.Scenery())
	v.drawPickup(screen, s.Pickup())
	v.drawEnemies(screen, s.Enemies(), player.Pos, s.EnemyPulse())
	v.drawPlayer(screen, player)
	v.drawShots(screen, s.Shots(), s.EnemyShots())

	if laser := s.Laser(); laser.Active {
		v.shapes.Line(screen, laser.From, laser.To, 3, v.colors.Laser)
	}
}

func (v *ArenaView) drawScenery(screen *ebiten.Image, scenery component.Scenery) {
	v.shapes.Circle(screen, scenery.Pond.Pos, scenery.Pond.Radius, v.colors.Pond)
	for _, tree := range scenery.Trees {
		v.shapes.Circle(screen, tree.Pos, tree.Radius*tree.Scale*2, v.colors.Tree)
		v.shapes.Circle(screen, tree.Pos, tree.Radius*0.6, v.colors.Trunk)
	}
}

func (v *ArenaView) drawPickup(screen *ebiten.Image, pickup component.HealthPickup) {
	r := pickup.Radius * (1 + config.PulseAmplitude*2*math.Sin(pickup.Pulse))
	v.shapes.Circle(screen, pickup.Pos, r, v.colors.Pickup)
	// крест аптечки
	v.shapes.Line(screen, pickup.Pos.Add(geom.V(-r*0.6, 0)), pickup.Pos.Add(geom.V(r*0.6, 0)), 3, v.colors.Text)
	v.shapes.Line(screen, pickup.Pos.Add(geom.V(0, -r*0.6)), pickup.Pos.Add(geom.V(0, r*0.6)), 3, v.colors.Text)
}

func (v *ArenaView) drawEnemies(screen *ebiten.Image, enemies []component.Enemy, target geom.Vec2, pulse float64) {
	scale := 1 + config.PulseAmplitude*math.Sin(pulse)
	for _, e := range enemies {
		r := e.Radius()
		base := config.EnemyColors[e.Archetype]
		body := render.ShadeColor(base, 0.4+0.6*e.HPRatio())
		v.shapes.Circle(screen, e.Pos, r*scale, body)

		if facing, ok := Facing(e.Pos, target); ok {
			v.shapes.Line(screen, e.Pos, e.Pos.Add(facing.Scale(r*1.3)), 3, render.DarkenColor(base))
		}
		fill := render.HealthColor(e.HPRatio(), config.HealthGood, config.HealthWarn, config.HealthLow)
		v.shapes.Bar(screen, e.Pos, r+config.EnemyBarOffset, config.EnemyBarWidth, e.HPRatio(), fill, v.colors.HealthBack)
	}
}

func (v *ArenaView) drawPlayer(screen *ebiten.Image, player component.Player) {
	v.shapes.Circle(screen, player.Pos, player.Radius, v.colors.Player)
	v.shapes.Line(screen, player.Pos, player.GunTip(config.GunLength), 6, v.colors.Gun)
	fill := render.HealthColor(player.HP/player.MaxHP, config.HealthGood, config.HealthWarn, config.HealthLow)
	v.shapes.Bar(screen, player.Pos, player.Radius+config.EnemyBarOffset, config.PlayerBarWidth, player.HP/player.MaxHP, fill, v.colors.HealthBack)
}

func (v *ArenaView) drawShots(screen *ebiten.Image, shots []component.Projectile, enemyShots []component.EnemyProjectile) {
	for _, p := range shots {
		if p.Kind == component.ShotShockwave {
			v.shapes.Ring(screen, p.Pos, p.Radius, 4, v.colors.Shockwave)
			continue
		}
		v.shapes.Circle(screen, p.Pos, config.ShotRadius, v.colors.Bullet)
	}
	for _, b := range enemyShots {
		v.shapes.Circle(screen, b.Pos, config.EnemyShotRadius, config.EnemyShotColors[b.Owner])
	}
}

// Facing — единичный вектор от врага к цели. Для совпадающих точек ok = false.
func Facing(from, to geom.Vec2) (geom.Vec2, bool) {
	return to.Sub(from).Normalize()
}
