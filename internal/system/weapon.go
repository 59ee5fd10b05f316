// internal/system/weapon.go
package system

import (
	"sentinel-siege/internal/component"
	"sentinel-siege/internal/config"
	"sentinel-siege/internal/defs"
	"sentinel-siege/internal/entity"
	"sentinel-siege/pkg/geom"
)

// WeaponSystem управляет оружием игрока. Перезарядка общая для всех видов:
// смена оружия её не сбрасывает.
type WeaponSystem struct {
	ecs *entity.ECS
}

func NewWeaponSystem(ecs *entity.ECS) *WeaponSystem {
	return &WeaponSystem{ecs: ecs}
}

// Select меняет текущее оружие.
func (s *WeaponSystem) Select(w defs.WeaponType) {
	if w < defs.WeaponNormal || w > defs.WeaponShockwave {
		return
	}
	s.ecs.Weapon.Selected = w
}

// SetTriggerHeld запоминает, удерживается ли огонь (нужно лазеру).
func (s *WeaponSystem) SetTriggerHeld(held bool) {
	s.ecs.Weapon.TriggerHeld = held
}

// Fire обрабатывает одиночное нажатие огня. Лазер здесь игнорируется.
// Возвращает true, если выстрел (или очередь) начат.
func (s *WeaponSystem) Fire() bool {
	w := s.ecs.Weapon
	if w.Cooldown > 0 || w.Selected == defs.WeaponLaser {
		return false
	}

	player := s.ecs.Player
	switch w.Selected {
	case defs.WeaponNormal:
		s.spawnBullet(component.ShotNormal)
	case defs.WeaponBurst:
		w.BurstRemaining = config.BurstShots
	case defs.WeaponShockwave:
		s.ecs.AddShot(component.NewShockwave(player.Pos))
	default:
		return false
	}
	w.Cooldown = defs.Weapon(w.Selected).Cooldown
	return true
}

// Update уменьшает перезарядку и продолжает начатую очередь.
func (s *WeaponSystem) Update() {
	w := s.ecs.Weapon
	if w.Cooldown > 0 {
		w.Cooldown--
	}
	if w.BurstRemaining > 0 && w.Cooldown == 0 {
		w.BurstRemaining--
		s.spawnBullet(component.ShotBurst)
		if w.BurstRemaining > 0 {
			w.Cooldown = defs.Weapon(defs.WeaponBurst).Cooldown
		}
	}
}

// UpdateLaser пересчитывает луч, пока огонь удерживается и перезарядка закончилась.
// Цель — ближайший вдоль луча враг, чей радиус пересекает луч.
func (s *WeaponSystem) UpdateLaser() {
	s.ecs.Laser.Active = false
	w := s.ecs.Weapon
	if w.Selected != defs.WeaponLaser || !w.TriggerHeld || w.Cooldown > 0 {
		return
	}

	def := defs.Weapon(defs.WeaponLaser)
	w.Cooldown = def.Cooldown

	player := s.ecs.Player
	dir := player.Direction()
	start := player.GunTip(config.GunLength)

	var target *component.Enemy
	best := config.LaserMaxRange
	for _, e := range s.ecs.Enemies {
		if e.Removed {
			continue
		}
		t, perp := geom.RayParam(start, dir, e.Pos)
		if t <= 0 || t >= best {
			continue
		}
		if perp < e.Radius() {
			target = e
			best = t
		}
	}

	s.ecs.Laser = component.Laser{Active: true, From: start, To: start.Add(dir.Scale(config.LaserMaxRange))}
	if target != nil {
		ApplyDamage(target, def.Damage)
		s.ecs.Laser.To = target.Pos
	}
}

func (s *WeaponSystem) spawnBullet(kind component.ShotKind) {
	player := s.ecs.Player
	dir := player.Direction()
	s.ecs.AddShot(component.NewBullet(kind, player.GunTip(config.GunLength), dir.Scale(config.BulletSpeed)))
}
