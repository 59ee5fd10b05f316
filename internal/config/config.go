// internal/config/config.go
package config

import "image/color"

// Все величины ниже измеряются в тиках симуляции и в единицах арены.
const (
	ScreenWidth  = 1000
	ScreenHeight = 800
	TicksPerSec  = 60

	// Арена — квадрат [-ArenaHalfSize, ArenaHalfSize] по обеим осям.
	ArenaHalfSize = 1800.0

	MaxPlacementAttempts = 64
)

// Игрок и турель
const (
	PlayerMaxHP    = 500.0
	PlayerRadius   = 25.0
	GunLength      = 55.0
	PlayerStartX   = 0.0
	PlayerStartY   = -150.0
	PlayerMoveStep = 18.0
	PlayerTurnStep = 2.5 // градусы
	GunTipMargin   = 5.0
)

// Оружие
const (
	BulletSpeed = 15.0

	BurstShots = 3

	LaserMaxRange = 1500.0

	ShockwaveGrowth  = 20.0
	ShockwaveStep    = 20 // урон наносится только при радиусе, кратном шагу
	ShockwaveBand    = 20.0
	ShockwaveMaxSize = 600.0
)

// Враги
const (
	KamikazeProximityBonus = 10.0
	SplitChildren          = 3
	SplitJitter            = 30.0
	SplitGraceTicks        = 15

	// Доля перекрытия, на которую сдвигается каждый из пары за один тик.
	CollisionPushFactor = 0.45
)

// Директор спавна и сложность
const (
	ScorePerDifficulty  = 30
	BaseEnemyCap        = 8
	EnemyCapPerLevel    = 2
	SpawnRingInset      = 100.0
	SpawnHPPerLevel     = 0.15
	SpawnSpeedPerLevel  = 0.08
	SplitHPPerLevel     = 0.10
	SplitSpeedPerLevel  = 0.05
	InitialSpawnRingMin = ArenaHalfSize - 600
	InitialSpawnRingMax = ArenaHalfSize - 200
)

// Декорации
const (
	TreeCount         = 150
	TreeRadius        = 15.0
	TreeEdgeBuffer    = 50.0
	TreeCenterClear   = 200.0
	TreeMinScale      = 0.8
	TreeMaxScale      = 1.5
	LineOfSightMargin = 5.0

	PondX      = 250.0
	PondY      = 200.0
	PondRadius = 90.0
)

// Аптечка
const (
	PickupRadius    = 25.0
	PickupMinDist   = 300.0
	PickupMaxDist   = ArenaHalfSize - 200
	PickupPulseStep = 0.1
	EnemyPulseStep  = 0.12
)

var (
	BackgroundColor = color.RGBA{115, 77, 38, 255}
	WallColor       = color.RGBA{77, 77, 90, 255}
	PondColor       = color.RGBA{51, 102, 179, 255}
	TreeColor       = color.RGBA{26, 153, 51, 255}
	TrunkColor      = color.RGBA{128, 89, 13, 255}
	PlayerColor     = color.RGBA{77, 77, 204, 255}
	GunColor        = color.RGBA{51, 51, 51, 255}
	PickupColor     = color.RGBA{255, 26, 26, 255}
	BulletColor     = color.RGBA{255, 255, 0, 255}
	ShockwaveColor  = color.RGBA{0, 255, 255, 200}
	LaserColor      = color.RGBA{255, 0, 0, 255}
	TextColor       = color.RGBA{255, 255, 255, 255}
	HealthGood      = color.RGBA{51, 255, 51, 255}
	HealthWarn      = color.RGBA{255, 255, 51, 255}
	HealthLow       = color.RGBA{255, 51, 51, 255}
	HealthBarBack   = color.RGBA{128, 26, 26, 255}
	OverlayColor    = color.RGBA{0, 0, 0, 140}
)

// Цвета врагов и их пуль по архетипу: Grunt, Tank, Splitter, Sniper, Kamikaze.
var (
	EnemyColors = [...]color.RGBA{
		{255, 51, 51, 255},
		{230, 179, 26, 255},
		{153, 153, 255, 255},
		{204, 204, 204, 255},
		{255, 128, 0, 255},
	}
	EnemyShotColors = [...]color.RGBA{
		{255, 51, 51, 255},
		{255, 128, 0, 255},
		{26, 255, 26, 255},
		{255, 255, 0, 255},
		{255, 255, 255, 255},
	}
)

// Экран
const (
	CameraZoom      = 0.45
	HUDMarginX      = 12
	HUDMarginY      = 20
	HUDLineHeight   = 18
	EnemyBarOffset  = 8.0
	EnemyBarWidth   = 50.0
	PlayerBarWidth  = 70.0
	PulseAmplitude  = 0.08
	ShotRadius      = 5.0
	EnemyShotRadius = 6.0
)
