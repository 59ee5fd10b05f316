// internal/defs/enemies.go
package defs

// EnemyDefinition holds all the static data for a specific enemy archetype.
type EnemyDefinition struct {
	ID             ArchetypeID `json:"id"`
	Name           string      `json:"name"`
	Health         float64     `json:"health"`
	Speed          float64     `json:"speed"`
	StopDistance   float64     `json:"stop_distance"`
	FireRate       int         `json:"fire_rate"` // ticks between shots
	BulletSpeed    float64     `json:"bullet_speed"`
	BulletDamage   float64     `json:"bullet_damage"`
	Radius         float64     `json:"radius"`
	KamikazeDamage float64     `json:"kamikaze_damage"`
	Reward         int         `json:"reward"`
	SpawnWeight    int         `json:"spawn_weight"`
}

// Kamikaze reports whether the archetype explodes on contact instead of shooting.
func (d EnemyDefinition) Kamikaze() bool {
	return d.KamikazeDamage > 0
}

// Fires reports whether the archetype shoots at the player.
func (d EnemyDefinition) Fires() bool {
	return !d.Kamikaze() && d.FireRate > 0 && d.BulletSpeed > 0
}

// Stationary archetypes never steer.
func (d EnemyDefinition) Stationary() bool {
	return d.Speed <= 0
}

// DefaultEnemyDefinitions is the built-in archetype table, indexed by ArchetypeID.
var DefaultEnemyDefinitions = []EnemyDefinition{
	{ID: ArchetypeGrunt, Name: "Grunt", Health: 60, Speed: 1.8, StopDistance: 120, FireRate: 180, BulletSpeed: 4, BulletDamage: 10, Radius: 20, Reward: 5, SpawnWeight: 10},
	{ID: ArchetypeTank, Name: "Tank", Health: 200, Speed: 0.8, StopDistance: 220, FireRate: 300, BulletSpeed: 6, BulletDamage: 40, Radius: 40, Reward: 30, SpawnWeight: 2},
	{ID: ArchetypeSplitter, Name: "Splitter", Health: 60, Speed: 1.2, StopDistance: 130, FireRate: 140, BulletSpeed: 5, BulletDamage: 15, Radius: 20, Reward: 15, SpawnWeight: 4},
	{ID: ArchetypeSniper, Name: "Sniper", Health: 50, Speed: 0, StopDistance: 0, FireRate: 360, BulletSpeed: 20, BulletDamage: 75, Radius: 20, Reward: 5, SpawnWeight: 1},
	{ID: ArchetypeKamikaze, Name: "Kamikaze", Health: 50, Speed: 2.5, StopDistance: 5, Radius: 25, KamikazeDamage: 150, Reward: 10, SpawnWeight: 8},
}

// InitialComposition is the unscaled population placed at match start, in spawn order.
var InitialComposition = []struct {
	ID    ArchetypeID
	Count int
}{
	{ID: ArchetypeTank, Count: 3},
	{ID: ArchetypeGrunt, Count: 4},
}

// SplitInto is the archetype a splitter breaks into. It must not split itself.
const SplitInto = ArchetypeGrunt

// EnemyLibrary is the active archetype table. It starts as DefaultEnemyDefinitions
// and may be replaced by LoadEnemyDefinitions.
var EnemyLibrary = cloneDefinitions(DefaultEnemyDefinitions)

// Enemy returns the definition for an archetype.
func Enemy(id ArchetypeID) EnemyDefinition {
	return EnemyLibrary[id]
}

// SpawnWeights returns the weighted spawn table in archetype order.
func SpawnWeights() []WeightedEntry {
	entries := make([]WeightedEntry, 0, len(EnemyLibrary))
	for _, def := range EnemyLibrary {
		entries = append(entries, WeightedEntry{ID: def.ID, Weight: def.SpawnWeight})
	}
	return entries
}

// WeightedEntry is one row of a weighted random table.
type WeightedEntry struct {
	ID     ArchetypeID `json:"id"`
	Weight int         `json:"weight"`
}

func cloneDefinitions(src []EnemyDefinition) []EnemyDefinition {
	out := make([]EnemyDefinition, len(src))
	copy(out, src)
	return out
}
