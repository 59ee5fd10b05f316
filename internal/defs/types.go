// internal/defs/types.go
package defs

import "errors"

// ArchetypeID identifies one of the five fixed enemy kinds.
type ArchetypeID int

const (
	ArchetypeGrunt ArchetypeID = iota
	ArchetypeTank
	ArchetypeSplitter
	ArchetypeSniper
	ArchetypeKamikaze
	archetypeCount
)

// ArchetypeCount is the number of enemy kinds in the library.
const ArchetypeCount = int(archetypeCount)

func (a ArchetypeID) String() string {
	switch a {
	case ArchetypeGrunt:
		return "GRUNT"
	case ArchetypeTank:
		return "TANK"
	case ArchetypeSplitter:
		return "SPLITTER"
	case ArchetypeSniper:
		return "SNIPER"
	case ArchetypeKamikaze:
		return "KAMIKAZE"
	default:
		return "UNKNOWN"
	}
}

// Valid reports whether the id refers to a known archetype.
func (a ArchetypeID) Valid() bool {
	return a >= 0 && a < archetypeCount
}

// WeaponType is the player's current weapon selection.
type WeaponType int

const (
	WeaponNormal WeaponType = iota
	WeaponLaser
	WeaponBurst
	WeaponShockwave
)

var weaponNames = [...]string{"Normal", "Laser", "Burst", "Shockwave"}

func (w WeaponType) String() string {
	if w < 0 || int(w) >= len(weaponNames) {
		return "Unknown"
	}
	return weaponNames[w]
}

// ErrInvalidDefinition is returned when a definitions file fails validation.
var ErrInvalidDefinition = errors.New("invalid definition")
