package defs

// WeaponDefinition holds the fixed stats of a player weapon.
type WeaponDefinition struct {
	Type     WeaponType
	Damage   float64
	Cooldown int // ticks
}

// WeaponLibrary is indexed by WeaponType.
var WeaponLibrary = [...]WeaponDefinition{
	WeaponNormal:    {Type: WeaponNormal, Damage: 50, Cooldown: 10},
	WeaponLaser:     {Type: WeaponLaser, Damage: 2.5, Cooldown: 1},
	WeaponBurst:     {Type: WeaponBurst, Damage: 45, Cooldown: 5},
	WeaponShockwave: {Type: WeaponShockwave, Damage: 100, Cooldown: 40},
}

// Weapon returns the definition for a weapon type.
func Weapon(w WeaponType) WeaponDefinition {
	return WeaponLibrary[w]
}
