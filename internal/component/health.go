package component

// Health is remaining and maximum hit points.
type Health struct {
	Value int
	Max   int
}

// Armor subtracts from incoming projectile damage, floored at zero.
type Armor struct {
	Value int
}

// StatusEffects are modifiers applied from outside the entity: support
// auras add damage to towers, debuff projectiles strip armor from enemies.
type StatusEffects struct {
	AddDamage int
	SubArmor  int
}
