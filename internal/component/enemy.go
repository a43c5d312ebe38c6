package component

// Enemy is a live attacker following a path toward the goal.
type Enemy struct {
	DefID      string
	WaveIndex  int
	GoalDamage int
}

// Corpse is what remains of a combat-killed enemy. It stays rendered and is
// never targeted or simulated again; despawn-on-timer is deliberately not
// implemented.
type Corpse struct {
	DefID     string
	DeathTime float64
}
