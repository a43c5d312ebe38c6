// internal/event/types.go
package event

const (
	WaveStarted      EventType = "WaveStarted"      // Data: wave index (int)
	WaveCleared      EventType = "WaveCleared"      // Data: wave index (int)
	AllWavesCleared  EventType = "AllWavesCleared"
	EnemySpawned     EventType = "EnemySpawned"     // Data: types.EntityID
	EnemyKilled      EventType = "EnemyKilled"      // Data: types.EntityID
	EnemyReachedGoal EventType = "EnemyReachedGoal" // Data: GoalHit
	GoalDamaged      EventType = "GoalDamaged"      // Data: remaining hp (int)
	TowerPlaced      EventType = "TowerPlaced"      // Data: types.EntityID
	TowerUpgraded    EventType = "TowerUpgraded"    // Data: types.EntityID
	TowerFired       EventType = "TowerFired"       // Data: types.EntityID
	ProjectileHit    EventType = "ProjectileHit"    // Data: types.EntityID (enemy)
	ActionCommitted  EventType = "ActionCommitted"
	InputRejected    EventType = "InputRejected"
	GameOver         EventType = "GameOver"
	Victory          EventType = "Victory"
	MuteToggled      EventType = "MuteToggled" // Data: muted (bool)
)

// GoalHit is the payload of EnemyReachedGoal.
type GoalHit struct {
	Damage int
}
