// component/tower.go
package component

import "github.com/rparrett/taipo/internal/types"

// TowerSlot is a buildable location. Slots exist for the whole level;
// Occupant is zero until a tower is built there.
type TowerSlot struct {
	Index    int
	Occupant types.EntityID
}

// Tower is a built tower. Towers are never destroyed, only upgraded in
// place. Slot is a back-reference by id, not ownership.
type Tower struct {
	DefID             string
	Slot              types.EntityID
	Level             int
	Range             float64
	Damage            int
	FireInterval      float64
	CooldownRemaining float64
}
