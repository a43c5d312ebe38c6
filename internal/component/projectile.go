// component/projectile.go
package component

import "github.com/rparrett/taipo/internal/types"

// Projectile homes in on a single enemy. SubArmor is carried onto the target
// as a status effect when the projectile hits.
type Projectile struct {
	TargetID    types.EntityID
	SourceTower types.EntityID
	Speed       float64
	Damage      int
	SubArmor    int
}
