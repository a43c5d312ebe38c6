// internal/system/projectile.go
package system

import (
	"math"

	"github.com/rparrett/taipo/internal/config"
	"github.com/rparrett/taipo/internal/entity"
	"github.com/rparrett/taipo/internal/event"
	"github.com/rparrett/taipo/internal/types"
)

// ProjectileSystem homes projectiles onto their targets and applies hits.
type ProjectileSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewProjectileSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *ProjectileSystem {
	return &ProjectileSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

func (s *ProjectileSystem) Update(deltaTime float64) {
	for _, id := range entity.SortedIDs(s.ecs.Projectiles) {
		proj := s.ecs.Projectiles[id]
		pos := s.ecs.Positions[id]
		if pos == nil {
			s.ecs.RemoveEntity(id)
			continue
		}

		// Target died or reached the goal before the projectile arrived.
		targetPos, alive := s.ecs.Positions[proj.TargetID]
		if !alive || s.ecs.Enemies[proj.TargetID] == nil {
			s.ecs.RemoveEntity(id)
			continue
		}

		dx := targetPos.X - pos.X
		dy := targetPos.Y - pos.Y
		dist := math.Sqrt(dx*dx + dy*dy)
		step := proj.Speed * deltaTime

		if dist <= step || dist < config.ProjectileHitRadius {
			s.hit(id, proj.TargetID)
			continue
		}
		pos.X += (dx / dist) * step
		pos.Y += (dy / dist) * step
	}
}

// hit applies the projectile's payload: the armor debuff lands first, then
// damage is reduced by whatever armor remains, floored at zero.
func (s *ProjectileSystem) hit(projID, targetID types.EntityID) {
	proj := s.ecs.Projectiles[projID]
	s.ecs.RemoveEntity(projID)

	if proj.SubArmor > 0 {
		if fx, ok := s.ecs.StatusEffects[targetID]; ok {
			fx.SubArmor += proj.SubArmor
		}
	}

	health, ok := s.ecs.Healths[targetID]
	if !ok {
		return
	}

	armor := 0
	if a, okA := s.ecs.Armors[targetID]; okA {
		armor = a.Value
	}
	if fx, okFx := s.ecs.StatusEffects[targetID]; okFx {
		armor -= fx.SubArmor
		if armor < 0 {
			armor = 0
		}
	}

	damage := proj.Damage - armor
	if damage < 0 {
		damage = 0
	}
	health.Value -= damage
	s.eventDispatcher.Dispatch(event.Event{Type: event.ProjectileHit, Data: targetID})

	if health.Value <= 0 {
		killEnemy(s.ecs, s.eventDispatcher, targetID)
	}
}
