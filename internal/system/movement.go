// internal/system/movement.go
package system

import (
	"math"

	"github.com/rparrett/taipo/internal/entity"
	"github.com/rparrett/taipo/internal/event"
)

// MovementSystem walks enemies along their paths. An enemy that reaches
// the final waypoint hits the goal once and despawns.
type MovementSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewMovementSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *MovementSystem {
	return &MovementSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

func (s *MovementSystem) Update(deltaTime float64) {
	for _, id := range entity.SortedIDs(s.ecs.Enemies) {
		pos, hasPos := s.ecs.Positions[id]
		vel, hasVel := s.ecs.Velocities[id]
		path, hasPath := s.ecs.Paths[id]
		if !hasPos || !hasVel || !hasPath {
			continue
		}

		remaining := vel.Speed * deltaTime
		for remaining > 0 {
			if path.CurrentIndex >= len(path.Points) {
				enemy := s.ecs.Enemies[id]
				s.ecs.RemoveEntity(id)
				s.eventDispatcher.Dispatch(event.Event{
					Type: event.EnemyReachedGoal,
					Data: event.GoalHit{Damage: enemy.GoalDamage},
				})
				break
			}

			target := path.Points[path.CurrentIndex]
			dx := target.X - pos.X
			dy := target.Y - pos.Y
			dist := math.Sqrt(dx*dx + dy*dy)

			if dist <= remaining {
				pos.X = target.X
				pos.Y = target.Y
				path.CurrentIndex++
				path.Progress += dist
				remaining -= dist
				continue
			}

			pos.X += (dx / dist) * remaining
			pos.Y += (dy / dist) * remaining
			path.Progress += remaining
			remaining = 0
		}
	}
}
