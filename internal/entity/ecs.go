// internal/entity/ecs.go
package entity

import (
	"sort"

	"github.com/rparrett/taipo/internal/component"
	"github.com/rparrett/taipo/internal/types"
)

// ECS holds every component store of the simulation world. All gameplay
// state lives here or in game.Game; systems receive a pointer and mutate it
// only inside their tick pass.
type ECS struct {
	GameTime float64
	NextID   types.EntityID

	Positions     map[types.EntityID]*component.Position
	Velocities    map[types.EntityID]*component.Velocity
	Paths         map[types.EntityID]*component.Path
	Healths       map[types.EntityID]*component.Health
	Armors        map[types.EntityID]*component.Armor
	StatusEffects map[types.EntityID]*component.StatusEffects
	Renderables   map[types.EntityID]*component.Renderable
	Slots         map[types.EntityID]*component.TowerSlot
	Towers        map[types.EntityID]*component.Tower
	Enemies       map[types.EntityID]*component.Enemy
	Corpses       map[types.EntityID]*component.Corpse
	Projectiles   map[types.EntityID]*component.Projectile
}

func NewECS() *ECS {
	return &ECS{
		NextID:        1,
		Positions:     make(map[types.EntityID]*component.Position),
		Velocities:    make(map[types.EntityID]*component.Velocity),
		Paths:         make(map[types.EntityID]*component.Path),
		Healths:       make(map[types.EntityID]*component.Health),
		Armors:        make(map[types.EntityID]*component.Armor),
		StatusEffects: make(map[types.EntityID]*component.StatusEffects),
		Renderables:   make(map[types.EntityID]*component.Renderable),
		Slots:         make(map[types.EntityID]*component.TowerSlot),
		Towers:        make(map[types.EntityID]*component.Tower),
		Enemies:       make(map[types.EntityID]*component.Enemy),
		Corpses:       make(map[types.EntityID]*component.Corpse),
		Projectiles:   make(map[types.EntityID]*component.Projectile),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// RemoveEntity drops every component of an entity. The id is never reused.
func (ecs *ECS) RemoveEntity(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Paths, id)
	delete(ecs.Healths, id)
	delete(ecs.Armors, id)
	delete(ecs.StatusEffects, id)
	delete(ecs.Renderables, id)
	delete(ecs.Slots, id)
	delete(ecs.Towers, id)
	delete(ecs.Enemies, id)
	delete(ecs.Corpses, id)
	delete(ecs.Projectiles, id)
}

// SortedIDs returns the keys of a component store in ascending order.
// Systems iterate stores through this so a tick is reproducible; ranging
// over the maps directly would leak map ordering into the simulation.
func SortedIDs[T any](store map[types.EntityID]*T) []types.EntityID {
	ids := make([]types.EntityID, 0, len(store))
	for id := range store {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
