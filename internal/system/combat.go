// internal/system/combat.go
package system

import (
	"image/color"
	"math"

	"github.com/rparrett/taipo/internal/component"
	"github.com/rparrett/taipo/internal/config"
	"github.com/rparrett/taipo/internal/defs"
	"github.com/rparrett/taipo/internal/entity"
	"github.com/rparrett/taipo/internal/event"
	"github.com/rparrett/taipo/internal/types"
)

// CombatSystem ticks tower cooldowns, recomputes support auras and fires
// projectiles at the enemy deepest along its path.
type CombatSystem struct {
	ecs             *entity.ECS
	lib             *defs.Library
	eventDispatcher *event.Dispatcher
}

func NewCombatSystem(ecs *entity.ECS, lib *defs.Library, eventDispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{ecs: ecs, lib: lib, eventDispatcher: eventDispatcher}
}

func (s *CombatSystem) Update(deltaTime float64) {
	s.recomputeAuras()

	for _, id := range entity.SortedIDs(s.ecs.Towers) {
		tower := s.ecs.Towers[id]
		def, ok := s.lib.Towers[tower.DefID]
		if !ok || !def.CanShoot() {
			continue
		}
		if tower.CooldownRemaining > 0 {
			tower.CooldownRemaining -= deltaTime
		}
		if tower.CooldownRemaining > 0 {
			continue
		}
		if s.fire(id, tower) {
			tower.CooldownRemaining = tower.FireInterval
		}
	}
}

// FireNow is the typed fire action: shoot immediately if any enemy is in
// range and restart the cooldown. Reports whether a shot went out.
func (s *CombatSystem) FireNow(id types.EntityID) bool {
	tower, ok := s.ecs.Towers[id]
	if !ok {
		return false
	}
	def, ok := s.lib.Towers[tower.DefID]
	if !ok || !def.CanShoot() {
		return false
	}
	if !s.fire(id, tower) {
		return false
	}
	tower.CooldownRemaining = tower.FireInterval
	return true
}

// HasTarget reports whether any enemy is inside the tower's range.
func (s *CombatSystem) HasTarget(id types.EntityID) bool {
	tower, ok := s.ecs.Towers[id]
	if !ok {
		return false
	}
	pos := s.ecs.Positions[id]
	if pos == nil {
		return false
	}
	_, found := s.acquireTarget(*pos, tower.Range)
	return found
}

// recomputeAuras rebuilds tower AddDamage from scratch each tick so that
// building, upgrading or range changes are reflected immediately.
func (s *CombatSystem) recomputeAuras() {
	for _, id := range entity.SortedIDs(s.ecs.Towers) {
		if fx, ok := s.ecs.StatusEffects[id]; ok {
			fx.AddDamage = 0
		} else {
			s.ecs.StatusEffects[id] = &component.StatusEffects{}
		}
	}
	for _, supportID := range entity.SortedIDs(s.ecs.Towers) {
		support := s.ecs.Towers[supportID]
		def, ok := s.lib.Towers[support.DefID]
		if !ok || def.Aura == nil {
			continue
		}
		supportPos := s.ecs.Positions[supportID]
		if supportPos == nil {
			continue
		}
		for _, id := range entity.SortedIDs(s.ecs.Towers) {
			if id == supportID {
				continue
			}
			pos := s.ecs.Positions[id]
			if pos == nil {
				continue
			}
			if distance(*supportPos, *pos) <= support.Range {
				s.ecs.StatusEffects[id].AddDamage += def.Aura.AddDamage
			}
		}
	}
}

func (s *CombatSystem) fire(id types.EntityID, tower *component.Tower) bool {
	pos := s.ecs.Positions[id]
	if pos == nil {
		return false
	}
	target, ok := s.acquireTarget(*pos, tower.Range)
	if !ok {
		return false
	}

	damage := tower.Damage
	if fx, okFx := s.ecs.StatusEffects[id]; okFx {
		damage += fx.AddDamage
	}
	subArmor := 0
	if def, okDef := s.lib.Towers[tower.DefID]; okDef {
		subArmor = def.SubArmor
	}

	projID := s.ecs.NewEntity()
	s.ecs.Positions[projID] = &component.Position{X: pos.X, Y: pos.Y}
	s.ecs.Projectiles[projID] = &component.Projectile{
		TargetID:    target,
		SourceTower: id,
		Speed:       config.ProjectileSpeed,
		Damage:      damage,
		SubArmor:    subArmor,
	}
	s.ecs.Renderables[projID] = &component.Renderable{Color: config.ProjectileColor, Radius: 3}
	s.eventDispatcher.Dispatch(event.Event{Type: event.TowerFired, Data: id})
	return true
}

// acquireTarget picks the in-range enemy furthest along its path. Ties go
// to the lowest entity id.
func (s *CombatSystem) acquireTarget(from component.Position, rng float64) (types.EntityID, bool) {
	var best types.EntityID
	bestProgress := math.Inf(-1)
	found := false
	for _, id := range entity.SortedIDs(s.ecs.Enemies) {
		pos := s.ecs.Positions[id]
		path := s.ecs.Paths[id]
		if pos == nil || path == nil {
			continue
		}
		if distance(from, *pos) > rng {
			continue
		}
		if path.Progress > bestProgress {
			best = id
			bestProgress = path.Progress
			found = true
		}
	}
	return best, found
}

func distance(a, b component.Position) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// killEnemy turns a dead enemy into a corpse. Corpses keep their position
// and a dimmed sprite but leave every simulation store.
func killEnemy(ecs *entity.ECS, eventDispatcher *event.Dispatcher, id types.EntityID) {
	enemy, ok := ecs.Enemies[id]
	if !ok {
		return
	}
	defID := enemy.DefID
	delete(ecs.Enemies, id)
	delete(ecs.Velocities, id)
	delete(ecs.Paths, id)
	delete(ecs.Healths, id)
	delete(ecs.Armors, id)
	delete(ecs.StatusEffects, id)
	ecs.Corpses[id] = &component.Corpse{DefID: defID, DeathTime: ecs.GameTime}
	if r, okR := ecs.Renderables[id]; okR {
		r.Color = dimmed(r.Color)
	}
	eventDispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: id})
}

func dimmed(c color.RGBA) color.RGBA {
	return color.RGBA{R: c.R / 3, G: c.G / 3, B: c.B / 3, A: c.A}
}
