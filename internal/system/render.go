// internal/system/render.go
package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/rparrett/taipo/internal/config"
	"github.com/rparrett/taipo/internal/defs"
	"github.com/rparrett/taipo/internal/entity"
	"github.com/rparrett/taipo/internal/types"
)

// RenderSystem draws the playfield: paths, goal, slots, towers, enemies,
// corpses and projectiles. Text lives in the ui package.
type RenderSystem struct {
	ecs *entity.ECS
	lib *defs.Library
}

func NewRenderSystem(ecs *entity.ECS, lib *defs.Library) *RenderSystem {
	return &RenderSystem{ecs: ecs, lib: lib}
}

func (s *RenderSystem) Draw(screen *ebiten.Image) {
	s.drawLevel(screen)
	s.drawSlots(screen)
	s.drawCorpses(screen)
	s.drawEnemies(screen)
	s.drawTowers(screen)
	s.drawProjectiles(screen)
}

func (s *RenderSystem) drawLevel(screen *ebiten.Image) {
	for _, path := range s.lib.Level.Paths {
		for i := 1; i < len(path); i++ {
			vector.StrokeLine(screen,
				float32(path[i-1].X), float32(path[i-1].Y),
				float32(path[i].X), float32(path[i].Y),
				6, config.PathColor, true)
		}
	}
	goal := s.lib.Level.GoalPosition
	vector.DrawFilledCircle(screen, float32(goal.X), float32(goal.Y), 14, config.GoalColor, true)
}

func (s *RenderSystem) drawSlots(screen *ebiten.Image) {
	for _, id := range entity.SortedIDs(s.ecs.Slots) {
		slot := s.ecs.Slots[id]
		pos := s.ecs.Positions[id]
		if pos == nil || slot.Occupant != 0 {
			continue
		}
		vector.StrokeCircle(screen, float32(pos.X), float32(pos.Y), 12, 2, config.SlotColor, true)
	}
}

func (s *RenderSystem) drawTowers(screen *ebiten.Image) {
	for _, id := range entity.SortedIDs(s.ecs.Towers) {
		tower := s.ecs.Towers[id]
		pos := s.ecs.Positions[id]
		r := s.ecs.Renderables[id]
		if pos == nil || r == nil {
			continue
		}
		vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), r.Radius, r.Color, true)
		// One ring per upgrade level.
		for lvl := 1; lvl < tower.Level; lvl++ {
			vector.StrokeCircle(screen, float32(pos.X), float32(pos.Y),
				r.Radius+float32(lvl*4), 1, r.Color, true)
		}
	}
}

func (s *RenderSystem) drawEnemies(screen *ebiten.Image) {
	for _, id := range entity.SortedIDs(s.ecs.Enemies) {
		pos := s.ecs.Positions[id]
		r := s.ecs.Renderables[id]
		if pos == nil || r == nil {
			continue
		}
		vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), r.Radius, r.Color, true)
		s.drawHealthBar(screen, id)
	}
}

func (s *RenderSystem) drawHealthBar(screen *ebiten.Image, id types.EntityID) {
	health := s.ecs.Healths[id]
	pos := s.ecs.Positions[id]
	r := s.ecs.Renderables[id]
	if health == nil || pos == nil || r == nil || health.Value >= health.Max {
		return
	}
	width := float32(20)
	frac := float32(health.Value) / float32(health.Max)
	x := float32(pos.X) - width/2
	y := float32(pos.Y) - r.Radius - 8
	vector.DrawFilledRect(screen, x, y, width, 3, config.CorpseColor, false)
	vector.DrawFilledRect(screen, x, y, width*frac, 3, config.MatchedTextColor, false)
}

func (s *RenderSystem) drawCorpses(screen *ebiten.Image) {
	for _, id := range entity.SortedIDs(s.ecs.Corpses) {
		pos := s.ecs.Positions[id]
		r := s.ecs.Renderables[id]
		if pos == nil || r == nil {
			continue
		}
		vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), r.Radius, r.Color, true)
	}
}

func (s *RenderSystem) drawProjectiles(screen *ebiten.Image) {
	for _, id := range entity.SortedIDs(s.ecs.Projectiles) {
		pos := s.ecs.Positions[id]
		r := s.ecs.Renderables[id]
		if pos == nil || r == nil {
			continue
		}
		vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), r.Radius, r.Color, true)
	}
}
