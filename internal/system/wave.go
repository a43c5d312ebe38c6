// internal/system/wave.go
package system

import (
	"image/color"
	"log"

	"github.com/rparrett/taipo/internal/component"
	"github.com/rparrett/taipo/internal/defs"
	"github.com/rparrett/taipo/internal/entity"
	"github.com/rparrett/taipo/internal/event"
)

type wavePhase int

const (
	waveDelay wavePhase = iota
	waveSpawning
	waveActive
	wavesDone
)

// WaveSystem runs the level's waves in sequence: wait out the delay, spawn
// the wave's enemies on an interval, then wait for every spawned enemy to
// be resolved before moving on.
type WaveSystem struct {
	ecs             *entity.ECS
	lib             *defs.Library
	eventDispatcher *event.Dispatcher

	waveIndex int
	phase     wavePhase
	timer     float64
	toSpawn   int
	alive     int
	started   bool
}

func NewWaveSystem(ecs *entity.ECS, lib *defs.Library, eventDispatcher *event.Dispatcher) *WaveSystem {
	ws := &WaveSystem{
		ecs:             ecs,
		lib:             lib,
		eventDispatcher: eventDispatcher,
	}
	eventDispatcher.Subscribe(event.EnemyKilled, ws)
	eventDispatcher.Subscribe(event.EnemyReachedGoal, ws)
	return ws
}

// Start arms the first wave. Without it Update is a no-op.
func (s *WaveSystem) Start() {
	if len(s.lib.Level.Waves) == 0 {
		s.phase = wavesDone
		s.eventDispatcher.Dispatch(event.Event{Type: event.AllWavesCleared})
		return
	}
	s.started = true
	s.waveIndex = 0
	s.armWave()
}

func (s *WaveSystem) armWave() {
	s.phase = waveDelay
	s.timer = 0
	s.toSpawn = s.lib.Level.Waves[s.waveIndex].Count
}

func (s *WaveSystem) Update(deltaTime float64) {
	if !s.started || s.phase == wavesDone {
		return
	}
	wave := s.lib.Level.Waves[s.waveIndex]

	if s.phase == waveDelay {
		s.timer += deltaTime
		if s.timer < wave.Delay {
			return
		}
		s.phase = waveSpawning
		// First enemy goes out this tick.
		s.timer = wave.Interval
		s.eventDispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: s.waveIndex})
	} else if s.phase == waveSpawning {
		s.timer += deltaTime
	}

	if s.phase == waveSpawning {
		for s.timer >= wave.Interval && s.toSpawn > 0 {
			s.spawnEnemy(wave)
			s.toSpawn--
			s.timer -= wave.Interval
		}
		if s.toSpawn > 0 {
			return
		}
		s.phase = waveActive
	}

	if s.alive == 0 {
		s.eventDispatcher.Dispatch(event.Event{Type: event.WaveCleared, Data: s.waveIndex})
		s.waveIndex++
		if s.waveIndex >= len(s.lib.Level.Waves) {
			s.phase = wavesDone
			s.eventDispatcher.Dispatch(event.Event{Type: event.AllWavesCleared})
			return
		}
		s.armWave()
	}
}

func (s *WaveSystem) spawnEnemy(wave defs.WaveDefinition) {
	def, ok := s.lib.Enemies[wave.EnemyID]
	if !ok {
		log.Printf("enemy definition not found for id %s", wave.EnemyID)
		return
	}

	hp := def.Health
	if wave.HP > 0 {
		hp = wave.HP
	}
	armor := def.Armor
	if wave.Armor > 0 {
		armor = wave.Armor
	}
	speed := def.Speed
	if wave.Speed > 0 {
		speed = wave.Speed
	}
	goalDamage := def.GoalDamage
	if goalDamage <= 0 {
		goalDamage = 1
	}

	points := s.lib.Level.Paths[wave.PathIndex]
	path := make([]component.Position, len(points))
	for i, p := range points {
		path[i] = component.Position{X: p.X, Y: p.Y}
	}

	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: path[0].X, Y: path[0].Y}
	s.ecs.Velocities[id] = &component.Velocity{Speed: speed}
	s.ecs.Paths[id] = &component.Path{Points: path, CurrentIndex: 1}
	s.ecs.Healths[id] = &component.Health{Value: hp, Max: hp}
	s.ecs.Armors[id] = &component.Armor{Value: armor}
	s.ecs.StatusEffects[id] = &component.StatusEffects{}
	s.ecs.Renderables[id] = &component.Renderable{
		Color: color.RGBA{
			R: def.Visuals.Color[0],
			G: def.Visuals.Color[1],
			B: def.Visuals.Color[2],
			A: def.Visuals.Color[3],
		},
		Radius: def.Visuals.Radius,
	}
	s.ecs.Enemies[id] = &component.Enemy{
		DefID:      wave.EnemyID,
		WaveIndex:  s.waveIndex,
		GoalDamage: goalDamage,
	}
	s.alive++
	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemySpawned, Data: id})
}

// CurrentWave returns the one-based wave number for the HUD, clamped to the
// last wave once everything is spawned.
func (s *WaveSystem) CurrentWave() int {
	if !s.started {
		return 0
	}
	if s.phase == wavesDone {
		return len(s.lib.Level.Waves)
	}
	return s.waveIndex + 1
}

func (s *WaveSystem) TotalWaves() int { return len(s.lib.Level.Waves) }

// Finished reports whether every wave has been spawned and resolved.
func (s *WaveSystem) Finished() bool { return s.phase == wavesDone }

func (s *WaveSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyKilled, event.EnemyReachedGoal:
		if s.alive > 0 {
			s.alive--
		}
	}
}
