// internal/game/game.go
package game

import (
	"image/color"
	"log"
	"sort"

	"github.com/rparrett/taipo/internal/component"
	"github.com/rparrett/taipo/internal/config"
	"github.com/rparrett/taipo/internal/defs"
	"github.com/rparrett/taipo/internal/entity"
	"github.com/rparrett/taipo/internal/event"
	"github.com/rparrett/taipo/internal/lexicon"
	"github.com/rparrett/taipo/internal/system"
	"github.com/rparrett/taipo/internal/types"
	"github.com/rparrett/taipo/internal/typing"
)

// Phase is the coarse game state.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseVictory
	PhaseDefeat
)

// Game is the simulation world: the ECS, the economy, the goal, the typed
// action surface and the systems that advance it. Everything that happens
// in a level goes through Tick and Submit.
type Game struct {
	ecs             *entity.ECS
	lib             *defs.Library
	eventDispatcher *event.Dispatcher
	economy         *Economy
	registry        *Registry
	matcher         *typing.Matcher

	waves       *system.WaveSystem
	movement    *system.MovementSystem
	combat      *system.CombatSystem
	projectiles *system.ProjectileSystem

	goalHP        int
	selectedSlot  types.EntityID
	selectedTower types.EntityID
	helpMode      bool
	muted         bool
	phase         Phase
	wavesCleared  bool

	towerKinds []string
}

func New(lib *defs.Library, pool *lexicon.Pool, dispatcher *event.Dispatcher) *Game {
	g := &Game{
		ecs:             entity.NewECS(),
		lib:             lib,
		eventDispatcher: dispatcher,
		economy:         NewEconomy(lib.Level.StartingCurrency),
		registry:        NewRegistry(pool),
		matcher:         typing.NewMatcher(),
		goalHP:          lib.Level.GoalHP,
	}

	g.towerKinds = make([]string, 0, len(lib.Towers))
	for id := range lib.Towers {
		g.towerKinds = append(g.towerKinds, id)
	}
	sort.Strings(g.towerKinds)

	g.waves = system.NewWaveSystem(g.ecs, lib, dispatcher)
	g.movement = system.NewMovementSystem(g.ecs, dispatcher)
	g.combat = system.NewCombatSystem(g.ecs, lib, dispatcher)
	g.projectiles = system.NewProjectileSystem(g.ecs, dispatcher)

	dispatcher.Subscribe(event.EnemyKilled, g)
	dispatcher.Subscribe(event.EnemyReachedGoal, g)
	dispatcher.Subscribe(event.AllWavesCleared, g)

	g.spawnSlots()
	g.waves.Start()
	g.refreshActions()
	return g
}

func (g *Game) spawnSlots() {
	for i, p := range g.lib.Level.SlotPositions {
		id := g.ecs.NewEntity()
		g.ecs.Positions[id] = &component.Position{X: p.X, Y: p.Y}
		g.ecs.Slots[id] = &component.TowerSlot{Index: i}
	}
}

// Tick advances the simulation by a fixed step. Input is handled
// separately; a tick never blocks on the player.
func (g *Game) Tick(deltaTime float64) {
	if g.phase != PhasePlaying {
		return
	}
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	g.ecs.GameTime += deltaTime

	g.waves.Update(deltaTime)
	g.movement.Update(deltaTime)
	g.combat.Update(deltaTime)
	g.projectiles.Update(deltaTime)

	g.refreshActions()
}

// --- input surface ---

func (g *Game) TypeRune(r rune) { g.matcher.Feed(r) }
func (g *Game) Backspace()      { g.matcher.Backspace() }
func (g *Game) ClearBuffer()    { g.matcher.Clear() }

// Submit resolves the buffer against the action set and commits the
// matched action. Nothing in the world changes unless the commit as a
// whole succeeds.
func (g *Game) Submit() {
	target, err := g.matcher.Confirm()
	if err != nil {
		g.eventDispatcher.Dispatch(event.Event{Type: event.InputRejected})
		return
	}
	if err := g.commit(target); err != nil {
		log.Printf("commit dropped for %+v: %v", target, err)
		g.eventDispatcher.Dispatch(event.Event{Type: event.InputRejected})
		return
	}
	// Help hints stay up only until the next ordinary commit.
	if target != types.MenuTarget(types.MenuHelp) {
		g.helpMode = false
	}
	g.eventDispatcher.Dispatch(event.Event{Type: event.ActionCommitted, Data: target})
	g.refreshActions()
}

// commit validates the target against current world state, then applies
// the full effect or none of it. A stale target (the enemy of a fire
// action is gone, the slot filled) fails validation and leaves the world
// untouched.
func (g *Game) commit(target types.TargetID) error {
	switch target.Kind {
	case types.TargetTowerSlot:
		return g.commitSlot(target)
	case types.TargetTower:
		return g.commitTower(target)
	case types.TargetMenu:
		return g.commitMenu(target)
	default:
		return ErrInvalidTarget
	}
}

func (g *Game) commitSlot(target types.TargetID) error {
	if target.Action == types.ActionCancel {
		g.clearSelection()
		return nil
	}
	slot, ok := g.ecs.Slots[target.Entity]
	if !ok || slot.Occupant != 0 {
		return ErrInvalidTarget
	}
	g.registry.Release(target)
	g.selectedSlot = target.Entity
	g.selectedTower = 0
	return nil
}

func (g *Game) commitTower(target types.TargetID) error {
	switch target.Action {
	case types.ActionBuild:
		return g.buildTower(target.Entity, target.BuildKind)
	case types.ActionUpgrade:
		return g.upgradeTower(target.Entity)
	case types.ActionFire:
		return g.fireTower(target.Entity)
	case types.ActionCancel:
		g.clearSelection()
		return nil
	case types.ActionNone:
		if _, ok := g.ecs.Towers[target.Entity]; !ok {
			return ErrInvalidTarget
		}
		g.registry.Release(target)
		g.selectedTower = target.Entity
		g.selectedSlot = 0
		return nil
	default:
		return ErrInvalidTarget
	}
}

func (g *Game) buildTower(slotID types.EntityID, kind string) error {
	slot, ok := g.ecs.Slots[slotID]
	if !ok || slot.Occupant != 0 {
		return ErrInvalidTarget
	}
	def, ok := g.lib.Towers[kind]
	if !ok {
		return ErrInvalidTarget
	}
	if err := g.economy.Spend(def.Price); err != nil {
		return err
	}

	pos := g.ecs.Positions[slotID]
	id := g.ecs.NewEntity()
	g.ecs.Positions[id] = &component.Position{X: pos.X, Y: pos.Y}
	g.ecs.Towers[id] = &component.Tower{
		DefID:        kind,
		Slot:         slotID,
		Level:        1,
		Range:        def.Range,
		Damage:       def.Damage,
		FireInterval: def.FireInterval,
	}
	g.ecs.StatusEffects[id] = &component.StatusEffects{}
	g.ecs.Renderables[id] = &component.Renderable{
		Color:  towerColor(kind, def),
		Radius: def.Visuals.Radius,
	}
	slot.Occupant = id
	g.clearSelection()
	g.eventDispatcher.Dispatch(event.Event{Type: event.TowerPlaced, Data: id})
	return nil
}

func towerColor(kind string, def defs.TowerDefinition) color.RGBA {
	if c, ok := config.TowerColors[kind]; ok {
		return c
	}
	return color.RGBA{
		R: def.Visuals.Color[0],
		G: def.Visuals.Color[1],
		B: def.Visuals.Color[2],
		A: def.Visuals.Color[3],
	}
}

func (g *Game) upgradeTower(id types.EntityID) error {
	tower, ok := g.ecs.Towers[id]
	if !ok {
		return ErrInvalidTarget
	}
	def, ok := g.lib.Towers[tower.DefID]
	if !ok {
		return ErrInvalidTarget
	}
	if tower.Level >= def.MaxLevel {
		return ErrMaxLevel
	}
	if err := g.economy.Spend(def.UpgradePrice); err != nil {
		return err
	}
	tower.Level++
	tower.Range += def.UpgradeRange
	tower.Damage += def.UpgradeDmg
	g.registry.Release(types.TowerTarget(id, types.ActionUpgrade))
	g.clearSelection()
	g.eventDispatcher.Dispatch(event.Event{Type: event.TowerUpgraded, Data: id})
	return nil
}

func (g *Game) fireTower(id types.EntityID) error {
	if !g.combat.FireNow(id) {
		return ErrInvalidTarget
	}
	// Selection stays so fire can be chained; the phrase re-rolls.
	g.registry.Release(types.TowerTarget(id, types.ActionFire))
	return nil
}

func (g *Game) commitMenu(target types.TargetID) error {
	switch target.Menu {
	case types.MenuGenerateMoney:
		g.economy.Earn(config.GenerateReward)
		g.registry.Release(target)
		return nil
	case types.MenuHelp:
		g.helpMode = !g.helpMode
		return nil
	case types.MenuMute:
		g.muted = !g.muted
		g.eventDispatcher.Dispatch(event.Event{Type: event.MuteToggled, Data: g.muted})
		return nil
	default:
		return ErrInvalidTarget
	}
}

func (g *Game) clearSelection() {
	g.selectedSlot = 0
	g.selectedTower = 0
}

// refreshActions rebuilds the typed action surface from world state. The
// matcher keeps its buffer, so a rebuild mid-word is invisible unless a
// phrase actually changed.
func (g *Game) refreshActions() {
	var specs []ActionSpec

	switch {
	case g.selectedSlot != 0:
		if slot, ok := g.ecs.Slots[g.selectedSlot]; !ok || slot.Occupant != 0 {
			g.clearSelection()
			specs = g.idleSpecs()
			break
		}
		for _, kind := range g.towerKinds {
			def := g.lib.Towers[kind]
			specs = append(specs, ActionSpec{
				Target:  types.BuildTarget(g.selectedSlot, kind),
				Enabled: g.economy.CanAfford(def.Price),
			})
		}
		specs = append(specs, ActionSpec{
			Target:  types.TargetID{Kind: types.TargetTowerSlot, Entity: g.selectedSlot, Action: types.ActionCancel},
			Enabled: true,
		})
	case g.selectedTower != 0:
		tower, ok := g.ecs.Towers[g.selectedTower]
		if !ok {
			g.clearSelection()
			specs = g.idleSpecs()
			break
		}
		def := g.lib.Towers[tower.DefID]
		// At max level the upgrade disappears instead of sitting disabled.
		if tower.Level < def.MaxLevel {
			specs = append(specs, ActionSpec{
				Target:  types.TowerTarget(g.selectedTower, types.ActionUpgrade),
				Enabled: g.economy.CanAfford(def.UpgradePrice),
			})
		}
		if def.CanShoot() {
			specs = append(specs, ActionSpec{
				Target:  types.TowerTarget(g.selectedTower, types.ActionFire),
				Enabled: g.combat.HasTarget(g.selectedTower),
			})
		}
		specs = append(specs, ActionSpec{
			Target:  types.TowerTarget(g.selectedTower, types.ActionCancel),
			Enabled: true,
		})
	default:
		specs = g.idleSpecs()
	}

	specs = append(specs,
		ActionSpec{Target: types.MenuTarget(types.MenuGenerateMoney), Enabled: true},
		ActionSpec{Target: types.MenuTarget(types.MenuHelp), Enabled: true, Fixed: "help"},
		ActionSpec{Target: types.MenuTarget(types.MenuMute), Enabled: true, Fixed: "mute"},
	)

	g.matcher.SetActions(g.registry.Rebuild(specs))
}

// idleSpecs lists selection targets: every empty slot and every built
// tower.
func (g *Game) idleSpecs() []ActionSpec {
	var specs []ActionSpec
	for _, id := range entity.SortedIDs(g.ecs.Slots) {
		if g.ecs.Slots[id].Occupant != 0 {
			continue
		}
		specs = append(specs, ActionSpec{Target: types.SlotTarget(id), Enabled: true})
	}
	for _, id := range entity.SortedIDs(g.ecs.Towers) {
		specs = append(specs, ActionSpec{Target: types.TowerTarget(id, types.ActionNone), Enabled: true})
	}
	return specs
}

// --- event handling ---

func (g *Game) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyKilled:
		id, ok := e.Data.(types.EntityID)
		if !ok {
			return
		}
		reward := config.KillReward
		if corpse, okC := g.ecs.Corpses[id]; okC {
			if def, okD := g.lib.Enemies[corpse.DefID]; okD && def.Reward > 0 {
				reward = def.Reward
			}
		}
		g.economy.Earn(reward)
	case event.EnemyReachedGoal:
		hit, ok := e.Data.(event.GoalHit)
		if !ok {
			return
		}
		g.goalHP -= hit.Damage
		if g.goalHP < 0 {
			g.goalHP = 0
		}
		g.eventDispatcher.Dispatch(event.Event{Type: event.GoalDamaged, Data: g.goalHP})
		if g.goalHP == 0 && g.phase == PhasePlaying {
			g.phase = PhaseDefeat
			g.eventDispatcher.Dispatch(event.Event{Type: event.GameOver})
		}
	case event.AllWavesCleared:
		g.wavesCleared = true
		if g.phase == PhasePlaying && g.goalHP > 0 {
			g.phase = PhaseVictory
			g.eventDispatcher.Dispatch(event.Event{Type: event.Victory})
		}
	}
}

// --- read surface for UI and states ---

func (g *Game) ECS() *entity.ECS              { return g.ecs }
func (g *Game) Library() *defs.Library        { return g.lib }
func (g *Game) Matcher() *typing.Matcher      { return g.matcher }
func (g *Game) Dispatcher() *event.Dispatcher { return g.eventDispatcher }
func (g *Game) Currency() int                 { return g.economy.Currency() }
func (g *Game) TotalEarned() int              { return g.economy.TotalEarned() }
func (g *Game) GoalHP() int                   { return g.goalHP }
func (g *Game) Phase() Phase                  { return g.phase }
func (g *Game) HelpMode() bool                { return g.helpMode }
func (g *Game) Muted() bool                   { return g.muted }
func (g *Game) CurrentWave() int              { return g.waves.CurrentWave() }
func (g *Game) TotalWaves() int               { return g.waves.TotalWaves() }
func (g *Game) SelectedSlot() types.EntityID  { return g.selectedSlot }
func (g *Game) SelectedTower() types.EntityID { return g.selectedTower }

// ActionPrice returns what committing the target would cost. Zero for
// anything that is not a build or upgrade.
func (g *Game) ActionPrice(target types.TargetID) int {
	if target.Kind != types.TargetTower {
		return 0
	}
	switch target.Action {
	case types.ActionBuild:
		if def, ok := g.lib.Towers[target.BuildKind]; ok {
			return def.Price
		}
	case types.ActionUpgrade:
		if tower, ok := g.ecs.Towers[target.Entity]; ok {
			if def, okD := g.lib.Towers[tower.DefID]; okD {
				return def.UpgradePrice
			}
		}
	}
	return 0
}
