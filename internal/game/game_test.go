package game

import (
	"fmt"
	"testing"

	"github.com/rparrett/taipo/internal/defs"
	"github.com/rparrett/taipo/internal/entity"
	"github.com/rparrett/taipo/internal/event"
	"github.com/rparrett/taipo/internal/lexicon"
	"github.com/rparrett/taipo/internal/types"
	"github.com/rparrett/taipo/internal/typing"
)

const dt = 1.0 / 60

func testPool() *lexicon.Pool {
	var phrases []lexicon.Phrase
	for i := 0; i < 40; i++ {
		phrases = append(phrases, lexicon.NewPlain(fmt.Sprintf("word%c%c", 'a'+i%26, 'a'+i/26)))
	}
	return lexicon.NewPool(phrases)
}

func newTestGame(t *testing.T, waves []defs.WaveDefinition) *Game {
	t.Helper()
	lib := defs.Defaults()
	if waves != nil {
		lib.Level.Waves = waves
	}
	return New(lib, testPool(), event.NewDispatcher())
}

// typeAction finds the live action for a target and types its phrase.
func typeAction(t *testing.T, g *Game, target types.TargetID) {
	t.Helper()
	a, ok := findAction(g, target)
	if !ok {
		t.Fatalf("no live action for target %+v", target)
	}
	for _, r := range a.Phrase.TypedString() {
		g.TypeRune(r)
	}
	g.Submit()
}

func findAction(g *Game, target types.TargetID) (typing.Action, bool) {
	for _, a := range g.Matcher().Actions() {
		if a.Target == target {
			return a, true
		}
	}
	return typing.Action{}, false
}

func firstEmptySlot(g *Game) types.EntityID {
	for _, id := range entity.SortedIDs(g.ECS().Slots) {
		if g.ECS().Slots[id].Occupant == 0 {
			return id
		}
	}
	return 0
}

func buildVia(t *testing.T, g *Game, kind string) types.EntityID {
	t.Helper()
	slot := firstEmptySlot(g)
	typeAction(t, g, types.SlotTarget(slot))
	typeAction(t, g, types.BuildTarget(slot, kind))
	return g.ECS().Slots[slot].Occupant
}

func TestBuildTowerSpendsAndOccupies(t *testing.T) {
	g := newTestGame(t, []defs.WaveDefinition{})
	lib := g.Library()
	lib.Level.StartingCurrency = 25
	g = New(lib, testPool(), event.NewDispatcher())

	start := g.Currency()
	towerID := buildVia(t, g, "TOWER_SHURIKEN")
	if towerID == 0 {
		t.Fatal("tower was not built")
	}
	want := start - lib.Towers["TOWER_SHURIKEN"].Price
	if g.Currency() != want {
		t.Errorf("currency = %d, want %d", g.Currency(), want)
	}
	if g.SelectedSlot() != 0 || g.SelectedTower() != 0 {
		t.Error("selection must clear after building")
	}
}

func TestBuildDisabledWhenUnaffordable(t *testing.T) {
	lib := defs.Defaults()
	lib.Level.StartingCurrency = 5
	lib.Level.Waves = nil
	g := New(lib, testPool(), event.NewDispatcher())

	slot := firstEmptySlot(g)
	typeAction(t, g, types.SlotTarget(slot))

	a, ok := findAction(g, types.BuildTarget(slot, "TOWER_SHURIKEN"))
	if !ok {
		t.Fatal("build action missing from set")
	}
	if a.Enabled {
		t.Error("build must be disabled when unaffordable")
	}

	// Typing the phrase anyway leaves the world untouched.
	for _, r := range a.Phrase.TypedString() {
		g.TypeRune(r)
	}
	g.Submit()
	if g.Currency() != 5 {
		t.Errorf("currency = %d, want untouched 5", g.Currency())
	}
	if g.ECS().Slots[slot].Occupant != 0 {
		t.Error("slot must stay empty")
	}
}

func TestCommitIsAtomicOnStaleTarget(t *testing.T) {
	g := newTestGame(t, []defs.WaveDefinition{})
	slot := firstEmptySlot(g)
	typeAction(t, g, types.SlotTarget(slot))

	a, ok := findAction(g, types.BuildTarget(slot, "TOWER_SHURIKEN"))
	if !ok {
		t.Fatal("build action missing")
	}

	// The slot fills behind the player's back; the queued phrase must
	// now bounce without spending anything.
	g.ECS().Slots[slot].Occupant = 999
	before := g.Currency()
	for _, r := range a.Phrase.TypedString() {
		g.TypeRune(r)
	}
	g.Submit()
	if g.Currency() != before {
		t.Errorf("currency = %d, want untouched %d", g.Currency(), before)
	}
}

func TestUpgradeTower(t *testing.T) {
	lib := defs.Defaults()
	lib.Level.StartingCurrency = 40
	lib.Level.Waves = nil
	g := New(lib, testPool(), event.NewDispatcher())

	towerID := buildVia(t, g, "TOWER_SHURIKEN")
	tower := g.ECS().Towers[towerID]
	baseRange, baseDamage := tower.Range, tower.Damage

	typeAction(t, g, types.TowerTarget(towerID, types.ActionNone))
	typeAction(t, g, types.TowerTarget(towerID, types.ActionUpgrade))

	if tower.Level != 2 {
		t.Fatalf("level = %d, want 2", tower.Level)
	}
	def := lib.Towers["TOWER_SHURIKEN"]
	if tower.Range != baseRange+def.UpgradeRange {
		t.Errorf("range = %v, want %v", tower.Range, baseRange+def.UpgradeRange)
	}
	if tower.Damage != baseDamage+def.UpgradeDmg {
		t.Errorf("damage = %d, want %d", tower.Damage, baseDamage+def.UpgradeDmg)
	}

	// Max level reached: the upgrade action leaves the set entirely.
	typeAction(t, g, types.TowerTarget(towerID, types.ActionNone))
	if _, ok := findAction(g, types.TowerTarget(towerID, types.ActionUpgrade)); ok {
		t.Error("upgrade must leave the action set at max level")
	}
}

func TestGenerateMoney(t *testing.T) {
	g := newTestGame(t, []defs.WaveDefinition{})
	before := g.Currency()
	target := types.MenuTarget(types.MenuGenerateMoney)

	a, _ := findAction(g, target)
	firstPhrase := a.Phrase.TypedString()

	typeAction(t, g, target)
	if g.Currency() != before+1 {
		t.Errorf("currency = %d, want %d", g.Currency(), before+1)
	}
	if g.TotalEarned() != before+1 {
		t.Errorf("total earned = %d, want %d", g.TotalEarned(), before+1)
	}

	// The phrase re-rolls after each use.
	a, ok := findAction(g, target)
	if !ok {
		t.Fatal("generate money action missing after commit")
	}
	if a.Phrase.TypedString() == firstPhrase {
		t.Error("generate money phrase must change after a commit")
	}
}

func TestHelpAndMuteToggle(t *testing.T) {
	g := newTestGame(t, []defs.WaveDefinition{})
	typeAction(t, g, types.MenuTarget(types.MenuHelp))
	if !g.HelpMode() {
		t.Error("help mode must toggle on")
	}
	typeAction(t, g, types.MenuTarget(types.MenuHelp))
	if g.HelpMode() {
		t.Error("help mode must toggle off")
	}
	typeAction(t, g, types.MenuTarget(types.MenuMute))
	if !g.Muted() {
		t.Error("mute must toggle on")
	}
}

func TestHelpModeEndsOnOtherCommit(t *testing.T) {
	g := newTestGame(t, []defs.WaveDefinition{})
	typeAction(t, g, types.MenuTarget(types.MenuHelp))
	if !g.HelpMode() {
		t.Fatal("help mode must toggle on")
	}
	typeAction(t, g, types.MenuTarget(types.MenuGenerateMoney))
	if g.HelpMode() {
		t.Error("any other commit must end help mode")
	}
}

func TestFireDisabledWithNothingInRange(t *testing.T) {
	lib := defs.Defaults()
	lib.Level.StartingCurrency = 40
	lib.Level.Waves = nil
	g := New(lib, testPool(), event.NewDispatcher())

	towerID := buildVia(t, g, "TOWER_SHURIKEN")
	typeAction(t, g, types.TowerTarget(towerID, types.ActionNone))

	a, ok := findAction(g, types.TowerTarget(towerID, types.ActionFire))
	if !ok {
		t.Fatal("fire action missing for a shooting tower")
	}
	if a.Enabled {
		t.Error("fire must be disabled with no enemy in range")
	}
}

func TestCancelRestoresIdleActions(t *testing.T) {
	g := newTestGame(t, []defs.WaveDefinition{})
	slot := firstEmptySlot(g)
	typeAction(t, g, types.SlotTarget(slot))
	if g.SelectedSlot() != slot {
		t.Fatal("slot must be selected")
	}
	typeAction(t, g, types.TargetID{Kind: types.TargetTowerSlot, Entity: slot, Action: types.ActionCancel})
	if g.SelectedSlot() != 0 {
		t.Error("cancel must clear the selection")
	}
	if _, ok := findAction(g, types.SlotTarget(slot)); !ok {
		t.Error("slot select action must come back after cancel")
	}
}

func TestKillRewardAndGoalLoss(t *testing.T) {
	waves := []defs.WaveDefinition{
		{EnemyID: "ENEMY_SKELETON", Count: 1, Interval: 1, Delay: 0, PathIndex: 0},
	}
	lib := defs.Defaults()
	lib.Level.Waves = waves
	lib.Level.GoalHP = 1
	// A short straight path so the enemy arrives quickly.
	lib.Level.Paths = [][]defs.Point{{{X: 0, Y: 0}, {X: 10, Y: 0}}}
	g := New(lib, testPool(), event.NewDispatcher())

	for i := 0; i < 120 && g.Phase() == PhasePlaying; i++ {
		g.Tick(dt)
	}
	if g.Phase() != PhaseDefeat {
		t.Fatalf("phase = %v, want defeat after the goal falls", g.Phase())
	}
	if g.GoalHP() != 0 {
		t.Errorf("goal hp = %d, want 0", g.GoalHP())
	}
}

func TestVictoryAfterAllWavesCleared(t *testing.T) {
	waves := []defs.WaveDefinition{
		{EnemyID: "ENEMY_SKELETON", Count: 1, HP: 1, Interval: 1, Delay: 0, PathIndex: 0},
	}
	lib := defs.Defaults()
	lib.Level.Waves = waves
	lib.Level.StartingCurrency = 40
	g := New(lib, testPool(), event.NewDispatcher())

	// A tower on the first slot covers the default path start.
	slot := firstEmptySlot(g)
	pos := g.ECS().Positions[slot]
	pos.X, pos.Y = 40, 80
	buildVia(t, g, "TOWER_SHURIKEN")

	before := g.Currency()
	for i := 0; i < 60*60 && g.Phase() == PhasePlaying; i++ {
		g.Tick(dt)
	}
	if g.Phase() != PhaseVictory {
		t.Fatalf("phase = %v, want victory", g.Phase())
	}
	if g.Currency() <= before {
		t.Error("kill reward must be paid out")
	}
	if len(g.ECS().Corpses) != 1 {
		t.Errorf("corpses = %d, want 1", len(g.ECS().Corpses))
	}
}

func TestRejectedSubmitLeavesWorldUntouched(t *testing.T) {
	g := newTestGame(t, []defs.WaveDefinition{})
	before := g.Currency()
	for _, r := range "zzzz" {
		g.TypeRune(r)
	}
	g.Submit()
	if g.Currency() != before {
		t.Errorf("currency = %d, want %d", g.Currency(), before)
	}
	if g.Matcher().Buffer() != "" {
		t.Error("buffer must clear on rejection")
	}
}

func TestDeterministicReplay(t *testing.T) {
	run := func() (int, int, types.EntityID, int, int) {
		waves := []defs.WaveDefinition{
			{EnemyID: "ENEMY_SKELETON", Count: 3, Interval: 1, Delay: 1, PathIndex: 0},
			{EnemyID: "ENEMY_ARMORED", Count: 2, Interval: 2, Delay: 2, PathIndex: 1},
		}
		lib := defs.Defaults()
		lib.Level.Waves = waves
		lib.Level.StartingCurrency = 60
		g := New(lib, testPool(), event.NewDispatcher())

		buildVia(t, g, "TOWER_SHURIKEN")
		for i := 0; i < 60*5; i++ {
			g.Tick(dt)
		}
		buildVia(t, g, "TOWER_DEBUFF")
		for i := 0; i < 60*20; i++ {
			g.Tick(dt)
		}
		return g.Currency(), g.GoalHP(), g.ECS().NextID, len(g.ECS().Corpses), len(g.ECS().Enemies)
	}

	c1, hp1, next1, corpses1, enemies1 := run()
	c2, hp2, next2, corpses2, enemies2 := run()
	if c1 != c2 || hp1 != hp2 || next1 != next2 || corpses1 != corpses2 || enemies1 != enemies2 {
		t.Errorf("replay diverged: (%d %d %d %d %d) vs (%d %d %d %d %d)",
			c1, hp1, next1, corpses1, enemies1, c2, hp2, next2, corpses2, enemies2)
	}
}

func TestCurrencyNeverNegative(t *testing.T) {
	lib := defs.Defaults()
	lib.Level.StartingCurrency = 0
	lib.Level.Waves = nil
	g := New(lib, testPool(), event.NewDispatcher())

	slot := firstEmptySlot(g)
	typeAction(t, g, types.SlotTarget(slot))
	if a, ok := findAction(g, types.BuildTarget(slot, "TOWER_SHURIKEN")); ok {
		for _, r := range a.Phrase.TypedString() {
			g.TypeRune(r)
		}
		g.Submit()
	}
	if g.Currency() < 0 {
		t.Fatalf("currency = %d, must never go negative", g.Currency())
	}
}
