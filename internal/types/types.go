// internal/types/types.go
package types

// EntityID identifies an entity in the simulation world. Zero is never a
// valid entity.
type EntityID int

// TargetKind discriminates the TargetID union.
type TargetKind int

const (
	TargetNone TargetKind = iota
	TargetTowerSlot
	TargetTower
	TargetMenu
)

// TowerAction is the closed set of actions that apply to a tower or to the
// slot a tower is about to occupy.
type TowerAction int

const (
	ActionNone TowerAction = iota
	ActionBuild
	ActionUpgrade
	ActionFire
	ActionCancel
)

// MenuItem is the closed set of global menu actions.
type MenuItem int

const (
	MenuNone MenuItem = iota
	MenuGenerateMoney
	MenuHelp
	MenuMute
)

// TargetID is a tagged union over everything a typed phrase can resolve to:
// selecting a tower slot, acting on a tower (for ActionBuild, Entity is the
// slot the tower would occupy), or a menu item. The struct is comparable and
// usable as a map key.
type TargetID struct {
	Kind      TargetKind
	Entity    EntityID
	Action    TowerAction
	BuildKind string
	Menu      MenuItem
}

// SlotTarget returns the TargetID that selects the given slot.
func SlotTarget(slot EntityID) TargetID {
	return TargetID{Kind: TargetTowerSlot, Entity: slot}
}

// TowerTarget returns the TargetID for an action on a built tower.
func TowerTarget(tower EntityID, action TowerAction) TargetID {
	return TargetID{Kind: TargetTower, Entity: tower, Action: action}
}

// BuildTarget returns the TargetID that builds a tower of the given kind in
// the given slot.
func BuildTarget(slot EntityID, kind string) TargetID {
	return TargetID{Kind: TargetTower, Entity: slot, Action: ActionBuild, BuildKind: kind}
}

// MenuTarget returns the TargetID for a menu item.
func MenuTarget(item MenuItem) TargetID {
	return TargetID{Kind: TargetMenu, Menu: item}
}

// Less orders TargetIDs deterministically. It is the final tie-break when
// several identical typed forms match at once.
func (t TargetID) Less(o TargetID) bool {
	if t.Kind != o.Kind {
		return t.Kind < o.Kind
	}
	if t.Entity != o.Entity {
		return t.Entity < o.Entity
	}
	if t.Action != o.Action {
		return t.Action < o.Action
	}
	if t.BuildKind != o.BuildKind {
		return t.BuildKind < o.BuildKind
	}
	return t.Menu < o.Menu
}
