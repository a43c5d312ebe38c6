// component/movement.go
package component

// Position is a world-space position in pixels.
type Position struct {
	X, Y float64
}

// Velocity holds a scalar movement speed in pixels per second.
type Velocity struct {
	Speed float64
}

// Path is a sequence of waypoints an entity walks through in order.
// CurrentIndex is the waypoint the entity is heading toward; Progress is the
// total distance walked so far and is what targeting ranks enemies by.
type Path struct {
	Points       []Position
	CurrentIndex int
	Progress     float64
}
