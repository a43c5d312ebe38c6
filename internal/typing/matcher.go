// internal/typing/matcher.go
package typing

import (
	"errors"
	"strings"

	"github.com/rparrett/taipo/internal/lexicon"
	"github.com/rparrett/taipo/internal/types"
)

// ErrRejected is returned by Confirm when the buffer matches no enabled
// action. The buffer is cleared either way.
var ErrRejected = errors.New("typing: no action matches buffer")

// Action is one typeable target: the phrase the player must enter and the
// target it resolves to. Seq is the assignment order, newer is higher.
type Action struct {
	Target  types.TargetID
	Phrase  lexicon.Phrase
	Enabled bool
	Seq     int
}

// MatchState classifies one action against the current buffer.
type MatchState int

const (
	StateEmpty MatchState = iota
	StatePartial
	StateMatched
	StateInvalid
)

// Matcher tracks the typed buffer against the live action set. Nothing is
// committed until Confirm; feeding and erasing only move match state.
type Matcher struct {
	actions []Action
	buffer  []rune
}

func NewMatcher() *Matcher {
	return &Matcher{}
}

// SetActions replaces the action set. The buffer survives so a mid-word
// refresh (a tower firing, a wave starting) does not eat keystrokes.
func (m *Matcher) SetActions(actions []Action) {
	m.actions = actions
}

func (m *Matcher) Actions() []Action { return m.actions }

func (m *Matcher) Buffer() string { return string(m.buffer) }

// Feed appends one keystroke. Only lowercase letters and '-' are
// typeable; anything else is ignored.
func (m *Matcher) Feed(r rune) bool {
	if (r < 'a' || r > 'z') && r != '-' {
		return false
	}
	m.buffer = append(m.buffer, r)
	return true
}

func (m *Matcher) Backspace() bool {
	if len(m.buffer) == 0 {
		return false
	}
	m.buffer = m.buffer[:len(m.buffer)-1]
	return true
}

func (m *Matcher) Clear() {
	m.buffer = m.buffer[:0]
}

// StateOf classifies a single action against the buffer.
func (m *Matcher) StateOf(a Action) MatchState {
	if len(m.buffer) == 0 {
		return StateEmpty
	}
	typed := a.Phrase.TypedString()
	buf := string(m.buffer)
	switch {
	case buf == typed:
		return StateMatched
	case strings.HasPrefix(typed, buf):
		return StatePartial
	default:
		return StateInvalid
	}
}

// MatchedChunks returns how many leading chunks of the action's phrase the
// buffer fully covers. The UI highlights exactly that many glyphs.
func (m *Matcher) MatchedChunks(a Action) int {
	buf := string(m.buffer)
	n := 0
	for _, c := range a.Phrase.Chunks {
		if !strings.HasPrefix(buf, c.Typed) {
			break
		}
		buf = buf[len(c.Typed):]
		n++
	}
	return n
}

// AnyPrefix reports whether the buffer is still on track for at least one
// enabled action.
func (m *Matcher) AnyPrefix() bool {
	if len(m.buffer) == 0 {
		return true
	}
	for _, a := range m.actions {
		if !a.Enabled {
			continue
		}
		if s := m.StateOf(a); s == StatePartial || s == StateMatched {
			return true
		}
	}
	return false
}

// Confirm resolves the buffer to a target and clears it. With several
// exact matches the most specific wins: tower and slot targets beat menu
// targets, then the most recently assigned phrase, then target identity
// order. The ordering is total so a submission resolves the same way on
// every run.
func (m *Matcher) Confirm() (types.TargetID, error) {
	defer m.Clear()

	var best *Action
	for i := range m.actions {
		a := &m.actions[i]
		if !a.Enabled || m.StateOf(*a) != StateMatched {
			continue
		}
		if best == nil || preferred(*a, *best) {
			best = a
		}
	}
	if best == nil {
		return types.TargetID{}, ErrRejected
	}
	return best.Target, nil
}

func preferred(a, b Action) bool {
	ra, rb := contextRank(a.Target), contextRank(b.Target)
	if ra != rb {
		return ra > rb
	}
	if a.Seq != b.Seq {
		return a.Seq > b.Seq
	}
	return a.Target.Less(b.Target)
}

func contextRank(t types.TargetID) int {
	switch t.Kind {
	case types.TargetTower, types.TargetTowerSlot:
		return 1
	default:
		return 0
	}
}
