// internal/game/registry.go
package game

import (
	"log"
	"sort"

	"github.com/rparrett/taipo/internal/lexicon"
	"github.com/rparrett/taipo/internal/types"
	"github.com/rparrett/taipo/internal/typing"
)

// ActionSpec is one entry of the desired action set: a target, whether it
// may be committed right now, and an optional fixed phrase that bypasses
// the pool (the help and mute words never change).
type ActionSpec struct {
	Target  types.TargetID
	Enabled bool
	Fixed   string
}

// Registry owns the phrase-to-target assignment. A target keeps its phrase
// across rebuilds until it disappears from the desired set or is released
// after a commit, so labels do not churn under the player's fingers.
type Registry struct {
	pool     *lexicon.Pool
	assigned map[types.TargetID]lexicon.Phrase
	seq      map[types.TargetID]int
	nextSeq  int
}

func NewRegistry(pool *lexicon.Pool) *Registry {
	return &Registry{
		pool:     pool,
		assigned: make(map[types.TargetID]lexicon.Phrase),
		seq:      make(map[types.TargetID]int),
	}
}

// Release recycles a target's phrase so the next rebuild assigns a fresh
// one. Called after a successful commit.
func (r *Registry) Release(target types.TargetID) {
	if ph, ok := r.assigned[target]; ok {
		r.pool.Recycle(ph)
		delete(r.assigned, target)
		delete(r.seq, target)
	}
}

// Rebuild reconciles assignments with the desired set and returns the
// matcher actions in the same order. Targets that left the set give their
// phrases back; new targets draw from the pool, skipping any phrase whose
// typed form collides with a live one.
func (r *Registry) Rebuild(specs []ActionSpec) []typing.Action {
	wanted := make(map[types.TargetID]bool, len(specs))
	for _, spec := range specs {
		wanted[spec.Target] = true
	}
	// Recycle in assignment order, not map order, so the pool sequence is
	// identical across runs.
	var stale []types.TargetID
	for target := range r.assigned {
		if !wanted[target] {
			stale = append(stale, target)
		}
	}
	sort.Slice(stale, func(i, j int) bool { return r.seq[stale[i]] < r.seq[stale[j]] })
	for _, target := range stale {
		r.pool.Recycle(r.assigned[target])
		delete(r.assigned, target)
		delete(r.seq, target)
	}

	inUse := make(map[string]bool)
	for _, spec := range specs {
		if spec.Fixed != "" {
			inUse[spec.Fixed] = true
		}
	}
	for _, ph := range r.assigned {
		inUse[ph.TypedString()] = true
	}

	actions := make([]typing.Action, 0, len(specs))
	for _, spec := range specs {
		var ph lexicon.Phrase
		if spec.Fixed != "" {
			ph = lexicon.NewPlain(spec.Fixed)
		} else if existing, ok := r.assigned[spec.Target]; ok {
			ph = existing
		} else {
			fresh, err := r.pool.PopFront(inUse)
			if err != nil {
				log.Printf("phrase pool exhausted, dropping action for %+v", spec.Target)
				continue
			}
			ph = fresh
			inUse[ph.TypedString()] = true
			r.assigned[spec.Target] = ph
			r.seq[spec.Target] = r.nextSeq
			r.nextSeq++
		}
		actions = append(actions, typing.Action{
			Target:  spec.Target,
			Phrase:  ph,
			Enabled: spec.Enabled,
			Seq:     r.seq[spec.Target],
		})
	}

	r.warnDuplicates(actions)
	return actions
}

func (r *Registry) warnDuplicates(actions []typing.Action) {
	seen := make(map[string]bool, len(actions))
	for _, a := range actions {
		typed := a.Phrase.TypedString()
		if seen[typed] {
			log.Printf("duplicate typed form %q in action set, tie-break will decide", typed)
		}
		seen[typed] = true
	}
}
