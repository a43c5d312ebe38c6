// internal/lexicon/pool.go
package lexicon

// Pool hands out phrases for action labels and takes them back when an
// action is committed or retired. It is a FIFO: fresh assignments come off
// the front, recycled phrases go to the back, so a phrase just typed does
// not immediately reappear.
type Pool struct {
	queue []Phrase
}

func NewPool(phrases []Phrase) *Pool {
	p := &Pool{queue: make([]Phrase, 0, len(phrases))}
	for _, ph := range phrases {
		if !ph.Empty() {
			p.queue = append(p.queue, ph)
		}
	}
	return p
}

// Len returns the number of phrases currently in the pool.
func (p *Pool) Len() int { return len(p.queue) }

// PopFront removes and returns the first phrase whose typed form is not in
// inUse. Phrases skipped over keep their position. Two live actions must
// never share a typed form, otherwise a single submission could match both.
func (p *Pool) PopFront(inUse map[string]bool) (Phrase, error) {
	for i, ph := range p.queue {
		if inUse[ph.TypedString()] {
			continue
		}
		p.queue = append(p.queue[:i], p.queue[i+1:]...)
		return ph, nil
	}
	return Phrase{}, ErrLexiconEmpty
}

// Recycle returns a phrase to the back of the pool.
func (p *Pool) Recycle(ph Phrase) {
	if ph.Empty() {
		return
	}
	p.queue = append(p.queue, ph)
}
