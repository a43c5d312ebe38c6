// internal/lexicon/plain.go
package lexicon

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ParsePlain reads a word list with one word per line. Blank lines and
// lines starting with '#' are skipped. Words must be lowercase ASCII so
// they are reachable from the keyboard without modifiers.
func ParsePlain(r io.Reader) ([]Phrase, error) {
	var phrases []Phrase
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		word := strings.TrimSpace(scanner.Text())
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		for _, c := range word {
			if c < 'a' || c > 'z' {
				return nil, fmt.Errorf("word list line %d: %q contains non-typeable rune %q", line, word, c)
			}
		}
		phrases = append(phrases, NewPlain(word))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading word list: %w", err)
	}
	return phrases, nil
}
