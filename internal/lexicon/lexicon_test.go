package lexicon

import (
	"strings"
	"testing"
)

func TestParsePlain(t *testing.T) {
	input := "tower\n\n# comment\nupgrade\n"
	phrases, err := ParsePlain(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParsePlain: %v", err)
	}
	if len(phrases) != 2 {
		t.Fatalf("expected 2 phrases, got %d", len(phrases))
	}
	if got := phrases[0].TypedString(); got != "tower" {
		t.Errorf("typed = %q, want %q", got, "tower")
	}
	if got := phrases[0].DisplayedString(); got != "tower" {
		t.Errorf("displayed = %q, want %q", got, "tower")
	}
	if len(phrases[0].Chunks) != 5 {
		t.Errorf("chunks = %d, want one per rune", len(phrases[0].Chunks))
	}
}

func TestParsePlainRejectsNonTypeable(t *testing.T) {
	if _, err := ParsePlain(strings.NewReader("Tower\n")); err == nil {
		t.Fatal("expected error for uppercase word")
	}
	if _, err := ParsePlain(strings.NewReader("ab cd\n")); err == nil {
		t.Fatal("expected error for word with space")
	}
}

func TestParseKanaBasic(t *testing.T) {
	phrases, err := ParseKana(strings.NewReader("ねこ"))
	if err != nil {
		t.Fatalf("ParseKana: %v", err)
	}
	if len(phrases) != 1 {
		t.Fatalf("expected 1 phrase, got %d", len(phrases))
	}
	if got := phrases[0].TypedString(); got != "neko" {
		t.Errorf("typed = %q, want %q", got, "neko")
	}
	if got := phrases[0].DisplayedString(); got != "ねこ" {
		t.Errorf("displayed = %q, want %q", got, "ねこ")
	}
}

func TestParseKanaYouon(t *testing.T) {
	phrases, err := ParseKana(strings.NewReader("きょう"))
	if err != nil {
		t.Fatalf("ParseKana: %v", err)
	}
	if got := phrases[0].TypedString(); got != "kyou" {
		t.Errorf("typed = %q, want %q", got, "kyou")
	}
	if len(phrases[0].Chunks) != 2 {
		t.Errorf("chunks = %d, want 2 (きょ + う)", len(phrases[0].Chunks))
	}
}

func TestParseKanaSokuon(t *testing.T) {
	phrases, err := ParseKana(strings.NewReader("きって"))
	if err != nil {
		t.Fatalf("ParseKana: %v", err)
	}
	if got := phrases[0].TypedString(); got != "kitte" {
		t.Errorf("typed = %q, want %q", got, "kitte")
	}
	// っ is its own displayed chunk carrying the doubled letter.
	if len(phrases[0].Chunks) != 3 {
		t.Errorf("chunks = %d, want 3 (き + っ + て)", len(phrases[0].Chunks))
	}
}

func TestParseKanaParenthetical(t *testing.T) {
	phrases, err := ParseKana(strings.NewReader("金(かね)"))
	if err != nil {
		t.Fatalf("ParseKana: %v", err)
	}
	if got := phrases[0].TypedString(); got != "kane" {
		t.Errorf("typed = %q, want %q", got, "kane")
	}
	if got := phrases[0].DisplayedString(); got != "金" {
		t.Errorf("displayed = %q, want %q", got, "金")
	}
}

func TestParseKanaMixed(t *testing.T) {
	phrases, err := ParseKana(strings.NewReader("お金(かね)\nタワー"))
	if err != nil {
		t.Fatalf("ParseKana: %v", err)
	}
	if len(phrases) != 2 {
		t.Fatalf("expected 2 phrases, got %d", len(phrases))
	}
	if got := phrases[0].TypedString(); got != "okane" {
		t.Errorf("typed = %q, want %q", got, "okane")
	}
	if got := phrases[1].TypedString(); got != "tawa-" {
		t.Errorf("typed = %q, want %q", got, "tawa-")
	}
}

func TestParseKanaReportsPosition(t *testing.T) {
	_, err := ParseKana(strings.NewReader("ねこ\nx"))
	if err == nil {
		t.Fatal("expected error for stray ascii")
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("error should name line 2: %v", err)
	}
}

func TestPoolSkipsLivePhrases(t *testing.T) {
	pool := NewPool([]Phrase{NewPlain("alpha"), NewPlain("beta"), NewPlain("gamma")})
	inUse := map[string]bool{"alpha": true}

	ph, err := pool.PopFront(inUse)
	if err != nil {
		t.Fatalf("PopFront: %v", err)
	}
	if got := ph.TypedString(); got != "beta" {
		t.Errorf("popped %q, want %q (alpha is live)", got, "beta")
	}
	if pool.Len() != 2 {
		t.Errorf("pool len = %d, want 2", pool.Len())
	}

	// alpha stays at the front for when it frees up.
	ph, err = pool.PopFront(nil)
	if err != nil {
		t.Fatalf("PopFront: %v", err)
	}
	if got := ph.TypedString(); got != "alpha" {
		t.Errorf("popped %q, want %q", got, "alpha")
	}
}

func TestPoolExhaustion(t *testing.T) {
	pool := NewPool([]Phrase{NewPlain("alpha")})
	if _, err := pool.PopFront(map[string]bool{"alpha": true}); err != ErrLexiconEmpty {
		t.Fatalf("err = %v, want ErrLexiconEmpty", err)
	}
	if _, err := pool.PopFront(nil); err != nil {
		t.Fatalf("PopFront: %v", err)
	}
	if _, err := pool.PopFront(nil); err != ErrLexiconEmpty {
		t.Fatalf("err = %v, want ErrLexiconEmpty on empty pool", err)
	}
}

func TestPoolRecycleGoesToBack(t *testing.T) {
	pool := NewPool([]Phrase{NewPlain("alpha"), NewPlain("beta")})
	ph, _ := pool.PopFront(nil)
	pool.Recycle(ph)
	next, _ := pool.PopFront(nil)
	if got := next.TypedString(); got != "beta" {
		t.Errorf("popped %q, want %q (recycled phrase goes to back)", got, "beta")
	}
}
