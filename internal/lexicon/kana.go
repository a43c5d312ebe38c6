// internal/lexicon/kana.go
//
// Kana word lists let the game present Japanese prompts that are typed in
// romaji. Each line is one phrase made of kana runs and optional
// parentheticals of the form displayed(かな), where the kana in parens
// supplies the typed form for the displayed text (typically kanji).
package lexicon

import (
	"fmt"
	"io"
	"strings"
	"unicode"
)

const sutegana = "ァィゥェォャュョぁぃぅぇぉゃゅょ"
const sokuon = "っッ"

var kanaToTyped = map[string]string{
	// hiragana
	"あ": "a", "い": "i", "う": "u", "え": "e", "お": "o",
	"か": "ka", "が": "ga", "き": "ki", "ぎ": "gi", "く": "ku",
	"ぐ": "gu", "け": "ke", "げ": "ge", "こ": "ko", "ご": "go",
	"さ": "sa", "ざ": "za", "し": "shi", "じ": "ji", "す": "su",
	"ず": "zu", "せ": "se", "ぜ": "ze", "そ": "so", "ぞ": "zo",
	"た": "ta", "だ": "da", "ち": "chi", "ぢ": "ji", "つ": "tsu",
	"づ": "du", "て": "te", "で": "de", "と": "to", "ど": "do",
	"な": "na", "に": "ni", "ぬ": "nu", "ね": "ne", "の": "no",
	"は": "ha", "ば": "ba", "ぱ": "pa", "ひ": "hi", "び": "bi",
	"ぴ": "pi", "ふ": "fu", "ぶ": "bu", "ぷ": "pu", "へ": "he",
	"べ": "be", "ぺ": "pe", "ほ": "ho", "ぼ": "bo", "ぽ": "po",
	"ま": "ma", "み": "mi", "む": "mu", "め": "me", "も": "mo",
	"や": "ya", "ゆ": "yu", "よ": "yo",
	"ら": "ra", "り": "ri", "る": "ru", "れ": "re", "ろ": "ro",
	"わ": "wa", "ゐ": "wi", "ゑ": "we", "を": "wo", "ん": "nn",
	// hiragana you-on
	"きゃ": "kya", "きゅ": "kyu", "きょ": "kyo",
	"しゃ": "sha", "しゅ": "shu", "しょ": "sho",
	"ちゃ": "cha", "ちゅ": "chu", "ちょ": "cho",
	"にゃ": "nya", "にゅ": "nyu", "にょ": "nyo",
	"ひゃ": "hya", "ひゅ": "hyu", "ひょ": "hyo",
	"みゃ": "mya", "みゅ": "myu", "みょ": "myo",
	"りゃ": "rya", "りゅ": "ryu", "りょ": "ryo",
	"ぎゃ": "gya", "ぎゅ": "gyu", "ぎょ": "gyo",
	"じゃ": "ja", "じゅ": "ju", "じょ": "jo",
	"びゃ": "bya", "びゅ": "byu", "びょ": "byo",
	"ぴゃ": "pya", "ぴゅ": "pyu", "ぴょ": "pyo",
	// katakana
	"ア": "a", "イ": "i", "ウ": "u", "エ": "e", "オ": "o",
	"カ": "ka", "ガ": "ga", "キ": "ki", "ギ": "gi", "ク": "ku",
	"グ": "gu", "ケ": "ke", "ゲ": "ge", "コ": "ko", "ゴ": "go",
	"サ": "sa", "ザ": "za", "シ": "shi", "ジ": "ji", "ス": "su",
	"ズ": "zu", "セ": "se", "ゼ": "ze", "ソ": "so", "ゾ": "zo",
	"タ": "ta", "ダ": "da", "チ": "chi", "ヂ": "ji", "ツ": "tsu",
	"ヅ": "du", "テ": "te", "デ": "de", "ト": "to", "ド": "do",
	"ナ": "na", "ニ": "ni", "ヌ": "nu", "ネ": "ne", "ノ": "no",
	"ハ": "ha", "バ": "ba", "パ": "pa", "ヒ": "hi", "ビ": "bi",
	"ピ": "pi", "フ": "fu", "ブ": "bu", "プ": "pu", "ヘ": "he",
	"ベ": "be", "ペ": "pe", "ホ": "ho", "ボ": "bo", "ポ": "po",
	"マ": "ma", "ミ": "mi", "ム": "mu", "メ": "me", "モ": "mo",
	"ヤ": "ya", "ユ": "yu", "ヨ": "yo",
	"ラ": "ra", "リ": "ri", "ル": "ru", "レ": "re", "ロ": "ro",
	"ワ": "wa", "ヰ": "wi", "ヱ": "we", "ヲ": "wo", "ン": "nn",
	"ー": "-",
	// katakana you-on
	"キャ": "kya", "キュ": "kyu", "キョ": "kyo",
	"シャ": "sha", "シュ": "shu", "ショ": "sho",
	"チャ": "cha", "チュ": "chu", "チョ": "cho",
	"ニャ": "nya", "ニュ": "nyu", "ニョ": "nyo",
	"ヒャ": "hya", "ヒュ": "hyu", "ヒョ": "hyo",
	"ミャ": "mya", "ミュ": "myu", "ミョ": "myo",
	"リャ": "rya", "リュ": "ryu", "リョ": "ryo",
	"ギャ": "gya", "ギュ": "gyu", "ギョ": "gyo",
	"ジャ": "ja", "ジュ": "ju", "ジョ": "jo",
	"ビャ": "bya", "ビュ": "byu", "ビョ": "byo",
	"ピャ": "pya", "ピュ": "pyu", "ピョ": "pyo",
	// loanword combinations
	"ウェ": "we", "ジェ": "je", "チェ": "che",
	"フェ": "fe", "フィ": "fi", "ティ": "texi",
}

// ParseKana reads a kana word list: whitespace-separated phrases of kana
// runs and displayed(かな) parentheticals. A sokuon doubles the first
// typed letter of the following kana unit.
func ParseKana(r io.Reader) ([]Phrase, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading kana word list: %w", err)
	}
	return parseKanaString(string(data))
}

type kanaScanner struct {
	runes []rune
	pos   int
}

func (s *kanaScanner) peek() rune {
	if s.pos >= len(s.runes) {
		return 0
	}
	return s.runes[s.pos]
}

func (s *kanaScanner) errAt(pos int) error {
	line, col := 1, 1
	for i := 0; i < pos && i < len(s.runes); i++ {
		if s.runes[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return fmt.Errorf("kana parsing failed at line %d, column %d", line, col)
}

func parseKanaString(input string) ([]Phrase, error) {
	s := &kanaScanner{runes: []rune(input)}
	var phrases []Phrase
	for {
		for unicode.IsSpace(s.peek()) {
			s.pos++
		}
		if s.pos >= len(s.runes) {
			return phrases, nil
		}
		p, err := s.phrase()
		if err != nil {
			return nil, err
		}
		phrases = append(phrases, p)
	}
}

// phrase consumes kana units and parentheticals until whitespace or EOF.
func (s *kanaScanner) phrase() (Phrase, error) {
	var p Phrase
	for s.pos < len(s.runes) && !unicode.IsSpace(s.peek()) {
		if chunks, ok := s.kanaUnit(); ok {
			p.Chunks = append(p.Chunks, chunks...)
			continue
		}
		chunks, err := s.parenthetical()
		if err != nil {
			return Phrase{}, err
		}
		p.Chunks = append(p.Chunks, chunks...)
	}
	return p, nil
}

// kanaUnit matches [sokuon] kana [sutegana]. On failure the scanner is
// left where it started.
func (s *kanaScanner) kanaUnit() ([]Chunk, bool) {
	start := s.pos
	var chunks []Chunk

	var sok rune
	if strings.ContainsRune(sokuon, s.peek()) {
		sok = s.peek()
		s.pos++
	}

	base := s.peek()
	if base == 0 {
		s.pos = start
		return nil, false
	}
	combined := string(base)
	typed, ok := kanaToTyped[combined]
	if !ok {
		s.pos = start
		return nil, false
	}
	s.pos++

	if strings.ContainsRune(sutegana, s.peek()) {
		withSute := combined + string(s.peek())
		if t, ok := kanaToTyped[withSute]; ok {
			combined, typed = withSute, t
			s.pos++
		}
	}

	if sok != 0 {
		chunks = append(chunks, Chunk{Typed: string(typed[0]), Displayed: string(sok)})
	}
	chunks = append(chunks, Chunk{Typed: typed, Displayed: combined})
	return chunks, true
}

// parenthetical matches displayed(かな): the text outside the parens is
// shown, the kana inside supplies what is typed.
func (s *kanaScanner) parenthetical() ([]Chunk, error) {
	start := s.pos
	var displayed strings.Builder
	for s.pos < len(s.runes) {
		r := s.peek()
		if r == '\n' || r == ')' || unicode.IsSpace(r) {
			return nil, s.errAt(s.pos)
		}
		if r == '(' {
			break
		}
		displayed.WriteRune(r)
		s.pos++
	}
	if displayed.Len() == 0 || s.peek() != '(' {
		return nil, s.errAt(start)
	}
	s.pos++

	var typed strings.Builder
	for s.peek() != ')' {
		chunks, ok := s.kanaUnit()
		if !ok {
			return nil, s.errAt(s.pos)
		}
		for _, c := range chunks {
			typed.WriteString(c.Typed)
		}
	}
	s.pos++

	if typed.Len() == 0 {
		return nil, s.errAt(start)
	}
	return []Chunk{{Typed: typed.String(), Displayed: displayed.String()}}, nil
}
