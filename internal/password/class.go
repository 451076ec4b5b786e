package password

import "strings"

// CharacterClass identifies one of the four canonical character sets a
// password can draw from.
type CharacterClass int

const (
	Lowercase CharacterClass = iota
	Uppercase
	Digit
	Symbol
)

// classDef pairs a class's canonical alphabet with the characters removed
// when similar-looking characters are excluded.
type classDef struct {
	name     string
	alphabet string
	similar  string
}

// classTable is the immutable class definition table, in pool order.
// Symbols carry no exclusion set: none of them resemble another character.
var classTable = [...]classDef{
	Lowercase: {"lowercase", "abcdefghijklmnopqrstuvwxyz", "lo"},
	Uppercase: {"uppercase", "ABCDEFGHIJKLMNOPQRSTUVWXYZ", "IO"},
	Digit:     {"digits", "0123456789", "01"},
	Symbol:    {"symbols", "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~", ""},
}

// Classes returns all character classes in pool order.
func Classes() []CharacterClass {
	return []CharacterClass{Lowercase, Uppercase, Digit, Symbol}
}

func (c CharacterClass) String() string {
	return classTable[c].name
}

// Alphabet returns the class's full canonical character set. Requirement
// checks and strength scans always run against this set, even when pool
// construction filtered some of it out.
func (c CharacterClass) Alphabet() string {
	return classTable[c].alphabet
}

// poolChars returns the characters the class contributes to a pool, with
// similar-looking characters removed when excludeSimilar is set.
func (c CharacterClass) poolChars(excludeSimilar bool) string {
	def := classTable[c]
	if !excludeSimilar || def.similar == "" {
		return def.alphabet
	}

	var b strings.Builder
	b.Grow(len(def.alphabet))
	for _, ch := range def.alphabet {
		if !strings.ContainsRune(def.similar, ch) {
			b.WriteRune(ch)
		}
	}
	return b.String()
}
