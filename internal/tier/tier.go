// Package tier parses and builds tiered item identifiers of the form
// "<family>_<roman numeral>".
package tier

import "strings"

// MaxLevel is the highest tier the numeral table covers.
const MaxLevel = 10

const delimiter = "_"

var numerals = [MaxLevel + 1]string{"", "i", "ii", "iii", "iv", "v", "vi", "vii", "viii", "ix", "x"}

var levels = func() map[string]int {
	m := make(map[string]int, MaxLevel)
	for level := 1; level <= MaxLevel; level++ {
		m[numerals[level]] = level
	}
	return m
}()

// Decompose splits id into its family and level. Ids without a recognised
// numeral suffix (including numerals past X) are their own family at level 1.
func Decompose(id string) (family string, level int) {
	idx := strings.LastIndex(id, delimiter)
	if idx == -1 {
		return id, 1
	}
	if level, ok := levels[strings.ToLower(id[idx+1:])]; ok {
		return id[:idx], level
	}
	return id, 1
}

// Compose builds the id for family at level. ok is false when level is
// outside 1..MaxLevel.
func Compose(family string, level int) (string, bool) {
	numeral, ok := Numeral(level)
	if !ok {
		return "", false
	}
	return family + delimiter + numeral, true
}

// Numeral returns the lowercase numeral for level.
func Numeral(level int) (string, bool) {
	if level < 1 || level > MaxLevel {
		return "", false
	}
	return numerals[level], true
}

// LooksLikeNumeral reports whether s is made only of the letters i, v and x.
// Used to flag suffixes such as "xi" that resemble a tier but are not parsed
// as one.
func LooksLikeNumeral(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range strings.ToLower(s) {
		if r != 'i' && r != 'v' && r != 'x' {
			return false
		}
	}
	return true
}

// Suffix returns the text after the last delimiter, if any.
func Suffix(id string) (string, bool) {
	idx := strings.LastIndex(id, delimiter)
	if idx == -1 {
		return "", false
	}
	return id[idx+1:], true
}
