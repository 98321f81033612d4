package stems

import "strings"

// augmentTable lengthens an initial vowel or diphthong.
// Order matters only in that each prefix is tested as written;
// no prefix in the table is a prefix of another.
var augmentTable = []struct {
	prefix string
	long   string
}{
	{"ἀ", "ἠ"},
	{"ἁ", "ἡ"},
	{"αἰ", "ᾐ"},
	{"αὐ", "ηὐ"},
	{"ἐ", "ἠ"},
	{"ὀ", "ὠ"},
	{"ὁ", "ὡ"},
	{"οἰ", "ᾠ"},
}

// alreadyLong lists initials that take no augment at all.
var alreadyLong = []string{"εἰ", "εὐ", "ἠ", "ἡ", "ἰ", "ἱ", "ὑ", "ὠ"}

// defaultAugment is prefixed to consonant-initial stems.
const defaultAugment = "ἐ"

// redupConsonants de-aspirates the initial consonant copied by reduplication.
var redupConsonants = strings.NewReplacer(
	"φ", "π",
	"θ", "τ",
)

// redupVowel links the copied consonant to the stem.
const redupVowel = "ε"

// temporalAugment applies vowel lengthening to s.
// ok is false when s starts with neither a lengthening prefix nor an
// already-long initial, i.e. when the syllabic augment is needed.
func temporalAugment(s string) (augmented string, ok bool) {
	for _, a := range augmentTable {
		if strings.HasPrefix(s, a.prefix) {
			return a.long + s[len(a.prefix):], true
		}
	}
	for _, p := range alreadyLong {
		if strings.HasPrefix(s, p) {
			return s, true
		}
	}
	return "", false
}

// Augment marks a past-tense stem: an initial vowel is lengthened,
// an already-long initial is kept, and anything else gets ἐ- prefixed.
func Augment(s string) string {
	if a, ok := temporalAugment(s); ok {
		return a
	}
	return defaultAugment + s
}

// Reduplicate marks a perfect-system stem. Vowel-initial stems are
// augmented instead; consonant-initial stems copy their first letter
// (φ→π, θ→τ) followed by ε.
func Reduplicate(s string) string {
	if a, ok := temporalAugment(s); ok {
		return a
	}
	if s == "" {
		return s
	}
	first, _ := firstRune(s)
	return redupConsonants.Replace(first) + redupVowel + s
}

// firstRune splits s after its first code point.
func firstRune(s string) (head, tail string) {
	for i := range s {
		if i > 0 {
			return s[:i], s[i:]
		}
	}
	return s, ""
}
