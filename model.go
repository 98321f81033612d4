package stems

import "fmt"

// StemName identifies one of the twelve principal-part stems.
// The value is the field key used in lexicon files.
type StemName string

const (
	Present                  StemName = "P"
	Imperfect                StemName = "I"
	FutureActive             StemName = "F"
	FuturePassive            StemName = "FP"
	AoristActive             StemName = "A"
	AoristActiveUnaugmented  StemName = "AN"
	AoristPassive            StemName = "AP"
	AoristPassiveUnaugmented StemName = "APN"
	PerfectActive            StemName = "X"
	PerfectMiddle            StemName = "XM"
	PluperfectActive         StemName = "Y"
	PluperfectMiddle         StemName = "YM"
)

// StemNames lists every stem in canonical principal-part order.
var StemNames = []StemName{
	Present, Imperfect, FutureActive, FuturePassive,
	AoristActive, AoristActiveUnaugmented, AoristPassive, AoristPassiveUnaugmented,
	PerfectActive, PerfectMiddle, PluperfectActive, PluperfectMiddle,
}

var stemDescriptions = map[StemName]string{
	Present:                  "present",
	Imperfect:                "imperfect",
	FutureActive:             "future active",
	FuturePassive:            "future passive",
	AoristActive:             "aorist active",
	AoristActiveUnaugmented:  "aorist active (no augment)",
	AoristPassive:            "aorist passive",
	AoristPassiveUnaugmented: "aorist passive (no augment)",
	PerfectActive:            "perfect active",
	PerfectMiddle:            "perfect middle",
	PluperfectActive:         "pluperfect active",
	PluperfectMiddle:         "pluperfect middle",
}

// Description returns the grammatical name of the stem, e.g. "future passive".
func (n StemName) Description() string {
	if d, ok := stemDescriptions[n]; ok {
		return d
	}
	return string(n)
}

// Valid reports whether n is one of the twelve stem names.
func (n StemName) Valid() bool {
	_, ok := stemDescriptions[n]
	return ok
}

// StemSet maps each stem name to its derived stem.
type StemSet map[StemName]string

// Ordered returns the stems as (name, stem) pairs in canonical order.
// Names missing from the set are skipped.
func (s StemSet) Ordered() []NamedStem {
	out := make([]NamedStem, 0, len(s))
	for _, n := range StemNames {
		if v, ok := s[n]; ok {
			out = append(out, NamedStem{Name: n, Stem: v})
		}
	}
	return out
}

// NamedStem pairs a stem with its name.
type NamedStem struct {
	Name StemName
	Stem string
}

// VerbClass is a verb inflection class label as used by the lexicon
// partitions ("0a", "1c", ...).
type VerbClass string

const (
	Class0a VerbClass = "0a"
	Class0b VerbClass = "0b"
	Class1a VerbClass = "1a"
	Class1b VerbClass = "1b"
	Class1c VerbClass = "1c"
	Class2a VerbClass = "2a"
	Class2b VerbClass = "2b"
	Class2c VerbClass = "2c"
	Class3a VerbClass = "3a"
)

// VerbClasses lists all classes in lexicon order.
var VerbClasses = []VerbClass{
	Class0a, Class0b, Class1a, Class1b, Class1c, Class2a, Class2b, Class2c, Class3a,
}

// ParseVerbClass validates a class label.
func ParseVerbClass(s string) (VerbClass, error) {
	c := VerbClass(s)
	if _, ok := classRuleSets[c]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownClass, s)
	}
	return c, nil
}

// Roots holds the three intermediate root forms of an entry.
type Roots struct {
	// Root1 is the stored root, unmodified.
	Root1 string
	// Root1b is Root1 after the class vowel/consonant alteration.
	Root1b string
	// Root1c is Root1b after the class suffix addition.
	Root1c string
}
