package stems

import (
	"regexp"
	"unicode/utf8"
)

// sibilant is appended by the sigmatic classes and tenses.
const sibilant = "σ"

// ruleSet describes how one verb class builds its intermediate roots.
// A nil transform falls back to the default: root1b = root1, root1c = root1b.
type ruleSet struct {
	// shape must match the whole root.
	shape *regexp.Regexp
	// ending is a human-readable form of shape, for error messages.
	ending string
	root1b func(root1 string) string
	root1c func(root1, root1b string) string
}

var anyRoot = regexp.MustCompile(`^.+$`)

func endingIn(r string) *regexp.Regexp {
	return regexp.MustCompile(`^.+` + regexp.QuoteMeta(r) + `$`)
}

// replaceFinal replaces the last code point of s with r.
func replaceFinal(r string) func(string) string {
	return func(s string) string {
		return dropFinal(s) + r
	}
}

// dropFinal removes the last code point of s.
func dropFinal(s string) string {
	_, size := utf8.DecodeLastRuneInString(s)
	return s[:len(s)-size]
}

// addSibilantToRoot1b appends σ to root1b.
func addSibilantToRoot1b(_, root1b string) string { return root1b + sibilant }

// addSibilantToRoot1 appends σ to the stored root, ignoring root1b.
func addSibilantToRoot1(root1, _ string) string { return root1 + sibilant }

var (
	rules0a = ruleSet{
		shape:  anyRoot,
		ending: "any",
		root1c: addSibilantToRoot1b,
	}
	rules0b = ruleSet{
		shape:  endingIn("ζ"),
		ending: "-ζ",
		root1b: dropFinal,
		root1c: addSibilantToRoot1b,
	}
	rules1ab = ruleSet{
		shape:  endingIn("ε"),
		ending: "-ε",
		root1b: replaceFinal("η"),
	}
	rules1c = ruleSet{
		shape:  endingIn("ε"),
		ending: "-ε",
		root1c: addSibilantToRoot1b,
	}
	rules2a = ruleSet{
		shape:  endingIn("α"),
		ending: "-α",
		root1b: replaceFinal("η"),
	}
	rules2b = ruleSet{
		shape:  endingIn("α"),
		ending: "-α",
		root1c: addSibilantToRoot1,
	}
	rules2c = ruleSet{
		shape:  endingIn("α"),
		ending: "-α",
	}
	rules3a = ruleSet{
		shape:  endingIn("ο"),
		ending: "-ο",
		root1b: replaceFinal("ω"),
	}
)

// classRuleSets maps each class to its rules. 1a and 1b share one set.
var classRuleSets = map[VerbClass]*ruleSet{
	Class0a: &rules0a,
	Class0b: &rules0b,
	Class1a: &rules1ab,
	Class1b: &rules1ab,
	Class1c: &rules1c,
	Class2a: &rules2a,
	Class2b: &rules2b,
	Class2c: &rules2c,
	Class3a: &rules3a,
}

// Ending describes the root shape the class requires, e.g. "-ε".
func (c VerbClass) Ending() string {
	if rs, ok := classRuleSets[c]; ok {
		return rs.ending
	}
	return ""
}

// Accepts reports whether root satisfies the class shape constraint.
func (c VerbClass) Accepts(root string) bool {
	rs, ok := classRuleSets[c]
	return ok && rs.shape.MatchString(NormalizeGreek(root))
}

// Roots computes root1, root1b and root1c for root under class c.
func (c VerbClass) Roots(root string) (Roots, error) {
	rs, ok := classRuleSets[c]
	if !ok {
		return Roots{}, &ShapeError{Root: root, Class: c, Err: ErrUnknownClass}
	}
	root = NormalizeGreek(root)
	if !rs.shape.MatchString(root) {
		return Roots{}, &ShapeError{Root: root, Class: c, Ending: rs.ending}
	}
	return rs.roots(root), nil
}

func (rs *ruleSet) roots(root1 string) Roots {
	r := Roots{Root1: root1, Root1b: root1}
	if rs.root1b != nil {
		r.Root1b = rs.root1b(root1)
	}
	r.Root1c = r.Root1b
	if rs.root1c != nil {
		r.Root1c = rs.root1c(root1, r.Root1b)
	}
	return r
}
