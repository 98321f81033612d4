package stems

// Field keys of a lexicon entry besides the stem names.
const (
	fieldRoot   = "root1"
	fieldPrefix = "prefix"
)

// Entry is one headword record of a lexicon partition.
type Entry struct {
	// Headword is the lemma the record is keyed by.
	Headword string
	// Root is the root1 field, empty when absent.
	Root string
	// Prefix is the composition prefix of a compound verb.
	Prefix string
	// HasPrefix is true when the prefix field is present, even if empty.
	HasPrefix bool
	// Stems holds the explicit stem overrides recorded in the entry.
	Stems StemSet
	// Extra keeps any other scalar fields (glosses, tags) untouched.
	Extra map[string]string
}

// HasRoot reports whether the entry carries a root1 field.
func (e *Entry) HasRoot() bool {
	return e.Root != ""
}

// Suppletive reports whether every stem is given explicitly, which
// marks a verb the rules do not cover.
func (e *Entry) Suppletive() bool {
	for _, n := range StemNames {
		if _, ok := e.Stems[n]; !ok {
			return false
		}
	}
	return true
}

// Lexicon is one partition file, entries kept in file order.
type Lexicon struct {
	// Name identifies the source, usually the file name.
	Name    string
	Entries []*Entry
	index   map[string]*Entry
}

// Entry looks up a headword.
func (l *Lexicon) Entry(headword string) *Entry {
	return l.index[NormalizeGreek(headword)]
}

// Len returns the number of entries.
func (l *Lexicon) Len() int {
	return len(l.Entries)
}

func newLexicon(name string) *Lexicon {
	return &Lexicon{
		Name:  name,
		index: make(map[string]*Entry),
	}
}

func (l *Lexicon) add(e *Entry) {
	l.Entries = append(l.Entries, e)
	l.index[e.Headword] = e
}
