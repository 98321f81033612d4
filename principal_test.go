package stems

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDerivePaideuo(t *testing.T) {
	got, err := Derive("παιδευ", Class0a)
	require.NoError(t, err)

	want := StemSet{
		Present:                  "παιδευ",
		Imperfect:                "ἐπαιδευ",
		FutureActive:             "παιδευσ",
		FuturePassive:            "παιδευσθησ",
		AoristActive:             "ἐπαιδευσ",
		AoristActiveUnaugmented:  "παιδευσ",
		AoristPassive:            "ἐπαιδευσθη!",
		AoristPassiveUnaugmented: "παιδευσθη!",
		PerfectActive:            "πεπαιδευκ",
		PerfectMiddle:            "πεπαιδευσ",
		PluperfectActive:         "πεπαιδευκ",
		PluperfectMiddle:         "πεπαιδευ",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Derive(παιδευ, 0a) mismatch (-want +got):\n%s", diff)
	}
}

func TestDerivePhileo(t *testing.T) {
	for _, class := range []VerbClass{Class1a, Class1b} {
		got, err := Derive("φιλε", class)
		require.NoError(t, err)
		assert.Equal(t, "φιλε", got[Present], class)
		assert.Equal(t, "φιλησ", got[FutureActive], class)
		assert.Equal(t, "φιληθησ", got[FuturePassive], class)
		assert.Equal(t, "πεφιληκ", got[PerfectActive], class)
		assert.Equal(t, "πεφιλη", got[PerfectMiddle], class)
	}
}

func TestDeriveByClass(t *testing.T) {
	tests := []struct {
		class VerbClass
		root  string
		want  map[StemName]string
	}{
		{Class0a, "θυ", map[StemName]string{PerfectActive: "τεθυκ", PerfectMiddle: "τεθυσ", AoristPassive: "ἐθυσθη!"}},
		{Class0b, "ἐλπιζ", map[StemName]string{Present: "ἐλπιζ", Imperfect: "ἠλπιζ", FutureActive: "ἐλπισ", PluperfectMiddle: "ἠλπι"}},
		{Class0b, "νομιζ", map[StemName]string{FuturePassive: "νομισθησ", PerfectActive: "νενομικ"}},
		{Class1c, "τελε", map[StemName]string{FutureActive: "τελεσ", FuturePassive: "τελεσθησ", PerfectMiddle: "τετελεσ", PluperfectMiddle: "τετελε"}},
		{Class2a, "τιμα", map[StemName]string{FutureActive: "τιμησ", AoristPassiveUnaugmented: "τιμηθη!", PluperfectActive: "τετιμηκ"}},
		{Class2a, "ἀγαπα", map[StemName]string{Imperfect: "ἠγαπα", AoristActive: "ἠγαπησ", PerfectActive: "ἠγαπηκ"}},
		{Class2b, "γελα", map[StemName]string{FutureActive: "γελασ", FuturePassive: "γελασθησ", PerfectMiddle: "γεγελασ"}},
		{Class2c, "δρα", map[StemName]string{FutureActive: "δρασ", FuturePassive: "δραθησ", PerfectMiddle: "δεδρα"}},
		{Class3a, "δηλο", map[StemName]string{Present: "δηλο", FutureActive: "δηλωσ", PerfectActive: "δεδηλωκ"}},
		{Class3a, "ὀρθο", map[StemName]string{Imperfect: "ὠρθο", PluperfectMiddle: "ὠρθω"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.class)+"/"+tt.root, func(t *testing.T) {
			got, err := Derive(tt.root, tt.class)
			require.NoError(t, err)
			require.Len(t, got, len(StemNames))
			for name, want := range tt.want {
				assert.Equal(t, want, got[name], "stem %s", name)
			}
		})
	}
}

func TestDeriveDeterministic(t *testing.T) {
	for _, c := range VerbClasses {
		root := "λυ"
		if e := c.Ending(); e != "any" {
			root = "λυ" + e[len("-"):]
		}
		first, err := Derive(root, c)
		require.NoError(t, err, c)
		second, err := Derive(root, c)
		require.NoError(t, err, c)
		assert.Equal(t, first, second, c)
	}
}

func TestRootsIdempotent(t *testing.T) {
	// Classes whose root1b is the identity.
	for _, c := range []VerbClass{Class0a, Class1c, Class2b, Class2c} {
		root := "τελε"
		if c == Class2b || c == Class2c {
			root = "γελα"
		}
		r, err := c.Roots(root)
		require.NoError(t, err)
		assert.Equal(t, r.Root1, r.Root1b, c)
		again, err := c.Roots(r.Root1b)
		require.NoError(t, err)
		assert.Equal(t, r, again, c)
	}
	// Classes whose root1c is the identity on root1b.
	for _, c := range []VerbClass{Class1a, Class1b, Class2a, Class2c, Class3a} {
		root := map[VerbClass]string{Class1a: "φιλε", Class1b: "ποιε", Class2a: "τιμα", Class2c: "δρα", Class3a: "δηλο"}[c]
		r, err := c.Roots(root)
		require.NoError(t, err)
		assert.Equal(t, r.Root1b, r.Root1c, c)
	}
}

func TestDeriveShapeViolation(t *testing.T) {
	tests := []struct {
		class VerbClass
		root  string
	}{
		{Class0a, ""},
		{Class0b, "παιδευ"},
		{Class1a, "τιμα"},
		{Class1c, "δηλο"},
		{Class2a, "φιλε"},
		{Class2b, "α"},
		{Class3a, "τιμα"},
	}
	for _, tt := range tests {
		got, err := Derive(tt.root, tt.class)
		assert.Nil(t, got, "%s %q", tt.class, tt.root)
		var se *ShapeError
		if assert.True(t, errors.As(err, &se), "%s %q: %v", tt.class, tt.root, err) {
			assert.Equal(t, tt.class, se.Class)
		}
	}
}

func TestDeriveUnknownClass(t *testing.T) {
	_, err := Derive("λυ", VerbClass("9z"))
	assert.ErrorIs(t, err, ErrUnknownClass)
}

func TestMustDerivePanics(t *testing.T) {
	assert.Panics(t, func() { MustDerive("λυ", Class1a) })
	assert.NotPanics(t, func() { MustDerive("λυ", Class0a) })
}

func TestDeriveNormalizesInput(t *testing.T) {
	// ἀ written as alpha + combining comma above.
	got, err := Derive("\u03b1\u0313κου", Class0a)
	require.NoError(t, err)
	assert.Equal(t, "ἠκου", got[Imperfect])
}

func TestVerbClassAccepts(t *testing.T) {
	tests := []struct {
		class VerbClass
		root  string
		want  bool
	}{
		{Class0a, "παιδευ", true},
		{Class0a, "", false},
		{Class0b, "σωζ", true},
		{Class0b, "ζ", false},
		{Class1a, "φιλε", true},
		{Class1c, "τελε", true},
		{Class2a, "τιμα", true},
		{Class2a, "φιλε", false},
		{Class3a, "δηλο", true},
		{Class3a, "τιμα", false},
		{"9z", "λυ", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.class.Accepts(tt.root), "%s %q", tt.class, tt.root)
		_, err := tt.class.Roots(tt.root)
		assert.Equal(t, tt.want, err == nil, "%s %q: Roots disagrees", tt.class, tt.root)
	}
}

func TestParseVerbClass(t *testing.T) {
	for _, c := range VerbClasses {
		got, err := ParseVerbClass(string(c))
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}
	_, err := ParseVerbClass("4a")
	assert.ErrorIs(t, err, ErrUnknownClass)
}

func TestStemSetOrdered(t *testing.T) {
	s := MustDerive("λυ", Class0a)
	ordered := s.Ordered()
	require.Len(t, ordered, len(StemNames))
	for i, ns := range ordered {
		assert.Equal(t, StemNames[i], ns.Name)
	}
	assert.Equal(t, "future passive", FuturePassive.Description())
}
