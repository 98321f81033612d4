package stems

const (
	// passiveFormant builds the future passive with the sibilant.
	passiveFormant = "θη"
	// aoristPassiveFormant carries the "!" marker the lexicon uses for
	// the aorist passive stems.
	aoristPassiveFormant = "θη!"
	// velarFormant is the κ of the active perfect system.
	velarFormant = "κ"
)

// Stems applies the twelve principal-part formulas to r.
// The formulas are the same for every class; only the roots differ.
func (r Roots) Stems() StemSet {
	sigmatic := r.Root1b + sibilant
	aoristPassive := r.Root1c + aoristPassiveFormant
	perfectActive := Reduplicate(r.Root1b + velarFormant)

	return StemSet{
		Present:                  r.Root1,
		Imperfect:                Augment(r.Root1),
		FutureActive:             sigmatic,
		FuturePassive:            r.Root1c + passiveFormant + sibilant,
		AoristActive:             Augment(sigmatic),
		AoristActiveUnaugmented:  sigmatic,
		AoristPassive:            Augment(aoristPassive),
		AoristPassiveUnaugmented: aoristPassive,
		PerfectActive:            perfectActive,
		PerfectMiddle:            Reduplicate(r.Root1c),
		PluperfectActive:         perfectActive,
		// TODO: confirm root1b against a reference grammar; root1c would
		// differ for the sigmatic classes.
		PluperfectMiddle: Reduplicate(r.Root1b),
	}
}

// Derive computes the principal-part stems of root under class.
// It fails with a *ShapeError when root does not fit the class.
func Derive(root string, class VerbClass) (StemSet, error) {
	r, err := class.Roots(root)
	if err != nil {
		return nil, err
	}
	return r.Stems(), nil
}

// MustDerive is like Derive but panics on error.
func MustDerive(root string, class VerbClass) StemSet {
	s, err := Derive(root, class)
	if err != nil {
		panic(err)
	}
	return s
}
