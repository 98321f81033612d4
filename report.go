package stems

// PartitionReport summarises the check of one lexicon partition.
type PartitionReport struct {
	// File is the partition the report covers.
	File  string    `json:"file"`
	Class VerbClass `json:"class"`
	// Entries is the number of entries whose stems were derived.
	Entries int `json:"entries"`
	// Prefixed counts compound entries skipped by the checker.
	Prefixed int `json:"prefixed"`
	// Suppletive counts entries listing all twelve stems and no root.
	Suppletive int `json:"suppletive"`
	// Compared is the number of recorded stems checked against a derivation.
	Compared int `json:"compared"`
	// Err is the fault that stopped the partition, if any.
	Err error `json:"-"`
}

// Skipped returns the number of entries not derived.
func (r PartitionReport) Skipped() int {
	return r.Prefixed + r.Suppletive
}

// Summary aggregates a checker run.
type Summary struct {
	Partitions []PartitionReport `json:"partitions"`
}

// Entries returns the number of entries derived across partitions.
func (s *Summary) Entries() int {
	n := 0
	for _, p := range s.Partitions {
		n += p.Entries
	}
	return n
}

// Compared returns the number of stems compared across partitions.
func (s *Summary) Compared() int {
	n := 0
	for _, p := range s.Partitions {
		n += p.Compared
	}
	return n
}

// Skipped returns the number of skipped entries across partitions.
func (s *Summary) Skipped() int {
	n := 0
	for _, p := range s.Partitions {
		n += p.Skipped()
	}
	return n
}

// Failed returns the reports of partitions that stopped on a fault.
func (s *Summary) Failed() []PartitionReport {
	var out []PartitionReport
	for _, p := range s.Partitions {
		if p.Err != nil {
			out = append(out, p)
		}
	}
	return out
}
