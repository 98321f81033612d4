package stems

import (
	"errors"
	"fmt"
)

// Partition assigns a lexicon file to the verb class whose rules apply
// to every entry in it.
type Partition struct {
	File  string    `mapstructure:"file" json:"file" yaml:"file"`
	Class VerbClass `mapstructure:"class" json:"class" yaml:"class"`
}

// Config drives a checker run.
type Config struct {
	// LexiconDir is the directory holding the partition files.
	LexiconDir string `mapstructure:"lexicon_dir" json:"lexicon_dir" yaml:"lexicon_dir"`
	// Workers bounds how many partitions are checked at once.
	// Zero or one means sequential.
	Workers int `mapstructure:"workers" json:"workers" yaml:"workers"`
	// Partitions is checked in order.
	Partitions []Partition `mapstructure:"partitions" json:"partitions" yaml:"partitions"`
}

// DefaultPartitions returns the standard nine-file table.
func DefaultPartitions() []Partition {
	out := make([]Partition, 0, len(VerbClasses))
	for _, c := range VerbClasses {
		out = append(out, Partition{File: "lexicon" + string(c) + ".yaml", Class: c})
	}
	return out
}

// DefaultConfig reads the standard partitions from ./lexica.
func DefaultConfig() Config {
	return Config{
		LexiconDir: "lexica",
		Workers:    1,
		Partitions: DefaultPartitions(),
	}
}

// Validate checks the partition table.
func (c Config) Validate() error {
	if len(c.Partitions) == 0 {
		return errors.New("config: no lexicon partitions")
	}
	if c.Workers < 0 {
		return fmt.Errorf("config: workers must not be negative, got %d", c.Workers)
	}
	seen := make(map[string]bool, len(c.Partitions))
	for i, p := range c.Partitions {
		if p.File == "" {
			return fmt.Errorf("config: partition %d: empty file name", i)
		}
		if _, err := ParseVerbClass(string(p.Class)); err != nil {
			return fmt.Errorf("config: partition %s: %w", p.File, err)
		}
		if seen[p.File] {
			return fmt.Errorf("config: partition %s listed twice", p.File)
		}
		seen[p.File] = true
	}
	return nil
}
