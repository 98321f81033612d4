package stems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPartitions(t *testing.T) {
	ps := DefaultPartitions()
	require.Len(t, ps, 9)
	assert.Equal(t, Partition{File: "lexicon0a.yaml", Class: Class0a}, ps[0])
	assert.Equal(t, Partition{File: "lexicon1b.yaml", Class: Class1b}, ps[3])
	assert.Equal(t, Partition{File: "lexicon3a.yaml", Class: Class3a}, ps[8])
	require.NoError(t, DefaultConfig().Validate())
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		msg  string
	}{
		{"empty", Config{}, "no lexicon partitions"},
		{"workers", Config{Workers: -1, Partitions: DefaultPartitions()}, "workers"},
		{"file", Config{Partitions: []Partition{{Class: Class0a}}}, "empty file name"},
		{"class", Config{Partitions: []Partition{{File: "x.yaml", Class: "5q"}}}, "unknown verb class"},
		{"duplicate", Config{Partitions: []Partition{
			{File: "x.yaml", Class: Class0a},
			{File: "x.yaml", Class: Class0b},
		}}, "listed twice"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}
