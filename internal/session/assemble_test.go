package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/speechdrill/internal/practice"
)

func TestAssemble_LengthIsSumOfCappedCounts(t *testing.T) {
	configs := []practice.Configuration{
		config("a", "/p/", 8),
		config("b", "/t/", 3),
		config("c", "/k/", 0),
		config("d", "/s/", 5),
	}
	tests := []struct {
		max  int
		want int
	}{
		{1, 3},
		{3, 9},
		{5, 13},
		{10, 16},
	}
	for seed := uint64(1); seed <= 20; seed++ {
		for _, tt := range tests {
			got := seeded(seed).Assemble(configs, tt.max)
			if len(got) != tt.want {
				t.Errorf("seed %d max %d: len = %d, want %d", seed, tt.max, len(got), tt.want)
			}
		}
	}
}

func TestAssemble_ItemsComeFromInputSets(t *testing.T) {
	configs := []practice.Configuration{config("a", "/p/", 9), config("b", "/t/", 2)}
	owner := make(map[string]string)
	for _, c := range configs {
		for _, w := range c.Words {
			owner[w.Key()] = c.ID
		}
	}

	for seed := uint64(1); seed <= 20; seed++ {
		items := seeded(seed).Assemble(configs, 4)
		seen := make(map[string]bool)
		for _, it := range items {
			cfg, ok := owner[it.Word.Key()]
			require.True(t, ok, "word %q not in any input set", it.Word.Text)
			assert.Equal(t, cfg, it.ConfigurationID)
			assert.False(t, seen[it.Word.Key()], "word %q drawn twice", it.Word.Text)
			seen[it.Word.Key()] = true
		}
	}
}

func TestAssemble_CarriesLevel(t *testing.T) {
	c := config("a", "/p/", 2)
	c.Level = 4
	for _, it := range seeded(3).Assemble([]practice.Configuration{c}, 5) {
		assert.Equal(t, c.Level, it.Level)
	}
}

func TestAssemble_DoesNotMutateInput(t *testing.T) {
	c := config("a", "/p/", 10)
	before := make([]string, len(c.Words))
	for i, w := range c.Words {
		before[i] = w.ID
	}
	seeded(5).Assemble([]practice.Configuration{c}, 3)
	for i, w := range c.Words {
		assert.Equal(t, before[i], w.ID)
	}
}

func TestAssemble_DeterministicForSeed(t *testing.T) {
	configs := []practice.Configuration{config("a", "/p/", 7), config("b", "/t/", 7)}
	first := seeded(42).Assemble(configs, 4)
	second := seeded(42).Assemble(configs, 4)
	assert.Equal(t, first, second)
}

func TestAssemble_SubsetIsUniform(t *testing.T) {
	c := config("a", "/p/", 4)
	asm := seeded(9)
	counts := make(map[string]int)
	const runs = 4000
	for i := 0; i < runs; i++ {
		for _, it := range asm.Assemble([]practice.Configuration{c}, 2) {
			counts[it.Word.ID]++
		}
	}
	// Each word should appear in half the runs.
	for id, n := range counts {
		assert.InDelta(t, runs/2, n, runs/10, "word %s", id)
	}
}

func TestAssemble_EmptyInputs(t *testing.T) {
	assert.Empty(t, seeded(1).Assemble(nil, 5))
	assert.Empty(t, seeded(1).Assemble([]practice.Configuration{config("a", "/p/", 0)}, 5))
	assert.Empty(t, seeded(1).Assemble([]practice.Configuration{config("a", "/p/", 4)}, 0))
	assert.Empty(t, seeded(1).Assemble([]practice.Configuration{config("a", "/p/", 4)}, -2))
}

func TestAssemble_NilRandUsesGlobal(t *testing.T) {
	var asm Assembler
	items := asm.Assemble([]practice.Configuration{config("a", "/p/", 6)}, 3)
	assert.Len(t, items, 3)
}
