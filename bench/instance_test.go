package bench

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInstance(t *testing.T) {
	input := "4 4\n2 2\n2 2\n4 2\n"
	ins, err := ParseInstance(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, 4, ins.Width)
	assert.Equal(t, 4, ins.Height)
	require.Len(t, ins.Sizes, 3)
	assert.Equal(t, 1, ins.Sizes[0].ID)
	assert.Equal(t, 3, ins.Sizes[2].ID)
	assert.Equal(t, 12, ins.TotalArea())
	assert.False(t, ins.IsPerfect())
}

func TestParseInstancePerfect(t *testing.T) {
	input := "2 2\n1 2\n1 2\n"
	ins, err := ParseInstance(strings.NewReader(input))
	require.NoError(t, err)
	assert.True(t, ins.IsPerfect())
}

func TestParseInstanceSkipsBlankLines(t *testing.T) {
	input := "3 3\n\n  \n3 3\n"
	ins, err := ParseInstance(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, ins.Sizes, 1)
}

func TestParseInstanceErrors(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"Empty", ""},
		{"HeaderOnly", "4 4\n"},
		{"OneField", "4 4\n2\n"},
		{"NotANumber", "4 4\nx 2\n"},
		{"ZeroDimension", "4 4\n0 2\n"},
		{"NegativeHeader", "-1 4\n2 2\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseInstance(strings.NewReader(tc.input))
			assert.Error(t, err)
		})
	}
}

func TestLoadInstance(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "small.txt")
	require.NoError(t, os.WriteFile(path, []byte("5 3\n5 2\n5 1\n"), 0644))

	ins, err := LoadInstance(path)
	require.NoError(t, err)
	assert.Equal(t, 5, ins.Width)
	assert.True(t, ins.IsPerfect())

	_, err = LoadInstance(filepath.Join(dir, "missing.txt"))
	assert.Error(t, err)
}
