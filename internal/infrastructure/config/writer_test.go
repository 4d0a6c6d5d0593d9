package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteConfigOrdered(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "nested", "config.toml")

	require.NoError(t, WriteConfigOrdered(DefaultConfig(), configPath))

	content, err := os.ReadFile(configPath)
	require.NoError(t, err)

	var sections []string
	for _, line := range strings.Split(string(content), "\n") {
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			sections = append(sections, line)
		}
	}
	require.NotEmpty(t, sections)
	for i := 1; i < len(sections); i++ {
		if sections[i-1] > sections[i] {
			t.Errorf("Sections not sorted: %s > %s", sections[i-1], sections[i])
		}
	}

	var decoded Config
	require.NoError(t, toml.Unmarshal(content, &decoded))
	assert.Equal(t, DefaultConfig().Layout, decoded.Layout)
}

func TestWriteConfigOrdered_NilConfig(t *testing.T) {
	err := WriteConfigOrdered(nil, filepath.Join(t.TempDir(), "config.toml"))
	require.Error(t, err)
}

func TestSortTOMLSections(t *testing.T) {
	input := `[tree]
add_direction = 'right'

[slice]
preset = 'custom'

  [slice.area]
  kind = 'parent'

  [[slice.area.children]]
  kind = 'overflow'

[apply]
max_parallel = 8
`

	got := sortTOMLSections(input)

	want := `[apply]
max_parallel = 8

[slice]
preset = 'custom'

  [slice.area]
  kind = 'parent'

  [[slice.area.children]]
  kind = 'overflow'

[tree]
add_direction = 'right'
`
	assert.Equal(t, want, got)
}

func TestSchema(t *testing.T) {
	data, err := Schema()
	require.NoError(t, err)

	s := string(data)
	assert.Contains(t, s, `"add_direction"`)
	assert.Contains(t, s, `"max_parallel"`)
	assert.Contains(t, s, `"primary_stack"`)
}
