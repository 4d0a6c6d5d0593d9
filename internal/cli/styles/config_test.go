package styles_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bnema/dumbtile/internal/cli/styles"
)

func TestConfigRenderer_RenderCreated(t *testing.T) {
	r := styles.NewConfigRenderer(styles.NewTheme())

	out := r.RenderCreated("/tmp/dumbtile/config.toml")
	require.Contains(t, out, "config.toml")
	require.Contains(t, out, "/tmp/dumbtile")
}

func TestConfigRenderer_RenderError(t *testing.T) {
	r := styles.NewConfigRenderer(styles.NewTheme())

	out := r.RenderError(errors.New("bad area"))
	require.Contains(t, out, "bad area")
}

func TestConfigRenderer_RenderExists(t *testing.T) {
	r := styles.NewConfigRenderer(styles.NewTheme())

	require.Contains(t, r.RenderExists("config.toml"), "--force")
}
