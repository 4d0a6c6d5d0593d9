package layout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dumbtile/internal/domain/entity"
	"github.com/bnema/dumbtile/internal/infrastructure/floating"
	"github.com/bnema/dumbtile/internal/layout"
	floatlayout "github.com/bnema/dumbtile/internal/layout/floating"
	"github.com/bnema/dumbtile/internal/layout/slice"
	"github.com/bnema/dumbtile/internal/layout/tree"
)

func TestProxyBase_ForwardsToInner(t *testing.T) {
	inner := tree.New(layout.NopEnv(), entity.NewLayoutEngineIdentity(), tree.WithName("Columns"))

	base := layout.NewProxyBase(inner)

	assert.Same(t, inner, base.Inner())
	assert.Equal(t, "Columns", base.Name())
	assert.Equal(t, inner.Identity(), base.Identity())
}

func TestFind(t *testing.T) {
	env := layout.NopEnv()
	inner := tree.New(env, entity.NewLayoutEngineIdentity())
	proxy := floatlayout.NewProxy(env, floating.NewRegistry(), inner)

	t.Run("inner engine through a proxy", func(t *testing.T) {
		found, ok := layout.Find[*tree.Engine](proxy)
		require.True(t, ok)
		assert.Same(t, inner, found)
	})

	t.Run("outermost engine first", func(t *testing.T) {
		found, ok := layout.Find[layout.Engine](proxy)
		require.True(t, ok)
		assert.Equal(t, layout.Engine(proxy), found)
	})

	t.Run("floating layer by interface", func(t *testing.T) {
		_, ok := layout.Find[layout.FloatingLayer](proxy)
		assert.True(t, ok)
		_, ok = layout.Find[layout.FloatingLayer](inner)
		assert.False(t, ok)
	})

	t.Run("missing type", func(t *testing.T) {
		_, ok := layout.Find[*slice.Engine](proxy)
		assert.False(t, ok)
	})

	t.Run("nil engine", func(t *testing.T) {
		_, ok := layout.Find[*tree.Engine](nil)
		assert.False(t, ok)
	})
}
