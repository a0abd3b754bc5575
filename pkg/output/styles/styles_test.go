// pkg/output/styles/styles_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: None (embedded styles.yaml)
// PURPOSE: Test style registry loading and lookup fallback

package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	t.Run("embedded_styles_load", func(t *testing.T) {
		require.NotEmpty(t, Registry)

		for _, name := range []string{"Header", "Success", "Warning", "Error", "Muted", "Path", "Count"} {
			_, ok := Registry[name]
			assert.True(t, ok, "style %q should be defined", name)
		}
	})

	t.Run("get_returns_defined_style", func(t *testing.T) {
		style := Get("Header")
		assert.True(t, style.GetBold())
	})

	t.Run("get_falls_back_for_unknown_names", func(t *testing.T) {
		style := Get("NoSuchStyle")
		assert.Equal(t, "plain", style.Render("plain"))
	})

	t.Run("malformed_yaml_is_rejected", func(t *testing.T) {
		err := load([]byte("styles: ["))
		assert.Error(t, err)
	})
}
