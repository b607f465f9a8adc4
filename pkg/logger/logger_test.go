package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	original := L
	t.Cleanup(func() { L = original })

	t.Run("Stdout only", func(t *testing.T) {
		require.NoError(t, Init("", false))
		assert.NotNil(t, L)
	})

	t.Run("With rotating file", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "logs")
		require.NoError(t, Init(dir, true))

		WithComponent("test").Info("hello")
		_ = L.Sync()

		_, err := os.Stat(filepath.Join(dir, "ticket-purchase.log"))
		assert.NoError(t, err)
	})
}
