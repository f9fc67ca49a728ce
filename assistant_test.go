package wayfind

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/poiesic/wayfind/ai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAssistant(t *testing.T) {
	t.Run("create new assistant", func(t *testing.T) {
		tmpDir := filepath.Join(t.TempDir(), "test_db")
		assistant, err := NewAssistant(tmpDir)
		require.NoError(t, err)
		require.NotNil(t, assistant)
		defer assistant.Close()

		// Verify components are initialized
		assert.NotNil(t, assistant.CandidateRepository())
		assert.NotNil(t, assistant.backend)
		assert.NotNil(t, assistant.dispatcher)
		assert.NotNil(t, assistant.logger)
	})

	t.Run("with custom AI config", func(t *testing.T) {
		tmpDir := filepath.Join(t.TempDir(), "test_db")
		config := ai.NewConfig(ai.WithHost("http://localhost:9999"))
		assistant, err := NewAssistant(tmpDir, WithAIConfig(config))
		require.NoError(t, err)
		defer assistant.Close()
		assert.NotNil(t, assistant)
	})

	t.Run("error with invalid path", func(t *testing.T) {
		// Try to create an assistant at a file path instead of directory
		tmpFile := filepath.Join(t.TempDir(), "not_a_dir")
		err := os.WriteFile(tmpFile, []byte("test"), 0644)
		require.NoError(t, err)

		assistant, err := NewAssistant(tmpFile)
		assert.Error(t, err)
		assert.Nil(t, assistant)
	})
}

func TestAssistant_Close(t *testing.T) {
	assistant, err := NewAssistant(t.TempDir())
	require.NoError(t, err)
	require.NotNil(t, assistant)

	err = assistant.Close()
	assert.NoError(t, err)
}

func TestAssistant_FactoryMethods(t *testing.T) {
	assistant, err := NewAssistant(t.TempDir())
	require.NoError(t, err)
	require.NotNil(t, assistant)
	defer assistant.Close()

	t.Run("can create seed pipeline", func(t *testing.T) {
		pipeline, err := assistant.NewSeedPipeline()
		require.NoError(t, err)
		require.NotNil(t, pipeline)
		pipeline.Release()
	})
}
