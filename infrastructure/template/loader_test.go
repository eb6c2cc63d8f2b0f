package template_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/mcpcatalog/domain"
	"github.com/rios0rios0/mcpcatalog/infrastructure/template"
)

func TestLoader_Load(t *testing.T) {
	t.Parallel()

	t.Run("should load a valid template record", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "_template.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"metadata": {"version": "1.0.0"}}`), 0o644))
		loader := template.NewLoader(path)

		// when
		record, err := loader.Load()

		// then
		require.NoError(t, err)
		assert.Equal(t, "1.0.0", record.Metadata()["version"])
	})

	t.Run("should fail with a fatal error when the file is missing", func(t *testing.T) {
		t.Parallel()

		// given
		loader := template.NewLoader(filepath.Join(t.TempDir(), "nope.json"))

		// when
		_, err := loader.Load()

		// then
		require.ErrorIs(t, err, domain.ErrTemplateUnreadable)
	})

	t.Run("should fail with a fatal error when the file is not JSON", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "_template.json")
		require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))
		loader := template.NewLoader(path)

		// when
		_, err := loader.Load()

		// then
		require.ErrorIs(t, err, domain.ErrTemplateUnreadable)
	})

	t.Run("should load the shipped catalog template with all required sections", func(t *testing.T) {
		t.Parallel()

		// given
		loader := template.NewLoader(
			filepath.Join("..", "..", "mcp-servers", "templates", "_template.json"),
		)

		// when
		record, err := loader.Load()

		// then
		require.NoError(t, err)
		for _, section := range domain.RequiredSections {
			assert.Contains(t, record, section)
		}
	})
}
