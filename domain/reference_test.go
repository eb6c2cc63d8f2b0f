package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/mcpcatalog/domain"
)

func TestParseRepositoryURL(t *testing.T) {
	t.Parallel()

	t.Run("should resolve every supported URL form to the same pair", func(t *testing.T) {
		t.Parallel()

		// given
		urls := []string{
			"https://github.com/acme/widget-mcp",
			"https://github.com/acme/widget-mcp/",
			"https://github.com/acme/widget-mcp.git",
			"https://github.com/acme/widget-mcp/tree/main/src",
			"https://github.com/acme/widget-mcp/blob/main/README.md",
		}

		for _, url := range urls {
			// when
			ref, err := domain.ParseRepositoryURL(url)

			// then
			require.NoError(t, err, url)
			assert.Equal(t, "acme", ref.Owner, url)
			assert.Equal(t, "widget-mcp", ref.Project, url)
			assert.Equal(t, url, ref.URL)
		}
	})

	t.Run("should fail when the URL is not a repository reference", func(t *testing.T) {
		t.Parallel()

		// given
		urls := []string{
			"https://gitlab.com/acme/widget-mcp",
			"https://github.com",
			"https://github.com/acme",
			"not a url at all",
			"",
		}

		for _, url := range urls {
			// when
			_, err := domain.ParseRepositoryURL(url)

			// then
			require.ErrorIs(t, err, domain.ErrInvalidReference, url)
		}
	})

	t.Run("should keep hyphens and dots in the project name", func(t *testing.T) {
		t.Parallel()

		// given
		url := "https://github.com/some-org/my.server-v2"

		// when
		ref, err := domain.ParseRepositoryURL(url)

		// then
		require.NoError(t, err)
		assert.Equal(t, "some-org", ref.Owner)
		assert.Equal(t, "my.server-v2", ref.Project)
	})
}
