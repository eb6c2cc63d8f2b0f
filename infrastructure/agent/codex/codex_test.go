package codex_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/mcpcatalog/infrastructure/agent/codex"
)

func TestAgent_Name(t *testing.T) {
	t.Parallel()

	t.Run("should return codex", func(t *testing.T) {
		t.Parallel()

		// given
		a := codex.New(time.Second)

		// when
		name := a.Name()

		// then
		assert.Equal(t, "codex", name)
	})
}
