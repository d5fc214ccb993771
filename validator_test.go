package prefid

import (
	"testing"

	"github.com/cohesivestack/valgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		err := valgo.Is(Validator[TestID](New[TestID]().String(), "id")).Error()
		assert.NoError(t, err)
	})

	t.Run("wrong kind", func(t *testing.T) {
		err := valgo.Is(Validator[TestID](New[Test1ID]().String(), "id")).Error()
		require.Error(t, err)

		verr, ok := err.(*valgo.Error)
		require.True(t, ok)
		fieldErr, ok := verr.Errors()["id"]
		require.True(t, ok)
		assert.Contains(t, fieldErr.Messages(), "Must be a valid test ID")
	})

	t.Run("empty", func(t *testing.T) {
		err := valgo.Is(Validator[TestID]("", "id")).Error()
		assert.Error(t, err)
	})
}
