package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Bullrich/polkadot-fellows-runtimes/model/weight"
)

func TestErrorCodes(t *testing.T) {
	require.False(t, HasErrorCode(nil, ErrCodeUnknownInstructionError))

	t.Run("wrapped unknown instruction", func(t *testing.T) {
		err := fmt.Errorf("lookup: %w", NewUnknownInstructionError("teleport"))
		require.True(t, IsUnknownInstructionError(err))
		require.False(t, IsWeightLimitExceededError(err))

		var unknown *UnknownInstructionError
		require.True(t, As(err, &unknown))
		require.Equal(t, "teleport", unknown.Name())
	})

	t.Run("weight limit exceeded", func(t *testing.T) {
		err := NewWeightLimitExceededError("transact", weight.FromParts(10, 0), weight.FromParts(5, 0))
		require.True(t, IsWeightLimitExceededError(err))
		require.Equal(t, weight.FromParts(10, 0), err.Required())
		require.Equal(t, weight.FromParts(5, 0), err.Remaining())
		require.Contains(t, err.Error(), "[Error Code: 1050]")
	})

	t.Run("incomplete table sorts names", func(t *testing.T) {
		err := NewIncompleteTableError([]string{"trap", "burn_asset"}, nil)
		require.True(t, IsIncompleteTableError(err))
		require.Equal(t, []string{"burn_asset", "trap"}, err.Missing())
		require.Empty(t, err.Extra())
		require.Equal(t,
			"[Error Code: 1001] incomplete weight table: missing records for [burn_asset, trap]",
			err.Error())
	})
}
