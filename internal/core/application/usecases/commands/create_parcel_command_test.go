package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parcelshift/internal/core/application/usecases/commands"
	"parcelshift/internal/core/domain/model/kernel"
	"parcelshift/internal/pkg/errs"
)

func TestNewCreateParcelCommand(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		cmd, err := commands.NewCreateParcelCommand(
			kernel.NewUUID(), "sender@example.com", "books", "Dhaka", "Sylhet", 150)

		require.NoError(t, err)
		assert.NoError(t, cmd.Validate())
		assert.Equal(t, "books", cmd.Title())
		assert.Equal(t, "Dhaka", cmd.SenderServiceCenter())
		assert.Equal(t, 150.0, cmd.DeliveryCost())
	})

	t.Run("missing_fields", func(t *testing.T) {
		_, err := commands.NewCreateParcelCommand(
			kernel.NewUUID(), "", "books", "Dhaka", "Sylhet", 150)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = commands.NewCreateParcelCommand(
			kernel.NewUUID(), "sender@example.com", "", "Dhaka", "Sylhet", 150)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = commands.NewCreateParcelCommand(
			kernel.NewUUID(), "sender@example.com", "books", "", "Sylhet", 150)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("non_positive_cost", func(t *testing.T) {
		_, err := commands.NewCreateParcelCommand(
			kernel.NewUUID(), "sender@example.com", "books", "Dhaka", "Sylhet", 0)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var cmd commands.CreateParcelCommand
		assert.ErrorIs(t, cmd.Validate(), commands.ErrCreateParcelCommandIsNotConstructed)
	})
}
