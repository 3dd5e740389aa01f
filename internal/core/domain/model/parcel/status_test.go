package parcel_test

import (
	"testing"

	"parcelshift/internal/core/domain/model/parcel"
	"parcelshift/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeliveryStatus_String(t *testing.T) {
	cases := []struct {
		status   parcel.DeliveryStatus
		expected string
	}{
		{parcel.NotCollected, "not-collected"},
		{parcel.RiderAssigned, "rider-assigned"},
		{parcel.InTransit, "in-transit"},
		{parcel.Delivered, "delivered"},
		{parcel.DeliveryStatusUnknown, "unknown"},
		{parcel.DeliveryStatus(42), "unknown"},
	}

	for _, tc := range cases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.status.String())
		})
	}
}

func TestDeliveryStatusFromString(t *testing.T) {
	t.Run("parses_all_wire_labels", func(t *testing.T) {
		for _, label := range []string{"not-collected", "rider-assigned", "in-transit", "delivered"} {
			status, err := parcel.DeliveryStatusFromString(label)
			require.NoError(t, err)
			assert.Equal(t, label, status.String())
		}
	})

	t.Run("rejects_unknown_label", func(t *testing.T) {
		_, err := parcel.DeliveryStatusFromString("teleported")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_empty_label", func(t *testing.T) {
		_, err := parcel.DeliveryStatusFromString("")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestDeliveryStatus_Validate(t *testing.T) {
	t.Run("valid_statuses", func(t *testing.T) {
		for _, s := range []parcel.DeliveryStatus{
			parcel.NotCollected, parcel.RiderAssigned, parcel.InTransit, parcel.Delivered,
		} {
			require.NoError(t, s.Validate())
		}
	})

	t.Run("invalid_statuses", func(t *testing.T) {
		require.Error(t, parcel.DeliveryStatusUnknown.Validate())
		require.Error(t, parcel.DeliveryStatus(99).Validate())
	})
}

func TestDeliveryStatus_Assign(t *testing.T) {
	t.Run("not_collected_accepts_assignment", func(t *testing.T) {
		next, err := parcel.NotCollected.Assign()

		require.NoError(t, err)
		assert.Equal(t, parcel.RiderAssigned, next)
	})

	t.Run("other_statuses_reject_assignment", func(t *testing.T) {
		for _, s := range []parcel.DeliveryStatus{
			parcel.RiderAssigned, parcel.InTransit, parcel.Delivered,
		} {
			_, err := s.Assign()
			require.ErrorIs(t, err, errs.ErrConflict, "status %s", s)
		}
	})
}

func TestDeliveryStatus_Advance(t *testing.T) {
	t.Run("legal_transitions", func(t *testing.T) {
		cases := []struct {
			name string
			from parcel.DeliveryStatus
			to   parcel.DeliveryStatus
		}{
			{"assigned_to_transit", parcel.RiderAssigned, parcel.InTransit},
			{"assigned_directly_to_delivered", parcel.RiderAssigned, parcel.Delivered},
			{"transit_to_delivered", parcel.InTransit, parcel.Delivered},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				next, err := tc.from.Advance(tc.to)
				require.NoError(t, err)
				assert.Equal(t, tc.to, next)
			})
		}
	})

	t.Run("never_moves_backward", func(t *testing.T) {
		cases := []struct {
			from parcel.DeliveryStatus
			to   parcel.DeliveryStatus
		}{
			{parcel.RiderAssigned, parcel.NotCollected},
			{parcel.InTransit, parcel.RiderAssigned},
			{parcel.InTransit, parcel.NotCollected},
			{parcel.Delivered, parcel.InTransit},
			{parcel.Delivered, parcel.RiderAssigned},
			{parcel.Delivered, parcel.NotCollected},
		}

		for _, tc := range cases {
			_, err := tc.from.Advance(tc.to)
			require.ErrorIs(t, err, errs.ErrConflict, "%s -> %s", tc.from, tc.to)
		}
	})

	t.Run("not_collected_cannot_advance_without_assignment", func(t *testing.T) {
		for _, target := range []parcel.DeliveryStatus{parcel.InTransit, parcel.Delivered} {
			_, err := parcel.NotCollected.Advance(target)
			require.ErrorIs(t, err, errs.ErrConflict)
		}
	})

	t.Run("delivered_is_final", func(t *testing.T) {
		_, err := parcel.Delivered.Advance(parcel.Delivered)
		require.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("invalid_target_is_rejected_as_input_error", func(t *testing.T) {
		_, err := parcel.RiderAssigned.Advance(parcel.DeliveryStatusUnknown)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestPaymentStatus(t *testing.T) {
	t.Run("string_labels", func(t *testing.T) {
		assert.Equal(t, "unpaid", parcel.Unpaid.String())
		assert.Equal(t, "paid", parcel.Paid.String())
		assert.Equal(t, "unknown", parcel.PaymentStatusUnknown.String())
	})

	t.Run("mark_paid_from_unpaid", func(t *testing.T) {
		next, err := parcel.Unpaid.MarkPaid()

		require.NoError(t, err)
		assert.Equal(t, parcel.Paid, next)
	})

	t.Run("mark_paid_twice_is_conflict", func(t *testing.T) {
		_, err := parcel.Paid.MarkPaid()

		require.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("from_string", func(t *testing.T) {
		status, err := parcel.PaymentStatusFromString("paid")
		require.NoError(t, err)
		assert.Equal(t, parcel.Paid, status)

		_, err = parcel.PaymentStatusFromString("maybe")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
