package parcel_test

import (
	"testing"
	"time"

	"parcelshift/internal/core/domain/model/kernel"
	"parcelshift/internal/core/domain/model/parcel"
	"parcelshift/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestParcel(t *testing.T) *parcel.Parcel {
	t.Helper()
	p, err := parcel.NewParcel(kernel.NewUUID(), "sender@example.com", "books", "Dhaka", "Chattogram", 150)
	require.NoError(t, err)
	return p
}

func newTestAssignedRider(t *testing.T) parcel.AssignedRider {
	t.Helper()
	r, err := parcel.NewAssignedRider(kernel.NewUUID(), "Rahim Uddin", "rahim@example.com")
	require.NoError(t, err)
	return r
}

func TestNewParcel(t *testing.T) {
	t.Run("creates_parcel_in_initial_state", func(t *testing.T) {
		p := newTestParcel(t)

		assert.Equal(t, parcel.Unpaid, p.PaymentStatus())
		assert.Equal(t, parcel.NotCollected, p.DeliveryStatus())
		assert.Nil(t, p.AssignedRider())
		assert.False(t, p.CashedOut())
		assert.WithinDuration(t, time.Now().UTC(), p.CreatedAt(), time.Minute)
	})

	t.Run("requires_valid_id", func(t *testing.T) {
		_, err := parcel.NewParcel(kernel.UUID{}, "sender@example.com", "books", "Dhaka", "Dhaka", 100)
		require.Error(t, err)
	})

	t.Run("requires_owner_email", func(t *testing.T) {
		_, err := parcel.NewParcel(kernel.NewUUID(), "", "books", "Dhaka", "Dhaka", 100)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("requires_both_service_centers", func(t *testing.T) {
		_, err := parcel.NewParcel(kernel.NewUUID(), "sender@example.com", "books", "", "Dhaka", 100)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = parcel.NewParcel(kernel.NewUUID(), "sender@example.com", "books", "Dhaka", "", 100)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("requires_positive_cost", func(t *testing.T) {
		for _, cost := range []float64{0, -10} {
			_, err := parcel.NewParcel(kernel.NewUUID(), "sender@example.com", "books", "Dhaka", "Dhaka", cost)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestParcel_Validate(t *testing.T) {
	t.Run("constructed_parcel_is_valid", func(t *testing.T) {
		require.NoError(t, newTestParcel(t).Validate())
	})

	t.Run("zero_value_parcel_is_invalid", func(t *testing.T) {
		var p parcel.Parcel
		require.ErrorIs(t, p.Validate(), parcel.ErrParcelIsNotConstructed)
	})

	t.Run("nil_parcel_is_invalid", func(t *testing.T) {
		var p *parcel.Parcel
		require.ErrorIs(t, p.Validate(), parcel.ErrParcelIsNotConstructed)
	})
}

func TestParcel_IntraDistrict(t *testing.T) {
	intra, err := parcel.NewParcel(kernel.NewUUID(), "s@example.com", "books", "Dhaka", "Dhaka", 100)
	require.NoError(t, err)
	assert.True(t, intra.IntraDistrict())

	inter, err := parcel.NewParcel(kernel.NewUUID(), "s@example.com", "books", "Dhaka", "Sylhet", 100)
	require.NoError(t, err)
	assert.False(t, inter.IntraDistrict())
}

func TestParcel_MarkPaid(t *testing.T) {
	t.Run("marks_unpaid_parcel_paid", func(t *testing.T) {
		p := newTestParcel(t)

		require.NoError(t, p.MarkPaid())
		assert.Equal(t, parcel.Paid, p.PaymentStatus())
	})

	t.Run("paying_twice_is_conflict", func(t *testing.T) {
		p := newTestParcel(t)
		require.NoError(t, p.MarkPaid())

		require.ErrorIs(t, p.MarkPaid(), errs.ErrConflict)
	})
}

func TestParcel_AssignRider(t *testing.T) {
	t.Run("assigns_rider_to_paid_parcel", func(t *testing.T) {
		p := newTestParcel(t)
		require.NoError(t, p.MarkPaid())
		rider := newTestAssignedRider(t)

		require.NoError(t, p.AssignRider(rider))

		assert.Equal(t, parcel.RiderAssigned, p.DeliveryStatus())
		require.NotNil(t, p.AssignedRider())
		assert.Equal(t, rider.Email(), p.AssignedRider().Email())
		assert.Equal(t, rider.Name(), p.AssignedRider().Name())
	})

	t.Run("rejects_unpaid_parcel", func(t *testing.T) {
		p := newTestParcel(t)

		err := p.AssignRider(newTestAssignedRider(t))

		require.ErrorIs(t, err, errs.ErrConflict)
		assert.Equal(t, parcel.NotCollected, p.DeliveryStatus())
		assert.Nil(t, p.AssignedRider())
	})

	t.Run("rejects_second_assignment", func(t *testing.T) {
		p := newTestParcel(t)
		require.NoError(t, p.MarkPaid())
		require.NoError(t, p.AssignRider(newTestAssignedRider(t)))

		err := p.AssignRider(newTestAssignedRider(t))

		require.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("rejects_unconstructed_snapshot", func(t *testing.T) {
		p := newTestParcel(t)
		require.NoError(t, p.MarkPaid())

		err := p.AssignRider(parcel.AssignedRider{})

		require.ErrorIs(t, err, parcel.ErrAssignedRiderIsNotConstructed)
	})
}

func TestParcel_Advance(t *testing.T) {
	assigned := func(t *testing.T) *parcel.Parcel {
		p := newTestParcel(t)
		require.NoError(t, p.MarkPaid())
		require.NoError(t, p.AssignRider(newTestAssignedRider(t)))
		return p
	}

	t.Run("full_path_to_delivered", func(t *testing.T) {
		p := assigned(t)

		require.NoError(t, p.Advance(parcel.InTransit))
		require.NoError(t, p.Advance(parcel.Delivered))
		assert.Equal(t, parcel.Delivered, p.DeliveryStatus())
	})

	t.Run("direct_delivery_without_transit", func(t *testing.T) {
		p := assigned(t)

		require.NoError(t, p.Advance(parcel.Delivered))
		assert.Equal(t, parcel.Delivered, p.DeliveryStatus())
	})

	t.Run("backward_move_is_rejected", func(t *testing.T) {
		p := assigned(t)
		require.NoError(t, p.Advance(parcel.InTransit))

		require.ErrorIs(t, p.Advance(parcel.RiderAssigned), errs.ErrConflict)
		assert.Equal(t, parcel.InTransit, p.DeliveryStatus())
	})
}

func TestParcel_MarkCashedOut(t *testing.T) {
	delivered := func(t *testing.T) *parcel.Parcel {
		p := newTestParcel(t)
		require.NoError(t, p.MarkPaid())
		require.NoError(t, p.AssignRider(newTestAssignedRider(t)))
		require.NoError(t, p.Advance(parcel.Delivered))
		return p
	}

	t.Run("flags_delivered_parcel", func(t *testing.T) {
		p := delivered(t)

		require.NoError(t, p.MarkCashedOut())
		assert.True(t, p.CashedOut())
	})

	t.Run("rejects_undelivered_parcel", func(t *testing.T) {
		p := newTestParcel(t)

		require.ErrorIs(t, p.MarkCashedOut(), errs.ErrConflict)
		assert.False(t, p.CashedOut())
	})

	t.Run("flagging_twice_is_conflict", func(t *testing.T) {
		p := delivered(t)
		require.NoError(t, p.MarkCashedOut())

		require.ErrorIs(t, p.MarkCashedOut(), errs.ErrConflict)
	})
}

func TestRestoreParcel(t *testing.T) {
	t.Run("restores_assigned_parcel", func(t *testing.T) {
		id := kernel.NewUUID()
		rider := newTestAssignedRider(t)
		createdAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

		p, err := parcel.RestoreParcel(
			id, "sender@example.com", "books", "Dhaka", "Sylhet", 220,
			parcel.Paid, parcel.InTransit, &rider, false, createdAt,
		)

		require.NoError(t, err)
		assert.True(t, p.ID().IsEqual(id))
		assert.Equal(t, parcel.InTransit, p.DeliveryStatus())
		assert.Equal(t, createdAt, p.CreatedAt())
		require.NotNil(t, p.AssignedRider())
	})

	t.Run("rejects_assignment_on_not_collected", func(t *testing.T) {
		rider := newTestAssignedRider(t)

		_, err := parcel.RestoreParcel(
			kernel.NewUUID(), "sender@example.com", "books", "Dhaka", "Sylhet", 220,
			parcel.Paid, parcel.NotCollected, &rider, false, time.Now(),
		)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_active_status_without_rider", func(t *testing.T) {
		_, err := parcel.RestoreParcel(
			kernel.NewUUID(), "sender@example.com", "books", "Dhaka", "Sylhet", 220,
			parcel.Paid, parcel.InTransit, nil, false, time.Now(),
		)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
