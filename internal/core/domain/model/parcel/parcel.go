package parcel

import (
	"errors"
	"fmt"
	"time"

	"parcelshift/internal/core/domain/model/kernel"
	"parcelshift/internal/pkg/errs"
)

var (
	// ErrParcelIsNotConstructed is returned when a Parcel instance was not
	// created through NewParcel or RestoreParcel.
	ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel constructor")
)

// Parcel is the aggregate root for a shipment moving through the delivery
// network. It owns the payment and delivery state machines and the rider
// assignment snapshot.
//
// Invariants:
//   - Must have a valid id, an owner email, both service centers, and a
//     positive delivery cost
//   - A rider can only be assigned while the parcel is paid and not-collected
//   - Delivery status only ever advances forward
//   - Only delivered parcels can be flagged as cashed out, and only once
//   - Can only be created through NewParcel or RestoreParcel
type Parcel struct {
	// id is the unique identifier for the parcel
	id kernel.UUID

	// createdBy is the owner's email, set by the intake flow
	createdBy string

	// title is the sender-facing description of the shipment
	title string

	// senderServiceCenter and receiverServiceCenter are the district-level
	// facilities; their equality selects the intra-district earnings rate
	senderServiceCenter   string
	receiverServiceCenter string

	// deliveryCost is the fee the sender paid, the base of rider earnings
	deliveryCost float64

	paymentStatus  PaymentStatus
	deliveryStatus DeliveryStatus

	// assignedRider is nil until a rider is bound
	assignedRider *AssignedRider

	// cashedOut marks the parcel as settled into a cashout record
	cashedOut bool

	createdAt time.Time

	// isConstructed ensures the parcel was created via a constructor
	isConstructed bool
}

// NewParcel creates a parcel in its initial state: unpaid, not-collected,
// no rider, not cashed out.
func NewParcel(
	id kernel.UUID,
	createdBy string,
	title string,
	senderServiceCenter string,
	receiverServiceCenter string,
	deliveryCost float64,
) (*Parcel, error) {
	p := &Parcel{
		paymentStatus:  Unpaid,
		deliveryStatus: NotCollected,
		createdAt:      time.Now().UTC(),
		isConstructed:  true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setCreatedBy(createdBy),
		p.setTitle(title),
		p.setServiceCenters(senderServiceCenter, receiverServiceCenter),
		p.setDeliveryCost(deliveryCost),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreParcel reconstructs a parcel from persistence with its full state.
// Unlike NewParcel it accepts any legal status combination and the stored
// creation time.
func RestoreParcel(
	id kernel.UUID,
	createdBy string,
	title string,
	senderServiceCenter string,
	receiverServiceCenter string,
	deliveryCost float64,
	paymentStatus PaymentStatus,
	deliveryStatus DeliveryStatus,
	assignedRider *AssignedRider,
	cashedOut bool,
	createdAt time.Time,
) (*Parcel, error) {
	p := &Parcel{
		cashedOut:     cashedOut,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setCreatedBy(createdBy),
		p.setTitle(title),
		p.setServiceCenters(senderServiceCenter, receiverServiceCenter),
		p.setDeliveryCost(deliveryCost),
		p.setPaymentStatus(paymentStatus),
		p.setDeliveryStatus(deliveryStatus),
		p.setAssignedRider(assignedRider),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the parcel was created through a constructor.
func (p *Parcel) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrParcelIsNotConstructed
	}
	return nil
}

// IsEqual compares two parcels by id.
func (p *Parcel) IsEqual(other *Parcel) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the parcel's unique identifier.
func (p *Parcel) ID() kernel.UUID {
	return p.id
}

// CreatedBy returns the owner's email.
func (p *Parcel) CreatedBy() string {
	return p.createdBy
}

// Title returns the sender-facing description of the shipment.
func (p *Parcel) Title() string {
	return p.title
}

// SenderServiceCenter returns the dispatching facility's district label.
func (p *Parcel) SenderServiceCenter() string {
	return p.senderServiceCenter
}

// ReceiverServiceCenter returns the destination facility's district label.
func (p *Parcel) ReceiverServiceCenter() string {
	return p.receiverServiceCenter
}

// DeliveryCost returns the fee paid by the sender.
func (p *Parcel) DeliveryCost() float64 {
	return p.deliveryCost
}

// PaymentStatus returns the current payment state.
func (p *Parcel) PaymentStatus() PaymentStatus {
	return p.paymentStatus
}

// DeliveryStatus returns the current delivery state.
func (p *Parcel) DeliveryStatus() DeliveryStatus {
	return p.deliveryStatus
}

// AssignedRider returns the rider snapshot, or nil before assignment.
func (p *Parcel) AssignedRider() *AssignedRider {
	return p.assignedRider
}

// CashedOut reports whether the parcel has been settled into a cashout record.
func (p *Parcel) CashedOut() bool {
	return p.cashedOut
}

// CreatedAt returns the parcel's creation time.
func (p *Parcel) CreatedAt() time.Time {
	return p.createdAt
}

// IntraDistrict reports whether sender and receiver share a service center,
// which selects the lower earnings rate for the delivering rider.
func (p *Parcel) IntraDistrict() bool {
	return p.senderServiceCenter == p.receiverServiceCenter
}

// MarkPaid records the payment collaborator's confirmation.
// Fails with a conflict if the parcel is already paid.
func (p *Parcel) MarkPaid() error {
	newStatus, err := p.paymentStatus.MarkPaid()
	if err != nil {
		return err
	}
	p.paymentStatus = newStatus
	return nil
}

// ValidateAssign reports whether the parcel is currently assignable: paid and
// still waiting for collection. It does not mutate the parcel.
func (p *Parcel) ValidateAssign() error {
	if p.paymentStatus != Paid {
		return errs.NewConflictErrorWithCause(
			"parcel is not paid",
			fmt.Errorf("payment status is %s", p.paymentStatus),
		)
	}
	return p.deliveryStatus.ValidateAssign()
}

// AssignRider binds a rider to the parcel. The parcel must be paid and
// not-collected; the rider snapshot is stamped exactly once per assignment
// cycle and the delivery status moves to rider-assigned.
func (p *Parcel) AssignRider(rider AssignedRider) error {
	if err := rider.Validate(); err != nil {
		return err
	}
	if p.paymentStatus != Paid {
		return errs.NewConflictErrorWithCause(
			"parcel is not paid",
			fmt.Errorf("payment status is %s", p.paymentStatus),
		)
	}

	newStatus, err := p.deliveryStatus.Assign()
	if err != nil {
		return err
	}

	p.deliveryStatus = newStatus
	p.assignedRider = &rider
	return nil
}

// Advance moves the delivery status forward to the caller-supplied target.
// Transition legality is enforced by the status machine; releasing the rider
// after a delivery is the assignment use case's responsibility, not the
// parcel's.
func (p *Parcel) Advance(target DeliveryStatus) error {
	newStatus, err := p.deliveryStatus.Advance(target)
	if err != nil {
		return err
	}
	p.deliveryStatus = newStatus
	return nil
}

// MarkCashedOut flags the parcel as settled. Only delivered parcels can be
// flagged, and flagging twice is a conflict so a settlement batch can detect
// double counting.
func (p *Parcel) MarkCashedOut() error {
	if p.deliveryStatus != Delivered {
		return errs.NewConflictErrorWithCause(
			"parcel is not delivered",
			fmt.Errorf("delivery status is %s", p.deliveryStatus),
		)
	}
	if p.cashedOut {
		return errs.NewConflictError("parcel is already cashed out")
	}
	p.cashedOut = true
	return nil
}

func (p *Parcel) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Parcel) setCreatedBy(createdBy string) error {
	if createdBy == "" {
		return errs.NewValueIsRequiredError("created_by")
	}
	p.createdBy = createdBy
	return nil
}

func (p *Parcel) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	p.title = title
	return nil
}

func (p *Parcel) setServiceCenters(sender, receiver string) error {
	if sender == "" {
		return errs.NewValueIsRequiredError("senderServiceCenter")
	}
	if receiver == "" {
		return errs.NewValueIsRequiredError("receiverServiceCenter")
	}
	p.senderServiceCenter = sender
	p.receiverServiceCenter = receiver
	return nil
}

func (p *Parcel) setDeliveryCost(cost float64) error {
	if cost <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"deliveryCost",
			fmt.Errorf("%v is not greater than 0", cost),
		)
	}
	p.deliveryCost = cost
	return nil
}

func (p *Parcel) setPaymentStatus(status PaymentStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	p.paymentStatus = status
	return nil
}

func (p *Parcel) setDeliveryStatus(status DeliveryStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	p.deliveryStatus = status
	return nil
}

func (p *Parcel) setAssignedRider(rider *AssignedRider) error {
	if rider == nil {
		if p.deliveryStatus != NotCollected {
			return errs.NewValueIsInvalidErrorWithCause(
				"assigned_rider",
				fmt.Errorf("%s requires an assigned rider", p.deliveryStatus),
			)
		}
		return nil
	}

	if err := rider.Validate(); err != nil {
		return err
	}
	if p.deliveryStatus == NotCollected {
		return errs.NewValueIsInvalidErrorWithCause(
			"assigned_rider",
			errors.New("not-collected parcels cannot carry an assignment"),
		)
	}
	p.assignedRider = rider
	return nil
}
