package commands

import (
	"errors"

	"parcelshift/internal/core/domain/model/kernel"
	"parcelshift/internal/pkg/errs"
	"parcelshift/internal/pkg/guard"
)

var ErrCreateParcelCommandIsNotConstructed = errors.New(
	"CreateParcelCommand must be created via NewCreateParcelCommand constructor",
)

// CreateParcelCommand represents a request to register a new parcel for
// delivery. The parcel starts unpaid and not-collected.
type CreateParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID              kernel.UUID
	createdBy             string
	title                 string
	senderServiceCenter   string
	receiverServiceCenter string
	deliveryCost          float64

	guard guard.ConstructorGuard
}

// NewCreateParcelCommand creates a command to register a new parcel.
// Validates that both service centers are present and the cost is positive.
func NewCreateParcelCommand(
	parcelID kernel.UUID,
	createdBy string,
	title string,
	senderServiceCenter string,
	receiverServiceCenter string,
	deliveryCost float64,
) (CreateParcelCommand, error) {
	parcelCommand := CreateParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		parcelCommand.setParcelID(parcelID),
		parcelCommand.setCreatedBy(createdBy),
		parcelCommand.setTitle(title),
		parcelCommand.setServiceCenters(senderServiceCenter, receiverServiceCenter),
		parcelCommand.setDeliveryCost(deliveryCost),
	); err != nil {
		return CreateParcelCommand{}, err
	}

	return parcelCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateParcelCommand) Validate() error {
	return c.guard.Validate(ErrCreateParcelCommandIsNotConstructed)
}

// ParcelID returns the unique identifier for the new parcel.
func (c CreateParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// CreatedBy returns the owner's email.
func (c CreateParcelCommand) CreatedBy() string {
	return c.createdBy
}

// Title returns the sender-facing description of the shipment.
func (c CreateParcelCommand) Title() string {
	return c.title
}

// SenderServiceCenter returns the origin facility.
func (c CreateParcelCommand) SenderServiceCenter() string {
	return c.senderServiceCenter
}

// ReceiverServiceCenter returns the destination facility.
func (c CreateParcelCommand) ReceiverServiceCenter() string {
	return c.receiverServiceCenter
}

// DeliveryCost returns the delivery fee.
func (c CreateParcelCommand) DeliveryCost() float64 {
	return c.deliveryCost
}

func (c *CreateParcelCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}

func (c *CreateParcelCommand) setCreatedBy(createdBy string) error {
	if createdBy == "" {
		return errs.NewValueIsRequiredError("createdBy")
	}

	c.createdBy = createdBy
	return nil
}

func (c *CreateParcelCommand) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}

	c.title = title
	return nil
}

func (c *CreateParcelCommand) setServiceCenters(sender, receiver string) error {
	if sender == "" {
		return errs.NewValueIsRequiredError("senderServiceCenter")
	}
	if receiver == "" {
		return errs.NewValueIsRequiredError("receiverServiceCenter")
	}

	c.senderServiceCenter = sender
	c.receiverServiceCenter = receiver
	return nil
}

func (c *CreateParcelCommand) setDeliveryCost(cost float64) error {
	if cost <= 0 {
		return errs.NewValueIsInvalidError("deliveryCost")
	}

	c.deliveryCost = cost
	return nil
}
