// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"parcelshift/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
// Each handler depends only on the narrowest combination it needs.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ParcelRepoFactory provides access to the parcel repository within a transaction.
	ParcelRepoFactory interface {
		ParcelRepository() ports.ParcelRepository
	}

	// RiderRepoFactory provides access to the rider repository within a transaction.
	RiderRepoFactory interface {
		RiderRepository() ports.RiderRepository
	}

	// CashoutRepoFactory provides access to the cashout repository within a transaction.
	CashoutRepoFactory interface {
		CashoutRepository() ports.CashoutRepository
	}

	// TrackingRepoFactory provides access to the tracking repository within a transaction.
	TrackingRepoFactory interface {
		TrackingRepository() ports.TrackingRepository
	}

	// AccountRepoFactory provides access to the account repository within a transaction.
	AccountRepoFactory interface {
		AccountRepository() ports.AccountRepository
	}

	// PaymentRepoFactory provides access to the payment repository within a transaction.
	PaymentRepoFactory interface {
		PaymentRepository() ports.PaymentRepository
	}

	// ParcelUoW manages transactions for parcel writes that also touch the
	// tracking log (creation, manual tracking appends).
	ParcelUoW interface {
		TxManager
		ParcelRepoFactory
		TrackingRepoFactory
	}

	// ParcelUoWFactory creates new parcel unit of work instances.
	ParcelUoWFactory interface {
		Create() ParcelUoW
	}

	// PaymentUoW manages the payment recording transaction: parcel status
	// flip, payment history insert, and tracking append.
	PaymentUoW interface {
		TxManager
		ParcelRepoFactory
		PaymentRepoFactory
		TrackingRepoFactory
	}

	// PaymentUoWFactory creates new payment unit of work instances.
	PaymentUoWFactory interface {
		Create() PaymentUoW
	}

	// AssignmentUoW manages transactions that coordinate parcel and rider
	// state together: assignment and delivery advancement.
	AssignmentUoW interface {
		TxManager
		ParcelRepoFactory
		RiderRepoFactory
		TrackingRepoFactory
	}

	// AssignmentUoWFactory creates new assignment unit of work instances.
	AssignmentUoWFactory interface {
		Create() AssignmentUoW
	}

	// CashoutUoW manages the cashout request transaction: record insert plus
	// parcel batch flagging.
	CashoutUoW interface {
		TxManager
		ParcelRepoFactory
		CashoutRepoFactory
	}

	// CashoutUoWFactory creates new cashout unit of work instances.
	CashoutUoWFactory interface {
		Create() CashoutUoW
	}

	// CashoutApprovalUoW manages cashout-record-only operations.
	CashoutApprovalUoW interface {
		TxManager
		CashoutRepoFactory
	}

	// CashoutApprovalUoWFactory creates new cashout approval unit of work instances.
	CashoutApprovalUoWFactory interface {
		Create() CashoutApprovalUoW
	}

	// RiderUoW manages rider-only operations.
	RiderUoW interface {
		TxManager
		RiderRepoFactory
	}

	// RiderUoWFactory creates new rider unit of work instances.
	RiderUoWFactory interface {
		Create() RiderUoW
	}

	// RiderReviewUoW manages the rider review transaction: rider status
	// change plus account role promotion on approval.
	RiderReviewUoW interface {
		TxManager
		RiderRepoFactory
		AccountRepoFactory
	}

	// RiderReviewUoWFactory creates new rider review unit of work instances.
	RiderReviewUoWFactory interface {
		Create() RiderReviewUoW
	}

	// AccountUoW manages account-only operations.
	AccountUoW interface {
		TxManager
		AccountRepoFactory
	}

	// AccountUoWFactory creates new account unit of work instances.
	AccountUoWFactory interface {
		Create() AccountUoW
	}
)
