// Package services provides domain services that orchestrate business
// operations across multiple aggregates in the parcel delivery system.
//
// The package includes:
//   - RiderDispatcher: a domain service for matching free riders to paid parcels
//   - EarningsCalculator: tiered earnings computation for rider cashouts
//
// Domain services coordinate between aggregates, implementing business logic
// that spans multiple bounded contexts following Domain-Driven Design
// principles.
package services
