// Package rider provides the aggregate root for delivery riders.
//
// The package includes:
//   - Rider: the aggregate owning the application review state and the
//     availability flag used by the assignment engine
//   - Status: pending -> approved/rejected, approved -> deactivated
//   - WorkStatus: idle ("") <-> in-delivery, toggled by Claim and Release
//
// The conditional Claim transition is the core concurrency guard: an
// assignment only succeeds against a rider that is approved and still idle,
// so a losing concurrent request observes a conflict instead of silently
// double-booking the rider.
package rider
