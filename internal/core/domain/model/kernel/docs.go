// Package kernel provides shared value objects for the domain model.
//
// It contains:
//   - UUID: constructor-guarded identifier value object used by every
//     aggregate in the system
//   - RoundHalfUp2: the single money-rounding rule applied to cashout totals
//
// Kernel types carry no business behavior of their own; they exist so the
// aggregates (parcel, rider, cashout, tracking, account, payment) agree on
// identity and money semantics.
package kernel
