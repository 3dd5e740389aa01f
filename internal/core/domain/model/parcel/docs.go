// Package parcel provides the aggregate root for shipments moving through
// the delivery network.
//
// The package includes:
//   - Parcel: the aggregate owning payment state, delivery state, the rider
//     assignment snapshot, and the cashed-out flag
//   - DeliveryStatus: forward-only state machine
//     not-collected -> rider-assigned -> in-transit -> delivered
//   - PaymentStatus: unpaid -> paid, one-way
//   - AssignedRider: the denormalized rider snapshot stamped at assignment
//
// Key business rules:
//   - Only paid, not-collected parcels accept a rider assignment
//   - Delivery status never moves backward; in-transit may be skipped on a
//     direct hand-off
//   - Only delivered parcels can be flagged cashed-out, exactly once
//   - Sender/receiver service-center equality selects the intra-district
//     earnings rate
package parcel
