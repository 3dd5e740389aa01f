// Package cashout provides the aggregate root for rider-earnings
// settlements.
//
// A Record snapshots the delivered parcels and the computed total at request
// time. Administrators approve pending records; approval is idempotent and
// never recomputes the amount. Records are never deleted.
package cashout
