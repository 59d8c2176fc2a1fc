// Package payout models settlement batches owed to couriers and merchants.
//
// A payout is assembled in memory (NewPayout, AddItem), sealed, and then
// persisted together with its items. After that only its status moves:
//
//	PENDING -> PROCESSING | PAID | CANCELLED
//	PROCESSING -> PAID | FAILED
//	FAILED -> PROCESSING | CANCELLED
//
// PAID and CANCELLED are final. Reaching PAID stamps the paid time.
package payout
