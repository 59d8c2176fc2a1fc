// Package shipment implements the Shipment aggregate and its status ledger.
//
// Every status change goes through Shipment.ChangeStatus, which appends exactly
// one HistoryEntry and records a StatusChanged event. DELIVERED, CANCELLED and
// RETURNED_TO_ORIGIN are terminal: a shipment in one of them rejects further
// status changes with a conflict, although notes can still be appended.
//
// A return to origin never mutates the original beyond its status. The mirror
// shipment is created by NewReturnShipment and the two are connected only by
// a ReturnLink.
package shipment
