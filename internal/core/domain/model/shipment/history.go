package shipment

import (
	"time"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/status"
)

// HistoryEntry is one immutable row of a shipment's status ledger. The status
// name is captured at write time, so later renames do not rewrite history.
type HistoryEntry struct {
	id         kernel.UUID
	shipmentID kernel.UUID
	statusID   kernel.UUID
	statusName status.Name
	note       string
	createdAt  time.Time
}

// RestoreHistoryEntry rebuilds a ledger row read from persistence.
func RestoreHistoryEntry(id, shipmentID, statusID kernel.UUID, statusName status.Name, note string, createdAt time.Time) HistoryEntry {
	return HistoryEntry{
		id:         id,
		shipmentID: shipmentID,
		statusID:   statusID,
		statusName: statusName,
		note:       note,
		createdAt:  createdAt,
	}
}

func (h HistoryEntry) ID() kernel.UUID         { return h.id }
func (h HistoryEntry) ShipmentID() kernel.UUID { return h.shipmentID }
func (h HistoryEntry) StatusID() kernel.UUID   { return h.statusID }
func (h HistoryEntry) StatusName() status.Name { return h.statusName }
func (h HistoryEntry) Note() string            { return h.note }
func (h HistoryEntry) CreatedAt() time.Time    { return h.createdAt }
