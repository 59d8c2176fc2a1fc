package shipment

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"courierhub/internal/core/domain/model/event"
	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/pricing"
	"courierhub/internal/core/domain/model/status"
	"courierhub/internal/pkg/errs"
)

var ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment constructor")

const createdNote = "Shipment created"

// IsEligibleForReturn reports whether a shipment in the given status may be
// returned to origin.
func IsEligibleForReturn(name status.Name) bool {
	return !name.IsTerminal()
}

// Shipment is the aggregate root of the lifecycle. Status changes append to a
// pending history that the repository writes in the same transaction as the
// row itself.
type Shipment struct {
	event.Recorder

	id             kernel.UUID
	trackingNumber string
	merchantID     kernel.UUID
	zoneID         kernel.UUID
	recipientID    kernel.UUID
	status         status.Status

	manifestID *kernel.UUID
	courierID  *kernel.UUID

	// Settlement markers, one per payout type.
	courierPayoutID  *kernel.UUID
	merchantPayoutID *kernel.UUID

	itemValue   kernel.Money
	codAmount   kernel.Money
	deliveryFee kernel.Money

	priority       pricing.Priority
	sourceType     SourceType
	feePaidBy      FeePayer
	cashReconciled bool

	createdAt   time.Time
	updatedAt   time.Time
	deliveredAt *time.Time

	version        int
	pendingHistory []HistoryEntry
	isConstructed  bool
}

// NewParams are the inputs of NewShipment. DeliveryFee is resolved by the
// caller once and never recomputed.
type NewParams struct {
	ID             kernel.UUID
	TrackingNumber string
	MerchantID     kernel.UUID
	ZoneID         kernel.UUID
	RecipientID    kernel.UUID
	ItemValue      kernel.Money
	CODAmount      kernel.Money
	DeliveryFee    kernel.Money
	Priority       pricing.Priority
	SourceType     SourceType
	FeePaidBy      FeePayer
	Initial        status.Status
	Now            time.Time
}

// NewShipment creates a shipment in its initial status and records the first
// history row.
func NewShipment(p NewParams) (*Shipment, error) {
	if err := validateNew(p); err != nil {
		return nil, err
	}

	now := p.Now.UTC()
	s := &Shipment{
		id:             p.ID,
		trackingNumber: p.TrackingNumber,
		merchantID:     p.MerchantID,
		zoneID:         p.ZoneID,
		recipientID:    p.RecipientID,
		status:         p.Initial,
		itemValue:      p.ItemValue,
		codAmount:      p.CODAmount,
		deliveryFee:    p.DeliveryFee,
		priority:       p.Priority,
		sourceType:     p.SourceType,
		feePaidBy:      p.FeePaidBy,
		createdAt:      now,
		updatedAt:      now,
		isConstructed:  true,
	}
	s.appendHistory(createdNote, now)
	s.recordStatusChanged("", createdNote, now)
	return s, nil
}

func validateNew(p NewParams) error {
	var trackingErr error
	if strings.TrimSpace(p.TrackingNumber) == "" {
		trackingErr = errs.NewValueIsRequiredError("tracking number")
	}
	return errors.Join(
		p.ID.Validate(),
		trackingErr,
		p.MerchantID.Validate(),
		p.ZoneID.Validate(),
		p.RecipientID.Validate(),
		nonNegative("item value", p.ItemValue),
		nonNegative("cod amount", p.CODAmount),
		nonNegative("delivery fee", p.DeliveryFee),
		p.SourceType.Validate(),
		p.FeePaidBy.Validate(),
		p.Initial.Validate(),
	)
}

func nonNegative(param string, m kernel.Money) error {
	if m.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(param, fmt.Errorf("%s is negative", m))
	}
	return nil
}

// NewReturnShipment creates the return-to-origin mirror of original. Money
// fields are copied as-is; the mirror is always merchant-sourced and
// merchant-paid and starts unreconciled.
func NewReturnShipment(
	original *Shipment,
	id kernel.UUID,
	trackingNumber string,
	initial status.Status,
	reason string,
	now time.Time,
) (*Shipment, error) {
	if err := original.Validate(); err != nil {
		return nil, err
	}
	if trackingNumber == original.trackingNumber {
		return nil, errs.NewConflictError("tracking number", fmt.Errorf("%s is already used by the original", trackingNumber))
	}

	s, err := NewShipment(NewParams{
		ID:             id,
		TrackingNumber: trackingNumber,
		MerchantID:     original.merchantID,
		ZoneID:         original.zoneID,
		RecipientID:    original.recipientID,
		ItemValue:      original.itemValue,
		CODAmount:      original.codAmount,
		DeliveryFee:    original.deliveryFee,
		Priority:       original.priority,
		SourceType:     SourceMerchant,
		FeePaidBy:      PaidByMerchant,
		Initial:        initial,
		Now:            now,
	})
	if err != nil {
		return nil, err
	}

	s.Record(ReturnCreated{
		Base:                 event.NewBase(s.id, s.createdAt),
		OriginalID:           original.id,
		ReturnTrackingNumber: s.trackingNumber,
		MerchantID:           s.merchantID,
		Reason:               reason,
	})
	return s, nil
}

// RestoreParams carry a persisted shipment.
type RestoreParams struct {
	NewParams
	ManifestID       *kernel.UUID
	CourierID        *kernel.UUID
	CourierPayoutID  *kernel.UUID
	MerchantPayoutID *kernel.UUID
	CashReconciled   bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeliveredAt      *time.Time
	Version          int
}

// RestoreShipment rebuilds a shipment from persistence without recording history.
func RestoreShipment(p RestoreParams) (*Shipment, error) {
	if err := validateNew(p.NewParams); err != nil {
		return nil, err
	}
	return &Shipment{
		id:               p.ID,
		trackingNumber:   p.TrackingNumber,
		merchantID:       p.MerchantID,
		zoneID:           p.ZoneID,
		recipientID:      p.RecipientID,
		status:           p.Initial,
		manifestID:       p.ManifestID,
		courierID:        p.CourierID,
		courierPayoutID:  p.CourierPayoutID,
		merchantPayoutID: p.MerchantPayoutID,
		itemValue:        p.ItemValue,
		codAmount:        p.CODAmount,
		deliveryFee:      p.DeliveryFee,
		priority:         p.Priority,
		sourceType:       p.SourceType,
		feePaidBy:        p.FeePaidBy,
		cashReconciled:   p.CashReconciled,
		createdAt:        p.CreatedAt,
		updatedAt:        p.UpdatedAt,
		deliveredAt:      p.DeliveredAt,
		version:          p.Version,
		isConstructed:    true,
	}, nil
}

func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

func (s *Shipment) ID() kernel.UUID                { return s.id }
func (s *Shipment) TrackingNumber() string         { return s.trackingNumber }
func (s *Shipment) MerchantID() kernel.UUID        { return s.merchantID }
func (s *Shipment) ZoneID() kernel.UUID            { return s.zoneID }
func (s *Shipment) RecipientID() kernel.UUID       { return s.recipientID }
func (s *Shipment) Status() status.Status          { return s.status }
func (s *Shipment) ManifestID() *kernel.UUID       { return s.manifestID }
func (s *Shipment) CourierID() *kernel.UUID        { return s.courierID }
func (s *Shipment) CourierPayoutID() *kernel.UUID  { return s.courierPayoutID }
func (s *Shipment) MerchantPayoutID() *kernel.UUID { return s.merchantPayoutID }
func (s *Shipment) ItemValue() kernel.Money        { return s.itemValue }
func (s *Shipment) CODAmount() kernel.Money        { return s.codAmount }
func (s *Shipment) DeliveryFee() kernel.Money      { return s.deliveryFee }
func (s *Shipment) Priority() pricing.Priority     { return s.priority }
func (s *Shipment) SourceType() SourceType         { return s.sourceType }
func (s *Shipment) FeePaidBy() FeePayer            { return s.feePaidBy }
func (s *Shipment) IsCashReconciled() bool         { return s.cashReconciled }
func (s *Shipment) CreatedAt() time.Time           { return s.createdAt }
func (s *Shipment) UpdatedAt() time.Time           { return s.updatedAt }
func (s *Shipment) DeliveredAt() *time.Time        { return s.deliveredAt }
func (s *Shipment) Version() int                   { return s.version }

func (s *Shipment) IsEligibleForReturn() bool {
	return IsEligibleForReturn(s.status.Name())
}

// IsHeldBy reports whether courierID is the courier the shipment was last dispatched to.
func (s *Shipment) IsHeldBy(courierID kernel.UUID) bool {
	return s.courierID != nil && s.courierID.IsEqual(courierID)
}

// ChangeStatus moves the shipment to target and appends one history row.
// Leaving a terminal status is a conflict.
func (s *Shipment) ChangeStatus(target status.Status, note string, now time.Time) error {
	if err := target.Validate(); err != nil {
		return err
	}
	if s.status.IsTerminal() {
		return errs.NewConflictError("status", fmt.Errorf(
			"shipment %s is %s and cannot move to %s", s.trackingNumber, s.status.Name(), target.Name()))
	}

	note = strings.TrimSpace(note)
	if note == "" {
		note = "Status changed to " + target.Name().String()
	}

	at := s.clamp(now)
	from := s.status.Name()
	s.status = target
	s.updatedAt = at
	if target.Is(status.Delivered) {
		s.deliveredAt = &at
	}
	s.appendHistory(note, at)
	s.recordStatusChanged(from, note, at)
	return nil
}

// AppendNote adds a history row without changing status. Allowed in any
// status, so cash can be reconciled after delivery.
func (s *Shipment) AppendNote(note string, now time.Time) error {
	note = strings.TrimSpace(note)
	if note == "" {
		return errs.NewValueIsRequiredError("note")
	}
	at := s.clamp(now)
	s.updatedAt = at
	s.appendHistory(note, at)
	return nil
}

// AssignToManifest attaches the shipment to a courier's manifest and moves it
// to assigned. Only shipments held at the hub can be dispatched.
func (s *Shipment) AssignToManifest(manifestID, courierID kernel.UUID, assigned status.Status, note string, now time.Time) error {
	if err := errors.Join(manifestID.Validate(), courierID.Validate()); err != nil {
		return err
	}
	if !s.status.Is(status.ReceivedAtHub) && !s.status.Is(status.ReturnedToHub) {
		return errs.NewConflictError("status", fmt.Errorf(
			"shipment %s is %s, expected %s or %s", s.trackingNumber, s.status.Name(), status.ReceivedAtHub, status.ReturnedToHub))
	}
	if err := s.ChangeStatus(assigned, note, now); err != nil {
		return err
	}
	s.manifestID = manifestID.Ptr()
	s.courierID = courierID.Ptr()
	return nil
}

// AttachCourierPayout marks the shipment as settled with its courier.
func (s *Shipment) AttachCourierPayout(payoutID kernel.UUID) error {
	if s.courierPayoutID != nil {
		return errs.NewConflictError("courier payout", fmt.Errorf("shipment %s is already in payout %s", s.trackingNumber, s.courierPayoutID))
	}
	if err := payoutID.Validate(); err != nil {
		return err
	}
	s.courierPayoutID = payoutID.Ptr()
	return nil
}

// AttachMerchantPayout marks the shipment as settled with its merchant.
func (s *Shipment) AttachMerchantPayout(payoutID kernel.UUID) error {
	if s.merchantPayoutID != nil {
		return errs.NewConflictError("merchant payout", fmt.Errorf("shipment %s is already in payout %s", s.trackingNumber, s.merchantPayoutID))
	}
	if err := payoutID.Validate(); err != nil {
		return err
	}
	s.merchantPayoutID = payoutID.Ptr()
	return nil
}

// MarkCashReconciled flags the COD cash as handed over by the courier.
func (s *Shipment) MarkCashReconciled() {
	s.cashReconciled = true
}

// PendingHistory returns the rows appended since the last persist.
func (s *Shipment) PendingHistory() []HistoryEntry {
	out := make([]HistoryEntry, len(s.pendingHistory))
	copy(out, s.pendingHistory)
	return out
}

// PullHistory returns the pending rows and clears them. Repositories call it
// when writing the shipment.
func (s *Shipment) PullHistory() []HistoryEntry {
	out := s.pendingHistory
	s.pendingHistory = nil
	return out
}

// VersionPersisted is called by the repository after a successful write.
func (s *Shipment) VersionPersisted(version int) {
	s.version = version
}

func (s *Shipment) appendHistory(note string, at time.Time) {
	s.pendingHistory = append(s.pendingHistory, HistoryEntry{
		id:         kernel.NewUUID(),
		shipmentID: s.id,
		statusID:   s.status.ID(),
		statusName: s.status.Name(),
		note:       note,
		createdAt:  at,
	})
}

func (s *Shipment) recordStatusChanged(from status.Name, note string, at time.Time) {
	s.Record(StatusChanged{
		Base:           event.NewBase(s.id, at),
		TrackingNumber: s.trackingNumber,
		MerchantID:     s.merchantID,
		From:           from,
		To:             s.status.Name(),
		Note:           note,
	})
}

// clamp keeps history timestamps non-decreasing when clocks disagree.
func (s *Shipment) clamp(now time.Time) time.Time {
	now = now.UTC()
	if now.Before(s.updatedAt) {
		return s.updatedAt
	}
	return now
}
