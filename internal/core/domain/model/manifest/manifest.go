package manifest

import (
	"errors"
	"strings"
	"time"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/pkg/errs"
)

var ErrManifestIsNotConstructed = errors.New("Manifest must be created via NewManifest constructor")

// Manifest groups the shipments handed to one courier for one delivery round.
// Dispatch keeps adding to a courier's CREATED manifest until it is started.
type Manifest struct {
	id            kernel.UUID
	number        string
	courierID     kernel.UUID
	status        Status
	createdAt     time.Time
	updatedAt     time.Time
	isConstructed bool
}

func NewManifest(id kernel.UUID, number string, courierID kernel.UUID, now time.Time) (*Manifest, error) {
	return RestoreManifest(id, number, courierID, Created, now, now)
}

// RestoreManifest rebuilds a manifest read from persistence.
func RestoreManifest(id kernel.UUID, number string, courierID kernel.UUID, status Status, createdAt, updatedAt time.Time) (*Manifest, error) {
	var numberErr error
	if strings.TrimSpace(number) == "" {
		numberErr = errs.NewValueIsRequiredError("manifest number")
	}
	if err := errors.Join(id.Validate(), numberErr, courierID.Validate(), status.Validate()); err != nil {
		return nil, err
	}
	return &Manifest{
		id:            id,
		number:        number,
		courierID:     courierID,
		status:        status,
		createdAt:     createdAt.UTC(),
		updatedAt:     updatedAt.UTC(),
		isConstructed: true,
	}, nil
}

func (m *Manifest) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrManifestIsNotConstructed
	}
	return nil
}

func (m *Manifest) ID() kernel.UUID        { return m.id }
func (m *Manifest) Number() string         { return m.number }
func (m *Manifest) CourierID() kernel.UUID { return m.courierID }
func (m *Manifest) Status() Status         { return m.status }
func (m *Manifest) CreatedAt() time.Time   { return m.createdAt }
func (m *Manifest) UpdatedAt() time.Time   { return m.updatedAt }

// IsOpen reports whether dispatch may still add shipments.
func (m *Manifest) IsOpen() bool {
	return m.status == Created
}

func (m *Manifest) ChangeStatus(target Status, now time.Time) error {
	next, err := m.status.TransitionTo(target)
	if err != nil {
		return err
	}
	m.status = next
	m.updatedAt = now.UTC()
	return nil
}
