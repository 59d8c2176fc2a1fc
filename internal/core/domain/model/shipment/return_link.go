package shipment

import (
	"errors"
	"strings"
	"time"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/pkg/errs"
)

var ErrReturnLinkIsNotConstructed = errors.New("ReturnLink must be created via NewReturnLink constructor")

// ReturnLink is the only edge between an original shipment and its return.
type ReturnLink struct {
	id            kernel.UUID
	originalID    kernel.UUID
	returnID      kernel.UUID
	reason        string
	createdAt     time.Time
	isConstructed bool
}

func NewReturnLink(id, originalID, returnID kernel.UUID, reason string, createdAt time.Time) (*ReturnLink, error) {
	reason = strings.TrimSpace(reason)
	var reasonErr, sameErr error
	if reason == "" {
		reasonErr = errs.NewValueIsRequiredError("return reason")
	}
	if originalID.IsEqual(returnID) {
		sameErr = errs.NewValueIsInvalidError("return shipment must differ from the original")
	}
	if err := errors.Join(id.Validate(), originalID.Validate(), returnID.Validate(), reasonErr, sameErr); err != nil {
		return nil, err
	}
	return &ReturnLink{
		id:            id,
		originalID:    originalID,
		returnID:      returnID,
		reason:        reason,
		createdAt:     createdAt.UTC(),
		isConstructed: true,
	}, nil
}

// RestoreReturnLink rebuilds a link read from persistence.
func RestoreReturnLink(id, originalID, returnID kernel.UUID, reason string, createdAt time.Time) (*ReturnLink, error) {
	return NewReturnLink(id, originalID, returnID, reason, createdAt)
}

func (l *ReturnLink) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrReturnLinkIsNotConstructed
	}
	return nil
}

func (l *ReturnLink) ID() kernel.UUID         { return l.id }
func (l *ReturnLink) OriginalID() kernel.UUID { return l.originalID }
func (l *ReturnLink) ReturnID() kernel.UUID   { return l.returnID }
func (l *ReturnLink) Reason() string          { return l.reason }
func (l *ReturnLink) CreatedAt() time.Time    { return l.createdAt }
