package commands

import (
	"context"

	"courierhub/internal/core/domain/model/shipment"
	"courierhub/internal/core/domain/services"
)

// ReportFailedAttemptCommandHandler turns a courier's free text reason into a
// status change. The classifier picks the target status and the reason is
// kept as the history note.
type ReportFailedAttemptCommandHandler struct {
	uowFactory ShipmentUoWFactory
	classifier services.FailureClassifier
}

// NewReportFailedAttemptCommandHandler uses the keyword classifier when
// classifier is nil.
func NewReportFailedAttemptCommandHandler(
	uowFactory ShipmentUoWFactory,
	classifier services.FailureClassifier,
) ReportFailedAttemptCommandHandler {
	if classifier == nil {
		classifier = services.NewKeywordClassifier()
	}
	return ReportFailedAttemptCommandHandler{uowFactory: uowFactory, classifier: classifier}
}

// Handle classifies the reason and applies the resulting transition with the
// same rules as a manual status change.
func (h ReportFailedAttemptCommandHandler) Handle(ctx context.Context, cmd ReportFailedAttemptCommand) (*shipment.Shipment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	target := h.classifier.Classify(cmd.Reason())
	return changeShipmentStatus(ctx, h.uowFactory, cmd.ShipmentID(), target, "Reason: "+cmd.Reason())
}
