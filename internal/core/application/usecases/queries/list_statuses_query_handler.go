package queries

import (
	"context"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/status"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListStatusesQueryHandler struct {
	db *gorm.DB
}

func NewListStatusesQueryHandler(db *gorm.DB) ListStatusesQueryHandler {
	return ListStatusesQueryHandler{db: db}
}

func (h ListStatusesQueryHandler) Handle(ctx context.Context, query ListStatusesQuery) ([]ListStatusesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			position
		FROM statuses
		ORDER BY position, name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	statuses := make([]ListStatusesQueryResponse, 0)
	for rows.Next() {
		var resp ListStatusesQueryResponse
		var id uuid.UUID
		if err = rows.Scan(&id, &resp.Name, &resp.Position); err != nil {
			return nil, err
		}

		statusID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = statusID
		resp.Required = status.IsRequiredByWorkflow(status.Name(resp.Name))
		statuses = append(statuses, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return statuses, nil
}
