package commands

import (
	"context"
	"fmt"

	"courierhub/internal/core/domain/model/status"
	"courierhub/internal/core/ports"
	"courierhub/internal/pkg/errs"
)

// maxNumberAttempts bounds the retries when a generated number is already taken.
const maxNumberAttempts = 5

// BatchResult reports a partially successful batch. Errors keep input order.
type BatchResult struct {
	Processed int
	Errors    []string
}

func (r *BatchResult) fail(item string, err error) {
	r.Errors = append(r.Errors, fmt.Sprintf("%s: %v", item, err))
}

func loadRegistry(ctx context.Context, repo ports.StatusRepository) (*status.Registry, error) {
	statuses, err := repo.All(ctx)
	if err != nil {
		return nil, err
	}
	return status.NewRegistry(statuses)
}

// uniqueNumber draws from next until exists reports a free number.
func uniqueNumber(
	ctx context.Context,
	param string,
	next func() string,
	exists func(context.Context, string) (bool, error),
) (string, error) {
	for range maxNumberAttempts {
		n := next()
		taken, err := exists(ctx, n)
		if err != nil {
			return "", err
		}
		if !taken {
			return n, nil
		}
	}
	return "", errs.NewConflictError(param, fmt.Errorf("no free number after %d attempts", maxNumberAttempts))
}
