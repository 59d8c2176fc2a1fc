package http

import (
	"net/http"

	"courierhub/internal/core/application/usecases/commands"
	"courierhub/internal/core/application/usecases/queries"
	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/status"

	"github.com/labstack/echo/v4"
)

type statusResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Position int    `json:"position"`
	Required bool   `json:"required"`
}

func toStatusResponse(s status.Status) statusResponse {
	return statusResponse{
		ID:       s.ID().String(),
		Name:     s.Name().String(),
		Position: s.Position(),
		Required: status.IsRequiredByWorkflow(s.Name()),
	}
}

type createStatusRequest struct {
	Name     string `json:"name"`
	Position int    `json:"position"`
}

type renameStatusRequest struct {
	Name string `json:"name"`
}

// ListStatuses handles GET /api/v1/statuses.
func (s *Server) ListStatuses(ctx echo.Context) error {
	rows, err := s.h.ListStatuses.Handle(ctx.Request().Context(), queries.NewListStatusesQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]statusResponse, len(rows))
	for i, row := range rows {
		response[i] = statusResponse{
			ID:       row.ID.String(),
			Name:     row.Name,
			Position: row.Position,
			Required: row.Required,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// SeedStatuses handles POST /api/v1/statuses/seed. It only inserts missing names.
func (s *Server) SeedStatuses(ctx echo.Context) error {
	inserted, err := s.h.SeedStatuses.Handle(ctx.Request().Context(), commands.NewSeedStatusesCommand())
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, map[string]int{"inserted": inserted})
}

// CreateStatus handles POST /api/v1/statuses.
func (s *Server) CreateStatus(ctx echo.Context) error {
	var req createStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateStatusCommand(req.Name, req.Position)
	if err != nil {
		return s.fail(ctx, err)
	}
	created, err := s.h.CreateStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, toStatusResponse(created))
}

// RenameStatus handles PATCH /api/v1/statuses/:id.
func (s *Server) RenameStatus(ctx echo.Context) error {
	id, err := pathUUID(ctx, "id")
	if err != nil {
		return s.fail(ctx, err)
	}
	var req renameStatusRequest
	if bindErr := ctx.Bind(&req); bindErr != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRenameStatusCommand(id, req.Name)
	if err != nil {
		return s.fail(ctx, err)
	}
	renamed, err := s.h.RenameStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toStatusResponse(renamed))
}

// DeleteStatus handles DELETE /api/v1/statuses/:id.
func (s *Server) DeleteStatus(ctx echo.Context) error {
	id, err := pathUUID(ctx, "id")
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewDeleteStatusCommand(id)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.h.DeleteStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

type registerUserRequest struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

// RegisterUser handles POST /api/v1/users. An id is generated when omitted.
func (s *Server) RegisterUser(ctx echo.Context) error {
	var req registerUserRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id := kernel.NewUUID()
	if req.ID != "" {
		parsed, err := parseUUID("id", req.ID)
		if err != nil {
			return s.fail(ctx, err)
		}
		id = parsed
	}

	cmd, err := commands.NewRegisterUserCommand(id, req.Name, req.Role)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.h.RegisterUser.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, map[string]string{"id": id.String()})
}
