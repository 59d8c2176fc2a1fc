package commands

import (
	"errors"
	"strings"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/user"
	"courierhub/internal/pkg/errs"
	"courierhub/internal/pkg/guard"
)

var ErrRegisterUserCommandIsNotConstructed = errors.New(
	"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
)

// RegisterUserCommand records the identity facts (id, name, role) supplied by
// the identity service so workflows can check roles and print names.
type RegisterUserCommand struct {
	userID kernel.UUID
	name   string
	role   user.Role

	guard guard.ConstructorGuard
}

func NewRegisterUserCommand(userID kernel.UUID, name string, role string) (RegisterUserCommand, error) {
	name = strings.TrimSpace(name)
	var nameErr error
	if name == "" {
		nameErr = errs.NewValueIsRequiredError("name")
	}
	r, roleErr := user.ParseRole(strings.TrimSpace(role))
	if err := errors.Join(userID.Validate(), nameErr, roleErr); err != nil {
		return RegisterUserCommand{}, err
	}
	return RegisterUserCommand{userID: userID, name: name, role: r, guard: guard.NewConstructorGuard()}, nil
}

func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

func (c RegisterUserCommand) UserID() kernel.UUID { return c.userID }
func (c RegisterUserCommand) Name() string        { return c.name }
func (c RegisterUserCommand) Role() user.Role     { return c.role }
