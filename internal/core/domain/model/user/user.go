package user

import (
	"errors"
	"fmt"
	"strings"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/pkg/errs"
)

var ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

// User is the identity fact the core consumes from the identity collaborator:
// who an actor is and which role they hold.
type User struct {
	id            kernel.UUID
	name          string
	role          Role
	isConstructed bool
}

func NewUser(id kernel.UUID, name string, role Role) (*User, error) {
	name = strings.TrimSpace(name)
	var nameErr error
	if name == "" {
		nameErr = errs.NewValueIsRequiredError("user name")
	}
	if err := errors.Join(id.Validate(), nameErr, role.Validate()); err != nil {
		return nil, err
	}
	return &User{id: id, name: name, role: role, isConstructed: true}, nil
}

// RestoreUser rebuilds a user read from persistence.
func RestoreUser(id kernel.UUID, name string, role Role) (*User, error) {
	return NewUser(id, name, role)
}

func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

func (u *User) ID() kernel.UUID {
	return u.id
}

func (u *User) Name() string {
	return u.name
}

func (u *User) Role() Role {
	return u.role
}

// RequireRole returns an AuthorizationError when the user does not hold role.
func (u *User) RequireRole(role Role) error {
	if u.role != role {
		return errs.NewAuthorizationError("role", fmt.Errorf("user %s is %s, not %s", u.id, u.role, role))
	}
	return nil
}
