package user

import "errors"

var (
	ErrNotFound           = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailExists        = errors.New("email already exists")
)

type Repository interface {
	GetByID(id int) (User, error)
	GetByEmail(email string) (User, error)
	Create(user User) (User, error)
	// ListByRole returns every user holding the given role. Used by the
	// admin bootstrap to detect an already-provisioned deployment.
	ListByRole(role string) ([]User, error)
}
