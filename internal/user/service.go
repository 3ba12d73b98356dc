package user

import (
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// ServiceInterface lets other packages depend on the user service without
// importing its concrete type (handlers in payment and tests use fakes).
type ServiceInterface interface {
	GetByID(id int) (User, error)
	Register(user User) (User, error)
	Authenticate(email, password string) (User, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

var _ ServiceInterface = (*Service)(nil)

func (s *Service) GetByID(id int) (User, error) {
	return s.repo.GetByID(id)
}

// Register creates a customer account. The role is always forced to
// customer here; admins are only ever provisioned by the bootstrap CLI.
func (s *Service) Register(u User) (User, error) {
	if _, err := s.repo.GetByEmail(u.Email); err == nil {
		return User{}, ErrEmailExists
	} else if err != ErrNotFound {
		return User{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, err
	}
	u.Password = string(hashed)
	u.Role = RoleCustomer

	now := time.Now().UTC().Format(time.RFC3339)
	u.CreatedAt = now
	u.UpdatedAt = now
	return s.repo.Create(u)
}

func (s *Service) Authenticate(email, password string) (User, error) {
	u, err := s.repo.GetByEmail(strings.TrimSpace(email))
	if err != nil {
		if err == ErrNotFound {
			return User{}, ErrInvalidCredentials
		}
		return User{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
		return User{}, ErrInvalidCredentials
	}
	return u, nil
}

// CreateAdmin provisions an admin account unless one already exists. It
// returns the existing admins (and created=false) when the deployment is
// already bootstrapped.
func (s *Service) CreateAdmin(email, password string) (admin User, existing []User, created bool, err error) {
	existing, err = s.repo.ListByRole(RoleAdmin)
	if err != nil {
		return User{}, nil, false, err
	}
	if len(existing) > 0 {
		return User{}, existing, false, nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, nil, false, err
	}
	now := time.Now().UTC().Format(time.RFC3339)
	admin, err = s.repo.Create(User{
		Email:     email,
		Password:  string(hashed),
		Role:      RoleAdmin,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return User{}, nil, false, err
	}
	return admin, nil, true, nil
}
