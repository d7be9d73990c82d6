package staff

import (
	"context"
	"errors"
	"strings"
	"time"

	"pets-day-registration/internal/ports/auth"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidCredentials cubre email desconocido y password incorrecta,
	// sin distinguirlos hacia afuera.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInactiveAccount    = errors.New("account is inactive")
)

type Service struct {
	repo   Repository
	issuer auth.Issuer
	now    func() time.Time
}

func NewService(repo Repository, issuer auth.Issuer) *Service {
	return &Service{
		repo:   repo,
		issuer: issuer,
		now:    time.Now,
	}
}

type CreateInput struct {
	Name     string
	Email    string
	Password string
}

// Create da de alta un colaborador activo con la password hasheada.
func (s *Service) Create(ctx context.Context, in CreateInput) (Colaborador, error) {
	name := strings.TrimSpace(in.Name)
	email := normalizeEmail(in.Email)
	if name == "" || email == "" || in.Password == "" {
		return Colaborador{}, ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return Colaborador{}, err
	}

	c := Colaborador{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Active:       true,
		CreatedAt:    s.now(),
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return Colaborador{}, err
	}
	return c, nil
}

type LoginResult struct {
	Token string
	Name  string
	Email string
}

// Login verifica credenciales y emite un token de sesión con rol staff.
func (s *Service) Login(ctx context.Context, email, password string) (LoginResult, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return LoginResult{}, ErrInvalidCredentials
	}

	c, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return LoginResult{}, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(password)); err != nil {
		return LoginResult{}, ErrInvalidCredentials
	}
	if !c.Active {
		return LoginResult{}, ErrInactiveAccount
	}

	token, err := s.issuer.Issue(auth.Claims{
		UserID: c.ID,
		Email:  c.Email,
		Role:   auth.RoleStaff,
	})
	if err != nil {
		return LoginResult{}, err
	}

	return LoginResult{Token: token, Name: c.Name, Email: c.Email}, nil
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
