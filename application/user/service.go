/*
Package user handles registration, login and saved addresses.
*/
package user

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"unicode"

	"farmshop/domain/user"
	apperrors "farmshop/pkg/errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Service User application service.
type Service struct {
	users user.Repository
}

func NewService(users user.Repository) *Service {
	return &Service{users: users}
}

// RegisterRequest New account payload.
type RegisterRequest struct {
	Firstname string `json:"firstname" binding:"required"`
	Lastname  string `json:"lastname" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required"`
}

// LoginRequest Credentials payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse Issued bearer token plus the account.
type LoginResponse struct {
	Token string     `json:"token"`
	User  *user.User `json:"user"`
}

// Register creates a standard account with a bcrypt-hashed password.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*user.User, error) {
	if err := validatePassword(req.Password); err != nil {
		return nil, err
	}

	if _, err := s.users.FindUserByEmail(ctx, req.Email); err == nil {
		return nil, apperrors.EmailExists()
	} else if !errors.Is(err, user.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternal, "failed to hash password")
	}

	account := &user.User{
		ID:        uuid.NewString(),
		Firstname: req.Firstname,
		Lastname:  req.Lastname,
		Email:     req.Email,
		Password:  string(hash),
		UserType:  user.TypeStandard,
	}
	if err := s.users.CreateUser(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

// Login verifies credentials and issues a fresh bearer token.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	account, err := s.users.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, apperrors.Unauthorized("invalid email or password")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(req.Password)); err != nil {
		return nil, apperrors.Unauthorized("invalid email or password")
	}

	token := &user.Token{
		ID:     uuid.NewString(),
		Token:  newTokenString(),
		UserID: account.ID,
	}
	if err := s.users.CreateToken(ctx, token); err != nil {
		return nil, err
	}

	return &LoginResponse{Token: token.Token, User: account}, nil
}

// Logout revokes every token of the user.
func (s *Service) Logout(ctx context.Context, userID string) error {
	return s.users.DeleteTokensForUser(ctx, userID)
}

// GetUser returns one account.
func (s *Service) GetUser(ctx context.Context, id string) (*user.User, error) {
	account, err := s.users.FindUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, apperrors.UserNotFound()
		}
		return nil, err
	}
	return account, nil
}

// Authenticate resolves a bearer token to its account.
func (s *Service) Authenticate(ctx context.Context, token string) (*user.User, error) {
	t, err := s.users.FindToken(ctx, token)
	if err != nil {
		if errors.Is(err, user.ErrTokenNotFound) {
			return nil, apperrors.Unauthorized("invalid token")
		}
		return nil, err
	}
	return s.GetUser(ctx, t.UserID)
}

// AddressRequest New address payload.
type AddressRequest struct {
	Street     string `json:"street" binding:"required"`
	Postalcode int    `json:"postalcode" binding:"required"`
	City       string `json:"city" binding:"required"`
	Country    string `json:"country" binding:"required"`
}

// CreateAddress saves an address for the user.
func (s *Service) CreateAddress(ctx context.Context, userID string, req AddressRequest) (*user.Address, error) {
	address := &user.Address{
		ID:         uuid.NewString(),
		Street:     req.Street,
		Postalcode: req.Postalcode,
		City:       req.City,
		Country:    req.Country,
	}
	if err := s.users.CreateAddress(ctx, address, userID); err != nil {
		return nil, err
	}
	return address, nil
}

// ListAddresses returns the user's saved addresses.
func (s *Service) ListAddresses(ctx context.Context, userID string) ([]user.Address, error) {
	return s.users.ListAddressesForUser(ctx, userID)
}

// DeleteAddress soft-deletes a saved address.
func (s *Service) DeleteAddress(ctx context.Context, id string) error {
	if err := s.users.DeleteAddress(ctx, id); err != nil {
		if errors.Is(err, user.ErrAddressNotFound) {
			return apperrors.AddressNotFound(id)
		}
		return err
	}
	return nil
}

// validatePassword requires at least 8 characters with an upper-case
// letter and a digit.
func validatePassword(password string) error {
	if len(password) < 8 {
		return apperrors.Validation("password must have at least 8 characters")
	}
	var hasUpper, hasDigit bool
	for _, r := range password {
		if unicode.IsUpper(r) {
			hasUpper = true
		}
		if unicode.IsDigit(r) {
			hasDigit = true
		}
	}
	if !hasUpper || !hasDigit {
		return apperrors.Validation("password must contain an upper-case letter and a digit")
	}
	return nil
}

// newTokenString returns 32 random bytes hex-encoded.
func newTokenString() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand read failures are not recoverable at this level
		panic(err)
	}
	return hex.EncodeToString(b)
}
