package user

import (
	"context"
	"testing"

	"farmshop/domain/user"
	"farmshop/infrastructure/persistence/mocks"
	apperrors "farmshop/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService() *Service {
	return NewService(mocks.NewUserRepository())
}

func registerRequest() RegisterRequest {
	return RegisterRequest{
		Firstname: "Anna",
		Lastname:  "Berg",
		Email:     "anna@example.com",
		Password:  "Sommar2024",
	}
}

func TestRegister(t *testing.T) {
	s := newService()

	account, err := s.Register(context.Background(), registerRequest())
	require.NoError(t, err)
	assert.Equal(t, user.TypeStandard, account.UserType)
	assert.NotEmpty(t, account.ID)
	// Stored password is a hash, never the plaintext.
	assert.NotEqual(t, "Sommar2024", account.Password)

	_, err = s.Register(context.Background(), registerRequest())
	assert.True(t, apperrors.Is(err, apperrors.CodeEmailExists))
}

func TestRegister_PasswordPolicy(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{"too short", "Ab1"},
		{"no upper case", "sommar2024"},
		{"no digit", "Sommartid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newService()
			req := registerRequest()
			req.Password = tt.password
			_, err := s.Register(context.Background(), req)
			assert.True(t, apperrors.Is(err, apperrors.CodeValidation))
		})
	}
}

func TestLoginAndAuthenticate(t *testing.T) {
	s := newService()
	_, err := s.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	result, err := s.Login(context.Background(), LoginRequest{Email: "anna@example.com", Password: "Sommar2024"})
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "anna@example.com", result.User.Email)

	account, err := s.Authenticate(context.Background(), result.Token)
	require.NoError(t, err)
	assert.Equal(t, result.User.ID, account.ID)

	t.Run("wrong password", func(t *testing.T) {
		_, err := s.Login(context.Background(), LoginRequest{Email: "anna@example.com", Password: "fel"})
		assert.True(t, apperrors.Is(err, apperrors.CodeUnauthorized))
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := s.Login(context.Background(), LoginRequest{Email: "nobody@example.com", Password: "Sommar2024"})
		assert.True(t, apperrors.Is(err, apperrors.CodeUnauthorized))
	})

	t.Run("logout revokes tokens", func(t *testing.T) {
		require.NoError(t, s.Logout(context.Background(), account.ID))
		_, err := s.Authenticate(context.Background(), result.Token)
		assert.True(t, apperrors.Is(err, apperrors.CodeUnauthorized))
	})
}

func TestAddresses(t *testing.T) {
	s := newService()
	account, err := s.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	address, err := s.CreateAddress(context.Background(), account.ID, AddressRequest{
		Street:     "Storgatan 1",
		Postalcode: 11122,
		City:       "Stockholm",
		Country:    "Sweden",
	})
	require.NoError(t, err)

	addresses, err := s.ListAddresses(context.Background(), account.ID)
	require.NoError(t, err)
	require.Len(t, addresses, 1)
	assert.Equal(t, address.ID, addresses[0].ID)

	require.NoError(t, s.DeleteAddress(context.Background(), address.ID))

	addresses, err = s.ListAddresses(context.Background(), account.ID)
	require.NoError(t, err)
	assert.Empty(t, addresses)

	err = s.DeleteAddress(context.Background(), address.ID)
	assert.True(t, apperrors.Is(err, apperrors.CodeAddressNotFound))
}
