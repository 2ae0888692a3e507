package user

import "context"

// Repository Persistence boundary for accounts, tokens and addresses.
type Repository interface {
	CreateUser(ctx context.Context, u *User) error
	FindUserByID(ctx context.Context, id string) (*User, error)
	FindUserByEmail(ctx context.Context, email string) (*User, error)

	CreateToken(ctx context.Context, t *Token) error
	FindToken(ctx context.Context, token string) (*Token, error)
	DeleteTokensForUser(ctx context.Context, userID string) error

	CreateAddress(ctx context.Context, a *Address, userID string) error
	FindAddress(ctx context.Context, id string) (*Address, error)
	ListAddressesForUser(ctx context.Context, userID string) ([]Address, error)
	DeleteAddress(ctx context.Context, id string) error
}
