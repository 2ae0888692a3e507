package mysql

import (
	"context"
	"errors"

	"farmshop/domain/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRepository MySQL/GORM implementation of the user repository.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) CreateUser(ctx context.Context, u *user.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *UserRepository) FindUserByID(ctx context.Context, id string) (*user.User, error) {
	var account user.User
	if err := r.db.WithContext(ctx).First(&account, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrUserNotFound
		}
		return nil, err
	}
	return &account, nil
}

func (r *UserRepository) FindUserByEmail(ctx context.Context, email string) (*user.User, error) {
	var account user.User
	if err := r.db.WithContext(ctx).First(&account, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrUserNotFound
		}
		return nil, err
	}
	return &account, nil
}

func (r *UserRepository) CreateToken(ctx context.Context, t *user.Token) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *UserRepository) FindToken(ctx context.Context, token string) (*user.Token, error) {
	var t user.Token
	if err := r.db.WithContext(ctx).First(&t, "token = ?", token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrTokenNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *UserRepository) DeleteTokensForUser(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&user.Token{}).Error
}

// CreateAddress writes the address row and its assignment to the user
// in one transaction.
func (r *UserRepository) CreateAddress(ctx context.Context, a *user.Address, userID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(a).Error; err != nil {
			return err
		}
		return tx.Create(&user.UserAddress{
			ID:        uuid.NewString(),
			UserID:    userID,
			AddressID: a.ID,
		}).Error
	})
}

func (r *UserRepository) FindAddress(ctx context.Context, id string) (*user.Address, error) {
	var address user.Address
	if err := r.db.WithContext(ctx).First(&address, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrAddressNotFound
		}
		return nil, err
	}
	return &address, nil
}

func (r *UserRepository) ListAddressesForUser(ctx context.Context, userID string) ([]user.Address, error) {
	var assignments []user.UserAddress
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&assignments).Error; err != nil {
		return nil, err
	}
	if len(assignments) == 0 {
		return []user.Address{}, nil
	}

	ids := make([]string, len(assignments))
	for i, a := range assignments {
		ids[i] = a.AddressID
	}

	var addresses []user.Address
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&addresses).Error; err != nil {
		return nil, err
	}
	return addresses, nil
}

func (r *UserRepository) DeleteAddress(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&user.Address{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return user.ErrAddressNotFound
	}
	return nil
}

var _ user.Repository = (*UserRepository)(nil)
