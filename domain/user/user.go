/*
Package user holds accounts, bearer tokens and saved addresses.
*/
package user

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrTokenNotFound   = errors.New("token not found")
	ErrAddressNotFound = errors.New("address not found")
	ErrEmailExists     = errors.New("email already exists")
)

// Type Access level of an account.
type Type string

const (
	TypeAdmin      Type = "admin"      // full access
	TypeHost       Type = "host"       // may create pickup stops
	TypeStandard   Type = "standard"   // registered user
	TypeRestricted Type = "restricted" // unregistered / limited
)

// User Registered account. Password holds the bcrypt hash, never the
// plaintext, and is excluded from JSON.
type User struct {
	ID             string         `gorm:"type:char(36);primaryKey" json:"id"`
	Firstname      string         `gorm:"type:varchar(40)" json:"firstname"`
	Lastname       string         `gorm:"type:varchar(40)" json:"lastname"`
	Email          string         `gorm:"type:varchar(60);uniqueIndex" json:"email"`
	Password       string         `gorm:"type:varchar(80)" json:"-"`
	UserType       Type           `gorm:"type:varchar(16)" json:"userType"`
	EmailConfirmed bool           `json:"emailConfirmed"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string { return "users" }

// IsAdmin reports whether the account has admin access.
func (u *User) IsAdmin() bool { return u.UserType == TypeAdmin }

// Token Bearer token issued at login.
type Token struct {
	ID        string    `gorm:"type:char(36);primaryKey" json:"id"`
	Token     string    `gorm:"type:char(64);uniqueIndex" json:"token"`
	UserID    string    `gorm:"type:char(36);index" json:"userID"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Token) TableName() string { return "tokens" }

// Address A saved delivery/billing address. Orders reference addresses,
// they never own them.
type Address struct {
	ID         string         `gorm:"type:char(36);primaryKey" json:"id"`
	Street     string         `gorm:"type:varchar(120)" json:"street"`
	Postalcode int            `json:"postalcode"`
	City       string         `gorm:"type:varchar(64)" json:"city"`
	Country    string         `gorm:"type:varchar(64)" json:"country"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Address) TableName() string { return "addresses" }

// UserAddress Assignment of a saved address to a user.
type UserAddress struct {
	ID        string `gorm:"type:char(36);primaryKey" json:"id"`
	UserID    string `gorm:"type:char(36);index" json:"userID"`
	AddressID string `gorm:"type:char(36);index" json:"addressID"`
}

func (UserAddress) TableName() string { return "user_addresses" }
