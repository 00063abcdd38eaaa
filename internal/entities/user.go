package entities

import (
	"fmt"
	"time"
)

type Role string

const (
	RoleCustomer     Role = "customer"
	RoleCanteenStaff Role = "canteen_staff"
	RoleAdmin        Role = "admin"
)

func ParseRole(s string) (Role, error) {
	switch r := Role(s); r {
	case RoleCustomer, RoleCanteenStaff, RoleAdmin:
		return r, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidRole, s)
	}
}

type User struct {
	ID        int64
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Role      Role
	CreatedAt time.Time
}

type UserUpdate struct {
	FirstName string
	LastName  string
	Phone     string
	Role      Role // empty keeps the current role
}

// Credentials is what login checks a password against. Users without a password cannot log in.
type Credentials struct {
	UserID       int64
	Email        string
	Role         Role
	PasswordHash string
}

type Signup struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Password  string
}

// Session is an issued access token and the identity it carries.
type Session struct {
	UserID    int64
	Email     string
	Role      Role
	Token     string
	ExpiresAt time.Time
}
