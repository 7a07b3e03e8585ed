package models

import (
	"github.com/golang-jwt/jwt/v5"
)

type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleManager Role = "MANAGER"
	RoleMember  Role = "MEMBER"
)

// Claims is the payload of the signed identity token. CountryID is omitted
// for ADMIN users, who are not bound to a single country.
type Claims struct {
	Role      Role `json:"role"`
	CountryID *int `json:"countryId,omitempty"`
	jwt.RegisteredClaims
}

type User struct {
	ID        int    `json:"id" gorm:"primaryKey"`
	Username  string `json:"username" gorm:"not null;uniqueIndex"`
	Password  string `json:"-" gorm:"not null"` // bcrypt hash
	Role      Role   `json:"role" gorm:"not null"`
	CountryID *int   `json:"countryId,omitempty" gorm:"index"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
}
