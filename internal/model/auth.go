package model

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// User is an authenticated actor. Role is stored as its wire name
// (e.g. "MANAGER") and resolved against the role hierarchy at request
// time; unknown names fail closed.
type User struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	Email        string    `json:"email" bson:"email"`
	PasswordHash string    `json:"-" bson:"passwordHash"`
	FullName     string    `json:"fullName" bson:"fullName"`
	Role         string    `json:"role" bson:"role"`
	EnterpriseID string    `json:"enterpriseId,omitempty" bson:"enterpriseId,omitempty"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
}

// UserClaims are the JWT claims carried by API tokens.
type UserClaims struct {
	UserID       string `json:"userId"`
	Role         string `json:"role"`
	EnterpriseID string `json:"enterpriseId,omitempty"`
	jwt.RegisteredClaims
}

// LoginRequest is the request body for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is returned after successful login.
type LoginResponse struct {
	Token        string `json:"token"`
	UserID       string `json:"userId"`
	Role         string `json:"role"`
	EnterpriseID string `json:"enterpriseId,omitempty"`
}
