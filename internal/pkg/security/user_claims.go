package security

import "github.com/golang-jwt/jwt/v5"

type UserClaims struct {
	UserID uint64 `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}
