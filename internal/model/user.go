package model

import (
	"github.com/golang-jwt/jwt/v5"
)

type User struct {
	ID       int
	Name     string
	Login    string
	Password string
}

type UserClaims struct {
	jwt.RegisteredClaims
}

// AuthData - данные, возвращаемые после регистрации/входа
type AuthData struct {
	AccessToken  string
	RefreshToken string
	SessionID    string
}
