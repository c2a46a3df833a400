package model

import (
	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims - полезная нагрузка сессионного токена.
// Subject хранит google ID спонсора
type SessionClaims struct {
	jwt.RegisteredClaims
	Email     string `json:"email"`
	Name      string `json:"name"`
	SponsorID int    `json:"sponsor_id"`
	IsAdmin   bool   `json:"is_admin"`
}

// AuthData - результат обмена Google токена на сессионный
type AuthData struct {
	Token   string
	Sponsor *Sponsor
}
