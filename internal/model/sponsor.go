package model

import "time"

type Sponsor struct {
	ID          int
	GoogleID    string
	Name        string
	Email       string
	AvatarURL   string
	Description string
	IsAdmin     bool
	CreatedAt   time.Time
}

// GoogleProfile - проверенные данные пользователя от Google
type GoogleProfile struct {
	GoogleID  string
	Email     string
	Name      string
	AvatarURL string
}
