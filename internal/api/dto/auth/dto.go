package auth

type LoginRequest struct {
	Token string `json:"token"` // Google ID токен
}

type LoginResponse struct {
	Token string      `json:"token"` // Сессионный токен
	User  UserSummary `json:"user"`
}

type UserSummary struct {
	Email     string `json:"email"`
	Name      string `json:"name"`
	Picture   string `json:"picture"`
	SponsorID int    `json:"sponsorId"` // Внутренний ID спонсора
	IsAdmin   bool   `json:"isAdmin"`
}
