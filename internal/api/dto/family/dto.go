package family

type CreateRequest struct {
	SponsorID   int    `json:"sponsor_id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	DateOfBirth string `json:"date_of_birth"` // Дата в формате YYYY-MM-DD
}

type CreateResponse struct {
	Message  string `json:"message"`
	MemberID int    `json:"memberId"`
}
