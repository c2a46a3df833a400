package sponsor

type CreateRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Description string `json:"description"`
}

type CreateResponse struct {
	Message   string `json:"message"`
	SponsorID int    `json:"sponsorId"`
}
