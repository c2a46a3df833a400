package converter

import (
	dto "sponsor_backend/internal/api/dto/auth"
	"sponsor_backend/internal/model"
)

func ToLoginResponse(data *model.AuthData) dto.LoginResponse {
	return dto.LoginResponse{
		Token: data.Token,
		User: dto.UserSummary{
			Email:     data.Sponsor.Email,
			Name:      data.Sponsor.Name,
			Picture:   data.Sponsor.AvatarURL,
			SponsorID: data.Sponsor.ID,
			IsAdmin:   data.Sponsor.IsAdmin,
		},
	}
}
