package converter

import (
	dto "sponsor_backend/internal/api/dto/sponsor"
	"sponsor_backend/internal/model"
)

func CreateRequestToSponsorModel(req *dto.CreateRequest) *model.Sponsor {
	return &model.Sponsor{
		Name:        req.Name,
		Email:       req.Email,
		Description: req.Description,
	}
}

func ToSponsorCreateResponse(id int) dto.CreateResponse {
	return dto.CreateResponse{
		Message:   "Sponsor added",
		SponsorID: id,
	}
}
