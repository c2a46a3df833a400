package converter

import (
	"time"

	dto "sponsor_backend/internal/api/dto/family"
	"sponsor_backend/internal/model"
)

func CreateRequestToFamilyMemberModel(req *dto.CreateRequest, dateOfBirth time.Time) *model.FamilyMember {
	return &model.FamilyMember{
		SponsorID:   req.SponsorID,
		Name:        req.Name,
		Email:       req.Email,
		DateOfBirth: dateOfBirth,
	}
}

func ToFamilyMemberCreateResponse(id int) dto.CreateResponse {
	return dto.CreateResponse{
		Message:  "Family member added",
		MemberID: id,
	}
}
