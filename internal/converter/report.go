package converter

import (
	dto "sponsor_backend/internal/api/dto/report"
	"sponsor_backend/internal/model"
)

const dateLayout = "2006-01-02"

func ToSponsorRows(reports []model.SponsorReport) []dto.SponsorRow {
	rows := make([]dto.SponsorRow, len(reports))
	for i, r := range reports {
		rows[i] = dto.SponsorRow{
			ID:          r.ID,
			Name:        r.Name,
			Email:       r.Email,
			FamilyCount: r.FamilyCount,
			FamilyNames: r.FamilyNames,
		}
	}
	return rows
}

func ToFamilyMemberRows(reports []model.FamilyMemberReport) []dto.FamilyMemberRow {
	rows := make([]dto.FamilyMemberRow, len(reports))
	for i, r := range reports {
		dateOfBirth := ""
		if !r.DateOfBirth.IsZero() {
			dateOfBirth = r.DateOfBirth.Format(dateLayout)
		}
		rows[i] = dto.FamilyMemberRow{
			ID:           r.ID,
			Name:         r.Name,
			Email:        r.Email,
			DateOfBirth:  dateOfBirth,
			SponsorName:  r.SponsorName,
			SponsorEmail: r.SponsorEmail,
			Age:          r.Age,
		}
	}
	return rows
}

func ToSearchRows(results []model.SearchResult) []dto.SearchRow {
	rows := make([]dto.SearchRow, len(results))
	for i, r := range results {
		rows[i] = dto.SearchRow{
			Type:  r.Type,
			ID:    r.ID,
			Name:  r.Name,
			Email: r.Email,
		}
	}
	return rows
}
