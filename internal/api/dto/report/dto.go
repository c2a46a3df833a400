package report

type SponsorRow struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	FamilyCount int    `json:"familyCount"` // Кол-во членов семьи
	FamilyNames string `json:"familyNames"` // Имена через запятую
}

type FamilyMemberRow struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	DateOfBirth  string `json:"dateOfBirth"`
	SponsorName  string `json:"sponsorName"`
	SponsorEmail string `json:"sponsorEmail"`
	Age          int    `json:"age"` // Дни с рождения / 365
}

type SearchRow struct {
	Type  string `json:"type"` // sponsor или family_member
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
