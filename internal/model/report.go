package model

import "time"

// SponsorReport - строка отчета по спонсорам с агрегатами по членам семьи
type SponsorReport struct {
	ID          int
	Name        string
	Email       string
	FamilyCount int
	FamilyNames string
}

// FamilyMemberReport - строка отчета по членам семьи с данными спонсора
type FamilyMemberReport struct {
	ID           int
	Name         string
	Email        string
	DateOfBirth  time.Time
	SponsorName  string
	SponsorEmail string
	Age          int
}

const (
	SearchTypeSponsor      = "sponsor"
	SearchTypeFamilyMember = "family_member"
)

// SearchResult - строка кросс-табличного поиска, Type помечает таблицу-источник
type SearchResult struct {
	Type  string
	ID    int
	Name  string
	Email string
}
