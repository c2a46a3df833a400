package model

import "time"

type FamilyMember struct {
	ID          int
	SponsorID   int
	Name        string
	Email       string
	DateOfBirth time.Time
	CreatedAt   time.Time
}
