package models

import (
	"time"

	"github.com/google/uuid"
)

// StudentProfile is the one-to-one talent profile of a user (table student_profiles)
type StudentProfile struct {
	ID         uuid.UUID `json:"id" db:"id"`
	UserID     uuid.UUID `json:"user_id" db:"user_id"`
	NIM        string    `json:"nim" db:"nim"`
	Prodi      string    `json:"prodi" db:"prodi"`
	Angkatan   string    `json:"angkatan" db:"angkatan"`
	Headline   string    `json:"headline" db:"headline"`
	Bio        string    `json:"bio" db:"bio"`
	Photo      *string   `json:"photo" db:"photo"`
	IsPublic   bool      `json:"is_public" db:"is_public"`
	IsActive   bool      `json:"is_active" db:"is_active"`
	ViewsCount int       `json:"views_count" db:"views_count"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

// Listed reports whether the profile may appear in public listings
func (p StudentProfile) Listed() bool {
	return p.IsPublic && p.IsActive
}

// ProfileDetail is a profile joined with its owner and child collections
type ProfileDetail struct {
	Profile     StudentProfile
	FullName    string
	Email       string
	Skills      []StudentSkill
	Experiences []Experience
	Projects    []PortfolioProject
	SocialLinks []SocialLink
}

// ProfileView is one row of the append-only view log
type ProfileView struct {
	ID        uuid.UUID `json:"id" db:"id"`
	ProfileID uuid.UUID `json:"profile_id" db:"profile_id"`
	ViewerIP  *string   `json:"viewer_ip" db:"viewer_ip"`
	ViewedAt  time.Time `json:"viewed_at" db:"viewed_at"`
}
