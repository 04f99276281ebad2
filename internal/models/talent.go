package models

import (
	"time"

	"github.com/google/uuid"
)

// Skill levels
const (
	LevelBeginner     = "Beginner"
	LevelIntermediate = "Intermediate"
	LevelExpert       = "Expert"
)

// Social link platforms
const (
	PlatformEmail     = "email"
	PlatformLinkedIn  = "linkedin"
	PlatformGitHub    = "github"
	PlatformInstagram = "instagram"
	PlatformOther     = "other"
)

// Skill is a shared catalog entry
type Skill struct {
	ID   uuid.UUID `json:"id" db:"id"`
	Name string    `json:"name" db:"name"`
}

// StudentSkill links a profile to a catalog skill
type StudentSkill struct {
	ID               uuid.UUID `json:"id" db:"id"`
	ProfileID        uuid.UUID `json:"profile_id" db:"profile_id"`
	Skill            Skill     `json:"skill"`
	Level            string    `json:"level" db:"level"`
	EndorsementCount int       `json:"endorsement_count" db:"endorsement_count"`
}

// Experience is a work/organisation entry on a profile
type Experience struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	ProfileID   uuid.UUID  `json:"profile_id" db:"profile_id"`
	Title       string     `json:"title" db:"title"`
	Company     string     `json:"company" db:"company"`
	StartDate   time.Time  `json:"start_date" db:"start_date"`
	EndDate     *time.Time `json:"end_date" db:"end_date"`
	Description string     `json:"description" db:"description"`
}

// PortfolioProject is a showcased project on a profile
type PortfolioProject struct {
	ID          uuid.UUID `json:"id" db:"id"`
	ProfileID   uuid.UUID `json:"profile_id" db:"profile_id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	LinkDemo    string    `json:"link_demo" db:"link_demo"`
	LinkRepo    string    `json:"link_repo" db:"link_repo"`
}

// SocialLink is a contact/social handle on a profile
type SocialLink struct {
	ID          uuid.UUID `json:"id" db:"id"`
	ProfileID   uuid.UUID `json:"profile_id" db:"profile_id"`
	Platform    string    `json:"platform" db:"platform"`
	Label       string    `json:"label" db:"label"`
	URLOrHandle string    `json:"url_or_handle" db:"url_or_handle"`
}

// Endorsement records one profile vouching for another profile's skill listing
type Endorsement struct {
	ID             uuid.UUID `json:"id" db:"id"`
	StudentSkillID uuid.UUID `json:"student_skill_id" db:"student_skill_id"`
	EndorserID     uuid.UUID `json:"endorser_id" db:"endorser_id"`
	EndorserName   string    `json:"endorser_name"`
	EndorserNIM    string    `json:"endorser_nim"`
	Message        string    `json:"message" db:"message"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}
