package dto

import (
	"strings"
	"time"

	"UMS_TALENTA_BACK-END/internal/models"
)

// DateLayout is the wire format of calendar dates
const DateLayout = "2006-01-02"

// ProfileResponse is the full nested profile returned by profile and talent endpoints
type ProfileResponse struct {
	ID           string                 `json:"id"`
	UserFullName string                 `json:"user_full_name"`
	Email        string                 `json:"email"`
	NIM          string                 `json:"nim"`
	Prodi        string                 `json:"prodi"`
	Angkatan     string                 `json:"angkatan"`
	Headline     string                 `json:"headline"`
	Bio          string                 `json:"bio"`
	Photo        *string                `json:"photo"`
	IsPublic     bool                   `json:"is_public"`
	IsActive     bool                   `json:"is_active"`
	ViewsCount   int                    `json:"views_count"`
	CreatedAt    string                 `json:"created_at"` // RFC3339
	UpdatedAt    string                 `json:"updated_at"` // RFC3339
	Skills       []StudentSkillResponse `json:"skills"`
	Experiences  []ExperienceResponse   `json:"experiences"`
	Projects     []ProjectResponse      `json:"projects"`
	SocialLinks  []SocialLinkResponse   `json:"social_links"`
}

// ProfileUpdateRequest is the partial update of the caller's own profile.
// Only provided fields change.
type ProfileUpdateRequest struct {
	UserFullName *string `json:"user_full_name"`
	Prodi        *string `json:"prodi"`
	Angkatan     *string `json:"angkatan"`
	Headline     *string `json:"headline"`
	Bio          *string `json:"bio"`
	IsPublic     *bool   `json:"is_public"`
	Photo        *string `json:"photo"` // "" => NULL
}

// IsEmpty reports whether no field was provided
func (r ProfileUpdateRequest) IsEmpty() bool {
	return r.UserFullName == nil && r.Prodi == nil && r.Angkatan == nil &&
		r.Headline == nil && r.Bio == nil && r.IsPublic == nil && r.Photo == nil
}

// Pagination info
type Pagination struct {
	Total  int `json:"total"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// TalentListResponse envelope
type TalentListResponse struct {
	Results    []ProfileResponse `json:"results"`
	Pagination Pagination        `json:"pagination"`
}

// StatisticsResponse holds the public directory aggregates
type StatisticsResponse struct {
	TotalTalents     int `json:"total_talents"`
	TotalSkills      int `json:"total_skills"`
	TotalExperiences int `json:"total_experiences"`
}

// StatusResponse is returned by moderation actions
type StatusResponse struct {
	Status string `json:"status"`
}

// PhotoResponse is returned after a photo upload
type PhotoResponse struct {
	Photo string `json:"photo"`
}

// NewProfileResponse projects a profile with its children. mediaURL prefixes
// the stored photo reference.
func NewProfileResponse(d models.ProfileDetail, mediaURL string) ProfileResponse {
	p := d.Profile
	resp := ProfileResponse{
		ID:           p.ID.String(),
		UserFullName: d.FullName,
		Email:        d.Email,
		NIM:          p.NIM,
		Prodi:        p.Prodi,
		Angkatan:     p.Angkatan,
		Headline:     p.Headline,
		Bio:          p.Bio,
		Photo:        PhotoURL(p.Photo, mediaURL),
		IsPublic:     p.IsPublic,
		IsActive:     p.IsActive,
		ViewsCount:   p.ViewsCount,
		CreatedAt:    formatTimestamp(p.CreatedAt),
		UpdatedAt:    formatTimestamp(p.UpdatedAt),
		Skills:       make([]StudentSkillResponse, 0, len(d.Skills)),
		Experiences:  make([]ExperienceResponse, 0, len(d.Experiences)),
		Projects:     make([]ProjectResponse, 0, len(d.Projects)),
		SocialLinks:  make([]SocialLinkResponse, 0, len(d.SocialLinks)),
	}
	for _, s := range d.Skills {
		resp.Skills = append(resp.Skills, NewStudentSkillResponse(s))
	}
	for _, e := range d.Experiences {
		resp.Experiences = append(resp.Experiences, NewExperienceResponse(e))
	}
	for _, pr := range d.Projects {
		resp.Projects = append(resp.Projects, NewProjectResponse(pr))
	}
	for _, l := range d.SocialLinks {
		resp.SocialLinks = append(resp.SocialLinks, NewSocialLinkResponse(l))
	}
	return resp
}

// NewProfileList projects a page of profiles
func NewProfileList(details []models.ProfileDetail, mediaURL string) []ProfileResponse {
	out := make([]ProfileResponse, 0, len(details))
	for _, d := range details {
		out = append(out, NewProfileResponse(d, mediaURL))
	}
	return out
}

// PhotoURL joins a stored photo reference onto the public media prefix
func PhotoURL(photo *string, mediaURL string) *string {
	if photo == nil || *photo == "" {
		return nil
	}
	if strings.HasPrefix(*photo, "http://") || strings.HasPrefix(*photo, "https://") {
		return photo
	}
	u := strings.TrimRight(mediaURL, "/") + "/" + strings.TrimLeft(*photo, "/")
	return &u
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
