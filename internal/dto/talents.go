package dto

import (
	"encoding/json"

	"UMS_TALENTA_BACK-END/internal/models"
)

// SkillResponse is a catalog entry
type SkillResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// StudentSkillResponse is one skill listing on a profile
type StudentSkillResponse struct {
	ID               string        `json:"id"`
	Skill            SkillResponse `json:"skill"`
	Level            string        `json:"level"`
	EndorsementCount int           `json:"endorsement_count"`
}

// CreateSkillRequest adds a skill to the caller's profile by name
type CreateSkillRequest struct {
	SkillName string `json:"skill_name"`
	Level     string `json:"level" validate:"omitempty,oneof=Beginner Intermediate Expert"`
}

// UpdateSkillRequest changes the level of a listing
type UpdateSkillRequest struct {
	Level string `json:"level" validate:"required,oneof=Beginner Intermediate Expert"`
}

// ExperienceRequest is the complete writable shape of an experience
type ExperienceRequest struct {
	Title       string `json:"title" validate:"required,max=150"`
	Company     string `json:"company" validate:"required,max=150"`
	StartDate   string `json:"start_date" validate:"required"` // YYYY-MM-DD
	EndDate     string `json:"end_date"`                       // "" => ongoing
	Description string `json:"description"`
}

// ExperiencePatch is a partial experience update
type ExperiencePatch struct {
	Title       *string        `json:"title"`
	Company     *string        `json:"company"`
	StartDate   *string        `json:"start_date"`
	EndDate     NullableString `json:"end_date"` // null or "" => NULL
	Description *string        `json:"description"`
}

// Apply overlays the provided fields on base
func (p ExperiencePatch) Apply(base ExperienceRequest) ExperienceRequest {
	setString(&base.Title, p.Title)
	setString(&base.Company, p.Company)
	setString(&base.StartDate, p.StartDate)
	if p.EndDate.Set {
		base.EndDate = ""
		setString(&base.EndDate, p.EndDate.Value)
	}
	setString(&base.Description, p.Description)
	return base
}

// ExperienceResponse represents an experience in responses
type ExperienceResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Company     string  `json:"company"`
	StartDate   string  `json:"start_date"`
	EndDate     *string `json:"end_date"`
	Description string  `json:"description"`
}

// ProjectRequest is the complete writable shape of a portfolio project
type ProjectRequest struct {
	Title       string `json:"title" validate:"required,max=150"`
	Description string `json:"description"`
	LinkDemo    string `json:"link_demo" validate:"omitempty,max=200,http_url"`
	LinkRepo    string `json:"link_repo" validate:"omitempty,max=200,http_url"`
}

// ProjectPatch is a partial project update
type ProjectPatch struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	LinkDemo    *string `json:"link_demo"`
	LinkRepo    *string `json:"link_repo"`
}

// Apply overlays the provided fields on base
func (p ProjectPatch) Apply(base ProjectRequest) ProjectRequest {
	setString(&base.Title, p.Title)
	setString(&base.Description, p.Description)
	setString(&base.LinkDemo, p.LinkDemo)
	setString(&base.LinkRepo, p.LinkRepo)
	return base
}

// ProjectResponse represents a portfolio project in responses
type ProjectResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	LinkDemo    string `json:"link_demo"`
	LinkRepo    string `json:"link_repo"`
}

// SocialLinkRequest is the complete writable shape of a social link
type SocialLinkRequest struct {
	Platform    string `json:"platform" validate:"required,oneof=email linkedin github instagram other"`
	Label       string `json:"label" validate:"max=100"`
	URLOrHandle string `json:"url_or_handle" validate:"required,max=255"`
}

// SocialLinkPatch is a partial social link update
type SocialLinkPatch struct {
	Platform    *string `json:"platform"`
	Label       *string `json:"label"`
	URLOrHandle *string `json:"url_or_handle"`
}

// Apply overlays the provided fields on base
func (p SocialLinkPatch) Apply(base SocialLinkRequest) SocialLinkRequest {
	setString(&base.Platform, p.Platform)
	setString(&base.Label, p.Label)
	setString(&base.URLOrHandle, p.URLOrHandle)
	return base
}

// SocialLinkResponse represents a social link in responses
type SocialLinkResponse struct {
	ID          string `json:"id"`
	Platform    string `json:"platform"`
	Label       string `json:"label"`
	URLOrHandle string `json:"url_or_handle"`
}

// EndorseRequest is the optional note attached to an endorsement
type EndorseRequest struct {
	Message string `json:"message" validate:"max=255"`
}

// EndorsementResponse represents an endorsement in responses
type EndorsementResponse struct {
	ID        string `json:"id"`
	Endorser  string `json:"endorser"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at"`
}

// NewStudentSkillResponse projects a skill listing
func NewStudentSkillResponse(s models.StudentSkill) StudentSkillResponse {
	return StudentSkillResponse{
		ID:               s.ID.String(),
		Skill:            SkillResponse{ID: s.Skill.ID.String(), Name: s.Skill.Name},
		Level:            s.Level,
		EndorsementCount: s.EndorsementCount,
	}
}

// NewExperienceResponse projects an experience
func NewExperienceResponse(e models.Experience) ExperienceResponse {
	resp := ExperienceResponse{
		ID:          e.ID.String(),
		Title:       e.Title,
		Company:     e.Company,
		StartDate:   e.StartDate.Format(DateLayout),
		Description: e.Description,
	}
	if e.EndDate != nil {
		end := e.EndDate.Format(DateLayout)
		resp.EndDate = &end
	}
	return resp
}

// ExperienceRequestFrom turns a stored experience back into its writable shape
func ExperienceRequestFrom(e models.Experience) ExperienceRequest {
	req := ExperienceRequest{
		Title:       e.Title,
		Company:     e.Company,
		StartDate:   e.StartDate.Format(DateLayout),
		Description: e.Description,
	}
	if e.EndDate != nil {
		req.EndDate = e.EndDate.Format(DateLayout)
	}
	return req
}

// NewProjectResponse projects a portfolio project
func NewProjectResponse(p models.PortfolioProject) ProjectResponse {
	return ProjectResponse{
		ID:          p.ID.String(),
		Title:       p.Title,
		Description: p.Description,
		LinkDemo:    p.LinkDemo,
		LinkRepo:    p.LinkRepo,
	}
}

// ProjectRequestFrom turns a stored project back into its writable shape
func ProjectRequestFrom(p models.PortfolioProject) ProjectRequest {
	return ProjectRequest{
		Title:       p.Title,
		Description: p.Description,
		LinkDemo:    p.LinkDemo,
		LinkRepo:    p.LinkRepo,
	}
}

// NewSocialLinkResponse projects a social link
func NewSocialLinkResponse(l models.SocialLink) SocialLinkResponse {
	return SocialLinkResponse{
		ID:          l.ID.String(),
		Platform:    l.Platform,
		Label:       l.Label,
		URLOrHandle: l.URLOrHandle,
	}
}

// SocialLinkRequestFrom turns a stored link back into its writable shape
func SocialLinkRequestFrom(l models.SocialLink) SocialLinkRequest {
	return SocialLinkRequest{
		Platform:    l.Platform,
		Label:       l.Label,
		URLOrHandle: l.URLOrHandle,
	}
}

// NewEndorsementResponse projects an endorsement; the endorser is shown as "name (NIM)"
func NewEndorsementResponse(e models.Endorsement) EndorsementResponse {
	endorser := e.EndorserNIM
	if e.EndorserName != "" {
		endorser = e.EndorserName + " (" + e.EndorserNIM + ")"
	}
	return EndorsementResponse{
		ID:        e.ID.String(),
		Endorser:  endorser,
		Message:   e.Message,
		CreatedAt: formatTimestamp(e.CreatedAt),
	}
}

// NullableString tells an absent JSON field apart from an explicit null
type NullableString struct {
	Set   bool
	Value *string
}

func (n *NullableString) UnmarshalJSON(b []byte) error {
	n.Set = true
	if string(b) == "null" {
		n.Value = nil
		return nil
	}
	var v string
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	n.Value = &v
	return nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
