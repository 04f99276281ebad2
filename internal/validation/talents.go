package validation

import (
	"strings"
	"time"
	"unicode/utf8"

	"UMS_TALENTA_BACK-END/internal/dto"
	"UMS_TALENTA_BACK-END/internal/models"
	"UMS_TALENTA_BACK-END/internal/utils"
)

// ProfileUpdate checks a partial profile update and returns it normalized.
// Absent fields stay nil; provided names and programs are trimmed.
func ProfileUpdate(req dto.ProfileUpdateRequest) (dto.ProfileUpdateRequest, error) {
	errs := Errors{}
	out := req

	if req.UserFullName != nil {
		if v, msg := FullName(*req.UserFullName); msg != "" {
			errs.Add("user_full_name", msg)
		} else {
			out.UserFullName = &v
		}
	}
	if req.Prodi != nil {
		if v, msg := Prodi(*req.Prodi); msg != "" {
			errs.Add("prodi", msg)
		} else {
			out.Prodi = &v
		}
	}
	if req.Angkatan != nil {
		if v, msg := Angkatan(*req.Angkatan); msg != "" {
			errs.Add("angkatan", msg)
		} else {
			out.Angkatan = &v
		}
	}
	if req.Headline != nil {
		v := strings.TrimSpace(*req.Headline)
		if utf8.RuneCountInString(v) > 150 {
			errs.Add("headline", "Ensure this field has no more than 150 characters.")
		}
		out.Headline = &v
	}
	// photo references are only ever set by the upload endpoint
	if req.Photo != nil {
		v := strings.TrimSpace(*req.Photo)
		if v != "" {
			errs.Add("photo", "Photo can only be cleared here; upload a new one through /api/talents/me/photo.")
		}
		out.Photo = &v
	}

	if err := errs.Err(); err != nil {
		return dto.ProfileUpdateRequest{}, err
	}
	return out, nil
}

// SkillCreate returns the trimmed skill name and the level, defaulting to Beginner
func SkillCreate(req dto.CreateSkillRequest) (string, string, error) {
	errs := Struct(req)
	name := strings.TrimSpace(req.SkillName)
	if name == "" {
		errs.Add("skill_name", "Skill name is required.")
	} else if utf8.RuneCountInString(name) > 100 {
		errs.Add("skill_name", "Ensure this field has no more than 100 characters.")
	}
	if err := errs.Err(); err != nil {
		return "", "", err
	}
	level := req.Level
	if level == "" {
		level = models.LevelBeginner
	}
	return name, level, nil
}

// SkillUpdate returns the new level of a listing
func SkillUpdate(req dto.UpdateSkillRequest) (string, error) {
	if err := Struct(req).Err(); err != nil {
		return "", err
	}
	return req.Level, nil
}

// Experience checks an experience and parses its dates. today is the caller's
// current date; neither date may lie after it and the end may not precede the start.
func Experience(req dto.ExperienceRequest, today time.Time) (models.Experience, error) {
	req.Title = strings.TrimSpace(req.Title)
	req.Company = strings.TrimSpace(req.Company)
	errs := Struct(req)
	today = utils.DateOf(today)

	out := models.Experience{
		Title:       req.Title,
		Company:     req.Company,
		Description: req.Description,
	}

	var start *time.Time
	if req.StartDate != "" {
		t, err := utils.ParseDate(req.StartDate)
		switch {
		case err != nil:
			errs.Add("start_date", "Date has wrong format. Use YYYY-MM-DD.")
		case t.After(today):
			errs.Add("start_date", "Start date cannot be later than today.")
		default:
			start = &t
			out.StartDate = t
		}
	}
	if strings.TrimSpace(req.EndDate) != "" {
		t, err := utils.ParseDate(req.EndDate)
		switch {
		case err != nil:
			errs.Add("end_date", "Date has wrong format. Use YYYY-MM-DD.")
		case t.After(today):
			errs.Add("end_date", "End date cannot be later than today.")
		case start != nil && t.Before(*start):
			errs.Add("end_date", "End date cannot be earlier than start date.")
		default:
			out.EndDate = &t
		}
	}

	if err := errs.Err(); err != nil {
		return models.Experience{}, err
	}
	return out, nil
}

// Project checks a portfolio project
func Project(req dto.ProjectRequest) (models.PortfolioProject, error) {
	req.Title = strings.TrimSpace(req.Title)
	req.LinkDemo = strings.TrimSpace(req.LinkDemo)
	req.LinkRepo = strings.TrimSpace(req.LinkRepo)
	if err := Struct(req).Err(); err != nil {
		return models.PortfolioProject{}, err
	}
	return models.PortfolioProject{
		Title:       req.Title,
		Description: req.Description,
		LinkDemo:    req.LinkDemo,
		LinkRepo:    req.LinkRepo,
	}, nil
}

// SocialLink checks a social link
func SocialLink(req dto.SocialLinkRequest) (models.SocialLink, error) {
	req.Label = strings.TrimSpace(req.Label)
	req.URLOrHandle = strings.TrimSpace(req.URLOrHandle)
	if err := Struct(req).Err(); err != nil {
		return models.SocialLink{}, err
	}
	return models.SocialLink{
		Platform:    req.Platform,
		Label:       req.Label,
		URLOrHandle: req.URLOrHandle,
	}, nil
}

// Endorsement checks the optional endorsement note
func Endorsement(req dto.EndorseRequest) (string, error) {
	msg := strings.TrimSpace(req.Message)
	req.Message = msg
	if err := Struct(req).Err(); err != nil {
		return "", err
	}
	return msg, nil
}
