package validation

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"UMS_TALENTA_BACK-END/internal/dto"
)

// StudentEmailDomain is the only domain accepted at registration
const StudentEmailDomain = "student.ums.ac.id"

var (
	fullNamePattern = regexp.MustCompile(`^[a-zA-Z\s.,\-']+$`)
	prodiPattern    = regexp.MustCompile(`^[a-zA-Z\s.,\-()]+$`)
	nimPattern      = regexp.MustCompile(`^[A-Z][0-9]{9}$`)
	emailPattern    = regexp.MustCompile(`^[a-z0-9]+@student\.ums\.ac\.id$`)
	angkatanPattern = regexp.MustCompile(`^[0-9]{4}$`)
)

// Registration is an accepted, normalized registration ready for persistence
type Registration struct {
	Email    string
	FullName string
	Password string
	NIM      string
	Prodi    string
	Angkatan string
}

// IdentityLookup answers the uniqueness questions registration needs
type IdentityLookup interface {
	EmailExists(ctx context.Context, email string) (bool, error)
	NIMExists(ctx context.Context, nim string) (bool, error)
}

// ValidateRegistration applies the field rules, the email/NIM cross check and
// the uniqueness checks. It returns Errors for rejected input and a plain error
// when a lookup fails.
func ValidateRegistration(ctx context.Context, in dto.RegisterRequest, lookup IdentityLookup) (Registration, error) {
	errs := Errors{}
	out := Registration{Password: in.Password}

	if name, msg := FullName(in.FullName); msg != "" {
		errs.Add("full_name", msg)
	} else {
		out.FullName = name
	}

	nimOK := false
	if nim, msg := NIM(in.NIM); msg != "" {
		errs.Add("nim", msg)
	} else {
		out.NIM = nim
		nimOK = true
	}

	if prodi, msg := Prodi(in.Prodi); msg != "" {
		errs.Add("prodi", msg)
	} else {
		out.Prodi = prodi
	}

	if angkatan, msg := Angkatan(in.Angkatan); msg != "" {
		errs.Add("angkatan", msg)
	} else {
		out.Angkatan = angkatan
	}

	emailOK := false
	if email, msg := StudentEmail(in.Email); msg != "" {
		errs.Add("email", msg)
	} else {
		out.Email = email
		emailOK = true
	}

	if err := ValidatePassword(in.Password, out.Email, out.FullName); err != nil {
		errs.Add("password", err.Error())
	}

	if emailOK && nimOK && !strings.EqualFold(EmailLocalPart(out.Email), out.NIM) {
		errs.Add("nim", "NIM must match the student email address.")
		nimOK = false
	}

	if emailOK {
		exists, err := lookup.EmailExists(ctx, out.Email)
		if err != nil {
			return Registration{}, fmt.Errorf("check email: %w", err)
		}
		if exists {
			errs.Add("email", MsgAlreadyRegistered)
		}
	}
	if nimOK {
		exists, err := lookup.NIMExists(ctx, out.NIM)
		if err != nil {
			return Registration{}, fmt.Errorf("check nim: %w", err)
		}
		if exists {
			errs.Add("nim", MsgAlreadyRegistered)
		}
	}

	if err := errs.Err(); err != nil {
		return Registration{}, err
	}
	return out, nil
}

// FullName trims and checks a display name
func FullName(raw string) (string, string) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return "", MsgRequired
	}
	if utf8.RuneCountInString(v) > 150 {
		return "", "Ensure this field has no more than 150 characters."
	}
	if !fullNamePattern.MatchString(v) {
		return "", "Name may only contain letters, spaces, periods, commas, hyphens and apostrophes."
	}
	return v, ""
}

// NIM uppercases and checks a student number: one letter followed by 9 digits
func NIM(raw string) (string, string) {
	v := strings.ToUpper(strings.TrimSpace(raw))
	if v == "" {
		return "", MsgRequired
	}
	if !nimPattern.MatchString(v) {
		return "", "NIM must be one letter followed by 9 digits."
	}
	return v, ""
}

// Prodi trims and checks a study program name
func Prodi(raw string) (string, string) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return "", MsgRequired
	}
	if utf8.RuneCountInString(v) > 100 {
		return "", "Ensure this field has no more than 100 characters."
	}
	if !prodiPattern.MatchString(v) {
		return "", "Study program may only contain letters, spaces and punctuation."
	}
	return v, ""
}

// Angkatan checks a 4-digit enrollment year
func Angkatan(raw string) (string, string) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return "", MsgRequired
	}
	if len(v) != 4 {
		return "", "Angkatan must be 4 digits."
	}
	if !angkatanPattern.MatchString(v) {
		return "", "Angkatan may only contain digits."
	}
	return v, ""
}

// StudentEmail lowercases and checks a <nim>@student.ums.ac.id address
func StudentEmail(raw string) (string, string) {
	v := strings.ToLower(strings.TrimSpace(raw))
	if v == "" {
		return "", MsgRequired
	}
	if !emailPattern.MatchString(v) {
		return "", "Email must use the format nim@" + StudentEmailDomain + "."
	}
	return v, ""
}

// NormalizeEmail is the login-side normalization: trimmed and lowercased
func NormalizeEmail(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// EmailLocalPart returns the part of an address before '@'
func EmailLocalPart(email string) string {
	local, _, _ := strings.Cut(email, "@")
	return local
}
