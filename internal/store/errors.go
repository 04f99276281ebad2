package store

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrNotFound             = errors.New("record not found")
	ErrDuplicateEmail       = errors.New("email already registered")
	ErrDuplicateNIM         = errors.New("nim already registered")
	ErrDuplicateSkill       = errors.New("skill already listed on profile")
	ErrDuplicateEndorsement = errors.New("skill already endorsed by this profile")
	ErrConflict             = errors.New("unique constraint violated")
)

const uniqueViolation = "23505"

// constraint name -> sentinel
var uniqueConstraints = map[string]error{
	"users_email_lower_key":            ErrDuplicateEmail,
	"student_profiles_nim_key":         ErrDuplicateNIM,
	"student_profiles_user_id_key":     ErrConflict,
	"skills_name_key":                  ErrConflict,
	"skills_name_lower_key":            ErrConflict,
	"student_skills_profile_skill_key": ErrDuplicateSkill,
	"endorsements_skill_endorser_key":  ErrDuplicateEndorsement,
}

// mapUniqueViolation turns a 23505 into the sentinel for its constraint; other
// errors pass through unchanged.
func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolation {
		return err
	}
	if sentinel, ok := uniqueConstraints[pgErr.ConstraintName]; ok {
		return fmt.Errorf("%w: %s", sentinel, pgErr.ConstraintName)
	}
	return fmt.Errorf("%w: %s", ErrConflict, pgErr.ConstraintName)
}
