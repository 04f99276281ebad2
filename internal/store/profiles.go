package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"UMS_TALENTA_BACK-END/internal/models"
)

// ProfileChanges is a partial profile update; nil fields are left untouched
type ProfileChanges struct {
	FullName *string
	Prodi    *string
	Angkatan *string
	Headline *string
	Bio      *string
	IsPublic *bool
	Photo    *string // "" => NULL
}

// ProfileRepository reads and writes student profiles with their children
type ProfileRepository struct {
	db *pgxpool.Pool
}

func NewProfileRepository(db *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{db: db}
}

const profileSelect = `
	SELECT p.id, p.user_id, p.nim, p.prodi, p.angkatan, p.headline, p.bio, p.photo,
	       p.is_public, p.is_active, p.views_count, p.created_at, p.updated_at,
	       u.full_name, u.email
	FROM student_profiles p
	JOIN users u ON u.id = p.user_id`

func scanProfile(row pgx.Row) (models.ProfileDetail, error) {
	var d models.ProfileDetail
	p := &d.Profile
	err := row.Scan(
		&p.ID, &p.UserID, &p.NIM, &p.Prodi, &p.Angkatan, &p.Headline, &p.Bio, &p.Photo,
		&p.IsPublic, &p.IsActive, &p.ViewsCount, &p.CreatedAt, &p.UpdatedAt,
		&d.FullName, &d.Email,
	)
	return d, err
}

func collectProfiles(rows pgx.Rows) ([]models.ProfileDetail, error) {
	defer rows.Close()
	out := []models.ProfileDetail{}
	for rows.Next() {
		d, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// GetByUserID returns the caller's profile without children
func (r *ProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.ProfileDetail, error) {
	d, err := scanProfile(r.db.QueryRow(ctx, profileSelect+` WHERE p.user_id = $1`, userID))
	if err != nil {
		return nil, notFound(err)
	}
	return &d, nil
}

// GetDetailByUserID returns the caller's full nested profile
func (r *ProfileRepository) GetDetailByUserID(ctx context.Context, userID uuid.UUID) (*models.ProfileDetail, error) {
	return r.getDetail(ctx, profileSelect+` WHERE p.user_id = $1`, userID)
}

// GetDetail returns a full nested profile by profile id, regardless of flags
func (r *ProfileRepository) GetDetail(ctx context.Context, profileID uuid.UUID) (*models.ProfileDetail, error) {
	return r.getDetail(ctx, profileSelect+` WHERE p.id = $1`, profileID)
}

func (r *ProfileRepository) getDetail(ctx context.Context, q string, arg uuid.UUID) (*models.ProfileDetail, error) {
	d, err := scanProfile(r.db.QueryRow(ctx, q, arg))
	if err != nil {
		return nil, notFound(err)
	}
	details := []models.ProfileDetail{d}
	if err := loadChildren(ctx, r.db, details); err != nil {
		return nil, err
	}
	return &details[0], nil
}

// Update applies c to the profile owned by userID. The display name lives on
// the user row; both writes share one transaction.
func (r *ProfileRepository) Update(ctx context.Context, userID uuid.UUID, c ProfileChanges) error {
	return inTx(ctx, r.db, func(tx pgx.Tx) error {
		if c.FullName != nil {
			ct, err := tx.Exec(ctx, `UPDATE users SET full_name = $1, updated_at = NOW() WHERE id = $2`, *c.FullName, userID)
			if err != nil {
				return fmt.Errorf("update full name: %w", err)
			}
			if ct.RowsAffected() == 0 {
				return ErrNotFound
			}
		}

		set := []string{"updated_at = NOW()"}
		args := []any{}
		i := 1
		add := func(col string, v any) {
			set = append(set, fmt.Sprintf("%s = $%d", col, i))
			args = append(args, v)
			i++
		}
		if c.Prodi != nil {
			add("prodi", *c.Prodi)
		}
		if c.Angkatan != nil {
			add("angkatan", *c.Angkatan)
		}
		if c.Headline != nil {
			add("headline", *c.Headline)
		}
		if c.Bio != nil {
			add("bio", *c.Bio)
		}
		if c.IsPublic != nil {
			add("is_public", *c.IsPublic)
		}
		if c.Photo != nil {
			var v any = *c.Photo
			if *c.Photo == "" {
				v = nil
			}
			add("photo", v)
		}

		q := fmt.Sprintf(`UPDATE student_profiles SET %s WHERE user_id = $%d`, strings.Join(set, ", "), i)
		args = append(args, userID)
		ct, err := tx.Exec(ctx, q, args...)
		if err != nil {
			return fmt.Errorf("update profile: %w", err)
		}
		if ct.RowsAffected() == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// SetPhoto stores a new photo reference and returns the one it replaced
func (r *ProfileRepository) SetPhoto(ctx context.Context, userID uuid.UUID, ref string) (*string, error) {
	const q = `
		UPDATE student_profiles p
		SET photo = $1, updated_at = NOW()
		FROM (SELECT id, photo FROM student_profiles WHERE user_id = $2 FOR UPDATE) old
		WHERE p.id = old.id
		RETURNING old.photo`
	var previous *string
	if err := r.db.QueryRow(ctx, q, ref, userID).Scan(&previous); err != nil {
		return nil, notFound(err)
	}
	return previous, nil
}

// RecordView appends to the view log and bumps the denormalized counter
func (r *ProfileRepository) RecordView(ctx context.Context, profileID uuid.UUID, viewerIP *string) error {
	return inTx(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `INSERT INTO profile_views (profile_id, viewer_ip) VALUES ($1, $2)`, profileID, viewerIP); err != nil {
			return fmt.Errorf("insert view: %w", err)
		}
		ct, err := tx.Exec(ctx, `UPDATE student_profiles SET views_count = views_count + 1 WHERE id = $1`, profileID)
		if err != nil {
			return fmt.Errorf("bump views: %w", err)
		}
		if ct.RowsAffected() == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// SetActive flips the moderation flag
func (r *ProfileRepository) SetActive(ctx context.Context, profileID uuid.UUID, active bool) error {
	ct, err := r.db.Exec(ctx, `UPDATE student_profiles SET is_active = $1, updated_at = NOW() WHERE id = $2`, active, profileID)
	if err != nil {
		return fmt.Errorf("set active: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteOwner removes the user owning the profile; the profile and its
// children go with it through ON DELETE CASCADE.
func (r *ProfileRepository) DeleteOwner(ctx context.Context, profileID uuid.UUID) error {
	ct, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = (SELECT user_id FROM student_profiles WHERE id = $1)`, profileID)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// profileIDs returns the profile ids as strings. Under the simple protocol
// pgx encodes arguments without a known OID, and a []uuid.UUID has no plan
// for that while a []string goes out as text[] for the ::uuid[] cast.
func profileIDs(details []models.ProfileDetail) []string {
	ids := make([]string, len(details))
	for i := range details {
		ids[i] = details[i].Profile.ID.String()
	}
	return ids
}

// loadChildren fills the child collections of details with one query per table
func loadChildren(ctx context.Context, db DBTX, details []models.ProfileDetail) error {
	if len(details) == 0 {
		return nil
	}
	ids := profileIDs(details)
	index := make(map[uuid.UUID]int, len(details))
	for i := range details {
		index[details[i].Profile.ID] = i
		details[i].Skills = []models.StudentSkill{}
		details[i].Experiences = []models.Experience{}
		details[i].Projects = []models.PortfolioProject{}
		details[i].SocialLinks = []models.SocialLink{}
	}

	skills, err := queryStudentSkills(ctx, db, `WHERE ss.profile_id = ANY($1::uuid[])`, ids)
	if err != nil {
		return err
	}
	for _, s := range skills {
		d := &details[index[s.ProfileID]]
		d.Skills = append(d.Skills, s)
	}

	exps, err := queryExperiences(ctx, db, `WHERE profile_id = ANY($1::uuid[])`, ids)
	if err != nil {
		return err
	}
	for _, e := range exps {
		d := &details[index[e.ProfileID]]
		d.Experiences = append(d.Experiences, e)
	}

	projects, err := queryProjects(ctx, db, `WHERE profile_id = ANY($1::uuid[])`, ids)
	if err != nil {
		return err
	}
	for _, p := range projects {
		d := &details[index[p.ProfileID]]
		d.Projects = append(d.Projects, p)
	}

	links, err := querySocialLinks(ctx, db, `WHERE profile_id = ANY($1::uuid[])`, ids)
	if err != nil {
		return err
	}
	for _, l := range links {
		d := &details[index[l.ProfileID]]
		d.SocialLinks = append(d.SocialLinks, l)
	}
	return nil
}
