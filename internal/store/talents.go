package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"UMS_TALENTA_BACK-END/internal/models"
)

// TalentRepository owns the profile sub-resources. Every item query is scoped
// by (id, profile_id), so an item of another profile reads as ErrNotFound.
type TalentRepository struct {
	db *pgxpool.Pool
}

func NewTalentRepository(db *pgxpool.Pool) *TalentRepository {
	return &TalentRepository{db: db}
}

// Skills

const studentSkillSelect = `
	SELECT ss.id, ss.profile_id, s.id, s.name, ss.level, ss.endorsement_count
	FROM student_skills ss
	JOIN skills s ON s.id = ss.skill_id `

func queryStudentSkills(ctx context.Context, db DBTX, where string, args ...any) ([]models.StudentSkill, error) {
	rows, err := db.Query(ctx, studentSkillSelect+where+` ORDER BY ss.created_at, ss.id`, args...)
	if err != nil {
		return nil, fmt.Errorf("query skills: %w", err)
	}
	defer rows.Close()

	out := []models.StudentSkill{}
	for rows.Next() {
		var s models.StudentSkill
		if err := rows.Scan(&s.ID, &s.ProfileID, &s.Skill.ID, &s.Skill.Name, &s.Level, &s.EndorsementCount); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *TalentRepository) ListSkills(ctx context.Context, profileID uuid.UUID) ([]models.StudentSkill, error) {
	return queryStudentSkills(ctx, r.db, `WHERE ss.profile_id = $1`, profileID)
}

func (r *TalentRepository) GetSkill(ctx context.Context, profileID, id uuid.UUID) (*models.StudentSkill, error) {
	skills, err := queryStudentSkills(ctx, r.db, `WHERE ss.id = $1 AND ss.profile_id = $2`, id, profileID)
	if err != nil {
		return nil, err
	}
	if len(skills) == 0 {
		return nil, ErrNotFound
	}
	return &skills[0], nil
}

// AddSkill resolves the catalog entry case-insensitively, creating it with the
// given spelling when absent, and lists it on the profile.
func (r *TalentRepository) AddSkill(ctx context.Context, profileID uuid.UUID, name, level string) (*models.StudentSkill, error) {
	out := models.StudentSkill{ProfileID: profileID, Level: level}
	err := inTx(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `INSERT INTO skills (name) VALUES ($1) ON CONFLICT DO NOTHING`, name); err != nil {
			return fmt.Errorf("insert catalog skill: %w", err)
		}
		err := tx.QueryRow(ctx, `SELECT id, name FROM skills WHERE lower(name) = lower($1)`, name).
			Scan(&out.Skill.ID, &out.Skill.Name)
		if err != nil {
			return fmt.Errorf("resolve catalog skill: %w", err)
		}

		const q = `
			INSERT INTO student_skills (profile_id, skill_id, level)
			VALUES ($1, $2, $3)
			RETURNING id, endorsement_count`
		if err := tx.QueryRow(ctx, q, profileID, out.Skill.ID, level).Scan(&out.ID, &out.EndorsementCount); err != nil {
			return mapUniqueViolation(fmt.Errorf("insert student skill: %w", err))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *TalentRepository) UpdateSkillLevel(ctx context.Context, profileID, id uuid.UUID, level string) (*models.StudentSkill, error) {
	ct, err := r.db.Exec(ctx, `UPDATE student_skills SET level = $1 WHERE id = $2 AND profile_id = $3`, level, id, profileID)
	if err != nil {
		return nil, fmt.Errorf("update skill: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return nil, ErrNotFound
	}
	return r.GetSkill(ctx, profileID, id)
}

func (r *TalentRepository) DeleteSkill(ctx context.Context, profileID, id uuid.UUID) error {
	return r.deleteOwned(ctx, "student_skills", profileID, id)
}

// Experiences

const experienceSelect = `SELECT id, profile_id, title, company, start_date, end_date, description FROM experiences `

func queryExperiences(ctx context.Context, db DBTX, where string, args ...any) ([]models.Experience, error) {
	rows, err := db.Query(ctx, experienceSelect+where+` ORDER BY start_date DESC, created_at DESC`, args...)
	if err != nil {
		return nil, fmt.Errorf("query experiences: %w", err)
	}
	defer rows.Close()

	out := []models.Experience{}
	for rows.Next() {
		var e models.Experience
		if err := rows.Scan(&e.ID, &e.ProfileID, &e.Title, &e.Company, &e.StartDate, &e.EndDate, &e.Description); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *TalentRepository) ListExperiences(ctx context.Context, profileID uuid.UUID) ([]models.Experience, error) {
	return queryExperiences(ctx, r.db, `WHERE profile_id = $1`, profileID)
}

func (r *TalentRepository) GetExperience(ctx context.Context, profileID, id uuid.UUID) (*models.Experience, error) {
	exps, err := queryExperiences(ctx, r.db, `WHERE id = $1 AND profile_id = $2`, id, profileID)
	if err != nil {
		return nil, err
	}
	if len(exps) == 0 {
		return nil, ErrNotFound
	}
	return &exps[0], nil
}

func (r *TalentRepository) CreateExperience(ctx context.Context, profileID uuid.UUID, e models.Experience) (*models.Experience, error) {
	const q = `
		INSERT INTO experiences (profile_id, title, company, start_date, end_date, description)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	e.ProfileID = profileID
	if err := r.db.QueryRow(ctx, q, profileID, e.Title, e.Company, e.StartDate, e.EndDate, e.Description).Scan(&e.ID); err != nil {
		return nil, fmt.Errorf("insert experience: %w", err)
	}
	return &e, nil
}

func (r *TalentRepository) UpdateExperience(ctx context.Context, profileID, id uuid.UUID, e models.Experience) (*models.Experience, error) {
	const q = `
		UPDATE experiences
		SET title = $1, company = $2, start_date = $3, end_date = $4, description = $5
		WHERE id = $6 AND profile_id = $7`
	ct, err := r.db.Exec(ctx, q, e.Title, e.Company, e.StartDate, e.EndDate, e.Description, id, profileID)
	if err != nil {
		return nil, fmt.Errorf("update experience: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return nil, ErrNotFound
	}
	e.ID, e.ProfileID = id, profileID
	return &e, nil
}

func (r *TalentRepository) DeleteExperience(ctx context.Context, profileID, id uuid.UUID) error {
	return r.deleteOwned(ctx, "experiences", profileID, id)
}

// Projects

const projectSelect = `SELECT id, profile_id, title, description, link_demo, link_repo FROM portfolio_projects `

func queryProjects(ctx context.Context, db DBTX, where string, args ...any) ([]models.PortfolioProject, error) {
	rows, err := db.Query(ctx, projectSelect+where+` ORDER BY created_at, id`, args...)
	if err != nil {
		return nil, fmt.Errorf("query projects: %w", err)
	}
	defer rows.Close()

	out := []models.PortfolioProject{}
	for rows.Next() {
		var p models.PortfolioProject
		if err := rows.Scan(&p.ID, &p.ProfileID, &p.Title, &p.Description, &p.LinkDemo, &p.LinkRepo); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *TalentRepository) ListProjects(ctx context.Context, profileID uuid.UUID) ([]models.PortfolioProject, error) {
	return queryProjects(ctx, r.db, `WHERE profile_id = $1`, profileID)
}

func (r *TalentRepository) GetProject(ctx context.Context, profileID, id uuid.UUID) (*models.PortfolioProject, error) {
	projects, err := queryProjects(ctx, r.db, `WHERE id = $1 AND profile_id = $2`, id, profileID)
	if err != nil {
		return nil, err
	}
	if len(projects) == 0 {
		return nil, ErrNotFound
	}
	return &projects[0], nil
}

func (r *TalentRepository) CreateProject(ctx context.Context, profileID uuid.UUID, p models.PortfolioProject) (*models.PortfolioProject, error) {
	const q = `
		INSERT INTO portfolio_projects (profile_id, title, description, link_demo, link_repo)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	p.ProfileID = profileID
	if err := r.db.QueryRow(ctx, q, profileID, p.Title, p.Description, p.LinkDemo, p.LinkRepo).Scan(&p.ID); err != nil {
		return nil, fmt.Errorf("insert project: %w", err)
	}
	return &p, nil
}

func (r *TalentRepository) UpdateProject(ctx context.Context, profileID, id uuid.UUID, p models.PortfolioProject) (*models.PortfolioProject, error) {
	const q = `
		UPDATE portfolio_projects
		SET title = $1, description = $2, link_demo = $3, link_repo = $4
		WHERE id = $5 AND profile_id = $6`
	ct, err := r.db.Exec(ctx, q, p.Title, p.Description, p.LinkDemo, p.LinkRepo, id, profileID)
	if err != nil {
		return nil, fmt.Errorf("update project: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return nil, ErrNotFound
	}
	p.ID, p.ProfileID = id, profileID
	return &p, nil
}

func (r *TalentRepository) DeleteProject(ctx context.Context, profileID, id uuid.UUID) error {
	return r.deleteOwned(ctx, "portfolio_projects", profileID, id)
}

// Social links

const socialLinkSelect = `SELECT id, profile_id, platform, label, url_or_handle FROM social_links `

func querySocialLinks(ctx context.Context, db DBTX, where string, args ...any) ([]models.SocialLink, error) {
	rows, err := db.Query(ctx, socialLinkSelect+where+` ORDER BY created_at, id`, args...)
	if err != nil {
		return nil, fmt.Errorf("query social links: %w", err)
	}
	defer rows.Close()

	out := []models.SocialLink{}
	for rows.Next() {
		var l models.SocialLink
		if err := rows.Scan(&l.ID, &l.ProfileID, &l.Platform, &l.Label, &l.URLOrHandle); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (r *TalentRepository) ListSocialLinks(ctx context.Context, profileID uuid.UUID) ([]models.SocialLink, error) {
	return querySocialLinks(ctx, r.db, `WHERE profile_id = $1`, profileID)
}

func (r *TalentRepository) GetSocialLink(ctx context.Context, profileID, id uuid.UUID) (*models.SocialLink, error) {
	links, err := querySocialLinks(ctx, r.db, `WHERE id = $1 AND profile_id = $2`, id, profileID)
	if err != nil {
		return nil, err
	}
	if len(links) == 0 {
		return nil, ErrNotFound
	}
	return &links[0], nil
}

func (r *TalentRepository) CreateSocialLink(ctx context.Context, profileID uuid.UUID, l models.SocialLink) (*models.SocialLink, error) {
	const q = `
		INSERT INTO social_links (profile_id, platform, label, url_or_handle)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	l.ProfileID = profileID
	if err := r.db.QueryRow(ctx, q, profileID, l.Platform, l.Label, l.URLOrHandle).Scan(&l.ID); err != nil {
		return nil, fmt.Errorf("insert social link: %w", err)
	}
	return &l, nil
}

func (r *TalentRepository) UpdateSocialLink(ctx context.Context, profileID, id uuid.UUID, l models.SocialLink) (*models.SocialLink, error) {
	const q = `
		UPDATE social_links
		SET platform = $1, label = $2, url_or_handle = $3
		WHERE id = $4 AND profile_id = $5`
	ct, err := r.db.Exec(ctx, q, l.Platform, l.Label, l.URLOrHandle, id, profileID)
	if err != nil {
		return nil, fmt.Errorf("update social link: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return nil, ErrNotFound
	}
	l.ID, l.ProfileID = id, profileID
	return &l, nil
}

func (r *TalentRepository) DeleteSocialLink(ctx context.Context, profileID, id uuid.UUID) error {
	return r.deleteOwned(ctx, "social_links", profileID, id)
}

// table is always one of the constants above, never user input
func (r *TalentRepository) deleteOwned(ctx context.Context, table string, profileID, id uuid.UUID) error {
	ct, err := r.db.Exec(ctx, `DELETE FROM `+table+` WHERE id = $1 AND profile_id = $2`, id, profileID)
	if err != nil {
		return fmt.Errorf("delete from %s: %w", table, err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
