package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"UMS_TALENTA_BACK-END/internal/models"
)

// Ordering values accepted by the public listing
const (
	OrderNewest     = "-created_at"
	OrderOldest     = "created_at"
	OrderMostViewed = "-views_count"
	OrderName       = "full_name"
)

var orderClauses = map[string]string{
	OrderNewest:     "p.created_at DESC, p.id",
	OrderOldest:     "p.created_at ASC, p.id",
	OrderMostViewed: "p.views_count DESC, p.created_at DESC, p.id",
	OrderName:       "lower(u.full_name) ASC, p.id",
}

// SearchParams drives the directory listing. Empty filters are ignored;
// IncludeHidden lifts the public+active restriction for moderators.
type SearchParams struct {
	Search        string
	Prodi         string
	Skill         string
	Ordering      string
	Limit         int
	Offset        int
	IncludeHidden bool
}

// Statistics aggregates the public directory
type Statistics struct {
	TotalTalents     int
	TotalSkills      int
	TotalExperiences int
}

// skillMatch is an EXISTS predicate so a profile with several matching skills
// is still returned once.
const skillMatch = `EXISTS (
		SELECT 1 FROM student_skills ss
		JOIN skills s ON s.id = ss.skill_id
		WHERE ss.profile_id = p.id AND s.name ILIKE %s ESCAPE '\')`

// BuildSearchFilter returns the WHERE clause (including the keyword, or "")
// and its positional arguments for p.
func BuildSearchFilter(p SearchParams) (string, []any) {
	var conds []string
	var args []any
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if !p.IncludeHidden {
		conds = append(conds, "p.is_public AND p.is_active")
	}
	if term := strings.TrimSpace(p.Search); term != "" {
		n := arg(containsPattern(term))
		conds = append(conds, fmt.Sprintf(
			`(u.full_name ILIKE %[1]s ESCAPE '\' OR p.nim ILIKE %[1]s ESCAPE '\' OR p.prodi ILIKE %[1]s ESCAPE '\' OR %[2]s)`,
			n, fmt.Sprintf(skillMatch, n)))
	}
	if prodi := strings.TrimSpace(p.Prodi); prodi != "" {
		conds = append(conds, fmt.Sprintf("lower(p.prodi) = lower(%s)", arg(prodi)))
	}
	if skill := strings.TrimSpace(p.Skill); skill != "" {
		conds = append(conds, fmt.Sprintf(skillMatch, arg(containsPattern(skill))))
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// OrderClause maps an ordering value to SQL, falling back to newest first
func OrderClause(ordering string) string {
	if c, ok := orderClauses[ordering]; ok {
		return c
	}
	return orderClauses[OrderNewest]
}

// containsPattern escapes LIKE metacharacters and wraps term in wildcards
func containsPattern(term string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(term) + "%"
}

// DirectoryRepository serves the public listing, statistics and moderation list
type DirectoryRepository struct {
	db *pgxpool.Pool
}

func NewDirectoryRepository(db *pgxpool.Pool) *DirectoryRepository {
	return &DirectoryRepository{db: db}
}

const profileFrom = ` FROM student_profiles p JOIN users u ON u.id = p.user_id`

// Search returns one page of matching profiles with children, and the total match count
func (r *DirectoryRepository) Search(ctx context.Context, p SearchParams) ([]models.ProfileDetail, int, error) {
	where, args := BuildSearchFilter(p)

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*)`+profileFrom+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count profiles: %w", err)
	}

	q := fmt.Sprintf("%s%s ORDER BY %s LIMIT $%d OFFSET $%d",
		profileSelect, where, OrderClause(p.Ordering), len(args)+1, len(args)+2)
	args = append(args, p.Limit, p.Offset)

	details, err := r.list(ctx, q, args...)
	if err != nil {
		return nil, 0, err
	}
	return details, total, nil
}

// Latest returns the n newest public+active profiles
func (r *DirectoryRepository) Latest(ctx context.Context, n int) ([]models.ProfileDetail, error) {
	q := profileSelect + ` WHERE p.is_public AND p.is_active ORDER BY p.created_at DESC, p.id LIMIT $1`
	return r.list(ctx, q, n)
}

// Top ranks public+active profiles by skill count then experience count
func (r *DirectoryRepository) Top(ctx context.Context, n int) ([]models.ProfileDetail, error) {
	q := profileSelect + `
	WHERE p.is_public AND p.is_active
	ORDER BY (SELECT COUNT(*) FROM student_skills ss WHERE ss.profile_id = p.id) DESC,
	         (SELECT COUNT(*) FROM experiences e WHERE e.profile_id = p.id) DESC,
	         p.created_at DESC, p.id
	LIMIT $1`
	return r.list(ctx, q, n)
}

// Statistics counts public+active profiles, the distinct skills they list and their experiences
func (r *DirectoryRepository) Statistics(ctx context.Context) (Statistics, error) {
	const q = `
		SELECT
			(SELECT COUNT(*) FROM student_profiles p WHERE p.is_public AND p.is_active),
			(SELECT COUNT(DISTINCT ss.skill_id)
			   FROM student_skills ss
			   JOIN student_profiles p ON p.id = ss.profile_id
			  WHERE p.is_public AND p.is_active),
			(SELECT COUNT(*)
			   FROM experiences e
			   JOIN student_profiles p ON p.id = e.profile_id
			  WHERE p.is_public AND p.is_active)`
	var s Statistics
	if err := r.db.QueryRow(ctx, q).Scan(&s.TotalTalents, &s.TotalSkills, &s.TotalExperiences); err != nil {
		return Statistics{}, fmt.Errorf("statistics: %w", err)
	}
	return s, nil
}

func (r *DirectoryRepository) list(ctx context.Context, q string, args ...any) ([]models.ProfileDetail, error) {
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	details, err := collectProfiles(rows)
	if err != nil {
		return nil, fmt.Errorf("scan profiles: %w", err)
	}
	if err := loadChildren(ctx, r.db, details); err != nil {
		return nil, err
	}
	return details, nil
}
