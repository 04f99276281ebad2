package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"UMS_TALENTA_BACK-END/internal/models"
)

// EndorsementRepository records endorsements of listed skills
type EndorsementRepository struct {
	db *pgxpool.Pool
}

func NewEndorsementRepository(db *pgxpool.Pool) *EndorsementRepository {
	return &EndorsementRepository{db: db}
}

// the listing must belong to profileID and that profile must be public and active
const listedSkillCheck = `
	SELECT ss.id
	FROM student_skills ss
	JOIN student_profiles p ON p.id = ss.profile_id
	WHERE ss.id = $1 AND ss.profile_id = $2 AND p.is_public AND p.is_active`

// Endorse inserts the endorsement and bumps the listing's counter in one transaction
func (r *EndorsementRepository) Endorse(ctx context.Context, profileID, studentSkillID, endorserID uuid.UUID, message string) (*models.Endorsement, error) {
	e := models.Endorsement{StudentSkillID: studentSkillID, EndorserID: endorserID, Message: message}
	err := inTx(ctx, r.db, func(tx pgx.Tx) error {
		var id uuid.UUID
		if err := tx.QueryRow(ctx, listedSkillCheck+` FOR UPDATE OF ss`, studentSkillID, profileID).Scan(&id); err != nil {
			return notFound(err)
		}

		const qInsert = `
			INSERT INTO endorsements (student_skill_id, endorser_id, message)
			VALUES ($1, $2, $3)
			RETURNING id, created_at`
		if err := tx.QueryRow(ctx, qInsert, studentSkillID, endorserID, message).Scan(&e.ID, &e.CreatedAt); err != nil {
			return mapUniqueViolation(fmt.Errorf("insert endorsement: %w", err))
		}

		if _, err := tx.Exec(ctx, `UPDATE student_skills SET endorsement_count = endorsement_count + 1 WHERE id = $1`, studentSkillID); err != nil {
			return fmt.Errorf("bump endorsement count: %w", err)
		}

		const qEndorser = `
			SELECT u.full_name, p.nim
			FROM student_profiles p JOIN users u ON u.id = p.user_id
			WHERE p.id = $1`
		return tx.QueryRow(ctx, qEndorser, endorserID).Scan(&e.EndorserName, &e.EndorserNIM)
	})
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// List returns the endorsements of a listed skill, newest first
func (r *EndorsementRepository) List(ctx context.Context, profileID, studentSkillID uuid.UUID) ([]models.Endorsement, error) {
	var id uuid.UUID
	if err := r.db.QueryRow(ctx, listedSkillCheck, studentSkillID, profileID).Scan(&id); err != nil {
		return nil, notFound(err)
	}

	const q = `
		SELECT e.id, e.student_skill_id, e.endorser_id, u.full_name, p.nim, e.message, e.created_at
		FROM endorsements e
		JOIN student_profiles p ON p.id = e.endorser_id
		JOIN users u ON u.id = p.user_id
		WHERE e.student_skill_id = $1
		ORDER BY e.created_at DESC, e.id`
	rows, err := r.db.Query(ctx, q, studentSkillID)
	if err != nil {
		return nil, fmt.Errorf("list endorsements: %w", err)
	}
	defer rows.Close()

	out := []models.Endorsement{}
	for rows.Next() {
		var e models.Endorsement
		if err := rows.Scan(&e.ID, &e.StudentSkillID, &e.EndorserID, &e.EndorserName, &e.EndorserNIM, &e.Message, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
