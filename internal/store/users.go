package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"UMS_TALENTA_BACK-END/internal/models"
)

// NewStudent is an accepted registration with its password already hashed
type NewStudent struct {
	Email        string
	PasswordHash string
	FullName     string
	NIM          string
	Prodi        string
	Angkatan     string
}

// UserRepository persists accounts
type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id, email, password_hash, full_name, role, is_active, created_at, updated_at`

func scanUser(row pgx.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.FullName, &u.Role, &u.IsActive, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

// EmailExists compares case-insensitively
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE lower(email) = lower($1))`, email).Scan(&exists)
	return exists, err
}

func (r *UserRepository) NIMExists(ctx context.Context, nim string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM student_profiles WHERE upper(nim) = upper($1))`, nim).Scan(&exists)
	return exists, err
}

// CreateStudent inserts the user and its profile atomically. Unique violations
// surface as ErrDuplicateEmail or ErrDuplicateNIM.
func (r *UserRepository) CreateStudent(ctx context.Context, s NewStudent) (*models.User, error) {
	var user *models.User
	err := inTx(ctx, r.db, func(tx pgx.Tx) error {
		const qUser = `
			INSERT INTO users (email, password_hash, full_name, role)
			VALUES ($1, $2, $3, $4)
			RETURNING ` + userColumns
		u, err := scanUser(tx.QueryRow(ctx, qUser, s.Email, s.PasswordHash, s.FullName, models.RoleStudent))
		if err != nil {
			return mapUniqueViolation(fmt.Errorf("insert user: %w", err))
		}

		const qProfile = `
			INSERT INTO student_profiles (user_id, nim, prodi, angkatan)
			VALUES ($1, $2, $3, $4)`
		if _, err := tx.Exec(ctx, qProfile, u.ID, s.NIM, s.Prodi, s.Angkatan); err != nil {
			return mapUniqueViolation(fmt.Errorf("insert profile: %w", err))
		}
		user = u
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// UpsertAdmin creates an admin account or promotes the existing account with
// that email. created reports whether a new row was inserted.
func (r *UserRepository) UpsertAdmin(ctx context.Context, email, fullName, passwordHash string) (*models.User, bool, error) {
	const q = `
		INSERT INTO users (email, password_hash, full_name, role)
		VALUES ($1, $2, $3, 'admin')
		ON CONFLICT ((lower(email))) DO UPDATE
		SET role = 'admin',
		    is_active = TRUE,
		    password_hash = EXCLUDED.password_hash,
		    full_name = CASE WHEN EXCLUDED.full_name = '' THEN users.full_name ELSE EXCLUDED.full_name END,
		    updated_at = NOW()
		RETURNING ` + userColumns + `, (xmax = 0)`

	var u models.User
	var created bool
	err := r.db.QueryRow(ctx, q, email, passwordHash, fullName).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.FullName, &u.Role, &u.IsActive, &u.CreatedAt, &u.UpdatedAt, &created,
	)
	if err != nil {
		return nil, false, fmt.Errorf("upsert admin: %w", err)
	}
	return &u, created, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	q := `SELECT ` + userColumns + ` FROM users WHERE lower(email) = lower($1) LIMIT 1`
	return scanUser(r.db.QueryRow(ctx, q, email))
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	q := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(r.db.QueryRow(ctx, q, id))
}
