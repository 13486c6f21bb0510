package repository

import (
	"database/sql"
	"errors"
	"time"

	"portfolioapi/models"
)

type PostgresUserRepo struct {
	DB *sql.DB
}

func NewPostgresUserRepo(db *sql.DB) *PostgresUserRepo {
	return &PostgresUserRepo{DB: db}
}

// CreateUser creates a user after validating username uniqueness. The caller
// supplies an already-hashed password.
func (r *PostgresUserRepo) CreateUser(user *models.AppUser) error {
	existing, err := r.GetUserByUsername(user.Username)
	if err != nil {
		return err
	}
	if existing != nil {
		return errors.New("username already exists")
	}

	if user.PasswordHash == "" {
		return errors.New("password hash cannot be empty")
	}
	if user.Role == "" {
		user.Role = "admin"
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	return r.DB.QueryRow(`
		INSERT INTO users (username, password_hash, role, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, user.Username, user.PasswordHash, user.Role, user.CreatedAt).Scan(&user.ID)
}

// GetUserByUsername fetches user by username, nil when absent
func (r *PostgresUserRepo) GetUserByUsername(username string) (*models.AppUser, error) {
	user := &models.AppUser{}
	err := r.DB.QueryRow(`
		SELECT id, username, password_hash, role, created_at
		FROM users
		WHERE username=$1
	`, username).Scan(&user.ID, &user.Username, &user.PasswordHash, &user.Role, &user.CreatedAt)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return user, nil
}

// GetUserByID fetches user by id, nil when absent
func (r *PostgresUserRepo) GetUserByID(id int64) (*models.AppUser, error) {
	user := &models.AppUser{}
	err := r.DB.QueryRow(`
		SELECT id, username, password_hash, role, created_at
		FROM users
		WHERE id=$1
	`, id).Scan(&user.ID, &user.Username, &user.PasswordHash, &user.Role, &user.CreatedAt)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return user, nil
}

func (r *PostgresUserRepo) UpdatePassword(id int64, passwordHash string) error {
	res, err := r.DB.Exec(`UPDATE users SET password_hash=$1 WHERE id=$2`, passwordHash, id)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
