package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/vibast-solutions/ms-go-tasks/app/entity"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (name, username, email, password_hash, gender, confirmed, email_token, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	result, err := r.db.ExecContext(ctx, query,
		user.Name,
		user.Username,
		user.Email,
		user.PasswordHash,
		user.Gender,
		user.Confirmed,
		user.EmailToken,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	user.ID = uint64(id)
	return nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `
		SELECT id, name, username, email, password_hash, gender, confirmed, email_token, avatar, created_at, updated_at
		FROM users WHERE email = ?
	`
	return r.scanOne(r.db.QueryRowContext(ctx, query, email))
}

func (r *UserRepository) FindByID(ctx context.Context, id uint64) (*entity.User, error) {
	query := `
		SELECT id, name, username, email, password_hash, gender, confirmed, email_token, avatar, created_at, updated_at
		FROM users WHERE id = ?
	`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *UserRepository) FindByEmailToken(ctx context.Context, emailToken string) (*entity.User, error) {
	query := `
		SELECT id, name, username, email, password_hash, gender, confirmed, email_token, avatar, created_at, updated_at
		FROM users WHERE email_token = ?
	`
	return r.scanOne(r.db.QueryRowContext(ctx, query, emailToken))
}

func (r *UserRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	query := `
		SELECT id, name, username, email, password_hash, gender, confirmed, email_token, avatar, created_at, updated_at
		FROM users ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*entity.User
	for rows.Next() {
		user := &entity.User{}
		if err := rows.Scan(
			&user.ID,
			&user.Name,
			&user.Username,
			&user.Email,
			&user.PasswordHash,
			&user.Gender,
			&user.Confirmed,
			&user.EmailToken,
			&user.Avatar,
			&user.CreatedAt,
			&user.UpdatedAt,
		); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (r *UserRepository) Update(ctx context.Context, user *entity.User) error {
	query := `
		UPDATE users SET
			name = ?,
			username = ?,
			email = ?,
			password_hash = ?,
			gender = ?,
			confirmed = ?,
			email_token = ?,
			avatar = ?,
			updated_at = ?
		WHERE id = ?
	`
	user.UpdatedAt = time.Now()
	_, err := r.db.ExecContext(ctx, query,
		user.Name,
		user.Username,
		user.Email,
		user.PasswordHash,
		user.Gender,
		user.Confirmed,
		user.EmailToken,
		user.Avatar,
		user.UpdatedAt,
		user.ID,
	)
	return err
}

func (r *UserRepository) Delete(ctx context.Context, id uint64) error {
	query := `DELETE FROM users WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *UserRepository) scanOne(row *sql.Row) (*entity.User, error) {
	user := &entity.User{}
	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.Gender,
		&user.Confirmed,
		&user.EmailToken,
		&user.Avatar,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}
