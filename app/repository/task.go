package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/vibast-solutions/ms-go-tasks/app/entity"
)

type TaskRepository struct {
	db *sql.DB
}

func NewTaskRepository(db *sql.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task *entity.Task) error {
	query := `
		INSERT INTO tasks (title, description, date, status, is_important, user_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	result, err := r.db.ExecContext(ctx, query,
		task.Title,
		task.Description,
		task.Date,
		task.Status,
		task.IsImportant,
		task.UserID,
		task.CreatedAt,
		task.UpdatedAt,
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	task.ID = uint64(id)
	return nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id uint64) (*entity.Task, error) {
	query := `
		SELECT id, title, description, date, status, is_important, user_id, created_at, updated_at
		FROM tasks WHERE id = ?
	`
	task := &entity.Task{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&task.ID,
		&task.Title,
		&task.Description,
		&task.Date,
		&task.Status,
		&task.IsImportant,
		&task.UserID,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return task, nil
}

func (r *TaskRepository) FindAll(ctx context.Context) ([]*entity.Task, error) {
	query := `
		SELECT id, title, description, date, status, is_important, user_id, created_at, updated_at
		FROM tasks ORDER BY created_at DESC
	`
	return r.scanMany(ctx, query)
}

func (r *TaskRepository) FindByUserID(ctx context.Context, userID uint64) ([]*entity.Task, error) {
	query := `
		SELECT id, title, description, date, status, is_important, user_id, created_at, updated_at
		FROM tasks WHERE user_id = ? ORDER BY created_at DESC
	`
	return r.scanMany(ctx, query, userID)
}

func (r *TaskRepository) Update(ctx context.Context, task *entity.Task) error {
	query := `
		UPDATE tasks SET
			title = ?,
			description = ?,
			date = ?,
			status = ?,
			is_important = ?,
			updated_at = ?
		WHERE id = ?
	`
	task.UpdatedAt = time.Now()
	_, err := r.db.ExecContext(ctx, query,
		task.Title,
		task.Description,
		task.Date,
		task.Status,
		task.IsImportant,
		task.UpdatedAt,
		task.ID,
	)
	return err
}

func (r *TaskRepository) Delete(ctx context.Context, id uint64) error {
	query := `DELETE FROM tasks WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *TaskRepository) scanMany(ctx context.Context, query string, args ...interface{}) ([]*entity.Task, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []*entity.Task
	for rows.Next() {
		task := &entity.Task{}
		if err := rows.Scan(
			&task.ID,
			&task.Title,
			&task.Description,
			&task.Date,
			&task.Status,
			&task.IsImportant,
			&task.UserID,
			&task.CreatedAt,
			&task.UpdatedAt,
		); err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}
