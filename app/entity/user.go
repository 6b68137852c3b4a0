package entity

import (
	"database/sql"
	"time"
)

type User struct {
	ID           uint64
	Name         string
	Username     string
	Email        string
	PasswordHash string
	Gender       string
	Confirmed    bool
	EmailToken   sql.NullString
	Avatar       sql.NullString
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
