package repository

import (
	"context"
	"database/sql"

	"github.com/DanRulev/vokabot/internal/config"
	storage "github.com/DanRulev/vokabot/internal/storage/db"
	"github.com/jmoiron/sqlx"
)

//go:generate mockgen -source=repository.go -destination=mock/repository_mock.go

type QueryI interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

type Repository struct {
	*VocabR
	*TrainingR
}

// NewRepository builds the repositories for db. Queries are written with '?'
// placeholders and rebound for driver.
func NewRepository(db QueryI, driver string) Repository {
	bind := sqlx.BindType(driver)
	return Repository{
		VocabR:    NewVocabRepository(db, bind, lowerFunc(driver)),
		TrainingR: NewTrainingRepository(db, bind),
	}
}

// lowerFunc names the SQL function that lower-cases Unicode text on driver.
func lowerFunc(driver string) string {
	if driver == config.DriverSQLite {
		return storage.SQLiteLower
	}
	return "LOWER"
}
