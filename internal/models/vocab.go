package models

import "time"

type VocabEntry struct {
	ID      int64  `db:"id"`
	English string `db:"english"`
	German  string `db:"german"`
}

type TrainingResult struct {
	UserID     int64     `db:"user_id"`
	Total      int       `db:"total"`
	Correct    int       `db:"correct"`
	FinishedAt time.Time `db:"finished_at"`
}

type TrainingStats struct {
	Sessions  int `db:"sessions"`
	Questions int `db:"questions"`
	Correct   int `db:"correct"`
}
