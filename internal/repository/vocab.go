package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/DanRulev/vokabot/internal/models"
	"github.com/jmoiron/sqlx"
)

type VocabR struct {
	db    QueryI
	bind  int
	lower string
}

func NewVocabRepository(db QueryI, bind int, lower string) *VocabR {
	return &VocabR{db: db, bind: bind, lower: lower}
}

func (v *VocabR) AddVocab(ctx context.Context, english, german string) (int64, error) {
	query := sqlx.Rebind(v.bind, `INSERT INTO vocab (english, german) VALUES (?, ?) RETURNING id`)

	var id int64
	if err := v.db.GetContext(ctx, &id, query, english, german); err != nil {
		return 0, fmt.Errorf("failed to insert vocab %q: %w", english, err)
	}

	return id, nil
}

// ListVocab returns entries in insertion order. A limit <= 0 returns all of them.
func (v *VocabR) ListVocab(ctx context.Context, limit int) ([]models.VocabEntry, error) {
	query := `SELECT id, english, german FROM vocab ORDER BY id`
	args := []interface{}{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	entries := make([]models.VocabEntry, 0)
	if err := v.db.SelectContext(ctx, &entries, sqlx.Rebind(v.bind, query), args...); err != nil {
		return nil, fmt.Errorf("failed to list vocab: %w", err)
	}

	return entries, nil
}

// SearchVocab matches term as a case-insensitive substring of either language.
func (v *VocabR) SearchVocab(ctx context.Context, term string) ([]models.VocabEntry, error) {
	query := sqlx.Rebind(v.bind, fmt.Sprintf(`
		SELECT id, english, german
		FROM vocab
		WHERE %[1]s(english) LIKE ? ESCAPE '\' OR %[1]s(german) LIKE ? ESCAPE '\'
		ORDER BY id
	`, v.lower))

	pattern := "%" + escapeLike(strings.ToLower(term)) + "%"

	entries := make([]models.VocabEntry, 0)
	if err := v.db.SelectContext(ctx, &entries, query, pattern, pattern); err != nil {
		return nil, fmt.Errorf("failed to search vocab %q: %w", term, err)
	}

	return entries, nil
}

func (v *VocabR) CountVocab(ctx context.Context) (int, error) {
	var total int
	if err := v.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM vocab`); err != nil {
		return 0, fmt.Errorf("failed to count vocab: %w", err)
	}

	return total, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
