package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/DanRulev/vokabot/internal/models"
	"go.uber.org/zap"
)

type VocabS struct {
	repo      RepositoryI
	listLimit int
	log       *zap.Logger
}

func NewVocabService(repo RepositoryI, listLimit int, log *zap.Logger) *VocabS {
	return &VocabS{
		repo:      repo,
		listLimit: listLimit,
		log:       log,
	}
}

func (v *VocabS) List(ctx context.Context) (string, error) {
	entries, err := v.repo.ListVocab(ctx, v.listLimit)
	if err != nil {
		v.log.Error("failed to list vocab", zap.Error(err))
		return "", err
	}

	if len(entries) == 0 {
		return msgListEmpty, nil
	}

	return formatEntries("Gespeicherte Vokabeln:", entries), nil
}

func (v *VocabS) Search(ctx context.Context, args string) (string, error) {
	term := strings.Join(strings.Fields(args), " ")
	if term == "" {
		return msgSearchUsage, nil
	}

	entries, err := v.repo.SearchVocab(ctx, term)
	if err != nil {
		v.log.Error("failed to search vocab", zap.String("term", term), zap.Error(err))
		return "", err
	}

	if len(entries) == 0 {
		return msgSearchEmpty, nil
	}

	return formatEntries("Gefundene Vokabeln:", entries), nil
}

func (v *VocabS) Stats(ctx context.Context, userID int64) (string, error) {
	stats, err := v.repo.TrainingStats(ctx, userID)
	if err != nil {
		v.log.Warn("failed to get training stats", zap.Int64("user_id", userID), zap.Error(err))
		return "", err
	}

	if stats.Sessions == 0 {
		return msgStatsEmpty, nil
	}

	return formatStats(stats), nil
}

func formatEntries(header string, entries []models.VocabEntry) string {
	var sb strings.Builder

	sb.WriteString(header)
	for _, e := range entries {
		sb.WriteString("\n")
		sb.WriteString(e.English)
		sb.WriteString(" - ")
		sb.WriteString(e.German)
	}

	return sb.String()
}

func formatStats(stats models.TrainingStats) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("📊 Abgeschlossene Trainings: %d\n", stats.Sessions))
	sb.WriteString(fmt.Sprintf("❓ Fragen: %d\n", stats.Questions))
	sb.WriteString(fmt.Sprintf("✅ Richtig: %d", stats.Correct))

	if stats.Questions > 0 {
		sb.WriteString(fmt.Sprintf(" (%d%%)", stats.Correct*100/stats.Questions))
	}

	return sb.String()
}
