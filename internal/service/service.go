package service

import (
	"context"
	"math/rand"

	"github.com/DanRulev/vokabot/internal/config"
	"github.com/DanRulev/vokabot/internal/models"
	"go.uber.org/zap"
)

//go:generate mockgen -source=service.go -destination=mock/service_mock.go

type TranslatorI interface {
	TranslateEnToDe(ctx context.Context, text string) (string, error)
}

type VocabRI interface {
	AddVocab(ctx context.Context, english, german string) (int64, error)
	ListVocab(ctx context.Context, limit int) ([]models.VocabEntry, error)
	SearchVocab(ctx context.Context, term string) ([]models.VocabEntry, error)
	CountVocab(ctx context.Context) (int, error)
}

type TrainingRI interface {
	AddTrainingResult(ctx context.Context, result models.TrainingResult) error
	TrainingStats(ctx context.Context, userID int64) (models.TrainingStats, error)
}

type RepositoryI interface {
	VocabRI
	TrainingRI
}

// SessionStoreI keeps the conversation state per user. Unknown users are
// reported as models.Idle{}.
type SessionStoreI interface {
	State(userID int64) models.State
	SetState(userID int64, state models.State)
}

// Randomizer is satisfied by *math/rand.Rand.
type Randomizer interface {
	Intn(n int) int
	Perm(n int) []int
}

type Service struct {
	*VocabS
	*ConversationS
}

func InitServices(translator TranslatorI, repo RepositoryI, sessions SessionStoreI, cfg config.AppConfig, log *zap.Logger) *Service {
	return &Service{
		VocabS:        NewVocabService(repo, cfg.ListLimit, log),
		ConversationS: NewConversationService(translator, repo, sessions, globalRand{}, cfg.TrainSize, log),
	}
}

// globalRand uses the goroutine-safe top level functions of math/rand.
type globalRand struct{}

func (globalRand) Intn(n int) int   { return rand.Intn(n) }
func (globalRand) Perm(n int) []int { return rand.Perm(n) }
