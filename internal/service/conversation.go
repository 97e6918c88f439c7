package service

import (
	"context"
	"errors"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/DanRulev/vokabot/internal/models"
	"go.uber.org/zap"
)

type ConversationS struct {
	translator TranslatorI
	repo       RepositoryI
	sessions   SessionStoreI
	rnd        Randomizer
	trainSize  int
	log        *zap.Logger
}

func NewConversationService(translator TranslatorI, repo RepositoryI, sessions SessionStoreI, rnd Randomizer, trainSize int, log *zap.Logger) *ConversationS {
	return &ConversationS{
		translator: translator,
		repo:       repo,
		sessions:   sessions,
		rnd:        rnd,
		trainSize:  trainSize,
		log:        log,
	}
}

func (c *ConversationS) Help() string {
	return msgHelp
}

// Add starts the add flow for args and reports whether it did. The gateway is
// asked once; on failure the placeholder is suggested and the user is
// expected to type the translation.
func (c *ConversationS) Add(ctx context.Context, userID int64, args string) (string, bool) {
	english := strings.Join(strings.Fields(args), " ")
	if english == "" {
		return msgAddUsage, false
	}

	suggestion, err := c.translator.TranslateEnToDe(ctx, english)
	if err != nil {
		c.log.Warn("translation failed", zap.Int64("user_id", userID), zap.String("word", english), zap.Error(err))
		suggestion = TranslationFailed
	}

	c.sessions.SetState(userID, models.Adding{English: english, Suggestion: suggestion})

	return addPrompt(english, suggestion), true
}

// Train parses the optional question count and starts a quiz over the stored
// vocabulary.
func (c *ConversationS) Train(ctx context.Context, userID int64, args string) ([]string, error) {
	size := c.trainSize
	if fields := strings.Fields(args); len(fields) > 0 {
		n, ok := parseCount(fields[0])
		if !ok {
			return []string{msgTrainUsage}, nil
		}
		size = n
	}

	entries, err := c.repo.ListVocab(ctx, 0)
	if err != nil {
		c.log.Error("failed to load vocab for training", zap.Int64("user_id", userID), zap.Error(err))
		return nil, err
	}

	if len(entries) == 0 {
		return []string{msgNoVocab}, nil
	}

	quiz := newQuiz(entries, size, c.rnd)
	c.sessions.SetState(userID, models.Quizzing{Quiz: quiz})

	return c.continueQuiz(ctx, userID, quiz, nil), nil
}

// parseCount accepts a non-negative integer. Counts beyond int mean "all".
func parseCount(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) && !strings.HasPrefix(s, "-") {
			return math.MaxInt, true
		}
		return 0, false
	}
	if n < 0 {
		return 0, false
	}
	return n, true
}

func (c *ConversationS) Cancel(userID int64) string {
	if _, ok := c.sessions.State(userID).(models.Quizzing); !ok {
		return msgNothingToAbort
	}

	c.sessions.SetState(userID, models.Idle{})
	return msgCancelled
}

// Confirm accepts the pending suggestion, as if the user had replied with an
// affirmation.
func (c *ConversationS) Confirm(ctx context.Context, userID int64) ([]string, error) {
	state, ok := c.sessions.State(userID).(models.Adding)
	if !ok {
		return []string{msgNothingToConfirm}, nil
	}

	return c.confirmAdd(ctx, userID, state, "✅")
}

// HandleText routes a free-text message to the flow the user is in.
func (c *ConversationS) HandleText(ctx context.Context, userID int64, text string) ([]string, error) {
	switch state := c.sessions.State(userID).(type) {
	case models.Adding:
		return c.confirmAdd(ctx, userID, state, text)
	case models.Quizzing:
		return c.answerQuiz(ctx, userID, state.Quiz, text), nil
	default:
		return []string{msgNotUnderstood}, nil
	}
}

func (c *ConversationS) confirmAdd(ctx context.Context, userID int64, state models.Adding, text string) ([]string, error) {
	reply := strings.TrimSpace(text)
	if reply == "" {
		return []string{msgAddEmptyReply}, nil
	}

	c.sessions.SetState(userID, models.Idle{})

	if state.English == "" {
		c.log.Warn("add confirmation without pending word", zap.Int64("user_id", userID))
		return []string{msgAddNoWord}, nil
	}

	german := reply
	if isAffirmation(reply) {
		german = state.Suggestion
	}

	if _, err := c.repo.AddVocab(ctx, state.English, german); err != nil {
		c.log.Error("failed to add vocab", zap.Int64("user_id", userID), zap.String("english", state.English), zap.Error(err))
		return nil, err
	}

	return []string{addedMessage(state.English, german)}, nil
}

func (c *ConversationS) answerQuiz(ctx context.Context, userID int64, quiz *models.QuizState, text string) []string {
	if quiz.Current == nil {
		return c.continueQuiz(ctx, userID, quiz, nil)
	}

	correct, expected := answerCurrent(quiz, text)

	feedback := msgCorrect
	if !correct {
		feedback = wrongMessage(expected)
	}

	return c.continueQuiz(ctx, userID, quiz, []string{feedback})
}

// continueQuiz appends the next question to replies, or the summary when the
// quiz is over, in which case the user returns to idle.
func (c *ConversationS) continueQuiz(ctx context.Context, userID int64, quiz *models.QuizState, replies []string) []string {
	if q, ok := askNext(quiz, c.rnd); ok {
		return append(replies, questionMessage(q))
	}

	c.sessions.SetState(userID, models.Idle{})
	c.saveResult(ctx, userID, quiz)

	return append(replies, summaryMessage(quiz.Correct, len(quiz.Questions)))
}

func (c *ConversationS) saveResult(ctx context.Context, userID int64, quiz *models.QuizState) {
	if len(quiz.Questions) == 0 {
		return
	}

	result := models.TrainingResult{
		UserID:     userID,
		Total:      len(quiz.Questions),
		Correct:    quiz.Correct,
		FinishedAt: time.Now().UTC(),
	}
	if err := c.repo.AddTrainingResult(ctx, result); err != nil {
		c.log.Warn("failed to save training result", zap.Int64("user_id", userID), zap.Error(err))
	}
}
