package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/DanRulev/vokabot/internal/models"
	mock_service "github.com/DanRulev/vokabot/internal/service/mock"
	"github.com/DanRulev/vokabot/internal/storage/cache"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// firstRand always asks in English and keeps the stored order.
type firstRand struct{}

func (firstRand) Intn(int) int { return 0 }
func (firstRand) Perm(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	return p
}

const testUser int64 = 456

func newConversationMock(t *testing.T, ctrl *gomock.Controller, rnd Randomizer, setupMock func(*mock_service.MockRepositoryI, *mock_service.MockTranslatorI)) (*ConversationS, *cache.Cache) {
	repo := mock_service.NewMockRepositoryI(ctrl)
	translator := mock_service.NewMockTranslatorI(ctrl)
	if setupMock != nil {
		setupMock(repo, translator)
	}

	sessions := cache.NewCache()

	return NewConversationService(translator, repo, sessions, rnd, 20, zap.NewNop()), sessions
}

func TestConversationS_Add(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		args      string
		f         func(*mock_service.MockRepositoryI, *mock_service.MockTranslatorI)
		want      string
		wantFlow  bool
		wantState models.State
	}{
		{
			name: "success",
			args: "hello",
			f: func(mr *mock_service.MockRepositoryI, mt *mock_service.MockTranslatorI) {
				mt.EXPECT().TranslateEnToDe(gomock.Any(), "hello").Return("Hallo", nil)
			},
			want:      addPrompt("hello", "Hallo"),
			wantFlow:  true,
			wantState: models.Adding{English: "hello", Suggestion: "Hallo"},
		},
		{
			name: "several words are joined",
			args: "  good   morning ",
			f: func(mr *mock_service.MockRepositoryI, mt *mock_service.MockTranslatorI) {
				mt.EXPECT().TranslateEnToDe(gomock.Any(), "good morning").Return("Guten Morgen", nil)
			},
			want:      addPrompt("good morning", "Guten Morgen"),
			wantFlow:  true,
			wantState: models.Adding{English: "good morning", Suggestion: "Guten Morgen"},
		},
		{
			name: "translation failure degrades to placeholder",
			args: "car",
			f: func(mr *mock_service.MockRepositoryI, mt *mock_service.MockTranslatorI) {
				mt.EXPECT().TranslateEnToDe(gomock.Any(), "car").Return("", errors.New("service unavailable"))
			},
			want:      addPrompt("car", TranslationFailed),
			wantFlow:  true,
			wantState: models.Adding{English: "car", Suggestion: TranslationFailed},
		},
		{
			name:      "missing word",
			args:      "   ",
			want:      msgAddUsage,
			wantState: models.Idle{},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			conv, sessions := newConversationMock(t, ctrl, firstRand{}, tt.f)

			got, started := conv.Add(context.Background(), testUser, tt.args)

			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantFlow, started)
			assert.Equal(t, tt.wantState, sessions.State(testUser))
		})
	}
}

func TestConversationS_HandleText_Adding(t *testing.T) {
	t.Parallel()

	pending := models.Adding{English: "hello", Suggestion: "Hallo"}

	tests := []struct {
		name      string
		state     models.Adding
		reply     string
		f         func(*mock_service.MockRepositoryI, *mock_service.MockTranslatorI)
		want      []string
		wantErr   bool
		wantState models.State
	}{
		{
			name:  "literal translation",
			state: models.Adding{English: "car", Suggestion: "Auto"},
			reply: "PKW",
			f: func(mr *mock_service.MockRepositoryI, mt *mock_service.MockTranslatorI) {
				mr.EXPECT().AddVocab(gomock.Any(), "car", "PKW").Return(int64(2), nil)
			},
			want:      []string{addedMessage("car", "PKW")},
			wantState: models.Idle{},
		},
		{
			name:  "literal translation is trimmed",
			state: models.Adding{English: "car", Suggestion: "Auto"},
			reply: "  der Wagen \n",
			f: func(mr *mock_service.MockRepositoryI, mt *mock_service.MockTranslatorI) {
				mr.EXPECT().AddVocab(gomock.Any(), "car", "der Wagen").Return(int64(2), nil)
			},
			want:      []string{addedMessage("car", "der Wagen")},
			wantState: models.Idle{},
		},
		{
			name:  "insert fails",
			state: pending,
			reply: "✅",
			f: func(mr *mock_service.MockRepositoryI, mt *mock_service.MockTranslatorI) {
				mr.EXPECT().AddVocab(gomock.Any(), "hello", "Hallo").Return(int64(0), errors.New("db error"))
			},
			wantErr:   true,
			wantState: models.Idle{},
		},
		{
			name:      "no pending word",
			state:     models.Adding{Suggestion: "Hallo"},
			reply:     "ok",
			want:      []string{msgAddNoWord},
			wantState: models.Idle{},
		},
		{
			name:      "blank reply keeps waiting",
			state:     pending,
			reply:     "   ",
			want:      []string{msgAddEmptyReply},
			wantState: pending,
		},
	}

	for _, token := range []string{"✅", "ja", "JA", " ok ", "Passt", "BESTÄTIGE", "bestätige", "👍", "✔️"} {
		tests = append(tests, struct {
			name      string
			state     models.Adding
			reply     string
			f         func(*mock_service.MockRepositoryI, *mock_service.MockTranslatorI)
			want      []string
			wantErr   bool
			wantState models.State
		}{
			name:  fmt.Sprintf("affirmation %q", token),
			state: pending,
			reply: token,
			f: func(mr *mock_service.MockRepositoryI, mt *mock_service.MockTranslatorI) {
				mr.EXPECT().AddVocab(gomock.Any(), "hello", "Hallo").Return(int64(1), nil)
			},
			want:      []string{addedMessage("hello", "Hallo")},
			wantState: models.Idle{},
		})
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			conv, sessions := newConversationMock(t, ctrl, firstRand{}, tt.f)
			sessions.SetState(testUser, tt.state)

			got, err := conv.HandleText(context.Background(), testUser, tt.reply)
			assert.Equal(t, tt.wantState, sessions.State(testUser))
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConversationS_HandleText_Idle(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	conv, sessions := newConversationMock(t, ctrl, firstRand{}, nil)

	got, err := conv.HandleText(context.Background(), testUser, "Hallo")
	require.NoError(t, err)
	assert.Equal(t, []string{msgNotUnderstood}, got)
	assert.Equal(t, models.Idle{}, sessions.State(testUser))
}

func TestConversationS_Train(t *testing.T) {
	t.Parallel()

	entries := []models.VocabEntry{
		{ID: 1, English: "hello", German: "Hallo"},
		{ID: 2, English: "car", German: "PKW"},
		{ID: 3, English: "house", German: "Haus"},
	}

	tests := []struct {
		name          string
		args          string
		f             func(*mock_service.MockRepositoryI, *mock_service.MockTranslatorI)
		want          []string
		wantErr       bool
		wantQuestions int
	}{
		{
			name: "non-numeric count is rejected before sampling",
			args: "abc",
			want: []string{msgTrainUsage},
		},
		{
			name: "negative count is rejected",
			args: "-3",
			want: []string{msgTrainUsage},
		},
		{
			name: "negative overflow is rejected",
			args: "-99999999999999999999",
			want: []string{msgTrainUsage},
		},
		{
			name: "count beyond int takes all",
			args: "99999999999999999999",
			f: func(mr *mock_service.MockRepositoryI, mt *mock_service.MockTranslatorI) {
				mr.EXPECT().ListVocab(gomock.Any(), 0).Return(entries, nil)
			},
			want:          []string{"Was ist die deutsche Übersetzung von: hello?"},
			wantQuestions: 3,
		},
		{
			name: "no vocabulary",
			args: "",
			f: func(mr *mock_service.MockRepositoryI, mt *mock_service.MockTranslatorI) {
				mr.EXPECT().ListVocab(gomock.Any(), 0).Return([]models.VocabEntry{}, nil)
			},
			want: []string{msgNoVocab},
		},
		{
			name: "db error",
			args: "5",
			f: func(mr *mock_service.MockRepositoryI, mt *mock_service.MockTranslatorI) {
				mr.EXPECT().ListVocab(gomock.Any(), 0).Return(nil, errors.New("db error"))
			},
			wantErr: true,
		},
		{
			name: "default count clamps to available",
			args: "",
			f: func(mr *mock_service.MockRepositoryI, mt *mock_service.MockTranslatorI) {
				mr.EXPECT().ListVocab(gomock.Any(), 0).Return(entries, nil)
			},
			want:          []string{"Was ist die deutsche Übersetzung von: hello?"},
			wantQuestions: 3,
		},
		{
			name: "explicit count",
			args: "2 extra",
			f: func(mr *mock_service.MockRepositoryI, mt *mock_service.MockTranslatorI) {
				mr.EXPECT().ListVocab(gomock.Any(), 0).Return(entries, nil)
			},
			want:          []string{"Was ist die deutsche Übersetzung von: hello?"},
			wantQuestions: 2,
		},
		{
			name: "zero count ends at once",
			args: "0",
			f: func(mr *mock_service.MockRepositoryI, mt *mock_service.MockTranslatorI) {
				mr.EXPECT().ListVocab(gomock.Any(), 0).Return(entries, nil)
			},
			want: []string{summaryMessage(0, 0)},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			conv, sessions := newConversationMock(t, ctrl, firstRand{}, tt.f)

			got, err := conv.Train(context.Background(), testUser, tt.args)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, models.Idle{}, sessions.State(testUser))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			if tt.wantQuestions == 0 {
				assert.Equal(t, models.Idle{}, sessions.State(testUser))
				return
			}

			state, ok := sessions.State(testUser).(models.Quizzing)
			require.True(t, ok)
			assert.Len(t, state.Quiz.Questions, tt.wantQuestions)
			require.NotNil(t, state.Quiz.Current)
		})
	}
}

func TestConversationS_Scenario(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var stored []models.VocabEntry

	conv, sessions := newConversationMock(t, ctrl, rand.New(rand.NewSource(7)), func(mr *mock_service.MockRepositoryI, mt *mock_service.MockTranslatorI) {
		mt.EXPECT().TranslateEnToDe(gomock.Any(), "hello").Return("Hallo", nil)
		mt.EXPECT().TranslateEnToDe(gomock.Any(), "car").Return("Auto", nil)
		mr.EXPECT().AddVocab(gomock.Any(), gomock.Any(), gomock.Any()).Times(2).
			DoAndReturn(func(ctx context.Context, english, german string) (int64, error) {
				id := int64(len(stored) + 1)
				stored = append(stored, models.VocabEntry{ID: id, English: english, German: german})
				return id, nil
			})
		mr.EXPECT().ListVocab(gomock.Any(), 0).DoAndReturn(func(ctx context.Context, limit int) ([]models.VocabEntry, error) {
			return stored, nil
		})
		mr.EXPECT().AddTrainingResult(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, result models.TrainingResult) error {
				assert.Equal(t, testUser, result.UserID)
				assert.Equal(t, 1, result.Total)
				assert.Equal(t, 1, result.Correct)
				return nil
			})
	})
	ctx := context.Background()

	conv.Add(ctx, testUser, "hello")
	_, err := conv.HandleText(ctx, testUser, "✅")
	require.NoError(t, err)

	conv.Add(ctx, testUser, "car")
	_, err = conv.HandleText(ctx, testUser, "PKW")
	require.NoError(t, err)

	assert.Equal(t, []models.VocabEntry{
		{ID: 1, English: "hello", German: "Hallo"},
		{ID: 2, English: "car", German: "PKW"},
	}, stored)

	replies, err := conv.Train(ctx, testUser, "1")
	require.NoError(t, err)
	require.Len(t, replies, 1)

	state, ok := sessions.State(testUser).(models.Quizzing)
	require.True(t, ok)
	require.NotNil(t, state.Quiz.Current)

	replies, err = conv.HandleText(ctx, testUser, "  "+state.Quiz.Current.Answer()+" ")
	require.NoError(t, err)
	assert.Equal(t, []string{msgCorrect, "Training beendet! Du hast 1 von 1 richtig!"}, replies)
	assert.Equal(t, models.Idle{}, sessions.State(testUser))
}

func TestConversationS_QuizAnswers(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	conv, sessions := newConversationMock(t, ctrl, firstRand{}, func(mr *mock_service.MockRepositoryI, mt *mock_service.MockTranslatorI) {
		mr.EXPECT().AddTrainingResult(gomock.Any(), gomock.Any()).Return(errors.New("db error"))
	})
	ctx := context.Background()

	sessions.SetState(testUser, models.Quizzing{Quiz: &models.QuizState{
		Questions: []models.VocabEntry{
			{ID: 1, English: "girl", German: "Mädchen"},
			{ID: 2, English: "house", German: "Haus"},
		},
		Current: &models.Question{English: "girl", German: "Mädchen", Direction: models.AskEnglish},
	}})

	// no accent folding
	replies, err := conv.HandleText(ctx, testUser, "madchen")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Falsch! Die richtige Antwort ist: Mädchen",
		"Was ist die deutsche Übersetzung von: house?",
	}, replies)

	// a failing result write does not break the reply
	replies, err = conv.HandleText(ctx, testUser, "HAUS")
	require.NoError(t, err)
	assert.Equal(t, []string{msgCorrect, summaryMessage(1, 2)}, replies)
	assert.Equal(t, models.Idle{}, sessions.State(testUser))
}

func TestConversationS_Cancel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		state     models.State
		want      string
		wantState models.State
	}{
		{
			name:      "active quiz",
			state:     models.Quizzing{Quiz: &models.QuizState{Questions: []models.VocabEntry{{ID: 1}}}},
			want:      msgCancelled,
			wantState: models.Idle{},
		},
		{
			name:      "idle",
			state:     models.Idle{},
			want:      msgNothingToAbort,
			wantState: models.Idle{},
		},
		{
			name:      "adding is left alone",
			state:     models.Adding{English: "hello", Suggestion: "Hallo"},
			want:      msgNothingToAbort,
			wantState: models.Adding{English: "hello", Suggestion: "Hallo"},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			conv, sessions := newConversationMock(t, ctrl, firstRand{}, nil)
			sessions.SetState(testUser, tt.state)

			assert.Equal(t, tt.want, conv.Cancel(testUser))
			assert.Equal(t, tt.wantState, sessions.State(testUser))
		})
	}
}

func TestConversationS_Confirm(t *testing.T) {
	t.Parallel()

	t.Run("pending word", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		conv, sessions := newConversationMock(t, ctrl, firstRand{}, func(mr *mock_service.MockRepositoryI, mt *mock_service.MockTranslatorI) {
			mr.EXPECT().AddVocab(gomock.Any(), "hello", "Hallo").Return(int64(1), nil)
		})
		sessions.SetState(testUser, models.Adding{English: "hello", Suggestion: "Hallo"})

		got, err := conv.Confirm(context.Background(), testUser)
		require.NoError(t, err)
		assert.Equal(t, []string{addedMessage("hello", "Hallo")}, got)
		assert.Equal(t, models.Idle{}, sessions.State(testUser))
	})

	t.Run("nothing pending", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		conv, sessions := newConversationMock(t, ctrl, firstRand{}, nil)
		quiz := models.Quizzing{Quiz: &models.QuizState{Questions: []models.VocabEntry{{ID: 1}}}}
		sessions.SetState(testUser, quiz)

		got, err := conv.Confirm(context.Background(), testUser)
		require.NoError(t, err)
		assert.Equal(t, []string{msgNothingToConfirm}, got)
		assert.Equal(t, quiz, sessions.State(testUser))
	})
}

func TestConversationS_QuizProperties(t *testing.T) {
	t.Parallel()

	for stored := 1; stored <= 6; stored++ {
		for requested := 0; requested <= 8; requested++ {
			stored, requested := stored, requested
			t.Run(fmt.Sprintf("K=%d R=%d", stored, requested), func(t *testing.T) {
				t.Parallel()

				entries := make([]models.VocabEntry, stored)
				for i := range entries {
					entries[i] = models.VocabEntry{ID: int64(i + 1), English: fmt.Sprintf("en%d", i), German: fmt.Sprintf("de%d", i)}
				}

				ctrl := gomock.NewController(t)
				defer ctrl.Finish()

				conv, sessions := newConversationMock(t, ctrl, rand.New(rand.NewSource(int64(stored*10+requested))), func(mr *mock_service.MockRepositoryI, mt *mock_service.MockTranslatorI) {
					mr.EXPECT().ListVocab(gomock.Any(), 0).Return(entries, nil)
					mr.EXPECT().AddTrainingResult(gomock.Any(), gomock.Any()).Return(nil).MaxTimes(1)
				})
				ctx := context.Background()

				replies, err := conv.Train(ctx, testUser, fmt.Sprint(requested))
				require.NoError(t, err)

				want := requested
				if stored < want {
					want = stored
				}

				seen := map[int64]bool{}
				asked := 0
				for i := 0; ; i++ {
					state, ok := sessions.State(testUser).(models.Quizzing)
					if !ok {
						break
					}
					q := state.Quiz.Current
					require.NotNil(t, q)
					entry := state.Quiz.Questions[state.Quiz.Index]
					assert.False(t, seen[entry.ID], "question repeated")
					seen[entry.ID] = true
					asked++

					answer := "wrong"
					if i%2 == 0 {
						answer = q.Answer()
					}
					replies, err = conv.HandleText(ctx, testUser, answer)
					require.NoError(t, err)
					require.LessOrEqual(t, asked, want)
				}

				assert.Equal(t, want, asked)
				assert.Equal(t, summaryMessage((want+1)/2, want), replies[len(replies)-1])
			})
		}
	}
}
