package service

import (
	"strings"

	"github.com/DanRulev/vokabot/internal/models"
)

// newQuiz draws min(size, len(entries)) entries without replacement.
func newQuiz(entries []models.VocabEntry, size int, rnd Randomizer) *models.QuizState {
	if size > len(entries) {
		size = len(entries)
	}
	if size < 0 {
		size = 0
	}

	perm := rnd.Perm(len(entries))
	questions := make([]models.VocabEntry, size)
	for i := range questions {
		questions[i] = entries[perm[i]]
	}

	return &models.QuizState{Questions: questions}
}

// askNext poses the question under the cursor with a random direction. It
// reports false once every question has been answered.
func askNext(quiz *models.QuizState, rnd Randomizer) (models.Question, bool) {
	if quiz.Done() {
		quiz.Current = nil
		return models.Question{}, false
	}

	entry := quiz.Questions[quiz.Index]
	q := models.Question{
		English:   entry.English,
		German:    entry.German,
		Direction: models.AskEnglish,
	}
	if rnd.Intn(2) == 1 {
		q.Direction = models.AskGerman
	}

	quiz.Current = &q
	return q, true
}

// answerCurrent scores reply against the in-flight question and moves the
// cursor. The expected answer is returned for feedback.
func answerCurrent(quiz *models.QuizState, reply string) (bool, string) {
	expected := quiz.Current.Answer()
	correct := strings.ToLower(strings.TrimSpace(reply)) == strings.ToLower(expected)

	if correct {
		quiz.Correct++
	}
	quiz.Index++
	quiz.Current = nil

	return correct, expected
}
