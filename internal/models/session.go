package models

// State is the conversation state of a single user. Exactly one of Idle,
// Adding or Quizzing.
type State interface {
	state()
}

type Idle struct{}

type Adding struct {
	English    string
	Suggestion string
}

type Quizzing struct {
	Quiz *QuizState
}

func (Idle) state()     {}
func (Adding) state()   {}
func (Quizzing) state() {}

type Direction int

const (
	// AskEnglish shows the English word and expects the German one.
	AskEnglish Direction = iota
	// AskGerman shows the German word and expects the English one.
	AskGerman
)

type Question struct {
	English   string
	German    string
	Direction Direction
}

func (q Question) Prompt() string {
	if q.Direction == AskEnglish {
		return q.English
	}
	return q.German
}

func (q Question) Answer() string {
	if q.Direction == AskEnglish {
		return q.German
	}
	return q.English
}

type QuizState struct {
	Questions []VocabEntry
	Index     int
	Correct   int
	Current   *Question
}

func (q *QuizState) Done() bool {
	return q.Index >= len(q.Questions)
}
