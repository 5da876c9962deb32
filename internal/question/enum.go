package question

type Difficulty string

const (
	DifficultyEasy   Difficulty = "EASY"
	DifficultyMedium Difficulty = "MEDIUM"
	DifficultyHard   Difficulty = "HARD"
)

var AllDifficulties = []Difficulty{
	DifficultyEasy,
	DifficultyMedium,
	DifficultyHard,
}

func (d Difficulty) IsValid() bool {
	for _, v := range AllDifficulties {
		if d == v {
			return true
		}
	}
	return false
}

type QuestionStatus string

const (
	QuestionStatusActive   QuestionStatus = "ACTIVE"
	QuestionStatusArchived QuestionStatus = "ARCHIVED"
)

func (s QuestionStatus) IsValid() bool {
	return s == QuestionStatusActive || s == QuestionStatusArchived
}
