package studyplan

import (
	"testing"

	"github.com/google/uuid"
)

func TestPercent(t *testing.T) {
	cases := []struct {
		name string
		n, d int
		want int
	}{
		{"denominador zero vale zero", 5, 0, 0},
		{"metade", 1, 2, 50},
		{"arredonda para cima", 2, 3, 67},
		{"arredonda para baixo", 1, 3, 33},
		{"completo", 10, 10, 100},
		{"zero de zero", 0, 0, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Percent(tc.n, tc.d)
			if got != tc.want {
				t.Errorf("Percent(%d, %d): esperava %d, obteve %d", tc.n, tc.d, tc.want, got)
			}
			if got < 0 || got > 100 {
				t.Errorf("percentual fora de [0,100]: %d", got)
			}
		})
	}
}

func TestSessionProgress(t *testing.T) {
	session := &PlanSession{
		ID:                 uuid.New(),
		ContentType:        ContentTypeQuestionBank,
		Status:             SessionStatusInProgress,
		QuestionsAttempted: 8,
		QuestionsCorrect:   6,
	}

	p := sessionProgress(session, 10, 0)
	if p.Questions.Attempted != 8 || p.Questions.Correct != 6 || p.Questions.Total != 10 {
		t.Errorf("contadores inesperados: %+v", p.Questions)
	}
	if p.Questions.Percent != 60 {
		t.Errorf("esperava 60%%, obteve %d%%", p.Questions.Percent)
	}
	if p.Flashcards.Percent != 0 {
		t.Errorf("sessão sem flashcards deveria ter 0%%, obteve %d%%", p.Flashcards.Percent)
	}
}

func TestPlanProgress(t *testing.T) {
	plan := &StudyPlan{ID: uuid.New(), Status: PlanStatusActive}

	t.Run("agrega todas as sessões", func(t *testing.T) {
		sessions := []*PlanSession{
			{Status: SessionStatusCompleted, QuestionsAttempted: 10, QuestionsCorrect: 7, FlashcardsStudied: 5, FlashcardsCorrect: 4},
			{Status: SessionStatusInProgress, QuestionsAttempted: 4, QuestionsCorrect: 2},
			{Status: SessionStatusPending},
		}

		p := planProgress(plan, sessions, 20, 10)
		if p.TotalSessions != 3 || p.CompletedSessions != 1 {
			t.Errorf("contagem de sessões inesperada: %+v", p)
		}
		if p.Percent != 33 {
			t.Errorf("esperava 33%% de conclusão, obteve %d%%", p.Percent)
		}
		if p.Questions.Attempted != 14 || p.Questions.Correct != 9 {
			t.Errorf("agregado de questões inesperado: %+v", p.Questions)
		}
		if p.Questions.Percent != 45 {
			t.Errorf("esperava 45%% de acerto, obteve %d%%", p.Questions.Percent)
		}
		if p.Flashcards.Studied != 5 || p.Flashcards.Correct != 4 {
			t.Errorf("agregado de flashcards inesperado: %+v", p.Flashcards)
		}
	})

	t.Run("plano sem sessões não divide por zero", func(t *testing.T) {
		p := planProgress(plan, nil, 0, 0)
		if p.Percent != 0 || p.Questions.Percent != 0 || p.Flashcards.Percent != 0 {
			t.Errorf("esperava percentuais zerados, obteve %+v", p)
		}
	})
}
