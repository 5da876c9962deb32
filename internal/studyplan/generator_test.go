package studyplan

import (
	"testing"

	"github.com/google/uuid"
)

func scopeWithTopics(ct ContentType) PlanContent {
	return PlanContent{
		ID:          uuid.New(),
		ContentType: ct,
		TopicIDs:    []uuid.UUID{uuid.New()},
	}
}

func TestEligibleScopes(t *testing.T) {
	t.Run("escopos vazios ficam de fora do rodízio", func(t *testing.T) {
		scopes := []PlanContent{
			scopeWithTopics(ContentTypeQuestionBank),
			{ID: uuid.New(), ContentType: ContentTypeEbooks},
			{ID: uuid.New(), ContentType: ContentTypeExams, ExamIDs: []uuid.UUID{uuid.New()}},
		}

		eligible := eligibleScopes(scopes)
		if len(eligible) != 2 {
			t.Fatalf("esperava 2 escopos elegíveis, obteve %d", len(eligible))
		}
		if eligible[0].ContentType != ContentTypeQuestionBank || eligible[1].ContentType != ContentTypeExams {
			t.Errorf("ordem canônica violada: %s, %s", eligible[0].ContentType, eligible[1].ContentType)
		}
	})

	t.Run("ordem canônica independe da ordem de persistência", func(t *testing.T) {
		scopes := []PlanContent{
			{ID: uuid.New(), ContentType: ContentTypeExams, ExamIDs: []uuid.UUID{uuid.New()}},
			{ID: uuid.New(), ContentType: ContentTypeFlashcards, DeckIDs: []uuid.UUID{uuid.New()}},
			scopeWithTopics(ContentTypeQuestionBank),
		}

		eligible := eligibleScopes(scopes)
		want := []ContentType{ContentTypeQuestionBank, ContentTypeFlashcards, ContentTypeExams}
		for i, ct := range want {
			if eligible[i].ContentType != ct {
				t.Errorf("posição %d: esperava %s, obteve %s", i, ct, eligible[i].ContentType)
			}
		}
	})
}

func TestRotateContent(t *testing.T) {
	dates := func(t *testing.T, days ...string) []StudyDate {
		t.Helper()
		out := make([]StudyDate, 0, len(days))
		for _, s := range days {
			d := mustDate(t, s)
			out = append(out, StudyDate{Date: d, WeekdayName: d.Weekday().String()})
		}
		return out
	}

	t.Run("rodízio cíclico sobre os escopos disponíveis", func(t *testing.T) {
		qbank := scopeWithTopics(ContentTypeQuestionBank)
		cards := PlanContent{ID: uuid.New(), ContentType: ContentTypeFlashcards, DeckIDs: []uuid.UUID{uuid.New()}}
		scopes := []*PlanContent{&qbank, &cards}

		assignments := RotateContent(dates(t, "2025-05-05", "2025-05-06", "2025-05-07", "2025-05-08"), scopes)
		if len(assignments) != 4 {
			t.Fatalf("esperava 4 atribuições, obteve %d", len(assignments))
		}

		want := []ContentType{
			ContentTypeQuestionBank,
			ContentTypeFlashcards,
			ContentTypeQuestionBank,
			ContentTypeFlashcards,
		}
		for i, ct := range want {
			if assignments[i].Scope.ContentType != ct {
				t.Errorf("dia %d: esperava %s, obteve %s", i, ct, assignments[i].Scope.ContentType)
			}
		}
	})

	t.Run("mesmas entradas produzem a mesma rotação", func(t *testing.T) {
		qbank := scopeWithTopics(ContentTypeQuestionBank)
		exams := PlanContent{ID: uuid.New(), ContentType: ContentTypeExams, ExamIDs: []uuid.UUID{uuid.New()}}
		scopes := []*PlanContent{&qbank, &exams}
		ds := dates(t, "2025-05-05", "2025-05-06", "2025-05-07")

		first := RotateContent(ds, scopes)
		second := RotateContent(ds, scopes)
		for i := range first {
			if first[i].Scope.ContentType != second[i].Scope.ContentType {
				t.Errorf("dia %d: rotação divergente entre execuções", i)
			}
		}
	})

	t.Run("sem escopos elegíveis não há atribuições", func(t *testing.T) {
		assignments := RotateContent(dates(t, "2025-05-05"), nil)
		if len(assignments) != 0 {
			t.Errorf("esperava zero atribuições, obteve %d", len(assignments))
		}
	})

	t.Run("escopo único repete todos os dias", func(t *testing.T) {
		qbank := scopeWithTopics(ContentTypeQuestionBank)
		assignments := RotateContent(dates(t, "2025-05-05", "2025-05-06"), []*PlanContent{&qbank})
		for i, a := range assignments {
			if a.Scope.ContentType != ContentTypeQuestionBank {
				t.Errorf("dia %d: esperava QUESTION_BANK, obteve %s", i, a.Scope.ContentType)
			}
		}
	})
}

func TestHasContent(t *testing.T) {
	cases := []struct {
		name  string
		scope PlanContent
		want  bool
	}{
		{"qbank com módulos", PlanContent{ContentType: ContentTypeQuestionBank, ModuleIDs: []uuid.UUID{uuid.New()}}, true},
		{"qbank vazio", PlanContent{ContentType: ContentTypeQuestionBank}, false},
		{"flashcards com decks", PlanContent{ContentType: ContentTypeFlashcards, DeckIDs: []uuid.UUID{uuid.New()}}, true},
		{"ebooks sem livros", PlanContent{ContentType: ContentTypeEbooks}, false},
		{"ebooks com livros", PlanContent{ContentType: ContentTypeEbooks, BookIDs: []uuid.UUID{uuid.New()}}, true},
		{"simulados com provas", PlanContent{ContentType: ContentTypeExams, ExamIDs: []uuid.UUID{uuid.New()}}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := hasContent(&tc.scope); got != tc.want {
				t.Errorf("esperava %v, obteve %v", tc.want, got)
			}
		})
	}
}
