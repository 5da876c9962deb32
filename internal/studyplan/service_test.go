package studyplan

import (
	"context"
	"testing"

	"github.com/estudai/estudai-api/internal/question"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type fakePlanRepo struct {
	PlanRepository
	keys     map[sessionKey]bool
	sessions []*PlanSession
	qbank    []*QbankQuestion
}

func newFakePlanRepo() *fakePlanRepo {
	return &fakePlanRepo{keys: make(map[sessionKey]bool)}
}

func (f *fakePlanRepo) ExistingSessionKeys(_ *gorm.DB, _ uuid.UUID) (map[sessionKey]bool, error) {
	keys := make(map[sessionKey]bool, len(f.keys))
	for k := range f.keys {
		keys[k] = true
	}
	return keys, nil
}

func (f *fakePlanRepo) CreateSession(_ *gorm.DB, s *PlanSession) error {
	f.keys[sessionKey{Date: s.SessionDate.String(), Type: s.ContentType}] = true
	f.sessions = append(f.sessions, s)
	return nil
}

func (f *fakePlanRepo) CreateQbankQuestions(_ *gorm.DB, entries []*QbankQuestion) error {
	f.qbank = append(f.qbank, entries...)
	return nil
}

type fakeQuestionRepo struct {
	question.QuestionRepository
	pool []*question.Question
}

func (f *fakeQuestionRepo) ListActiveByTopicIDs(_ []uuid.UUID, _ []question.Difficulty, limit int) ([]*question.Question, error) {
	if limit > 0 && limit < len(f.pool) {
		return f.pool[:limit], nil
	}
	return f.pool, nil
}

func TestGenerateIdempotence(t *testing.T) {
	repo := newFakePlanRepo()
	questions := &fakeQuestionRepo{pool: []*question.Question{
		{ID: uuid.New(), CorrectOption: "Paris"},
		{ID: uuid.New(), CorrectOption: "4"},
	}}
	svc := &planService{repo: repo, assembler: NewAssembler(nil, questions)}

	plan := &StudyPlan{
		ID:                 uuid.New(),
		StartDate:          mustDate(t, "2025-05-05"),
		EndDate:            mustDate(t, "2025-05-09"),
		StudyDays:          []string{"mon", "tue", "wed", "thu", "fri"},
		MaxQuestionsPerDay: 10,
		Contents: []PlanContent{
			{ID: uuid.New(), ContentType: ContentTypeQuestionBank, TopicIDs: []uuid.UUID{uuid.New()}},
			{ID: uuid.New(), ContentType: ContentTypeFlashcards, DeckIDs: []uuid.UUID{uuid.New()}},
		},
	}

	created, err := svc.generate(context.Background(), nil, plan)
	if err != nil {
		t.Fatalf("esperava sucesso na primeira geração, obteve erro: %v", err)
	}
	if created != 5 {
		t.Fatalf("esperava 5 sessões criadas, obteve %d", created)
	}
	// Rodízio qbank/flashcards sobre 5 dias: 3 sessões de qbank, cada uma
	// com o pool de 2 questões congelado.
	if len(repo.qbank) != 6 {
		t.Errorf("esperava 6 entradas de qbank, obteve %d", len(repo.qbank))
	}
	for _, entry := range repo.qbank {
		if entry.CorrectOption == "" {
			t.Error("entrada de qbank sem opção correta congelada")
		}
	}

	created, err = svc.generate(context.Background(), nil, plan)
	if err != nil {
		t.Fatalf("esperava sucesso na segunda geração, obteve erro: %v", err)
	}
	if created != 0 {
		t.Errorf("segunda geração do mesmo plano deveria criar 0 sessões, criou %d", created)
	}
	if len(repo.sessions) != 5 {
		t.Errorf("esperava 5 sessões no total, obteve %d", len(repo.sessions))
	}
}

func TestMergeContents(t *testing.T) {
	planID := uuid.New()

	t.Run("atualiza escopo existente preservando o id", func(t *testing.T) {
		original := PlanContent{
			ID:          uuid.New(),
			PlanID:      planID,
			ContentType: ContentTypeQuestionBank,
			TopicIDs:    []uuid.UUID{uuid.New()},
		}
		newTopic := uuid.New()

		merged, err := mergeContents(planID, []PlanContent{original}, []PlanContentDTO{{
			ContentType: string(ContentTypeQuestionBank),
			TopicIDs:    []string{newTopic.String()},
		}})
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if len(merged) != 1 {
			t.Fatalf("esperava 1 escopo, obteve %d", len(merged))
		}
		if merged[0].ID != original.ID {
			t.Error("id do escopo mudou; sessões existentes perderiam a referência")
		}
		if len(merged[0].TopicIDs) != 1 || merged[0].TopicIDs[0] != newTopic {
			t.Errorf("escopo não foi atualizado: %v", merged[0].TopicIDs)
		}
	})

	t.Run("tipo novo ganha linha nova", func(t *testing.T) {
		existing := []PlanContent{{
			ID:          uuid.New(),
			PlanID:      planID,
			ContentType: ContentTypeQuestionBank,
			TopicIDs:    []uuid.UUID{uuid.New()},
		}}

		merged, err := mergeContents(planID, existing, []PlanContentDTO{{
			ContentType: string(ContentTypeExams),
			ExamIDs:     []string{uuid.New().String()},
		}})
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if len(merged) != 2 {
			t.Fatalf("esperava 2 escopos, obteve %d", len(merged))
		}
		if merged[1].ContentType != ContentTypeExams || merged[1].PlanID != planID {
			t.Errorf("linha nova inesperada: %+v", merged[1])
		}
	})

	t.Run("tipos não mencionados ficam intactos", func(t *testing.T) {
		qbank := PlanContent{ID: uuid.New(), PlanID: planID, ContentType: ContentTypeQuestionBank, TopicIDs: []uuid.UUID{uuid.New()}}
		cards := PlanContent{ID: uuid.New(), PlanID: planID, ContentType: ContentTypeFlashcards, DeckIDs: []uuid.UUID{uuid.New()}}

		merged, err := mergeContents(planID, []PlanContent{qbank, cards}, []PlanContentDTO{{
			ContentType: string(ContentTypeFlashcards),
			DeckIDs:     []string{uuid.New().String()},
		}})
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if merged[0].ID != qbank.ID || len(merged[0].TopicIDs) != 1 || merged[0].TopicIDs[0] != qbank.TopicIDs[0] {
			t.Errorf("escopo de qbank não deveria mudar: %+v", merged[0])
		}
	})

	t.Run("uuid inválido é rejeitado", func(t *testing.T) {
		_, err := mergeContents(planID, nil, []PlanContentDTO{{
			ContentType: string(ContentTypeEbooks),
			BookIDs:     []string{"não-é-uuid"},
		}})
		if err != ErrInvalidID {
			t.Errorf("esperava ErrInvalidID, obteve %v", err)
		}
	})
}

func TestPerDayLimit(t *testing.T) {
	if got := perDayLimit(0); got != defaultMaxPerDay {
		t.Errorf("limite omitido deveria usar o padrão %d, obteve %d", defaultMaxPerDay, got)
	}
	if got := perDayLimit(-3); got != defaultMaxPerDay {
		t.Errorf("limite negativo deveria usar o padrão %d, obteve %d", defaultMaxPerDay, got)
	}
	if got := perDayLimit(15); got != 15 {
		t.Errorf("limite definido deveria ser mantido, obteve %d", got)
	}
}
