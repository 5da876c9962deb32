package studyplan

import (
	"context"

	"github.com/estudai/estudai-api/internal/config"
	"github.com/estudai/estudai-api/internal/question"
	"github.com/estudai/estudai-api/internal/topic"
	"github.com/google/uuid"
)

// QuestionSnapshot é uma referência de questão congelada no momento da
// montagem do qbank.
type QuestionSnapshot struct {
	QuestionID    uuid.UUID
	CorrectOption string
}

// Assembler resolve o escopo de um plano (módulos → matérias → tópicos →
// questões) e materializa o pool de questões de um dia de estudo.
type Assembler struct {
	topics    topic.TopicRepository
	questions question.QuestionRepository
}

func NewAssembler(topics topic.TopicRepository, questions question.QuestionRepository) *Assembler {
	return &Assembler{topics: topics, questions: questions}
}

// Assemble resolve os tópicos aplicáveis e devolve até count questões ativas,
// mais recentes primeiro, com a opção correta congelada. Resolução vazia é um
// resultado válido: "nenhuma questão disponível hoje" não é erro.
func (a *Assembler) Assemble(ctx context.Context, scope *PlanContent, difficulties []question.Difficulty, count int) ([]QuestionSnapshot, error) {
	log := config.WithContext(ctx)

	topicIDs, err := a.resolveTopics(scope)
	if err != nil {
		log.WithError(err).Error("Erro ao resolver tópicos do escopo")
		return nil, err
	}
	if len(topicIDs) == 0 {
		return nil, nil
	}

	pool, err := a.questions.ListActiveByTopicIDs(topicIDs, difficulties, count)
	if err != nil {
		log.WithError(err).Error("Erro ao montar pool de questões")
		return nil, err
	}

	snapshots := make([]QuestionSnapshot, 0, len(pool))
	for _, q := range pool {
		snapshots = append(snapshots, QuestionSnapshot{
			QuestionID:    q.ID,
			CorrectOption: q.CorrectOption,
		})
	}
	return snapshots, nil
}

// resolveTopics segue a ordem de resolução: tópicos explícitos, senão tópicos
// das matérias, senão tópicos dos módulos.
func (a *Assembler) resolveTopics(scope *PlanContent) ([]uuid.UUID, error) {
	if scope == nil {
		return nil, nil
	}
	if len(scope.TopicIDs) > 0 {
		return scope.TopicIDs, nil
	}
	if len(scope.SubjectIDs) > 0 {
		return a.topics.ListIDsBySubjectIDs(scope.SubjectIDs)
	}
	if len(scope.ModuleIDs) > 0 {
		return a.topics.ListIDsByModuleIDs(scope.ModuleIDs)
	}
	return nil, nil
}
