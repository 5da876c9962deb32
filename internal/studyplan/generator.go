package studyplan

// SessionAssignment é o par (dia de estudo, escopo de conteúdo) produzido
// pelo rodízio, ainda não persistido.
type SessionAssignment struct {
	Date  StudyDate
	Scope *PlanContent
}

// hasContent decide se um escopo é elegível para o rodízio. Banco de questões
// e flashcards exigem ao menos um módulo, matéria ou tópico; simulados e
// biblioteca exigem suas próprias referências.
func hasContent(scope *PlanContent) bool {
	if scope == nil {
		return false
	}
	switch scope.ContentType {
	case ContentTypeQuestionBank:
		return len(scope.ModuleIDs) > 0 || len(scope.SubjectIDs) > 0 || len(scope.TopicIDs) > 0
	case ContentTypeFlashcards:
		return len(scope.DeckIDs) > 0 ||
			len(scope.ModuleIDs) > 0 || len(scope.SubjectIDs) > 0 || len(scope.TopicIDs) > 0
	case ContentTypeEbooks:
		return len(scope.BookIDs) > 0
	case ContentTypeExams:
		return len(scope.ExamIDs) > 0
	default:
		return false
	}
}

// eligibleScopes filtra e ordena os escopos na ordem canônica do rodízio,
// independente da ordem em que foram persistidos.
func eligibleScopes(scopes []PlanContent) []*PlanContent {
	byType := make(map[ContentType]*PlanContent, len(scopes))
	for i := range scopes {
		if hasContent(&scopes[i]) {
			byType[scopes[i].ContentType] = &scopes[i]
		}
	}

	ordered := make([]*PlanContent, 0, len(byType))
	for _, ct := range contentRotation {
		if scope, ok := byType[ct]; ok {
			ordered = append(ordered, scope)
		}
	}
	return ordered
}

// RotateContent atribui um tipo de conteúdo a cada dia de estudo em rodízio.
// A atribuição é função apenas das datas e dos escopos do plano: o dia i
// recebe sempre o escopo i mod n. Regenerar com o mesmo plano reproduz a
// mesma rotação, inclusive para datas já visitadas.
func RotateContent(dates []StudyDate, scopes []*PlanContent) []SessionAssignment {
	if len(scopes) == 0 {
		return nil
	}

	assignments := make([]SessionAssignment, 0, len(dates))
	for i, date := range dates {
		assignments = append(assignments, SessionAssignment{
			Date:  date,
			Scope: scopes[i%len(scopes)],
		})
	}
	return assignments
}
