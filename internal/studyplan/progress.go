package studyplan

import "math"

// Percent arredonda 100*numerator/denominator. Denominador zero vale 0, nunca
// divisão por zero.
func Percent(numerator, denominator int) int {
	if denominator == 0 {
		return 0
	}
	return int(math.Round(100 * float64(numerator) / float64(denominator)))
}

type QuestionProgress struct {
	Attempted int `json:"attempted"`
	Correct   int `json:"correct"`
	Total     int `json:"total"`
	Percent   int `json:"percent"`
}

type FlashcardProgress struct {
	Studied int `json:"studied"`
	Correct int `json:"correct"`
	Total   int `json:"total"`
	Percent int `json:"percent"`
}

type SessionProgress struct {
	SessionID   string            `json:"session_id"`
	SessionDate DateOnly          `json:"session_date"`
	ContentType ContentType       `json:"content_type"`
	Status      SessionStatus     `json:"status"`
	Questions   QuestionProgress  `json:"questions"`
	Flashcards  FlashcardProgress `json:"flashcards"`
}

type PlanProgress struct {
	PlanID            string            `json:"plan_id"`
	Status            PlanStatus        `json:"status"`
	TotalSessions     int               `json:"total_sessions"`
	CompletedSessions int               `json:"completed_sessions"`
	Percent           int               `json:"percent"`
	Questions         QuestionProgress  `json:"questions"`
	Flashcards        FlashcardProgress `json:"flashcards"`
}

// sessionProgress monta o rollup de uma sessão a partir dos contadores da
// própria linha e dos totais do snapshot. Sempre recalculado, nunca cacheado.
func sessionProgress(s *PlanSession, qbankTotal, flashcardTotal int) SessionProgress {
	return SessionProgress{
		SessionID:   s.ID.String(),
		SessionDate: s.SessionDate,
		ContentType: s.ContentType,
		Status:      s.Status,
		Questions: QuestionProgress{
			Attempted: s.QuestionsAttempted,
			Correct:   s.QuestionsCorrect,
			Total:     qbankTotal,
			Percent:   Percent(s.QuestionsCorrect, qbankTotal),
		},
		Flashcards: FlashcardProgress{
			Studied: s.FlashcardsStudied,
			Correct: s.FlashcardsCorrect,
			Total:   flashcardTotal,
			Percent: Percent(s.FlashcardsCorrect, flashcardTotal),
		},
	}
}

// planProgress agrega todas as sessões do plano reconsultadas na hora.
func planProgress(plan *StudyPlan, sessions []*PlanSession, qbankTotal, flashcardTotal int) PlanProgress {
	p := PlanProgress{
		PlanID:        plan.ID.String(),
		Status:        plan.Status,
		TotalSessions: len(sessions),
	}

	for _, s := range sessions {
		if s.Status == SessionStatusCompleted {
			p.CompletedSessions++
		}
		p.Questions.Attempted += s.QuestionsAttempted
		p.Questions.Correct += s.QuestionsCorrect
		p.Flashcards.Studied += s.FlashcardsStudied
		p.Flashcards.Correct += s.FlashcardsCorrect
	}

	p.Percent = Percent(p.CompletedSessions, p.TotalSessions)
	p.Questions.Total = qbankTotal
	p.Questions.Percent = Percent(p.Questions.Correct, qbankTotal)
	p.Flashcards.Total = flashcardTotal
	p.Flashcards.Percent = Percent(p.Flashcards.Correct, flashcardTotal)
	return p
}
