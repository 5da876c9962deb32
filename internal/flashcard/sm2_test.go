package flashcard

import (
	"testing"
	"time"
)

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }

func newState() *ReviewState {
	return &ReviewState{
		EaseFactor: DefaultEaseFactor,
		CardStatus: CardStatusNew,
	}
}

func TestNormalizeQuality(t *testing.T) {
	t.Run("ExplicitQuality", func(t *testing.T) {
		if got := NormalizeQuality(ReviewInput{Quality: intPtr(5)}); got != 5 {
			t.Errorf("Nota explícita deveria vencer. Esperado: 5, Recebido: %d", got)
		}
	})

	t.Run("QualityClamped", func(t *testing.T) {
		if got := NormalizeQuality(ReviewInput{Quality: intPtr(9)}); got != 5 {
			t.Errorf("Nota acima de 5 deveria ser limitada. Recebido: %d", got)
		}
		if got := NormalizeQuality(ReviewInput{Quality: intPtr(-1)}); got != 0 {
			t.Errorf("Nota abaixo de 0 deveria ser limitada. Recebido: %d", got)
		}
	})

	t.Run("BooleanCorrect", func(t *testing.T) {
		if got := NormalizeQuality(ReviewInput{Correct: boolPtr(true)}); got != 4 {
			t.Errorf("Acerto booleano deveria virar 4. Recebido: %d", got)
		}
		if got := NormalizeQuality(ReviewInput{Correct: boolPtr(false)}); got != 2 {
			t.Errorf("Erro booleano deveria virar 2. Recebido: %d", got)
		}
	})

	t.Run("Default", func(t *testing.T) {
		if got := NormalizeQuality(ReviewInput{}); got != 3 {
			t.Errorf("Sem sinal, a nota padrão deveria ser 3. Recebido: %d", got)
		}
	})
}

func TestApplyReviewBootstrap(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	state := newState()

	// Primeira revisão com nota 5: intervalo 1 dia, uma repetição, ease sobe.
	out := ApplyReview(state, 5, now)
	if out.IntervalDays != 1 || out.Repetitions != 1 {
		t.Fatalf("Primeira revisão incorreta: interval=%d, repetitions=%d", out.IntervalDays, out.Repetitions)
	}
	if out.Unit != "days" || out.NextReviewIn != 1 {
		t.Errorf("Agendamento incorreto: %d %s", out.NextReviewIn, out.Unit)
	}
	if state.EaseFactor <= DefaultEaseFactor {
		t.Errorf("Ease deveria subir com nota 5. Recebido: %f", state.EaseFactor)
	}
	if state.CardStatus != CardStatusSeen {
		t.Errorf("Cartão deveria estar 'seen'. Recebido: %s", state.CardStatus)
	}
	if !state.Solved {
		t.Error("Nota 5 deveria marcar o cartão como resolvido.")
	}

	// Segunda revisão com nota 5: intervalo 2 dias.
	out = ApplyReview(state, 5, now.AddDate(0, 0, 1))
	if out.IntervalDays != 2 || out.Repetitions != 2 {
		t.Fatalf("Segunda revisão incorreta: interval=%d, repetitions=%d", out.IntervalDays, out.Repetitions)
	}

	// Terceira revisão com nota 2: repetições zeram, retorno em horas, ease cai
	// mas nunca abaixo do piso.
	easeBefore := state.EaseFactor
	out = ApplyReview(state, 2, now.AddDate(0, 0, 3))
	if out.Repetitions != 0 {
		t.Errorf("Nota < 3 deveria zerar repetições. Recebido: %d", out.Repetitions)
	}
	if out.Unit != "hours" || out.NextReviewIn != retryAfterHours {
		t.Errorf("Nota < 3 deveria agendar retorno em horas. Recebido: %d %s", out.NextReviewIn, out.Unit)
	}
	if state.EaseFactor >= easeBefore {
		t.Errorf("Ease deveria cair com nota 2. Antes: %f, Depois: %f", easeBefore, state.EaseFactor)
	}
	if state.EaseFactor < MinEaseFactor {
		t.Errorf("Ease abaixo do piso: %f", state.EaseFactor)
	}
	if state.CardStatus != CardStatusNotSeen {
		t.Errorf("Cartão reprovado deveria estar 'not_seen'. Recebido: %s", state.CardStatus)
	}
}

func TestApplyReviewThirdBootstrapAndGrowth(t *testing.T) {
	now := time.Now()
	state := newState()

	for i, want := range []int{1, 2, 4} {
		out := ApplyReview(state, 4, now)
		if out.IntervalDays != want {
			t.Fatalf("Bootstrap %d incorreto. Esperado: %d, Recebido: %d", i+1, want, out.IntervalDays)
		}
	}

	// A partir da quarta repetição o intervalo cresce pelo ease anterior.
	prev := state.IntervalDays
	out := ApplyReview(state, 4, now)
	if out.IntervalDays < prev {
		t.Errorf("Intervalo não deveria encolher em sequência de acertos. Antes: %d, Depois: %d", prev, out.IntervalDays)
	}
	if out.Repetitions != 4 {
		t.Errorf("Repetições incorretas. Esperado: 4, Recebido: %d", out.Repetitions)
	}
}

func TestApplyReviewEaseFloor(t *testing.T) {
	now := time.Now()
	state := newState()

	for i := 0; i < 20; i++ {
		ApplyReview(state, 0, now)
		if state.EaseFactor < MinEaseFactor {
			t.Fatalf("Ease caiu abaixo do piso na revisão %d: %f", i+1, state.EaseFactor)
		}
	}
	if state.EaseFactor != MinEaseFactor {
		t.Errorf("Após muitas reprovações o ease deveria estar no piso. Recebido: %f", state.EaseFactor)
	}
}

func TestApplyReviewNextReviewTimestamps(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	t.Run("FailureSchedulesHours", func(t *testing.T) {
		state := newState()
		ApplyReview(state, 1, now)

		want := now.Add(retryAfterHours * time.Hour)
		if state.NextReview == nil || !state.NextReview.Equal(want) {
			t.Errorf("NextReview incorreto. Esperado: %v, Recebido: %v", want, state.NextReview)
		}
	})

	t.Run("SuccessSchedulesDays", func(t *testing.T) {
		state := newState()
		ApplyReview(state, 4, now)

		want := now.Add(24 * time.Hour)
		if state.NextReview == nil || !state.NextReview.Equal(want) {
			t.Errorf("NextReview incorreto. Esperado: %v, Recebido: %v", want, state.NextReview)
		}
	})

	t.Run("QualityThreeDoesNotSolve", func(t *testing.T) {
		state := newState()
		ApplyReview(state, 3, now)

		if state.Solved {
			t.Error("Nota 3 não deveria marcar o cartão como resolvido.")
		}
		if state.CardStatus != CardStatusSeen {
			t.Errorf("Nota 3 deveria marcar como 'seen'. Recebido: %s", state.CardStatus)
		}
	})
}
