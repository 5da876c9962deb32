package flashcard

import (
	"math"
	"time"
)

const (
	// Piso clássico do SM-2.
	MinEaseFactor     = 1.3
	DefaultEaseFactor = 2.5

	defaultQuality = 3

	// Revisões reprovadas voltam em horas, não em dias: o cartão esquecido
	// precisa reaparecer no mesmo dia.
	retryAfterHours = 6
)

// Primeiras repetições bem-sucedidas usam intervalos fixos antes da
// progressão geométrica pelo ease factor.
var bootstrapIntervals = [...]int{1, 2, 4}

type ReviewInput struct {
	Quality *int  `json:"quality" validate:"omitempty,min=0,max=5"`
	Correct *bool `json:"correct"`
}

type ReviewOutcome struct {
	Quality      int     `json:"quality"`
	EaseFactor   float64 `json:"ease_factor"`
	Repetitions  int     `json:"repetitions"`
	IntervalDays int     `json:"interval_days"`
	NextReviewIn int     `json:"next_review_in"`
	Unit         string  `json:"unit"`
}

// NormalizeQuality converte o sinal do cliente em uma nota 0–5: nota
// explícita vence, booleano de acerto vira 4/2, ausência de ambos vira 3.
func NormalizeQuality(in ReviewInput) int {
	if in.Quality != nil {
		q := *in.Quality
		if q < 0 {
			q = 0
		}
		if q > 5 {
			q = 5
		}
		return q
	}
	if in.Correct != nil {
		if *in.Correct {
			return 4
		}
		return 2
	}
	return defaultQuality
}

// ApplyReview atualiza o estado do cartão com a variante de SM-2 do produto
// e devolve o resultado agendado. O intervalo usa o ease anterior; o ease é
// atualizado depois, na ordem do algoritmo original.
func ApplyReview(state *ReviewState, quality int, now time.Time) ReviewOutcome {
	outcome := ReviewOutcome{Quality: quality}

	if quality < 3 {
		state.Repetitions = 0
		state.CardStatus = CardStatusNotSeen

		next := now.Add(retryAfterHours * time.Hour)
		state.NextReview = &next

		outcome.NextReviewIn = retryAfterHours
		outcome.Unit = "hours"
	} else {
		var interval int
		if state.Repetitions < len(bootstrapIntervals) {
			interval = bootstrapIntervals[state.Repetitions]
		} else {
			interval = int(math.Round(float64(state.IntervalDays) * state.EaseFactor))
			if interval < 1 {
				interval = 1
			}
		}

		state.IntervalDays = interval
		state.Repetitions++
		state.CardStatus = CardStatusSeen
		if quality >= 4 {
			state.Solved = true
		}

		next := now.Add(time.Duration(interval) * 24 * time.Hour)
		state.NextReview = &next

		outcome.NextReviewIn = interval
		outcome.Unit = "days"
	}

	q := float64(quality)
	ease := state.EaseFactor + (0.1 - (5-q)*(0.08+(5-q)*0.02))
	if ease < MinEaseFactor {
		ease = MinEaseFactor
	}
	state.EaseFactor = ease
	state.LastReviewed = &now

	outcome.EaseFactor = state.EaseFactor
	outcome.Repetitions = state.Repetitions
	outcome.IntervalDays = state.IntervalDays
	return outcome
}
