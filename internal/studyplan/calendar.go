package studyplan

import (
	"errors"
	"strings"
	"time"
)

var ErrInvalidRange = errors.New("start date is after end date")

// StudyDate é um dia de estudo dentro do intervalo do plano.
type StudyDate struct {
	Date        DateOnly `json:"date"`
	WeekdayName string   `json:"weekday"`
}

var weekdayByAbbrev = map[string]time.Weekday{
	"sun": time.Sunday,
	"mon": time.Monday,
	"tue": time.Tuesday,
	"wed": time.Wednesday,
	"thu": time.Thursday,
	"fri": time.Friday,
	"sat": time.Saturday,
}

// ParseWeekday resolve uma abreviação de 3 letras, sem distinção de
// maiúsculas. Usada na validação dos DTOs de plano.
func ParseWeekday(token string) (time.Weekday, bool) {
	wd, ok := weekdayByAbbrev[strings.ToLower(strings.TrimSpace(token))]
	return wd, ok
}

// DatesBetween devolve, em ordem crescente e sem duplicatas, todas as datas
// de [start, end] cujo dia da semana está em allowedWeekdays. Abreviações
// desconhecidas são ignoradas; a validação de entrada acontece no DTO.
// Retorna ErrInvalidRange quando start > end; quem chama recupera para uma
// lista vazia.
func DatesBetween(start, end DateOnly, allowedWeekdays []string) ([]StudyDate, error) {
	if start.IsZero() || end.IsZero() || start.After(end.Time) {
		return nil, ErrInvalidRange
	}

	allowed := make(map[time.Weekday]bool, len(allowedWeekdays))
	for _, token := range allowedWeekdays {
		if wd, ok := ParseWeekday(token); ok {
			allowed[wd] = true
		}
	}

	var dates []StudyDate
	for d := start; !d.After(end.Time); d = d.AddDays(1) {
		if !allowed[d.Weekday()] {
			continue
		}
		dates = append(dates, StudyDate{
			Date:        d,
			WeekdayName: d.Weekday().String(),
		})
	}
	return dates, nil
}
