package studyplan

import (
	"errors"
	"testing"
	"time"
)

func mustDate(t *testing.T, s string) DateOnly {
	t.Helper()
	d, err := ParseDateOnly(s)
	if err != nil {
		t.Fatalf("data inválida no teste: %v", err)
	}
	return d
}

func TestDatesBetween(t *testing.T) {
	t.Run("cenário do plano de outubro", func(t *testing.T) {
		// 2025-10-28 cai numa terça; 2025-11-01 sábado; 2025-11-02 domingo.
		start := mustDate(t, "2025-10-28")
		end := mustDate(t, "2025-11-02")

		dates, err := DatesBetween(start, end, []string{"Sat", "Sun", "Mon", "Tue"})
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}

		want := []string{"2025-10-28", "2025-11-01", "2025-11-02"}
		if len(dates) != len(want) {
			t.Fatalf("esperava %d datas, obteve %d", len(want), len(dates))
		}
		for i, w := range want {
			if dates[i].Date.String() != w {
				t.Errorf("posição %d: esperava %s, obteve %s", i, w, dates[i].Date.String())
			}
		}
		if dates[0].WeekdayName != "Tuesday" {
			t.Errorf("esperava Tuesday, obteve %s", dates[0].WeekdayName)
		}
	})

	t.Run("somente datas dentro do intervalo em ordem crescente", func(t *testing.T) {
		start := mustDate(t, "2025-01-01")
		end := mustDate(t, "2025-01-31")

		dates, err := DatesBetween(start, end, []string{"mon", "WED", "fri"})
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}

		seen := make(map[string]bool)
		var prev DateOnly
		for _, d := range dates {
			if d.Date.Before(start.Time) || d.Date.After(end.Time) {
				t.Errorf("data fora do intervalo: %s", d.Date.String())
			}
			switch d.Date.Weekday() {
			case time.Monday, time.Wednesday, time.Friday:
			default:
				t.Errorf("dia da semana não permitido: %s", d.WeekdayName)
			}
			if seen[d.Date.String()] {
				t.Errorf("data duplicada: %s", d.Date.String())
			}
			seen[d.Date.String()] = true
			if !prev.IsZero() && !d.Date.After(prev.Time) {
				t.Errorf("datas fora de ordem: %s depois de %s", d.Date.String(), prev.String())
			}
			prev = d.Date
		}
	})

	t.Run("intervalo invertido retorna ErrInvalidRange", func(t *testing.T) {
		start := mustDate(t, "2025-02-10")
		end := mustDate(t, "2025-02-01")

		if _, err := DatesBetween(start, end, []string{"mon"}); !errors.Is(err, ErrInvalidRange) {
			t.Errorf("esperava ErrInvalidRange, obteve %v", err)
		}
	})

	t.Run("abreviações desconhecidas são ignoradas", func(t *testing.T) {
		start := mustDate(t, "2025-03-03")
		end := mustDate(t, "2025-03-09")

		dates, err := DatesBetween(start, end, []string{"xyz", "mon"})
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if len(dates) != 1 || dates[0].Date.String() != "2025-03-03" {
			t.Fatalf("esperava apenas a segunda-feira 2025-03-03, obteve %v", dates)
		}
	})

	t.Run("nenhum dia permitido produz lista vazia", func(t *testing.T) {
		start := mustDate(t, "2025-03-03")
		end := mustDate(t, "2025-03-09")

		dates, err := DatesBetween(start, end, nil)
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if len(dates) != 0 {
			t.Errorf("esperava lista vazia, obteve %d datas", len(dates))
		}
	})

	t.Run("mesmo dia incluído nas duas pontas", func(t *testing.T) {
		day := mustDate(t, "2025-03-05")

		dates, err := DatesBetween(day, day, []string{"wed"})
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if len(dates) != 1 {
			t.Fatalf("esperava 1 data, obteve %d", len(dates))
		}
	})
}

func TestParseWeekday(t *testing.T) {
	if _, ok := ParseWeekday("TUE"); !ok {
		t.Error("esperava reconhecer TUE")
	}
	if _, ok := ParseWeekday(" sun "); !ok {
		t.Error("esperava reconhecer sun com espaços")
	}
	if _, ok := ParseWeekday("tuesday"); ok {
		t.Error("não deveria reconhecer nome completo")
	}
}
