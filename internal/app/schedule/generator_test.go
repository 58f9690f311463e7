package schedule

import (
	"reflect"
	"testing"
	"time"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func dates(occurrences []Occurrence) []string {
	var out []string
	for _, occ := range occurrences {
		out = append(out, occ.ScheduledDate.Format(DateLayout))
	}
	return out
}

func TestGenerateNoAnchor(t *testing.T) {
	// Оборудование без даты первого сервиса не имеет расписания
	occurrences := Generate("eq-1", nil, Monthly, date(2030, time.January, 1))
	if len(occurrences) != 0 {
		t.Fatalf("expected no occurrences without anchor, got %d", len(occurrences))
	}
}

func TestGenerateQuarterly(t *testing.T) {
	anchor := date(2026, time.January, 15)
	occurrences := Generate("eq-1", &anchor, Quarterly, date(2026, time.December, 31))

	want := []string{"2026-01-15", "2026-04-15", "2026-07-15", "2026-10-15"}
	if got := dates(occurrences); !reflect.DeepEqual(got, want) {
		t.Fatalf("quarterly dates = %v, want %v", got, want)
	}
}

func TestGenerateSpacing(t *testing.T) {
	// N-я дата — это anchor + N×шаг месяцев, для всех периодичностей
	anchor := date(2026, time.March, 10)
	horizon := date(2028, time.March, 10)

	tests := []struct {
		periodicity Periodicity
		months      int
	}{
		{Monthly, 1},
		{Bimonthly, 2},
		{Quarterly, 3},
		{FourMonthly, 4},
		{Semiannual, 6},
		{Annual, 12},
	}

	for _, tt := range tests {
		t.Run(string(tt.periodicity), func(t *testing.T) {
			occurrences := Generate("eq-1", &anchor, tt.periodicity, horizon)
			if len(occurrences) == 0 {
				t.Fatal("expected occurrences")
			}
			for n, occ := range occurrences {
				want := anchor.AddDate(0, n*tt.months, 0)
				if !occ.ScheduledDate.Equal(want) {
					t.Errorf("occurrence %d = %s, want %s", n,
						occ.ScheduledDate.Format(DateLayout), want.Format(DateLayout))
				}
			}
		})
	}
}

func TestGenerateEndOfMonthClamp(t *testing.T) {
	// 31 января + 1 месяц: в феврале нет 31-го дня — прижимаем к последнему
	// дню месяца, без переноса на март. Сдвиг считается от anchor, поэтому
	// в марте снова 31-е.
	anchor := date(2026, time.January, 31)
	occurrences := Generate("eq-1", &anchor, Monthly, date(2026, time.June, 30))

	want := []string{"2026-01-31", "2026-02-28", "2026-03-31", "2026-04-30", "2026-05-31", "2026-06-30"}
	if got := dates(occurrences); !reflect.DeepEqual(got, want) {
		t.Fatalf("clamped dates = %v, want %v", got, want)
	}
}

func TestGenerateLeapFebruary(t *testing.T) {
	anchor := date(2024, time.January, 31)
	occurrences := Generate("eq-1", &anchor, Monthly, date(2024, time.February, 29))

	want := []string{"2024-01-31", "2024-02-29"}
	if got := dates(occurrences); !reflect.DeepEqual(got, want) {
		t.Fatalf("leap february dates = %v, want %v", got, want)
	}
}

func TestGenerateHorizonInclusive(t *testing.T) {
	anchor := date(2026, time.January, 15)

	// Горизонт ровно на дате обслуживания — дата входит
	occurrences := Generate("eq-1", &anchor, Monthly, date(2026, time.February, 15))
	want := []string{"2026-01-15", "2026-02-15"}
	if got := dates(occurrences); !reflect.DeepEqual(got, want) {
		t.Fatalf("inclusive horizon dates = %v, want %v", got, want)
	}

	// Горизонт раньше anchor — пусто
	occurrences = Generate("eq-1", &anchor, Monthly, date(2026, time.January, 14))
	if len(occurrences) != 0 {
		t.Fatalf("expected no occurrences before anchor, got %v", dates(occurrences))
	}
}

func TestGenerateDeterministic(t *testing.T) {
	anchor := date(2026, time.May, 20)
	horizon := date(2027, time.May, 20)

	first := Generate("eq-1", &anchor, Semiannual, horizon)
	second := Generate("eq-1", &anchor, Semiannual, horizon)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("generation is not deterministic: %v vs %v", dates(first), dates(second))
	}
}

func TestGenerateUnknownPeriodicityFallsBackToMonthly(t *testing.T) {
	anchor := date(2026, time.January, 1)
	occurrences := Generate("eq-1", &anchor, Periodicity("weekly"), date(2026, time.March, 1))

	want := []string{"2026-01-01", "2026-02-01", "2026-03-01"}
	if got := dates(occurrences); !reflect.DeepEqual(got, want) {
		t.Fatalf("fallback dates = %v, want %v", got, want)
	}
}

func TestGenerateNormalizesTimeOfDay(t *testing.T) {
	// Время и зона anchor отбрасываются — остаётся полночь UTC
	anchor := time.Date(2026, time.January, 15, 18, 30, 0, 0, time.FixedZone("MSK", 3*60*60))
	occurrences := Generate("eq-1", &anchor, Annual, date(2026, time.December, 31))

	if len(occurrences) != 1 {
		t.Fatalf("expected 1 occurrence, got %d", len(occurrences))
	}
	if !occurrences[0].ScheduledDate.Equal(date(2026, time.January, 15)) {
		t.Fatalf("date = %v, want 2026-01-15 UTC midnight", occurrences[0].ScheduledDate)
	}
}

func TestOccurrenceKey(t *testing.T) {
	occ := Occurrence{EquipmentID: "eq-1", ScheduledDate: date(2026, time.April, 15)}
	want := Key{EquipmentID: "eq-1", Date: "2026-04-15"}
	if occ.Key() != want {
		t.Fatalf("key = %+v, want %+v", occ.Key(), want)
	}
}
