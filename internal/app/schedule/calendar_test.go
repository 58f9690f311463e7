package schedule

import (
	"reflect"
	"testing"
	"time"
)

func TestMonthBounds(t *testing.T) {
	start, end, err := MonthBounds(2026, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !start.Equal(date(2026, time.April, 1)) || !end.Equal(date(2026, time.April, 30)) {
		t.Fatalf("bounds = [%v, %v], want [2026-04-01, 2026-04-30]", start, end)
	}

	// Високосный февраль
	_, end, err = MonthBounds(2024, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if end.Day() != 29 {
		t.Fatalf("february 2024 ends on day %d, want 29", end.Day())
	}

	for _, month := range []int{0, 13, -1} {
		if _, _, err := MonthBounds(2026, month); err == nil {
			t.Errorf("MonthBounds(2026, %d) expected error", month)
		}
	}
	if _, _, err := MonthBounds(0, 5); err == nil {
		t.Error("MonthBounds(0, 5) expected error")
	}
}

func TestAttachAuthorizations(t *testing.T) {
	occurrences := []Occurrence{
		{EquipmentID: "eq-1", ScheduledDate: date(2026, time.January, 15)},
		{EquipmentID: "eq-1", ScheduledDate: date(2026, time.April, 15)},
		{EquipmentID: "eq-2", ScheduledDate: date(2026, time.April, 15)},
	}

	flags := map[Key]bool{
		{EquipmentID: "eq-1", Date: "2026-04-15"}: true,
		// Осиротевший флаг — такой даты генератор больше не производит
		{EquipmentID: "eq-1", Date: "2025-12-15"}: true,
	}

	attached := AttachAuthorizations(occurrences, flags)

	want := []bool{false, true, false}
	for i, occ := range attached {
		if occ.Authorized != want[i] {
			t.Errorf("occurrence %d authorized = %v, want %v", i, occ.Authorized, want[i])
		}
	}

	// Исходный срез не изменяется
	for i, occ := range occurrences {
		if occ.Authorized {
			t.Errorf("input occurrence %d was mutated", i)
		}
	}
}

func TestAuthorizationSurvivesRegeneration(t *testing.T) {
	// Флаг сохраняется при перегенерации, пока дата всё ещё производится,
	// и пропадает (возврат к false), когда дата больше не производится
	anchor := date(2026, time.January, 15)
	horizon := date(2026, time.December, 31)

	flags := map[Key]bool{
		{EquipmentID: "eq-1", Date: "2026-04-15"}: true,
	}

	first := AttachAuthorizations(Generate("eq-1", &anchor, Quarterly, horizon), flags)
	if !first[1].Authorized {
		t.Fatal("expected 2026-04-15 to stay authorized after regeneration")
	}

	// Сменили дату первого сервиса — 15 апреля больше не генерируется
	newAnchor := date(2026, time.February, 1)
	second := AttachAuthorizations(Generate("eq-1", &newAnchor, Quarterly, horizon), flags)
	for _, occ := range second {
		if occ.Authorized {
			t.Errorf("occurrence %s unexpectedly authorized", occ.ScheduledDate.Format(DateLayout))
		}
	}
}

func TestClassifyDay(t *testing.T) {
	tests := []struct {
		name       string
		authorized []bool
		want       DayStatus
	}{
		{"empty", nil, DayStatusNone},
		{"none", []bool{false, false}, DayStatusNone},
		{"partial", []bool{true, false}, DayStatusPartial},
		{"full", []bool{true, true}, DayStatusFull},
		{"single authorized", []bool{true}, DayStatusFull},
		{"single pending", []bool{false}, DayStatusNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var occurrences []Occurrence
			for _, a := range tt.authorized {
				occurrences = append(occurrences, Occurrence{
					EquipmentID:   "eq-1",
					ScheduledDate: date(2026, time.April, 15),
					Authorized:    a,
				})
			}
			if got := ClassifyDay(occurrences); got != tt.want {
				t.Errorf("ClassifyDay = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGroupByDay(t *testing.T) {
	occurrences := []Occurrence{
		{EquipmentID: "eq-2", ScheduledDate: date(2026, time.April, 15)},
		{EquipmentID: "eq-1", ScheduledDate: date(2026, time.April, 15)},
		{EquipmentID: "eq-3", ScheduledDate: date(2026, time.April, 3)},
	}

	days := GroupByDay(occurrences)

	if len(days) != 2 {
		t.Fatalf("expected 2 days, got %d", len(days))
	}
	if len(days[15]) != 2 || len(days[3]) != 1 {
		t.Fatalf("unexpected grouping: day 15 has %d, day 3 has %d", len(days[15]), len(days[3]))
	}
	// Внутри дня — детерминированный порядок по ID оборудования
	if days[15][0].EquipmentID != "eq-1" || days[15][1].EquipmentID != "eq-2" {
		t.Fatalf("day 15 order = [%s, %s], want [eq-1, eq-2]", days[15][0].EquipmentID, days[15][1].EquipmentID)
	}
}

func TestUpcoming(t *testing.T) {
	occurrences := []Occurrence{
		{EquipmentID: "eq-b", ScheduledDate: date(2026, time.March, 1)},
		{EquipmentID: "eq-a", ScheduledDate: date(2026, time.March, 1)},
		{EquipmentID: "eq-a", ScheduledDate: date(2026, time.February, 10)},
		{EquipmentID: "eq-b", ScheduledDate: date(2026, time.January, 5)},
		{EquipmentID: "eq-a", ScheduledDate: date(2026, time.April, 20)},
	}

	// Усечение после глобальной сортировки по всем единицам оборудования
	got := Upcoming(occurrences, 3, date(2026, time.February, 1))

	wantDates := []string{"2026-02-10", "2026-03-01", "2026-03-01"}
	if !reflect.DeepEqual(dates(got), wantDates) {
		t.Fatalf("upcoming dates = %v, want %v", dates(got), wantDates)
	}
	// Равные даты упорядочены по ID оборудования
	if got[1].EquipmentID != "eq-a" || got[2].EquipmentID != "eq-b" {
		t.Fatalf("tie-break order = [%s, %s], want [eq-a, eq-b]", got[1].EquipmentID, got[2].EquipmentID)
	}

	// Все результаты не раньше from
	for _, occ := range got {
		if occ.ScheduledDate.Before(date(2026, time.February, 1)) {
			t.Errorf("occurrence %s is before from", occ.ScheduledDate.Format(DateLayout))
		}
	}

	// n больше количества — возвращается всё
	if all := Upcoming(occurrences, 100, date(2026, time.January, 1)); len(all) != 5 {
		t.Fatalf("expected all 5 occurrences, got %d", len(all))
	}
}

func TestFilterRange(t *testing.T) {
	occurrences := []Occurrence{
		{EquipmentID: "eq-1", ScheduledDate: date(2026, time.March, 31)},
		{EquipmentID: "eq-1", ScheduledDate: date(2026, time.April, 1)},
		{EquipmentID: "eq-1", ScheduledDate: date(2026, time.April, 30)},
		{EquipmentID: "eq-1", ScheduledDate: date(2026, time.May, 1)},
	}

	got := FilterRange(occurrences, date(2026, time.April, 1), date(2026, time.April, 30))
	want := []string{"2026-04-01", "2026-04-30"}
	if !reflect.DeepEqual(dates(got), want) {
		t.Fatalf("filtered dates = %v, want %v", dates(got), want)
	}
}

func TestMonthViewScenario(t *testing.T) {
	// Сквозной сценарий: оборудование с первым сервисом 2026-01-15,
	// периодичность квартальная; авторизуем 2026-04-15 и смотрим апрель
	anchor := date(2026, time.January, 15)
	occurrences := Generate("eq-1", &anchor, Quarterly, date(2026, time.December, 31))

	flags := map[Key]bool{
		{EquipmentID: "eq-1", Date: "2026-04-15"}: true,
	}
	attached := AttachAuthorizations(occurrences, flags)

	start, end, err := MonthBounds(2026, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	april := FilterRange(attached, start, end)

	days := GroupByDay(april)
	if len(days) != 1 || len(days[15]) != 1 {
		t.Fatalf("expected exactly one occurrence on day 15, got %v", days)
	}
	if !days[15][0].Authorized {
		t.Fatal("expected occurrence on 2026-04-15 to be authorized")
	}
	if status := ClassifyDay(days[15]); status != DayStatusFull {
		t.Fatalf("day status = %q, want %q", status, DayStatusFull)
	}
}
