package schedule

import (
	"fmt"
	"sort"
	"time"
)

// DefaultHorizonMonths — горизонт генерации по умолчанию: 12 месяцев вперёд
const DefaultHorizonMonths = 12

// DayStatus — агрегатный статус дня в календаре
type DayStatus string

const (
	DayStatusNone    DayStatus = "none"    // ни одно обслуживание дня не авторизовано
	DayStatusPartial DayStatus = "partial" // авторизована часть обслуживаний
	DayStatusFull    DayStatus = "full"    // авторизованы все обслуживания дня
)

// DefaultHorizon возвращает горизонт генерации по умолчанию от заданной даты
func DefaultHorizon(from time.Time) time.Time {
	return addMonths(DateOnly(from), DefaultHorizonMonths)
}

// MonthBounds возвращает первый и последний день месяца.
// Некорректный месяц — ошибка валидации, а не вычисление.
func MonthBounds(year, month int) (time.Time, time.Time, error) {
	if month < 1 || month > 12 {
		return time.Time{}, time.Time{}, fmt.Errorf("month must be between 1 and 12, got %d", month)
	}
	if year < 1 {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid year %d", year)
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return start, end, nil
}

// AttachAuthorizations проставляет флаги авторизации по идентичности
// обслуживания (оборудование, дата). Флаги для дат, которые генератор
// больше не производит, просто не находят пары и считаются осиротевшими —
// ленивое осиротение, отдельной чистки не требуется.
func AttachAuthorizations(occurrences []Occurrence, flags map[Key]bool) []Occurrence {
	result := make([]Occurrence, len(occurrences))
	for i, occ := range occurrences {
		occ.Authorized = flags[occ.Key()]
		result[i] = occ
	}
	return result
}

// FilterRange оставляет обслуживания с датой в [from, to] включительно
func FilterRange(occurrences []Occurrence, from, to time.Time) []Occurrence {
	from = DateOnly(from)
	to = DateOnly(to)

	var result []Occurrence
	for _, occ := range occurrences {
		if occ.ScheduledDate.Before(from) || occ.ScheduledDate.After(to) {
			continue
		}
		result = append(result, occ)
	}
	return result
}

// SortOccurrences сортирует по возрастанию даты; при равных датах —
// по ID оборудования, чтобы порядок был детерминированным
func SortOccurrences(occurrences []Occurrence) {
	sort.SliceStable(occurrences, func(i, j int) bool {
		if !occurrences[i].ScheduledDate.Equal(occurrences[j].ScheduledDate) {
			return occurrences[i].ScheduledDate.Before(occurrences[j].ScheduledDate)
		}
		return occurrences[i].EquipmentID < occurrences[j].EquipmentID
	})
}

// GroupByDay группирует обслуживания по дню месяца.
// Внутри дня порядок детерминированный (см. SortOccurrences).
func GroupByDay(occurrences []Occurrence) map[int][]Occurrence {
	sorted := make([]Occurrence, len(occurrences))
	copy(sorted, occurrences)
	SortOccurrences(sorted)

	days := make(map[int][]Occurrence)
	for _, occ := range sorted {
		day := occ.ScheduledDate.Day()
		days[day] = append(days[day], occ)
	}
	return days
}

// ClassifyDay возвращает трёхзначный агрегатный статус дня:
// full — авторизованы все обслуживания, partial — часть, none — ни одного
func ClassifyDay(occurrences []Occurrence) DayStatus {
	authorized := 0
	for _, occ := range occurrences {
		if occ.Authorized {
			authorized++
		}
	}

	switch {
	case len(occurrences) == 0 || authorized == 0:
		return DayStatusNone
	case authorized == len(occurrences):
		return DayStatusFull
	default:
		return DayStatusPartial
	}
}

// Upcoming возвращает не более n ближайших обслуживаний с датой >= from.
// Усечение до n выполняется только после глобальной сортировки по всем
// единицам оборудования, не по каждой в отдельности.
func Upcoming(occurrences []Occurrence, n int, from time.Time) []Occurrence {
	from = DateOnly(from)

	var result []Occurrence
	for _, occ := range occurrences {
		if occ.ScheduledDate.Before(from) {
			continue
		}
		result = append(result, occ)
	}

	SortOccurrences(result)

	if n >= 0 && len(result) > n {
		result = result[:n]
	}
	return result
}
