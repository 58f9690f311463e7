package schedule

import "fmt"

// Periodicity — периодичность обслуживания оборудования.
// Закрытый набор значений, каждое отображается в фиксированный шаг в месяцах.
type Periodicity string

const (
	Monthly     Periodicity = "monthly"      // ежемесячно
	Bimonthly   Periodicity = "bimonthly"    // раз в 2 месяца
	Quarterly   Periodicity = "quarterly"    // раз в 3 месяца
	FourMonthly Periodicity = "four_monthly" // раз в 4 месяца
	Semiannual  Periodicity = "semiannual"   // раз в 6 месяцев
	Annual      Periodicity = "annual"       // раз в 12 месяцев
)

// Шаг в месяцах для каждой периодичности
var monthIntervals = map[Periodicity]int{
	Monthly:     1,
	Bimonthly:   2,
	Quarterly:   3,
	FourMonthly: 4,
	Semiannual:  6,
	Annual:      12,
}

// Months возвращает шаг периодичности в месяцах.
// Неизвестное значение трактуется как ежемесячное — политика отката,
// валидация значений выполняется на границе API.
func (p Periodicity) Months() int {
	if interval, ok := monthIntervals[p]; ok {
		return interval
	}
	return 1
}

// Valid проверяет, что значение входит в закрытый набор
func (p Periodicity) Valid() bool {
	_, ok := monthIntervals[p]
	return ok
}

// ParsePeriodicity разбирает строку в периодичность
func ParsePeriodicity(s string) (Periodicity, error) {
	p := Periodicity(s)
	if !p.Valid() {
		return "", fmt.Errorf("unknown periodicity %q", s)
	}
	return p, nil
}
