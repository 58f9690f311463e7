package schedule

import (
	"time"

	"github.com/sirupsen/logrus"
)

// DateLayout — формат даты обслуживания (ISO 8601, без времени)
const DateLayout = "2006-01-02"

// Occurrence — одно запланированное обслуживание одного оборудования
// на одну дату. Вычисляется генератором, не хранится отдельно —
// хранится только флаг авторизации (см. AttachAuthorizations).
type Occurrence struct {
	EquipmentID   string
	ScheduledDate time.Time // дата без времени, полночь UTC
	Authorized    bool
}

// Key — стабильный идентификатор обслуживания: пара (оборудование, дата).
// Не меняется при перегенерации списка обслуживаний.
type Key struct {
	EquipmentID string
	Date        string // в формате DateLayout
}

// Key возвращает идентификатор обслуживания
func (o Occurrence) Key() Key {
	return Key{
		EquipmentID: o.EquipmentID,
		Date:        o.ScheduledDate.Format(DateLayout),
	}
}

// DateOnly отбрасывает время, оставляя полночь UTC
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Generate разворачивает правило повторения в последовательность дат
// обслуживания. Чистая функция: два вызова с одинаковыми аргументами
// дают одинаковый результат.
//
// Первое обслуживание — дата первого сервиса (anchor). Каждое N-е
// обслуживание — anchor, сдвинутый на N×шаг месяцев (сдвиг всегда
// считается от anchor, а не от предыдущей даты, поэтому день месяца
// не «уплывает» после прижатия к концу короткого месяца).
// Генерация останавливается после горизонта (граница включительно).
//
// Оборудование без даты первого сервиса ещё не запланировано —
// возвращается пустая последовательность.
func Generate(equipmentID string, anchor *time.Time, p Periodicity, horizon time.Time) []Occurrence {
	if anchor == nil {
		return nil
	}

	if !p.Valid() {
		// Сюда попадать не должны: периодичность проверяется на границе.
		// Не падаем — откатываемся на ежемесячную и сигнализируем о
		// проблеме качества данных.
		logrus.Warnf("schedule: unknown periodicity %q for equipment %s, falling back to monthly", p, equipmentID)
	}
	step := p.Months()

	start := DateOnly(*anchor)
	horizon = DateOnly(horizon)

	var occurrences []Occurrence
	for n := 0; ; n++ {
		date := addMonths(start, n*step)
		if date.After(horizon) {
			break
		}
		occurrences = append(occurrences, Occurrence{
			EquipmentID:   equipmentID,
			ScheduledDate: date,
		})
	}
	return occurrences
}

// addMonths прибавляет months месяцев с прижатием к концу месяца:
// если в целевом месяце нет исходного дня (31 января + 1 месяц),
// берётся последний день целевого месяца, переноса на следующий
// месяц не происходит.
func addMonths(t time.Time, months int) time.Time {
	year, month, day := t.Date()

	// time.Date нормализует переполнение месяцев (13-й месяц → январь следующего года)
	firstOfTarget := time.Date(year, month+time.Month(months), 1, 0, 0, 0, 0, time.UTC)
	lastDay := firstOfTarget.AddDate(0, 1, -1).Day()
	if day > lastDay {
		day = lastDay
	}

	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), day, 0, 0, 0, 0, time.UTC)
}
