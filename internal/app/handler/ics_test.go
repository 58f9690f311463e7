package handler

import (
	"strings"
	"testing"

	"maintenance-backend/internal/app/dto"
)

func TestBuildCalendar(t *testing.T) {
	services := []dto.ServiceResponse{
		{
			EquipmentID:   "11111111-1111-1111-1111-111111111111",
			ScheduledDate: "2026-04-15",
			Authorized:    true,
			Periodicity:   "quarterly",
			Model:         "Автоклав X100",
			SerialNumber:  "SN-001",
			ClientName:    "Клиника Заря",
		},
		{
			EquipmentID:   "22222222-2222-2222-2222-222222222222",
			ScheduledDate: "2026-04-20",
			Authorized:    false,
			Periodicity:   "monthly",
			Model:         "Рентген R5",
			SerialNumber:  "SN-002",
			ClientName:    "Клиника Заря",
		},
	}

	serialized := buildCalendar(services).Serialize()

	if !strings.Contains(serialized, "BEGIN:VCALENDAR") || !strings.Contains(serialized, "END:VCALENDAR") {
		t.Fatal("serialized output is not a calendar")
	}
	if got := strings.Count(serialized, "BEGIN:VEVENT"); got != 2 {
		t.Errorf("expected 2 events, got %d", got)
	}
	if !strings.Contains(serialized, "11111111-1111-1111-1111-111111111111-2026-04-15@maintenance-backend") {
		t.Error("event UID with equipment identity not found")
	}
	// Событие на весь день: дата без компоненты времени
	if !strings.Contains(serialized, "VALUE=DATE:20260415") {
		t.Error("all-day start date not found")
	}
	if !strings.Contains(serialized, "VALUE=DATE:20260416") {
		t.Error("all-day end date (next day) not found")
	}
}

func TestBuildCalendarEmpty(t *testing.T) {
	serialized := buildCalendar(nil).Serialize()

	if strings.Contains(serialized, "BEGIN:VEVENT") {
		t.Error("empty input must produce no events")
	}
	if !strings.Contains(serialized, "METHOD:PUBLISH") {
		t.Error("calendar method not set")
	}
}

func TestBuildCalendarSkipsBadDates(t *testing.T) {
	services := []dto.ServiceResponse{
		{EquipmentID: "bad", ScheduledDate: "not-a-date"},
	}

	serialized := buildCalendar(services).Serialize()
	if strings.Contains(serialized, "BEGIN:VEVENT") {
		t.Error("occurrence with unparseable date must be skipped")
	}
}
