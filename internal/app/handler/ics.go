package handler

import (
	"fmt"
	"time"

	"maintenance-backend/internal/app/dto"
	"maintenance-backend/internal/app/schedule"

	ical "github.com/arran4/golang-ical"
)

// buildCalendar собирает iCalendar из обслуживаний. Каждое обслуживание —
// событие на весь день, UID формируется из идентичности (оборудование, дата)
func buildCalendar(services []dto.ServiceResponse) *ical.Calendar {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId("-//maintenance-backend//Calendar Export//RU")

	now := time.Now().UTC()

	for _, svc := range services {
		day, err := time.Parse(schedule.DateLayout, svc.ScheduledDate)
		if err != nil {
			continue
		}

		event := cal.AddEvent(fmt.Sprintf("%s-%s@maintenance-backend", svc.EquipmentID, svc.ScheduledDate))
		event.SetDtStampTime(now)
		event.SetAllDayStartAt(day)
		event.SetAllDayEndAt(day.AddDate(0, 0, 1))
		event.SetSummary(fmt.Sprintf("ТО: %s (%s)", svc.Model, svc.SerialNumber))

		status := "не авторизовано"
		if svc.Authorized {
			status = "авторизовано"
		}
		event.SetDescription(fmt.Sprintf("Клиент: %s. Периодичность: %s. Статус: %s.",
			svc.ClientName, svc.Periodicity, status))
	}

	return cal
}
