package utils

import (
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Formatos aceitos para datas do dataset, em ordem de tentativa
var calendarDateLayouts = []string{
	time.DateOnly,
	"01/02/2006",
	"1/2/2006",
	"Jan 2, 2006",
	"January 2, 2006",
}

// ParseCalendarDate converte uma data de calendário para meia-noite UTC.
func ParseCalendarDate(dateStr string) (time.Time, error) {
	value := strings.TrimSpace(dateStr)
	if value == "" {
		return time.Time{}, errors.New("data vazia")
	}

	for _, layout := range calendarDateLayouts {
		date, err := time.ParseInLocation(layout, value, time.UTC)
		if err == nil {
			return date, nil
		}
	}

	return time.Time{}, errors.Errorf("formato de data inválido: %q", dateStr)
}
