package domain

import (
	"errors"
	"fmt"
	"strings"
)

// TimeFrame define a granularidade exibida no gráfico de vendas
type TimeFrame string

const (
	TimeFrameWeekly    TimeFrame = "Weekly"
	TimeFrameMonthly   TimeFrame = "Monthly"
	TimeFrameQuarterly TimeFrame = "Quarterly"
)

var ErrInvalidTimeFrame = errors.New("time frame inválido")

// TimeFrames retorna as opções na ordem em que aparecem no dashboard
func TimeFrames() []TimeFrame {
	return []TimeFrame{TimeFrameWeekly, TimeFrameMonthly, TimeFrameQuarterly}
}

// ParseTimeFrame aceita o nome sem diferenciar maiúsculas e minúsculas
func ParseTimeFrame(value string) (TimeFrame, error) {
	for _, frame := range TimeFrames() {
		if strings.EqualFold(strings.TrimSpace(value), string(frame)) {
			return frame, nil
		}
	}
	return "", fmt.Errorf("%w: %q (valores aceitos: Weekly, Monthly, Quarterly)", ErrInvalidTimeFrame, value)
}
