package get_available_dates

import (
	"iter"
	"time"
)

// SlotPolicy источник рабочих дней
type SlotPolicy interface {
	AvailableDates(horizonDays int) iter.Seq[time.Time]
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}
