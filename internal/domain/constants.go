package domain

import "time"

// Правила валидации записи
const (
	MinClientNameLength  = 3
	MinClientPhoneDigits = 10
)

// Правила для учётных записей сотрудников
const (
	MinStaffPasswordLength = 8
	MinStaffNameLength     = 3
)

// Значения расписания по умолчанию
const (
	DefaultHorizonDays = 30
	MaxHorizonDays     = 365
)

// DefaultOpenDays рабочие дни по умолчанию (воскресенье - выходной)
var DefaultOpenDays = []time.Weekday{
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
	time.Saturday,
}

// DefaultSlots сетка слотов по умолчанию, шаг 30 минут
var DefaultSlots = []string{
	"09:00", "09:30", "10:00", "10:30", "11:00", "11:30",
	"14:00", "14:30", "15:00", "15:30", "16:00", "16:30", "17:00", "17:30",
}

// Форматы даты и времени
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// DateOnly отбрасывает время и приводит дату к полуночи UTC
// Все даты записей хранятся и сравниваются в таком виде
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
