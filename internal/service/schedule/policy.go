package schedule

import (
	"errors"
	"fmt"
	"iter"
	"sort"
	"time"

	"github.com/m04kA/barber-booking/internal/domain"
	"github.com/m04kA/barber-booking/pkg/types"
)

var (
	// ErrNoOpenDays возвращается, если в настройках нет ни одного рабочего дня
	ErrNoOpenDays = errors.New("schedule: at least one open day is required")

	// ErrNoSlots возвращается, если сетка слотов пустая
	ErrNoSlots = errors.New("schedule: at least one slot is required")

	// ErrInvalidSlot возвращается при некорректном значении слота в настройках
	ErrInvalidSlot = errors.New("schedule: invalid slot value")
)

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Settings настройки расписания
type Settings struct {
	OpenDays []time.Weekday
	Slots    []string
	Location *time.Location // Часовой пояс заведения, nil - UTC
}

// Policy правила допустимых дней и слотов для записи.
// Не имеет побочных эффектов: результат зависит только от настроек и текущей даты
type Policy struct {
	openDays map[time.Weekday]bool
	slots    []types.TimeString
	slotSet  map[types.TimeString]bool
	location *time.Location
	clock    TimeProvider
}

// NewPolicy создает политику слотов
func NewPolicy(settings Settings, clock TimeProvider) (*Policy, error) {
	if len(settings.OpenDays) == 0 {
		return nil, ErrNoOpenDays
	}
	if len(settings.Slots) == 0 {
		return nil, ErrNoSlots
	}

	p := &Policy{
		openDays: make(map[time.Weekday]bool, len(settings.OpenDays)),
		slotSet:  make(map[types.TimeString]bool, len(settings.Slots)),
		location: settings.Location,
		clock:    clock,
	}
	if p.location == nil {
		p.location = time.UTC
	}
	if p.clock == nil {
		p.clock = &RealTimeProvider{}
	}

	for _, day := range settings.OpenDays {
		p.openDays[day] = true
	}

	for _, raw := range settings.Slots {
		slot, err := types.NewTimeStringFromString(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidSlot, err)
		}
		if p.slotSet[slot] {
			continue
		}
		p.slotSet[slot] = true
		p.slots = append(p.slots, slot)
	}

	sort.Slice(p.slots, func(i, j int) bool { return p.slots[i].IsBefore(p.slots[j]) })

	return p, nil
}

// Today текущая дата в часовом поясе заведения
func (p *Policy) Today() time.Time {
	return domain.DateOnly(p.clock.Now().In(p.location))
}

// Slots возвращает копию сетки слотов в порядке возрастания
func (p *Policy) Slots() []types.TimeString {
	out := make([]types.TimeString, len(p.slots))
	copy(out, p.slots)
	return out
}

// IsOpenDay возвращает true, если заведение работает в этот день недели
func (p *Policy) IsOpenDay(date time.Time) bool {
	return p.openDays[date.Weekday()]
}

// IsSlotTime возвращает true, если время точно совпадает с одним из слотов
func (p *Policy) IsSlotTime(t types.TimeString) bool {
	return p.slotSet[t]
}

// IsNotPast возвращает true, если дата - сегодня или позже
func (p *Policy) IsNotPast(date time.Time) bool {
	return !domain.DateOnly(date).Before(p.Today())
}

// IsValidSlot проверяет, что (дата, время) - допустимый слот для записи:
// дата не в прошлом, день рабочий, время входит в сетку слотов
func (p *Policy) IsValidSlot(date time.Time, t types.TimeString) bool {
	if date.IsZero() || t.IsZero() {
		return false
	}
	return p.IsNotPast(date) && p.IsOpenDay(domain.DateOnly(date)) && p.IsSlotTime(t)
}

// AvailableDates возвращает ближайшие horizonDays календарных дней начиная с сегодняшнего,
// отфильтрованные по рабочим дням. Последовательность можно обходить повторно
func (p *Policy) AvailableDates(horizonDays int) iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		start := p.Today()
		for i := 0; i < horizonDays; i++ {
			day := start.AddDate(0, 0, i)
			if !p.IsOpenDay(day) {
				continue
			}
			if !yield(day) {
				return
			}
		}
	}
}

// CurrentWeek возвращает границы недели (понедельник - воскресенье), содержащей сегодняшний день
func (p *Policy) CurrentWeek() (time.Time, time.Time) {
	today := p.Today()
	offset := (int(today.Weekday()) + 6) % 7 // понедельник -> 0, воскресенье -> 6
	monday := today.AddDate(0, 0, -offset)
	return monday, monday.AddDate(0, 0, 6)
}

// ParseDate парсит дату в формате YYYY-MM-DD
func ParseDate(s string) (time.Time, error) {
	parsed, err := time.Parse(domain.DateFormat, s)
	if err != nil {
		return time.Time{}, err
	}
	return domain.DateOnly(parsed), nil
}
