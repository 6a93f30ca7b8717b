package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

const timeLayout = "15:04"

var (
	// ErrInvalidFormat возвращается, когда строка не соответствует формату HH:MM
	ErrInvalidFormat = errors.New("invalid time string format")

	// ErrOutOfDay возвращается, когда результат арифметики выходит за пределы суток
	ErrOutOfDay = errors.New("time string is out of day bounds")
)

// TimeString время суток в формате HH:MM без привязки к дате
type TimeString string

// NewTimeString создает TimeString из часов и минут time.Time (секунды отбрасываются)
func NewTimeString(t time.Time) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute()))
}

// NewTimeStringFromString парсит строку "HH:MM" или "HH:MM:SS"
func NewTimeStringFromString(s string) (TimeString, error) {
	t, err := parse(s)
	if err != nil {
		return "", err
	}
	return NewTimeString(t), nil
}

// MustTimeString как NewTimeStringFromString, но паникует при ошибке (для констант и тестов)
func MustTimeString(s string) TimeString {
	ts, err := NewTimeStringFromString(s)
	if err != nil {
		panic(err)
	}
	return ts
}

func parse(s string) (time.Time, error) {
	if t, err := time.Parse(timeLayout, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse("15:04:05", s); err == nil {
		return t, nil
	}
	return time.Time{}, ErrInvalidFormat
}

// String возвращает строковое представление
func (ts TimeString) String() string {
	return string(ts)
}

// IsZero true, если время не задано
func (ts TimeString) IsZero() bool {
	return ts == ""
}

// Validate проверяет формат HH:MM
func (ts TimeString) Validate() error {
	if ts.IsZero() {
		return ErrInvalidFormat
	}
	_, err := time.Parse(timeLayout, string(ts))
	if err != nil {
		return ErrInvalidFormat
	}
	return nil
}

// Minutes возвращает количество минут от начала суток
// Для некорректного значения возвращает -1
func (ts TimeString) Minutes() int {
	t, err := parse(string(ts))
	if err != nil {
		return -1
	}
	return t.Hour()*60 + t.Minute()
}

// AddMinutes прибавляет минуты; результат должен остаться в пределах [00:00, 24:00]
func (ts TimeString) AddMinutes(minutes int) (TimeString, error) {
	current := ts.Minutes()
	if current < 0 {
		return "", ErrInvalidFormat
	}

	total := current + minutes
	if total < 0 || total > 24*60 {
		return "", fmt.Errorf("%w: %s %+d min", ErrOutOfDay, ts, minutes)
	}
	// 24:00 допустимо только как граница конца дня
	if total == 24*60 {
		return TimeString("24:00"), nil
	}

	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// IsBefore true, если ts строго раньше other
func (ts TimeString) IsBefore(other TimeString) bool {
	return ts.minutesOrEnd() < other.minutesOrEnd()
}

// IsAfter true, если ts строго позже other
func (ts TimeString) IsAfter(other TimeString) bool {
	return ts.minutesOrEnd() > other.minutesOrEnd()
}

// Equal true, если время совпадает
func (ts TimeString) Equal(other TimeString) bool {
	return ts.minutesOrEnd() == other.minutesOrEnd()
}

func (ts TimeString) minutesOrEnd() int {
	if ts == "24:00" {
		return 24 * 60
	}
	return ts.Minutes()
}

// On возвращает момент времени ts в указанную дату
func (ts TimeString) On(date time.Time) time.Time {
	m := ts.minutesOrEnd()
	if m < 0 {
		m = 0
	}
	y, mo, d := date.Date()
	return time.Date(y, mo, d, 0, 0, 0, 0, date.Location()).Add(time.Duration(m) * time.Minute)
}

// Scan реализует sql.Scanner (lib/pq отдает TIME как time.Time, иногда как строку)
func (ts *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*ts = ""
		return nil
	case time.Time:
		*ts = NewTimeString(v)
		return nil
	case []byte:
		parsed, err := NewTimeStringFromString(string(v))
		if err != nil {
			return err
		}
		*ts = parsed
		return nil
	case string:
		parsed, err := NewTimeStringFromString(v)
		if err != nil {
			return err
		}
		*ts = parsed
		return nil
	default:
		return fmt.Errorf("%w: cannot scan %T", ErrInvalidFormat, src)
	}
}

// Value реализует driver.Valuer
func (ts TimeString) Value() (driver.Value, error) {
	if ts.IsZero() {
		return nil, nil
	}
	return string(ts), nil
}
