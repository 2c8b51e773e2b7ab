package timezone

import "time"

const DefaultTimezone = "America/Sao_Paulo"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

// DayRange devolve o intervalo [início, fim) do dia da data informada
// no fuso padrão da empresa.
func DayRange(date time.Time) (time.Time, time.Time) {
	loc := Location(DefaultTimezone)
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)
	return start, start.Add(24 * time.Hour)
}

// MonthRange devolve o intervalo [início, fim) do mês no fuso padrão.
func MonthRange(year int, month time.Month) (time.Time, time.Time) {
	loc := Location(DefaultTimezone)
	start := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 1, 0)
}

func Now() time.Time {
	return time.Now().In(Location(DefaultTimezone))
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}
