package timezone

import (
	"time"
	_ "time/tzdata"
)

const DefaultTimezone = "America/Sao_Paulo"

// DateLayoutBR é o formato dd/mm/aaaa exibido nas respostas.
const DateLayoutBR = "02/01/2006"

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

	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func Now() time.Time {
	return time.Now().In(Location(DefaultTimezone))
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}

// FormatDateBR formata t no fuso padrão como dd/mm/aaaa.
func FormatDateBR(t time.Time) string {
	return t.In(Location(DefaultTimezone)).Format(DateLayoutBR)
}

// ParseDate lê datas "2006-01-02" vindas de formulário.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, Location(DefaultTimezone))
}
