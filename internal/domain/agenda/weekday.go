package agenda

import "time"

const DateLayout = "2006-01-02"

// Dias da semana como chegam dos formulários do admin.
var weekdayNames = [7]string{
	"Domingo",
	"Lunes",
	"Martes",
	"Miercoles",
	"Jueves",
	"Viernes",
	"Sabado",
}

func WeekdayName(t time.Time) string {
	return weekdayNames[int(t.Weekday())]
}

func IsWeekdayName(name string) bool {
	for _, d := range weekdayNames {
		if d == name {
			return true
		}
	}
	return false
}

func WeekdayNames() []string {
	return weekdayNames[:]
}
