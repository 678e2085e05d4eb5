package entity

import "time"

// Day normaliza t a un día calendario (medianoche UTC). Todas las fechas del modelo
// (registro, entrega solicitada, fecha de la orden) son días calendario.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween devuelve el número de días calendario de from a to (negativo si to es anterior).
func DaysBetween(from, to time.Time) int {
	return int(Day(to).Sub(Day(from)).Hours() / 24)
}

// AddDays suma n días calendario a t.
func AddDays(t time.Time, n int) time.Time {
	return Day(t).AddDate(0, 0, n)
}
