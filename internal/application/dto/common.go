package dto

import "time"

// DateLayout formato de fecha de calendario en la API.
const DateLayout = "2006-01-02"

// FormatDate fecha de calendario como YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
