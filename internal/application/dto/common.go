package dto

import "time"

// DateLayout formato de fecha en la API (solo día, sin hora ni zona).
const DateLayout = "2006-01-02"

// ParseDate interpreta una fecha YYYY-MM-DD del wire.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// FormatDate serializa una fecha al formato del wire.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Period rango de fechas de un reporte (strings YYYY-MM-DD, vacío = sin cota).
type Period struct {
	From string `json:"from,omitempty"`
	To   string `json:"to,omitempty"`
}
