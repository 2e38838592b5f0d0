package dto

import "github.com/shopspring/decimal"

// CreateWorkerRequest alta de trabajador.
type CreateWorkerRequest struct {
	Name  string `json:"name" validate:"required"`
	Phone string `json:"phone"`
	Notes string `json:"notes"`
}

// WorkerResponse representación HTTP de un trabajador.
type WorkerResponse struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Phone             string          `json:"phone,omitempty"`
	CumulativeBalance decimal.Decimal `json:"cumulative_balance"`
	TotalDaysWorked   decimal.Decimal `json:"total_days_worked"`
	TotalEarned       decimal.Decimal `json:"total_earned"`
	TotalPaid         decimal.Decimal `json:"total_paid"`
	Active            bool            `json:"active"`
	JoinedDate        string          `json:"joined_date"`
}

// RecordAttendanceRequest asiento de asistencia/jornal.
type RecordAttendanceRequest struct {
	WorkerID       string          `json:"worker_id" validate:"required"`
	Date           string          `json:"date" validate:"required"`
	AttendanceType string          `json:"attendance_type" validate:"required,oneof='Full Day' 'Half Day' Outdoor Custom"`
	CustomWage     decimal.Decimal `json:"custom_wage"`
	PaidToday      decimal.Decimal `json:"paid_today"`
	Notes          string          `json:"notes"`
}

// PayWorkerRequest pago directo a un trabajador.
type PayWorkerRequest struct {
	WorkerID string          `json:"worker_id" validate:"required"`
	Date     string          `json:"date" validate:"required"`
	Amount   decimal.Decimal `json:"amount"`
	Notes    string          `json:"notes"`
}

// WageEntryResponse asiento de jornal registrado.
type WageEntryResponse struct {
	ID             string          `json:"id"`
	Date           string          `json:"date"`
	WorkerID       string          `json:"worker_id"`
	AttendanceType string          `json:"attendance_type,omitempty"`
	WageEarned     decimal.Decimal `json:"wage_earned"`
	PaidToday      decimal.Decimal `json:"paid_today"`
	PaymentMode    string          `json:"payment_mode"`
	Notes          string          `json:"notes,omitempty"`
}

// WorkerStatementLineDTO línea del extracto con saldo corrido.
type WorkerStatementLineDTO struct {
	EntryDate      string          `json:"entry_date"`
	AttendanceType string          `json:"attendance_type"`
	WageEarned     decimal.Decimal `json:"wage_earned"`
	PaidToday      decimal.Decimal `json:"paid_today"`
	RunningBalance decimal.Decimal `json:"running_balance"`
}

// WorkersSummaryDTO agregados del maestro de trabajadores.
type WorkersSummaryDTO struct {
	TotalWorkers         int             `json:"total_workers"`
	ActiveWorkers        int             `json:"active_workers"`
	TotalLabourLiability decimal.Decimal `json:"total_labour_liability"`
	WorkersOwedMoney     int             `json:"workers_owed_money"`
	TotalDaysWorked      decimal.Decimal `json:"total_days_worked"`
	TotalEarned          decimal.Decimal `json:"total_earned"`
	TotalPaid            decimal.Decimal `json:"total_paid"`
}
