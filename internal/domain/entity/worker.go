package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de asistencia y modos de pago de jornales.
const (
	AttendanceFullDay = "Full Day"
	AttendanceHalfDay = "Half Day"
	AttendanceOutdoor = "Outdoor"
	AttendanceCustom  = "Custom"

	WagePaymentCash   = "cash"
	WagePaymentUnpaid = "unpaid"
)

// WageRate devuelve la tarifa diaria según el tipo de asistencia.
// Custom devuelve cero: el monto lo fija el llamador.
func WageRate(attendanceType string) decimal.Decimal {
	switch attendanceType {
	case AttendanceFullDay:
		return decimal.NewFromInt(400)
	case AttendanceHalfDay:
		return decimal.NewFromInt(200)
	case AttendanceOutdoor:
		return decimal.NewFromInt(450)
	default:
		return decimal.Zero
	}
}

// Worker representa un trabajador con contadores acumulados. Los contadores
// (CumulativeBalance = ganado − pagado, TotalEarned, TotalPaid,
// TotalDaysWorked) se mantienen solo dentro de la transacción que inserta el
// asiento de jornal correspondiente.
type Worker struct {
	ID                string
	Name              string
	Phone             string
	CumulativeBalance decimal.Decimal
	TotalDaysWorked   decimal.Decimal
	TotalEarned       decimal.Decimal
	TotalPaid         decimal.Decimal
	Active            bool
	JoinedDate        time.Time
	Notes             string
	CreatedAt         time.Time
}

// WageEntry es un asiento de jornal (append-only): asistencia con monto
// ganado, pago directo, o ambos.
type WageEntry struct {
	ID                string
	Date              time.Time
	WorkerID          string
	ProductionEntryID *string
	AttendanceType    string
	WageEarned        decimal.Decimal
	PaidToday         decimal.Decimal
	PaymentMode       string // cash | unpaid
	Notes             string
	CreatedAt         time.Time
}

// WorkerStatementLine es una línea del extracto del trabajador con saldo
// corrido.
type WorkerStatementLine struct {
	EntryDate      time.Time
	AttendanceType string
	WageEarned     decimal.Decimal
	PaidToday      decimal.Decimal
	RunningBalance decimal.Decimal
}
