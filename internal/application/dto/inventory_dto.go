package dto

import "github.com/shopspring/decimal"

// CreateMaterialRequest alta de materia prima.
type CreateMaterialRequest struct {
	Name         string          `json:"material_name" validate:"required"`
	Category     string          `json:"category"`
	Unit         string          `json:"unit" validate:"required"`
	InitialStock decimal.Decimal `json:"initial_stock"`
	UnitCost     decimal.Decimal `json:"unit_cost"`
}

// MaterialResponse representación HTTP de una materia prima.
type MaterialResponse struct {
	ID               string          `json:"id"`
	Name             string          `json:"material_name"`
	Category         string          `json:"category,omitempty"`
	Unit             string          `json:"unit"`
	CurrentStock     decimal.Decimal `json:"current_stock"`
	UnitCost         decimal.Decimal `json:"unit_cost"`
	LastPurchaseDate string          `json:"last_purchase_date,omitempty"`
	Active           bool            `json:"active"`
}

// RecordPurchaseRequest compra de materia prima.
type RecordPurchaseRequest struct {
	Date          string          `json:"date" validate:"required"`
	MaterialName  string          `json:"material_name" validate:"required"`
	Quantity      decimal.Decimal `json:"quantity"`
	UnitCost      decimal.Decimal `json:"unit_cost"`
	VendorName    string          `json:"vendor_name"`
	PartnerID     string          `json:"partner_id"`
	PaidFrom      string          `json:"paid_from" validate:"required,oneof=office_cash partner_pocket"`
	InvoiceNumber string          `json:"invoice_number"`
	Notes         string          `json:"notes"`
}

// PurchaseResponse compra registrada.
type PurchaseResponse struct {
	ID           string          `json:"id"`
	Date         string          `json:"date"`
	MaterialName string          `json:"material_name"`
	Quantity     decimal.Decimal `json:"quantity"`
	UnitCost     decimal.Decimal `json:"unit_cost"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	VendorName   string          `json:"vendor_name,omitempty"`
	PaidFrom     string          `json:"paid_from"`
}

// MaterialPurchaseTotals acumulado por material en el resumen de compras.
type MaterialPurchaseTotals struct {
	Quantity decimal.Decimal `json:"quantity"`
	Amount   decimal.Decimal `json:"amount"`
}

// PurchaseSummaryDTO resumen de compras de un rango.
type PurchaseSummaryDTO struct {
	Period             Period                            `json:"period"`
	TotalPurchases     int                               `json:"total_purchases"`
	TotalAmount        decimal.Decimal                   `json:"total_amount"`
	OfficeCashSpent    decimal.Decimal                   `json:"office_cash_spent"`
	PartnerPocketSpent decimal.Decimal                   `json:"partner_pocket_spent"`
	ByMaterial         map[string]MaterialPurchaseTotals `json:"by_material"`
}

// CreateAuditRequest alta de auditoría de stock.
type CreateAuditRequest struct {
	Date          string          `json:"date" validate:"required"`
	MaterialName  string          `json:"material_name" validate:"required"`
	PhysicalCount decimal.Decimal `json:"physical_count"`
	Reason        string          `json:"reason" validate:"required"`
	CreatedBy     string          `json:"created_by"`
}

// ApproveAuditRequest aprobación de una auditoría pendiente.
type ApproveAuditRequest struct {
	ApprovedBy string `json:"approved_by" validate:"required"`
}

// AuditResponse registro de auditoría.
type AuditResponse struct {
	ID                 string          `json:"id"`
	Date               string          `json:"date"`
	MaterialName       string          `json:"material_name"`
	DigitalStock       decimal.Decimal `json:"digital_stock"`
	PhysicalCount      decimal.Decimal `json:"physical_count"`
	Variance           decimal.Decimal `json:"variance"`
	VariancePercentage decimal.Decimal `json:"variance_percentage"`
	Reason             string          `json:"reason,omitempty"`
	ApprovedBy         string          `json:"approved_by,omitempty"`
	FinancialImpact    decimal.Decimal `json:"financial_impact"`
}

// MaterialAuditTotals acumulado por material en el resumen de auditorías.
type MaterialAuditTotals struct {
	Audits        int             `json:"audits"`
	TotalVariance decimal.Decimal `json:"total_variance"`
	TotalImpact   decimal.Decimal `json:"total_impact"`
}

// AuditSummaryDTO resumen de auditorías de un rango.
type AuditSummaryDTO struct {
	Period             Period                         `json:"period"`
	TotalAudits        int                            `json:"total_audits"`
	TotalVarianceValue decimal.Decimal                `json:"total_variance_value"`
	ByMaterial         map[string]MaterialAuditTotals `json:"by_material"`
}

// CreateProductionEntryRequest unidades producidas en una fecha.
type CreateProductionEntryRequest struct {
	Date     string          `json:"date" validate:"required"`
	ItemName string          `json:"item_name" validate:"required"`
	Quantity decimal.Decimal `json:"quantity"`
	Notes    string          `json:"notes"`
}

// CreateStockSaleRequest venta de producto terminado.
type CreateStockSaleRequest struct {
	Date     string          `json:"date" validate:"required"`
	ItemName string          `json:"item_name" validate:"required"`
	Quantity decimal.Decimal `json:"quantity"`
	Amount   decimal.Decimal `json:"amount"`
	Notes    string          `json:"notes"`
}

// ProductionEntryResponse producción registrada.
type ProductionEntryResponse struct {
	ID       string          `json:"id"`
	Date     string          `json:"date"`
	ItemName string          `json:"item_name"`
	Quantity decimal.Decimal `json:"quantity"`
	Notes    string          `json:"notes,omitempty"`
}

// StockSaleResponse venta registrada.
type StockSaleResponse struct {
	ID       string          `json:"id"`
	Date     string          `json:"date"`
	ItemName string          `json:"item_name"`
	Quantity decimal.Decimal `json:"quantity"`
	Amount   decimal.Decimal `json:"amount"`
	Notes    string          `json:"notes,omitempty"`
}
