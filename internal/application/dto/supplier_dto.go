package dto

import "github.com/shopspring/decimal"

// SupplierFormRequest alta/modificación de proveedor.
type SupplierFormRequest struct {
	Name           string          `json:"supplier_name" validate:"required"`
	CompanyName    string          `json:"company_name"`
	Phone          string          `json:"phone" validate:"required"`
	Email          string          `json:"email" validate:"omitempty,email"`
	GSTIN          string          `json:"gstin"`
	Address        string          `json:"address"`
	City           string          `json:"city"`
	State          string          `json:"state"`
	Pincode        string          `json:"pincode"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
	Active         *bool           `json:"active"`
}

// SupplierResponse representación HTTP de un proveedor con su saldo derivado.
type SupplierResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"supplier_name"`
	CompanyName    string          `json:"company_name,omitempty"`
	Phone          string          `json:"phone"`
	Email          string          `json:"email,omitempty"`
	GSTIN          string          `json:"gstin,omitempty"`
	City           string          `json:"city,omitempty"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
	TotalPurchases decimal.Decimal `json:"total_purchases"`
	TotalPaid      decimal.Decimal `json:"total_paid"`
	Outstanding    decimal.Decimal `json:"outstanding"`
	Active         bool            `json:"active"`
}

// SuppliersSummaryDTO agregados del maestro de proveedores.
type SuppliersSummaryDTO struct {
	TotalSuppliers           int             `json:"total_suppliers"`
	ActiveSuppliers          int             `json:"active_suppliers"`
	TotalOutstanding         decimal.Decimal `json:"total_outstanding"`
	TotalPurchases           decimal.Decimal `json:"total_purchases"`
	TotalPaid                decimal.Decimal `json:"total_paid"`
	SuppliersWithOutstanding int             `json:"suppliers_with_outstanding"`
}

// POItemRequest línea de orden de compra.
type POItemRequest struct {
	MaterialName     string          `json:"material_name" validate:"required"`
	MaterialCategory string          `json:"material_category"`
	Quantity         decimal.Decimal `json:"quantity"`
	Unit             string          `json:"unit" validate:"required"`
	RatePerUnit      decimal.Decimal `json:"rate_per_unit"`
	GSTPercentage    decimal.Decimal `json:"gst_percentage"`
	Notes            string          `json:"notes"`
}

// CreatePORequest alta de orden de compra.
type CreatePORequest struct {
	SupplierID           string          `json:"supplier_id" validate:"required"`
	OrderDate            string          `json:"order_date" validate:"required"`
	ExpectedDeliveryDate string          `json:"expected_delivery_date"`
	PaymentTerms         string          `json:"payment_terms"`
	DeliveryAddress      string          `json:"delivery_address"`
	Notes                string          `json:"notes"`
	Items                []POItemRequest `json:"items" validate:"required,min=1,dive"`
}

// POItemResponse línea de orden de compra con totales calculados.
type POItemResponse struct {
	ID            string          `json:"id"`
	MaterialName  string          `json:"material_name"`
	Quantity      decimal.Decimal `json:"quantity"`
	Unit          string          `json:"unit"`
	RatePerUnit   decimal.Decimal `json:"rate_per_unit"`
	Amount        decimal.Decimal `json:"amount"`
	GSTPercentage decimal.Decimal `json:"gst_percentage"`
	GSTAmount     decimal.Decimal `json:"gst_amount"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
}

// POResponse orden de compra con líneas.
type POResponse struct {
	ID                   string           `json:"id"`
	PONumber             string           `json:"po_number"`
	SupplierID           string           `json:"supplier_id"`
	OrderDate            string           `json:"order_date"`
	ExpectedDeliveryDate string           `json:"expected_delivery_date,omitempty"`
	Status               string           `json:"status"`
	Subtotal             decimal.Decimal  `json:"subtotal"`
	GSTAmount            decimal.Decimal  `json:"gst_amount"`
	TotalAmount          decimal.Decimal  `json:"total_amount"`
	PaymentTerms         string           `json:"payment_terms,omitempty"`
	Notes                string           `json:"notes,omitempty"`
	Items                []POItemResponse `json:"items,omitempty"`
}

// UpdatePOStatusRequest transición de estado de la orden.
type UpdatePOStatusRequest struct {
	Status     string `json:"status" validate:"required"`
	ApprovedBy string `json:"approved_by"`
}

// RecordSupplierPaymentRequest pago a proveedor.
type RecordSupplierPaymentRequest struct {
	SupplierID       string          `json:"supplier_id" validate:"required"`
	POID             string          `json:"po_id"`
	PaymentDate      string          `json:"payment_date" validate:"required"`
	AmountPaid       decimal.Decimal `json:"amount_paid"`
	PaymentMode      string          `json:"payment_mode" validate:"required"`
	ChequeNumber     string          `json:"cheque_number"`
	TransactionID    string          `json:"transaction_id"`
	BankName         string          `json:"bank_name"`
	PaidByPartnerID  string          `json:"paid_by_partner_id"`
	PaidFromFirmCash *bool           `json:"paid_from_firm_cash"`
	InvoiceNumber    string          `json:"invoice_number"`
	Notes            string          `json:"notes"`
}

// CreateSupplierInvoiceRequest factura recibida del proveedor.
type CreateSupplierInvoiceRequest struct {
	SupplierID    string          `json:"supplier_id" validate:"required"`
	POID          string          `json:"po_id"`
	InvoiceNumber string          `json:"invoice_number" validate:"required"`
	InvoiceDate   string          `json:"invoice_date" validate:"required"`
	DueDate       string          `json:"due_date"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	GSTAmount     decimal.Decimal `json:"gst_amount"`
	Notes         string          `json:"notes"`
}

// SupplierInvoiceResponse factura de proveedor con su estado de pago.
type SupplierInvoiceResponse struct {
	ID                string          `json:"id"`
	SupplierID        string          `json:"supplier_id"`
	InvoiceNumber     string          `json:"invoice_number"`
	InvoiceDate       string          `json:"invoice_date"`
	DueDate           string          `json:"due_date,omitempty"`
	Subtotal          decimal.Decimal `json:"subtotal"`
	GSTAmount         decimal.Decimal `json:"gst_amount"`
	TotalAmount       decimal.Decimal `json:"total_amount"`
	PaidAmount        decimal.Decimal `json:"paid_amount"`
	OutstandingAmount decimal.Decimal `json:"outstanding_amount"`
	PaymentStatus     string          `json:"payment_status"`
}

// SupplierPaymentResponse pago a proveedor registrado.
type SupplierPaymentResponse struct {
	ID          string          `json:"id"`
	SupplierID  string          `json:"supplier_id"`
	PaymentDate string          `json:"payment_date"`
	AmountPaid  decimal.Decimal `json:"amount_paid"`
	PaymentMode string          `json:"payment_mode"`
	Notes       string          `json:"notes,omitempty"`
}

// SupplierLedgerLineDTO línea del extracto del proveedor con saldo corrido.
type SupplierLedgerLineDTO struct {
	TransactionDate string          `json:"transaction_date"`
	TransactionType string          `json:"transaction_type"`
	Reference       string          `json:"reference,omitempty"`
	Description     string          `json:"description,omitempty"`
	DebitAmount     decimal.Decimal `json:"debit_amount"`
	CreditAmount    decimal.Decimal `json:"credit_amount"`
	Balance         decimal.Decimal `json:"balance"`
}
