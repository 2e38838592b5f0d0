package procurement

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wallsco/firmbooks-api/internal/application/dto"
	"github.com/wallsco/firmbooks-api/internal/domain"
	"github.com/wallsco/firmbooks-api/internal/domain/entity"
	"github.com/wallsco/firmbooks-api/internal/domain/repository"
)

// SupplierBillingUseCase facturas y pagos de proveedor. Toda mutación va en
// una sola transacción: fila de negocio + contadores del proveedor + (si
// aplica) asignación a facturas y asiento de caja.
type SupplierBillingUseCase struct {
	txRunner     TxRunner
	supplierRepo repository.SupplierRepository
	invoiceRepo  repository.SupplierInvoiceRepository
	paymentRepo  repository.SupplierPaymentRepository
	partnerRepo  repository.PartnerRepository
	poRepo       repository.PurchaseOrderRepository
}

// NewSupplierBillingUseCase construye el caso de uso.
func NewSupplierBillingUseCase(
	txRunner TxRunner,
	supplierRepo repository.SupplierRepository,
	invoiceRepo repository.SupplierInvoiceRepository,
	paymentRepo repository.SupplierPaymentRepository,
	partnerRepo repository.PartnerRepository,
	poRepo repository.PurchaseOrderRepository,
) *SupplierBillingUseCase {
	return &SupplierBillingUseCase{
		txRunner:     txRunner,
		supplierRepo: supplierRepo,
		invoiceRepo:  invoiceRepo,
		paymentRepo:  paymentRepo,
		partnerRepo:  partnerRepo,
		poRepo:       poRepo,
	}
}

// CreateInvoice registra una factura del proveedor y suma su total al
// contador total_purchases en la misma transacción.
func (uc *SupplierBillingUseCase) CreateInvoice(ctx context.Context, in dto.CreateSupplierInvoiceRequest) (*entity.SupplierInvoice, error) {
	if in.Subtotal.IsNegative() || in.GSTAmount.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	total := in.Subtotal.Add(in.GSTAmount)
	if !total.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	invoiceDate, err := dto.ParseDate(in.InvoiceDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	var dueDate *time.Time
	if in.DueDate != "" {
		d, err := dto.ParseDate(in.DueDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		dueDate = &d
	}

	supplier, err := uc.supplierRepo.GetByID(in.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}

	var poID *string
	if in.POID != "" {
		po, err := uc.poRepo.GetByID(in.POID)
		if err != nil {
			return nil, err
		}
		if po == nil || po.SupplierID != in.SupplierID {
			return nil, domain.ErrNotFound
		}
		poID = &in.POID
	}

	invoice := &entity.SupplierInvoice{
		ID:                uuid.New().String(),
		SupplierID:        in.SupplierID,
		POID:              poID,
		InvoiceNumber:     in.InvoiceNumber,
		InvoiceDate:       invoiceDate,
		DueDate:           dueDate,
		Subtotal:          in.Subtotal,
		GSTAmount:         in.GSTAmount,
		TotalAmount:       total,
		PaidAmount:        decimal.Zero,
		OutstandingAmount: total,
		PaymentStatus:     entity.InvoiceStatusUnpaid,
		Notes:             in.Notes,
		CreatedAt:         time.Now(),
	}

	err = uc.txRunner.Run(ctx, func(
		supplierRepo repository.SupplierRepository,
		invoiceRepo repository.SupplierInvoiceRepository,
		_ repository.SupplierPaymentRepository,
		_ repository.CashLedgerRepository,
	) error {
		if err := invoiceRepo.Create(invoice); err != nil {
			return err
		}
		return supplierRepo.ApplyPurchase(invoice.SupplierID, invoice.TotalAmount)
	})
	if err != nil {
		return nil, err
	}
	return invoice, nil
}

// RecordPayment registra un pago al proveedor. En una sola transacción:
// inserta el pago, asigna el monto a las facturas abiertas más antiguas
// primero, suma al contador total_paid y, si el pago salió de la caja de la
// firma, escribe el asiento de caja (payment, categoría purchase).
func (uc *SupplierBillingUseCase) RecordPayment(ctx context.Context, in dto.RecordSupplierPaymentRequest) (*entity.SupplierPayment, error) {
	if !in.AmountPaid.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	paymentDate, err := dto.ParseDate(in.PaymentDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	supplier, err := uc.supplierRepo.GetByID(in.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}

	var partnerID *string
	if in.PaidByPartnerID != "" {
		partner, err := uc.partnerRepo.GetByID(in.PaidByPartnerID)
		if err != nil {
			return nil, err
		}
		if partner == nil {
			return nil, domain.ErrNotFound
		}
		partnerID = &in.PaidByPartnerID
	}

	var poID *string
	if in.POID != "" {
		po, err := uc.poRepo.GetByID(in.POID)
		if err != nil {
			return nil, err
		}
		if po == nil || po.SupplierID != in.SupplierID {
			return nil, domain.ErrNotFound
		}
		poID = &in.POID
	}

	fromFirmCash := true
	if in.PaidFromFirmCash != nil {
		fromFirmCash = *in.PaidFromFirmCash
	}

	payment := &entity.SupplierPayment{
		ID:               uuid.New().String(),
		SupplierID:       in.SupplierID,
		POID:             poID,
		PaymentDate:      paymentDate,
		AmountPaid:       in.AmountPaid,
		PaymentMode:      in.PaymentMode,
		ChequeNumber:     in.ChequeNumber,
		TransactionID:    in.TransactionID,
		BankName:         in.BankName,
		PaidByPartnerID:  partnerID,
		PaidFromFirmCash: fromFirmCash,
		InvoiceNumber:    in.InvoiceNumber,
		Notes:            in.Notes,
		CreatedAt:        time.Now(),
	}

	err = uc.txRunner.Run(ctx, func(
		supplierRepo repository.SupplierRepository,
		invoiceRepo repository.SupplierInvoiceRepository,
		paymentRepo repository.SupplierPaymentRepository,
		cashRepo repository.CashLedgerRepository,
	) error {
		if err := paymentRepo.Create(payment); err != nil {
			return err
		}
		if err := allocatePayment(invoiceRepo, payment.SupplierID, payment.AmountPaid); err != nil {
			return err
		}
		if err := supplierRepo.ApplyPayment(payment.SupplierID, payment.AmountPaid); err != nil {
			return err
		}
		if !payment.PaidFromFirmCash {
			return nil
		}
		entry := &entity.CashEntry{
			ID:          uuid.New().String(),
			Date:        payment.PaymentDate,
			Type:        entity.CashTypePayment,
			Category:    entity.CashCategoryPurchase,
			Amount:      payment.AmountPaid,
			PartnerID:   payment.PaidByPartnerID,
			Description: "Pago a proveedor " + supplier.Name,
			ReferenceID: &payment.ID,
			CreatedAt:   payment.CreatedAt,
		}
		return cashRepo.Create(entry)
	})
	if err != nil {
		return nil, err
	}
	return payment, nil
}

// allocatePayment reparte un pago entre las facturas abiertas del proveedor,
// más antiguas primero, hasta agotar el monto. El excedente queda sin
// asignar (anticipo) y solo vive en los contadores.
func allocatePayment(invoiceRepo repository.SupplierInvoiceRepository, supplierID string, amount decimal.Decimal) error {
	open, err := invoiceRepo.ListUnpaidBySupplierForUpdate(supplierID)
	if err != nil {
		return err
	}
	remaining := amount
	for _, inv := range open {
		if !remaining.IsPositive() {
			break
		}
		applied := decimal.Min(remaining, inv.OutstandingAmount)
		paid := inv.PaidAmount.Add(applied)
		outstanding := inv.OutstandingAmount.Sub(applied)
		status := entity.InvoiceStatusPartial
		if outstanding.IsZero() {
			status = entity.InvoiceStatusPaid
		}
		if err := invoiceRepo.ApplyPayment(inv.ID, paid, outstanding, status); err != nil {
			return err
		}
		remaining = remaining.Sub(applied)
	}
	return nil
}

// ListInvoices facturas de un proveedor.
func (uc *SupplierBillingUseCase) ListInvoices(supplierID string) ([]*entity.SupplierInvoice, error) {
	return uc.invoiceRepo.ListBySupplier(supplierID)
}

// ListPayments pagos hechos a un proveedor.
func (uc *SupplierBillingUseCase) ListPayments(supplierID string) ([]*entity.SupplierPayment, error) {
	return uc.paymentRepo.ListBySupplier(supplierID)
}

// Ledger construye el extracto cronológico del proveedor: apertura, facturas
// al debe, pagos al haber, con saldo corrido línea a línea.
func (uc *SupplierBillingUseCase) Ledger(supplierID string) ([]*dto.SupplierLedgerLineDTO, error) {
	supplier, err := uc.supplierRepo.GetByID(supplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	invoices, err := uc.invoiceRepo.ListBySupplier(supplierID)
	if err != nil {
		return nil, err
	}
	payments, err := uc.paymentRepo.ListBySupplier(supplierID)
	if err != nil {
		return nil, err
	}

	lines := make([]entity.SupplierLedgerLine, 0, len(invoices)+len(payments)+1)
	if !supplier.OpeningBalance.IsZero() {
		lines = append(lines, entity.SupplierLedgerLine{
			TransactionDate: supplier.CreatedAt,
			TransactionType: "OPENING",
			Description:     "Saldo de apertura",
			DebitAmount:     supplier.OpeningBalance,
			CreditAmount:    decimal.Zero,
		})
	}
	for _, inv := range invoices {
		lines = append(lines, entity.SupplierLedgerLine{
			TransactionDate: inv.InvoiceDate,
			TransactionType: "INVOICE",
			Reference:       inv.InvoiceNumber,
			Description:     inv.Notes,
			DebitAmount:     inv.TotalAmount,
			CreditAmount:    decimal.Zero,
		})
	}
	for _, p := range payments {
		lines = append(lines, entity.SupplierLedgerLine{
			TransactionDate: p.PaymentDate,
			TransactionType: "PAYMENT",
			Reference:       p.InvoiceNumber,
			Description:     p.Notes,
			DebitAmount:     decimal.Zero,
			CreditAmount:    p.AmountPaid,
		})
	}
	sort.SliceStable(lines, func(i, j int) bool {
		return lines[i].TransactionDate.Before(lines[j].TransactionDate)
	})

	out := make([]*dto.SupplierLedgerLineDTO, 0, len(lines))
	balance := decimal.Zero
	for _, l := range lines {
		balance = balance.Add(l.DebitAmount).Sub(l.CreditAmount)
		out = append(out, &dto.SupplierLedgerLineDTO{
			TransactionDate: dto.FormatDate(l.TransactionDate),
			TransactionType: l.TransactionType,
			Reference:       l.Reference,
			Description:     l.Description,
			DebitAmount:     l.DebitAmount,
			CreditAmount:    l.CreditAmount,
			Balance:         balance,
		})
	}
	return out, nil
}
