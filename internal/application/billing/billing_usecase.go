package billing

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/wallsco/firmbooks-api/internal/application/dto"
	"github.com/wallsco/firmbooks-api/internal/domain"
	"github.com/wallsco/firmbooks-api/internal/domain/entity"
	"github.com/wallsco/firmbooks-api/internal/domain/repository"
)

// BillingUseCase registra facturas y cobros de clientes. El cobro depositado
// en caja escribe el asiento del libro de caja en la misma transacción que la
// fila del cobro (nunca divergen).
type BillingUseCase struct {
	txRunner    TxRunner
	clientRepo  repository.ClientRepository
	billRepo    repository.ClientBillRepository
	paymentRepo repository.ClientPaymentRepository
	partnerRepo repository.PartnerRepository
}

// NewBillingUseCase construye el caso de uso.
func NewBillingUseCase(
	txRunner TxRunner,
	clientRepo repository.ClientRepository,
	billRepo repository.ClientBillRepository,
	paymentRepo repository.ClientPaymentRepository,
	partnerRepo repository.PartnerRepository,
) *BillingUseCase {
	return &BillingUseCase{
		txRunner:    txRunner,
		clientRepo:  clientRepo,
		billRepo:    billRepo,
		paymentRepo: paymentRepo,
		partnerRepo: partnerRepo,
	}
}

// AddBill registra una factura (append-only, inmutable una vez creada).
func (uc *BillingUseCase) AddBill(in dto.AddBillRequest) (*dto.BillResponse, error) {
	if !in.Amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	date, err := dto.ParseDate(in.Date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	client, err := uc.clientRepo.GetByID(in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}

	bill := &entity.ClientBill{
		ID:          uuid.New().String(),
		ClientID:    in.ClientID,
		Date:        date,
		Amount:      in.Amount,
		EntryType:   entity.BillEntryType,
		Description: in.Description,
		CreatedAt:   time.Now(),
	}
	if err := uc.billRepo.Create(bill); err != nil {
		return nil, err
	}
	return toBillResponse(bill), nil
}

// RecordPayment registra un cobro de cliente. Si DepositedToFirm es true, el
// asiento de caja (receipt, categoría sales) se inserta en la misma
// transacción con ReferenceID apuntando al cobro.
func (uc *BillingUseCase) RecordPayment(ctx context.Context, in dto.RecordClientPaymentRequest) (*dto.PaymentResponse, error) {
	if !in.Amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	date, err := dto.ParseDate(in.Date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	client, err := uc.clientRepo.GetByID(in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}

	var collectorID *string
	if in.CollectedByPartnerID != "" {
		partner, err := uc.partnerRepo.GetByID(in.CollectedByPartnerID)
		if err != nil {
			return nil, err
		}
		if partner == nil {
			return nil, domain.ErrNotFound
		}
		collectorID = &in.CollectedByPartnerID
	}

	payment := &entity.ClientPayment{
		ID:                   uuid.New().String(),
		ClientID:             in.ClientID,
		Date:                 date,
		AmountPaid:           in.Amount,
		CollectedByPartnerID: collectorID,
		DepositedToFirm:      in.DepositedToFirm,
		Notes:                in.Notes,
		CreatedAt:            time.Now(),
	}

	err = uc.txRunner.Run(ctx, func(
		paymentRepo repository.ClientPaymentRepository,
		cashRepo repository.CashLedgerRepository,
	) error {
		if err := paymentRepo.Create(payment); err != nil {
			return err
		}
		if !payment.DepositedToFirm {
			return nil
		}
		entry := &entity.CashEntry{
			ID:              uuid.New().String(),
			Date:            payment.Date,
			Type:            entity.CashTypeReceipt,
			Category:        entity.CashCategorySales,
			Amount:          payment.AmountPaid,
			PartnerID:       payment.CollectedByPartnerID,
			DepositedToFirm: true,
			Description:     "Cobro de cliente " + client.Name,
			ReferenceID:     &payment.ID,
			CreatedAt:       payment.CreatedAt,
		}
		return cashRepo.Create(entry)
	})
	if err != nil {
		return nil, err
	}
	return toPaymentResponse(payment), nil
}

// ListBills facturas de un cliente, más recientes primero.
func (uc *BillingUseCase) ListBills(clientID string) ([]*dto.BillResponse, error) {
	bills, err := uc.billRepo.ListByClient(clientID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.BillResponse, 0, len(bills))
	for _, b := range bills {
		out = append(out, toBillResponse(b))
	}
	return out, nil
}

// ListPayments cobros de un cliente, más recientes primero.
func (uc *BillingUseCase) ListPayments(clientID string) ([]*dto.PaymentResponse, error) {
	payments, err := uc.paymentRepo.ListByClient(clientID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, toPaymentResponse(p))
	}
	return out, nil
}

func toBillResponse(b *entity.ClientBill) *dto.BillResponse {
	return &dto.BillResponse{
		ID:          b.ID,
		ClientID:    b.ClientID,
		Date:        dto.FormatDate(b.Date),
		Amount:      b.Amount,
		Description: b.Description,
	}
}

func toPaymentResponse(p *entity.ClientPayment) *dto.PaymentResponse {
	resp := &dto.PaymentResponse{
		ID:              p.ID,
		ClientID:        p.ClientID,
		Date:            dto.FormatDate(p.Date),
		AmountPaid:      p.AmountPaid,
		DepositedToFirm: p.DepositedToFirm,
	}
	if p.CollectedByPartnerID != nil {
		resp.CollectedByPartnerID = *p.CollectedByPartnerID
	}
	return resp
}
