// Package cash contiene los casos de uso del libro de caja de la firma: un
// diario único append-only del que se derivan balance y sub-totales por
// categoría.
package cash

import (
	"time"

	"github.com/google/uuid"

	"github.com/wallsco/firmbooks-api/internal/application/dto"
	"github.com/wallsco/firmbooks-api/internal/domain"
	"github.com/wallsco/firmbooks-api/internal/domain/entity"
	"github.com/wallsco/firmbooks-api/internal/domain/ledger"
	"github.com/wallsco/firmbooks-api/internal/domain/repository"
)

// CashUseCase registra asientos y deriva balances del libro de caja.
type CashUseCase struct {
	cashRepo    repository.CashLedgerRepository
	partnerRepo repository.PartnerRepository
}

// NewCashUseCase construye el caso de uso.
func NewCashUseCase(cashRepo repository.CashLedgerRepository, partnerRepo repository.PartnerRepository) *CashUseCase {
	return &CashUseCase{cashRepo: cashRepo, partnerRepo: partnerRepo}
}

// RecordReceipt registra una entrada de dinero. Las categorías de socio
// (partner_contribution) exigen PartnerID.
func (uc *CashUseCase) RecordReceipt(in dto.RecordReceiptRequest) (*dto.CashEntryResponse, error) {
	if !in.Amount.IsPositive() || !entity.ValidCashCategory(in.Category) {
		return nil, domain.ErrInvalidInput
	}
	date, err := dto.ParseDate(in.Date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	partnerID, err := uc.resolvePartner(in.Category, in.PartnerID, entity.CashCategoryPartnerContribution)
	if err != nil {
		return nil, err
	}

	deposited := true
	if in.DepositedToFirm != nil {
		deposited = *in.DepositedToFirm
	}

	entry := &entity.CashEntry{
		ID:              uuid.New().String(),
		Date:            date,
		Type:            entity.CashTypeReceipt,
		Category:        in.Category,
		Amount:          in.Amount,
		PartnerID:       partnerID,
		DepositedToFirm: deposited,
		Description:     in.Description,
		CreatedAt:       time.Now(),
	}
	if err := uc.cashRepo.Create(entry); err != nil {
		return nil, err
	}
	return toCashEntryResponse(entry), nil
}

// RecordPayment registra una salida de dinero. partner_withdrawal exige
// PartnerID (el retiro pertenece a la billetera de ese socio).
func (uc *CashUseCase) RecordPayment(in dto.RecordCashPaymentRequest) (*dto.CashEntryResponse, error) {
	if !in.Amount.IsPositive() || !entity.ValidCashCategory(in.Category) {
		return nil, domain.ErrInvalidInput
	}
	date, err := dto.ParseDate(in.Date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	partnerID, err := uc.resolvePartner(in.Category, in.PartnerID, entity.CashCategoryPartnerWithdrawal)
	if err != nil {
		return nil, err
	}

	entry := &entity.CashEntry{
		ID:          uuid.New().String(),
		Date:        date,
		Type:        entity.CashTypePayment,
		Category:    in.Category,
		Amount:      in.Amount,
		PartnerID:   partnerID,
		Description: in.Description,
		CreatedAt:   time.Now(),
	}
	if err := uc.cashRepo.Create(entry); err != nil {
		return nil, err
	}
	return toCashEntryResponse(entry), nil
}

// resolvePartner valida el socio cuando la categoría lo exige y lo acepta
// como opcional en las demás.
func (uc *CashUseCase) resolvePartner(category, partnerID, requiredFor string) (*string, error) {
	if partnerID == "" {
		if category == requiredFor {
			return nil, domain.ErrInvalidInput
		}
		return nil, nil
	}
	partner, err := uc.partnerRepo.GetByID(partnerID)
	if err != nil {
		return nil, err
	}
	if partner == nil {
		return nil, domain.ErrNotFound
	}
	return &partnerID, nil
}

// Cashbook lista los asientos del filtro, más recientes primero.
func (uc *CashUseCase) Cashbook(filter repository.CashFilter) ([]*dto.CashEntryResponse, error) {
	entries, err := uc.cashRepo.List(filter)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CashEntryResponse, 0, len(entries))
	for i := range entries {
		out = append(out, toCashEntryResponse(&entries[i]))
	}
	return out, nil
}

// CurrentBalance pliega todo el libro de caja en el balance con signo y su
// descomposición por categoría. Libro vacío ⇒ ceros exactos.
func (uc *CashUseCase) CurrentBalance() (*dto.CashBalanceDTO, error) {
	entries, err := uc.cashRepo.List(repository.CashFilter{})
	if err != nil {
		return nil, err
	}
	b := ledger.FoldCash(entries)
	return toCashBalanceDTO(b), nil
}

// Summary pliega los asientos de un rango de fechas.
func (uc *CashUseCase) Summary(from, to *time.Time) (*dto.CashSummaryDTO, error) {
	entries, err := uc.cashRepo.List(repository.CashFilter{From: from, To: to})
	if err != nil {
		return nil, err
	}
	b := ledger.FoldCash(entries)

	period := dto.Period{}
	if from != nil {
		period.From = dto.FormatDate(*from)
	}
	if to != nil {
		period.To = dto.FormatDate(*to)
	}
	return &dto.CashSummaryDTO{
		Period:        period,
		TotalReceipts: b.TotalReceipts,
		TotalPayments: b.TotalPayments,
		NetCashFlow:   b.Balance,
		Breakdown:     *toCashBalanceDTO(b),
	}, nil
}

func toCashBalanceDTO(b ledger.CashBalance) *dto.CashBalanceDTO {
	return &dto.CashBalanceDTO{
		Balance:             b.Balance,
		Income:              b.Income,
		Investment:          b.Investment,
		PartnerContribution: b.PartnerContribution,
		LabourCost:          b.LabourCost,
		PurchaseCost:        b.PurchaseCost,
		OperationalCost:     b.OperationalCost,
		PartnerWithdrawal:   b.PartnerWithdrawal,
		ManualAdjustment:    b.ManualAdjustment,
	}
}

func toCashEntryResponse(e *entity.CashEntry) *dto.CashEntryResponse {
	resp := &dto.CashEntryResponse{
		ID:              e.ID,
		Date:            dto.FormatDate(e.Date),
		Type:            e.Type,
		Category:        e.Category,
		Amount:          e.Amount,
		DepositedToFirm: e.DepositedToFirm,
		Description:     e.Description,
	}
	if e.PartnerID != nil {
		resp.PartnerID = *e.PartnerID
	}
	if e.ReferenceID != nil {
		resp.ReferenceID = *e.ReferenceID
	}
	return resp
}
