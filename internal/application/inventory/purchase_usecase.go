package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wallsco/firmbooks-api/internal/application/dto"
	"github.com/wallsco/firmbooks-api/internal/domain"
	"github.com/wallsco/firmbooks-api/internal/domain/entity"
	"github.com/wallsco/firmbooks-api/internal/domain/repository"
)

// PurchaseUseCase registra compras de materia prima. Cada compra mueve, en
// una sola transacción: la fila de compra, el stock y costo del material
// (fila bloqueada con SELECT FOR UPDATE) y, si salió de la caja de la firma,
// el asiento de caja.
type PurchaseUseCase struct {
	txRunner     TxRunner
	materialRepo repository.MaterialRepository
	purchaseRepo repository.MaterialPurchaseRepository
	partnerRepo  repository.PartnerRepository
}

// NewPurchaseUseCase construye el caso de uso.
func NewPurchaseUseCase(
	txRunner TxRunner,
	materialRepo repository.MaterialRepository,
	purchaseRepo repository.MaterialPurchaseRepository,
	partnerRepo repository.PartnerRepository,
) *PurchaseUseCase {
	return &PurchaseUseCase{
		txRunner:     txRunner,
		materialRepo: materialRepo,
		purchaseRepo: purchaseRepo,
		partnerRepo:  partnerRepo,
	}
}

// Record registra una compra. PaidFrom decide el efecto financiero:
// office_cash escribe un asiento de caja (payment, purchase); partner_pocket
// no toca la caja (el socio compró de su bolsillo).
func (uc *PurchaseUseCase) Record(ctx context.Context, in dto.RecordPurchaseRequest) (*dto.PurchaseResponse, error) {
	if !in.Quantity.IsPositive() || in.UnitCost.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if in.PaidFrom != entity.PaidFromOfficeCash && in.PaidFrom != entity.PaidFromPartnerPocket {
		return nil, domain.ErrInvalidInput
	}
	date, err := dto.ParseDate(in.Date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	var partnerID *string
	if in.PartnerID != "" {
		partner, err := uc.partnerRepo.GetByID(in.PartnerID)
		if err != nil {
			return nil, err
		}
		if partner == nil {
			return nil, domain.ErrNotFound
		}
		partnerID = &in.PartnerID
	}
	// compra de bolsillo de socio sin socio no tiene sentido
	if in.PaidFrom == entity.PaidFromPartnerPocket && partnerID == nil {
		return nil, domain.ErrInvalidInput
	}

	purchase := &entity.MaterialPurchase{
		ID:            uuid.New().String(),
		Date:          date,
		MaterialName:  in.MaterialName,
		Quantity:      in.Quantity,
		UnitCost:      in.UnitCost,
		TotalAmount:   in.Quantity.Mul(in.UnitCost).Round(2),
		VendorName:    in.VendorName,
		PartnerID:     partnerID,
		PaidFrom:      in.PaidFrom,
		InvoiceNumber: in.InvoiceNumber,
		Notes:         in.Notes,
		CreatedAt:     time.Now(),
	}

	err = uc.txRunner.Run(ctx, func(
		materialRepo repository.MaterialRepository,
		purchaseRepo repository.MaterialPurchaseRepository,
		_ repository.StockAuditRepository,
		cashRepo repository.CashLedgerRepository,
	) error {
		material, err := materialRepo.GetByNameForUpdate(purchase.MaterialName)
		if err != nil {
			return err
		}
		if material == nil {
			return domain.ErrNotFound
		}
		if err := purchaseRepo.Create(purchase); err != nil {
			return err
		}
		if err := materialRepo.IncrementStock(material.Name, purchase.Quantity); err != nil {
			return err
		}
		if err := materialRepo.UpdatePurchaseInfo(material.Name, purchase.UnitCost, purchase.Date); err != nil {
			return err
		}
		if purchase.PaidFrom != entity.PaidFromOfficeCash {
			return nil
		}
		entry := &entity.CashEntry{
			ID:          uuid.New().String(),
			Date:        purchase.Date,
			Type:        entity.CashTypePayment,
			Category:    entity.CashCategoryPurchase,
			Amount:      purchase.TotalAmount,
			PartnerID:   purchase.PartnerID,
			Description: "Compra de material " + purchase.MaterialName,
			ReferenceID: &purchase.ID,
			CreatedAt:   purchase.CreatedAt,
		}
		return cashRepo.Create(entry)
	})
	if err != nil {
		return nil, err
	}
	return toPurchaseResponse(purchase), nil
}

// History compras de un rango de fechas; partnerID filtra por socio.
func (uc *PurchaseUseCase) History(partnerID string, from, to *time.Time) ([]*dto.PurchaseResponse, error) {
	var purchases []*entity.MaterialPurchase
	var err error
	if partnerID != "" {
		purchases, err = uc.purchaseRepo.ListByPartner(partnerID, from, to)
	} else {
		purchases, err = uc.purchaseRepo.ListByDateRange(from, to)
	}
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PurchaseResponse, 0, len(purchases))
	for _, p := range purchases {
		out = append(out, toPurchaseResponse(p))
	}
	return out, nil
}

// Summary agrega las compras de un rango: totales por origen de fondos y
// por material.
func (uc *PurchaseUseCase) Summary(from, to *time.Time) (*dto.PurchaseSummaryDTO, error) {
	purchases, err := uc.purchaseRepo.ListByDateRange(from, to)
	if err != nil {
		return nil, err
	}

	out := &dto.PurchaseSummaryDTO{
		TotalAmount:        decimal.Zero,
		OfficeCashSpent:    decimal.Zero,
		PartnerPocketSpent: decimal.Zero,
		ByMaterial:         make(map[string]dto.MaterialPurchaseTotals),
	}
	if from != nil {
		out.Period.From = dto.FormatDate(*from)
	}
	if to != nil {
		out.Period.To = dto.FormatDate(*to)
	}
	for _, p := range purchases {
		out.TotalPurchases++
		out.TotalAmount = out.TotalAmount.Add(p.TotalAmount)
		switch p.PaidFrom {
		case entity.PaidFromOfficeCash:
			out.OfficeCashSpent = out.OfficeCashSpent.Add(p.TotalAmount)
		case entity.PaidFromPartnerPocket:
			out.PartnerPocketSpent = out.PartnerPocketSpent.Add(p.TotalAmount)
		}
		totals := out.ByMaterial[p.MaterialName]
		totals.Quantity = totals.Quantity.Add(p.Quantity)
		totals.Amount = totals.Amount.Add(p.TotalAmount)
		out.ByMaterial[p.MaterialName] = totals
	}
	return out, nil
}

func toPurchaseResponse(p *entity.MaterialPurchase) *dto.PurchaseResponse {
	return &dto.PurchaseResponse{
		ID:           p.ID,
		Date:         dto.FormatDate(p.Date),
		MaterialName: p.MaterialName,
		Quantity:     p.Quantity,
		UnitCost:     p.UnitCost,
		TotalAmount:  p.TotalAmount,
		VendorName:   p.VendorName,
		PaidFrom:     p.PaidFrom,
	}
}
