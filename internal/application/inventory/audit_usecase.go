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

// AuditUseCase auditorías físicas de stock. La creación captura la foto del
// stock digital y calcula la varianza; la aprobación SOBRESCRIBE el stock
// del material con el conteo físico en la misma transacción que estampa al
// aprobador. El rechazo borra el registro sin tocar el stock.
type AuditUseCase struct {
	txRunner     TxRunner
	materialRepo repository.MaterialRepository
	auditRepo    repository.StockAuditRepository
}

// NewAuditUseCase construye el caso de uso.
func NewAuditUseCase(
	txRunner TxRunner,
	materialRepo repository.MaterialRepository,
	auditRepo repository.StockAuditRepository,
) *AuditUseCase {
	return &AuditUseCase{
		txRunner:     txRunner,
		materialRepo: materialRepo,
		auditRepo:    auditRepo,
	}
}

// Create registra una auditoría pendiente de aprobación. DigitalStock se
// toma del material en este momento; el stock no se modifica todavía.
func (uc *AuditUseCase) Create(in dto.CreateAuditRequest) (*dto.AuditResponse, error) {
	if in.PhysicalCount.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	date, err := dto.ParseDate(in.Date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	material, err := uc.materialRepo.GetByName(in.MaterialName)
	if err != nil {
		return nil, err
	}
	if material == nil {
		return nil, domain.ErrNotFound
	}

	variance, pct := entity.AuditVariance(material.CurrentStock, in.PhysicalCount)
	audit := &entity.StockAudit{
		ID:                 uuid.New().String(),
		Date:               date,
		MaterialName:       material.Name,
		DigitalStock:       material.CurrentStock,
		PhysicalCount:      in.PhysicalCount,
		Variance:           variance,
		VariancePercentage: pct,
		Reason:             in.Reason,
		FinancialImpact:    variance.Abs().Mul(material.UnitCost).Round(2),
		CreatedAt:          time.Now(),
	}
	if err := uc.auditRepo.Create(audit); err != nil {
		return nil, err
	}
	return toAuditResponse(audit), nil
}

// Approve aprueba la auditoría: sobrescribe current_stock con el conteo
// físico (no suma la varianza) y estampa al aprobador, todo en una
// transacción. Aprobar dos veces devuelve ErrConflict.
func (uc *AuditUseCase) Approve(ctx context.Context, auditID, approvedBy string) (*dto.AuditResponse, error) {
	if approvedBy == "" {
		return nil, domain.ErrInvalidInput
	}
	audit, err := uc.auditRepo.GetByID(auditID)
	if err != nil {
		return nil, err
	}
	if audit == nil {
		return nil, domain.ErrNotFound
	}
	if audit.ApprovedBy != "" {
		return nil, domain.ErrConflict
	}

	err = uc.txRunner.Run(ctx, func(
		materialRepo repository.MaterialRepository,
		_ repository.MaterialPurchaseRepository,
		auditRepo repository.StockAuditRepository,
		_ repository.CashLedgerRepository,
	) error {
		material, err := materialRepo.GetByNameForUpdate(audit.MaterialName)
		if err != nil {
			return err
		}
		if material == nil {
			return domain.ErrNotFound
		}
		if err := materialRepo.SetStock(material.Name, audit.PhysicalCount); err != nil {
			return err
		}
		return auditRepo.MarkApproved(audit.ID, approvedBy)
	})
	if err != nil {
		return nil, err
	}
	audit.ApprovedBy = approvedBy
	audit.PartnersNotified = true
	return toAuditResponse(audit), nil
}

// Reject descarta una auditoría no aprobada. El stock queda intacto.
func (uc *AuditUseCase) Reject(auditID string) error {
	audit, err := uc.auditRepo.GetByID(auditID)
	if err != nil {
		return err
	}
	if audit == nil {
		return domain.ErrNotFound
	}
	if audit.ApprovedBy != "" {
		return domain.ErrConflict
	}
	return uc.auditRepo.Delete(auditID)
}

// History auditorías de un rango de fechas.
func (uc *AuditUseCase) History(from, to *time.Time) ([]*dto.AuditResponse, error) {
	audits, err := uc.auditRepo.ListByDateRange(from, to)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.AuditResponse, 0, len(audits))
	for _, a := range audits {
		out = append(out, toAuditResponse(a))
	}
	return out, nil
}

// Summary agrega las auditorías de un rango por material.
func (uc *AuditUseCase) Summary(from, to *time.Time) (*dto.AuditSummaryDTO, error) {
	audits, err := uc.auditRepo.ListByDateRange(from, to)
	if err != nil {
		return nil, err
	}

	out := &dto.AuditSummaryDTO{
		TotalVarianceValue: decimal.Zero,
		ByMaterial:         make(map[string]dto.MaterialAuditTotals),
	}
	if from != nil {
		out.Period.From = dto.FormatDate(*from)
	}
	if to != nil {
		out.Period.To = dto.FormatDate(*to)
	}
	for _, a := range audits {
		out.TotalAudits++
		out.TotalVarianceValue = out.TotalVarianceValue.Add(a.FinancialImpact.Abs())
		totals := out.ByMaterial[a.MaterialName]
		totals.Audits++
		totals.TotalVariance = totals.TotalVariance.Add(a.Variance)
		totals.TotalImpact = totals.TotalImpact.Add(a.FinancialImpact.Abs())
		out.ByMaterial[a.MaterialName] = totals
	}
	return out, nil
}

func toAuditResponse(a *entity.StockAudit) *dto.AuditResponse {
	return &dto.AuditResponse{
		ID:                 a.ID,
		Date:               dto.FormatDate(a.Date),
		MaterialName:       a.MaterialName,
		DigitalStock:       a.DigitalStock,
		PhysicalCount:      a.PhysicalCount,
		Variance:           a.Variance,
		VariancePercentage: a.VariancePercentage,
		Reason:             a.Reason,
		ApprovedBy:         a.ApprovedBy,
		FinancialImpact:    a.FinancialImpact,
	}
}
