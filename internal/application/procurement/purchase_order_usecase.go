package procurement

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wallsco/firmbooks-api/internal/application/dto"
	"github.com/wallsco/firmbooks-api/internal/domain"
	"github.com/wallsco/firmbooks-api/internal/domain/entity"
	"github.com/wallsco/firmbooks-api/internal/domain/repository"
)

var oneHundred = decimal.NewFromInt(100)

// PurchaseOrderUseCase órdenes de compra: numeración PO/<año>/<secuencia>,
// totales calculados en servidor y máquina de estados
// pending → approved → delivered (cancelled desde pending/approved).
type PurchaseOrderUseCase struct {
	poRepo       repository.PurchaseOrderRepository
	supplierRepo repository.SupplierRepository
}

// NewPurchaseOrderUseCase construye el caso de uso.
func NewPurchaseOrderUseCase(
	poRepo repository.PurchaseOrderRepository,
	supplierRepo repository.SupplierRepository,
) *PurchaseOrderUseCase {
	return &PurchaseOrderUseCase{poRepo: poRepo, supplierRepo: supplierRepo}
}

// Create emite una orden de compra en estado pending. Los montos por línea
// (amount, gst_amount, total_amount) y los totales de cabecera siempre se
// recalculan en servidor; los del request se ignoran.
func (uc *PurchaseOrderUseCase) Create(in dto.CreatePORequest) (*dto.POResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	orderDate, err := dto.ParseDate(in.OrderDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	var expected *time.Time
	if in.ExpectedDeliveryDate != "" {
		d, err := dto.ParseDate(in.ExpectedDeliveryDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		expected = &d
	}

	supplier, err := uc.supplierRepo.GetByID(in.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}

	poNumber, err := uc.nextPONumber(orderDate.Year())
	if err != nil {
		return nil, err
	}

	now := time.Now()
	poID := uuid.New().String()
	subtotal, gstTotal := decimal.Zero, decimal.Zero
	items := make([]*entity.PurchaseOrderItem, 0, len(in.Items))
	for _, it := range in.Items {
		if it.MaterialName == "" || !it.Quantity.IsPositive() || it.RatePerUnit.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		amount := it.Quantity.Mul(it.RatePerUnit).Round(2)
		gstAmount := amount.Mul(it.GSTPercentage).Div(oneHundred).Round(2)
		items = append(items, &entity.PurchaseOrderItem{
			ID:               uuid.New().String(),
			POID:             poID,
			MaterialName:     it.MaterialName,
			MaterialCategory: it.MaterialCategory,
			Quantity:         it.Quantity,
			Unit:             it.Unit,
			RatePerUnit:      it.RatePerUnit,
			Amount:           amount,
			GSTPercentage:    it.GSTPercentage,
			GSTAmount:        gstAmount,
			TotalAmount:      amount.Add(gstAmount),
			Notes:            it.Notes,
			CreatedAt:        now,
		})
		subtotal = subtotal.Add(amount)
		gstTotal = gstTotal.Add(gstAmount)
	}

	po := &entity.PurchaseOrder{
		ID:                   poID,
		PONumber:             poNumber,
		SupplierID:           in.SupplierID,
		OrderDate:            orderDate,
		ExpectedDeliveryDate: expected,
		Status:               entity.POStatusPending,
		Subtotal:             subtotal,
		GSTAmount:            gstTotal,
		TotalAmount:          subtotal.Add(gstTotal),
		PaymentTerms:         in.PaymentTerms,
		DeliveryAddress:      in.DeliveryAddress,
		Notes:                in.Notes,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	if err := uc.poRepo.Create(po, items); err != nil {
		return nil, err
	}
	return toPOResponse(po, items), nil
}

// nextPONumber genera PO/<año>/<secuencia de 4 dígitos>. La secuencia se
// reinicia cada año.
func (uc *PurchaseOrderUseCase) nextPONumber(year int) (string, error) {
	last, err := uc.poRepo.LastPONumber()
	if err != nil {
		return "", err
	}
	seq := 1
	if last != "" {
		parts := strings.Split(last, "/")
		if len(parts) == 3 {
			lastYear, errY := strconv.Atoi(parts[1])
			lastSeq, errS := strconv.Atoi(parts[2])
			if errY == nil && errS == nil && lastYear == year {
				seq = lastSeq + 1
			}
		}
	}
	return fmt.Sprintf("PO/%d/%04d", year, seq), nil
}

// GetByID devuelve una orden con sus líneas.
func (uc *PurchaseOrderUseCase) GetByID(id string) (*dto.POResponse, error) {
	po, err := uc.poRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if po == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.poRepo.GetItems(id)
	if err != nil {
		return nil, err
	}
	return toPOResponse(po, items), nil
}

// List devuelve las órdenes; supplierID filtra por proveedor, onlyOpen deja
// solo pending/approved.
func (uc *PurchaseOrderUseCase) List(supplierID string, onlyOpen bool) ([]*dto.POResponse, error) {
	var pos []*entity.PurchaseOrder
	var err error
	switch {
	case supplierID != "":
		pos, err = uc.poRepo.ListBySupplier(supplierID)
	case onlyOpen:
		pos, err = uc.poRepo.ListOpen()
	default:
		pos, err = uc.poRepo.List()
	}
	if err != nil {
		return nil, err
	}
	out := make([]*dto.POResponse, 0, len(pos))
	for _, po := range pos {
		out = append(out, toPOResponse(po, nil))
	}
	return out, nil
}

// UpdateStatus aplica una transición de la máquina de estados. Las
// transiciones fuera del grafo (incluida cualquier salida de delivered o
// cancelled) devuelven ErrInvalidTransition. delivered NO modifica stock.
func (uc *PurchaseOrderUseCase) UpdateStatus(id string, in dto.UpdatePOStatusRequest) (*dto.POResponse, error) {
	switch in.Status {
	case entity.POStatusApproved, entity.POStatusDelivered, entity.POStatusCancelled:
	default:
		return nil, domain.ErrInvalidInput
	}

	po, err := uc.poRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if po == nil {
		return nil, domain.ErrNotFound
	}
	if !entity.CanTransition(po.Status, in.Status) {
		return nil, domain.ErrInvalidTransition
	}

	now := time.Now()
	po.Status = in.Status
	po.UpdatedAt = now
	if in.Status == entity.POStatusApproved {
		po.ApprovedBy = in.ApprovedBy
		po.ApprovedAt = &now
	}
	if err := uc.poRepo.UpdateStatus(po); err != nil {
		return nil, err
	}
	return toPOResponse(po, nil), nil
}

func toPOResponse(po *entity.PurchaseOrder, items []*entity.PurchaseOrderItem) *dto.POResponse {
	resp := &dto.POResponse{
		ID:           po.ID,
		PONumber:     po.PONumber,
		SupplierID:   po.SupplierID,
		OrderDate:    dto.FormatDate(po.OrderDate),
		Status:       po.Status,
		Subtotal:     po.Subtotal,
		GSTAmount:    po.GSTAmount,
		TotalAmount:  po.TotalAmount,
		PaymentTerms: po.PaymentTerms,
		Notes:        po.Notes,
	}
	if po.ExpectedDeliveryDate != nil {
		resp.ExpectedDeliveryDate = dto.FormatDate(*po.ExpectedDeliveryDate)
	}
	for _, it := range items {
		resp.Items = append(resp.Items, dto.POItemResponse{
			ID:            it.ID,
			MaterialName:  it.MaterialName,
			Quantity:      it.Quantity,
			Unit:          it.Unit,
			RatePerUnit:   it.RatePerUnit,
			Amount:        it.Amount,
			GSTPercentage: it.GSTPercentage,
			GSTAmount:     it.GSTAmount,
			TotalAmount:   it.TotalAmount,
		})
	}
	return resp
}
