package billing

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/wallsco/firmbooks-api/internal/application/dto"
	"github.com/wallsco/firmbooks-api/internal/domain"
	"github.com/wallsco/firmbooks-api/internal/domain/ledger"
	"github.com/wallsco/firmbooks-api/internal/domain/repository"
	"github.com/wallsco/firmbooks-api/pkg/logger"
)

// DueUseCase deriva la deuda de los clientes plegando facturas y cobros.
// Lecturas fail-open: si una de las dos patas falla, se sustituye por cero,
// se anota en Degraded y se loguea un warn; el caso de uso nunca propaga el
// error de una pata al resultado completo.
type DueUseCase struct {
	clientRepo  repository.ClientRepository
	billRepo    repository.ClientBillRepository
	paymentRepo repository.ClientPaymentRepository
	log         *logger.Logger
}

// NewDueUseCase construye el caso de uso.
func NewDueUseCase(
	clientRepo repository.ClientRepository,
	billRepo repository.ClientBillRepository,
	paymentRepo repository.ClientPaymentRepository,
	log *logger.Logger,
) *DueUseCase {
	return &DueUseCase{
		clientRepo:  clientRepo,
		billRepo:    billRepo,
		paymentRepo: paymentRepo,
		log:         log,
	}
}

// ClientDue deuda puntual de un cliente: Σfacturado − Σpagado (con signo,
// nunca truncada a cero). El cliente debe existir; las patas de lectura son
// fail-open.
func (uc *DueUseCase) ClientDue(ctx context.Context, clientID string) (*dto.ClientDueDTO, error) {
	client, err := uc.clientRepo.GetByID(clientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}

	type amountsResult struct {
		amounts []decimal.Decimal
		err     error
	}
	billedCh := make(chan amountsResult, 1)
	paidCh := make(chan amountsResult, 1)

	go func() {
		amounts, err := uc.billRepo.AmountsByClient(clientID)
		billedCh <- amountsResult{amounts, err}
	}()
	go func() {
		amounts, err := uc.paymentRepo.AmountsByClient(clientID)
		paidCh <- amountsResult{amounts, err}
	}()

	billed := <-billedCh
	paid := <-paidCh

	out := &dto.ClientDueDTO{
		ClientID:    client.ID,
		ClientName:  client.Name,
		TotalBilled: decimal.Zero,
		TotalPaid:   decimal.Zero,
	}
	if billed.err != nil {
		uc.log.Warn().Err(billed.err).Str("client_id", clientID).
			Msg("lectura de facturas falló; deuda degradada a cero")
		out.Degraded = append(out.Degraded, "bills")
	} else {
		out.TotalBilled = ledger.Sum(billed.amounts)
	}
	if paid.err != nil {
		uc.log.Warn().Err(paid.err).Str("client_id", clientID).
			Msg("lectura de cobros falló; pagos degradados a cero")
		out.Degraded = append(out.Degraded, "payments")
	} else {
		out.TotalPaid = ledger.Sum(paid.amounts)
	}

	out.Due = out.TotalBilled.Sub(out.TotalPaid)
	out.OverCreditLimit = client.CreditLimit.IsPositive() && out.Due.GreaterThan(client.CreditLimit)
	return out, nil
}

// AllClientDues deuda de todos los clientes activos. Cada cliente se pliega
// de forma independiente; un cliente degradado no contamina a los demás.
func (uc *DueUseCase) AllClientDues(ctx context.Context) ([]*dto.ClientDueDTO, error) {
	clients, err := uc.clientRepo.List(true)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.ClientDueDTO, len(clients))
	ch := make(chan struct{}, 8) // límite de consultas concurrentes
	done := make(chan int, len(clients))

	for i, c := range clients {
		go func(i int, clientID string) {
			ch <- struct{}{}
			defer func() { <-ch }()
			due, err := uc.ClientDue(ctx, clientID)
			if err != nil {
				// el cliente existía al listar; lectura degradada completa
				due = &dto.ClientDueDTO{
					ClientID:    clientID,
					TotalBilled: decimal.Zero,
					TotalPaid:   decimal.Zero,
					Due:         decimal.Zero,
					Degraded:    []string{"bills", "payments"},
				}
				uc.log.Warn().Err(err).Str("client_id", clientID).
					Msg("deuda de cliente degradada en listado")
			}
			out[i] = due
			done <- i
		}(i, c.ID)
	}
	for range clients {
		<-done
	}

	for i, c := range clients {
		if out[i] != nil && out[i].ClientName == "" {
			out[i].ClientName = c.Name
		}
	}
	return out, nil
}

// PeriodTotals totales de facturación y cobro de un rango (para reportes).
// from/to nil = sin cota. Fail-open por pata, con lista de patas degradadas.
func (uc *DueUseCase) PeriodTotals(ctx context.Context, from, to *time.Time) (billedTotal, paidTotal decimal.Decimal, degraded []string) {
	type amountsResult struct {
		amounts []decimal.Decimal
		err     error
	}
	billedCh := make(chan amountsResult, 1)
	paidCh := make(chan amountsResult, 1)

	go func() {
		amounts, err := uc.billRepo.AmountsByDateRange(from, to)
		billedCh <- amountsResult{amounts, err}
	}()
	go func() {
		amounts, err := uc.paymentRepo.AmountsByDateRange(from, to)
		paidCh <- amountsResult{amounts, err}
	}()

	billed := <-billedCh
	paid := <-paidCh

	billedTotal, paidTotal = decimal.Zero, decimal.Zero
	if billed.err != nil {
		uc.log.Warn().Err(billed.err).Msg("total facturado del período degradado a cero")
		degraded = append(degraded, "bills")
	} else {
		billedTotal = ledger.Sum(billed.amounts)
	}
	if paid.err != nil {
		uc.log.Warn().Err(paid.err).Msg("total cobrado del período degradado a cero")
		degraded = append(degraded, "payments")
	} else {
		paidTotal = ledger.Sum(paid.amounts)
	}
	return billedTotal, paidTotal, degraded
}
