package partner

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/wallsco/firmbooks-api/internal/application/dto"
	"github.com/wallsco/firmbooks-api/internal/domain"
	"github.com/wallsco/firmbooks-api/internal/domain/entity"
	"github.com/wallsco/firmbooks-api/internal/domain/ledger"
	"github.com/wallsco/firmbooks-api/internal/domain/repository"
	"github.com/wallsco/firmbooks-api/pkg/logger"
)

// WalletUseCase deriva la billetera de cada socio del libro de caja:
// saldo = Σaportes − Σretiros, clasificado OWED/OWING/SETTLED por signo.
// Lecturas fail-open con lista Degraded, igual que la deuda de clientes.
type WalletUseCase struct {
	partnerRepo repository.PartnerRepository
	cashRepo    repository.CashLedgerRepository
	paymentRepo repository.ClientPaymentRepository
	log         *logger.Logger
}

// NewWalletUseCase construye el caso de uso.
func NewWalletUseCase(
	partnerRepo repository.PartnerRepository,
	cashRepo repository.CashLedgerRepository,
	paymentRepo repository.ClientPaymentRepository,
	log *logger.Logger,
) *WalletUseCase {
	return &WalletUseCase{
		partnerRepo: partnerRepo,
		cashRepo:    cashRepo,
		paymentRepo: paymentRepo,
		log:         log,
	}
}

// Wallet saldo actual de la billetera de un socio.
func (uc *WalletUseCase) Wallet(ctx context.Context, partnerID string) (*dto.PartnerWalletDTO, error) {
	partner, err := uc.partnerRepo.GetByID(partnerID)
	if err != nil {
		return nil, err
	}
	if partner == nil {
		return nil, domain.ErrNotFound
	}
	return uc.walletFor(partner), nil
}

// walletFor pliega las tres fuentes de la billetera: aportes, retiros y
// cobros hechos por el socio en nombre de la firma.
func (uc *WalletUseCase) walletFor(partner *entity.Partner) *dto.PartnerWalletDTO {
	out := &dto.PartnerWalletDTO{
		PartnerID:         partner.ID,
		PartnerName:       partner.Name,
		TotalContribution: decimal.Zero,
		TotalWithdrawal:   decimal.Zero,
		TotalCollected:    decimal.Zero,
		TotalDeposited:    decimal.Zero,
	}

	type entriesResult struct {
		entries []entity.CashEntry
		err     error
	}
	type collectedResult struct {
		rows []repository.CollectedAmount
		err  error
	}
	entriesCh := make(chan entriesResult, 1)
	collectedCh := make(chan collectedResult, 1)

	go func() {
		entries, err := uc.cashRepo.List(repository.CashFilter{PartnerID: partner.ID})
		entriesCh <- entriesResult{entries, err}
	}()
	go func() {
		rows, err := uc.paymentRepo.AmountsByCollector(partner.ID)
		collectedCh <- collectedResult{rows, err}
	}()

	movements := <-entriesCh
	collected := <-collectedCh

	if movements.err != nil {
		uc.log.Warn().Err(movements.err).Str("partner_id", partner.ID).
			Msg("lectura de movimientos de socio falló; billetera degradada a cero")
		out.Degraded = append(out.Degraded, "cash_entries")
	} else {
		for _, e := range movements.entries {
			switch {
			case e.Type == entity.CashTypeReceipt && e.Category == entity.CashCategoryPartnerContribution:
				out.TotalContribution = out.TotalContribution.Add(e.Amount)
			case e.Type == entity.CashTypePayment && e.Category == entity.CashCategoryPartnerWithdrawal:
				out.TotalWithdrawal = out.TotalWithdrawal.Add(e.Amount)
			}
		}
	}
	if collected.err != nil {
		uc.log.Warn().Err(collected.err).Str("partner_id", partner.ID).
			Msg("lectura de cobros del socio falló; cobros degradados a cero")
		out.Degraded = append(out.Degraded, "collections")
	} else {
		for _, row := range collected.rows {
			out.TotalCollected = out.TotalCollected.Add(row.Amount)
			if row.DepositedToFirm {
				out.TotalDeposited = out.TotalDeposited.Add(row.Amount)
			}
		}
	}

	out.Balance = out.TotalContribution.Sub(out.TotalWithdrawal)
	out.Status = ledger.WalletStatus(out.Balance)
	return out
}

// History movimientos de billetera del socio más su saldo actual.
func (uc *WalletUseCase) History(ctx context.Context, partnerID string) (*dto.PartnerWalletHistoryDTO, error) {
	partner, err := uc.partnerRepo.GetByID(partnerID)
	if err != nil {
		return nil, err
	}
	if partner == nil {
		return nil, domain.ErrNotFound
	}

	entries, err := uc.cashRepo.List(repository.CashFilter{PartnerID: partnerID})
	if err != nil {
		return nil, err
	}

	history := make([]dto.WalletMovementDTO, 0, len(entries))
	for _, e := range entries {
		var kind string
		var sign int
		switch {
		case e.Type == entity.CashTypeReceipt && e.Category == entity.CashCategoryPartnerContribution:
			kind, sign = "CONTRIBUTION", 1
		case e.Type == entity.CashTypePayment && e.Category == entity.CashCategoryPartnerWithdrawal:
			kind, sign = "WITHDRAWAL", -1
		default:
			continue
		}
		history = append(history, dto.WalletMovementDTO{
			Date:        dto.FormatDate(e.Date),
			Type:        kind,
			Amount:      e.Amount,
			Sign:        sign,
			Description: e.Description,
		})
	}

	return &dto.PartnerWalletHistoryDTO{
		PartnerName:   partner.Name,
		History:       history,
		CurrentWallet: uc.walletFor(partner),
	}, nil
}

// AllWallets billetera de todos los socios activos. Un socio degradado no
// contamina a los demás.
func (uc *WalletUseCase) AllWallets(ctx context.Context) ([]*dto.PartnerWalletDTO, error) {
	partners, err := uc.partnerRepo.List(true)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.PartnerWalletDTO, len(partners))
	done := make(chan int, len(partners))
	for i, p := range partners {
		go func(i int, p *entity.Partner) {
			out[i] = uc.walletFor(p)
			done <- i
		}(i, p)
	}
	for range partners {
		<-done
	}
	return out, nil
}

// Summary totales de aportes y retiros por socio en un rango de fechas.
func (uc *WalletUseCase) Summary(ctx context.Context, filter repository.CashFilter) ([]*dto.PartnerSummaryRow, error) {
	partners, err := uc.partnerRepo.List(true)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.PartnerSummaryRow, 0, len(partners))
	for _, p := range partners {
		f := filter
		f.PartnerID = p.ID
		entries, err := uc.cashRepo.List(f)
		if err != nil {
			return nil, err
		}
		row := &dto.PartnerSummaryRow{
			PartnerID:         p.ID,
			PartnerName:       p.Name,
			TotalContribution: decimal.Zero,
			TotalWithdrawal:   decimal.Zero,
		}
		for _, e := range entries {
			switch {
			case e.Type == entity.CashTypeReceipt && e.Category == entity.CashCategoryPartnerContribution:
				row.TotalContribution = row.TotalContribution.Add(e.Amount)
			case e.Type == entity.CashTypePayment && e.Category == entity.CashCategoryPartnerWithdrawal:
				row.TotalWithdrawal = row.TotalWithdrawal.Add(e.Amount)
			}
		}
		row.Balance = row.TotalContribution.Sub(row.TotalWithdrawal)
		out = append(out, row)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Balance.GreaterThan(out[j].Balance)
	})
	return out, nil
}
