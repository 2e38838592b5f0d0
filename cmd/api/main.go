package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/wallsco/firmbooks-api/internal/application/billing"
	"github.com/wallsco/firmbooks-api/internal/application/cash"
	"github.com/wallsco/firmbooks-api/internal/application/inventory"
	"github.com/wallsco/firmbooks-api/internal/application/partner"
	"github.com/wallsco/firmbooks-api/internal/application/payroll"
	"github.com/wallsco/firmbooks-api/internal/application/procurement"
	"github.com/wallsco/firmbooks-api/internal/application/reports"
	"github.com/wallsco/firmbooks-api/internal/infrastructure/postgres"
	httpRouter "github.com/wallsco/firmbooks-api/internal/interfaces/http"
	"github.com/wallsco/firmbooks-api/pkg/config"
	"github.com/wallsco/firmbooks-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	clientRepo := postgres.NewClientRepository(pool)
	billRepo := postgres.NewClientBillRepository(pool)
	clientPaymentRepo := postgres.NewClientPaymentRepository(pool)
	cashRepo := postgres.NewCashLedgerRepository(pool)
	partnerRepo := postgres.NewPartnerRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	supplierInvoiceRepo := postgres.NewSupplierInvoiceRepository(pool)
	supplierPaymentRepo := postgres.NewSupplierPaymentRepository(pool)
	poRepo := postgres.NewPurchaseOrderRepository(pool)
	materialRepo := postgres.NewMaterialRepository(pool)
	purchaseRepo := postgres.NewMaterialPurchaseRepository(pool)
	auditRepo := postgres.NewStockAuditRepository(pool)
	workerRepo := postgres.NewWorkerRepository(pool)
	wageRepo := postgres.NewWageEntryRepository(pool)
	productionRepo := postgres.NewProductionRepository(pool)

	billingTx := postgres.NewBillingTxRunner(pool)
	procurementTx := postgres.NewProcurementTxRunner(pool)
	inventoryTx := postgres.NewInventoryTxRunner(pool)
	payrollTx := postgres.NewPayrollTxRunner(pool)

	clientUC := billing.NewClientUseCase(clientRepo)
	billingUC := billing.NewBillingUseCase(billingTx, clientRepo, billRepo, clientPaymentRepo, partnerRepo)
	dueUC := billing.NewDueUseCase(clientRepo, billRepo, clientPaymentRepo, log)
	cashUC := cash.NewCashUseCase(cashRepo, partnerRepo)
	partnerUC := partner.NewPartnerUseCase(partnerRepo)
	walletUC := partner.NewWalletUseCase(partnerRepo, cashRepo, clientPaymentRepo, log)
	supplierUC := procurement.NewSupplierUseCase(supplierRepo)
	supplierBillingUC := procurement.NewSupplierBillingUseCase(
		procurementTx, supplierRepo, supplierInvoiceRepo, supplierPaymentRepo, partnerRepo, poRepo,
	)
	poUC := procurement.NewPurchaseOrderUseCase(poRepo, supplierRepo)
	materialUC := inventory.NewMaterialUseCase(materialRepo)
	purchaseUC := inventory.NewPurchaseUseCase(inventoryTx, materialRepo, purchaseRepo, partnerRepo)
	auditUC := inventory.NewAuditUseCase(inventoryTx, materialRepo, auditRepo)
	productionUC := inventory.NewProductionUseCase(productionRepo)
	workerUC := payroll.NewWorkerUseCase(payrollTx, workerRepo, wageRepo)
	reportsUC := reports.NewReportsUseCase(dueUC, walletUC, cashRepo, productionRepo, log)
	dashboardUC := reports.NewDashboardUseCase(dueUC, cashRepo, workerRepo, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "FirmBooks API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ClientUC:          clientUC,
		BillingUC:         billingUC,
		DueUC:             dueUC,
		CashUC:            cashUC,
		PartnerUC:         partnerUC,
		WalletUC:          walletUC,
		SupplierUC:        supplierUC,
		SupplierBillingUC: supplierBillingUC,
		PurchaseOrderUC:   poUC,
		MaterialUC:        materialUC,
		PurchaseUC:        purchaseUC,
		AuditUC:           auditUC,
		ProductionUC:      productionUC,
		WorkerUC:          workerUC,
		ReportsUC:         reportsUC,
		DashboardUC:       dashboardUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
