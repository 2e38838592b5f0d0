package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wallsco/firmbooks-api/internal/application/billing"
	"github.com/wallsco/firmbooks-api/internal/application/cash"
	"github.com/wallsco/firmbooks-api/internal/application/inventory"
	"github.com/wallsco/firmbooks-api/internal/application/partner"
	"github.com/wallsco/firmbooks-api/internal/application/payroll"
	"github.com/wallsco/firmbooks-api/internal/application/procurement"
	"github.com/wallsco/firmbooks-api/internal/application/reports"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ClientUC          *billing.ClientUseCase
	BillingUC         *billing.BillingUseCase
	DueUC             *billing.DueUseCase
	CashUC            *cash.CashUseCase
	PartnerUC         *partner.PartnerUseCase
	WalletUC          *partner.WalletUseCase
	SupplierUC        *procurement.SupplierUseCase
	SupplierBillingUC *procurement.SupplierBillingUseCase
	PurchaseOrderUC   *procurement.PurchaseOrderUseCase
	MaterialUC        *inventory.MaterialUseCase
	PurchaseUC        *inventory.PurchaseUseCase
	AuditUC           *inventory.AuditUseCase
	ProductionUC      *inventory.ProductionUseCase
	WorkerUC          *payroll.WorkerUseCase
	ReportsUC         *reports.ReportsUseCase
	DashboardUC       *reports.DashboardUseCase
}

// Router registra las rutas de la API. Las rutas estáticas de cada grupo van
// antes que las de parámetro (:id) para que Fiber no las capture.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Clientes y facturación
	clients := api.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC, deps.BillingUC, deps.DueUC)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/dues", clientHandler.AllDues)
	clients.Get("/:id", clientHandler.Get)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", clientHandler.Deactivate)
	clients.Get("/:id/due", clientHandler.Due)
	clients.Get("/:id/bills", clientHandler.ListBills)
	clients.Get("/:id/payments", clientHandler.ListPayments)
	api.Post("/client-bills", clientHandler.AddBill)
	api.Post("/client-payments", clientHandler.RecordPayment)

	// Libro de caja
	cashGroup := api.Group("/cash")
	cashHandler := NewCashHandler(deps.CashUC)
	cashGroup.Post("/receipts", cashHandler.RecordReceipt)
	cashGroup.Post("/payments", cashHandler.RecordPayment)
	cashGroup.Get("/entries", cashHandler.Cashbook)
	cashGroup.Get("/balance", cashHandler.Balance)
	cashGroup.Get("/summary", cashHandler.Summary)

	// Socios y billeteras
	partners := api.Group("/partners")
	partnerHandler := NewPartnerHandler(deps.PartnerUC, deps.WalletUC)
	partners.Post("/", partnerHandler.Create)
	partners.Get("/", partnerHandler.List)
	partners.Get("/wallets", partnerHandler.AllWallets)
	partners.Get("/summary", partnerHandler.Summary)
	partners.Get("/:id", partnerHandler.Get)
	partners.Get("/:id/wallet", partnerHandler.Wallet)
	partners.Get("/:id/wallet/history", partnerHandler.History)

	// Proveedores, facturas y pagos
	suppliers := api.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC, deps.SupplierBillingUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/summary", supplierHandler.Summary)
	suppliers.Get("/:id", supplierHandler.Get)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)
	suppliers.Get("/:id/invoices", supplierHandler.ListInvoices)
	suppliers.Get("/:id/payments", supplierHandler.ListPayments)
	suppliers.Get("/:id/ledger", supplierHandler.Ledger)
	api.Post("/supplier-invoices", supplierHandler.CreateInvoice)
	api.Post("/supplier-payments", supplierHandler.RecordPayment)

	// Órdenes de compra
	pos := api.Group("/purchase-orders")
	poHandler := NewPurchaseOrderHandler(deps.PurchaseOrderUC)
	pos.Post("/", poHandler.Create)
	pos.Get("/", poHandler.List)
	pos.Get("/:id", poHandler.Get)
	pos.Patch("/:id/status", poHandler.UpdateStatus)

	// Materias primas y compras
	materials := api.Group("/materials")
	materialHandler := NewMaterialHandler(deps.MaterialUC, deps.PurchaseUC)
	materials.Post("/", materialHandler.Create)
	materials.Get("/", materialHandler.List)
	materials.Get("/:name", materialHandler.Get)
	purchases := api.Group("/material-purchases")
	purchases.Post("/", materialHandler.RecordPurchase)
	purchases.Get("/", materialHandler.PurchaseHistory)
	purchases.Get("/summary", materialHandler.PurchaseSummary)

	// Auditorías de stock
	audits := api.Group("/stock-audits")
	auditHandler := NewAuditHandler(deps.AuditUC)
	audits.Post("/", auditHandler.Create)
	audits.Get("/", auditHandler.History)
	audits.Get("/summary", auditHandler.Summary)
	audits.Post("/:id/approve", auditHandler.Approve)
	audits.Post("/:id/reject", auditHandler.Reject)

	// Producción y ventas de stock
	production := api.Group("/production")
	productionHandler := NewProductionHandler(deps.ProductionUC)
	production.Post("/entries", productionHandler.RecordEntry)
	production.Get("/entries", productionHandler.ListEntries)
	production.Post("/sales", productionHandler.RecordSale)
	production.Get("/sales", productionHandler.ListSales)

	// Trabajadores y jornales
	workers := api.Group("/workers")
	workerHandler := NewWorkerHandler(deps.WorkerUC)
	workers.Post("/", workerHandler.Create)
	workers.Get("/", workerHandler.List)
	workers.Get("/summary", workerHandler.Summary)
	workers.Post("/attendance", workerHandler.RecordAttendance)
	workers.Post("/payments", workerHandler.Pay)
	workers.Get("/:id", workerHandler.Get)
	workers.Delete("/:id", workerHandler.Deactivate)
	workers.Get("/:id/statement", workerHandler.Statement)

	// Reportes y dashboard
	reportsGroup := api.Group("/reports")
	reportsHandler := NewReportsHandler(deps.ReportsUC, deps.DashboardUC)
	reportsGroup.Get("/clients", reportsHandler.Clients)
	reportsGroup.Get("/partners", reportsHandler.Partners)
	reportsGroup.Get("/production", reportsHandler.Production)
	reportsGroup.Get("/profit-loss", reportsHandler.ProfitLoss)
	reportsGroup.Get("/comprehensive", reportsHandler.Comprehensive)
	api.Get("/dashboard", reportsHandler.Dashboard)
}
