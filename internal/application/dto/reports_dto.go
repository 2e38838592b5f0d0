package dto

import "github.com/shopspring/decimal"

// ClientFinancialReportDTO reporte financiero de clientes.
// Degraded nombra las lecturas que fallaron y entraron al total como cero.
type ClientFinancialReportDTO struct {
	Period         Period          `json:"period"`
	TotalRevenue   decimal.Decimal `json:"total_revenue"`
	TotalReceived  decimal.Decimal `json:"total_received"`
	TotalDue       decimal.Decimal `json:"total_due"`
	CollectionRate decimal.Decimal `json:"collection_rate"`
	ByClient       []*ClientDueDTO `json:"by_client"`
	Degraded       []string        `json:"degraded,omitempty"`
}

// PartnerFinancialReportDTO reporte financiero de socios.
type PartnerFinancialReportDTO struct {
	Period            Period              `json:"period"`
	TotalContribution decimal.Decimal     `json:"total_contribution"`
	TotalWithdrawal   decimal.Decimal     `json:"total_withdrawal"`
	NetBalance        decimal.Decimal     `json:"net_balance"`
	ByPartner         []PartnerSummaryRow `json:"by_partner"`
	Degraded          []string            `json:"degraded,omitempty"`
}

// ProductionStockReportDTO producción vs ventas de un rango.
type ProductionStockReportDTO struct {
	Period            Period          `json:"period"`
	Produced          decimal.Decimal `json:"produced"`
	Sold              decimal.Decimal `json:"sold"`
	Remaining         decimal.Decimal `json:"remaining"`
	TotalSalesRevenue decimal.Decimal `json:"total_sales_revenue"`
	Degraded          []string        `json:"degraded,omitempty"`
}

// ComprehensiveReportDTO reporte de negocio integral: clientes + socios +
// caja + producción fusionados. Cada tajada degradada queda nombrada.
type ComprehensiveReportDTO struct {
	Period        Period                     `json:"period"`
	TotalRevenue  decimal.Decimal            `json:"total_revenue"`
	TotalReceived decimal.Decimal            `json:"total_received"`
	TotalDue      decimal.Decimal            `json:"total_due"`
	TotalExpenses decimal.Decimal            `json:"total_expenses"`
	ProfitLoss    decimal.Decimal            `json:"profit_loss"`
	ProfitMargin  decimal.Decimal            `json:"profit_margin"`
	Client        *ClientFinancialReportDTO  `json:"client"`
	Partner       *PartnerFinancialReportDTO `json:"partner"`
	LabourCost    decimal.Decimal            `json:"labour_cost"`
	Production    *ProductionStockReportDTO  `json:"production"`
	Degraded      []string                   `json:"degraded,omitempty"`
}

// ProfitLossDTO estado de resultados de un rango.
type ProfitLossDTO struct {
	Period            Period          `json:"period"`
	Revenue           decimal.Decimal `json:"revenue"`
	LabourCost        decimal.Decimal `json:"labour_cost"`
	PartnerExpense    decimal.Decimal `json:"partner_expense"`
	PartnerWithdrawal decimal.Decimal `json:"partner_withdrawal"`
	TotalExpenses     decimal.Decimal `json:"total_expenses"`
	GrossProfit       decimal.Decimal `json:"gross_profit"`
	ProfitMargin      decimal.Decimal `json:"profit_margin"`
	Degraded          []string        `json:"degraded,omitempty"`
}

// DashboardSummaryDTO KPIs del día y del mes en curso.
type DashboardSummaryDTO struct {
	TodayRevenue    decimal.Decimal `json:"today_revenue"`
	TodayReceived   decimal.Decimal `json:"today_received"`
	MonthRevenue    decimal.Decimal `json:"month_revenue"`
	MonthReceived   decimal.Decimal `json:"month_received"`
	TotalDue        decimal.Decimal `json:"total_due"`
	CashBalance     decimal.Decimal `json:"cash_balance"`
	LabourLiability decimal.Decimal `json:"labour_liability"`
	DateLabel       string          `json:"date_label"`
	Degraded        []string        `json:"degraded,omitempty"`
}
