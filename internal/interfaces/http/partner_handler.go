package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wallsco/firmbooks-api/internal/application/dto"
	"github.com/wallsco/firmbooks-api/internal/application/partner"
	"github.com/wallsco/firmbooks-api/internal/domain/repository"
)

// PartnerHandler maneja las peticiones HTTP de socios y sus billeteras.
type PartnerHandler struct {
	partners *partner.PartnerUseCase
	wallets  *partner.WalletUseCase
}

// NewPartnerHandler construye el handler.
func NewPartnerHandler(partners *partner.PartnerUseCase, wallets *partner.WalletUseCase) *PartnerHandler {
	return &PartnerHandler{partners: partners, wallets: wallets}
}

// Create POST /api/partners
func (h *PartnerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePartnerRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	p, err := h.partners.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(p)
}

// List GET /api/partners?active=true
func (h *PartnerHandler) List(c *fiber.Ctx) error {
	list, err := h.partners.List(c.QueryBool("active", false))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// Get GET /api/partners/:id
func (h *PartnerHandler) Get(c *fiber.Ctx) error {
	p, err := h.partners.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(p)
}

// Wallet GET /api/partners/:id/wallet
func (h *PartnerHandler) Wallet(c *fiber.Ctx) error {
	wallet, err := h.wallets.Wallet(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(wallet)
}

// History GET /api/partners/:id/wallet/history
func (h *PartnerHandler) History(c *fiber.Ctx) error {
	history, err := h.wallets.History(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(history)
}

// AllWallets GET /api/partners/wallets
func (h *PartnerHandler) AllWallets(c *fiber.Ctx) error {
	wallets, err := h.wallets.AllWallets(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(wallets)
}

// Summary GET /api/partners/summary?from=&to=
func (h *PartnerHandler) Summary(c *fiber.Ctx) error {
	from, to, err := dateRangeQuery(c)
	if err != nil {
		return badDateRange(c)
	}
	rows, err := h.wallets.Summary(c.Context(), repository.CashFilter{From: from, To: to})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(rows)
}
