package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"strings"

	request "smartsales365/internal/adapter/http/dto/request"
	response "smartsales365/internal/adapter/http/dto/response"
	"smartsales365/internal/usecase"
	"smartsales365/pkg"

	"github.com/gin-gonic/gin"
)

// SaleHandler handles HTTP requests for checkout, payment and sale queries.

type SaleHandler struct {
	usecase usecase.ISaleUseCase
}

func NewSaleHandler(uc usecase.ISaleUseCase) *SaleHandler {
	return &SaleHandler{usecase: uc}
}

// Checkout turns the user's active cart into a pending sale.
func (h *SaleHandler) Checkout(c *gin.Context) {
	var payload request.CheckoutRequest
	if err := c.ShouldBindJSON(&payload); err != nil || strings.TrimSpace(payload.UserID) == "" {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	actor := actorFrom(c)
	log.Printf("[sale][handler] checkout start user_id=%s actor=%s", payload.UserID, actor.Username)

	sale, err := h.usecase.Checkout(c.Request.Context(), payload.UserID, actor)
	if err != nil {
		log.Printf("[sale][handler] checkout failed user_id=%s err=%v", payload.UserID, err)
		appErr := mapSaleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[sale][handler] checkout success user_id=%s sale_id=%s total=%.2f", payload.UserID, sale.ID, sale.Total)

	c.JSON(http.StatusCreated, response.FromSale(sale))
}

// Pay sends the Mercado Pago payload of a pending sale to the gateway.
func (h *SaleHandler) Pay(c *gin.Context) {
	saleID := c.Param("id")
	log.Printf("[sale][handler] pay start sale_id=%s", saleID)
	mockMode := isPaymentGatewayMockEnabled()
	mpPayload, err := readMPPayload(c)
	if err != nil {
		if mockMode {
			log.Printf("[sale][handler] payload invalid in mock mode; fallback to empty payload sale_id=%s err=%v", saleID, err)
			mpPayload = json.RawMessage("{}")
		} else {
			log.Printf("[sale][handler] invalid payload sale_id=%s err=%v", saleID, err)
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}

	sale, err := h.usecase.Pay(c.Request.Context(), saleID, mpPayload, actorFrom(c))
	if err != nil {
		log.Printf("[sale][handler] pay failed sale_id=%s err=%v", saleID, err)
		appErr := mapSaleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[sale][handler] pay success sale_id=%s status=%s", sale.ID, sale.Status)

	c.JSON(http.StatusOK, response.FromSale(sale))
}

// PaymentWebhook receives the asynchronous payment confirmation from the
// provider. Duplicate notifications for an already paid sale are acknowledged.
func (h *SaleHandler) PaymentWebhook(c *gin.Context) {
	var payload request.PaymentWebhookRequest
	if err := c.ShouldBindJSON(&payload); err != nil || strings.TrimSpace(payload.ExternalReference) == "" {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[sale][handler] webhook received sale_id=%s status=%s", payload.ExternalReference, payload.Status)

	sale, err := h.usecase.ConfirmPayment(c.Request.Context(), payload.ExternalReference, payload.Status)
	if err != nil {
		log.Printf("[sale][handler] webhook failed sale_id=%s err=%v", payload.ExternalReference, err)
		appErr := mapSaleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSale(sale))
}

func (h *SaleHandler) GetSale(c *gin.Context) {
	sale, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapSaleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSale(sale))
}

// ListSales lists the sales of one user (usuario_id query parameter).
func (h *SaleHandler) ListSales(c *gin.Context) {
	userID := strings.TrimSpace(c.Query("usuario_id"))
	if userID == "" {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	sales, err := h.usecase.ListByUser(c.Request.Context(), userID)
	if err != nil {
		appErr := mapSaleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSales(sales))
}

// MarkDelivered moves a paid sale to "entregado".
func (h *SaleHandler) MarkDelivered(c *gin.Context) {
	sale, err := h.usecase.MarkDelivered(c.Request.Context(), c.Param("id"), actorFrom(c))
	if err != nil {
		appErr := mapSaleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSale(sale))
}

// Warranties lists the warranties derived from a sale's line items.
func (h *SaleHandler) Warranties(c *gin.Context) {
	warranties, err := h.usecase.Warranties(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapSaleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromWarranties(warranties))
}

func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			if len(strings.TrimSpace(string(wrapped))) == 0 || strings.TrimSpace(string(wrapped)) == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapSaleError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSaleID), errors.Is(err, usecase.ErrInvalidMPPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrCartNotFound):
		return pkg.NewDomainErrorSimple("CART_NOT_FOUND", "No active cart for this user", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCartEmpty):
		return pkg.NewDomainErrorSimple("CART_EMPTY", "Active cart has no items", http.StatusConflict)
	case errors.Is(err, usecase.ErrInsufficientStock):
		return pkg.NewDomainErrorSimple("INSUFFICIENT_STOCK", "Not enough stock for one of the items", http.StatusConflict)
	case errors.Is(err, usecase.ErrSaleNotPending):
		return pkg.NewDomainErrorSimple("SALE_NOT_PENDING", "Sale is not pending payment", http.StatusConflict)
	case errors.Is(err, usecase.ErrSaleNotFound):
		return pkg.NewDomainErrorSimple("SALE_NOT_FOUND", "Sale not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func isPaymentGatewayMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("PAYMENT_GATEWAY_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}

	v = strings.ToLower(strings.TrimSpace(os.Getenv("MERCADOPAGO_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}

	return false
}
