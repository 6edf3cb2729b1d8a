package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"smartsales365/internal/domain/entities"
	"smartsales365/internal/usecase/interfaces"
)

var (
	ErrSaleNotFound      = errors.New("sale not found")
	ErrInvalidSaleID     = errors.New("invalid sale id")
	ErrCartNotFound      = errors.New("no active cart for user")
	ErrCartEmpty         = errors.New("cart has no items")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrSaleNotPending    = errors.New("sale is not pending payment")
	ErrInvalidMPPayload  = errors.New("invalid mercado pago payload")

	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// ISaleUseCase covers the purchase lifecycle: checkout of the active cart,
// payment through the external gateway, the provider webhook confirmation and
// the warranties derived from a paid sale.

type ISaleUseCase interface {
	Checkout(ctx context.Context, userID string, actor Actor) (entities.Sale, error)
	Pay(ctx context.Context, saleID string, mpPayload json.RawMessage, actor Actor) (entities.Sale, error)
	ConfirmPayment(ctx context.Context, saleID, providerStatus string) (entities.Sale, error)
	GetByID(ctx context.Context, id string) (entities.Sale, error)
	ListByUser(ctx context.Context, userID string) ([]entities.Sale, error)
	MarkDelivered(ctx context.Context, saleID string, actor Actor) (entities.Sale, error)
	Warranties(ctx context.Context, saleID string) ([]entities.Warranty, error)
}

type SaleUseCase struct {
	sales     interfaces.ISaleRepository
	carts     interfaces.ICartRepository
	products  interfaces.IProductRepository
	discounts interfaces.IDiscountRepository
	audit     interfaces.IAuditRepository
	gateway   interfaces.IPaymentGateway
}

var _ ISaleUseCase = (*SaleUseCase)(nil)

func NewSaleUseCase(
	sales interfaces.ISaleRepository,
	carts interfaces.ICartRepository,
	products interfaces.IProductRepository,
	discounts interfaces.IDiscountRepository,
	audit interfaces.IAuditRepository,
	gateway interfaces.IPaymentGateway,
) *SaleUseCase {
	return &SaleUseCase{
		sales:     sales,
		carts:     carts,
		products:  products,
		discounts: discounts,
		audit:     audit,
		gateway:   gateway,
	}
}

// Checkout turns the user's active cart into a pending sale. Stock is checked
// per line and decremented with a conditional update, so two concurrent
// checkouts can never drive stock negative; the first decrement that fails its
// condition aborts the whole checkout.
func (u *SaleUseCase) Checkout(ctx context.Context, userID string, actor Actor) (entities.Sale, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Sale{}, ErrCartNotFound
	}
	log.Printf("[sale][usecase] checkout start usuario_id=%s", userID)

	cart, err := u.carts.GetActiveByUser(ctx, userID)
	if err != nil {
		return entities.Sale{}, err
	}
	if cart.ID == "" {
		log.Printf("[sale][usecase] no active cart usuario_id=%s", userID)
		return entities.Sale{}, ErrCartNotFound
	}
	if len(cart.Items) == 0 {
		log.Printf("[sale][usecase] empty cart usuario_id=%s carrito_id=%s", userID, cart.ID)
		return entities.Sale{}, ErrCartEmpty
	}

	now := time.Now().UTC()
	items := make([]entities.SaleItem, 0, len(cart.Items))
	total := 0.0
	for _, line := range cart.Items {
		product, err := u.products.GetByID(ctx, line.ProductID)
		if err != nil {
			return entities.Sale{}, err
		}
		if product.ID == "" {
			return entities.Sale{}, ErrProductNotFound
		}
		if product.Stock < line.Quantity {
			log.Printf("[sale][usecase] insufficient stock producto_id=%s stock=%d solicitado=%d", product.ID, product.Stock, line.Quantity)
			return entities.Sale{}, fmt.Errorf("%w: %s", ErrInsufficientStock, product.Name)
		}

		unitPrice := u.bestPrice(ctx, product, now)
		subtotal := unitPrice * float64(line.Quantity)
		items = append(items, entities.SaleItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    line.Quantity,
			UnitPrice:   unitPrice,
			Subtotal:    subtotal,
		})
		total += subtotal
	}

	for _, it := range items {
		if _, err := u.products.DecrementStock(ctx, it.ProductID, it.Quantity); err != nil {
			log.Printf("[sale][usecase] stock decrement failed producto_id=%s err=%v", it.ProductID, err)
			return entities.Sale{}, fmt.Errorf("%w: %s", ErrInsufficientStock, it.ProductName)
		}
	}

	sale := entities.Sale{
		ID:       uuid.NewString(),
		UserID:   userID,
		Username: actor.Username,
		Date:     now,
		Total:    total,
		Status:   entities.SaleStatusPendiente,
		Items:    items,
	}
	created, err := u.sales.Create(ctx, sale)
	if err != nil {
		log.Printf("[sale][usecase] sale create failed usuario_id=%s err=%v", userID, err)
		return entities.Sale{}, err
	}

	cart.Active = false
	cart.UpdatedAt = now
	if _, err := u.carts.Update(ctx, cart); err != nil {
		log.Printf("[sale][usecase] cart deactivation failed carrito_id=%s err=%v", cart.ID, err)
	}

	u.logAudit(ctx, actor, fmt.Sprintf("Realizó compra por $%.2f (venta %s)", created.Total, created.ID))
	log.Printf("[sale][usecase] checkout success venta_id=%s total=%.2f items=%d", created.ID, created.Total, len(created.Items))
	return created, nil
}

// bestPrice applies the highest current promotion for the product, checking
// both product-bound and storewide discounts.
func (u *SaleUseCase) bestPrice(ctx context.Context, product entities.Product, day time.Time) float64 {
	if u.discounts == nil {
		return product.Price
	}
	candidates, err := u.discounts.ListByProduct(ctx, product.ID)
	if err != nil {
		log.Printf("[sale][usecase] discount lookup failed producto_id=%s err=%v", product.ID, err)
		return product.Price
	}
	best := 0.0
	for _, d := range candidates {
		if d.CurrentAt(day) && d.Percentage > best {
			best = d.Percentage
		}
	}
	if best == 0 {
		return product.Price
	}
	return entities.Discount{Percentage: best}.Apply(product.Price)
}

// Pay charges a pending sale through the payment gateway and marks it paid on
// an approved response. PAYMENT_GATEWAY_MOCK short-circuits the provider for
// local runs, mirroring the gateway's own mock switch.
func (u *SaleUseCase) Pay(ctx context.Context, saleID string, mpPayload json.RawMessage, actor Actor) (entities.Sale, error) {
	log.Printf("[sale][usecase] pay start raw_venta_id=%q payload_len=%d", saleID, len(mpPayload))
	mockMode := isPaymentGatewayMockEnabled()
	saleID = strings.TrimSpace(saleID)
	if saleID == "" {
		return entities.Sale{}, ErrInvalidSaleID
	}
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !mockMode {
			log.Printf("[sale][usecase] invalid payload venta_id=%s", saleID)
			return entities.Sale{}, ErrInvalidMPPayload
		}
		mpPayload = json.RawMessage("{}")
	}
	if u.gateway == nil {
		return entities.Sale{}, errors.New("payment gateway not configured")
	}

	sale, err := u.GetByID(ctx, saleID)
	if err != nil {
		return entities.Sale{}, err
	}
	if sale.Status != entities.SaleStatusPendiente {
		log.Printf("[sale][usecase] sale not pending venta_id=%s estado=%s", saleID, sale.Status)
		return entities.Sale{}, ErrSaleNotPending
	}

	// external_reference ties the provider event back to the sale; the
	// amount always comes from the stored sale, never from the caller.
	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err == nil {
		if _, ok := reqMap["external_reference"]; !ok {
			reqMap["external_reference"] = sale.ID
		}
		if _, ok := reqMap["description"]; !ok {
			reqMap["description"] = fmt.Sprintf("Venta %s", sale.ID)
		}
		reqMap["transaction_amount"] = sale.Total
		if b, err := json.Marshal(reqMap); err == nil {
			mpPayload = b
		}
	}

	providerStatus := ""
	if mockMode {
		log.Printf("[sale][usecase] mock mode enabled; skipping external payment gateway venta_id=%s", saleID)
		providerStatus = "approved"
	} else {
		log.Printf("[sale][usecase] calling payment gateway venta_id=%s", saleID)
		var gwErr error
		_, providerStatus, gwErr = u.gateway.CreatePayment(ctx, mpPayload)
		if gwErr != nil {
			log.Printf("[sale][usecase] payment gateway failed venta_id=%s err=%v", saleID, gwErr)
			if isGatewayCustomerNotFound(gwErr) {
				return entities.Sale{}, ErrPaymentGatewayCustomerNotFound
			}
			if isGatewayInvalidUsers(gwErr) {
				return entities.Sale{}, ErrPaymentGatewayInvalidUsers
			}
			if isGatewayUnauthorized(gwErr) {
				return entities.Sale{}, ErrPaymentGatewayUnauthorized
			}
			if isGatewayBadRequest(gwErr) {
				return entities.Sale{}, ErrPaymentGatewayBadRequest
			}
			return entities.Sale{}, gwErr
		}
	}
	log.Printf("[sale][usecase] payment gateway success venta_id=%s provider_status=%s", saleID, providerStatus)

	if providerStatus != "approved" {
		// Pending/in-process payments stay pendiente until the webhook lands.
		return sale, nil
	}

	updated, err := u.sales.UpdateStatus(ctx, sale.ID, entities.SaleStatusPagado)
	if err != nil {
		return entities.Sale{}, err
	}
	u.logAudit(ctx, actor, fmt.Sprintf("Pagó venta %s por $%.2f", updated.ID, updated.Total))
	return updated, nil
}

// ConfirmPayment handles the provider webhook. Only "approved" transitions the
// sale; any other status is acknowledged without a state change so retries of
// intermediate events stay idempotent.
func (u *SaleUseCase) ConfirmPayment(ctx context.Context, saleID, providerStatus string) (entities.Sale, error) {
	sale, err := u.GetByID(ctx, saleID)
	if err != nil {
		return entities.Sale{}, err
	}
	if providerStatus != "approved" {
		log.Printf("[sale][usecase] webhook ignored venta_id=%s provider_status=%s", sale.ID, providerStatus)
		return sale, nil
	}
	if sale.Status == entities.SaleStatusPagado {
		return sale, nil
	}
	if sale.Status != entities.SaleStatusPendiente {
		return entities.Sale{}, ErrSaleNotPending
	}
	updated, err := u.sales.UpdateStatus(ctx, sale.ID, entities.SaleStatusPagado)
	if err != nil {
		return entities.Sale{}, err
	}
	log.Printf("[sale][usecase] webhook confirmed venta_id=%s", updated.ID)
	return updated, nil
}

func (u *SaleUseCase) GetByID(ctx context.Context, id string) (entities.Sale, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Sale{}, ErrInvalidSaleID
	}
	sale, err := u.sales.GetByID(ctx, id)
	if err != nil {
		return entities.Sale{}, err
	}
	if sale.ID == "" {
		return entities.Sale{}, ErrSaleNotFound
	}
	return sale, nil
}

func (u *SaleUseCase) ListByUser(ctx context.Context, userID string) ([]entities.Sale, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidSaleID
	}
	return u.sales.ListByUser(ctx, userID)
}

func (u *SaleUseCase) MarkDelivered(ctx context.Context, saleID string, actor Actor) (entities.Sale, error) {
	sale, err := u.GetByID(ctx, saleID)
	if err != nil {
		return entities.Sale{}, err
	}
	if sale.Status != entities.SaleStatusPagado {
		return entities.Sale{}, ErrSaleNotPending
	}
	updated, err := u.sales.UpdateStatus(ctx, sale.ID, entities.SaleStatusEntregado)
	if err != nil {
		return entities.Sale{}, err
	}
	u.logAudit(ctx, actor, fmt.Sprintf("Marcó venta %s como entregada", updated.ID))
	return updated, nil
}

// Warranties derives the warranty list of a sale from each product's warranty
// months. Nothing is persisted; the status is resolved against now.
func (u *SaleUseCase) Warranties(ctx context.Context, saleID string) ([]entities.Warranty, error) {
	sale, err := u.GetByID(ctx, saleID)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	var warranties []entities.Warranty
	for _, it := range sale.Items {
		product, err := u.products.GetByID(ctx, it.ProductID)
		if err != nil {
			return nil, err
		}
		if product.WarrantyMonths <= 0 {
			continue
		}
		w := entities.Warranty{
			ID:        uuid.NewString(),
			ProductID: product.ID,
			SaleID:    sale.ID,
			Start:     sale.Date,
			End:       sale.Date.AddDate(0, product.WarrantyMonths, 0),
		}
		w.Resolve(now)
		warranties = append(warranties, w)
	}
	return warranties, nil
}

func (u *SaleUseCase) logAudit(ctx context.Context, actor Actor, action string) {
	if u.audit == nil {
		return
	}
	entry := entities.AuditEntry{
		ID:       uuid.NewString(),
		Username: actor.Username,
		Action:   action,
		IP:       actor.IP,
		Date:     time.Now().UTC(),
		Success:  true,
	}
	if err := u.audit.Create(ctx, entry); err != nil {
		log.Printf("[sale][usecase] audit write failed usuario=%s err=%v", actor.Username, err)
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

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}

func isGatewayInvalidUsers(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034")
}

func isGatewayCustomerNotFound(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002")
}
