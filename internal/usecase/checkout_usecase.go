package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"loja_checkout/internal/domain/entities"
	"loja_checkout/internal/usecase/interfaces"
	"loja_checkout/pkg"

	"github.com/google/uuid"
)

var ErrOrderNotFound = errors.New("order not found")

// CheckoutValidationError carries field-level failures so the storefront can
// highlight individual inputs.

type CheckoutValidationError struct {
	Fields []pkg.FieldError
}

func (e *CheckoutValidationError) Error() string {
	return fmt.Sprintf("checkout validation failed (%d fields)", len(e.Fields))
}

// CheckoutInput is the customer-facing half of the order; items, coupon and
// freight come from the session.

type CheckoutInput struct {
	SessionID string
	Customer  entities.Customer
	Address   entities.Address
}

// ICheckoutUseCase assembles the order-creation payload from session state.
// The payload total must match the pricing ledger to the cent in both coupon
// semantics.

type ICheckoutUseCase interface {
	Build(ctx context.Context, in CheckoutInput) (entities.Order, error)
	Submit(ctx context.Context, in CheckoutInput) (entities.Order, error)
	GetOrder(ctx context.Context, orderID string) (entities.Order, error)
}

type CheckoutUseCase struct {
	store                      interfaces.ISessionStore
	orders                     interfaces.IOrderRepository
	freeShippingThresholdCents int64
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

func NewCheckoutUseCase(store interfaces.ISessionStore, orders interfaces.IOrderRepository, freeShippingThresholdCents int64) *CheckoutUseCase {
	return &CheckoutUseCase{store: store, orders: orders, freeShippingThresholdCents: freeShippingThresholdCents}
}

// Build assembles the order without persisting it. Line prices depend on the
// coupon mode: with the price-override marker present, items carry their
// original list price and the whole discount is absorbed into the shipping
// figure; otherwise items are sent already discounted per line and the
// shipping figure absorbs the flat subtract plus any rounding remainder. In
// both modes the payload total equals the ledger total by construction.
func (u *CheckoutUseCase) Build(ctx context.Context, in CheckoutInput) (entities.Order, error) {
	order, _, err := u.build(ctx, in)
	return order, err
}

// build also reports whether the one-shot override marker was consumed, so
// Submit can restore it when persistence fails.
func (u *CheckoutUseCase) build(ctx context.Context, in CheckoutInput) (entities.Order, bool, error) {
	sessionID := strings.TrimSpace(in.SessionID)
	if sessionID == "" {
		return entities.Order{}, false, ErrInvalidSessionID
	}

	cart, err := u.store.GetCart(ctx, sessionID)
	if err != nil {
		return entities.Order{}, false, err
	}
	if fields := validateCheckout(cart, in); len(fields) > 0 {
		log.Printf("[checkout][usecase] validation failed session_id=%s fields=%d", sessionID, len(fields))
		return entities.Order{}, false, &CheckoutValidationError{Fields: fields}
	}

	coupon, err := u.store.GetActiveCoupon(ctx, sessionID)
	if err != nil {
		return entities.Order{}, false, err
	}
	sel, err := u.store.GetFreightSelection(ctx, sessionID)
	if err != nil {
		return entities.Order{}, false, err
	}
	var freight *entities.FreightQuote
	if sel != nil && sel.HasSelection() {
		q := sel.Selected()
		freight = &q
	}

	ledger := entities.ComputePricing(cart.Lines, coupon, freight, u.freeShippingThresholdCents)

	overrideMode, err := u.store.ConsumePriceOverrideMarker(ctx, sessionID)
	if err != nil {
		return entities.Order{}, false, err
	}

	lines := make([]entities.OrderLine, 0, len(cart.Lines))
	var itemsSum int64
	for _, l := range cart.Lines {
		unit := l.UnitPriceCents
		if overrideMode {
			unit = l.OriginalUnitPriceCents
		} else if coupon != nil && coupon.IsValid() {
			unit = int64(math.Round(float64(l.UnitPriceCents) * coupon.Multiplier))
		}
		lines = append(lines, entities.OrderLine{
			ProductID:      l.ProductID,
			Name:           l.Name,
			UnitPriceCents: unit,
			Quantity:       l.Quantity,
		})
		itemsSum += unit * int64(l.Quantity)
	}

	// The shipping figure closes the gap between the per-line sum and the
	// ledger total, keeping the payload/ledger invariant exact to the cent.
	shippingFigure := ledger.TotalCents - itemsSum

	var couponCodes []string
	if coupon != nil {
		couponCodes = []string{coupon.Code}
	}

	order := entities.Order{
		ID:                   uuid.NewString(),
		Customer:             in.Customer,
		Address:              in.Address,
		Lines:                lines,
		CouponCodes:          couponCodes,
		ShippingFeeCents:     shippingFigure,
		TotalAtCreationCents: ledger.TotalCents,
		CreatedAt:            time.Now().UTC(),
	}
	log.Printf("[checkout][usecase] build success session_id=%s order_id=%s total_cents=%d override_mode=%t", sessionID, order.ID, order.TotalAtCreationCents, overrideMode)
	return order, overrideMode, nil
}

func (u *CheckoutUseCase) Submit(ctx context.Context, in CheckoutInput) (entities.Order, error) {
	order, overrideMode, err := u.build(ctx, in)
	if err != nil {
		return entities.Order{}, err
	}
	created, err := u.orders.Create(ctx, order)
	if err != nil {
		log.Printf("[checkout][usecase] order create failed session_id=%s order_id=%s err=%v", in.SessionID, order.ID, err)
		// The marker was consumed by build; put it back so a retried
		// submission keeps the price-override line semantics.
		if overrideMode {
			if merr := u.store.SetPriceOverrideMarker(ctx, strings.TrimSpace(in.SessionID)); merr != nil {
				log.Printf("[checkout][usecase] marker restore failed session_id=%s err=%v", in.SessionID, merr)
			}
		}
		return entities.Order{}, err
	}
	log.Printf("[checkout][usecase] submit success session_id=%s order_id=%s total_cents=%d", in.SessionID, created.ID, created.TotalAtCreationCents)
	return created, nil
}

func (u *CheckoutUseCase) GetOrder(ctx context.Context, orderID string) (entities.Order, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	o, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

func validateCheckout(cart entities.Cart, in CheckoutInput) []pkg.FieldError {
	var fields []pkg.FieldError
	add := func(field, msg string) {
		fields = append(fields, pkg.FieldError{Field: field, Message: msg})
	}

	if cart.IsEmpty() {
		add("items", "o carrinho está vazio")
	}
	if strings.TrimSpace(in.Customer.FirstName) == "" {
		add("nome", "informe o nome")
	}
	if strings.TrimSpace(in.Customer.LastName) == "" {
		add("sobrenome", "informe o sobrenome")
	}
	if email := strings.TrimSpace(in.Customer.Email); email == "" || !strings.Contains(email, "@") {
		add("email", "informe um e-mail válido")
	}
	if strings.TrimSpace(in.Customer.Phone) == "" {
		add("telefone", "informe o telefone")
	}
	if !IsValidCPF(in.Customer.CPF) {
		add("cpf", "CPF inválido")
	}
	if !cepPattern.MatchString(NormalizeCEP(in.Address.PostalCode)) {
		add("cep", "CEP inválido")
	}
	if strings.TrimSpace(in.Address.Street) == "" {
		add("endereco", "informe o endereço")
	}
	if strings.TrimSpace(in.Address.Number) == "" {
		add("numero", "informe o número")
	}
	if strings.TrimSpace(in.Address.District) == "" {
		add("bairro", "informe o bairro")
	}
	if strings.TrimSpace(in.Address.City) == "" {
		add("cidade", "informe a cidade")
	}
	if strings.TrimSpace(in.Address.State) == "" {
		add("uf", "informe o estado")
	}
	return fields
}

// IsValidCPF runs the standard check-digit verification over an 11-digit CPF,
// accepting dotted/dashed input.
func IsValidCPF(cpf string) bool {
	digits := make([]int, 0, 11)
	for _, r := range cpf {
		if r >= '0' && r <= '9' {
			digits = append(digits, int(r-'0'))
		} else if r != '.' && r != '-' && r != ' ' {
			return false
		}
	}
	if len(digits) != 11 {
		return false
	}

	allEqual := true
	for _, d := range digits[1:] {
		if d != digits[0] {
			allEqual = false
			break
		}
	}
	if allEqual {
		return false
	}

	for _, pos := range []int{9, 10} {
		sum := 0
		for i := 0; i < pos; i++ {
			sum += digits[i] * (pos + 1 - i)
		}
		check := (sum * 10) % 11
		if check == 10 {
			check = 0
		}
		if check != digits[pos] {
			return false
		}
	}
	return true
}
