package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"loja_checkout/internal/domain/entities"
	"loja_checkout/internal/usecase/interfaces"
)

var (
	ErrInvalidOrderID       = errors.New("invalid order id")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrCardDetailsRequired  = errors.New("card details required")
	ErrChargeNotFound       = errors.New("charge not found")
	ErrChargeAlreadyPaid    = errors.New("charge already paid")
	ErrPaymentRejected      = errors.New("payment rejected by gateway")
	ErrGatewayNotConfigured = errors.New("payment gateway not configured")
)

const (
	ReasonDeclined = "Pagamento recusado pela operadora. Verifique os dados e tente novamente."
	ReasonCanceled = "Pagamento cancelado."
	ReasonExpired  = "Tempo de confirmação esgotado. Se você já pagou, use a verificação manual."

	defaultCardPollInterval = 3 * time.Second
	defaultCardTimeout      = 2 * time.Minute
	defaultPixPollInterval  = 5 * time.Second
	defaultPixTimeout       = 10 * time.Minute
)

// CardDetails carries the opaque encrypted card token produced by the
// gateway's client-side tokenization, plus the chosen installments.

type CardDetails struct {
	Token        string
	Installments int
}

// IInvoiceTrigger is the slice of the invoice lifecycle the payment session
// manager needs: fire-and-forget invoice generation for a paid order.

type IInvoiceTrigger interface {
	GenerateForOrder(ctx context.Context, orderID string)
}

// IChargeUseCase drives a charge from creation to a terminal state,
// reconciling three writers: the polling loop, the gateway webhook and the
// manual re-check. All writers funnel through the same conditional
// transition, so terminal states are monotonic and applying PAID twice is a
// no-op.

type IChargeUseCase interface {
	CreateCharge(ctx context.Context, orderID string, method entities.PaymentMethod, card *CardDetails) (entities.Charge, error)
	Supervise(charge entities.Charge, onPaid func(entities.Charge), onFailed func(entities.Charge, string), pollInterval, timeout time.Duration)
	CancelSupervision(orderID string)
	CheckStatus(ctx context.Context, orderID string) (entities.Charge, error)
	ApplyWebhook(ctx context.Context, orderID string) (entities.Charge, error)
}

type supervision struct {
	ctx    context.Context
	cancel context.CancelFunc
}

type ChargeUseCase struct {
	charges interfaces.IChargeRepository
	orders  interfaces.IOrderRepository
	gateway interfaces.IPaymentGateway
	invoice IInvoiceTrigger

	mu     sync.Mutex
	active map[string]*supervision
}

var _ IChargeUseCase = (*ChargeUseCase)(nil)

func NewChargeUseCase(charges interfaces.IChargeRepository, orders interfaces.IOrderRepository, gateway interfaces.IPaymentGateway, invoice IInvoiceTrigger) *ChargeUseCase {
	return &ChargeUseCase{
		charges: charges,
		orders:  orders,
		gateway: gateway,
		invoice: invoice,
		active:  make(map[string]*supervision),
	}
}

func (u *ChargeUseCase) CreateCharge(ctx context.Context, orderID string, method entities.PaymentMethod, card *CardDetails) (entities.Charge, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Charge{}, ErrInvalidOrderID
	}

	switch method {
	case entities.PaymentMethodCard:
		if card == nil || strings.TrimSpace(card.Token) == "" {
			return entities.Charge{}, ErrCardDetailsRequired
		}
	case entities.PaymentMethodPix:
		// No extra details; the gateway issues the copy-paste code.
	default:
		return entities.Charge{}, ErrInvalidPaymentMethod
	}

	if u.gateway == nil {
		log.Printf("[charge][usecase] gateway not configured order_id=%s", orderID)
		return entities.Charge{}, ErrGatewayNotConfigured
	}

	log.Printf("[charge][usecase] create start order_id=%s method=%s", orderID, method)
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return entities.Charge{}, err
	}
	if order.ID == "" {
		return entities.Charge{}, ErrOrderNotFound
	}

	if existing, err := u.charges.GetByOrderID(ctx, orderID); err != nil {
		return entities.Charge{}, err
	} else if existing.Status == entities.ChargeStatusPaid {
		return entities.Charge{}, ErrChargeAlreadyPaid
	}

	now := time.Now().UTC()
	charge := entities.Charge{
		OrderID:     orderID,
		Method:      method,
		Status:      entities.ChargeStatusCreated,
		AmountCents: order.TotalAtCreationCents,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	charge, err = u.charges.Create(ctx, charge)
	if err != nil {
		return entities.Charge{}, err
	}

	req := entities.GatewayChargeRequest{
		OrderID:     orderID,
		Method:      method,
		AmountCents: order.TotalAtCreationCents,
		Description: fmt.Sprintf("Pedido %s", orderID),
		PayerEmail:  order.Customer.Email,
		PayerCPF:    order.Customer.CPF,
	}
	if card != nil {
		req.CardToken = card.Token
		req.Installments = card.Installments
	}

	gatewayID, status, err := u.gateway.CreateCharge(ctx, req)
	if err != nil {
		if errors.Is(err, interfaces.ErrChargeRejected) {
			// Hard rejection is terminal for this charge, never retried; the
			// user must resubmit with a new charge.
			log.Printf("[charge][usecase] gateway rejected order_id=%s err=%v", orderID, err)
			if _, _, terr := u.charges.TransitionStatus(ctx, orderID, entities.ChargeStatusDeclined, ReasonDeclined); terr != nil {
				log.Printf("[charge][usecase] decline write failed order_id=%s err=%v", orderID, terr)
			}
			return entities.Charge{}, ErrPaymentRejected
		}
		log.Printf("[charge][usecase] gateway create failed order_id=%s err=%v", orderID, err)
		return entities.Charge{}, err
	}

	charge, err = u.charges.AttachGatewayCharge(ctx, orderID, gatewayID)
	if err != nil {
		return entities.Charge{}, err
	}
	if _, _, err := u.charges.TransitionStatus(ctx, orderID, entities.ChargeStatusPending, ""); err != nil {
		return entities.Charge{}, err
	}
	charge.Status = entities.ChargeStatusPending

	// Some gateways settle synchronously (sandbox card approvals); fold the
	// creation status in through the usual transition path.
	if next, reason, terminal := mapGatewayStatus(status); terminal {
		charge, _, err = u.applyTransition(ctx, orderID, next, reason)
		if err != nil {
			return entities.Charge{}, err
		}
	}

	log.Printf("[charge][usecase] create success order_id=%s gateway_charge_id=%s status=%s", orderID, gatewayID, charge.Status)
	return charge, nil
}

// Supervise starts the polling loop for a charge. At most one loop runs per
// charge: starting a new supervision cancels the prior one first. Callbacks
// fire exactly once per supervision; caller cancellation stops polling
// without touching charge state.
func (u *ChargeUseCase) Supervise(charge entities.Charge, onPaid func(entities.Charge), onFailed func(entities.Charge, string), pollInterval, timeout time.Duration) {
	if pollInterval <= 0 || timeout <= 0 {
		di, dt := defaultSupervision(charge.Method)
		if pollInterval <= 0 {
			pollInterval = di
		}
		if timeout <= 0 {
			timeout = dt
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := &supervision{ctx: ctx, cancel: cancel}

	u.mu.Lock()
	if prev, ok := u.active[charge.OrderID]; ok {
		prev.cancel()
	}
	u.active[charge.OrderID] = s
	u.mu.Unlock()

	log.Printf("[charge][supervise] start order_id=%s method=%s interval=%s timeout=%s", charge.OrderID, charge.Method, pollInterval, timeout)
	go u.runSupervision(s, charge, onPaid, onFailed, pollInterval, timeout)
}

// CancelSupervision stops the polling loop, if any. Charge state is left
// untouched; reconciliation stays possible via CheckStatus.
func (u *ChargeUseCase) CancelSupervision(orderID string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if s, ok := u.active[orderID]; ok {
		s.cancel()
		delete(u.active, orderID)
		log.Printf("[charge][supervise] canceled order_id=%s", orderID)
	}
}

func (u *ChargeUseCase) release(orderID string, s *supervision) {
	s.cancel()
	u.mu.Lock()
	defer u.mu.Unlock()
	if cur, ok := u.active[orderID]; ok && cur == s {
		delete(u.active, orderID)
	}
}

func (u *ChargeUseCase) runSupervision(s *supervision, charge entities.Charge, onPaid func(entities.Charge), onFailed func(entities.Charge, string), pollInterval, timeout time.Duration) {
	defer u.release(charge.OrderID, s)

	// Interval and deadline are independent cancellation sources layered on
	// the caller's cancel.
	loopCtx, cancelDeadline := context.WithTimeout(s.ctx, timeout)
	defer cancelDeadline()

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-loopCtx.Done():
			if s.ctx.Err() != nil {
				// Caller cancellation: stop polling, leave state alone.
				return
			}
			// Deadline: fail-open for the user, fail-closed for money.
			updated, applied, err := u.applyTransition(context.Background(), charge.OrderID, entities.ChargeStatusExpired, ReasonExpired)
			if err != nil {
				log.Printf("[charge][supervise] expire write failed order_id=%s err=%v", charge.OrderID, err)
				if onFailed != nil {
					onFailed(charge, ReasonExpired)
				}
				return
			}
			if !applied && updated.Status == entities.ChargeStatusPaid {
				// A webhook confirmed payment right at the deadline.
				if onPaid != nil {
					onPaid(updated)
				}
				return
			}
			log.Printf("[charge][supervise] expired order_id=%s", charge.OrderID)
			if onFailed != nil {
				onFailed(updated, ReasonExpired)
			}
			return

		case <-ticker.C:
			status, err := u.gateway.GetChargeStatus(loopCtx, charge.GatewayChargeID)
			if err != nil {
				// Transient I/O failures are retried by the polling cadence.
				log.Printf("[charge][supervise] poll failed order_id=%s err=%v", charge.OrderID, err)
				continue
			}
			next, reason, terminal := mapGatewayStatus(status)
			if !terminal {
				continue
			}
			updated, _, err := u.applyTransition(context.Background(), charge.OrderID, next, reason)
			if err != nil {
				log.Printf("[charge][supervise] transition failed order_id=%s next=%s err=%v", charge.OrderID, next, err)
				continue
			}
			log.Printf("[charge][supervise] terminal order_id=%s status=%s", charge.OrderID, updated.Status)
			if updated.Status == entities.ChargeStatusPaid {
				if onPaid != nil {
					onPaid(updated)
				}
			} else if onFailed != nil {
				onFailed(updated, updated.FailureReason)
			}
			return
		}
	}
}

// CheckStatus is the manual "I already paid" re-check: one synchronous
// gateway fetch, then the same transition rules the poller uses.
func (u *ChargeUseCase) CheckStatus(ctx context.Context, orderID string) (entities.Charge, error) {
	return u.reconcile(ctx, orderID, "check-status")
}

// ApplyWebhook handles a gateway notification for an order. It is an
// alternate writer to the same charge state and shares the idempotent
// transition path with the poller.
func (u *ChargeUseCase) ApplyWebhook(ctx context.Context, orderID string) (entities.Charge, error) {
	return u.reconcile(ctx, orderID, "webhook")
}

func (u *ChargeUseCase) reconcile(ctx context.Context, orderID, source string) (entities.Charge, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Charge{}, ErrInvalidOrderID
	}

	charge, err := u.charges.GetByOrderID(ctx, orderID)
	if err != nil {
		return entities.Charge{}, err
	}
	if charge.OrderID == "" {
		return entities.Charge{}, ErrChargeNotFound
	}
	if charge.Status.IsTerminal() {
		log.Printf("[charge][%s] already terminal order_id=%s status=%s", source, orderID, charge.Status)
		return charge, nil
	}
	if u.gateway == nil {
		log.Printf("[charge][%s] gateway not configured order_id=%s", source, orderID)
		return entities.Charge{}, ErrGatewayNotConfigured
	}

	status, err := u.gateway.GetChargeStatus(ctx, charge.GatewayChargeID)
	if err != nil {
		log.Printf("[charge][%s] gateway fetch failed order_id=%s err=%v", source, orderID, err)
		return entities.Charge{}, err
	}
	next, reason, terminal := mapGatewayStatus(status)
	if !terminal {
		return charge, nil
	}

	updated, applied, err := u.applyTransition(ctx, orderID, next, reason)
	if err != nil {
		return entities.Charge{}, err
	}
	log.Printf("[charge][%s] reconciled order_id=%s status=%s applied=%t", source, orderID, updated.Status, applied)
	return updated, nil
}

// applyTransition is the single conditional write path shared by every
// writer. The invoice trigger fires only when this call actually moved the
// charge to PAID, which makes the money-side effect exactly-once across
// poller, webhook and manual re-check.
func (u *ChargeUseCase) applyTransition(ctx context.Context, orderID string, next entities.ChargeStatus, reason string) (entities.Charge, bool, error) {
	updated, applied, err := u.charges.TransitionStatus(ctx, orderID, next, reason)
	if err != nil {
		return entities.Charge{}, false, err
	}
	if applied && next == entities.ChargeStatusPaid && u.invoice != nil {
		go u.invoice.GenerateForOrder(context.Background(), orderID)
	}
	return updated, applied, nil
}

// mapGatewayStatus folds the gateway vocabulary into the charge state
// machine. PAID and AUTHORIZED both count as collected.
func mapGatewayStatus(status entities.GatewayStatus) (next entities.ChargeStatus, reason string, terminal bool) {
	switch status {
	case entities.GatewayStatusPaid, entities.GatewayStatusAuthorized:
		return entities.ChargeStatusPaid, "", true
	case entities.GatewayStatusDeclined:
		return entities.ChargeStatusDeclined, ReasonDeclined, true
	case entities.GatewayStatusCanceled:
		return entities.ChargeStatusCanceled, ReasonCanceled, true
	default:
		return "", "", false
	}
}

func defaultSupervision(method entities.PaymentMethod) (pollInterval, timeout time.Duration) {
	// PIX confirmation typically lags card authorization, so it polls slower
	// and waits longer.
	if method == entities.PaymentMethodPix {
		return defaultPixPollInterval, defaultPixTimeout
	}
	return defaultCardPollInterval, defaultCardTimeout
}
