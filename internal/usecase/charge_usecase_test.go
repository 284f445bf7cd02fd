package usecase

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"loja_checkout/internal/domain/entities"
	"loja_checkout/internal/usecase/interfaces"
	"loja_checkout/internal/usecase/interfaces/mocks"
)

type invoiceTriggerStub struct {
	fired chan string
}

func newInvoiceTriggerStub() *invoiceTriggerStub {
	return &invoiceTriggerStub{fired: make(chan string, 4)}
}

func (s *invoiceTriggerStub) GenerateForOrder(_ context.Context, orderID string) {
	s.fired <- orderID
}

func paidOrder() entities.Order {
	return entities.Order{
		ID:                   "order-1",
		Customer:             entities.Customer{Email: "maria@example.com", CPF: "52998224725"},
		TotalAtCreationCents: 12439,
	}
}

func TestCreateChargeCard(t *testing.T) {
	ctrl := gomock.NewController(t)
	charges := mocks.NewMockIChargeRepository(ctrl)
	orders := mocks.NewMockIOrderRepository(ctrl)
	gateway := mocks.NewMockIPaymentGateway(ctrl)
	uc := NewChargeUseCase(charges, orders, gateway, nil)

	orders.EXPECT().GetByID(gomock.Any(), "order-1").Return(paidOrder(), nil)
	charges.EXPECT().GetByOrderID(gomock.Any(), "order-1").Return(entities.Charge{}, nil)
	charges.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, c entities.Charge) (entities.Charge, error) {
			if c.Status != entities.ChargeStatusCreated {
				t.Errorf("expected initial status CREATED, got %s", c.Status)
			}
			if c.AmountCents != 12439 {
				t.Errorf("expected amount from order total, got %d", c.AmountCents)
			}
			return c, nil
		})
	gateway.EXPECT().CreateCharge(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req entities.GatewayChargeRequest) (string, entities.GatewayStatus, error) {
			if req.CardToken != "tok-1" || req.Installments != 3 {
				t.Errorf("card details not forwarded: %+v", req)
			}
			return "gw-1", entities.GatewayStatusPending, nil
		})
	charges.EXPECT().AttachGatewayCharge(gomock.Any(), "order-1", "gw-1").Return(
		entities.Charge{OrderID: "order-1", GatewayChargeID: "gw-1", Status: entities.ChargeStatusCreated}, nil)
	charges.EXPECT().TransitionStatus(gomock.Any(), "order-1", entities.ChargeStatusPending, "").Return(
		entities.Charge{OrderID: "order-1", GatewayChargeID: "gw-1", Status: entities.ChargeStatusPending}, true, nil)

	charge, err := uc.CreateCharge(context.Background(), "order-1", entities.PaymentMethodCard, &CardDetails{Token: "tok-1", Installments: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if charge.Status != entities.ChargeStatusPending {
		t.Errorf("expected PENDING, got %s", charge.Status)
	}
}

func TestCreateChargeValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := NewChargeUseCase(mocks.NewMockIChargeRepository(ctrl), mocks.NewMockIOrderRepository(ctrl), mocks.NewMockIPaymentGateway(ctrl), nil)

	if _, err := uc.CreateCharge(context.Background(), "", entities.PaymentMethodPix, nil); !errors.Is(err, ErrInvalidOrderID) {
		t.Errorf("expected ErrInvalidOrderID, got %v", err)
	}
	if _, err := uc.CreateCharge(context.Background(), "order-1", "boleto", nil); !errors.Is(err, ErrInvalidPaymentMethod) {
		t.Errorf("expected ErrInvalidPaymentMethod, got %v", err)
	}
	if _, err := uc.CreateCharge(context.Background(), "order-1", entities.PaymentMethodCard, nil); !errors.Is(err, ErrCardDetailsRequired) {
		t.Errorf("expected ErrCardDetailsRequired, got %v", err)
	}
	if _, err := uc.CreateCharge(context.Background(), "order-1", entities.PaymentMethodCard, &CardDetails{Token: "  "}); !errors.Is(err, ErrCardDetailsRequired) {
		t.Errorf("expected ErrCardDetailsRequired for blank token, got %v", err)
	}
}

func TestCreateChargeGatewayNotConfigured(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := NewChargeUseCase(mocks.NewMockIChargeRepository(ctrl), mocks.NewMockIOrderRepository(ctrl), nil, nil)

	if _, err := uc.CreateCharge(context.Background(), "order-1", entities.PaymentMethodPix, nil); !errors.Is(err, ErrGatewayNotConfigured) {
		t.Fatalf("expected ErrGatewayNotConfigured, got %v", err)
	}
}

func TestCheckStatusGatewayNotConfigured(t *testing.T) {
	ctrl := gomock.NewController(t)
	charges := mocks.NewMockIChargeRepository(ctrl)
	uc := NewChargeUseCase(charges, mocks.NewMockIOrderRepository(ctrl), nil, nil)

	charges.EXPECT().GetByOrderID(gomock.Any(), "order-1").Return(
		entities.Charge{OrderID: "order-1", GatewayChargeID: "gw-1", Status: entities.ChargeStatusPending}, nil)

	if _, err := uc.CheckStatus(context.Background(), "order-1"); !errors.Is(err, ErrGatewayNotConfigured) {
		t.Fatalf("expected ErrGatewayNotConfigured, got %v", err)
	}
}

func TestCreateChargeAlreadyPaid(t *testing.T) {
	ctrl := gomock.NewController(t)
	charges := mocks.NewMockIChargeRepository(ctrl)
	orders := mocks.NewMockIOrderRepository(ctrl)
	uc := NewChargeUseCase(charges, orders, mocks.NewMockIPaymentGateway(ctrl), nil)

	orders.EXPECT().GetByID(gomock.Any(), "order-1").Return(paidOrder(), nil)
	charges.EXPECT().GetByOrderID(gomock.Any(), "order-1").Return(
		entities.Charge{OrderID: "order-1", Status: entities.ChargeStatusPaid}, nil)

	if _, err := uc.CreateCharge(context.Background(), "order-1", entities.PaymentMethodPix, nil); !errors.Is(err, ErrChargeAlreadyPaid) {
		t.Errorf("expected ErrChargeAlreadyPaid, got %v", err)
	}
}

func TestCreateChargeGatewayRejection(t *testing.T) {
	ctrl := gomock.NewController(t)
	charges := mocks.NewMockIChargeRepository(ctrl)
	orders := mocks.NewMockIOrderRepository(ctrl)
	gateway := mocks.NewMockIPaymentGateway(ctrl)
	uc := NewChargeUseCase(charges, orders, gateway, nil)

	orders.EXPECT().GetByID(gomock.Any(), "order-1").Return(paidOrder(), nil)
	charges.EXPECT().GetByOrderID(gomock.Any(), "order-1").Return(entities.Charge{}, nil)
	charges.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, c entities.Charge) (entities.Charge, error) { return c, nil })
	gateway.EXPECT().CreateCharge(gomock.Any(), gomock.Any()).Return("", entities.GatewayStatus(""), interfaces.ErrChargeRejected)
	charges.EXPECT().TransitionStatus(gomock.Any(), "order-1", entities.ChargeStatusDeclined, ReasonDeclined).Return(
		entities.Charge{OrderID: "order-1", Status: entities.ChargeStatusDeclined, FailureReason: ReasonDeclined}, true, nil)

	if _, err := uc.CreateCharge(context.Background(), "order-1", entities.PaymentMethodCard, &CardDetails{Token: "bad"}); !errors.Is(err, ErrPaymentRejected) {
		t.Errorf("expected ErrPaymentRejected, got %v", err)
	}
}

func TestCreateChargeSynchronousApprovalFiresInvoice(t *testing.T) {
	ctrl := gomock.NewController(t)
	charges := mocks.NewMockIChargeRepository(ctrl)
	orders := mocks.NewMockIOrderRepository(ctrl)
	gateway := mocks.NewMockIPaymentGateway(ctrl)
	trigger := newInvoiceTriggerStub()
	uc := NewChargeUseCase(charges, orders, gateway, trigger)

	orders.EXPECT().GetByID(gomock.Any(), "order-1").Return(paidOrder(), nil)
	charges.EXPECT().GetByOrderID(gomock.Any(), "order-1").Return(entities.Charge{}, nil)
	charges.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, c entities.Charge) (entities.Charge, error) { return c, nil })
	gateway.EXPECT().CreateCharge(gomock.Any(), gomock.Any()).Return("gw-1", entities.GatewayStatusPaid, nil)
	charges.EXPECT().AttachGatewayCharge(gomock.Any(), "order-1", "gw-1").Return(
		entities.Charge{OrderID: "order-1", GatewayChargeID: "gw-1"}, nil)
	charges.EXPECT().TransitionStatus(gomock.Any(), "order-1", entities.ChargeStatusPending, "").Return(
		entities.Charge{OrderID: "order-1", Status: entities.ChargeStatusPending}, true, nil)
	charges.EXPECT().TransitionStatus(gomock.Any(), "order-1", entities.ChargeStatusPaid, "").Return(
		entities.Charge{OrderID: "order-1", Status: entities.ChargeStatusPaid}, true, nil)

	charge, err := uc.CreateCharge(context.Background(), "order-1", entities.PaymentMethodCard, &CardDetails{Token: "tok-1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if charge.Status != entities.ChargeStatusPaid {
		t.Errorf("expected PAID after synchronous approval, got %s", charge.Status)
	}

	select {
	case orderID := <-trigger.fired:
		if orderID != "order-1" {
			t.Errorf("invoice fired for wrong order %q", orderID)
		}
	case <-time.After(time.Second):
		t.Error("expected invoice trigger to fire for paid charge")
	}
}

func TestSupervisePollsUntilPaid(t *testing.T) {
	ctrl := gomock.NewController(t)
	charges := mocks.NewMockIChargeRepository(ctrl)
	gateway := mocks.NewMockIPaymentGateway(ctrl)
	uc := NewChargeUseCase(charges, mocks.NewMockIOrderRepository(ctrl), gateway, nil)

	var polls atomic.Int32
	gateway.EXPECT().GetChargeStatus(gomock.Any(), "gw-1").DoAndReturn(
		func(context.Context, string) (entities.GatewayStatus, error) {
			if polls.Add(1) < 3 {
				return entities.GatewayStatusPending, nil
			}
			return entities.GatewayStatusPaid, nil
		}).AnyTimes()
	charges.EXPECT().TransitionStatus(gomock.Any(), "order-1", entities.ChargeStatusPaid, "").Return(
		entities.Charge{OrderID: "order-1", Status: entities.ChargeStatusPaid}, true, nil)

	paid := make(chan entities.Charge, 1)
	charge := entities.Charge{OrderID: "order-1", GatewayChargeID: "gw-1", Method: entities.PaymentMethodCard, Status: entities.ChargeStatusPending}
	uc.Supervise(charge,
		func(c entities.Charge) { paid <- c },
		func(c entities.Charge, reason string) { t.Errorf("unexpected failure callback: %s", reason) },
		5*time.Millisecond, time.Second)

	select {
	case c := <-paid:
		if c.Status != entities.ChargeStatusPaid {
			t.Errorf("expected PAID, got %s", c.Status)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("supervision never reported payment")
	}
}

func TestSuperviseDeclinedOnFirstPoll(t *testing.T) {
	ctrl := gomock.NewController(t)
	charges := mocks.NewMockIChargeRepository(ctrl)
	gateway := mocks.NewMockIPaymentGateway(ctrl)
	uc := NewChargeUseCase(charges, mocks.NewMockIOrderRepository(ctrl), gateway, nil)

	gateway.EXPECT().GetChargeStatus(gomock.Any(), "gw-1").Return(entities.GatewayStatusDeclined, nil)
	charges.EXPECT().TransitionStatus(gomock.Any(), "order-1", entities.ChargeStatusDeclined, ReasonDeclined).Return(
		entities.Charge{OrderID: "order-1", Status: entities.ChargeStatusDeclined, FailureReason: ReasonDeclined}, true, nil)

	failed := make(chan string, 1)
	charge := entities.Charge{OrderID: "order-1", GatewayChargeID: "gw-1", Method: entities.PaymentMethodCard, Status: entities.ChargeStatusPending}
	uc.Supervise(charge,
		func(entities.Charge) { t.Error("unexpected paid callback") },
		func(_ entities.Charge, reason string) { failed <- reason },
		5*time.Millisecond, time.Second)

	select {
	case reason := <-failed:
		if reason != ReasonDeclined {
			t.Errorf("expected decline reason, got %q", reason)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("supervision never reported the decline")
	}

	// The loop stops after the terminal state: the single GetChargeStatus
	// expectation above would fail the test if polling continued.
	time.Sleep(30 * time.Millisecond)
}

func TestSuperviseTimeoutExpires(t *testing.T) {
	ctrl := gomock.NewController(t)
	charges := mocks.NewMockIChargeRepository(ctrl)
	gateway := mocks.NewMockIPaymentGateway(ctrl)
	uc := NewChargeUseCase(charges, mocks.NewMockIOrderRepository(ctrl), gateway, nil)

	gateway.EXPECT().GetChargeStatus(gomock.Any(), "gw-1").Return(entities.GatewayStatusPending, nil).AnyTimes()
	charges.EXPECT().TransitionStatus(gomock.Any(), "order-1", entities.ChargeStatusExpired, ReasonExpired).Return(
		entities.Charge{OrderID: "order-1", Status: entities.ChargeStatusExpired, FailureReason: ReasonExpired}, true, nil)

	failed := make(chan string, 1)
	charge := entities.Charge{OrderID: "order-1", GatewayChargeID: "gw-1", Method: entities.PaymentMethodCard, Status: entities.ChargeStatusPending}
	uc.Supervise(charge,
		func(entities.Charge) { t.Error("unexpected paid callback") },
		func(_ entities.Charge, reason string) { failed <- reason },
		5*time.Millisecond, 40*time.Millisecond)

	select {
	case reason := <-failed:
		if reason != ReasonExpired {
			t.Errorf("expected expiry reason, got %q", reason)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("supervision never expired")
	}
}

func TestSuperviseTimeoutLosesToWebhookPaid(t *testing.T) {
	ctrl := gomock.NewController(t)
	charges := mocks.NewMockIChargeRepository(ctrl)
	gateway := mocks.NewMockIPaymentGateway(ctrl)
	uc := NewChargeUseCase(charges, mocks.NewMockIOrderRepository(ctrl), gateway, nil)

	gateway.EXPECT().GetChargeStatus(gomock.Any(), "gw-1").Return(entities.GatewayStatusPending, nil).AnyTimes()
	// The expiry write loses the race: the stored charge is already PAID.
	charges.EXPECT().TransitionStatus(gomock.Any(), "order-1", entities.ChargeStatusExpired, ReasonExpired).Return(
		entities.Charge{OrderID: "order-1", Status: entities.ChargeStatusPaid}, false, nil)

	paid := make(chan entities.Charge, 1)
	charge := entities.Charge{OrderID: "order-1", GatewayChargeID: "gw-1", Method: entities.PaymentMethodCard, Status: entities.ChargeStatusPending}
	uc.Supervise(charge,
		func(c entities.Charge) { paid <- c },
		func(_ entities.Charge, reason string) { t.Errorf("unexpected failure callback: %s", reason) },
		5*time.Millisecond, 40*time.Millisecond)

	select {
	case c := <-paid:
		if c.Status != entities.ChargeStatusPaid {
			t.Errorf("expected PAID from webhook race, got %s", c.Status)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("supervision never reported the webhook payment")
	}
}

func TestCancelSupervisionLeavesStateAlone(t *testing.T) {
	ctrl := gomock.NewController(t)
	charges := mocks.NewMockIChargeRepository(ctrl)
	gateway := mocks.NewMockIPaymentGateway(ctrl)
	uc := NewChargeUseCase(charges, mocks.NewMockIOrderRepository(ctrl), gateway, nil)

	gateway.EXPECT().GetChargeStatus(gomock.Any(), "gw-1").Return(entities.GatewayStatusPending, nil).AnyTimes()

	charge := entities.Charge{OrderID: "order-1", GatewayChargeID: "gw-1", Method: entities.PaymentMethodPix, Status: entities.ChargeStatusPending}
	uc.Supervise(charge,
		func(entities.Charge) { t.Error("unexpected paid callback after cancel") },
		func(entities.Charge, string) { t.Error("unexpected failure callback after cancel") },
		5*time.Millisecond, time.Hour)

	time.Sleep(20 * time.Millisecond)
	uc.CancelSupervision("order-1")
	// No TransitionStatus expectation: a canceled supervision must not write.
	time.Sleep(30 * time.Millisecond)
}

func TestCheckStatusTerminalShortCircuits(t *testing.T) {
	ctrl := gomock.NewController(t)
	charges := mocks.NewMockIChargeRepository(ctrl)
	gateway := mocks.NewMockIPaymentGateway(ctrl)
	uc := NewChargeUseCase(charges, mocks.NewMockIOrderRepository(ctrl), gateway, nil)

	charges.EXPECT().GetByOrderID(gomock.Any(), "order-1").Return(
		entities.Charge{OrderID: "order-1", Status: entities.ChargeStatusPaid}, nil)

	charge, err := uc.CheckStatus(context.Background(), "order-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if charge.Status != entities.ChargeStatusPaid {
		t.Errorf("expected stored PAID, got %s", charge.Status)
	}
}

func TestCheckStatusReconcilesPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	charges := mocks.NewMockIChargeRepository(ctrl)
	gateway := mocks.NewMockIPaymentGateway(ctrl)
	uc := NewChargeUseCase(charges, mocks.NewMockIOrderRepository(ctrl), gateway, nil)

	charges.EXPECT().GetByOrderID(gomock.Any(), "order-1").Return(
		entities.Charge{OrderID: "order-1", GatewayChargeID: "gw-1", Status: entities.ChargeStatusPending}, nil)
	gateway.EXPECT().GetChargeStatus(gomock.Any(), "gw-1").Return(entities.GatewayStatusPaid, nil)
	charges.EXPECT().TransitionStatus(gomock.Any(), "order-1", entities.ChargeStatusPaid, "").Return(
		entities.Charge{OrderID: "order-1", Status: entities.ChargeStatusPaid}, true, nil)

	charge, err := uc.CheckStatus(context.Background(), "order-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if charge.Status != entities.ChargeStatusPaid {
		t.Errorf("expected PAID after reconcile, got %s", charge.Status)
	}
}

func TestApplyWebhookDeclined(t *testing.T) {
	ctrl := gomock.NewController(t)
	charges := mocks.NewMockIChargeRepository(ctrl)
	gateway := mocks.NewMockIPaymentGateway(ctrl)
	uc := NewChargeUseCase(charges, mocks.NewMockIOrderRepository(ctrl), gateway, nil)

	charges.EXPECT().GetByOrderID(gomock.Any(), "order-1").Return(
		entities.Charge{OrderID: "order-1", GatewayChargeID: "gw-1", Status: entities.ChargeStatusPending}, nil)
	gateway.EXPECT().GetChargeStatus(gomock.Any(), "gw-1").Return(entities.GatewayStatusDeclined, nil)
	charges.EXPECT().TransitionStatus(gomock.Any(), "order-1", entities.ChargeStatusDeclined, ReasonDeclined).Return(
		entities.Charge{OrderID: "order-1", Status: entities.ChargeStatusDeclined, FailureReason: ReasonDeclined}, true, nil)

	charge, err := uc.ApplyWebhook(context.Background(), "order-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if charge.Status != entities.ChargeStatusDeclined {
		t.Errorf("expected DECLINED, got %s", charge.Status)
	}
}

func TestApplyWebhookUnknownCharge(t *testing.T) {
	ctrl := gomock.NewController(t)
	charges := mocks.NewMockIChargeRepository(ctrl)
	uc := NewChargeUseCase(charges, mocks.NewMockIOrderRepository(ctrl), mocks.NewMockIPaymentGateway(ctrl), nil)

	charges.EXPECT().GetByOrderID(gomock.Any(), "order-9").Return(entities.Charge{}, nil)
	if _, err := uc.ApplyWebhook(context.Background(), "order-9"); !errors.Is(err, ErrChargeNotFound) {
		t.Errorf("expected ErrChargeNotFound, got %v", err)
	}
}

func TestMapGatewayStatus(t *testing.T) {
	cases := []struct {
		in       entities.GatewayStatus
		next     entities.ChargeStatus
		terminal bool
	}{
		{entities.GatewayStatusPaid, entities.ChargeStatusPaid, true},
		{entities.GatewayStatusAuthorized, entities.ChargeStatusPaid, true},
		{entities.GatewayStatusDeclined, entities.ChargeStatusDeclined, true},
		{entities.GatewayStatusCanceled, entities.ChargeStatusCanceled, true},
		{entities.GatewayStatusPending, "", false},
	}
	for _, tc := range cases {
		next, _, terminal := mapGatewayStatus(tc.in)
		if next != tc.next || terminal != tc.terminal {
			t.Errorf("mapGatewayStatus(%s) = (%s, %t), want (%s, %t)", tc.in, next, terminal, tc.next, tc.terminal)
		}
	}
}
