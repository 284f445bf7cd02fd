package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/mock/gomock"

	"loja_checkout/internal/adapter/cache"
	"loja_checkout/internal/domain/entities"
	"loja_checkout/internal/usecase/interfaces"
	"loja_checkout/internal/usecase/interfaces/mocks"
)

func TestCouponUseCaseApply(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockISessionStore(ctrl)
	catalog := mocks.NewMockICouponCatalog(ctrl)
	uc := NewCouponUseCase(store, catalog)

	coupon := entities.Coupon{Code: "DEZ10", Multiplier: 0.9, Mode: entities.CouponModePercentage}
	catalog.EXPECT().FindByCode(gomock.Any(), "DEZ10").Return(coupon, nil)
	store.EXPECT().GetActiveCoupon(gomock.Any(), "sess-1").Return(nil, nil)
	store.EXPECT().SaveActiveCoupon(gomock.Any(), "sess-1", coupon).Return(nil)

	app, err := uc.Apply(context.Background(), "sess-1", "dez10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if app.AlreadyApplied {
		t.Error("expected fresh apply, got AlreadyApplied")
	}
	if app.Coupon.Code != "DEZ10" {
		t.Errorf("unexpected coupon: %+v", app.Coupon)
	}
}

func TestCouponUseCaseApplyPriceOverrideSetsMarker(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockISessionStore(ctrl)
	catalog := mocks.NewMockICouponCatalog(ctrl)
	uc := NewCouponUseCase(store, catalog)

	coupon := entities.Coupon{Code: "VIP50", Multiplier: 0.5, Mode: entities.CouponModePriceOverride}
	catalog.EXPECT().FindByCode(gomock.Any(), "VIP50").Return(coupon, nil)
	store.EXPECT().GetActiveCoupon(gomock.Any(), "sess-1").Return(nil, nil)
	store.EXPECT().SaveActiveCoupon(gomock.Any(), "sess-1", coupon).Return(nil)
	store.EXPECT().SetPriceOverrideMarker(gomock.Any(), "sess-1").Return(nil)

	if _, err := uc.Apply(context.Background(), "sess-1", "VIP50"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCouponUseCaseApplyMarkerFailureRollsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockISessionStore(ctrl)
	catalog := mocks.NewMockICouponCatalog(ctrl)
	uc := NewCouponUseCase(store, catalog)

	coupon := entities.Coupon{Code: "VIP50", Multiplier: 0.5, Mode: entities.CouponModePriceOverride}
	boom := errors.New("redis down")
	catalog.EXPECT().FindByCode(gomock.Any(), "VIP50").Return(coupon, nil)
	store.EXPECT().GetActiveCoupon(gomock.Any(), "sess-1").Return(nil, nil)
	store.EXPECT().SaveActiveCoupon(gomock.Any(), "sess-1", coupon).Return(nil)
	store.EXPECT().SetPriceOverrideMarker(gomock.Any(), "sess-1").Return(boom)
	store.EXPECT().ClearActiveCoupon(gomock.Any(), "sess-1").Return(nil)

	if _, err := uc.Apply(context.Background(), "sess-1", "VIP50"); !errors.Is(err, boom) {
		t.Fatalf("expected marker error to surface, got %v", err)
	}
}

func TestCouponUseCaseApplyNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockISessionStore(ctrl)
	catalog := mocks.NewMockICouponCatalog(ctrl)
	uc := NewCouponUseCase(store, catalog)

	catalog.EXPECT().FindByCode(gomock.Any(), "NADA").Return(entities.Coupon{}, nil)
	if _, err := uc.Apply(context.Background(), "sess-1", "NADA"); !errors.Is(err, ErrCouponNotFound) {
		t.Errorf("expected ErrCouponNotFound, got %v", err)
	}
}

func TestCouponUseCaseApplyEquivalentIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockISessionStore(ctrl)
	catalog := mocks.NewMockICouponCatalog(ctrl)
	uc := NewCouponUseCase(store, catalog)

	coupon := entities.Coupon{Code: "DEZ10", Multiplier: 0.9, Mode: entities.CouponModePercentage}
	catalog.EXPECT().FindByCode(gomock.Any(), "DEZ10").Return(coupon, nil)
	store.EXPECT().GetActiveCoupon(gomock.Any(), "sess-1").Return(&coupon, nil)

	app, err := uc.Apply(context.Background(), "sess-1", "DEZ10")
	if err != nil {
		t.Fatalf("expected idempotent success, got %v", err)
	}
	if !app.AlreadyApplied {
		t.Error("expected AlreadyApplied on equivalent re-apply")
	}
}

func TestCouponUseCaseApplySecondCouponRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockISessionStore(ctrl)
	catalog := mocks.NewMockICouponCatalog(ctrl)
	uc := NewCouponUseCase(store, catalog)

	active := entities.Coupon{Code: "DEZ10", Multiplier: 0.9, Mode: entities.CouponModePercentage}
	other := entities.Coupon{Code: "VINTE", Multiplier: 0.8, Mode: entities.CouponModePercentage}
	catalog.EXPECT().FindByCode(gomock.Any(), "VINTE").Return(other, nil)
	store.EXPECT().GetActiveCoupon(gomock.Any(), "sess-1").Return(&active, nil)

	if _, err := uc.Apply(context.Background(), "sess-1", "VINTE"); !errors.Is(err, ErrCouponLimitExceeded) {
		t.Errorf("expected ErrCouponLimitExceeded, got %v", err)
	}
}

func TestCouponUseCaseRemove(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockISessionStore(ctrl)
	catalog := mocks.NewMockICouponCatalog(ctrl)
	uc := NewCouponUseCase(store, catalog)

	active := entities.Coupon{Code: "VIP50", Multiplier: 0.5, Mode: entities.CouponModePriceOverride}
	store.EXPECT().GetActiveCoupon(gomock.Any(), "sess-1").Return(&active, nil)
	store.EXPECT().ClearActiveCoupon(gomock.Any(), "sess-1").Return(nil)
	store.EXPECT().ClearPriceOverrideMarker(gomock.Any(), "sess-1").Return(nil)

	if err := uc.Remove(context.Background(), "sess-1", "vip50"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCouponUseCaseRemoveNotActive(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockISessionStore(ctrl)
	catalog := mocks.NewMockICouponCatalog(ctrl)
	uc := NewCouponUseCase(store, catalog)

	store.EXPECT().GetActiveCoupon(gomock.Any(), "sess-1").Return(nil, nil)
	if err := uc.Remove(context.Background(), "sess-1", "DEZ10"); !errors.Is(err, ErrCouponNotActive) {
		t.Errorf("expected ErrCouponNotActive, got %v", err)
	}
}

// The apply/remove round-trip runs against a real Redis-backed session store
// so pricing is recomputed from stored state, not stubbed: removing a coupon
// must restore the exact PricingResult observed before it was applied.
func TestCouponRoundTripRestoresPricing(t *testing.T) {
	newSession := func(t *testing.T) (*CartUseCase, interfaces.ISessionStore) {
		t.Helper()
		mr := miniredis.RunT(t)
		client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		t.Cleanup(func() { _ = client.Close() })
		store := cache.NewRedisSessionStore(client)

		cartUC := NewCartUseCase(store, 0)
		if _, err := cartUC.AddItem(context.Background(), "sess-1", "A", "Produto A", 1000, 2); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		sel := entities.FreightSelection{
			PostalCode:    "01310100",
			Quotes:        []entities.FreightQuote{{ServiceName: "PAC", PriceCents: 500}},
			SelectedIndex: 0,
		}
		if err := store.SaveFreightSelection(context.Background(), "sess-1", sel); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return cartUC, store
	}

	cases := []struct {
		name   string
		coupon entities.Coupon
	}{
		{"percentage", entities.Coupon{Code: "DEZ10", Multiplier: 0.9, Mode: entities.CouponModePercentage}},
		{"price override", entities.Coupon{Code: "VIP", Multiplier: 1, SubtractCents: 350, Mode: entities.CouponModePriceOverride}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			catalog := mocks.NewMockICouponCatalog(ctrl)
			cartUC, store := newSession(t)
			couponUC := NewCouponUseCase(store, catalog)

			before, err := cartUC.GetPricing(context.Background(), "sess-1")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if before.TotalCents != 2500 {
				t.Fatalf("expected baseline total 2500, got %d", before.TotalCents)
			}

			catalog.EXPECT().FindByCode(gomock.Any(), tc.coupon.Code).Return(tc.coupon, nil)
			if _, err := couponUC.Apply(context.Background(), "sess-1", tc.coupon.Code); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			during, err := cartUC.GetPricing(context.Background(), "sess-1")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if during == before {
				t.Fatal("expected the coupon to change pricing")
			}

			if err := couponUC.Remove(context.Background(), "sess-1", tc.coupon.Code); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			after, err := cartUC.GetPricing(context.Background(), "sess-1")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if after != before {
				t.Errorf("pricing not restored: before %+v after %+v", before, after)
			}
			marker, err := store.ConsumePriceOverrideMarker(context.Background(), "sess-1")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if marker {
				t.Error("expected override marker cleared after removal")
			}
		})
	}
}
