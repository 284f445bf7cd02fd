package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"loja_checkout/internal/domain/entities"
	"loja_checkout/internal/usecase/interfaces"
)

var (
	ErrInvalidCouponCode   = errors.New("invalid coupon code")
	ErrCouponNotFound      = errors.New("coupon not found")
	ErrCouponLimitExceeded = errors.New("only one coupon may be active at a time")
	ErrCouponNotActive     = errors.New("coupon not active")
)

// CouponApplication is the result of Apply. AlreadyApplied reports the
// idempotent re-apply of an equivalent coupon: success with a notice, not an
// error.

type CouponApplication struct {
	Coupon         entities.Coupon
	AlreadyApplied bool
}

// ICouponUseCase enforces the one-coupon-at-a-time rule and keeps the price
// transform reversible: removing a coupon restores pricing to the exact
// pre-apply numbers because the discount is never baked into the cart lines.

type ICouponUseCase interface {
	Apply(ctx context.Context, sessionID, code string) (CouponApplication, error)
	Remove(ctx context.Context, sessionID, code string) error
}

type CouponUseCase struct {
	store   interfaces.ISessionStore
	catalog interfaces.ICouponCatalog
}

var _ ICouponUseCase = (*CouponUseCase)(nil)

func NewCouponUseCase(store interfaces.ISessionStore, catalog interfaces.ICouponCatalog) *CouponUseCase {
	return &CouponUseCase{store: store, catalog: catalog}
}

func (u *CouponUseCase) Apply(ctx context.Context, sessionID, code string) (CouponApplication, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return CouponApplication{}, ErrInvalidSessionID
	}
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return CouponApplication{}, ErrInvalidCouponCode
	}

	log.Printf("[coupon][usecase] apply start session_id=%s code=%s", sessionID, code)
	coupon, err := u.catalog.FindByCode(ctx, code)
	if err != nil {
		log.Printf("[coupon][usecase] catalog lookup failed session_id=%s code=%s err=%v", sessionID, code, err)
		return CouponApplication{}, err
	}
	if coupon.Code == "" {
		log.Printf("[coupon][usecase] coupon not found session_id=%s code=%s", sessionID, code)
		return CouponApplication{}, ErrCouponNotFound
	}
	if !coupon.IsValid() {
		log.Printf("[coupon][usecase] catalog returned invalid coupon session_id=%s code=%s", sessionID, code)
		return CouponApplication{}, ErrCouponNotFound
	}

	active, err := u.store.GetActiveCoupon(ctx, sessionID)
	if err != nil {
		return CouponApplication{}, err
	}
	if active != nil {
		if active.Equivalent(coupon) {
			log.Printf("[coupon][usecase] already applied session_id=%s code=%s", sessionID, code)
			return CouponApplication{Coupon: *active, AlreadyApplied: true}, nil
		}
		log.Printf("[coupon][usecase] limit exceeded session_id=%s active=%s attempted=%s", sessionID, active.Code, code)
		return CouponApplication{}, ErrCouponLimitExceeded
	}

	if err := u.store.SaveActiveCoupon(ctx, sessionID, coupon); err != nil {
		return CouponApplication{}, err
	}
	if coupon.Mode == entities.CouponModePriceOverride {
		if err := u.store.SetPriceOverrideMarker(ctx, sessionID); err != nil {
			// Roll back so a half-applied coupon never leaks into checkout.
			_ = u.store.ClearActiveCoupon(ctx, sessionID)
			return CouponApplication{}, err
		}
	}
	log.Printf("[coupon][usecase] apply success session_id=%s code=%s mode=%s", sessionID, code, coupon.Mode)
	return CouponApplication{Coupon: coupon}, nil
}

func (u *CouponUseCase) Remove(ctx context.Context, sessionID, code string) error {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return ErrInvalidSessionID
	}
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return ErrInvalidCouponCode
	}

	active, err := u.store.GetActiveCoupon(ctx, sessionID)
	if err != nil {
		return err
	}
	if active == nil || active.Code != code {
		return ErrCouponNotActive
	}

	if err := u.store.ClearActiveCoupon(ctx, sessionID); err != nil {
		return err
	}
	if err := u.store.ClearPriceOverrideMarker(ctx, sessionID); err != nil {
		return err
	}
	log.Printf("[coupon][usecase] remove success session_id=%s code=%s", sessionID, code)
	return nil
}
