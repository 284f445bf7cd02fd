package response

import "loja_checkout/internal/usecase"

type CouponResponse struct {
	Code           string `json:"code"`
	Mode           string `json:"mode"`
	AlreadyApplied bool   `json:"already_applied,omitempty"`
}

func FromCouponApplication(app usecase.CouponApplication) CouponResponse {
	return CouponResponse{
		Code:           app.Coupon.Code,
		Mode:           string(app.Coupon.Mode),
		AlreadyApplied: app.AlreadyApplied,
	}
}
