package coupons

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"loja_checkout/internal/domain/entities"
	"loja_checkout/internal/usecase/interfaces"
)

// CatalogClient looks coupon codes up in the remote catalog.
//
// Wire format: GET {base}/coupons/{code} ->
// {"code":"DEZ10","multiplier":0.9,"subtract_cents":0,"mode":"percentage"};
// 404 means no such coupon (reported as a zero-value Coupon, not an error).

type CatalogClient struct {
	baseURL    string
	httpClient *http.Client
}

var _ interfaces.ICouponCatalog = (*CatalogClient)(nil)

func NewCatalogClient(baseURL string) *CatalogClient {
	return &CatalogClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type couponResponse struct {
	Code          string  `json:"code"`
	Multiplier    float64 `json:"multiplier"`
	SubtractCents int64   `json:"subtract_cents"`
	Mode          string  `json:"mode"`
}

func (c *CatalogClient) FindByCode(ctx context.Context, code string) (entities.Coupon, error) {
	url := fmt.Sprintf("%s/coupons/%s", c.baseURL, code)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return entities.Coupon{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("[coupon][client] lookup failed code=%s err=%v", code, err)
		return entities.Coupon{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return entities.Coupon{}, nil
	}
	if resp.StatusCode != http.StatusOK {
		return entities.Coupon{}, fmt.Errorf("coupon catalog returned status %d", resp.StatusCode)
	}

	var body couponResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return entities.Coupon{}, err
	}

	mode := entities.CouponMode(body.Mode)
	if mode != entities.CouponModePriceOverride {
		mode = entities.CouponModePercentage
	}
	return entities.Coupon{
		Code:          body.Code,
		Multiplier:    body.Multiplier,
		SubtractCents: body.SubtractCents,
		Mode:          mode,
	}, nil
}
