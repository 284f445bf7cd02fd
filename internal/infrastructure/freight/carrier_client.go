package freight

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

// CarrierClient fetches shipping services and prices for a postal code from
// the carrier aggregation API.
//
// Wire format: GET {base}/quotes?cep={cep} ->
// [{"service":"SEDEX","price_cents":2390,"delivery_days":2}, ...]

type CarrierClient struct {
	baseURL    string
	httpClient *http.Client
}

var _ interfaces.IFreightService = (*CarrierClient)(nil)

func NewCarrierClient(baseURL string) *CarrierClient {
	return &CarrierClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

type quoteResponse struct {
	Service      string `json:"service"`
	PriceCents   int64  `json:"price_cents"`
	DeliveryDays int    `json:"delivery_days"`
}

func (c *CarrierClient) Quote(ctx context.Context, postalCode string) ([]entities.FreightQuote, error) {
	url := fmt.Sprintf("%s/quotes?cep=%s", c.baseURL, postalCode)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("[freight][client] quote failed cep=%s err=%v", postalCode, err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("carrier returned status %d", resp.StatusCode)
	}

	var body []quoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}

	quotes := make([]entities.FreightQuote, 0, len(body))
	for i, q := range body {
		quotes = append(quotes, entities.FreightQuote{
			ServiceName:  q.Service,
			PriceCents:   q.PriceCents,
			DeliveryDays: q.DeliveryDays,
			Index:        i,
		})
	}
	log.Printf("[freight][client] quote success cep=%s services=%d", postalCode, len(quotes))
	return quotes, nil
}
