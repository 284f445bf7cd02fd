package erp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"loja_checkout/internal/domain/entities"
	"loja_checkout/internal/usecase/interfaces"
)

// InvoiceClient posts paid orders to the ERP's invoice endpoint. A 401 is
// surfaced as interfaces.ErrInvoiceUnauthorized so the caller can refresh the
// token and retry.

type InvoiceClient struct {
	invoiceURL string
	httpClient *http.Client
}

var _ interfaces.IInvoiceClient = (*InvoiceClient)(nil)

func NewInvoiceClient(invoiceURL string) *InvoiceClient {
	return &InvoiceClient{
		invoiceURL: invoiceURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

type invoiceLine struct {
	ProductID      string `json:"product_id"`
	Name           string `json:"name"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	Quantity       int    `json:"quantity"`
}

type invoiceRequest struct {
	OrderID          string        `json:"order_id"`
	CustomerName     string        `json:"customer_name"`
	CustomerCPF      string        `json:"customer_cpf"`
	Lines            []invoiceLine `json:"lines"`
	ShippingFeeCents int64         `json:"shipping_fee_cents"`
	TotalCents       int64         `json:"total_cents"`
}

func (c *InvoiceClient) GenerateInvoice(ctx context.Context, accessToken string, order entities.Order) error {
	payload := invoiceRequest{
		OrderID:          order.ID,
		CustomerName:     order.Customer.FirstName + " " + order.Customer.LastName,
		CustomerCPF:      order.Customer.CPF,
		ShippingFeeCents: order.ShippingFeeCents,
		TotalCents:       order.TotalAtCreationCents,
	}
	for _, line := range order.Lines {
		payload.Lines = append(payload.Lines, invoiceLine{
			ProductID:      line.ProductID,
			Name:           line.Name,
			UnitPriceCents: line.UnitPriceCents,
			Quantity:       line.Quantity,
		})
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.invoiceURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("[erp][invoice] request failed order_id=%s err=%v", order.ID, err)
		return err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return interfaces.ErrInvoiceUnauthorized
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	default:
		return fmt.Errorf("erp invoice endpoint returned status %d", resp.StatusCode)
	}
}
