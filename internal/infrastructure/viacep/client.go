package viacep

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

const defaultBaseURL = "https://viacep.com.br/ws"

// Client consumes the ViaCEP lookup as a black box: GET /{cep}/json returns
// address fields, or {"erro": true} for an unknown CEP.

type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ interfaces.IPostalLookup = (*Client)(nil)

func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type lookupResponse struct {
	Logradouro string `json:"logradouro"`
	Bairro     string `json:"bairro"`
	Localidade string `json:"localidade"`
	UF         string `json:"uf"`
	Erro       bool   `json:"erro"`
}

func (c *Client) Lookup(ctx context.Context, cep string) (entities.Address, error) {
	url := fmt.Sprintf("%s/%s/json", c.baseURL, cep)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return entities.Address{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("[viacep][client] lookup failed cep=%s err=%v", cep, err)
		return entities.Address{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return entities.Address{}, fmt.Errorf("viacep returned status %d", resp.StatusCode)
	}

	var body lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return entities.Address{}, err
	}
	if body.Erro {
		// Unknown CEP is not a transport failure; the caller gets an empty
		// address to fill by hand.
		return entities.Address{}, nil
	}

	return entities.Address{
		PostalCode: cep,
		Street:     body.Logradouro,
		District:   body.Bairro,
		City:       body.Localidade,
		State:      body.UF,
	}, nil
}
