package response

import "loja_checkout/internal/domain/entities"

type FreightQuoteResponse struct {
	Index        int    `json:"index"`
	ServiceName  string `json:"service_name"`
	PriceCents   int64  `json:"price_cents"`
	DeliveryDays int    `json:"delivery_days"`
}

func FromFreightQuotes(quotes []entities.FreightQuote) []FreightQuoteResponse {
	out := make([]FreightQuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, FreightQuoteResponse{
			Index:        q.Index,
			ServiceName:  q.ServiceName,
			PriceCents:   q.PriceCents,
			DeliveryDays: q.DeliveryDays,
		})
	}
	return out
}

func FromFreightQuote(q entities.FreightQuote) FreightQuoteResponse {
	return FreightQuoteResponse{
		Index:        q.Index,
		ServiceName:  q.ServiceName,
		PriceCents:   q.PriceCents,
		DeliveryDays: q.DeliveryDays,
	}
}

// AddressResponse is the ViaCEP-backed address prefill. Zero fields mean the
// CEP is unknown to the lookup service.

type AddressResponse struct {
	CEP        string `json:"cep"`
	Logradouro string `json:"logradouro"`
	Bairro     string `json:"bairro"`
	Cidade     string `json:"cidade"`
	UF         string `json:"uf"`
}

func FromAddress(a entities.Address) AddressResponse {
	return AddressResponse{
		CEP:        a.PostalCode,
		Logradouro: a.Street,
		Bairro:     a.District,
		Cidade:     a.City,
		UF:         a.State,
	}
}
