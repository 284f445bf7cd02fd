package request

import (
	"loja_checkout/internal/domain/entities"
	"loja_checkout/internal/usecase"
)

// CheckoutRequest is the order submission payload. Field names follow the
// storefront's Portuguese form contract; items, coupon and freight come from
// the session, never from the client.

type CheckoutRequest struct {
	SessionID string `json:"session_id" binding:"required"`

	Nome      string `json:"nome"`
	Sobrenome string `json:"sobrenome"`
	Email     string `json:"email"`
	Telefone  string `json:"telefone"`
	CPF       string `json:"cpf"`

	Endereco CheckoutAddress `json:"endereco"`
}

type CheckoutAddress struct {
	CEP         string `json:"cep"`
	Logradouro  string `json:"logradouro"`
	Numero      string `json:"numero"`
	Complemento string `json:"complemento"`
	Bairro      string `json:"bairro"`
	Cidade      string `json:"cidade"`
	UF          string `json:"uf"`
	Referencia  string `json:"referencia"`
}

func (r CheckoutRequest) ToInput() usecase.CheckoutInput {
	return usecase.CheckoutInput{
		SessionID: r.SessionID,
		Customer: entities.Customer{
			FirstName: r.Nome,
			LastName:  r.Sobrenome,
			Email:     r.Email,
			Phone:     r.Telefone,
			CPF:       r.CPF,
		},
		Address: entities.Address{
			PostalCode: r.Endereco.CEP,
			Street:     r.Endereco.Logradouro,
			Number:     r.Endereco.Numero,
			Complement: r.Endereco.Complemento,
			District:   r.Endereco.Bairro,
			City:       r.Endereco.Cidade,
			State:      r.Endereco.UF,
			Reference:  r.Endereco.Referencia,
		},
	}
}
