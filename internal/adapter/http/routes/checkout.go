package routes

import (
	"loja_checkout/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCart    = "/cart"
	PathFreight = "/freight"
	PathAddress = "/address"
	PathPedido  = "/pedido"
	PathCharges = "/charges"
	PathWebhook = "/webhook"
	PathERP     = "/erp"
)

func addCheckoutRoutes(rg *gin.RouterGroup, cartHandler *handlers.CartHandler, couponHandler *handlers.CouponHandler, freightHandler *handlers.FreightHandler, checkoutHandler *handlers.CheckoutHandler, chargeHandler *handlers.ChargeHandler, invoiceHandler *handlers.InvoiceHandler) {
	cart := rg.Group(PathCart)
	{
		cart.GET("/:session_id", cartHandler.GetCart)
		cart.GET("/:session_id/pricing", cartHandler.GetPricing)
		cart.POST("/:session_id/items", cartHandler.AddItem)
		cart.PATCH("/:session_id/items/:product_id/increment", cartHandler.IncrementItem)
		cart.PATCH("/:session_id/items/:product_id/decrement", cartHandler.DecrementItem)
		cart.DELETE("/:session_id/items/:product_id", cartHandler.RemoveItem)

		// O cupom vive no carrinho: no máximo um ativo por sessão.
		cart.POST("/:session_id/coupons", couponHandler.Apply)
		cart.DELETE("/:session_id/coupons/:code", couponHandler.Remove)
	}

	freightGroup := rg.Group(PathFreight)
	{
		freightGroup.GET("/:session_id/quotes/:cep", freightHandler.Quote)
		freightGroup.PATCH("/:session_id/select", freightHandler.Select)
	}

	rg.GET(PathAddress+"/:cep", freightHandler.LookupAddress)

	pedido := rg.Group(PathPedido)
	{
		pedido.POST("", checkoutHandler.CreateOrder)
		pedido.GET("/:order_id", checkoutHandler.GetOrder)
	}

	charges := rg.Group(PathCharges)
	{
		charges.POST("/:order_id", chargeHandler.CreateCharge)
		charges.GET("/:order_id", chargeHandler.CheckCharge)
	}

	rg.POST(PathWebhook, chargeHandler.Webhook)

	erpGroup := rg.Group(PathERP)
	{
		erpGroup.POST("/activate", invoiceHandler.Activate)
		erpGroup.GET("/token", invoiceHandler.TokenStatus)
	}
}
