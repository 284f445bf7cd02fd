package routes

import (
	"log"
	_ "loja_checkout/docs" // This will be auto-generated
	"loja_checkout/internal/adapter/cache"
	"loja_checkout/internal/adapter/http/handlers"
	repository2 "loja_checkout/internal/adapter/persistence/repository"
	"loja_checkout/internal/infrastructure/coupons"
	"loja_checkout/internal/infrastructure/database"
	"loja_checkout/internal/infrastructure/erp"
	"loja_checkout/internal/infrastructure/freight"
	"loja_checkout/internal/infrastructure/payments"
	"loja_checkout/internal/infrastructure/viacep"
	"loja_checkout/internal/usecase"
	"loja_checkout/internal/usecase/interfaces"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()
	rdb := database.ConnectRedis()

	sessionStore := cache.NewRedisSessionStore(rdb)
	orderRepo := repository2.NewOrderDynamoRepository(ddb)
	chargeRepo := repository2.NewChargeDynamoRepository(ddb)
	tokenRepo := repository2.NewAuthTokenDynamoRepository(ddb)

	couponCatalog := coupons.NewCatalogClient(os.Getenv("COUPON_API_URL"))
	carrier := freight.NewCarrierClient(os.Getenv("FREIGHT_API_URL"))
	postalLookup := viacep.NewClient(os.Getenv("VIACEP_URL"))

	freeShippingThreshold := freeShippingThresholdCents()

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	erpProvider := os.Getenv("ERP_PROVIDER")
	if erpProvider == "" {
		erpProvider = "erp_xpto"
	}
	erpAuth := erp.NewOAuthClient(os.Getenv("ERP_TOKEN_URL"), os.Getenv("ERP_CLIENT_ID"), os.Getenv("ERP_CLIENT_SECRET"), erpProvider)
	erpInvoices := erp.NewInvoiceClient(os.Getenv("ERP_INVOICE_URL"))

	cartUseCase := usecase.NewCartUseCase(sessionStore, freeShippingThreshold)
	couponUseCase := usecase.NewCouponUseCase(sessionStore, couponCatalog)
	freightUseCase := usecase.NewFreightUseCase(sessionStore, carrier)
	checkoutUseCase := usecase.NewCheckoutUseCase(sessionStore, orderRepo, freeShippingThreshold)
	invoiceUseCase := usecase.NewInvoiceUseCase(tokenRepo, erpAuth, erpInvoices, orderRepo, erpProvider)
	chargeUseCase := usecase.NewChargeUseCase(chargeRepo, orderRepo, paymentGateway, invoiceUseCase)

	cartHandler := handlers.NewCartHandler(cartUseCase)
	couponHandler := handlers.NewCouponHandler(couponUseCase)
	freightHandler := handlers.NewFreightHandler(freightUseCase, postalLookup)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutUseCase)
	chargeHandler := handlers.NewChargeHandler(chargeUseCase)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCheckoutRoutes(v1, cartHandler, couponHandler, freightHandler, checkoutHandler, chargeHandler, invoiceHandler)
}

func freeShippingThresholdCents() int64 {
	raw := os.Getenv("FREE_SHIPPING_THRESHOLD_CENTS")
	if raw == "" {
		return 0
	}
	cents, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		log.Printf("Invalid FREE_SHIPPING_THRESHOLD_CENTS %q, free shipping disabled: %v", raw, err)
		return 0
	}
	return cents
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
