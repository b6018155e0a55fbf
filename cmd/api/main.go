package main

import (
	"context"
	"log"
	"os"

	"github.com/toushik018/hardal/internal/cart"
	"github.com/toushik018/hardal/internal/checkout"
	"github.com/toushik018/hardal/internal/commerce"
	"github.com/toushik018/hardal/internal/configurator"
	"github.com/toushik018/hardal/internal/db"
	"github.com/toushik018/hardal/internal/menu"
	"github.com/toushik018/hardal/internal/order"
	"github.com/toushik018/hardal/internal/router"
	"github.com/toushik018/hardal/internal/session"
	"github.com/toushik018/hardal/internal/storage"

	"github.com/joho/godotenv"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"SHOP_API_ENDPOINT",
		"SHOP_API_USERNAME",
		"SHOP_API_KEY",
		"DATABASE_URL",
		"SMTP_HOST",
		"SMTP_USER",
		"SMTP_PASS",
		"SMTP_FROM",
		"ORDER_NOTIFY_EMAIL",
		"R2_ACCESS_KEY",
		"R2_SECRET_KEY",
		"R2_BUCKET_NAME",
		"R2_ENDPOINT",
		"R2_PUBLIC_BASE_URL",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── STORAGE ─────────────────────────
	r2Client, err := storage.NewR2Client(context.Background())
	if err != nil {
		log.Fatal("❌ R2 init failed:", err)
	}

	// ───────────────────────── COMMERCE BACKEND ─────────────────────────
	shopAPI := commerce.NewClient(os.Getenv("SHOP_API_ENDPOINT"))

	// ───────────────────────── SESSION ─────────────────────────
	sessionService := session.NewService(shopAPI)
	sessionHandler := session.NewHandler(sessionService)

	// ───────────────────────── SERVICES (ORDER MATTERS) ─────────────────────────
	menuService := menu.NewService(shopAPI)

	cartService := cart.NewService(shopAPI, menu.ResolveCategory)

	configuratorService := configurator.NewService(
		shopAPI,
		menuService,
		configurator.NewInMemoryProgressRepository(),
	)

	checkoutService := checkout.NewService(
		shopAPI,
		checkout.NewInMemoryStore(),
	)

	orderRepo := order.NewPostgresRepository(pgDB)
	orderService := order.NewService(
		shopAPI,
		orderRepo,
		r2Client,
		order.NewSMTPMailer(),
	)

	// ───────────────────────── HANDLERS ─────────────────────────
	h := router.Handlers{
		Session:      sessionHandler,
		Cart:         cart.NewHandler(cartService),
		Menu:         menu.NewHandler(menuService),
		Configurator: configurator.NewHandler(configuratorService),
		Checkout:     checkout.NewHandler(checkoutService),
		Order:        order.NewHandler(orderService),
	}

	r := router.New(h)

	// ───────────────────────── START ─────────────────────────
	log.Println("🚀 API running at http://localhost:8000")
	r.Run(":8000")
}
