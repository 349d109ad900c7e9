package main

import (
	"database/sql"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/tmasupe/kitchenware-backend/internal/config"
	"github.com/tmasupe/kitchenware-backend/internal/modules/catalog"
	"github.com/tmasupe/kitchenware-backend/internal/modules/customer"
	"github.com/tmasupe/kitchenware-backend/internal/modules/order"
	"github.com/tmasupe/kitchenware-backend/internal/modules/reference"
	"github.com/tmasupe/kitchenware-backend/internal/platform/logger"
	"github.com/tmasupe/kitchenware-backend/internal/storage"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, reading config from environment")
	}
	cfg := config.Load()

	zlog, err := logger.New(cfg.Server.AppEnv)
	if err != nil {
		log.Fatal(err)
	}
	defer zlog.Sync()

	db, err := sql.Open("postgres", cfg.Postgres.URL)
	if err != nil {
		zlog.Fatal("opening database", zap.Error(err))
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		zlog.Fatal("connecting to database", zap.Error(err))
	}
	zlog.Info("connected to database")

	photoStore, err := storage.NewDiskStore(cfg.Upload.Dir)
	if err != nil {
		zlog.Fatal("preparing upload dir", zap.Error(err))
	}

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)

	// ── Catalog ─────────────────────────────────────────────
	catalogRepo := catalog.NewPostgresRepository(db)
	catalogService := catalog.NewService(catalogRepo, photoStore, zlog)
	catalog.NewHandler(catalogService, zlog).RegisterRoutes(router)

	// ── Customers & Orders ──────────────────────────────────
	customerRepo := customer.NewPostgresRepository(db)
	customerService := customer.NewService(customerRepo)
	customer.NewHandler(customerService, zlog).RegisterRoutes(router)

	orderRepo := order.NewPostgresRepository(db)
	orderService := order.NewService(orderRepo)
	order.NewHandler(orderService, zlog).RegisterRoutes(router)

	// ── Reference data ──────────────────────────────────────
	referenceRepo := reference.NewPostgresRepository(db)
	reference.NewHandler(referenceRepo, zlog).RegisterRoutes(router)

	// ── Uploaded photos ─────────────────────────────────────
	router.Handle("/uploads/*", http.StripPrefix("/uploads/",
		http.FileServer(http.Dir(photoStore.Dir()))))

	// ── Start Server ────────────────────────────────────────
	zlog.Info("catalog API server starting", zap.String("port", cfg.Server.Port))
	if err := http.ListenAndServe(":"+cfg.Server.Port, router); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}
