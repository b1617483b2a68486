package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"alanshor-pos/internal/checkout"
	"alanshor-pos/internal/config"
	"alanshor-pos/internal/httpserver"
	catalogrepo "alanshor-pos/internal/repository/catalog"
	customerrepo "alanshor-pos/internal/repository/customer"
	salesrepo "alanshor-pos/internal/repository/sales"
	settingsrepo "alanshor-pos/internal/repository/settings"
	"alanshor-pos/internal/seed"
	customersvc "alanshor-pos/internal/service/customer"
	inventorysvc "alanshor-pos/internal/service/inventory"
	reportsvc "alanshor-pos/internal/service/report"
	settingssvc "alanshor-pos/internal/service/settings"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("skipping .env: %v", err)
	}
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	catalog := catalogrepo.NewMemory(seed.Products())
	customers := customerrepo.NewMemory(seed.Customers())
	sales := salesrepo.NewMemory(seed.WeeklySales(), seed.DailyReports(), seed.DashboardStats())
	settings := settingsrepo.NewMemory(seed.StoreProfile(), seed.Users())

	checkoutMgr := checkout.NewManager(catalog, checkout.NewCalculator(cfg.TaxRate), checkout.Options{
		ResetDelay: cfg.ConfirmResetDelay,
		StrictCash: cfg.StrictCashCheck,
		Logger:     logger,
	})

	srv := httpserver.New(cfg.HTTPAddr, logger, httpserver.Deps{
		Checkout:  checkoutMgr,
		Inventory: inventorysvc.New(catalog),
		Customers: customersvc.New(customers),
		Reports:   reportsvc.New(sales),
		Settings:  settingssvc.New(settings),
	}, httpserver.RouterOptions{
		CORSOrigins:    cfg.CORSOrigins,
		MetricsEnabled: cfg.MetricsEnabled,
	})

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
