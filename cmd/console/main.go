package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jhoicas/factory-console/internal/application/controller"
	"github.com/jhoicas/factory-console/internal/application/notify"
	"github.com/jhoicas/factory-console/internal/application/session"
	"github.com/jhoicas/factory-console/internal/infrastructure/gotrue"
	"github.com/jhoicas/factory-console/internal/infrastructure/rest"
	"github.com/jhoicas/factory-console/pkg/config"
	"github.com/jhoicas/factory-console/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("api", cfg.API.BaseURL).
		Msg("iniciando consola")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	identity := gotrue.NewClient(cfg.Auth, log)
	apiClient := rest.NewClient(cfg.API.BaseURL, identity, log,
		rest.WithTimeout(cfg.API.Timeout()))

	partRepo := rest.NewPartRepository(apiClient)
	supplierRepo := rest.NewSupplierRepository(apiClient)
	warehouseRepo := rest.NewWarehouseRepository(apiClient)
	staffRepo := rest.NewStaffRepository(apiClient)
	inventoryRepo := rest.NewInventoryRepository(apiClient)
	purchaseRepo := rest.NewPurchaseRepository(apiClient)
	userRepo := rest.NewUserRepository(apiClient)

	notifier := notify.Log(log)
	sessionUC := session.NewUseCase(identity, userRepo, cfg.Auth.RedirectTarget, notifier, log)

	email := os.Getenv("CONSOLE_EMAIL")
	password := os.Getenv("CONSOLE_PASSWORD")
	if email == "" || password == "" {
		log.Fatal().Msg("CONSOLE_EMAIL y CONSOLE_PASSWORD son obligatorios")
	}
	appUser, err := sessionUC.Login(ctx, email, password)
	if err != nil {
		log.Fatal().Err(err).Msg("inicio de sesión")
	}
	if appUser != nil {
		log.Info().
			Str("email", appUser.Email).
			Str("role", string(appUser.Role)).
			Msg("sesión iniciada")
	}

	gate := session.NewGate(identity, log)
	gate.Mount()
	defer gate.Unmount()
	if gate.Decide() != session.DecisionAdmit {
		log.Fatal().Msg("sesión no admitida tras el login")
	}

	parts := controller.NewPartsScreen(partRepo, notifier, log)
	suppliers := controller.NewSuppliersScreen(supplierRepo, notifier, log)
	warehouses := controller.NewWarehousesScreen(warehouseRepo, notifier, log)
	staff := controller.NewStaffScreen(staffRepo, warehouseRepo, notifier, log)
	inventory := controller.NewInventoryScreen(inventoryRepo, warehouseRepo, partRepo, notifier, log)
	purchases := controller.NewPurchasesScreen(purchaseRepo, partRepo, supplierRepo, warehouseRepo, notifier, log)
	users := controller.NewUsersScreen(userRepo, warehouseRepo, notifier, log)

	parts.Mount(ctx)
	suppliers.Mount(ctx)
	warehouses.Mount(ctx)
	staff.Mount(ctx)
	inventory.Mount(ctx)
	purchases.Mount(ctx)
	users.Mount(ctx)

	log.Info().
		Int("parts", len(parts.Rows())).
		Int("suppliers", len(suppliers.Rows())).
		Int("warehouses", len(warehouses.Rows())).
		Int("staff", len(staff.Rows())).
		Int("inventory", len(inventory.Rows())).
		Int("purchases", len(purchases.Rows())).
		Int("users", len(users.Rows())).
		Msg("pantallas montadas")

	for _, row := range inventory.Rows() {
		log.Info().
			Str("warehouse", inventory.WarehouseLabel(row.WarehouseID)).
			Str("part", inventory.PartLabel(row.PartID)).
			Int("stock", row.StockQuantity).
			Msg("existencia")
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando sesión...")

	logoutCtx, cancelLogout := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelLogout()
	if err := sessionUC.Logout(logoutCtx); err != nil {
		log.Error().Err(err).Msg("cierre de sesión")
	}

	parts.Unmount()
	suppliers.Unmount()
	warehouses.Unmount()
	staff.Unmount()
	inventory.Unmount()
	purchases.Unmount()
	users.Unmount()

	log.Info().Msg("consola detenida")
}
