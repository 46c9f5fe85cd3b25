package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	appanalytics "github.com/jhoicas/melo-compras/internal/application/analytics"
	"github.com/jhoicas/melo-compras/internal/application/auth"
	"github.com/jhoicas/melo-compras/internal/application/procurement"
	"github.com/jhoicas/melo-compras/internal/application/usecase"
	"github.com/jhoicas/melo-compras/internal/domain/entity"
	"github.com/jhoicas/melo-compras/internal/infrastructure/meloapi"
	infrapdf "github.com/jhoicas/melo-compras/internal/infrastructure/pdf"
	infraxlsx "github.com/jhoicas/melo-compras/internal/infrastructure/xlsx"
	httpRouter "github.com/jhoicas/melo-compras/internal/interfaces/http"
	"github.com/jhoicas/melo-compras/pkg/config"
	"github.com/jhoicas/melo-compras/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("melo_api", cfg.MeloAPI.BaseURL).
		Msg("iniciando aplicación")

	client := meloapi.NewClient(cfg.MeloAPI.BaseURL, cfg.MeloAPI.Timeout(), log)
	orderRepo := meloapi.NewOrderRepository(client)
	catalogRepo := meloapi.NewCatalogRepository(client)
	supplierRepo := meloapi.NewSupplierRepository(client)
	siteRepo := meloapi.NewSiteRepository(client)
	engineerRepo := meloapi.NewEngineerRepository(client)
	requestRepo := meloapi.NewRequestRepository(client)
	userRepo := meloapi.NewUserRepository(client)

	company := entity.CompanyProfile{
		Name:    cfg.Company.Name,
		Address: cfg.Company.Address,
		CNPJ:    cfg.Company.CNPJ,
		Phone:   cfg.Company.Phone,
	}

	editor := procurement.NewOrderEditor(orderRepo, catalogRepo, log)
	exportUC := procurement.NewExportUseCase(
		orderRepo, supplierRepo, siteRepo,
		infrapdf.NewMarotoPDFGenerator(), infraxlsx.NewOrdersSheet(),
		company, log,
	)
	conversion := procurement.NewRequestConversion(requestRepo, catalogRepo, editor)
	authUC := auth.NewAuthUseCase(meloapi.NewAuthGateway(client), log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: cfg.MeloAPI.Timeout() + 5*time.Second,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Header:     "X-Request-ID",
		Generator:  uuid.NewString,
		ContextKey: httpRouter.LocalRequestID,
	}))
	app.Use(cors.New(cors.Config{
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization, X-Request-ID",
		ExposeHeaders: "Content-Disposition, X-Request-ID",
	}))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: cfg.App.SwaggerFile,
		Path:     "docs",
		Title:    "Melo Compras API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		Editor:     editor,
		Export:     exportUC,
		Conversion: conversion,
		SupplierUC: usecase.NewSupplierUseCase(supplierRepo),
		CatalogUC:  usecase.NewCatalogUseCase(catalogRepo),
		SiteUC:     usecase.NewSiteUseCase(siteRepo),
		EngineerUC: usecase.NewEngineerUseCase(engineerRepo),
		RequestUC:  usecase.NewRequestUseCase(requestRepo),
		UserUC:     usecase.NewUserUseCase(userRepo),
		Dashboard:  appanalytics.NewDashboardUseCase(orderRepo, requestRepo),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
