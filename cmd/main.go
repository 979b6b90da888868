package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	computeEstimateHandler "github.com/m04kA/TD-WeddingService/internal/api/handlers/compute_estimate"
	createRequestHandler "github.com/m04kA/TD-WeddingService/internal/api/handlers/create_request"
	getAvailabilityHandler "github.com/m04kA/TD-WeddingService/internal/api/handlers/get_availability"
	getCatalogHandler "github.com/m04kA/TD-WeddingService/internal/api/handlers/get_catalog"
	getEstimatePDFHandler "github.com/m04kA/TD-WeddingService/internal/api/handlers/get_estimate_pdf"
	getRequestHandler "github.com/m04kA/TD-WeddingService/internal/api/handlers/get_request"
	listRequestsHandler "github.com/m04kA/TD-WeddingService/internal/api/handlers/list_requests"
	replyRequestHandler "github.com/m04kA/TD-WeddingService/internal/api/handlers/reply_request"
	updateRequestStatusHandler "github.com/m04kA/TD-WeddingService/internal/api/handlers/update_request_status"
	"github.com/m04kA/TD-WeddingService/internal/api/middleware"
	"github.com/m04kA/TD-WeddingService/internal/config"
	"github.com/m04kA/TD-WeddingService/internal/infra/pdf"
	requestRepo "github.com/m04kA/TD-WeddingService/internal/infra/storage/request"
	"github.com/m04kA/TD-WeddingService/internal/integrations/firebaseauth"
	"github.com/m04kA/TD-WeddingService/internal/integrations/notifier"
	"github.com/m04kA/TD-WeddingService/internal/service/availability"
	"github.com/m04kA/TD-WeddingService/internal/service/pricing"
	requestsService "github.com/m04kA/TD-WeddingService/internal/service/requests"
	computeEstimateUC "github.com/m04kA/TD-WeddingService/internal/usecase/compute_estimate"
	createRequestUC "github.com/m04kA/TD-WeddingService/internal/usecase/create_request"
	getAvailabilityUC "github.com/m04kA/TD-WeddingService/internal/usecase/get_availability"
	replyRequestUC "github.com/m04kA/TD-WeddingService/internal/usecase/reply_request"
	"github.com/m04kA/TD-WeddingService/pkg/dbmetrics"
	"github.com/m04kA/TD-WeddingService/pkg/logger"
	"github.com/m04kA/TD-WeddingService/pkg/metrics"
	"github.com/m04kA/TD-WeddingService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting TD-WeddingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Каталог цен и календарь площадки
	catalog, err := cfg.Pricing.LoadCatalog()
	if err != nil {
		log.Fatal("Failed to load pricing catalog: %v", err)
	}
	calendar, err := cfg.Calendar.ToDomain()
	if err != nil {
		log.Fatal("Failed to build calendar: %v", err)
	}
	log.Info("Calendar loaded (timezone=%s, booked=%d, hold=%d)",
		calendar.Location, len(calendar.Booked), len(calendar.Hold))

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// С nil-метриками обертка работает как обычное соединение
	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем репозитории
	requestRepository := requestRepo.NewRepository(wrappedDB)

	// Инициализируем интеграционных клиентов
	notifierClient := notifier.NewClient(
		cfg.Notifications.WebhookURL,
		cfg.Notifications.FromAddress,
		time.Duration(cfg.Notifications.Timeout)*time.Second,
		log,
	)
	if cfg.Notifications.WebhookURL == "" {
		log.Warn("Notifications webhook is not configured, emails will only be logged")
	}

	// Инициализируем сервисы
	pricingSvc := pricing.NewService(catalog)
	availabilitySvc := availability.NewService(calendar, &availability.RealTimeProvider{})
	requestsSvc := requestsService.NewService(
		requestRepository,
		pdf.New(&availability.RealTimeProvider{}),
		log,
	)

	// Инициализируем use cases
	computeEstimateUseCase := computeEstimateUC.NewUseCase(pricingSvc, metricsCollector, log)
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(availabilitySvc, metricsCollector, log)
	createRequestUseCase := createRequestUC.NewUseCase(
		requestRepository,
		availabilitySvc,
		pricingSvc,
		txMgr,
		metricsCollector,
		log,
	)
	replyRequestUseCase := replyRequestUC.NewUseCase(
		requestRepository,
		notifierClient,
		txMgr,
		log,
	)

	// Инициализируем handlers
	getCatalog := getCatalogHandler.NewHandler(pricingSvc, log)
	computeEstimate := computeEstimateHandler.NewHandler(computeEstimateUseCase, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	createRequest := createRequestHandler.NewHandler(createRequestUseCase, log)
	listRequests := listRequestsHandler.NewHandler(requestsSvc, log)
	getRequest := getRequestHandler.NewHandler(requestsSvc, log)
	updateRequestStatus := updateRequestStatusHandler.NewHandler(requestsSvc, log)
	replyRequest := replyRequestHandler.NewHandler(replyRequestUseCase, log)
	getEstimatePDF := getEstimatePDFHandler.NewHandler(requestsSvc, log)

	// Аутентификация администраторов: Firebase ID-токен, dev-заголовок только при admin.dev_mode
	authMode, err := cfg.AdminAuthMode()
	if err != nil {
		log.Fatal("Failed to configure admin auth: %v", err)
	}

	var adminAuth func(http.Handler) http.Handler
	switch authMode {
	case config.AdminAuthFirebase:
		verifier, err := firebaseauth.NewVerifier(
			context.Background(),
			cfg.Firebase.ProjectID,
			cfg.Firebase.CredentialsFile,
			log,
		)
		if err != nil {
			log.Fatal("Failed to initialize Firebase auth: %v", err)
		}
		adminAuth = middleware.AdminAuth(verifier, cfg.Admin, log)
		log.Info("Admin auth: Firebase ID tokens (project=%s)", cfg.Firebase.ProjectID)
	case config.AdminAuthHeader:
		adminAuth = middleware.HeaderAuth(cfg.Admin, log)
		log.Warn("Admin auth: dev mode, trusting %s header without token verification", middleware.AdminEmailHeader)
	}

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		// Metrics endpoint (публичный, без аутентификации)
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (форма заявки)
	// ============================================================

	// Каталог опций и пакет Signature
	api.HandleFunc("/catalog", getCatalog.Handle).Methods(http.MethodGet)

	// Расчет сметы
	api.HandleFunc("/estimates", computeEstimate.Handle).Methods(http.MethodPost)

	// Статусы дат календаря
	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)

	// Отправка заявки
	api.HandleFunc("/requests", createRequest.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют прав администратора)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(adminAuth)

	// Список заявок
	admin.HandleFunc("/requests", listRequests.Handle).Methods(http.MethodGet)

	// Заявка с перепиской
	admin.HandleFunc("/requests/{requestId}", getRequest.Handle).Methods(http.MethodGet)

	// Смена статуса
	admin.HandleFunc("/requests/{requestId}/status", updateRequestStatus.Handle).Methods(http.MethodPatch)

	// Ответ паре
	admin.HandleFunc("/requests/{requestId}/replies", replyRequest.Handle).Methods(http.MethodPost)

	// PDF сметы
	admin.HandleFunc("/requests/{requestId}/estimate.pdf", getEstimatePDF.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
