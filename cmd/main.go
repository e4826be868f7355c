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

	cancelReservationHandler "github.com/calypso-charters/CharterBookingService/internal/api/handlers/cancel_reservation"
	confirmReservationHandler "github.com/calypso-charters/CharterBookingService/internal/api/handlers/confirm_reservation"
	createHoldHandler "github.com/calypso-charters/CharterBookingService/internal/api/handlers/create_hold"
	getAvailabilityHandler "github.com/calypso-charters/CharterBookingService/internal/api/handlers/get_availability"
	getCharterTypesHandler "github.com/calypso-charters/CharterBookingService/internal/api/handlers/get_charter_types"
	getReservationHandler "github.com/calypso-charters/CharterBookingService/internal/api/handlers/get_reservation"
	getReservationsByDateHandler "github.com/calypso-charters/CharterBookingService/internal/api/handlers/get_reservations_by_date"
	healthHandler "github.com/calypso-charters/CharterBookingService/internal/api/handlers/health"
	quoteHandler "github.com/calypso-charters/CharterBookingService/internal/api/handlers/quote"
	"github.com/calypso-charters/CharterBookingService/internal/api/middleware"
	"github.com/calypso-charters/CharterBookingService/internal/config"
	reservationRepo "github.com/calypso-charters/CharterBookingService/internal/infra/storage/reservation"
	"github.com/calypso-charters/CharterBookingService/internal/integrations/paceservice"
	reservationsService "github.com/calypso-charters/CharterBookingService/internal/service/reservations"
	"github.com/calypso-charters/CharterBookingService/internal/sweeper"
	createHoldUC "github.com/calypso-charters/CharterBookingService/internal/usecase/create_hold"
	getAvailabilityUC "github.com/calypso-charters/CharterBookingService/internal/usecase/get_availability"
	quoteUC "github.com/calypso-charters/CharterBookingService/internal/usecase/quote"
	"github.com/calypso-charters/CharterBookingService/migrations"
	"github.com/calypso-charters/CharterBookingService/pkg/dbmetrics"
	"github.com/calypso-charters/CharterBookingService/pkg/logger"
	"github.com/calypso-charters/CharterBookingService/pkg/metrics"
	"github.com/calypso-charters/CharterBookingService/pkg/simpletxmanager"
	"github.com/calypso-charters/CharterBookingService/pkg/txmanager"
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

	log.Info("Starting CharterBookingService...")
	log.Info("Configuration loaded from config.toml")

	// Собираем каталог слотов, продуктов и правил ценообразования
	catalog, err := cfg.BuildCatalog()
	if err != nil {
		log.Fatal("Failed to build catalog: %v", err)
	}
	log.Info("Catalog built: %d slots, %d products, timezone=%s",
		len(catalog.AllSlots()), len(catalog.Products()), cfg.Booking.Timezone)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

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

	// Применяем миграции
	if err := migrations.Up(db); err != nil {
		log.Fatal("Failed to apply migrations: %v", err)
	}
	log.Info("Migrations applied")

	// Инициализируем клиент партнёрского фида Pace
	var paceClient interface {
		GetBusyBlocksWithGracefulDegradation(ctx context.Context, from, to time.Time) []paceservice.BusyBlock
	}
	if cfg.Pace.Enabled {
		paceClient = paceservice.NewClient(
			cfg.Pace.URL,
			cfg.Pace.Token,
			time.Duration(cfg.Pace.Timeout)*time.Second,
			log,
		)
		log.Info("Pace feed client initialized (url=%s, timeout=%ds)", cfg.Pace.URL, cfg.Pace.Timeout)
	} else {
		paceClient = paceservice.NewDisabledClient()
		log.Info("Pace feed disabled")
	}

	// Инициализируем репозиторий и transaction manager (с метриками или без)
	var reservationRepository *reservationRepo.Repository

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		reservationRepository = reservationRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервис жизненного цикла
	reservationSvc := reservationsService.NewService(
		catalog,
		reservationRepository,
		txMgr,
		log,
	)

	// Инициализируем use cases
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		catalog,
		reservationRepository,
		paceClient,
		log,
	)

	createHoldUseCase := createHoldUC.NewUseCase(
		catalog,
		cfg.Booking.HoldDuration(),
		reservationRepository,
		paceClient,
		txMgr,
		log,
	)

	quoteUseCase := quoteUC.NewUseCase(catalog, log)

	// Инициализируем handlers
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	createHold := createHoldHandler.NewHandler(createHoldUseCase, log)
	getQuote := quoteHandler.NewHandler(quoteUseCase, log)
	confirmReservation := confirmReservationHandler.NewHandler(reservationSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationSvc, log)
	getReservation := getReservationHandler.NewHandler(reservationSvc, log)
	getReservationsByDate := getReservationsByDateHandler.NewHandler(reservationSvc, log)
	getCharterTypes := getCharterTypesHandler.NewHandler(catalog, log)
	health := healthHandler.NewHandler(db)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Health endpoint
	r.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Каталог чартеров
	api.HandleFunc("/charter-types", getCharterTypes.Handle).Methods(http.MethodGet)

	// Доступность слотов по дням
	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)

	// Расчёт стоимости
	api.HandleFunc("/quote", getQuote.Handle).Methods(http.MethodPost)

	// Создание удержания слота
	api.HandleFunc("/bookings/hold", createHold.Handle).Methods(http.MethodPost)

	// Подтверждение удержания
	api.HandleFunc("/bookings/confirm", confirmReservation.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	api.HandleFunc("/bookings/{bookingId}", getReservation.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (требуют X-Admin-Token header)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Server.AdminToken, log))

	// Бронирования на день
	admin.HandleFunc("/bookings", getReservationsByDate.Handle).Methods(http.MethodGet)

	// Отмена подтверждённого бронирования
	admin.HandleFunc("/bookings/{bookingId}/cancel", cancelReservation.Handle).Methods(http.MethodPatch)

	// Фоновая зачистка истёкших холдов (если включена)
	sweepCtx, stopSweep := context.WithCancel(context.Background())
	defer stopSweep()

	if cfg.Booking.SweepEnabled {
		holdSweeper := sweeper.New(reservationSvc, cfg.Booking.SweepInterval(), log)
		go holdSweeper.Start(sweepCtx)
	}

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

	// Останавливаем фоновую зачистку
	stopSweep()

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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
