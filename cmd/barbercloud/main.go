package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	_ "modernc.org/sqlite"

	createAppointmentHandler "github.com/barbercloud/barbercloud/internal/api/handlers/create_appointment"
	getAvailableSlotsHandler "github.com/barbercloud/barbercloud/internal/api/handlers/get_available_slots"
	getBookingSettingsHandler "github.com/barbercloud/barbercloud/internal/api/handlers/get_booking_settings"
	getDashboardStatsHandler "github.com/barbercloud/barbercloud/internal/api/handlers/get_dashboard_stats"
	getWorkingHoursHandler "github.com/barbercloud/barbercloud/internal/api/handlers/get_working_hours"
	listAppointmentsHandler "github.com/barbercloud/barbercloud/internal/api/handlers/list_appointments"
	replaceWorkingHoursHandler "github.com/barbercloud/barbercloud/internal/api/handlers/replace_working_hours"
	updateAppointmentStatusHandler "github.com/barbercloud/barbercloud/internal/api/handlers/update_appointment_status"
	updateBookingSettingsHandler "github.com/barbercloud/barbercloud/internal/api/handlers/update_booking_settings"
	"github.com/barbercloud/barbercloud/internal/api/middleware"
	"github.com/barbercloud/barbercloud/internal/config"
	"github.com/barbercloud/barbercloud/internal/infra/storage"
	appointmentRepo "github.com/barbercloud/barbercloud/internal/infra/storage/appointment"
	settingsRepo "github.com/barbercloud/barbercloud/internal/infra/storage/settings"
	workingHoursRepo "github.com/barbercloud/barbercloud/internal/infra/storage/workinghours"
	appointmentsService "github.com/barbercloud/barbercloud/internal/service/appointments"
	settingsService "github.com/barbercloud/barbercloud/internal/service/settings"
	createAppointmentUC "github.com/barbercloud/barbercloud/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/barbercloud/barbercloud/internal/usecase/get_available_slots"
	replaceWorkingHoursUC "github.com/barbercloud/barbercloud/internal/usecase/replace_working_hours"
	"github.com/barbercloud/barbercloud/pkg/dbmetrics"
	"github.com/barbercloud/barbercloud/pkg/logger"
	"github.com/barbercloud/barbercloud/pkg/metrics"
	"github.com/barbercloud/barbercloud/pkg/psqlbuilder"
	"github.com/barbercloud/barbercloud/pkg/txmanager"
)

func main() {
	configPath := flag.String("config", "config.toml", "path to TOML config")
	flag.Parse()

	// Загружаем конфигурацию
	cfg, err := config.Load(*configPath)
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

	log.Info("Starting BarberCloud API...")
	log.Info("Configuration loaded from %s", *configPath)

	if cfg.Auth.JWTSecret == "" {
		log.Fatal("auth.jwt_secret is empty, set it in config or %s", config.EnvJWTSecret)
	}

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := openDatabase(cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()
	log.Info("Successfully connected to database (driver=%s)", cfg.Database.Driver)

	// Обертка с метриками; без метрик работает как обычный *sql.DB
	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)

	if cfg.Database.AutoMigrate {
		if err := storage.ApplySchema(context.Background(), wrappedDB, cfg.Database.Driver); err != nil {
			log.Fatal("Failed to apply schema: %v", err)
		}
		log.Info("Database schema is up to date")
	}

	// Repositories
	workingHoursRepository := workingHoursRepo.NewRepository(wrappedDB, cfg.Database.Driver)
	appointmentRepository := appointmentRepo.NewRepository(wrappedDB, cfg.Database.Driver)
	settingsRepository := settingsRepo.NewRepository(wrappedDB, cfg.Database.Driver)

	txManager := txmanager.NewTransactionManager(wrappedDB, isolationLevel(cfg.Database.Driver))
	loc := cfg.Booking.Location()

	// Инициализируем сервисы
	settingsSvc := settingsService.NewService(settingsRepository, cfg.Booking.Policy(), log)
	appointmentsSvc := appointmentsService.NewService(appointmentRepository, metricsCollector, loc, log)

	// Инициализируем use cases
	replaceWorkingHoursUseCase := replaceWorkingHoursUC.NewUseCase(
		workingHoursRepository,
		txManager,
		metricsCollector,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		workingHoursRepository,
		appointmentRepository,
		settingsSvc,
		loc,
		log,
	)

	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		workingHoursRepository,
		settingsSvc,
		txManager,
		metricsCollector,
		loc,
		log,
	)

	// Инициализируем handlers
	getWorkingHours := getWorkingHoursHandler.NewHandler(workingHoursRepository, log)
	replaceWorkingHours := replaceWorkingHoursHandler.NewHandler(replaceWorkingHoursUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentsSvc, log)
	updateAppointmentStatus := updateAppointmentStatusHandler.NewHandler(appointmentsSvc, log)
	getDashboardStats := getDashboardStatsHandler.NewHandler(appointmentsSvc, log)
	getBookingSettings := getBookingSettingsHandler.NewHandler(settingsSvc, log)
	updateBookingSettings := updateBookingSettingsHandler.NewHandler(settingsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (мастер бронирования, с ограничением частоты)
	// ============================================================

	public := api.PathPrefix("").Subrouter()
	rateLimiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst, cfg.RateLimit.TrustProxy, log)
	stopRateLimitCh := make(chan struct{})
	go rateLimiter.Run(stopRateLimitCh)
	public.Use(rateLimiter.Middleware)

	// Свободные слоты на дату
	public.HandleFunc("/barbershops/{shopId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Создание записи
	public.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (панель администратора, Bearer JWT)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(cfg.Auth.JWTSecret, log))

	// --- Рабочие часы ---
	protected.HandleFunc("/working-hours", getWorkingHours.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/working-hours", replaceWorkingHours.Handle).Methods(http.MethodPut)

	// --- Записи ---
	protected.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{id}/status", updateAppointmentStatus.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/dashboard/stats", getDashboardStats.Handle).Methods(http.MethodGet)

	// --- Настройки бронирования ---
	protected.HandleFunc("/booking-settings", getBookingSettings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/booking-settings", updateBookingSettings.Handle).Methods(http.MethodPut)

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
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool и очистку ограничителей
	close(stopMetricsCh)
	close(stopRateLimitCh)

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

// openDatabase открывает пул и проверяет соединение
// Имя драйвера совпадает с регистрацией lib/pq ("postgres") и modernc ("sqlite")
func openDatabase(cfg config.DatabaseConfig) (*sql.DB, error) {
	db, err := sql.Open(cfg.Driver, cfg.DSN())
	if err != nil {
		return nil, err
	}

	if cfg.Driver == psqlbuilder.DriverSQLite {
		// SQLite допускает одного писателя
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
		db.SetMaxIdleConns(cfg.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Second)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// isolationLevel проверка свободных кресел и вставка записи должны быть сериализуемы
func isolationLevel(driver string) sql.IsolationLevel {
	if driver == psqlbuilder.DriverSQLite {
		return sql.LevelDefault
	}
	return sql.LevelSerializable
}
