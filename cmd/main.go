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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createServiceHandler "github.com/m04kA/barber-booking/internal/api/handlers/create_service"
	getAvailableDatesHandler "github.com/m04kA/barber-booking/internal/api/handlers/get_available_dates"
	getAvailableSlotsHandler "github.com/m04kA/barber-booking/internal/api/handlers/get_available_slots"
	listAppointmentsHandler "github.com/m04kA/barber-booking/internal/api/handlers/list_appointments"
	listServicesHandler "github.com/m04kA/barber-booking/internal/api/handlers/list_services"
	registerStaffHandler "github.com/m04kA/barber-booking/internal/api/handlers/register_staff"
	searchAppointmentsHandler "github.com/m04kA/barber-booking/internal/api/handlers/search_appointments"
	submitBookingHandler "github.com/m04kA/barber-booking/internal/api/handlers/submit_booking"
	updateStatusHandler "github.com/m04kA/barber-booking/internal/api/handlers/update_appointment_status"
	"github.com/m04kA/barber-booking/internal/api/middleware"
	"github.com/m04kA/barber-booking/internal/config"
	"github.com/m04kA/barber-booking/internal/domain"
	appointmentRepo "github.com/m04kA/barber-booking/internal/infra/storage/appointment"
	catalogRepo "github.com/m04kA/barber-booking/internal/infra/storage/catalog"
	"github.com/m04kA/barber-booking/internal/infra/storage/schema"
	staffRepo "github.com/m04kA/barber-booking/internal/infra/storage/staff"
	bookingsService "github.com/m04kA/barber-booking/internal/service/bookings"
	"github.com/m04kA/barber-booking/internal/service/schedule"
	staffService "github.com/m04kA/barber-booking/internal/service/staff"
	getAvailableDatesUC "github.com/m04kA/barber-booking/internal/usecase/get_available_dates"
	getAvailableSlotsUC "github.com/m04kA/barber-booking/internal/usecase/get_available_slots"
	submitBookingUC "github.com/m04kA/barber-booking/internal/usecase/submit_booking"
	"github.com/m04kA/barber-booking/pkg/dbmetrics"
	"github.com/m04kA/barber-booking/pkg/logger"
	"github.com/m04kA/barber-booking/pkg/metrics"
	"github.com/m04kA/barber-booking/pkg/txmanager"
)

const bootstrapTimeout = 30 * time.Second

func main() {
	configPath := "config.toml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		configPath = v
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
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

	log.Info("Starting barber-booking...")
	log.Info("Configuration loaded from %s", configPath)

	// Метрики (если включены). nil отключает запись во всех потребителях
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName, prometheus.DefaultRegisterer)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	sqlDB, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to open database: %v", err)
	}
	defer sqlDB.Close()

	// Настраиваем connection pool
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	db := dbmetrics.WrapWithDefault(sqlDB, metricsCollector, stopMetricsCh)

	bootCtx, cancelBoot := context.WithTimeout(context.Background(), bootstrapTimeout)
	defer cancelBoot()

	if err := db.PingContext(bootCtx); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Схема и начальный каталог
	if err := schema.Apply(bootCtx, db); err != nil {
		log.Fatal("Failed to apply schema: %v", err)
	}

	txManager := txmanager.NewTransactionManager(db)
	catalogRepository := catalogRepo.NewRepository(db)
	appointmentRepository := appointmentRepo.NewRepository(db, txManager)
	staffRepository := staffRepo.NewRepository(db)

	seeded, err := catalogRepository.Seed(bootCtx, domain.DefaultServices)
	if err != nil {
		log.Fatal("Failed to seed catalog: %v", err)
	}
	log.Info("Catalog seeded: %d new services", seeded)

	// Сервисы
	staffSvc := staffService.NewService(staffRepository, cfg.Admin.BcryptCost, log)
	if cfg.Admin.Email != "" {
		created, err := staffSvc.EnsureAdmin(bootCtx, cfg.Admin.Email, cfg.Admin.Password, cfg.Admin.Name)
		if err != nil {
			log.Fatal("Failed to bootstrap admin account: %v", err)
		}
		if created {
			log.Info("Admin account created: %s", cfg.Admin.Email)
		}
	}

	policy, err := newSchedulePolicy(cfg.Schedule)
	if err != nil {
		log.Fatal("Failed to build schedule policy: %v", err)
	}

	bookingSvc := bookingsService.NewService(
		appointmentRepository,
		catalogRepository,
		txManager,
		policy,
		log,
	)

	// Use cases
	submitBookingUseCase := submitBookingUC.NewUseCase(
		appointmentRepository,
		policy,
		metricsCollector,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		appointmentRepository,
		policy,
		log,
	)
	getAvailableDatesUseCase := getAvailableDatesUC.NewUseCase(
		policy,
		cfg.Schedule.HorizonDays,
		log,
	)

	// Handlers
	submitBooking := submitBookingHandler.NewHandler(submitBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getAvailableDates := getAvailableDatesHandler.NewHandler(getAvailableDatesUseCase, log)
	listServices := listServicesHandler.NewHandler(bookingSvc, log)
	createService := createServiceHandler.NewHandler(bookingSvc, log)
	listAppointments := listAppointmentsHandler.NewHandler(bookingSvc, log)
	searchAppointments := searchAppointmentsHandler.NewHandler(bookingSvc, log)
	updateStatus := updateStatusHandler.NewHandler(bookingSvc, log)
	registerStaff := registerStaffHandler.NewHandler(staffSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID(log))
	r.Use(middleware.MetricsMiddleware(metricsCollector))

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/available-dates", getAvailableDates.Handle).Methods(http.MethodGet)
	api.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments", submitBooking.Handle).Methods(http.MethodPost)

	// ============================================================
	// STAFF ROUTES (Basic auth)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.StaffAuth(staffSvc, log))

	protected.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/search", searchAppointments.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId}/status", updateStatus.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/services", createService.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/staff", registerStaff.Handle).Methods(http.MethodPost)

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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	log.Info("Server stopped gracefully")
}

// newSchedulePolicy строит политику слотов из секции [schedule]
func newSchedulePolicy(cfg config.ScheduleConfig) (*schedule.Policy, error) {
	openDays, err := cfg.Weekdays()
	if err != nil {
		return nil, err
	}
	location, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	return schedule.NewPolicy(schedule.Settings{
		OpenDays: openDays,
		Slots:    cfg.Slots,
		Location: location,
	}, &schedule.RealTimeProvider{})
}
