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
	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	adjustPricesHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/adjust_prices"
	appointmentsHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/appointments"
	categoriesHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/categories"
	createAppointmentHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/create_appointment"
	customersHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/customers"
	exportAppointmentsHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/export_appointments"
	getCalendarHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_calendar"
	listAppointmentsHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/list_appointments"
	servicesHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/services"
	staffHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/staff"
	workingHoursHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/working_hours"
	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	"github.com/m04kA/SMC-SalonService/internal/calendar"
	"github.com/m04kA/SMC-SalonService/internal/config"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/infra/cache/schedule"
	"github.com/m04kA/SMC-SalonService/internal/infra/environment"
	appointmentRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/appointment"
	catalogRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/catalog"
	customerRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/customer"
	staffRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/staff"
	"github.com/m04kA/SMC-SalonService/internal/integrations/salonapi"
	appointmentsService "github.com/m04kA/SMC-SalonService/internal/service/appointments"
	catalogService "github.com/m04kA/SMC-SalonService/internal/service/catalog"
	customersService "github.com/m04kA/SMC-SalonService/internal/service/customers"
	staffService "github.com/m04kA/SMC-SalonService/internal/service/staff"
	workingHoursService "github.com/m04kA/SMC-SalonService/internal/service/workinghours"
	adjustPricesUC "github.com/m04kA/SMC-SalonService/internal/usecase/adjust_prices"
	createAppointmentUC "github.com/m04kA/SMC-SalonService/internal/usecase/create_appointment"
	exportAppointmentsUC "github.com/m04kA/SMC-SalonService/internal/usecase/export_appointments"
	getCalendarUC "github.com/m04kA/SMC-SalonService/internal/usecase/get_calendar"
	listAppointmentsUC "github.com/m04kA/SMC-SalonService/internal/usecase/list_appointments"
	"github.com/m04kA/SMC-SalonService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonService/pkg/logger"
	"github.com/m04kA/SMC-SalonService/pkg/metrics"
	"github.com/m04kA/SMC-SalonService/pkg/txmanager"
)

// appointmentStore общий набор методов локального и удаленного репозитория записей
type appointmentStore interface {
	Create(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error)
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	List(ctx context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error
	Delete(ctx context.Context, id int64) error
}

// templateCache объединяет потребности staff и workinghours сервисов
// Остается nil интерфейсом, если Redis выключен
type templateCache interface {
	Get(ctx context.Context, staffID int64) (domain.WeeklyTemplate, error)
	Set(ctx context.Context, staffID int64, tpl domain.WeeklyTemplate) error
	Invalidate(ctx context.Context, staffID int64) error
}

func runServer(configPath string) error {
	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level, logger.Options{Pretty: cfg.Logs.Pretty})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer log.Close()

	log.Info("Starting SMC-SalonService...")
	log.Info("Configuration loaded from %s", configPath)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
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

	// Без коллектора обертка прозрачна и не собирает статистику пула
	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
	txManager := txmanager.NewTransactionManager(wrappedDB)

	// Кэш графиков работы
	var cache templateCache
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Warn("Redis %s unavailable, working hours are read from database: %v", cfg.Redis.Addr, err)
		} else {
			cache = schedule.NewCache(redisClient, cfg.Redis.TTL())
			log.Info("Working hours cache enabled (addr=%s, ttl=%s)", cfg.Redis.Addr, cfg.Redis.TTL())
		}
	}

	// Инициализируем репозитории
	staffRepository := staffRepo.NewRepository(wrappedDB)
	catalogRepository := catalogRepo.NewRepository(wrappedDB)

	var (
		appointmentRepository appointmentStore
		customerRepository    customersService.CustomerRepository
	)

	// Клиенты и записи живут либо в PostgreSQL, либо в удаленном API салона
	salonClient := salonapi.NewClient(
		cfg.SalonAPI.URL,
		cfg.SalonAPI.ServiceUserID,
		time.Duration(cfg.SalonAPI.Timeout)*time.Second,
		log,
	)
	switch environment.Detect(context.Background(), cfg.SalonAPI, salonClient, log) {
	case environment.KindRemote:
		appointmentRepository = salonapi.NewAppointmentRepository(salonClient)
		customerRepository = salonapi.NewCustomerRepository(salonClient)
	default:
		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		customerRepository = customerRepo.NewRepository(wrappedDB)
	}

	// Параметры сетки календаря
	settings, err := calendar.NewSettings(
		cfg.Calendar.SlotStart,
		cfg.Calendar.SlotEnd,
		cfg.Calendar.SlotStepMinutes,
		cfg.Calendar.MatchMode,
		cfg.Calendar.PreviewLimit,
		cfg.Calendar.NarrowPreviewLimit,
		cfg.Calendar.Location(),
	)
	if err != nil {
		log.Fatal("Invalid calendar settings: %v", err)
	}

	// Инициализируем сервисы
	customerSvc := customersService.NewService(customerRepository, log)
	staffSvc := staffService.NewService(staffRepository, cache, log)
	workingHoursSvc := workingHoursService.NewService(staffRepository, staffRepository, cache, txManager, log)
	catalogSvc := catalogService.NewService(catalogRepository, appointmentRepository, log)
	appointmentSvc := appointmentsService.NewService(appointmentRepository, log)

	// Инициализируем use cases
	getCalendarUseCase := getCalendarUC.NewUseCase(
		appointmentRepository,
		workingHoursSvc,
		settings,
		metricsCollector,
		log,
	)
	listAppointmentsUseCase := listAppointmentsUC.NewUseCase(appointmentRepository, settings, log)
	exportAppointmentsUseCase := exportAppointmentsUC.NewUseCase(listAppointmentsUseCase, log)
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		customerRepository,
		staffRepository,
		catalogRepository,
		workingHoursSvc,
		txManager,
		settings,
		log,
	)
	adjustPricesUseCase := adjustPricesUC.NewUseCase(catalogRepository, txManager, log)

	// Инициализируем handlers
	getCalendar := getCalendarHandler.NewHandler(getCalendarUseCase, log)
	listAppointments := listAppointmentsHandler.NewHandler(listAppointmentsUseCase, log)
	exportAppointments := exportAppointmentsHandler.NewHandler(exportAppointmentsUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	adjustPrices := adjustPricesHandler.NewHandler(adjustPricesUseCase, log)
	appointments := appointmentsHandler.NewHandler(appointmentSvc, log)
	customers := customersHandler.NewHandler(customerSvc, log)
	staff := staffHandler.NewHandler(staffSvc, log)
	workingHours := workingHoursHandler.NewHandler(workingHoursSvc, log)
	services := servicesHandler.NewHandler(catalogSvc, log)
	categories := categoriesHandler.NewHandler(catalogSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Календарь ---
	protected.HandleFunc("/calendar", getCalendar.Handle).Methods(http.MethodGet)

	// --- Записи ---
	// Маршруты без {id} регистрируются раньше, иначе "export" попадет в {id}
	protected.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/export", exportAppointments.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{id:[0-9]+}", appointments.Get).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{id:[0-9]+}/status", appointments.UpdateStatus).Methods(http.MethodPatch)
	protected.HandleFunc("/appointments/{id:[0-9]+}", appointments.Delete).Methods(http.MethodDelete)

	// --- Клиенты ---
	protected.HandleFunc("/customers", customers.List).Methods(http.MethodGet)
	protected.HandleFunc("/customers", customers.Create).Methods(http.MethodPost)
	protected.HandleFunc("/customers/{id:[0-9]+}", customers.Get).Methods(http.MethodGet)
	protected.HandleFunc("/customers/{id:[0-9]+}", customers.Update).Methods(http.MethodPut)
	protected.HandleFunc("/customers/{id:[0-9]+}", customers.Delete).Methods(http.MethodDelete)

	// --- Сотрудники и графики ---
	protected.HandleFunc("/staff", staff.List).Methods(http.MethodGet)
	protected.HandleFunc("/staff", staff.Create).Methods(http.MethodPost)
	protected.HandleFunc("/staff/{id:[0-9]+}", staff.Get).Methods(http.MethodGet)
	protected.HandleFunc("/staff/{id:[0-9]+}", staff.Update).Methods(http.MethodPut)
	protected.HandleFunc("/staff/{id:[0-9]+}", staff.Delete).Methods(http.MethodDelete)
	protected.HandleFunc("/staff/{id:[0-9]+}/working-hours", workingHours.Get).Methods(http.MethodGet)
	protected.HandleFunc("/staff/{id:[0-9]+}/working-hours", workingHours.Put).Methods(http.MethodPut)
	protected.HandleFunc("/staff/{id:[0-9]+}/working-hours", workingHours.Reset).Methods(http.MethodDelete)

	// --- Каталог ---
	protected.HandleFunc("/services", services.List).Methods(http.MethodGet)
	protected.HandleFunc("/services", services.Create).Methods(http.MethodPost)
	protected.HandleFunc("/services/price-adjustments", adjustPrices.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/services/{id:[0-9]+}", services.Update).Methods(http.MethodPut)
	protected.HandleFunc("/services/{id:[0-9]+}", services.Delete).Methods(http.MethodDelete)
	protected.HandleFunc("/categories", categories.List).Methods(http.MethodGet)
	protected.HandleFunc("/categories", categories.Create).Methods(http.MethodPost)
	protected.HandleFunc("/categories/{id:[0-9]+}", categories.Update).Methods(http.MethodPut)
	protected.HandleFunc("/categories/{id:[0-9]+}", categories.Delete).Methods(http.MethodDelete)

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
		return err
	}

	log.Info("Server stopped")
	return nil
}
