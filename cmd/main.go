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

	autoAssignBookingHandler "github.com/m04kA/SMC-TrainingService/internal/api/handlers/auto_assign_booking"
	cancelSlotHandler "github.com/m04kA/SMC-TrainingService/internal/api/handlers/cancel_slot"
	completeSlotHandler "github.com/m04kA/SMC-TrainingService/internal/api/handlers/complete_slot"
	createBookingHandler "github.com/m04kA/SMC-TrainingService/internal/api/handlers/create_booking"
	createTrainerHandler "github.com/m04kA/SMC-TrainingService/internal/api/handlers/create_trainer"
	getAvailableSlotsHandler "github.com/m04kA/SMC-TrainingService/internal/api/handlers/get_available_slots"
	getMinDateHandler "github.com/m04kA/SMC-TrainingService/internal/api/handlers/get_min_date"
	getOnboardingSlotsHandler "github.com/m04kA/SMC-TrainingService/internal/api/handlers/get_onboarding_slots"
	getSlotHandler "github.com/m04kA/SMC-TrainingService/internal/api/handlers/get_slot"
	getTrainerHandler "github.com/m04kA/SMC-TrainingService/internal/api/handlers/get_trainer"
	getTrainerSlotsHandler "github.com/m04kA/SMC-TrainingService/internal/api/handlers/get_trainer_slots"
	listTrainersHandler "github.com/m04kA/SMC-TrainingService/internal/api/handlers/list_trainers"
	updateTrainerStatusHandler "github.com/m04kA/SMC-TrainingService/internal/api/handlers/update_trainer_status"
	"github.com/m04kA/SMC-TrainingService/internal/api/middleware"
	"github.com/m04kA/SMC-TrainingService/internal/config"
	slotRepo "github.com/m04kA/SMC-TrainingService/internal/infra/storage/slot"
	trainerRepo "github.com/m04kA/SMC-TrainingService/internal/infra/storage/trainer"
	holidayServiceClient "github.com/m04kA/SMC-TrainingService/internal/integrations/holidayservice"
	onboardingServiceClient "github.com/m04kA/SMC-TrainingService/internal/integrations/onboardingservice"
	assignmentService "github.com/m04kA/SMC-TrainingService/internal/service/assignment"
	slaService "github.com/m04kA/SMC-TrainingService/internal/service/sla"
	slotsService "github.com/m04kA/SMC-TrainingService/internal/service/slots"
	trainersService "github.com/m04kA/SMC-TrainingService/internal/service/trainers"
	autoAssignBookingUC "github.com/m04kA/SMC-TrainingService/internal/usecase/auto_assign_booking"
	createBookingUC "github.com/m04kA/SMC-TrainingService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-TrainingService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-TrainingService/migrations"
	"github.com/m04kA/SMC-TrainingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-TrainingService/pkg/logger"
	"github.com/m04kA/SMC-TrainingService/pkg/metrics"
	"github.com/m04kA/SMC-TrainingService/pkg/txmanager"
)

func main() {
	configPath := "config.toml"
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		configPath = p
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

	log.Info("Starting SMC-TrainingService...")
	log.Info("Configuration loaded from %s", configPath)

	slaTable, err := cfg.SLATable()
	if err != nil {
		log.Fatal("Invalid SLA configuration: %v", err)
	}

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

	// Применяем миграции
	if cfg.Database.AutoMigrate {
		if err := migrations.Up(context.Background(), db); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
		version, err := migrations.Version(context.Background(), db)
		if err != nil {
			log.Warn("Failed to read schema version: %v", err)
		}
		log.Info("Migrations applied, schema version=%d", version)
	}

	// Без метрик обёртка работает как прозрачный прокси
	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем репозитории
	trainerRepository := trainerRepo.NewRepository(wrappedDB)
	slotRepository := slotRepo.NewRepository(wrappedDB)

	// Инициализируем интеграционных клиентов
	onboardingClient := onboardingServiceClient.NewClient(
		cfg.OnboardingService.URL,
		time.Duration(cfg.OnboardingService.Timeout)*time.Second,
		log,
	)
	holidayClient := holidayServiceClient.NewClient(
		cfg.HolidayService.URL,
		time.Duration(cfg.HolidayService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (OnboardingService=%s timeout=%ds, HolidayService=%s timeout=%ds)",
		cfg.OnboardingService.URL, cfg.OnboardingService.Timeout, cfg.HolidayService.URL, cfg.HolidayService.Timeout)

	// Кеш праздников в Redis (опционально)
	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			log.Warn("Redis is unavailable at %s, holiday cache disabled: %v", cfg.Redis.Addr, err)
			redisClient = nil
		} else {
			log.Info("Connected to Redis at %s", cfg.Redis.Addr)
		}
		cancel()
	}
	holidays := holidayServiceClient.NewCachedProvider(redisClient, holidayClient, cfg.HolidayService.CacheTTLDuration(), log)

	// Инициализируем сервисы
	trainerSvc := trainersService.NewService(trainerRepository, log)
	slotSvc := slotsService.NewService(slotRepository, txMgr, log)
	slaSvc := slaService.NewService(slaTable, holidays, cfg.HolidayService.Region, log)
	selectors := assignmentService.NewRegistry(slotRepository, log, cfg.DefaultStrategy())
	log.Info("Auto-assign default strategy: %s", selectors.Default())

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		trainerSvc,
		slotRepository,
		log,
	)

	createBookingUseCase := createBookingUC.NewUseCase(
		slotRepository,
		trainerRepository,
		onboardingClient,
		txMgr,
		metricsCollector,
		log,
	)

	autoAssignBookingUseCase := autoAssignBookingUC.NewUseCase(
		slotRepository,
		trainerSvc,
		selectors,
		onboardingClient,
		txMgr,
		metricsCollector,
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	autoAssignBooking := autoAssignBookingHandler.NewHandler(autoAssignBookingUseCase, log)
	getSlot := getSlotHandler.NewHandler(slotSvc, log)
	cancelSlot := cancelSlotHandler.NewHandler(slotSvc, log)
	completeSlot := completeSlotHandler.NewHandler(slotSvc, log)
	getOnboardingSlots := getOnboardingSlotsHandler.NewHandler(slotSvc, log)
	getTrainerSlots := getTrainerSlotsHandler.NewHandler(slotSvc, log)
	createTrainer := createTrainerHandler.NewHandler(trainerSvc, log)
	listTrainers := listTrainersHandler.NewHandler(trainerSvc, log)
	getTrainer := getTrainerHandler.NewHandler(trainerSvc, log)
	updateTrainerStatus := updateTrainerStatusHandler.NewHandler(trainerSvc, log)
	getMinDate := getMinDateHandler.NewHandler(slaSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Свободные слоты ---
	api.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/available-slots/range", getAvailableSlots.HandleRange).Methods(http.MethodGet)

	// --- Бронирования ---
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/auto-assign", autoAssignBooking.Handle).Methods(http.MethodPost)

	// --- Жизненный цикл слотов ---
	api.HandleFunc("/slots/{slotId}", getSlot.Handle).Methods(http.MethodGet)
	api.HandleFunc("/slots/{slotId}/cancel", cancelSlot.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/slots/{slotId}/complete", completeSlot.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/onboardings/{onboardingId}/slots", getOnboardingSlots.Handle).Methods(http.MethodGet)

	// --- Справочник тренеров ---
	api.HandleFunc("/trainers", createTrainer.Handle).Methods(http.MethodPost)
	api.HandleFunc("/trainers", listTrainers.Handle).Methods(http.MethodGet)
	api.HandleFunc("/trainers/{trainerId}", getTrainer.Handle).Methods(http.MethodGet)
	api.HandleFunc("/trainers/{trainerId}/status", updateTrainerStatus.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/trainers/{trainerId}/slots", getTrainerSlots.Handle).Methods(http.MethodGet)

	// --- SLA ---
	api.HandleFunc("/milestones/{milestone}/min-date", getMinDate.Handle).Methods(http.MethodGet)

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
