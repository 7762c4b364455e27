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

	cancelBookingHandler "github.com/m04kA/GCS-TeeTimeService/internal/api/handlers/cancel_booking"
	clearCourseConditionHandler "github.com/m04kA/GCS-TeeTimeService/internal/api/handlers/clear_course_condition"
	createBookingHandler "github.com/m04kA/GCS-TeeTimeService/internal/api/handlers/create_booking"
	getAvailableSlotsHandler "github.com/m04kA/GCS-TeeTimeService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/GCS-TeeTimeService/internal/api/handlers/get_booking"
	getCourseSettingsHandler "github.com/m04kA/GCS-TeeTimeService/internal/api/handlers/get_course_settings"
	getDaySheetHandler "github.com/m04kA/GCS-TeeTimeService/internal/api/handlers/get_day_sheet"
	getUserBookingsHandler "github.com/m04kA/GCS-TeeTimeService/internal/api/handlers/get_user_bookings"
	paymentEventsHandler "github.com/m04kA/GCS-TeeTimeService/internal/api/handlers/payment_events"
	setCourseConditionHandler "github.com/m04kA/GCS-TeeTimeService/internal/api/handlers/set_course_condition"
	updateBookingHandler "github.com/m04kA/GCS-TeeTimeService/internal/api/handlers/update_booking"
	updateBookingStatusHandler "github.com/m04kA/GCS-TeeTimeService/internal/api/handlers/update_booking_status"
	updateCourseSettingsHandler "github.com/m04kA/GCS-TeeTimeService/internal/api/handlers/update_course_settings"
	"github.com/m04kA/GCS-TeeTimeService/internal/api/middleware"
	"github.com/m04kA/GCS-TeeTimeService/internal/config"
	bookingRepo "github.com/m04kA/GCS-TeeTimeService/internal/infra/storage/booking"
	conditionRepo "github.com/m04kA/GCS-TeeTimeService/internal/infra/storage/condition"
	membershipRepo "github.com/m04kA/GCS-TeeTimeService/internal/infra/storage/membership"
	settingsRepo "github.com/m04kA/GCS-TeeTimeService/internal/infra/storage/settings"
	notificationsClient "github.com/m04kA/GCS-TeeTimeService/internal/integrations/notifications"
	paymentsClient "github.com/m04kA/GCS-TeeTimeService/internal/integrations/payments"
	bookingsService "github.com/m04kA/GCS-TeeTimeService/internal/service/bookings"
	courseService "github.com/m04kA/GCS-TeeTimeService/internal/service/course"
	createBookingUC "github.com/m04kA/GCS-TeeTimeService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/GCS-TeeTimeService/internal/usecase/get_available_slots"
	"github.com/m04kA/GCS-TeeTimeService/pkg/dbmetrics"
	"github.com/m04kA/GCS-TeeTimeService/pkg/logger"
	"github.com/m04kA/GCS-TeeTimeService/pkg/metrics"
	"github.com/m04kA/GCS-TeeTimeService/pkg/txmanager"
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

	log.Info("Starting GCS-TeeTimeService...")
	log.Info("Configuration loaded from config.toml")

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

	// Инициализируем интеграционных клиентов
	payClient := paymentsClient.NewClient(
		cfg.Payments.URL,
		time.Duration(cfg.Payments.Timeout)*time.Second,
		log,
	)
	notifyClient := notificationsClient.NewClient(
		cfg.Notifications.URL,
		time.Duration(cfg.Notifications.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (Payments=%s timeout=%ds, Notifications=%s timeout=%ds)",
		cfg.Payments.URL, cfg.Payments.Timeout, cfg.Notifications.URL, cfg.Notifications.Timeout)

	// Инициализируем репозитории и transaction manager (с метриками или без)
	var (
		bookingRepository    *bookingRepo.Repository
		settingsRepository   *settingsRepo.Repository
		conditionRepository  *conditionRepo.Repository
		membershipRepository *membershipRepo.Repository
		txMgr                *txmanager.TransactionManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		settingsRepository = settingsRepo.NewRepository(wrappedDB)
		conditionRepository = conditionRepo.NewRepository(wrappedDB)
		membershipRepository = membershipRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		settingsRepository = settingsRepo.NewRepository(db)
		conditionRepository = conditionRepo.NewRepository(db)
		membershipRepository = membershipRepo.NewRepository(db)
		txMgr = txmanager.NewTransactionManager(txmanager.WrapDB(db))
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		settingsRepository,
		txMgr,
		payClient,
		notifyClient,
		&bookingsService.RealTimeProvider{},
		log,
	)
	courseSvc := courseService.NewService(
		settingsRepository,
		conditionRepository,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		settingsRepository,
		conditionRepository,
		membershipRepository,
		payClient,
		notifyClient,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		settingsRepository,
		conditionRepository,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	updateBooking := updateBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getDaySheet := getDaySheetHandler.NewHandler(bookingSvc, log)
	getCourseSettings := getCourseSettingsHandler.NewHandler(courseSvc, log)
	updateCourseSettings := updateCourseSettingsHandler.NewHandler(courseSvc, log)
	setCourseCondition := setCourseConditionHandler.NewHandler(courseSvc, log)
	clearCourseCondition := clearCourseConditionHandler.NewHandler(courseSvc, log)
	paymentEvents := paymentEventsHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Внутренние маршруты (webhook платёжного сервиса, закрыты на уровне сети)
	r.HandleFunc("/internal/payment-events", paymentEvents.Handle).Methods(http.MethodPost)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Сетка ти-таймов с доступностью на дату
	api.HandleFunc("/tee-times", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Текущие настройки поля (расписание и тарифы)
	api.HandleFunc("/course/settings", getCourseSettings.Handle).Methods(http.MethodGet)

	// Создание бронирования: доступно и гостям (без X-User-ID)
	api.Handle("/bookings",
		middleware.OptionalAuth(http.HandlerFunc(createBooking.Handle))).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Изменение состава бронирования
	protected.HandleFunc("/bookings/{bookingId}", updateBooking.Handle).Methods(http.MethodPatch)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// История бронирований пользователя
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// --- Управление полем (для персонала) ---
	staff := protected.PathPrefix("").Subrouter()
	staff.Use(middleware.StaffOnly)

	// Переход статуса бронирования (completed, no_show)
	staff.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// Лист дня: все бронирования на дату
	staff.HandleFunc("/course/days/{date}/bookings", getDaySheet.Handle).Methods(http.MethodGet)

	// Обновление настроек поля
	staff.HandleFunc("/course/settings", updateCourseSettings.Handle).Methods(http.MethodPut)

	// Состояние поля на дату: установка и снятие override'а
	staff.HandleFunc("/course/conditions/{date}", setCourseCondition.Handle).Methods(http.MethodPut)
	staff.HandleFunc("/course/conditions/{date}", clearCourseCondition.Handle).Methods(http.MethodDelete)

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
