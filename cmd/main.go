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

	createOrderHandler "github.com/m04kA/GH-BookingService/internal/api/handlers/create_order"
	getAdminBookingsHandler "github.com/m04kA/GH-BookingService/internal/api/handlers/get_admin_bookings"
	getAvailabilityHandler "github.com/m04kA/GH-BookingService/internal/api/handlers/get_availability"
	getAvailableFlatsHandler "github.com/m04kA/GH-BookingService/internal/api/handlers/get_available_flats"
	getBookingHandler "github.com/m04kA/GH-BookingService/internal/api/handlers/get_booking"
	getFlatStatusesHandler "github.com/m04kA/GH-BookingService/internal/api/handlers/get_flat_statuses"
	getNextFlatHandler "github.com/m04kA/GH-BookingService/internal/api/handlers/get_next_flat"
	getRoomsHandler "github.com/m04kA/GH-BookingService/internal/api/handlers/get_rooms"
	paymentWebhookHandler "github.com/m04kA/GH-BookingService/internal/api/handlers/payment_webhook"
	sendOTPHandler "github.com/m04kA/GH-BookingService/internal/api/handlers/send_otp"
	verifyOTPHandler "github.com/m04kA/GH-BookingService/internal/api/handlers/verify_otp"
	verifyPaymentHandler "github.com/m04kA/GH-BookingService/internal/api/handlers/verify_payment"
	"github.com/m04kA/GH-BookingService/internal/api/middleware"
	"github.com/m04kA/GH-BookingService/internal/config"
	"github.com/m04kA/GH-BookingService/internal/infra/otpstore"
	bookingRepo "github.com/m04kA/GH-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/GH-BookingService/internal/integrations/paymentgw"
	"github.com/m04kA/GH-BookingService/internal/notifier"
	availabilityService "github.com/m04kA/GH-BookingService/internal/service/availability"
	bookingsService "github.com/m04kA/GH-BookingService/internal/service/bookings"
	confirmPaymentUC "github.com/m04kA/GH-BookingService/internal/usecase/confirm_payment"
	createOrderUC "github.com/m04kA/GH-BookingService/internal/usecase/create_order"
	sendOTPUC "github.com/m04kA/GH-BookingService/internal/usecase/send_otp"
	verifyOTPUC "github.com/m04kA/GH-BookingService/internal/usecase/verify_otp"
	"github.com/m04kA/GH-BookingService/pkg/dbmetrics"
	"github.com/m04kA/GH-BookingService/pkg/logger"
	"github.com/m04kA/GH-BookingService/pkg/metrics"
	"github.com/m04kA/GH-BookingService/pkg/simpletxmanager"
	"github.com/m04kA/GH-BookingService/pkg/txmanager"
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

	log.Info("Starting GH-BookingService...")
	log.Info("Configuration loaded from config.toml")

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

	// Подключаемся к Redis (хранилище OTP-кодов)
	otpStore := otpstore.New(
		cfg.Redis,
		time.Duration(cfg.OTP.CodeTTLMinutes)*time.Minute,
		time.Duration(cfg.OTP.VerifiedTTLMinutes)*time.Minute,
	)
	defer otpStore.Close()

	if err := otpStore.Ping(context.Background()); err != nil {
		log.Fatal("Failed to ping redis: %v", err)
	}
	log.Info("Successfully connected to redis (addr=%s, db=%d)", cfg.Redis.Addr, cfg.Redis.DB)

	// Инициализируем почтовый клиент и клиент платёжного шлюза
	mailer := notifier.NewMailer(cfg.SMTP)
	log.Info("Mailer initialized (host=%s, from=%s)", cfg.SMTP.Host, cfg.SMTP.FromEmail)

	gateway := paymentgw.NewClient(
		cfg.Cashfree.BaseURL,
		cfg.Cashfree.ClientID,
		cfg.Cashfree.ClientSecret,
		cfg.Cashfree.APIVersion,
		time.Duration(cfg.Cashfree.Timeout)*time.Second,
		log,
	)
	log.Info("Payment gateway client initialized (base_url=%s, api_version=%s)",
		cfg.Cashfree.BaseURL, cfg.Cashfree.APIVersion)

	// Инициализируем репозитории (с метриками или без)
	var bookingRepository *bookingRepo.Repository

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	availabilitySvc := availabilityService.NewService(bookingRepository, log)
	bookingSvc := bookingsService.NewService(bookingRepository, log)

	// Инициализируем use cases
	createOrderUseCase := createOrderUC.NewUseCase(
		bookingRepository,
		gateway,
		otpStore,
		txMgr,
		cfg.Server.FrontendURL,
		cfg.Server.BackendURL,
		log,
	)

	confirmPaymentUseCase := confirmPaymentUC.NewUseCase(
		bookingRepository,
		gateway,
		mailer,
		log,
	)

	sendOTPUseCase := sendOTPUC.NewUseCase(otpStore, mailer, log)
	verifyOTPUseCase := verifyOTPUC.NewUseCase(otpStore, log)

	// Инициализируем handlers
	createOrder := createOrderHandler.NewHandler(createOrderUseCase, log)
	sendOTP := sendOTPHandler.NewHandler(sendOTPUseCase, log)
	verifyOTP := verifyOTPHandler.NewHandler(verifyOTPUseCase, log)
	paymentWebhook := paymentWebhookHandler.NewHandler(confirmPaymentUseCase, log)
	verifyPayment := verifyPaymentHandler.NewHandler(confirmPaymentUseCase, log)
	getRooms := getRoomsHandler.NewHandler(availabilitySvc, log)
	getAvailability := getAvailabilityHandler.NewHandler(availabilitySvc, log)
	getAvailableFlats := getAvailableFlatsHandler.NewHandler(availabilitySvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getAdminBookings := getAdminBookingsHandler.NewHandler(bookingSvc, log)
	getFlatStatuses := getFlatStatusesHandler.NewHandler(availabilitySvc, log)
	getNextFlat := getNextFlatHandler.NewHandler(availabilitySvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// --- Каталог и доступность ---
	api.HandleFunc("/rooms", getRooms.Handle).Methods(http.MethodGet)
	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/flats/available", getAvailableFlats.Handle).Methods(http.MethodGet)

	// --- OTP-подтверждение email ---
	api.HandleFunc("/otp/send", sendOTP.Handle).Methods(http.MethodPost)
	api.HandleFunc("/otp/verify", verifyOTP.Handle).Methods(http.MethodPost)

	// --- Заказы и платежи ---
	api.HandleFunc("/orders", createOrder.Handle).Methods(http.MethodPost)
	api.HandleFunc("/payments/webhook", paymentWebhook.Handle).Methods(http.MethodPost)
	api.HandleFunc("/payments/{orderId}/verify", verifyPayment.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{orderId}", getBooking.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (требуют X-Admin-Key header)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Admin.APIKey))

	// Список всех бронирований
	admin.HandleFunc("/bookings", getAdminBookings.Handle).Methods(http.MethodGet)

	// Занятость квартир
	admin.HandleFunc("/flats", getFlatStatuses.Handle).Methods(http.MethodGet)

	// Следующая свободная квартира
	admin.HandleFunc("/flats/next", getNextFlat.Handle).Methods(http.MethodGet)

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
