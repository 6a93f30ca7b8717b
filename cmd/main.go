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

	bookSessionHandler "github.com/m04kA/SMC-CoachingService/internal/api/handlers/book_session"
	chatHandler "github.com/m04kA/SMC-CoachingService/internal/api/handlers/chat"
	chatHistoryHandler "github.com/m04kA/SMC-CoachingService/internal/api/handlers/chat_history"
	createSlotHandler "github.com/m04kA/SMC-CoachingService/internal/api/handlers/create_slot"
	generateSlotsHandler "github.com/m04kA/SMC-CoachingService/internal/api/handlers/generate_slots"
	getDashboardHandler "github.com/m04kA/SMC-CoachingService/internal/api/handlers/get_dashboard"
	getSessionHandler "github.com/m04kA/SMC-CoachingService/internal/api/handlers/get_session"
	listSlotsHandler "github.com/m04kA/SMC-CoachingService/internal/api/handlers/list_slots"
	loginHandler "github.com/m04kA/SMC-CoachingService/internal/api/handlers/login"
	searchSessionsHandler "github.com/m04kA/SMC-CoachingService/internal/api/handlers/search_sessions"
	searchUsersHandler "github.com/m04kA/SMC-CoachingService/internal/api/handlers/search_users"
	signupHandler "github.com/m04kA/SMC-CoachingService/internal/api/handlers/signup"
	updateNotesHandler "github.com/m04kA/SMC-CoachingService/internal/api/handlers/update_notes"
	"github.com/m04kA/SMC-CoachingService/internal/api/middleware"
	"github.com/m04kA/SMC-CoachingService/internal/config"
	chatRepo "github.com/m04kA/SMC-CoachingService/internal/infra/storage/chat"
	"github.com/m04kA/SMC-CoachingService/internal/infra/storage/migrations"
	sessionRepo "github.com/m04kA/SMC-CoachingService/internal/infra/storage/session"
	slotRepo "github.com/m04kA/SMC-CoachingService/internal/infra/storage/slot"
	userRepo "github.com/m04kA/SMC-CoachingService/internal/infra/storage/user"
	"github.com/m04kA/SMC-CoachingService/internal/integrations/ollama"
	sessionsService "github.com/m04kA/SMC-CoachingService/internal/service/sessions"
	slotsService "github.com/m04kA/SMC-CoachingService/internal/service/slots"
	usersService "github.com/m04kA/SMC-CoachingService/internal/service/users"
	bookSessionUC "github.com/m04kA/SMC-CoachingService/internal/usecase/book_session"
	chatReplyUC "github.com/m04kA/SMC-CoachingService/internal/usecase/chat_reply"
	generateSlotsUC "github.com/m04kA/SMC-CoachingService/internal/usecase/generate_slots"
	getDashboardUC "github.com/m04kA/SMC-CoachingService/internal/usecase/get_dashboard"
	"github.com/m04kA/SMC-CoachingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CoachingService/pkg/jwtauth"
	"github.com/m04kA/SMC-CoachingService/pkg/logger"
	"github.com/m04kA/SMC-CoachingService/pkg/metrics"
	"github.com/m04kA/SMC-CoachingService/pkg/txmanager"
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

	log.Info("Starting SMC-CoachingService...")
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

	if cfg.Database.AutoMigrate {
		migrator, err := migrations.NewMigrator(db, log)
		if err != nil {
			log.Fatal("Failed to init migrator: %v", err)
		}
		if err := migrator.Up(context.Background()); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
	}

	// Репозитории работают через обёртку метрик или напрямую через *sql.DB
	var (
		executor  dbmetrics.DBExecutor = db
		txManager                      = txmanager.NewFromSQL(db)
	)
	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		executor = wrappedDB
		txManager = txmanager.NewTransactionManager(wrappedDB)
		log.Info("Database metrics collection started")
	}

	slotRepository := slotRepo.NewRepository(executor)
	sessionRepository := sessionRepo.NewRepository(executor)
	userRepository := userRepo.NewRepository(executor)
	chatRepository := chatRepo.NewRepository(executor)

	// Токены доступа
	tokens, err := jwtauth.NewManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL(), cfg.Auth.Issuer)
	if err != nil {
		log.Fatal("Failed to init token manager: %v", err)
	}

	// Интеграция с LLM
	assistant := ollama.NewClient(
		cfg.Chatbot.URL,
		cfg.Chatbot.Model,
		time.Duration(cfg.Chatbot.Timeout)*time.Second,
		log,
	)
	log.Info("Chatbot client initialized (url=%s, model=%s, timeout=%ds)",
		cfg.Chatbot.URL, cfg.Chatbot.Model, cfg.Chatbot.Timeout)

	// Инициализируем сервисы
	userSvc := usersService.NewService(userRepository, tokens, log)
	slotSvc := slotsService.NewService(slotRepository, userRepository, log)
	sessionSvc := sessionsService.NewService(sessionRepository, userRepository, log)

	// Инициализируем use cases
	bookSessionUseCase := bookSessionUC.NewUseCase(
		slotRepository,
		sessionRepository,
		txManager,
		metricsCollector,
		log,
	)
	generateSlotsUseCase := generateSlotsUC.NewUseCase(
		slotRepository,
		userRepository,
		txManager,
		metricsCollector,
		log,
	)
	getDashboardUseCase := getDashboardUC.NewUseCase(userRepository, sessionRepository, log)
	chatReplyUseCase := chatReplyUC.NewUseCase(chatRepository, assistant, log)

	// Инициализируем handlers
	signup := signupHandler.NewHandler(userSvc, log)
	login := loginHandler.NewHandler(userSvc, log)
	listSlots := listSlotsHandler.NewHandler(slotSvc, log)
	createSlot := createSlotHandler.NewHandler(slotSvc, log)
	generateSlots := generateSlotsHandler.NewHandler(generateSlotsUseCase, log)
	bookSession := bookSessionHandler.NewHandler(bookSessionUseCase, log)
	searchSessions := searchSessionsHandler.NewHandler(sessionSvc, log)
	getSession := getSessionHandler.NewHandler(sessionSvc, log)
	updateNotes := updateNotesHandler.NewHandler(sessionSvc, log)
	getDashboard := getDashboardHandler.NewHandler(getDashboardUseCase, log)
	searchUsers := searchUsersHandler.NewHandler(userSvc, log)
	chat := chatHandler.NewHandler(chatReplyUseCase, log)
	chatHistory := chatHistoryHandler.NewHandler(chatReplyUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		// Metrics endpoint (публичный, без аутентификации)
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	api.HandleFunc("/auth/signup", signup.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", login.Handle).Methods(http.MethodPost)

	// Календарь слотов на дату
	api.HandleFunc("/slots", listSlots.Handle).Methods(http.MethodGet)

	// Чат-бот
	api.HandleFunc("/chat", chat.Handle).Methods(http.MethodPost)
	api.HandleFunc("/chat/{conversationId}", chatHistory.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют Authorization: Bearer <token>)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(tokens))

	// --- Слоты (коуч и администратор) ---
	protected.HandleFunc("/slots", createSlot.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/slots/generate", generateSlots.Handle).Methods(http.MethodPost)

	// --- Сессии ---
	protected.HandleFunc("/sessions", bookSession.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/sessions", searchSessions.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/sessions/{sessionId}", getSession.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/sessions/{sessionId}/notes", updateNotes.Handle).Methods(http.MethodPut)

	protected.HandleFunc("/dashboard", getDashboard.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/users", searchUsers.Handle).Methods(http.MethodGet)

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
