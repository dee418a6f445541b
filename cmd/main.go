package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-auth-web/docs"
	"github.com/sbilibin2017/gw-auth-web/internal/facades"
	"github.com/sbilibin2017/gw-auth-web/internal/flash"
	"github.com/sbilibin2017/gw-auth-web/internal/handlers"
	"github.com/sbilibin2017/gw-auth-web/internal/jwt"
	"github.com/sbilibin2017/gw-auth-web/internal/logger"
	"github.com/sbilibin2017/gw-auth-web/internal/middlewares"
	"github.com/sbilibin2017/gw-auth-web/internal/repositories"
	"github.com/sbilibin2017/gw-auth-web/internal/services"
	"github.com/sbilibin2017/gw-auth-web/internal/views"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

const serviceName = "gw-auth-web"

// config holds everything read from the dotenv file and the environment.
type config struct {
	AppHost  string
	AppPort  string
	LogLevel string

	BackendURL        string
	BackendLoginPath  string
	BackendSignupPath string
	BackendTimeout    time.Duration

	OAuthGoogleURL    string
	OAuthStateExp     time.Duration
	OAuthRequireState bool

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int

	SessionExp          time.Duration
	SessionCookieSecure bool

	JWTSecretKey string
	JWTExp       time.Duration

	KafkaBrokers []string
	KafkaTopic   string
}

// @title gw-auth-web
// @version 1.0.0
// @description Login and signup pages in front of the employee backend
// @host localhost:8080
// @BasePath /
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns the
// application, backend, OAuth, database, Redis, session, JWT and Kafka configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getInt := func(key, defaultValue string) (int, error) {
		v, err := strconv.Atoi(getEnv(key, defaultValue))
		if err != nil {
			return 0, fmt.Errorf("%s: %w", key, err)
		}
		return v, nil
	}
	getSeconds := func(key, defaultValue string) (time.Duration, error) {
		v, err := getInt(key, defaultValue)
		return time.Duration(v) * time.Second, err
	}
	getBool := func(key, defaultValue string) (bool, error) {
		v, err := strconv.ParseBool(getEnv(key, defaultValue))
		if err != nil {
			return false, fmt.Errorf("%s: %w", key, err)
		}
		return v, nil
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")

	// Backend config
	cfg.BackendURL = getEnv("BACKEND_URL", "http://127.0.0.1:8000")
	cfg.BackendLoginPath = getEnv("BACKEND_LOGIN_PATH", "/api/employee/login")
	cfg.BackendSignupPath = getEnv("BACKEND_SIGNUP_PATH", "/api/register")
	if cfg.BackendTimeout, err = getSeconds("BACKEND_TIMEOUT_SECOND", "10"); err != nil {
		return
	}

	// OAuth config
	cfg.OAuthGoogleURL = getEnv("OAUTH_GOOGLE_URL", "http://127.0.0.1:8000/auth/google/redirect")
	if cfg.OAuthStateExp, err = getSeconds("OAUTH_STATE_EXP_SECOND", "600"); err != nil {
		return
	}
	if cfg.OAuthRequireState, err = getBool("OAUTH_REQUIRE_STATE", "true"); err != nil {
		return
	}

	// PostgreSQL config
	cfg.PGHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PGUser = getEnv("POSTGRES_USER", "user")
	cfg.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PGDB = getEnv("POSTGRES_DB", "database")
	if cfg.PGPort, err = getInt("POSTGRES_PORT", "5432"); err != nil {
		return
	}
	if cfg.PGMaxOpenConns, err = getInt("POSTGRES_MAX_OPEN_CONNS", "16"); err != nil {
		return
	}
	if cfg.PGMaxIdleConns, err = getInt("POSTGRES_MAX_IDLE_CONNS", "8"); err != nil {
		return
	}

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisPort, err = getInt("REDIS_PORT", "6379"); err != nil {
		return
	}
	if cfg.RedisDB, err = getInt("REDIS_DB", "0"); err != nil {
		return
	}
	if cfg.RedisPoolSize, err = getInt("REDIS_POOL_SIZE", "10"); err != nil {
		return
	}
	if cfg.RedisMinIdleConns, err = getInt("REDIS_MIN_IDLE_CONNS", "2"); err != nil {
		return
	}

	// Session config
	if cfg.SessionExp, err = getSeconds("SESSION_EXP_SECOND", "2592000"); err != nil {
		return
	}
	if cfg.SessionCookieSecure, err = getBool("SESSION_COOKIE_SECURE", "false"); err != nil {
		return
	}

	// JWT config
	cfg.JWTSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if cfg.JWTExp, err = getSeconds("JWT_EXP_SECOND", "2592000"); err != nil {
		return
	}

	// Kafka config, disabled without brokers
	for _, b := range strings.Split(getEnv("KAFKA_BROKERS", ""), ",") {
		if b = strings.TrimSpace(b); b != "" {
			cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
		}
	}
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "auth-events")

	return
}

// run initializes the logger, database, Redis, Kafka writer and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel, serviceName); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infow("logger initialized", "level", cfg.LogLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PGUser, cfg.PGPassword, cfg.PGHost, cfg.PGPort, cfg.PGDB)
	logger.Log.Infow("connecting to PostgreSQL", "host", cfg.PGHost, "port", cfg.PGPort, "db", cfg.PGDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("postgres connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)

	eventRepo := repositories.NewAuthEventWriteRepository(db)
	if err := eventRepo.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("failed to create auth_events table: %w", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection error: %w", err)
	}
	defer rdb.Close()

	// Kafka writer
	var kafkaWriter services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		kw := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.KafkaBrokers...),
			Topic:                  cfg.KafkaTopic,
			Balancer:               &kafka.LeastBytes{},
			AllowAutoTopicCreation: true,
		}
		defer kw.Close()
		kafkaWriter = kw
		logger.Log.Infow("publishing auth events to Kafka", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	} else {
		logger.Log.Warnw("Kafka brokers not configured, auth events are only stored in PostgreSQL")
	}

	// Session cookie
	sessionJWT := jwt.New(
		jwt.WithSecretKey(cfg.JWTSecretKey),
		jwt.WithExpiration(cfg.JWTExp),
	)
	sessionCookie := middlewares.SessionCookie{
		Name:   sessionJWT.CookieName,
		MaxAge: cfg.SessionExp,
		Secure: cfg.SessionCookieSecure,
	}

	// Initialize repositories and facades
	sessionRepo := repositories.NewSessionRepository(rdb, cfg.SessionExp)
	stateRepo := repositories.NewOAuthStateRepository(rdb, cfg.OAuthStateExp)
	backend := facades.NewBackendHTTPFacade(
		&http.Client{Timeout: cfg.BackendTimeout},
		cfg.BackendURL, cfg.BackendLoginPath, cfg.BackendSignupPath,
	)

	// Initialize services
	recorder := services.NewAuthEventRecorder(eventRepo, kafkaWriter)
	authService := services.NewAuthService(backend, sessionRepo, recorder)
	oauthService := services.NewOAuthService(stateRepo, sessionRepo, recorder, cfg.OAuthGoogleURL, cfg.OAuthRequireState)

	// Initialize handlers
	renderer, err := views.New()
	if err != nil {
		return err
	}
	flasher := flash.New(cfg.SessionCookieSecure)

	loginPageHandler := handlers.NewLoginPageHandler(oauthService, flasher, renderer)
	loginHandler := handlers.NewLoginHandler(authService, flasher, renderer)
	googleLoginHandler := handlers.NewGoogleLoginHandler(oauthService, renderer)
	signupPageHandler := handlers.NewSignupPageHandler(flasher, renderer)
	signupHandler := handlers.NewSignupHandler(authService, flasher, renderer)
	homeHandler := handlers.NewHomeHandler(authService, flasher, renderer)
	logoutHandler := handlers.NewLogoutHandler(authService, flasher, sessionCookie)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	docs.SwaggerInfo.Host = fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	r.Group(func(r chi.Router) {
		r.Use(middlewares.SessionMiddleware(sessionJWT, sessionCookie))

		r.Get("/", homeHandler)
		r.Get("/home", homeHandler)
		r.Get("/login", loginPageHandler)
		r.Post("/login", loginHandler)
		r.Get("/login/google", googleLoginHandler)
		r.Post("/logout", logoutHandler)

		r.Group(func(r chi.Router) {
			r.Use(middlewares.GuestOnlyMiddleware(authService))
			r.Get("/signup", signupPageHandler)
		})
		r.Post("/signup", signupHandler)
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infow("HTTP server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Infow("shutdown signal received, stopping HTTP server")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Infow("HTTP server stopped gracefully")
	return nil
}
