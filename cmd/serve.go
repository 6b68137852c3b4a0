package cmd

import (
	"context"
	"database/sql"
	"net"
	"strings"
	"time"

	"github.com/vibast-solutions/ms-go-tasks/app/controller"
	"github.com/vibast-solutions/ms-go-tasks/app/mail"
	"github.com/vibast-solutions/ms-go-tasks/app/middleware"
	"github.com/vibast-solutions/ms-go-tasks/app/repository"
	"github.com/vibast-solutions/ms-go-tasks/app/service"
	"github.com/vibast-solutions/ms-go-tasks/app/socket"
	"github.com/vibast-solutions/ms-go-tasks/app/storage"
	"github.com/vibast-solutions/ms-go-tasks/config"

	_ "github.com/go-sql-driver/mysql"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long:  `Start the HTTP server exposing the REST API, the WebSocket side-channel and the metrics endpoint.`,
	Run:   runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}
	if err := configureLogging(cfg); err != nil {
		logrus.WithError(err).Fatal("Failed to configure logging")
	}

	db, err := sql.Open("mysql", cfg.DSN())
	if err != nil {
		logrus.WithError(err).Fatal("Failed to connect to database")
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logrus.WithError(err).Fatal("Failed to ping database")
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	defer redisClient.Close()

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		logrus.WithError(err).Fatal("Failed to ping redis")
	}

	mailer, err := mail.NewSMTPMailer(cfg.Mail)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to initialize mailer")
	}

	userRepo := repository.NewUserRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	registry := storage.NewRedisRegistry(redisClient, cfg.JWTRefreshTokenTTL)

	authService := service.NewAuthService(userRepo, registry, mailer, cfg)
	taskService := service.NewTaskService(taskRepo)
	userService := service.NewUserService(userRepo)

	startHTTPServer(cfg, authService, taskService, userService)
}

func startHTTPServer(
	cfg *config.Config,
	authService *service.AuthService,
	taskService *service.TaskService,
	userService *service.UserService,
) {
	e := echo.New()
	defer e.Close()
	e.HideBanner = true
	e.Validator = controller.NewValidator()

	e.Use(echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogRemoteIP:  true,
		LogLatency:   true,
		LogUserAgent: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			fields := logrus.Fields{
				"remote_ip":  v.RemoteIP,
				"host":       v.Host,
				"method":     v.Method,
				"uri":        v.URI,
				"status":     v.Status,
				"latency":    v.Latency.String(),
				"latency_ns": v.Latency.Nanoseconds(),
				"user_agent": v.UserAgent,
			}
			entry := logrus.WithFields(fields)
			if v.Error != nil {
				entry = entry.WithError(v.Error)
			}
			entry.Info("http_request")
			return nil
		},
	}))
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())

	metrics := middleware.NewMetrics(prometheus.DefaultRegisterer)
	e.Use(metrics.Instrument)
	e.Use(middleware.Locale)

	authMiddleware := middleware.NewAuthMiddleware(authService, cfg.APIBase)
	e.Use(authMiddleware.Authenticate)

	defaultController := controller.NewDefaultController()
	authController := controller.NewAuthController(authService)
	taskController := controller.NewTaskController(taskService)
	userController := controller.NewUserController(userService)
	socketManager := socket.NewManager()

	e.GET("/", defaultController.Home)
	e.GET("/api/documentation", defaultController.Documentation)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/ws", socketManager.Handle)

	api := e.Group(strings.TrimSuffix(cfg.APIBase, "/"))

	auth := api.Group("/auth")
	auth.POST("/register", authController.Register)
	auth.POST("/login", authController.Login)
	auth.POST("/account/confirm", authController.ConfirmAccount)
	auth.POST("/password/forgot", authController.ForgotPassword)
	auth.POST("/password/reset", authController.ResetPassword)

	api.POST("/token/refresh", authController.RefreshToken)

	tasks := api.Group("/tasks")
	tasks.POST("/create", taskController.Create)
	tasks.GET("", taskController.All)
	tasks.GET("/:id", taskController.One)
	tasks.PUT("/:id", taskController.Update)
	tasks.DELETE("/:id", taskController.Destroy)

	users := api.Group("/users")
	users.GET("/me", userController.Me)
	users.GET("", userController.All)
	users.GET("/:id", userController.One)
	users.PUT("", userController.Update)
	users.PUT("/password", userController.UpdatePassword)
	users.DELETE("/:id", userController.Destroy)

	httpAddr := net.JoinHostPort(cfg.HTTPHost, cfg.HTTPPort)
	logrus.WithField("addr", httpAddr).Info("Starting HTTP server")
	if err := e.Start(httpAddr); err != nil {
		logrus.WithError(err).Fatal("Failed to start HTTP server")
	}
}

func configureLogging(cfg *config.Config) error {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.JSONFormatter{})
	return nil
}
