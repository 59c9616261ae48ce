package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"laundry/cmd"
	httpin "laundry/internal/adapters/in/http"
	"laundry/internal/adapters/out/postgres/customerrepo"
	"laundry/internal/adapters/out/postgres/orderrepo"
	"laundry/internal/adapters/out/postgres/paymentrepo"
	"laundry/internal/adapters/out/postgres/servicerepo"
	"laundry/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)

	root, err := cmd.NewCompositionRoot(configs, gormDB)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	jobManager := startJobs(&root, configs)
	defer jobManager.StopAll()

	startWebServer(&root, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:              goDotEnvVariable("HTTP_PORT"),
		DBHost:                goDotEnvVariable("DB_HOST"),
		DBPort:                goDotEnvVariable("DB_PORT"),
		DBUser:                goDotEnvVariable("DB_USER"),
		DBPassword:            goDotEnvVariable("DB_PASSWORD"),
		DBName:                goDotEnvVariable("DB_NAME"),
		DBSslMode:             goDotEnvVariable("DB_SSLMODE"),
		DefaultUnitPriceMinor: goDotEnvInt64("DEFAULT_UNIT_PRICE_MINOR"),
		PaymentExpiryHours:    int(goDotEnvInt64("PAYMENT_EXPIRY_HOURS")),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func goDotEnvInt64(key string) int64 {
	raw := goDotEnvVariable(key)
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		log.Fatalf("Invalid integer for %s: %q", key, raw)
	}
	return value
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.LineItemDTO{},
		&paymentrepo.PaymentDTO{},
		&customerrepo.CustomerDTO{},
		&servicerepo.ServiceDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

func startJobs(root *cmd.CompositionRoot, configs cmd.Config) *jobs.JobManager {
	expireHandler := root.CreateExpirePaymentsCommandHandler()
	window := time.Duration(configs.PaymentExpiryHours) * time.Hour

	jobManager := jobs.NewJobManager(
		expireHandler,
		window,
		slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	)

	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}

	return jobManager
}

func startWebServer(root *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpin.NewServer(
		root.CreateCreateOrderCommandHandler(),
		root.CreateUpdateOrderCommandHandler(),
		root.CreateUpdateOrderStatusCommandHandler(),
		root.CreateRecordPaymentCommandHandler(),
		root.CreateDeleteOrderCommandHandler(),
		root.CreateGetOrderQueryHandler(),
		root.CreateListOrdersQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
