package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"carkeep.kr/consumable-service/pkg/common"
	"carkeep.kr/consumable-service/pkg/db"
	carkeepHttp "carkeep.kr/consumable-service/pkg/http"
	"carkeep.kr/consumable-service/pkg/lifecycle"
	"carkeep.kr/consumable-service/pkg/odometer"
	"carkeep.kr/consumable-service/pkg/tires"
)

func main() {
	var err error

	err = godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file, copy .env.example to .env first if in development")
	}

	var dbInstance *db.DB
	dbType := os.Getenv(common.EnvKeyDBType)
	switch dbType {
	case "file":
		dbInstance = db.GetInstance(db.UseSqliteDialector())
	case "memory":
		dbInstance = db.GetInstance(db.UseMemorySqliteDialector())
	default:
		log.Fatal("Unknown CARKEEP_DB_TYPE: " + dbType)
	}

	httpHostPort := strings.TrimSpace(os.Getenv(common.EnvKeyHttpHostPort))

	var defaultRate float64
	var defaultBurst int64

	if defaultRate, err = strconv.ParseFloat(os.Getenv(common.EnvKeyDefaultRate), 64); err != nil {
		log.Fatal("Invalid CARKEEP_DEFAULT_RATE, or not set in .env, should be a float64 value")
	}

	if defaultBurst, err = strconv.ParseInt(os.Getenv(common.EnvKeyDefaultBurst), 10, 64); err != nil {
		log.Fatal("Invalid CARKEEP_DEFAULT_BURST, or not set in .env, should be an int value")
	}

	logger := common.GetLogger()

	odometerService := &odometer.Service{Db: *dbInstance}
	tireService := &tires.Service{Db: *dbInstance, Odometer: odometerService}

	engine := lifecycle.Engine{
		Db: *dbInstance,
	}
	engine.WithServices(lifecycle.ServiceOpts{
		Record: engine.GetIRecord(),
		Item:   engine.GetIItem(),
		Status: engine.GetIStatus(),
	})
	engine.WithCollaborators(lifecycle.CollaboratorOpts{
		Odometer: odometerService,
		Tires:    tireService,
	})

	if httpHostPort == "" {
		// fallback to default http port
		httpHostPort = ":1080"
	}

	logger.Info("Starting HTTP server on port " + httpHostPort)
	rs := &carkeepHttp.RestfulServer{
		Server:           gin.Default(),
		Engine:           &engine,
		Odometer:         odometerService,
		Tires:            tireService,
		RateLimiterStore: lifecycle.NewRateLimiterStore(rate.Limit(defaultRate), int(defaultBurst)),
	}
	rs.Setup()

	logger.Info("http server created with:",
		zap.String("default_limiter",
			fmt.Sprintf("{\"default_rate\": %v, \"default_burst\": %v}", defaultRate, defaultBurst)))

	logger.Info("Starting HTTP server on: " + httpHostPort)
	if err := rs.Server.Run(httpHostPort); err != nil {
		log.Fatalf("http server failed to serve: %v", err)
	}
}
