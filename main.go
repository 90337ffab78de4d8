package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/beka-birhanu/maze-sprint-api/api"
	api_i "github.com/beka-birhanu/maze-sprint-api/api/i"
	"github.com/beka-birhanu/maze-sprint-api/api/identity"
	metricsapi "github.com/beka-birhanu/maze-sprint-api/api/metrics"
	sprintapi "github.com/beka-birhanu/maze-sprint-api/api/sprint"
	"github.com/beka-birhanu/maze-sprint-api/config"
	"github.com/beka-birhanu/maze-sprint-api/infrastruture/leaderboard"
	"github.com/beka-birhanu/maze-sprint-api/infrastruture/repo"
	"github.com/beka-birhanu/maze-sprint-api/infrastruture/token"
	"github.com/beka-birhanu/maze-sprint-api/logging"
	"github.com/beka-birhanu/maze-sprint-api/metrics"
	"github.com/beka-birhanu/maze-sprint-api/service"
	"github.com/beka-birhanu/maze-sprint-api/service/i"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	goredis "github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Global variables for dependencies
var (
	mongoClient       *mongo.Client
	redisClient       *goredis.Client
	userRepo          i.UserRepo
	runRepo           i.RunRepo
	board             i.Leaderboard
	sprintMetrics     i.SprintMetrics
	sprintManager     i.SprintManager
	jwtTokenizer      i.Tokenizer
	authService       i.Authenticator
	authController    api_i.Controller
	sprintController  api_i.Controller
	metricsController api_i.Controller
	router            *api.Router
	appLogger         i.Logger
)

func initMongo(ctx context.Context) {
	uri := fmt.Sprintf("mongodb://%s:%s@%s:%v", config.Envs.DBUser, config.Envs.DBPassword, config.Envs.DBHost, config.Envs.DBPort)

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	mongoClient, err = mongo.Connect(ctx, clientOptions)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Failed to connect to MongoDB: %v", err))
		os.Exit(1)
	}
	if err = mongoClient.Ping(ctx, nil); err != nil {
		appLogger.Error(fmt.Sprintf("MongoDB ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to MongoDB")
}

func initRedis(ctx context.Context) {
	redisClient = goredis.NewClient(&goredis.Options{
		Addr:     fmt.Sprintf("%s:%d", config.Envs.RedisHost, config.Envs.RedisPort),
		Password: config.Envs.RedisPassword,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		appLogger.Error(fmt.Sprintf("Redis ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to Redis")
}

func initUserRepo(ctx context.Context, client *mongo.Client) {
	users := repo.NewUserRepo(client, config.Envs.DBName, "users")
	if err := users.EnsureIndexes(ctx); err != nil {
		appLogger.Error(fmt.Sprintf("Creating user indexes: %v", err))
		os.Exit(1)
	}
	userRepo = users
	appLogger.Info("User repository initialized")
}

func initRunRepo(ctx context.Context, client *mongo.Client) {
	runs := repo.NewRunRepo(client, config.Envs.DBName, "runs")
	if err := runs.EnsureIndexes(ctx); err != nil {
		appLogger.Error(fmt.Sprintf("Creating run indexes: %v", err))
		os.Exit(1)
	}
	runRepo = runs
	appLogger.Info("Run repository initialized")
}

func initLeaderboard() {
	var err error
	board, err = leaderboard.NewRedisLeaderboard(redisClient, "", config.Envs.LeaderboardTTL)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating leaderboard: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Leaderboard initialized")
}

func initSprintMetrics() {
	sprintMetrics = metrics.NewSprint(prometheus.DefaultRegisterer)
	appLogger.Info("Sprint metrics initialized")
}

func initSprintManager() {
	sprintLogger, err := logging.New("SPRINT", config.ColorCyan, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating sprint logger: %v", err))
		os.Exit(1)
	}

	sprintManager, err = service.NewSprintManager(&service.Config{
		Rows:        config.Envs.MazeRows,
		Cols:        config.Envs.MazeCols,
		RunRepo:     runRepo,
		Leaderboard: board,
		Metrics:     sprintMetrics,
		Logger:      sprintLogger,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating sprint manager: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Sprint manager initialized")
}

func initJWTTokenizer() {
	jwtTokenizer = token.NewJwtService(config.Envs.JWTSecret, config.Envs.JWTIssuer)
	appLogger.Info("JWT Tokenizer initialized")
}

func initAuthService() {
	var err error
	authService, err = service.NewAuthService(userRepo, jwtTokenizer)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating auth service: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Auth service initialized")
}

func initAuthController() {
	authController = identity.NewIdentityServer(authService)
	appLogger.Info("Auth controller initialized")
}

func initSprintController() {
	var err error
	sprintController, err = sprintapi.NewSprintController(sprintManager, runRepo, board)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating sprint controller: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Sprint controller initialized")
}

func initMetricsController() {
	metricsController = metricsapi.NewMetricsController()
	appLogger.Info("Metrics controller initialized")
}

func initRouter(t i.Tokenizer) {
	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:                 "/api",
		Controllers:             []api_i.Controller{authController, sprintController, metricsController},
		AuthorizationMiddleware: identity.Authoriz(t),
	})
	appLogger.Info("Router initialized")
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel() // Ensure the context is always canceled

	// Initialize dependencies
	appLogger, _ = logging.New("APP", config.ColorGreen, os.Stdout)

	gin.SetMode(config.Envs.GinMode)

	initMongo(ctx)
	defer func() {
		_ = mongoClient.Disconnect(ctx)
	}()

	initRedis(ctx)
	defer func() {
		_ = redisClient.Close()
	}()

	initUserRepo(ctx, mongoClient)
	initRunRepo(ctx, mongoClient)
	initLeaderboard()
	initSprintMetrics()
	initSprintManager()
	initJWTTokenizer()
	initAuthService()
	initAuthController()
	initSprintController()
	initMetricsController()
	initRouter(jwtTokenizer)

	// Run HTTP server
	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
}
