package server

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/sirupsen/logrus"

	"user-directory-api/internal/adapters/objectstore"
	"user-directory-api/internal/config"
	"user-directory-api/internal/handlers"
	"user-directory-api/internal/models"
	"user-directory-api/internal/repositories"
	"user-directory-api/internal/repositories/dynamo"
	"user-directory-api/internal/repositories/memory"
	"user-directory-api/internal/services"
)

// StorePinger reports record-store reachability for readiness probes
type StorePinger interface {
	Ping(ctx context.Context) error
}

// Container holds all application dependencies. It is constructed once per
// process and reused across warm invocations; nothing in it carries
// per-invocation state.
type Container struct {
	Config      *config.Config
	UserService services.UserService
	Router      *handlers.Router
	ObjectStore *objectstore.Client
	StorePinger StorePinger
}

// NewContainer creates the production dependency container: AWS clients,
// DynamoDB-backed repository, services and router.
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	configureLogging(cfg)

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Table.Region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	userRepo := dynamo.NewUserRepository(dynamodb.NewFromConfig(awsCfg), cfg.Table.Name)
	store := objectstore.NewClient(s3.NewFromConfig(awsCfg), cfg.Bucket.Name, cfg.Bucket.Region)

	return build(cfg, userRepo, store, userRepo), nil
}

// NewContainerWithRepository creates a container over an injected repository,
// used by tests and by the local server mode without AWS credentials.
func NewContainerWithRepository(cfg *config.Config, userRepo repositories.UserRepository, store *objectstore.Client) *Container {
	configureLogging(cfg)

	var pinger StorePinger
	if p, ok := userRepo.(StorePinger); ok {
		pinger = p
	}
	return build(cfg, userRepo, store, pinger)
}

// NewLocalContainer creates a container over the in-memory repository and a
// descriptor-only object store
func NewLocalContainer(cfg *config.Config) *Container {
	repo := memory.NewUserRepository()
	return NewContainerWithRepository(cfg, repo, nil)
}

func build(cfg *config.Config, userRepo repositories.UserRepository, store *objectstore.Client, pinger StorePinger) *Container {
	userService := services.NewUserService(userRepo)

	descriptor := models.BucketDescriptor{
		BucketName: cfg.Bucket.Name,
		Region:     cfg.Bucket.Region,
	}
	if store != nil {
		descriptor = store.Describe()
	}

	router := handlers.NewRouter(
		handlers.NewUserHandler(userService),
		handlers.NewHealthHandler(cfg.Environment),
		handlers.NewBucketHandler(descriptor),
	)

	return &Container{
		Config:      cfg,
		UserService: userService,
		Router:      router,
		ObjectStore: store,
		StorePinger: pinger,
	}
}

func configureLogging(cfg *config.Config) {
	if cfg.Environment == "production" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}
