// Package containers starts beedb and its database in Docker for integration and end-to-end runs.
// Settings come from the environment, usually loaded from a .env file.
package containers

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/docker/docker/api/types/build"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/client"
	"github.com/docker/go-connections/nat"
	_ "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/localnerve/beedb/data"
	"github.com/localnerve/beedb/internal/config"
	"github.com/localnerve/beedb/internal/database"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/network"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

// ImageName is the tag the service image is built and reused under
const ImageName = "beedb-test:latest"

// Options describes the containers to start
type Options struct {
	DBType       string
	DBImage      string
	DBHost       string // network alias of the database inside the container network
	DBPort       string
	Database     string
	User         string
	Password     string
	RootPassword string
	APIToken     string
	Port         string
	BuildContext string
	Debug        bool
}

// OptionsFromEnv reads Options from the environment, falling back to a MariaDB setup
func OptionsFromEnv() Options {
	return Options{
		DBType:       getEnv("DB_TYPE", "mariadb"),
		DBImage:      os.Getenv("DB_IMAGE"),
		DBHost:       getEnv("DB_HOST", "database"),
		DBPort:       getEnv("DB_PORT", "3306"),
		Database:     getEnv("DB_DATABASE", "beedb"),
		User:         getEnv("DB_USER", "beedb"),
		Password:     getEnv("DB_PASSWORD", "beedb"),
		RootPassword: getEnv("DB_ROOT_PASSWORD", "root"),
		APIToken:     getEnv("API_TOKEN", "test-token"),
		Port:         getEnv("PORT", "3000"),
		BuildContext: os.Getenv("TESTCONTAINERS_BUILD_CONTEXT"),
		Debug:        os.Getenv("DEBUG_CONTAINER") == "true",
	}
}

// Stack holds the running containers. Terminate releases whatever was started.
type Stack struct {
	Options          Options
	Network          *testcontainers.DockerNetwork
	DBContainer      testcontainers.Container
	ServiceContainer testcontainers.Container
	BuilderContainer testcontainers.Container

	// HostConfig connects to the database from the host running the tests
	HostConfig *config.Config
	// BaseURL reaches the service from the host, empty until StartService
	BaseURL string
}

// Terminate stops every container and removes the network
func (s *Stack) Terminate(t *testing.T) {
	ctx := context.Background()
	if s.ServiceContainer != nil {
		if err := s.ServiceContainer.Terminate(ctx); err != nil {
			logMessage(t, "Failed to terminate beedb: %v", err)
		}
	}
	if s.BuilderContainer != nil {
		if err := s.BuilderContainer.Terminate(ctx); err != nil {
			logMessage(t, "Failed to terminate beedb builder: %v", err)
		}
	}
	if s.DBContainer != nil {
		if err := s.DBContainer.Terminate(ctx); err != nil {
			logMessage(t, "Failed to terminate database: %v", err)
		}
	}
	if s.Network != nil {
		if err := s.Network.Remove(ctx); err != nil {
			logMessage(t, "Failed to remove network: %v", err)
		}
	}
}

// StartDatabase starts the database container on a fresh network and loads the schema.
// On failure everything already started is terminated.
func StartDatabase(ctx context.Context, t *testing.T, opts Options) (*Stack, error) {
	if opts.DBImage == "" {
		return nil, errors.New("no database image configured")
	}

	stack := &Stack{Options: opts}

	nw, err := network.New(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create network")
	}
	stack.Network = nw

	tcpDBPort, err := nat.NewPort("tcp", opts.DBPort)
	if err != nil {
		stack.Terminate(t)
		return nil, errors.Wrap(err, "failed to create database port")
	}

	dbContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        opts.DBImage,
			ExposedPorts: []string{string(tcpDBPort)},
			Env:          dbInitEnv(opts),
			WaitingFor:   wait.ForListeningPort(tcpDBPort).WithStartupTimeout(60 * time.Second),
			Networks:     []string{nw.Name},
			NetworkAliases: map[string][]string{
				nw.Name: {opts.DBHost},
			},
		},
		Started: true,
	})
	if err != nil {
		stack.Terminate(t)
		return nil, errors.Wrap(err, "failed to start database")
	}
	stack.DBContainer = dbContainer

	host, err := dbContainer.Host(ctx)
	if err != nil {
		stack.Terminate(t)
		return nil, errors.Wrap(err, "failed to get database host")
	}
	mapped, err := dbContainer.MappedPort(ctx, tcpDBPort)
	if err != nil {
		stack.Terminate(t)
		return nil, errors.Wrap(err, "failed to get database port")
	}

	stack.HostConfig = &config.Config{
		DBType:            opts.DBType,
		DBHost:            host,
		DBPort:            mapped.Port(),
		DBDatabase:        opts.Database,
		DBUser:            opts.User,
		DBPassword:        opts.Password,
		DBConnectionLimit: 5,
		DBLogLevel:        "warn",
		APIToken:          opts.APIToken,
	}

	switch opts.DBType {
	case "mysql", "mariadb":
		err = initMySQL(ctx, opts, host, mapped)
	case "postgres", "postgresql":
		err = initPostgres(ctx, stack.HostConfig)
	default:
		err = errors.Errorf("unsupported database type for containers: %s", opts.DBType)
	}
	if err != nil {
		stack.Terminate(t)
		return nil, errors.Wrap(err, "failed to initialize database")
	}

	logMessage(t, "DB_HOST=%s DB_PORT=%s", host, mapped.Port())
	return stack, nil
}

// StartService runs the beedb image against the stack's database, building the image when missing
func (s *Stack) StartService(ctx context.Context, t *testing.T) error {
	opts := s.Options

	exists, err := imageExists(ctx, ImageName)
	if err != nil {
		return errors.Wrap(err, "failed to check if image exists")
	}

	tcpPort, err := nat.NewPort("tcp", opts.Port)
	if err != nil {
		return errors.Wrap(err, "failed to create service port")
	}

	exposedPorts := []string{string(tcpPort)}
	if opts.Debug {
		exposedPorts = append(exposedPorts, "2345/tcp")
	}

	hostConfigModifier := func(hostConfig *container.HostConfig) {
		if opts.Debug {
			hostConfig.PortBindings = nat.PortMap{
				"2345/tcp": []nat.PortBinding{
					{HostIP: "127.0.0.1", HostPort: "2345"},
				},
			}
			hostConfig.CapAdd = []string{"SYS_PTRACE"}
			hostConfig.SecurityOpt = []string{"apparmor:unconfined"}
		}
	}

	var waitStrategy wait.Strategy = wait.ForHTTP("/metrics").WithPort(tcpPort).WithStartupTimeout(30 * time.Second)
	if opts.Debug {
		waitStrategy = wait.ForLog("API server listening at: [::]:2345").WithStartupTimeout(5 * time.Minute)
	}

	request := testcontainers.ContainerRequest{
		ExposedPorts: exposedPorts,
		Env: map[string]string{
			"DB_TYPE":             opts.DBType,
			"DB_HOST":             opts.DBHost,
			"DB_PORT":             opts.DBPort,
			"DB_DATABASE":         opts.Database,
			"DB_USER":             opts.User,
			"DB_PASSWORD":         opts.Password,
			"DB_CONNECTION_LIMIT": "5",
			"API_TOKEN":           opts.APIToken,
			"PORT":                opts.Port,
			"LOG_FORMAT":          "json",
		},
		HostConfigModifier: hostConfigModifier,
		WaitingFor:         waitStrategy,
		Networks:           []string{s.Network.Name},
	}

	if opts.Debug {
		request.Entrypoint = []string{
			"/usr/local/bin/dlv",
			"--listen=:2345",
			"--headless=true",
			"--api-version=2",
			"--accept-multiclient",
			"exec",
			"./beedb",
		}
	}

	if !exists {
		sessionID := uuid.NewString()
		buildArgs := map[string]*string{
			"RESOURCE_REAPER_SESSION_ID": &sessionID,
		}
		if opts.Debug {
			debug := "true"
			buildArgs["DEBUG"] = &debug
		}

		buildContext := opts.BuildContext
		if buildContext == "" {
			buildContext = "../.."
		}

		logMessage(t, "Image %s does not exist, building...", ImageName)
		builder, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				FromDockerfile: testcontainers.FromDockerfile{
					Context:    buildContext,
					Dockerfile: "Dockerfile",
					Repo:       "beedb-test-builder",
					Tag:        "latest",
					BuildArgs:  buildArgs,
					BuildOptionsModifier: func(opts *build.ImageBuildOptions) {
						opts.Target = "builder"
					},
					PrintBuildLog: true,
				},
			},
			Started: false,
		})
		if err != nil {
			return errors.Wrap(err, "failed to build beedb-test-builder")
		}
		s.BuilderContainer = builder

		repo, tag, _ := strings.Cut(ImageName, ":")
		request.FromDockerfile = testcontainers.FromDockerfile{
			Context:    buildContext,
			Dockerfile: "Dockerfile",
			Repo:       repo,
			Tag:        tag,
			KeepImage:  true,
			BuildArgs:  buildArgs,
			BuildOptionsModifier: func(opts *build.ImageBuildOptions) {
				opts.Target = "runtime"
			},
			PrintBuildLog: true,
		}
	} else {
		logMessage(t, "Image %s exists, reusing...", ImageName)
		request.Image = ImageName
	}

	service, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: request,
		Started:          true,
	})
	if err != nil {
		return errors.Wrap(err, "failed to start beedb")
	}
	s.ServiceContainer = service

	host, err := service.Host(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to get beedb host")
	}
	mapped, err := service.MappedPort(ctx, tcpPort)
	if err != nil {
		return errors.Wrap(err, "failed to get beedb port")
	}
	s.BaseURL = fmt.Sprintf("http://%s:%s", host, mapped.Port())

	logMessage(t, "BASE_URL=%s", s.BaseURL)
	return nil
}

func dbInitEnv(opts Options) map[string]string {
	switch opts.DBType {
	case "postgres", "postgresql":
		return map[string]string{
			"POSTGRES_PASSWORD": opts.Password,
			"POSTGRES_USER":     opts.User,
			"POSTGRES_DB":       opts.Database,
		}
	default:
		return map[string]string{
			"MYSQL_ROOT_PASSWORD": opts.RootPassword,
			"MYSQL_DATABASE":      opts.Database,
			"MYSQL_USER":          opts.User,
			"MYSQL_PASSWORD":      opts.Password,
		}
	}
}

// initMySQL waits for the server, ensures the database and user exist, then loads the schema as root
func initMySQL(ctx context.Context, opts Options, host string, port nat.Port) error {
	db, err := sql.Open("mysql", fmt.Sprintf("root:%s@tcp(%s:%s)/", opts.RootPassword, host, port.Port()))
	if err != nil {
		return errors.Wrap(err, "failed to connect to MariaDB for setup")
	}
	defer db.Close()

	if err := waitForPing(ctx, db); err != nil {
		return errors.Wrap(err, "MariaDB not ready after 30 seconds")
	}

	setup := []string{
		fmt.Sprintf("CREATE DATABASE IF NOT EXISTS `%s`", opts.Database),
		fmt.Sprintf("CREATE USER IF NOT EXISTS '%s'@'%%' IDENTIFIED BY '%s'", opts.User, opts.Password),
		fmt.Sprintf("GRANT ALL PRIVILEGES ON `%s`.* TO '%s'@'%%'", opts.Database, opts.User),
		"FLUSH PRIVILEGES",
		fmt.Sprintf("USE `%s`", opts.Database),
	}
	// USE is per connection, so keep the whole script on one
	conn, err := db.Conn(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	for _, q := range setup {
		if _, err := conn.ExecContext(ctx, q); err != nil {
			return errors.Wrapf(err, "when executing > %s", q)
		}
	}
	for _, q := range splitStatements(data.InitdbTables(opts.DBType)) {
		if _, err := conn.ExecContext(ctx, q); err != nil {
			return errors.Wrapf(err, "when executing > %s", q)
		}
	}
	return nil
}

// initPostgres loads the schema as the image-created owner of the database
func initPostgres(ctx context.Context, cfg *config.Config) error {
	gdb, err := ConnectWithRetry(ctx, cfg)
	if err != nil {
		return err
	}
	defer database.Close(gdb)

	db, err := gdb.DB()
	if err != nil {
		return err
	}
	return executeSQL(ctx, db, data.InitdbTables(cfg.DBType))
}

// ConnectWithRetry opens the database described by cfg, retrying while the server finishes starting
func ConnectWithRetry(ctx context.Context, cfg *config.Config) (*gorm.DB, error) {
	var lastErr error
	for i := 0; i < 30; i++ {
		db, err := database.Connect(cfg)
		if err == nil {
			var sqlDB *sql.DB
			if sqlDB, err = db.DB(); err == nil {
				if err = sqlDB.PingContext(ctx); err == nil {
					return db, nil
				}
			}
			_ = database.Close(db)
		}
		lastErr = err
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(time.Second):
		}
	}
	return nil, errors.Wrap(lastErr, "database not ready after 30 seconds")
}

func waitForPing(ctx context.Context, db *sql.DB) error {
	var err error
	for i := 0; i < 30; i++ {
		if err = db.PingContext(ctx); err == nil {
			return nil
		}
		time.Sleep(1 * time.Second)
	}
	return err
}

func imageExists(ctx context.Context, imageName string) (bool, error) {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return false, err
	}
	defer cli.Close()

	images, err := cli.ImageList(ctx, image.ListOptions{})
	if err != nil {
		return false, err
	}

	for _, img := range images {
		for _, tag := range img.RepoTags {
			if tag == imageName {
				return true, nil
			}
		}
	}

	return false, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func logMessage(t *testing.T, format string, args ...any) {
	if t != nil {
		t.Logf(format, args...)
	} else {
		log.Info().Msgf(format, args...)
	}
}
