//go:build e2e

package e2e

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"sales-invoicing/cmd/bootstrap"
	"sales-invoicing/cmd/bootstrap/components"
	"sales-invoicing/internal/infra/db"
	"sales-invoicing/internal/pkg/config"
	"sales-invoicing/internal/pkg/jwt"
	"sales-invoicing/tests/common/dbtest"
	"sales-invoicing/tests/common/taxstub"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

const (
	pgImage    = "postgres:17"
	pgPort     = nat.Port("5432/tcp")
	pgUser     = "invoicing"
	pgPassword = "invoicing"

	schemaFile = "migrations/001_initial_schema.sql"
)

var (
	pgOnce      sync.Once
	pgContainer testcontainers.Container
	pgStartErr  error
)

// pgEndpoint is the host-side address of the shared container.
type pgEndpoint struct {
	Host string
	Port nat.Port
}

func (e pgEndpoint) dsn(database string) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		pgUser, pgPassword, e.Host, e.Port.Port(), database)
}

// environment is everything one suite needs: a private database, a running
// fx app wired to it and the stubbed tax service.
type environment struct {
	pool   *pgxpool.Pool
	router *gin.Engine
	cfg    config.Config
}

func newEnvironment(t *testing.T) environment {
	t.Helper()
	gin.SetMode(gin.TestMode)

	endpoint := sharedPostgres(t)
	dbCfg := createSuiteDatabase(t, endpoint)

	pool, closePool, err := db.Connect(dbCfg)
	require.NoError(t, err, "connect to suite database")
	t.Cleanup(closePool)

	require.NoError(t, loadSchema(pool), "load schema")
	require.NoError(t, dbtest.SeedReferenceData(pool), "seed reference data")

	tax := taxstub.NewServer()
	t.Cleanup(tax.Close)

	cfg := config.NewTestConfig()
	cfg.DB = dbCfg
	cfg.TaxService.URL = tax.URL

	router := startApp(t, pool, cfg)

	slog.Info("e2e environment ready", "database", dbCfg.DBName, "tax_service", tax.URL)
	return environment{pool: pool, router: router, cfg: cfg}
}

// sharedPostgres starts one throwaway postgres per test binary. Durability
// settings are off since the data lives in tmpfs anyway.
func sharedPostgres(t *testing.T) pgEndpoint {
	t.Helper()

	pgOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()

		pgContainer, pgStartErr = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				Image:        pgImage,
				ExposedPorts: []string{string(pgPort)},
				Env: map[string]string{
					"POSTGRES_USER":     pgUser,
					"POSTGRES_PASSWORD": pgPassword,
					"POSTGRES_DB":       "postgres",
				},
				Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=256m"},
				Cmd: []string{
					"postgres",
					"-c", "fsync=off",
					"-c", "synchronous_commit=off",
					"-c", "full_page_writes=off",
					"-c", "max_connections=100",
				},
				WaitingFor: wait.ForSQL(pgPort, "pgx", func(host string, port nat.Port) string {
					return pgEndpoint{Host: host, Port: port}.dsn("postgres")
				}).WithStartupTimeout(time.Minute),
				Labels: map[string]string{"purpose": "invoicing-e2e"},
			},
			Started: true,
		})
	})
	require.NoError(t, pgStartErr, "start postgres container")

	ctx := context.Background()
	host, err := pgContainer.Host(ctx)
	require.NoError(t, err, "resolve container host")
	port, err := pgContainer.MappedPort(ctx, pgPort)
	require.NoError(t, err, "resolve container port")

	return pgEndpoint{Host: host, Port: port}
}

// createSuiteDatabase creates a uniquely named database so parallel test
// processes never share rows. It is dropped when the test ends.
func createSuiteDatabase(t *testing.T, endpoint pgEndpoint) config.DBConfig {
	t.Helper()

	name := "invoicing_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	adminDSN := endpoint.dsn("postgres")

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	admin, err := pgxpool.New(ctx, adminDSN)
	require.NoError(t, err, "connect as admin")
	defer admin.Close()

	// CREATE DATABASE fails transiently while template1 is in use by another process.
	backoff := 250 * time.Millisecond
	for attempt := 1; ; attempt++ {
		_, err = admin.Exec(ctx, "CREATE DATABASE "+name)
		if err == nil || attempt == 5 {
			break
		}
		slog.Warn("create database failed, retrying", "attempt", attempt, "error", err)
		time.Sleep(backoff)
		backoff *= 2
	}
	require.NoError(t, err, "create suite database")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		admin, err := pgxpool.New(ctx, adminDSN)
		if err != nil {
			slog.Warn("drop database skipped", "database", name, "error", err)
			return
		}
		defer admin.Close()
		if _, err := admin.Exec(ctx, "DROP DATABASE IF EXISTS "+name+" WITH (FORCE)"); err != nil {
			slog.Warn("drop database failed", "database", name, "error", err)
		}
	})

	return config.DBConfig{
		Host:     endpoint.Host,
		Port:     endpoint.Port.Port(),
		User:     pgUser,
		Password: pgPassword,
		DBName:   name,
		SSLMode:  "disable",
		TimeZone: "Europe/Warsaw",
		MaxConns: 4,
	}
}

// loadSchema applies the schema file, found by walking up from the package
// directory `go test` runs in.
func loadSchema(pool *pgxpool.Pool) error {
	path, err := findUpwards(schemaFile)
	if err != nil {
		return err
	}
	sql, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if _, err := pool.Exec(ctx, string(sql)); err != nil {
		return fmt.Errorf("apply %s: %w", path, err)
	}
	return nil
}

func findUpwards(rel string) (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		candidate := filepath.Join(dir, rel)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New(rel + " not found above the working directory")
		}
		dir = parent
	}
}

// startApp boots the production module graph with the test pool and config
// swapped in, and returns the router it assembled.
func startApp(t *testing.T, pool *pgxpool.Pool, cfg config.Config) *gin.Engine {
	t.Helper()

	var router *gin.Engine
	app := fx.New(
		fx.Supply(cfg),
		fx.Provide(
			func() *pgxpool.Pool { return pool },
			func() *gin.Engine { return gin.New() },
		),
		bootstrap.LoggerModule,
		bootstrap.JWTModule,
		bootstrap.MetricsModule,
		components.RepositoryModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.Populate(&router),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "start fx app")
	require.NotNil(t, router, "router not populated")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("stop fx app", "error", err)
		}
	})

	return router
}

// SharedSuite is embedded by every e2e suite.
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Config config.Config
}

func (s *SharedSuite) SetupSuite() {
	env := newEnvironment(s.T())
	s.DB = env.pool
	s.Router = env.router
	s.Config = env.cfg
}

// SetupSubTest gives each subtest a clean catalog with only the reference rows.
func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "reset database")
}

// OperatorToken signs a token with the suite's JWT secret.
func (s *SharedSuite) OperatorToken() string {
	token, err := jwt.NewService(s.Config.JWT.Secret, time.Hour).GenerateToken(uuid.New(), "accountant")
	require.NoError(s.T(), err)
	return token
}
