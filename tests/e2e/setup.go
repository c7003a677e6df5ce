//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"hotel-discounts/cmd/bootstrap"
	"hotel-discounts/cmd/bootstrap/components"
	"hotel-discounts/internal/infra/db"
	"hotel-discounts/internal/pkg/config"
	"hotel-discounts/tests/common/dbtest"

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
	pgUser     = "test"
	pgPassword = "testpass"
)

// one container per test binary; every suite gets its own database in it
var (
	containerOnce sync.Once
	container     testcontainers.Container
	containerErr  error
)

type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
}

func (s *SharedSuite) SetupSuite() {
	t := s.T()
	gin.SetMode(gin.TestMode)

	host, port := postgresAddr(t)
	dbCfg := createDatabase(t, host, port)

	pool, closePool, err := db.Connect(dbCfg)
	require.NoError(t, err, "database connection failed")
	t.Cleanup(closePool)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	require.NoError(t, dbtest.Migrate(ctx, pool), "migration failed")

	s.DB = pool
	s.Router = startApp(t, pool, dbCfg)
}

// every subtest starts from empty tables
func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "failed to reset database")
}

func postgresAddr(t *testing.T) (string, nat.Port) {
	containerOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()

		container, containerErr = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				Image:        "postgres:17",
				ExposedPorts: []string{"5432/tcp"},
				Env: map[string]string{
					"POSTGRES_USER":     pgUser,
					"POSTGRES_PASSWORD": pgPassword,
					"POSTGRES_DB":       "postgres",
				},
				Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw"},
				// durability is irrelevant for throwaway data
				Cmd: []string{"postgres", "-c", "fsync=off", "-c", "synchronous_commit=off", "-c", "full_page_writes=off"},
				WaitingFor: wait.ForSQL("5432/tcp", "pgx", func(host string, port nat.Port) string {
					return adminDSN(host, port)
				}).WithStartupTimeout(time.Minute),
				Labels: map[string]string{"purpose": "hotel-discounts-e2e"},
			},
			Started: true,
		})
	})
	require.NoError(t, containerErr, "failed to start postgres container")

	ctx := context.Background()
	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)
	return host, port
}

func adminDSN(host string, port nat.Port) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable", pgUser, pgPassword, host, port.Port())
}

func createDatabase(t *testing.T, host string, port nat.Port) config.DBConfig {
	name := "discounts_" + strings.ReplaceAll(uuid.NewString(), "-", "")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	admin, err := pgxpool.New(ctx, adminDSN(host, port))
	require.NoError(t, err, "admin connection failed")
	defer admin.Close()

	_, err = admin.Exec(ctx, "CREATE DATABASE "+name)
	require.NoError(t, err, "failed to create test database")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		admin, err := pgxpool.New(ctx, adminDSN(host, port))
		if err != nil {
			slog.Warn("cleanup connection failed", "database", name, "error", err.Error())
			return
		}
		defer admin.Close()
		if _, err := admin.Exec(ctx, "DROP DATABASE IF EXISTS "+name+" WITH (FORCE)"); err != nil {
			slog.Warn("failed to drop test database", "database", name, "error", err.Error())
		}
	})

	return config.DBConfig{
		Host:     host,
		Port:     port.Port(),
		User:     pgUser,
		Password: pgPassword,
		DBName:   name,
		SSLMode:  "disable",
		TimeZone: "UTC",
	}
}

// builds the production graph around the test pool; redis stays disabled so the nop cache is used
func startApp(t *testing.T, pool *pgxpool.Pool, dbCfg config.DBConfig) *gin.Engine {
	cfg := config.NewTestConfig()
	cfg.DB = dbCfg

	var router *gin.Engine
	app := fx.New(
		fx.Supply(pool, cfg),
		fx.Provide(gin.New),
		bootstrap.LoggerModule,
		components.CacheModule,
		components.PersistenceModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.Populate(&router),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "failed to start application graph")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("failed to stop application graph", "error", err.Error())
		}
	})
	return router
}
