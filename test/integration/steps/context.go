// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"

	"github.com/club-ledger/backend/config"
	"github.com/club-ledger/backend/internal/infra/dependency"
	"github.com/club-ledger/backend/internal/integration/persistence"
	"github.com/club-ledger/backend/internal/integration/persistence/model"
	"github.com/club-ledger/backend/test/integration/mock"
)

type response struct {
	status  int
	headers http.Header
	body    []byte
}

type testContext struct {
	uri      string
	headers  map[string]string
	client   *http.Client
	response *response
	db       *mock.Db
	timeMock *mock.Time
	injector *dependency.Injector
	saved    map[string]string
}

var (
	serverOnce sync.Once
	serverErr  error
	shared     = &testContext{
		client:   &http.Client{Timeout: 10 * time.Second},
		timeMock: mock.NewTime(),
	}
)

// tables in foreign key order; children come last.
var tables = []string{"categories", "sections", "transactions"}

func newTestDb() *mock.Db {
	return mock.NewDb(tables, map[string]any{
		"categories":   &model.CategoryModel{},
		"sections":     &model.SectionModel{},
		"transactions": &model.TransactionModel{},
	})
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
		_ = os.Setenv("E2E_MODE", "true")
	})

	ctx.AfterSuite(func() {
		_ = mock.ClearRedis(mock.NewRedis())
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	t := shared

	ctx.Before(func(c context.Context, sc *godog.Scenario) (context.Context, error) {
		return c, t.before()
	})

	t.registerRequestSteps(ctx)
	t.registerResponseSteps(ctx)
	t.registerDataSteps(ctx)
}

func (t *testContext) before() error {
	serverOnce.Do(func() {
		serverErr = t.startServer()
	})
	if serverErr != nil {
		return serverErr
	}

	t.headers = map[string]string{}
	t.response = nil
	t.saved = map[string]string{}
	t.timeMock.SetCurrentTime(time.Now())

	if err := t.db.ClearDB(); err != nil {
		return fmt.Errorf("failed to clear database: %w", err)
	}
	if err := mock.ClearRedis(mock.NewRedis()); err != nil {
		return fmt.Errorf("failed to clear redis: %w", err)
	}
	return nil
}

func (t *testContext) startServer() error {
	t.db = newTestDb()

	cfg := config.Load()
	cfg.Server.Environment = "test"
	cfg.Redis.SummaryTTL = time.Minute
	cfg.RateLimit.RecordLimit = 1000
	cfg.RateLimit.RecordWindow = time.Minute

	injector, err := dependency.NewInjector(cfg, t.db.DbConn, dependency.Options{
		Redis: mock.NewRedis(),
		Clock: t.timeMock,
	})
	if err != nil {
		return fmt.Errorf("failed to build injector: %w", err)
	}
	t.injector = injector

	port, err := findAvailablePort()
	if err != nil {
		return err
	}
	t.uri = fmt.Sprintf("http://127.0.0.1:%d", port)

	srv := &http.Server{
		Addr:              fmt.Sprintf("127.0.0.1:%d", port),
		Handler:           injector.Router.Setup(cfg.Server.Environment),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			panic(err)
		}
	}()

	return t.waitForServer()
}

func (t *testContext) waitForServer() error {
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		resp, err := t.client.Get(t.uri + "/health")
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return nil
			}
		}
		time.Sleep(50 * time.Millisecond)
	}
	return errors.New("server did not become healthy in time")
}

func findAvailablePort() (int, error) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return 0, fmt.Errorf("failed to find available port: %w", err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port, nil
}

func (t *testContext) seedDefaults() error {
	_, err := persistence.SeedDefaults(context.Background(), t.db.DbConn)
	return err
}
