package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"pachli/api"
	"pachli/dal"
	"pachli/logic"
	"pachli/server"
	"pachli/shared"
	"pachli/texts"

	"github.com/charmbracelet/log"
	"go.uber.org/fx"
)

type initErrorHandler struct {
}

func (*initErrorHandler) HandleError(err error) {
	fmt.Fprintf(os.Stderr, "Failed to initialize dependency injection\n%v", err)
}

var logger *log.Logger

func main() {

	cfg := shared.LoadConfig()
	provideConfig := func() *shared.Config {
		return cfg
	}

	logger = initLogger(cfg)
	provideLogger := func() shared.ILogger {
		return logger
	}

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			provideConfig,
			provideLogger,
			server.NewHTTPServer,
			fx.Annotate(server.NewMux, fx.ParamTags(`group:"handler_group"`)),
			shared.NewUserAgent,
			logic.NewMetrics,
			func(m logic.IMetrics) api.IRequestMetrics { return m },
			api.NewMastodonApi,
			dal.NewRepo,
			texts.NewTexts,
			logic.NewEventBus,
			logic.NewFilterStore,
			logic.NewAccountManager,
			logic.NewTimelineCases,
			logic.NewLogoutUseCase,
			logic.NewMediatorRegistry,
			logic.NewCachePruner,
			logic.NewProfiler,
			asHandlerGroupDef(server.NewApiHandlerGroup),
			asHandlerGroupDef(server.NewMetricsHandlerGroup),
		),
		fx.Invoke(
			registerHooks,
			func(*http.Server) {},
		),
		fx.ErrorHook(&initErrorHandler{}),
	)
	app.Run()
}

func asHandlerGroupDef(f any) any {
	return fx.Annotate(
		f,
		fx.As(new(server.IHandlerGroup)),
		fx.ResultTags(`group:"handler_group"`),
	)
}

func initLogger(cfg *shared.Config) *log.Logger {

	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_RDWR, 0666)
	if err != nil {
		msg := fmt.Sprintf("Failed to open log file '%v': %v", cfg.LogFile, err)
		log.Fatal(msg)
	}

	logger := log.New(io.MultiWriter(os.Stdout, logFile))
	logger.SetReportTimestamp(true)
	logger.SetTimeFormat("2006-01-02 15:04:05.000")
	switch cfg.LogLevel {
	case "Debug":
		logger.SetLevel(log.DebugLevel)
	case "Info":
		logger.SetLevel(log.InfoLevel)
	case "Warn":
		logger.SetLevel(log.WarnLevel)
	case "Error":
		logger.SetLevel(log.ErrorLevel)
	default:
		logger.SetLevel(log.ErrorLevel)
	}
	logger.SetReportCaller(true)

	return logger
}

// The database must be ready before the first account is activated, and the
// active account's filters loaded before the first timeline request.
func registerHooks(
	lc fx.Lifecycle,
	repo dal.IRepo,
	accounts logic.IAccountManager,
	filters logic.IFilterStore,
	pruner logic.ICachePruner,
	prof logic.IProfiler,
	metrics logic.IMetrics,
) {
	lc.Append(
		fx.Hook{
			OnStart: func(ctx context.Context) error {
				logger.Printf("Application starting up")
				repo.InitUpdateDb()
				if err := accounts.Init(ctx); err != nil {
					return err
				}
				if active, err := accounts.ActiveAccount(); err != nil {
					return err
				} else if active != nil {
					if err = filters.Refresh(ctx, active.Id); err != nil {
						logger.Warnf("Failed to load filters of %s: %v", active.FullName(), err)
					}
				}
				pruner.Start()
				prof.Start()
				metrics.ServiceStarted()
				return nil
			},
			OnStop: func(context.Context) error {
				logger.Printf("Application shutting down")
				prof.Stop()
				pruner.Stop()
				return repo.Close()
			},
		},
	)
}
