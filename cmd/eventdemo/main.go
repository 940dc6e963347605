// Command eventdemo wires a few broadcasters together and logs what their
// subscribers observed.
//
// Configuration comes from the environment or an optional .env file:
//
//	EVENTDEMO_LHS=10 EVENTDEMO_RHS=20 APP_ENV=production LOG_LEVEL=debug eventdemo
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dmitrymomot/eventkit/pkg/config"
	"github.com/dmitrymomot/eventkit/pkg/event"
	"github.com/dmitrymomot/eventkit/pkg/logger"
)

const serviceName = "eventdemo"

// Config drives the demo. LogLevel and LogFormat override the AppEnv defaults
// only when set.
type Config struct {
	LHS       int    `env:"EVENTDEMO_LHS" envDefault:"10"`
	RHS       int    `env:"EVENTDEMO_RHS" envDefault:"20"`
	LogLevel  string `env:"LOG_LEVEL"`
	LogFormat string `env:"LOG_FORMAT"`
	AppEnv    string `env:"APP_ENV" envDefault:"development"`
}

// Result holds what the arithmetic subscribers recorded.
type Result struct {
	Sum        int
	Difference int
	Product    int
	Triggered  bool
}

func main() {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		fail(err)
	}

	log, err := newLogger(cfg, os.Stderr)
	if err != nil {
		fail(err)
	}
	logger.SetAsDefault(log)

	res := run(cfg, log)
	log.Info("results",
		slog.Int("lhs", cfg.LHS),
		slog.Int("rhs", cfg.RHS),
		slog.Int("sum", res.Sum),
		slog.Int("difference", res.Difference),
		slog.Int("product", res.Product),
		slog.Bool("triggered", res.Triggered),
	)
}

// fail reports a startup error before the configured logger exists.
func fail(err error) {
	logger.New(
		logger.WithTextFormatter(),
		logger.WithOutput(os.Stderr),
		logger.WithAttr(slog.String("service", serviceName)),
	).Error("startup failed", logger.Error(err))
	os.Exit(1)
}

func newLogger(cfg Config, w io.Writer) (*slog.Logger, error) {
	opts := []logger.Option{
		logger.WithEnvironment(cfg.AppEnv, serviceName),
		logger.WithOutput(w),
	}

	if cfg.LogLevel != "" {
		level, err := logger.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, err
		}
		opts = append(opts, logger.WithLevel(level))
	}

	switch logger.Format(cfg.LogFormat) {
	case "":
	case logger.FormatJSON:
		opts = append(opts, logger.WithJSONFormatter())
	case logger.FormatText:
		opts = append(opts, logger.WithTextFormatter())
	default:
		return nil, fmt.Errorf("invalid log format %q: must be %q or %q",
			cfg.LogFormat, logger.FormatJSON, logger.FormatText)
	}

	return logger.New(opts...), nil
}

func run(cfg Config, log *slog.Logger) Result {
	var res Result

	onPair := event.New2[int, int](event.WithLogger(log), event.WithName("on_pair"))
	onPair.
		Add(func(a, b int) { res.Sum = a + b }).
		Add(func(a, b int) { res.Difference = a - b }).
		Add(func(a, b int) { res.Product = a * b })

	// A temporary observer removed through its handle before the real fire.
	probe := onPair.Connect(func(a, b int) {
		log.Warn("probe observed a pair it should not have", slog.Int("a", a), slog.Int("b", b))
	})
	onPair.Disconnect(probe)

	onPair.Fire(cfg.LHS, cfg.RHS)

	onDone := event.NewSignal(event.WithLogger(log), event.WithName("on_done"))
	onDone.Subscribe(func() { res.Triggered = true })
	onDone.Fire()
	onDone.UnsubscribeAll()

	log.Debug("demo finished",
		logger.Component(serviceName),
		logger.Subscribers(onPair.SubscriberCount()),
	)
	return res
}
