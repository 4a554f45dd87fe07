package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	flags "github.com/jessevdk/go-flags"
	"github.com/massn/envordot"

	"github.com/oqtopus-team/qdeck/core"
	"github.com/oqtopus-team/qdeck/log"
	"github.com/oqtopus-team/qdeck/render"
	"github.com/oqtopus-team/qdeck/slides"
	"github.com/oqtopus-team/qdeck/statevector"

	"go.uber.org/dig"
	"go.uber.org/zap"
)

var versionByBuildFlag string
var parser *flags.Parser
var qdeck *QDeck

// stdout receives command output; logs go to stderr.
var stdout io.Writer = os.Stdout

func init() {
	if err := envordot.Load(false, ".env"); err == nil {
		fmt.Fprintln(os.Stderr, "Found \".env\" file. Environment variables are preferred, "+
			"but non-conflicting variables are those in the \".env\" file.")
	}
	qdeck = &QDeck{}
	setParser(qdeck)
}

type QDeck struct {
	DIContainerParameters *DIContainerParameters
	Conf                  *core.Conf
}

type DIContainerParameters struct {
	Backend  string `long:"backend" description:"statevector backend" default:"local" choice:"local" choice:"remote" env:"QDECK_BACKEND"`
	Renderer string `long:"renderer" description:"figure renderer" default:"plot" choice:"plot" env:"QDECK_RENDERER"`
	Catalog  string `long:"catalog" description:"TOML file of slide decks merged over the built-in ones" env:"QDECK_CATALOG"`
}

func setParser(q *QDeck) {
	parser = flags.NewParser(q, flags.Default)
	parser.ShortDescription = "qdeck"
	parser.LongDescription = "QUBO matrices, statevectors and slide media for quantum computing talks."
	parser.AddCommand("matrix", "print a QUBO matrix", "build the dense matrix of a QUBO problem file and print it", &matrixCmd{})
	parser.AddCommand("heatmap", "draw a QUBO matrix", "draw the matrix of a QUBO problem file as a heatmap", &heatmapCmd{})
	parser.AddCommand("landscape", "enumerate an energy landscape", "evaluate every binary sample of a QUBO problem and plot the energies", &landscapeCmd{})
	parser.AddCommand("graph", "export a BQM graph", "print the binary quadratic model of a QUBO problem as Graphviz DOT", &graphCmd{})
	parser.AddCommand("items", "derive item exclusions", "turn the inclusion lists of an item file into exclusion lists", &itemsCmd{})
	parser.AddCommand("statevector", "print a statevector", "run a circuit on the configured backend and print its statevector", &statevectorCmd{})
	parser.AddCommand("slide", "print slide media", "print the HTML snippet of a slide, the banner of a deck or the deck names", &slideCmd{})
	parser.AddCommand("version", "print version", "print the version and the non-secret configuration", &versionCmd{})
}

func parse() {
	if _, err := parser.Parse(); err != nil {
		code := 1
		if fe, ok := err.(*flags.Error); ok {
			if fe.Type == flags.ErrHelp {
				code = 0
			}
		}
		if code == 1 {
			fmt.Fprintf(os.Stderr, "failed to execute, because %s\n", err)
		}
		os.Exit(code)
	}
}

func (q *QDeck) provideDIContainer() (c *dig.Container, err error) {
	c = dig.New()
	err = c.Provide(func() (statevector.Backend, error) {
		switch q.DIContainerParameters.Backend {
		case "local":
			return statevector.NewLocalBackend(), nil
		case "remote":
			s, err := remoteSetting()
			if err != nil {
				return nil, err
			}
			return statevector.NewRemoteBackend(s)
		default:
			return nil, fmt.Errorf("%s is an unknown backend", q.DIContainerParameters.Backend)
		}
	})
	if err != nil {
		return &dig.Container{}, err
	}
	err = c.Provide(func() (render.Renderer, error) {
		switch q.DIContainerParameters.Renderer {
		case "plot":
			return render.NewPlotRenderer(q.Conf.OutputDir, q.Conf.ImageFormat), nil
		default:
			return nil, fmt.Errorf("%s is an unknown renderer", q.DIContainerParameters.Renderer)
		}
	})
	if err != nil {
		return &dig.Container{}, err
	}
	err = c.Provide(func() (slides.Catalog, error) {
		if q.DIContainerParameters.Catalog == "" {
			return slides.Builtin(), nil
		}
		return slides.LoadCatalog(q.DIContainerParameters.Catalog)
	})
	if err != nil {
		return &dig.Container{}, err
	}
	return
}

func main() {
	parse()
}

// session is what every command runs inside.
type session struct {
	logger     *zap.Logger
	components *core.SystemComponents
	history    *log.History
	shutdown   func(context.Context) error
}

func (s *session) close() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.shutdown(ctx); err != nil {
		zap.L().Warn(fmt.Sprintf("failed to flush traces/reason:%s", err))
	}
	if err := s.history.Close(); err != nil {
		zap.L().Warn(fmt.Sprintf("failed to close history/reason:%s", err))
	}
	_ = s.logger.Sync()
}

var setupTracing = log.SetupTracing

func newSession(q *QDeck) (*session, error) {
	logger, err := log.SetZap(q.Conf)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to setup logger. Reason:%s\n", err)
		return nil, err
	}
	s := &session{logger: logger, shutdown: func(context.Context) error { return nil }}
	fail := func(err error) (*session, error) {
		s.close()
		return nil, err
	}
	core.SetVersion(q.Conf, versionByBuildFlag)
	log.LogVersion()

	core.ResetSetting()
	registerSetting()
	zap.L().Debug("Registered setting")
	if q.Conf.SettingPath != "" {
		if err := core.ParseSettingFromPath(q.Conf.SettingPath); err != nil {
			zap.L().Error(fmt.Sprintf("failed to parse settings/reason:%s", err))
			return fail(err)
		}
	}

	shutdown, err := setupTracing(context.Background(), q.Conf.OTLPEndpoint)
	if err != nil {
		return fail(err)
	}
	s.shutdown = shutdown

	zap.L().Debug(fmt.Sprintf("Providing DI Container with parameters %+v", q.DIContainerParameters))
	container, err := q.provideDIContainer()
	if err != nil {
		zap.L().Error(fmt.Sprintf("Failed to setting up DI-Container. Reason:%s", err.Error()))
		return fail(err)
	}
	s.components = core.NewSystemComponents(container)
	if err := s.components.Setup(q.Conf); err != nil {
		zap.L().Error(fmt.Sprintf("Failed to setting up Container. Reason:%s", err.Error()))
		return fail(err)
	}
	core.SetInfo(q.Conf)

	if q.Conf.HistoryDir != "" {
		if s.history, err = log.NewHistory(q.Conf.HistoryDir); err != nil {
			return fail(err)
		}
	}
	return s, nil
}

func registerSetting() {
	s := statevector.NewRemoteSetting()
	s.UserAgent = core.UserAgent()
	core.RegisterSetting(statevector.RemoteSettingKey, &s)
}

func remoteSetting() (statevector.RemoteSetting, error) {
	v, ok := core.GetComponentSetting(statevector.RemoteSettingKey)
	if !ok {
		return statevector.RemoteSetting{}, fmt.Errorf("%s setting is not found", statevector.RemoteSettingKey)
	}
	s, ok := v.(*statevector.RemoteSetting)
	if !ok {
		return statevector.RemoteSetting{}, fmt.Errorf("%s setting has an unexpected type %T", statevector.RemoteSettingKey, v)
	}
	return *s, nil
}
