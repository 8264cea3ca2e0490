package core

import (
	"io"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/consulta-ai/consulta-ai/app/core/srv"
	"github.com/consulta-ai/consulta-ai/app/store"
	"github.com/consulta-ai/consulta-ai/app/store/sqlstore"
	"github.com/consulta-ai/consulta-ai/pkg/datasource"
	"github.com/consulta-ai/consulta-ai/pkg/i18n"
	"github.com/consulta-ai/consulta-ai/pkg/rag"
)

type Core struct {
	cfg CoreConfig
	srv *srv.Srv

	stores     func() *sqlstore.Provider
	datasource *datasource.DataSource
	engine     *rag.Engine
	trainer    *rag.Trainer
	localizer  i18n.Localizer

	httpEngine *gin.Engine
	metrics    *Metrics
}

func MustSetupCore(cfg CoreConfig) *Core {
	{
		var writer io.Writer = os.Stdout
		if cfg.Log.Path != "" {
			writer = &lumberjack.Logger{
				Filename:   cfg.Log.Path,
				MaxSize:    500, // megabytes
				MaxBackups: 3,
				MaxAge:     28, // days
				Compress:   true,
			}
		}
		l := slog.New(slog.NewJSONHandler(writer, &slog.HandlerOptions{
			Level: cfg.Log.SlogLevel(),
		}))
		slog.SetDefault(l)
	}

	core := &Core{
		cfg:        cfg,
		metrics:    NewMetrics("consulta", "core"),
		httpEngine: gin.New(),
		localizer:  i18n.NewLocalizer("en", "es"),
	}

	setupSqlStore(core)
	setupDatasource(core)

	core.srv = srv.SetupSrvs(srv.ApplyAI(cfg.AI))

	knowledge := rag.NewKnowledgeStore(core.stores().FragmentStore(), core.srv.AI())
	core.engine = rag.NewEngine(knowledge, core.srv.AI(), core.localizer, cfg.RAG)
	core.trainer = rag.NewTrainer(knowledge, core.datasource)

	return core
}

func setupSqlStore(core *Core) {
	provider := sqlstore.MustSetup(core.cfg.VectorDB)
	if err := provider.Install(); err != nil {
		slog.Error("failed to install store schema", slog.String("error", err.Error()))
		os.Exit(1)
	}
	core.stores = func() *sqlstore.Provider {
		return provider
	}
}

func setupDatasource(core *Core) {
	core.datasource = datasource.MustSetup(core.cfg.Datasource)
}

func (s *Core) Cfg() CoreConfig {
	return s.cfg
}

func (s *Core) Srv() *srv.Srv {
	return s.srv
}

func (s *Core) Store() store.FragmentStore {
	return s.stores().FragmentStore()
}

func (s *Core) Datasource() *datasource.DataSource {
	return s.datasource
}

func (s *Core) Engine() *rag.Engine {
	return s.engine
}

func (s *Core) Trainer() *rag.Trainer {
	return s.trainer
}

func (s *Core) Localizer() i18n.Localizer {
	return s.localizer
}

func (s *Core) HttpEngine() *gin.Engine {
	return s.httpEngine
}

func (s *Core) Metrics() *Metrics {
	return s.metrics
}

func (s *Core) Shutdown() {
	if err := s.stores().Close(); err != nil {
		slog.Error("failed to close vector store", slog.String("error", err.Error()))
	}
	if err := s.datasource.Close(); err != nil {
		slog.Error("failed to close datasource", slog.String("error", err.Error()))
	}
}
