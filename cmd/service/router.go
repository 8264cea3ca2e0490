package service

import (
	"github.com/consulta-ai/consulta-ai/app/core"
	"github.com/consulta-ai/consulta-ai/app/response"
	"github.com/consulta-ai/consulta-ai/cmd/service/handler"
	"github.com/consulta-ai/consulta-ai/cmd/service/middleware"
	"github.com/consulta-ai/consulta-ai/pkg/metrics"
)

func serve(core *core.Core) {
	httpSrv := &handler.HttpSrv{
		Core:   core,
		Engine: core.HttpEngine(),
	}
	setupHttpRouter(httpSrv)

	core.HttpEngine().Run(core.Cfg().Addr)
}

func setupHttpRouter(s *handler.HttpSrv) {
	s.Engine.Use(middleware.I18n(s.Core), response.NewResponse())
	s.Engine.Use(middleware.Cors)

	s.Engine.GET("/health", s.Health)
	s.Engine.GET("/metrics", metrics.DefaultExportHandler())

	apiV1 := s.Engine.Group("/api/v1")
	{
		apiV1.POST("/auth/login", s.Login)

		authed := apiV1.Group("")
		authed.Use(middleware.Authorization(s.Core))

		chat := authed.Group("/chat")
		{
			chat.POST("", s.Chat)
			chat.POST("/debug", s.DebugPrompt)
		}

		training := authed.Group("/training")
		{
			training.POST("", s.Train)
			training.GET("/list", s.ListTrainingData)
			training.GET("/summary", s.TrainingSummary)
			training.DELETE("/:id", s.RemoveTrainingData)
		}

		database := authed.Group("/database")
		{
			database.GET("/tables", s.ListTables)
			database.GET("/tables/:table", s.DescribeTable)
			database.POST("/query", s.RunQuery)
		}
	}
}
