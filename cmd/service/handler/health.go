package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/consulta-ai/consulta-ai/app/response"
)

func (s *HttpSrv) Health(c *gin.Context) {
	status := "ok"
	datasource := "ok"
	if err := s.Core.Datasource().Ping(c); err != nil {
		status = "degraded"
		datasource = err.Error()
	}

	response.APISuccess(c, gin.H{
		"status":     status,
		"datasource": datasource,
		"fragments":  s.Core.Engine().Knowledge().Count(c),
	})
}
