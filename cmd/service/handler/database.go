package handler

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/consulta-ai/consulta-ai/app/logic/v1"
	"github.com/consulta-ai/consulta-ai/app/response"
	"github.com/consulta-ai/consulta-ai/pkg/utils"
)

func (s *HttpSrv) ListTables(c *gin.Context) {
	tables, err := v1.NewDatabaseLogic(c, s.Core).Tables()
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, gin.H{
		"tables": tables,
	})
}

func (s *HttpSrv) DescribeTable(c *gin.Context) {
	desc, err := v1.NewDatabaseLogic(c, s.Core).Describe(c.Param("table"))
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, desc)
}

type RunQueryRequest struct {
	SQL string `json:"sql" form:"sql" binding:"required"`
}

func (s *HttpSrv) RunQuery(c *gin.Context) {
	var (
		err error
		req RunQueryRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	results, err := v1.NewDatabaseLogic(c, s.Core).RunQuery(req.SQL)
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, results)
}
