package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/consulta-ai/consulta-ai/app/core"
)

type HttpSrv struct {
	Core   *core.Core
	Engine *gin.Engine
}
