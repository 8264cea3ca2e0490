package handler

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/consulta-ai/consulta-ai/app/logic/v1"
	"github.com/consulta-ai/consulta-ai/app/response"
	"github.com/consulta-ai/consulta-ai/pkg/utils"
)

type LoginRequest struct {
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

func (s *HttpSrv) Login(c *gin.Context) {
	var (
		err error
		req LoginRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	result, err := v1.NewAuthLogic(c, s.Core).Login(req.Username, req.Password)
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, result)
}
