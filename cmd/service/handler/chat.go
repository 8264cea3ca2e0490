package handler

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/consulta-ai/consulta-ai/app/logic/v1"
	"github.com/consulta-ai/consulta-ai/app/response"
	"github.com/consulta-ai/consulta-ai/pkg/types"
	"github.com/consulta-ai/consulta-ai/pkg/utils"
)

type ChatRequest struct {
	Question string                   `json:"question" form:"question" binding:"required"`
	History  []types.ConversationTurn `json:"conversation_history" form:"conversation_history"`
}

func (s *HttpSrv) Chat(c *gin.Context) {
	var (
		err error
		req ChatRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	result, err := v1.NewChatLogic(c, s.Core).Ask(req.Question, req.History)
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, result)
}

func (s *HttpSrv) DebugPrompt(c *gin.Context) {
	var (
		err error
		req ChatRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	prompt := v1.NewChatLogic(c, s.Core).DebugPrompt(req.Question, req.History)
	response.APISuccess(c, prompt)
}
