package handler

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/consulta-ai/consulta-ai/app/logic/v1"
	"github.com/consulta-ai/consulta-ai/app/response"
	"github.com/consulta-ai/consulta-ai/pkg/utils"
)

func (s *HttpSrv) Train(c *gin.Context) {
	var (
		err error
		req v1.TrainRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	id, err := v1.NewTrainingLogic(c, s.Core).Train(req)
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, gin.H{
		"id": id,
	})
}

func (s *HttpSrv) ListTrainingData(c *gin.Context) {
	fragments, err := v1.NewTrainingLogic(c, s.Core).ListAll(c.Query("kind"))
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, gin.H{
		"total":     len(fragments),
		"fragments": fragments,
	})
}

func (s *HttpSrv) RemoveTrainingData(c *gin.Context) {
	id := c.Param("id")
	removed := v1.NewTrainingLogic(c, s.Core).Remove(id)
	response.APISuccess(c, gin.H{
		"removed": removed,
	})
}

func (s *HttpSrv) TrainingSummary(c *gin.Context) {
	response.APISuccess(c, v1.NewTrainingLogic(c, s.Core).Summary())
}
