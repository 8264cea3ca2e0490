package utils

import (
	"fmt"
	"math/rand"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"

	"github.com/consulta-ai/consulta-ai/pkg/errors"
	"github.com/consulta-ai/consulta-ai/pkg/i18n"
)

// GenFragmentID returns the opaque identifier assigned to a knowledge
// fragment at ingestion time. Never reused.
func GenFragmentID() string {
	return uuid.NewString()
}

func GenRequestID() string {
	return RandomStr(24)
}

const randomStrTable = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func RandomStr(l int) string {
	var b strings.Builder
	for i := 0; i < l; i++ {
		b.WriteByte(randomStrTable[rand.Intn(len(randomStrTable))])
	}
	return b.String()
}

func BindArgsWithGin(c *gin.Context, req interface{}) error {
	err := c.ShouldBindWith(req, binding.Default(c.Request.Method, c.ContentType()))
	if err != nil {
		return errors.New(fmt.Sprintf("Gin.ShouldBindWith.%s.%s", c.Request.Method, c.Request.URL.Path), i18n.ERROR_INVALIDARGUMENT, err).Code(http.StatusBadRequest)
	}
	return nil
}
