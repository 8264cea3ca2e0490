package v1

import (
	"context"
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/consulta-ai/consulta-ai/app/core"
	"github.com/consulta-ai/consulta-ai/pkg/errors"
	"github.com/consulta-ai/consulta-ai/pkg/i18n"
	"github.com/consulta-ai/consulta-ai/pkg/security"
)

type AuthLogic struct {
	ctx  context.Context
	core *core.Core
}

func NewAuthLogic(ctx context.Context, core *core.Core) *AuthLogic {
	return &AuthLogic{
		ctx:  ctx,
		core: core,
	}
}

type LoginResult struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

func (l *AuthLogic) Login(username, password string) (LoginResult, error) {
	sec := l.core.Cfg().Security
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(sec.AdminUser)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(sec.AdminPassword)) == 1
	if !userOK || !passOK {
		return LoginResult{}, errors.New("AuthLogic.Login.compare", i18n.ERROR_LOGIN_ACCOUNT_INCORRECT, nil).Code(http.StatusUnauthorized)
	}

	ttl := time.Duration(sec.ExpireMinutes()) * time.Minute
	claims := security.NewTokenClaims(username, "admin", time.Now().Add(ttl).Unix())
	token, err := security.GenerateJWT(claims, []byte(sec.JWTSecret))
	if err != nil {
		return LoginResult{}, errors.New("AuthLogic.Login.GenerateJWT", i18n.ERROR_INTERNAL, err)
	}

	return LoginResult{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int64(ttl.Seconds()),
	}, nil
}
