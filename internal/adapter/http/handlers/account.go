package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskflow/internal/adapter/http/middleware"
	"taskflow/internal/core/ports"
	"taskflow/pkg/apierrors"
)

type AccountHandler struct {
	accountService ports.AccountService
	siteURL        string
}

func NewAccountHandler(accountService ports.AccountService, siteURL string) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
		siteURL:        strings.TrimRight(siteURL, "/"),
	}
}

// AuthCallback finishes the sign-in flow started at the auth provider: the
// code is exchanged, the profile provisioned, the subscription checked, and
// the browser sent to the resulting destination. This endpoint always
// redirects; sign-in problems surface on the destination page, not here.
func (h *AccountHandler) AuthCallback(c *gin.Context) {
	code := c.Query("code")
	redirectTo := c.Query("redirect_to")

	destination := h.accountService.CompleteSignIn(c.Request.Context(), code, redirectTo)
	c.Redirect(http.StatusSeeOther, h.siteURL+destination)
}

func (h *AccountHandler) SignOut(c *gin.Context) {
	lang := middleware.GetLang(c)

	if err := h.accountService.SignOut(c.Request.Context(), middleware.GetAccessToken(c)); err != nil {
		zap.L().Error("sign-out failed", zap.Error(err))
		c.JSON(
			http.StatusBadGateway,
			apierrors.CreateError(http.StatusBadGateway, apierrors.MsgFailSignOut, lang),
		)
		return
	}

	c.Status(http.StatusNoContent)
}
