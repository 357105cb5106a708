package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Gabo-RDev/LinkUp/internal/dto"
)

func (a *api) registerUsers(g *gin.RouterGroup) {
	g.POST("", a.registerUser)
	g.GET("/:id", a.getUser)
	g.POST("/:id/confirm", a.confirmAccount)
	g.POST("/:id/confirm/resend", a.resendConfirmation)
	g.POST("/:id/interests/:interest_id", a.attachUserInterest)
}

func (a *api) registerUser(c *gin.Context) {
	var in dto.RegisterUserDto
	if !bindJSON(c, &in) {
		return
	}
	res, err := a.svc.Users.Register(c.Request.Context(), in)
	respond(c, a.logger, http.StatusCreated, res, err)
}

func (a *api) getUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	res, err := a.svc.Users.GetByID(c.Request.Context(), id)
	respond(c, a.logger, http.StatusOK, res, err)
}

func (a *api) confirmAccount(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var in dto.ConfirmAccountDto
	if !bindJSON(c, &in) {
		return
	}
	res, err := a.svc.Users.ConfirmAccount(c.Request.Context(), id, in.Code)
	respond(c, a.logger, http.StatusNoContent, res, err)
}

func (a *api) resendConfirmation(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	res, err := a.svc.Users.ResendConfirmation(c.Request.Context(), id)
	respond(c, a.logger, http.StatusNoContent, res, err)
}
