package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Gabo-RDev/LinkUp/internal/dto"
)

func (a *api) registerComments(g *gin.RouterGroup) {
	g.POST("", a.createComment)
	g.GET("", a.listComments)
	g.GET("/:id", a.getComment)
	g.PUT("/:id", a.updateComment)
	g.DELETE("/:id", a.deleteComment)
	g.POST("/:id/pin", a.pinComment(true))
	g.DELETE("/:id/pin", a.pinComment(false))
}

func (a *api) createComment(c *gin.Context) {
	var in dto.CreateCommentDto
	if !bindJSON(c, &in) {
		return
	}
	res, err := a.svc.Comments.Create(c.Request.Context(), in)
	respond(c, a.logger, http.StatusCreated, res, err)
}

func (a *api) listComments(c *gin.Context) {
	page, size := pagination(c)
	res, err := a.svc.Comments.GetPaged(c.Request.Context(), page, size)
	respond(c, a.logger, http.StatusOK, res, err)
}

func (a *api) getComment(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	res, err := a.svc.Comments.GetByID(c.Request.Context(), id)
	respond(c, a.logger, http.StatusOK, res, err)
}

func (a *api) updateComment(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var in dto.UpdateCommentDto
	if !bindJSON(c, &in) {
		return
	}
	res, err := a.svc.Comments.Update(c.Request.Context(), id, in)
	respond(c, a.logger, http.StatusNoContent, res, err)
}

func (a *api) deleteComment(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	res, err := a.svc.Comments.Delete(c.Request.Context(), id)
	respond(c, a.logger, http.StatusNoContent, res, err)
}

func (a *api) pinComment(pinned bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		res, err := a.svc.Comments.Pin(c.Request.Context(), id, pinned)
		respond(c, a.logger, http.StatusOK, res, err)
	}
}

type commentCount struct {
	PostID        uuid.UUID `json:"post_id"`
	CommentsCount int       `json:"comments_count"`
}

func (a *api) countPostComments(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	res, err := a.svc.Comments.CountByPost(c.Request.Context(), id)
	if err != nil || res.IsFailure() {
		respond(c, a.logger, http.StatusOK, res, err)
		return
	}
	c.JSON(http.StatusOK, commentCount{PostID: id, CommentsCount: res.MustValue()})
}
