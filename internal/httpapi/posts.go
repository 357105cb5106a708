package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Gabo-RDev/LinkUp/internal/dto"
)

func (a *api) registerPosts(g *gin.RouterGroup) {
	g.POST("", a.createPost)
	g.GET("", a.listPosts)
	g.GET("/:id", a.getPost)
	g.PUT("/:id", a.updatePost)
	g.DELETE("/:id", a.deletePost)

	g.GET("/category/:id", a.listPostsByCategory)
	g.GET("/admin/:id", a.listPostsByAdmin)
	g.GET("/recent/:id", a.listRecentPosts)

	g.GET("/:id/comments", a.listPostComments)
	g.GET("/:id/comments/count", a.countPostComments)
	g.GET("/:id/interests", a.listPostInterests)
	g.POST("/:id/interests/:interest_id", a.attachPostInterest)

	g.GET("/:id/likes", a.listLikers)
	g.POST("/:id/likes", a.likePost)
	g.DELETE("/:id/likes", a.unlikePost)
	g.POST("/:id/likes/toggle", a.toggleLike)
	g.GET("/:id/likes/count", a.countLikes)
	g.GET("/:id/likes/status", a.likeStatus)
}

func (a *api) createPost(c *gin.Context) {
	var in dto.CreatePostDto
	if !bindJSON(c, &in) {
		return
	}
	res, err := a.svc.Posts.Create(c.Request.Context(), in)
	respond(c, a.logger, http.StatusCreated, res, err)
}

func (a *api) listPosts(c *gin.Context) {
	page, size := pagination(c)
	res, err := a.svc.Posts.GetPaged(c.Request.Context(), page, size)
	respond(c, a.logger, http.StatusOK, res, err)
}

func (a *api) getPost(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	res, err := a.svc.Posts.GetByID(c.Request.Context(), id)
	respond(c, a.logger, http.StatusOK, res, err)
}

func (a *api) updatePost(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var in dto.UpdatePostDto
	if !bindJSON(c, &in) {
		return
	}
	res, err := a.svc.Posts.Update(c.Request.Context(), id, in)
	respond(c, a.logger, http.StatusNoContent, res, err)
}

func (a *api) deletePost(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	res, err := a.svc.Posts.Delete(c.Request.Context(), id)
	respond(c, a.logger, http.StatusNoContent, res, err)
}

func (a *api) listPostsByCategory(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	page, size := pagination(c)
	res, err := a.svc.Posts.GetPagedByCategory(c.Request.Context(), id, page, size)
	respond(c, a.logger, http.StatusOK, res, err)
}

func (a *api) listPostsByAdmin(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	page, size := pagination(c)
	res, err := a.svc.Posts.GetPagedByAdmin(c.Request.Context(), id, page, size)
	respond(c, a.logger, http.StatusOK, res, err)
}

func (a *api) listRecentPosts(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	page, size := pagination(c)
	res, err := a.svc.Posts.GetPagedRecent(c.Request.Context(), id, page, size)
	respond(c, a.logger, http.StatusOK, res, err)
}

func (a *api) listPostComments(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	page, size := pagination(c)
	res, err := a.svc.Comments.GetPagedByPost(c.Request.Context(), id, page, size)
	respond(c, a.logger, http.StatusOK, res, err)
}

func (a *api) listPostInterests(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	res, err := a.svc.Interests.GetByPost(c.Request.Context(), id)
	respond(c, a.logger, http.StatusOK, res, err)
}

func (a *api) attachPostInterest(c *gin.Context) {
	postID, ok := pathID(c, "id")
	if !ok {
		return
	}
	interestID, ok := pathID(c, "interest_id")
	if !ok {
		return
	}
	res, err := a.svc.Interests.AttachToPost(c.Request.Context(), postID, interestID)
	respond(c, a.logger, http.StatusNoContent, res, err)
}
