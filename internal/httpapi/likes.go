package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// likeTarget reads the post id from the path and the user id from ?user_id.
func likeTarget(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	postID, ok := pathID(c, "id")
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}
	userID, ok := queryID(c, "user_id")
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}
	return postID, userID, true
}

func (a *api) likePost(c *gin.Context) {
	postID, userID, ok := likeTarget(c)
	if !ok {
		return
	}
	res, err := a.svc.Likes.Like(c.Request.Context(), postID, userID)
	respond(c, a.logger, http.StatusCreated, res, err)
}

func (a *api) unlikePost(c *gin.Context) {
	postID, userID, ok := likeTarget(c)
	if !ok {
		return
	}
	res, err := a.svc.Likes.Unlike(c.Request.Context(), postID, userID)
	respond(c, a.logger, http.StatusOK, res, err)
}

func (a *api) toggleLike(c *gin.Context) {
	postID, userID, ok := likeTarget(c)
	if !ok {
		return
	}
	res, err := a.svc.Likes.Toggle(c.Request.Context(), postID, userID)
	respond(c, a.logger, http.StatusOK, res, err)
}

func (a *api) listLikers(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	page, size := pagination(c)
	res, err := a.svc.Likes.GetLikers(c.Request.Context(), id, page, size)
	respond(c, a.logger, http.StatusOK, res, err)
}

type likeCount struct {
	PostID     uuid.UUID `json:"post_id"`
	LikesCount int       `json:"likes_count"`
}

func (a *api) countLikes(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	res, err := a.svc.Likes.Count(c.Request.Context(), id)
	if err != nil || res.IsFailure() {
		respond(c, a.logger, http.StatusOK, res, err)
		return
	}
	c.JSON(http.StatusOK, likeCount{PostID: id, LikesCount: res.MustValue()})
}

type likeStatus struct {
	PostID uuid.UUID `json:"post_id"`
	UserID uuid.UUID `json:"user_id"`
	Liked  bool      `json:"liked"`
}

func (a *api) likeStatus(c *gin.Context) {
	postID, userID, ok := likeTarget(c)
	if !ok {
		return
	}
	res, err := a.svc.Likes.HasLiked(c.Request.Context(), postID, userID)
	if err != nil || res.IsFailure() {
		respond(c, a.logger, http.StatusOK, res, err)
		return
	}
	c.JSON(http.StatusOK, likeStatus{PostID: postID, UserID: userID, Liked: res.MustValue()})
}
