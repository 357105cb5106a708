package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Gabo-RDev/LinkUp/internal/dto"
)

func (a *api) registerCategories(g *gin.RouterGroup) {
	g.POST("", a.createCategory)
	g.GET("", a.listCategories)
	g.GET("/:id", a.getCategory)
	g.PUT("/:id", a.updateCategory)
	g.DELETE("/:id", a.deleteCategory)
}

func (a *api) createCategory(c *gin.Context) {
	var in dto.CreateCategoryDto
	if !bindJSON(c, &in) {
		return
	}
	res, err := a.svc.Categories.Create(c.Request.Context(), in)
	respond(c, a.logger, http.StatusCreated, res, err)
}

func (a *api) listCategories(c *gin.Context) {
	page, size := pagination(c)
	res, err := a.svc.Categories.GetPaged(c.Request.Context(), page, size)
	respond(c, a.logger, http.StatusOK, res, err)
}

func (a *api) getCategory(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	res, err := a.svc.Categories.GetByID(c.Request.Context(), id)
	respond(c, a.logger, http.StatusOK, res, err)
}

func (a *api) updateCategory(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var in dto.UpdateCategoryDto
	if !bindJSON(c, &in) {
		return
	}
	res, err := a.svc.Categories.Update(c.Request.Context(), id, in)
	respond(c, a.logger, http.StatusNoContent, res, err)
}

func (a *api) deleteCategory(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	res, err := a.svc.Categories.Delete(c.Request.Context(), id)
	respond(c, a.logger, http.StatusNoContent, res, err)
}

func (a *api) registerInterests(g *gin.RouterGroup) {
	g.POST("", a.createInterest)
	g.GET("", a.listInterests)
	g.GET("/:id", a.getInterest)
	g.PUT("/:id", a.updateInterest)
	g.DELETE("/:id", a.deleteInterest)
}

func (a *api) createInterest(c *gin.Context) {
	var in dto.CreateInterestDto
	if !bindJSON(c, &in) {
		return
	}
	res, err := a.svc.Interests.Create(c.Request.Context(), in)
	respond(c, a.logger, http.StatusCreated, res, err)
}

func (a *api) listInterests(c *gin.Context) {
	page, size := pagination(c)
	res, err := a.svc.Interests.GetPaged(c.Request.Context(), page, size)
	respond(c, a.logger, http.StatusOK, res, err)
}

func (a *api) getInterest(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	res, err := a.svc.Interests.GetByID(c.Request.Context(), id)
	respond(c, a.logger, http.StatusOK, res, err)
}

func (a *api) updateInterest(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var in dto.UpdateInterestDto
	if !bindJSON(c, &in) {
		return
	}
	res, err := a.svc.Interests.Update(c.Request.Context(), id, in)
	respond(c, a.logger, http.StatusNoContent, res, err)
}

func (a *api) deleteInterest(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	res, err := a.svc.Interests.Delete(c.Request.Context(), id)
	respond(c, a.logger, http.StatusNoContent, res, err)
}


func (a *api) attachUserInterest(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}
	interestID, ok := pathID(c, "interest_id")
	if !ok {
		return
	}
	res, err := a.svc.Interests.AttachToUser(c.Request.Context(), userID, interestID)
	respond(c, a.logger, http.StatusNoContent, res, err)
}
