package httpapi

import (
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Gabo-RDev/LinkUp/internal/dto"
)

// photoField is the multipart field carrying a profile photo.
const photoField = "profile_photo"

func (a *api) registerAdmins(g *gin.RouterGroup) {
	g.POST("", a.createAdmin)
	g.GET("", a.listAdmins)
	g.GET("/:id", a.getAdmin)
	g.PUT("/:id", a.updateAdmin)
	g.DELETE("/:id", a.deleteAdmin)
	g.PUT("/:id/password", a.changePassword)

	g.POST("/users/:id/ban", a.banUser)
	g.POST("/users/:id/unban", a.unbanUser)
}

// isMultipart reports whether the request carries a multipart form.
func isMultipart(c *gin.Context) bool {
	return c.ContentType() == gin.MIMEMultipartPOSTForm
}

// formPhoto opens the optional profile photo. The returned closer is never nil.
func formPhoto(c *gin.Context) (*dto.FileUpload, func(), error) {
	header, err := c.FormFile(photoField)
	if err != nil {
		if err == http.ErrMissingFile {
			return nil, func() {}, nil
		}
		return nil, func() {}, err
	}

	var file multipart.File
	if file, err = header.Open(); err != nil {
		return nil, func() {}, err
	}
	return &dto.FileUpload{Name: header.Filename, Content: file}, func() { _ = file.Close() }, nil
}

func (a *api) createAdmin(c *gin.Context) {
	var in dto.CreateAdminDto
	if isMultipart(c) {
		in = dto.CreateAdminDto{
			FirstName: c.PostForm("first_name"),
			LastName:  c.PostForm("last_name"),
			UserName:  c.PostForm("user_name"),
			Email:     c.PostForm("email"),
			Password:  c.PostForm("password"),
		}
		photo, closePhoto, err := formPhoto(c)
		if err != nil {
			badRequest(c, "Malformed profile photo.")
			return
		}
		defer closePhoto()
		in.ProfilePhoto = photo
	} else if !bindJSON(c, &in) {
		return
	}

	res, err := a.svc.Admins.Create(c.Request.Context(), in)
	respond(c, a.logger, http.StatusCreated, res, err)
}

func (a *api) listAdmins(c *gin.Context) {
	page, size := pagination(c)
	res, err := a.svc.Admins.GetPaged(c.Request.Context(), page, size)
	respond(c, a.logger, http.StatusOK, res, err)
}

func (a *api) getAdmin(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	res, err := a.svc.Admins.GetByID(c.Request.Context(), id)
	respond(c, a.logger, http.StatusOK, res, err)
}

func (a *api) updateAdmin(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var in dto.UpdateAdminDto
	if isMultipart(c) {
		in = dto.UpdateAdminDto{
			FirstName: c.PostForm("first_name"),
			LastName:  c.PostForm("last_name"),
			UserName:  c.PostForm("user_name"),
			Email:     c.PostForm("email"),
		}
		photo, closePhoto, err := formPhoto(c)
		if err != nil {
			badRequest(c, "Malformed profile photo.")
			return
		}
		defer closePhoto()
		in.ProfilePhoto = photo
	} else if !bindJSON(c, &in) {
		return
	}

	res, err := a.svc.Admins.Update(c.Request.Context(), id, in)
	respond(c, a.logger, http.StatusNoContent, res, err)
}

func (a *api) deleteAdmin(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	res, err := a.svc.Admins.Delete(c.Request.Context(), id)
	respond(c, a.logger, http.StatusNoContent, res, err)
}

func (a *api) changePassword(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var in dto.ChangePasswordDto
	if !bindJSON(c, &in) {
		return
	}
	res, err := a.svc.Admins.ChangePassword(c.Request.Context(), id, in)
	respond(c, a.logger, http.StatusNoContent, res, err)
}

type statusMessage struct {
	Message string `json:"message"`
}

func (a *api) banUser(c *gin.Context) {
	a.setUserStatus(c, true)
}

func (a *api) unbanUser(c *gin.Context) {
	a.setUserStatus(c, false)
}

func (a *api) setUserStatus(c *gin.Context, banned bool) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	update := a.svc.Admins.UnbanUser
	if banned {
		update = a.svc.Admins.BanUser
	}

	res, err := update(c.Request.Context(), id)
	if err != nil || res.IsFailure() {
		respond(c, a.logger, http.StatusOK, res, err)
		return
	}
	c.JSON(http.StatusOK, statusMessage{Message: res.MustValue()})
}
