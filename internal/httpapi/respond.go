package httpapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Gabo-RDev/LinkUp/internal/result"
)

// StatusClientClosedRequest is answered when the caller's context was canceled.
const StatusClientClosedRequest = 499

const (
	defaultPage = 1
	defaultSize = 10
)

// errorBody is the JSON shape of every failed response.
type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// StatusFor maps a failure kind to an HTTP status.
func StatusFor(err *result.Error) int {
	switch err.Kind {
	case result.KindValidation:
		return http.StatusBadRequest
	case result.KindNotFound:
		return http.StatusNotFound
	case result.KindConflict:
		return http.StatusConflict
	case result.KindCanceled:
		return StatusClientClosedRequest
	case result.KindUpstream:
		return http.StatusBadGateway
	default:
		return http.StatusBadRequest
	}
}

// respond writes a service outcome. A fatal error is logged and answered
// with a generic 500; a failed result is answered with its code and message.
func respond[T any](c *gin.Context, logger *zap.Logger, status int, res result.Result[T], err error) {
	if err != nil {
		logger.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, errorBody{Code: "500", Message: "Internal server error."})
		return
	}

	if failure := res.Err(); failure != nil {
		c.AbortWithStatusJSON(StatusFor(failure), errorBody{Code: failure.Code, Message: failure.Message})
		return
	}

	if status == http.StatusNoContent {
		c.Status(http.StatusNoContent)
		return
	}

	value, _ := res.Value()
	c.JSON(status, value)
}

func badRequest(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, errorBody{Code: "400", Message: message})
}

// pathID parses the named uuid path parameter, answering 400 when malformed.
func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		badRequest(c, "Invalid id.")
		return uuid.Nil, false
	}
	return id, true
}

// queryID parses a required uuid query parameter.
func queryID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Query(name))
	if err != nil {
		badRequest(c, "Invalid "+name+".")
		return uuid.Nil, false
	}
	return id, true
}

// pagination reads ?page and ?size. Missing values take the defaults;
// malformed ones become 0 so the service rejects them.
func pagination(c *gin.Context) (int, int) {
	return queryInt(c, "page", defaultPage), queryInt(c, "size", defaultSize)
}

func queryInt(c *gin.Context, name string, fallback int) int {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return n
}

// bindJSON decodes the request body, answering 400 on malformed input.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		badRequest(c, "Malformed request body.")
		return false
	}
	return true
}
