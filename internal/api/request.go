package api

import (
	"net/http"
	"strconv"
	"time"

	"sportbook/internal/apperr"
	"sportbook/internal/db"
	"sportbook/internal/logger"

	"github.com/gin-gonic/gin"
)

const DateLayout = "2006-01-02"

// RespondError writes err as the JSON error envelope. Internal errors are
// logged with their cause and answered with a generic message.
func RespondError(c *gin.Context, err error) {
	kind := apperr.KindOf(err)
	if kind == apperr.KindInternal {
		logger.Error("request failed",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"request_id", c.GetString("request_id"),
			"error", err,
		)
	}
	c.AbortWithStatusJSON(apperr.HTTPStatus(kind), ErrorResponse{
		Error: ErrorBody{Kind: string(kind), Message: apperr.Message(err)},
	})
}

func BadRequest(c *gin.Context, message string) {
	RespondError(c, apperr.BadRequest(message))
}

func IDParam(c *gin.Context, name string) (int, error) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		return 0, apperr.BadRequest("invalid " + name)
	}
	return id, nil
}

// Page reads ?page= and ?limit= and clamps them.
func Page(c *gin.Context) (int, int, error) {
	page, err := queryInt(c, "page")
	if err != nil {
		return 0, 0, err
	}
	limit, err := queryInt(c, "limit")
	if err != nil {
		return 0, 0, err
	}
	page, limit = db.NormalizePage(page, limit)
	return page, limit, nil
}

func queryInt(c *gin.Context, key string) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperr.BadRequest("invalid " + key)
	}
	return v, nil
}

func QueryIntPtr(c *gin.Context, key string) (*int, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, apperr.BadRequest("invalid " + key)
	}
	return &v, nil
}

func QueryFloatPtr(c *gin.Context, key string) (*float64, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, apperr.BadRequest("invalid " + key)
	}
	return &v, nil
}

// QueryDatePtr parses an optional YYYY-MM-DD query value.
func QueryDatePtr(c *gin.Context, key string) (*time.Time, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	d, err := time.Parse(DateLayout, raw)
	if err != nil {
		return nil, apperr.BadRequest("invalid " + key + ", expected YYYY-MM-DD")
	}
	return &d, nil
}

func QueryStringPtr(c *gin.Context, key string) *string {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	return &raw
}

func OK(c *gin.Context, body interface{}) {
	c.JSON(http.StatusOK, body)
}
