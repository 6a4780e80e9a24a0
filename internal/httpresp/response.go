package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/traineme-api/internal/dto"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func Paginated[T any](c *gin.Context, page dto.Page[T]) {
	c.JSON(http.StatusOK, page)
}
