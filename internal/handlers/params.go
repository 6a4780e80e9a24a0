package handlers

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/traineme-api/internal/dto"
	"github.com/BruksfildServices01/traineme-api/internal/httperr"
)

var errInvalidID = httperr.Validation("invalid_id", "Invalid identifier.")

// uintParam reads a positive numeric path parameter.
func uintParam(c *gin.Context, name string) (uint, error) {
	n, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || n == 0 {
		return 0, errInvalidID
	}
	return uint(n), nil
}

func pageQuery(c *gin.Context) dto.PageRequest {
	return dto.ParsePageRequest(c.Query("page"), c.Query("limit"))
}

// floatQuery returns nil for an absent parameter.
func floatQuery(c *gin.Context, name string) (*float64, error) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, httperr.Validation("invalid_query", "Query parameter "+name+" must be a number.")
	}
	return &f, nil
}
