package handlers

import (
	"net/http"
	"strconv"

	"taller_central/pkg"

	"github.com/gin-gonic/gin"
)

// parseIDParam reads a positive integer path parameter. On failure it writes
// the error response and reports false.
func parseIDParam(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		appErr := pkg.NewDomainErrorSimple("INVALID_ID", "Invalid id parameter", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return 0, false
	}
	return id, true
}
