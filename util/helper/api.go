package helper_util

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// GetPaginationParams reads the 1-based page and limit query parameters.
func GetPaginationParams(c *gin.Context) (page int64, limit int64, err error) {
	page, err = strconv.ParseInt(c.DefaultQuery("page", "1"), 10, 64)
	if err != nil {
		return 0, 0, err
	}
	limit, err = strconv.ParseInt(c.DefaultQuery("limit", "20"), 10, 64)
	if err != nil {
		return 0, 0, err
	}
	return page, limit, nil
}
