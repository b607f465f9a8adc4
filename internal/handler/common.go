package handler

import (
	"net/http"
	"ticket-purchase/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func BindJson(c *gin.Context, obj interface{}) error {
	return bind(c, c.ShouldBindJSON(obj))
}

func BindQuery(c *gin.Context, obj interface{}) error {
	return bind(c, c.ShouldBindQuery(obj))
}

func bind(c *gin.Context, err error) error {
	if err != nil {
		logger.WithComponent("handler").Debug("bind failed",
			zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return err
	}
	return nil
}
