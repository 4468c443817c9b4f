package controllers

import (
	"net/http"

	"github.com/eventlyhq/eventbackend/utils"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

func Home() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Welcome to the Event Backend API!"})
	}
}

// Health pings the primary so load balancers see store outages.
func Health(client *mongo.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := client.Ping(c.Request.Context(), readpref.Primary()); err != nil {
			utils.Fail(c, utils.Wrap(utils.KindInternal, "database unreachable", err))
			return
		}
		utils.Success(c, gin.H{"message": "MongoDB connection successful"})
	}
}
