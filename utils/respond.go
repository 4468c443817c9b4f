package utils

import (
	"errors"
	"log"

	"github.com/gin-gonic/gin"
)

// Success writes the {"status":"success", ...} envelope.
func Success(c *gin.Context, payload gin.H) {
	body := gin.H{"status": "success"}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(200, body)
}

// Fail writes the {"status":"error","message":...} envelope. Unclassified
// errors are logged with their cause but reported as a generic internal
// failure so store-internal text never reaches the client.
func Fail(c *gin.Context, err error) {
	var ae *AppError
	if !errors.As(err, &ae) {
		ae = Wrap(KindInternal, "something went wrong", err)
	}
	if ae.Err != nil {
		log.Printf("%s: %v", ae.Kind, ae.Err)
	}
	c.JSON(StatusFor(ae.Kind), gin.H{"status": "error", "message": ae.Message})
}

// AbortFail is Fail for middleware, stopping the handler chain.
func AbortFail(c *gin.Context, err error) {
	var ae *AppError
	if !errors.As(err, &ae) {
		ae = Wrap(KindInternal, "something went wrong", err)
	}
	if ae.Err != nil {
		log.Printf("%s: %v", ae.Kind, ae.Err)
	}
	c.AbortWithStatusJSON(StatusFor(ae.Kind), gin.H{"status": "error", "message": ae.Message})
}
