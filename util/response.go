package util

import "github.com/gin-gonic/gin"

func SuccessResponse(msg string) gin.H {
	return gin.H{"message": msg}
}

func FailedResponse(msg string) gin.H {
	return gin.H{"error": msg}
}

/*
* Write the failure for err on the context
* fallback is the message used for unclassified errors
 */
func AbortWithError(c *gin.Context, err error, fallback string) {
	c.JSON(StatusFor(err), FailedResponse(PublicMessage(err, fallback)))
}
