package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/vibe-gaming/clan-api/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

func errorResponse(c *gin.Context, status int, detail string) {
	c.AbortWithStatusJSON(status, ErrorStruct{Detail: detail})
}

func internalErrorResponse(c *gin.Context, msg string, err error) {
	logger.Error(msg, zap.Error(err), zap.String("path", c.Request.URL.Path))
	errorResponse(c, http.StatusInternalServerError, InternalErrorMessage)
}

// validationErrorResponse answers 422 for bind failures. Field level errors are
// listed individually; decode errors (bad JSON, wrong types) are reported as is.
func validationErrorResponse(c *gin.Context, err error) {
	response := ValidationErrorStruct{
		Detail: ValidationFailMessage,
		Errors: []ValidationError{},
	}

	var verr validator.ValidationErrors
	if errors.As(err, &verr) {
		for _, ferr := range verr {
			response.Errors = append(response.Errors, ValidationError{ferr.Field(), msgForTag(ferr.Tag(), ferr.Param())})
		}
	} else {
		response.Detail = err.Error()
	}

	c.AbortWithStatusJSON(http.StatusUnprocessableEntity, response)
}

func msgForTag(tag string, value string) string {
	switch tag {
	case "required", "notblank":
		return "field required"
	case "oneof":
		return fmt.Sprintf("value must be one of: %s", value)
	}
	return tag
}

func messageResponse(c *gin.Context, message string) {
	c.JSON(http.StatusOK, MessageStruct{Message: message})
}
