package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"studyplanner/pkg/apierrors"
)

// respondBindError maps a gin binding failure to the wire: constraint
// violations become a 422 with one entry per failing field, anything
// else (malformed JSON, type mismatches) a 400 with the resource's
// invalid-payload message.
func respondBindError(c *gin.Context, lang string, err error, payloadMsgKey string) {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		fields := make(map[string]string, len(validationErrors))
		for _, fieldError := range validationErrors {
			fields[fieldError.Field()] = fieldError.Tag()
		}
		c.JSON(
			http.StatusUnprocessableEntity,
			apierrors.CreateFieldError(http.StatusUnprocessableEntity, apierrors.MsgValidationFailed, lang, fields),
		)
		return
	}

	c.JSON(
		http.StatusBadRequest,
		apierrors.CreateError(http.StatusBadRequest, payloadMsgKey, lang),
	)
}
