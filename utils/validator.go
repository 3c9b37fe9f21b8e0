package utils

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"project-user-api/models"
)

var validate = validator.New()

func init() {
	// Closed-set checks for the workspace enums, usable as struct tags.
	_ = validate.RegisterValidation("workspace_role", func(fl validator.FieldLevel) bool {
		_, err := models.ParseWorkspaceRole(fl.Field().String())
		return err == nil
	})
	_ = validate.RegisterValidation("join_status", func(fl validator.FieldLevel) bool {
		_, err := models.ParseJoinRequestStatus(fl.Field().String())
		return err == nil
	})
}

// ValidateStruct runs the validate tags on s and flattens any failures into a
// single readable error.
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var messages []string
	for _, err := range err.(validator.ValidationErrors) {
		field := strings.ToLower(err.Field())
		tag := err.Tag()
		param := err.Param()

		switch tag {
		case "required":
			messages = append(messages, field+" is required")
		case "min":
			messages = append(messages, field+" must be at least "+param+" characters")
		case "max":
			messages = append(messages, field+" must be at most "+param+" characters")
		case "email":
			messages = append(messages, field+" must be a valid email")
		case "uuid":
			messages = append(messages, field+" must be a valid UUID")
		case "workspace_role":
			messages = append(messages, field+" must be one of OWNER, ADMIN, MEMBER")
		case "join_status":
			messages = append(messages, field+" must be one of PENDING, APPROVED, REJECTED")
		default:
			messages = append(messages, field+" is invalid")
		}
	}

	return errors.New(strings.Join(messages, ", "))
}
