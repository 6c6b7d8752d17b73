// file: internals/helpers/validation.go
package helper

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// ValidateStruct menjalankan validator.v10 dan map hasilnya ke response 422.
// Dipanggil controller setelah BodyParser sukses.
func ValidateStruct(c *fiber.Ctx, in any) (ok bool, resp error) {
	if err := validate.Struct(in); err != nil {
		ve, isVE := err.(validator.ValidationErrors)
		if !isVE {
			return false, JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
		}
		fieldErrors := make(map[string][]string, len(ve))
		for _, fe := range ve {
			fieldErrors[fe.Field()] = append(fieldErrors[fe.Field()], fe.Tag())
		}
		return false, JsonValidationError(c, fieldErrors)
	}
	return true, nil
}
