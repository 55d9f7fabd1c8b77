package helper

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// FormatValidatorErrors mengubah error validator.v10 menjadi map field → pesan
// (dipakai JsonValidationError untuk body 422).
func FormatValidatorErrors(err error) map[string][]string {
	out := map[string][]string{}
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		out["body"] = []string{"Format tidak valid."}
		return out
	}
	for _, fe := range ve {
		field := strings.ToLower(fe.Field())
		var msg string
		switch fe.Tag() {
		case "required":
			msg = field + " wajib diisi."
		case "email":
			msg = "Format email tidak valid."
		case "min":
			msg = field + " minimal " + fe.Param() + "."
		case "max":
			msg = field + " maksimal " + fe.Param() + "."
		case "gt":
			msg = field + " harus lebih dari " + fe.Param() + "."
		case "oneof":
			msg = field + " harus salah satu dari: " + fe.Param() + "."
		default:
			msg = field + " tidak valid."
		}
		out[field] = append(out[field], msg)
	}
	return out
}
