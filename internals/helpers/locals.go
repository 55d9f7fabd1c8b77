package helper

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// GetUserID membaca user_id dari Locals (diisi AuthMiddleware).
// Mengembalikan uuid.Nil jika request anonim.
func GetUserID(c *fiber.Ctx) uuid.UUID {
	v := c.Locals("user_id")
	s, ok := v.(string)
	if !ok || s == "" {
		return uuid.Nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil
	}
	return id
}

// GetUserIDPtr seperti GetUserID tapi nil untuk anonim (dipakai skrining tamu).
func GetUserIDPtr(c *fiber.Ctx) *uuid.UUID {
	id := GetUserID(c)
	if id == uuid.Nil {
		return nil
	}
	return &id
}
