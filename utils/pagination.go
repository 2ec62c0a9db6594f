package utils

import "github.com/gofiber/fiber/v2"

// ParseLimitOffset reads limit/offset query params with sane bounds:
// limit clamped to [1, maxLimit], offset floored at 0.
func ParseLimitOffset(c *fiber.Ctx, defaultLimit, maxLimit int) (limit, offset int) {
	limit = c.QueryInt("limit", defaultLimit)
	if limit < 1 {
		limit = 1
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	offset = c.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
