package middleware

import (
	"slices"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// WildcardOrigin allows every origin. Browsers refuse credentials with it.
const WildcardOrigin = "*"

// CORS allows browser requests only from the listed origins. Requests from
// any other origin get no Access-Control-Allow-Origin header.
// A "*" entry allows all origins and turns credentials off.
func CORS(origins []string, allowCredentials bool) fiber.Handler {
	allowOrigins := strings.Join(origins, ",")
	if slices.Contains(origins, WildcardOrigin) {
		allowOrigins = WildcardOrigin
		allowCredentials = false
	}

	return cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowCredentials: allowCredentials,
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin,Content-Type,Accept,Authorization," + RequestIDHeader,
		ExposeHeaders:    RequestIDHeader,
	})
}
