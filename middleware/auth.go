package middleware

import (
	"net/http"
	"strings"

	"tour-backend/services"
	"tour-backend/utils"

	"github.com/gin-gonic/gin"
)

// CustomerKey is the context key under which RequireAuth stores the
// resolved customer.
const CustomerKey = "customer"

// sessionToken pulls the token from the Authorization header, the
// session_token cookie or a ?token= query parameter, in that order.
func sessionToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
	}
	if cookie, err := c.Cookie("session_token"); err == nil && cookie != "" {
		return cookie
	}
	return strings.TrimSpace(c.Query("token"))
}

// RequireAuth guards routes that need a logged-in customer. Requests
// without a valid session get a 401 pointing at the login route.
func RequireAuth(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := sessionToken(c)
		customer, err := auth.SessionCustomer(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message":  utils.Flash(utils.FlashWarning, "Please login to view your bookings."),
				"redirect": "/api/auth/login",
			})
			return
		}
		c.Set(CustomerKey, customer)
		c.Next()
	}
}
