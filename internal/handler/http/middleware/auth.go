package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/bereketsh/viewtube/internal/handler/http/dto"
	"github.com/bereketsh/viewtube/internal/usecase"
	usecasecontract "github.com/bereketsh/viewtube/internal/usecase/contract"
)

// AuthMiddleWare verifies the bearer access token and resolves it to an
// existing user before the request reaches any protected handler.
func AuthMiddleWare(jwtService usecase.JWTService, userUsecase usecasecontract.IUserUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Authorization header missing"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Authorization header must be in the form 'Bearer <token>'"})
			return
		}

		claims, err := jwtService.ParseAccessToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Invalid or expired token"})
			return
		}

		// The token may outlive the account it was issued for.
		if _, err := userUsecase.GetUserByID(c.Request.Context(), claims.UserID); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Invalid or expired token"})
			return
		}

		c.Set("userID", claims.UserID)
		c.Next()
	}
}
