package middleware

import (
	"errors"
	"strings"

	"github.com/eventlyhq/eventbackend/models"
	"github.com/eventlyhq/eventbackend/store"
	"github.com/eventlyhq/eventbackend/utils"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"
)

const identityKey = "identity"

// AuthMiddleware resolves the bearer token to a store-backed identity.
// A token that verifies but whose subject no longer exists in the users
// collection is treated the same as a bad token.
func AuthMiddleware(users store.UserStore, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			utils.AbortFail(c, utils.E(utils.KindInvalidToken, "missing token"))
			return
		}

		tokenStr := strings.TrimPrefix(header, "Bearer ")
		claims, err := utils.ValidateToken(tokenStr, secret)
		if err != nil {
			utils.AbortFail(c, err)
			return
		}

		userID, err := bson.ObjectIDFromHex(claims.Subject)
		if err != nil {
			utils.AbortFail(c, utils.E(utils.KindInvalidToken, "invalid or expired token"))
			return
		}

		user, err := users.FindByID(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				utils.AbortFail(c, utils.E(utils.KindInvalidToken, "invalid or expired token"))
				return
			}
			utils.AbortFail(c, utils.Wrap(utils.KindInternal, "something went wrong", err))
			return
		}

		c.Set(identityKey, models.Identity{
			ID:    user.ID,
			Role:  user.Role,
			Name:  user.Name,
			Email: user.Email,
		})
		c.Next()
	}
}

// IdentityFrom returns the identity placed in the context by AuthMiddleware.
func IdentityFrom(c *gin.Context) (models.Identity, bool) {
	val, ok := c.Get(identityKey)
	if !ok {
		return models.Identity{}, false
	}
	identity, ok := val.(models.Identity)
	return identity, ok
}
