package controllers

import (
	"errors"
	"strings"
	"time"

	"github.com/eventlyhq/eventbackend/config"
	"github.com/eventlyhq/eventbackend/dto"
	"github.com/eventlyhq/eventbackend/models"
	"github.com/eventlyhq/eventbackend/store"
	"github.com/eventlyhq/eventbackend/utils"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Signup registers a user or admin account depending on which route it is
// mounted on. It never auto-logs-in.
func Signup(users store.UserStore, role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.SignupDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			utils.Fail(c, utils.E(utils.KindValidation, "invalid request body"))
			return
		}

		name := strings.TrimSpace(body.Name)
		email := strings.ToLower(strings.TrimSpace(body.Email))
		if name == "" || email == "" || body.Password == "" {
			utils.Fail(c, utils.E(utils.KindValidation, "All fields are required"))
			return
		}

		hash, err := utils.HashPassword(body.Password)
		if err != nil {
			utils.Fail(c, utils.Wrap(utils.KindInternal, "failed to hash password", err))
			return
		}

		user := models.User{
			Name:         name,
			Email:        email,
			PasswordHash: hash,
			Role:         role,
			CreatedAt:    time.Now().UTC(),
		}
		if _, err := users.Insert(c.Request.Context(), &user); err != nil {
			if errors.Is(err, store.ErrDuplicate) {
				utils.Fail(c, utils.E(utils.KindConflict, "Email already exists"))
				return
			}
			utils.Fail(c, utils.Wrap(utils.KindInternal, "something went wrong", err))
			return
		}

		message := "User created successfully"
		if role == models.RoleAdmin {
			message = "Admin created successfully"
		}
		utils.Success(c, gin.H{"message": message})
	}
}

// Login checks credentials against the users collection and issues a token
// pair. Wrong email, wrong role and wrong password are indistinguishable
// to the caller.
func Login(users store.UserStore, role models.Role, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.LoginDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			utils.Fail(c, utils.E(utils.KindValidation, "invalid request body"))
			return
		}

		email := strings.ToLower(strings.TrimSpace(body.Email))
		if email == "" || body.Password == "" {
			utils.Fail(c, utils.E(utils.KindValidation, "All fields are required"))
			return
		}

		user, err := users.FindByEmailAndRole(c.Request.Context(), email, role)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				utils.Fail(c, utils.E(utils.KindInvalidCredentials, "invalid credentials"))
				return
			}
			utils.Fail(c, utils.Wrap(utils.KindInternal, "something went wrong", err))
			return
		}

		if err := utils.CheckPassword(user.PasswordHash, body.Password); err != nil {
			utils.Fail(c, utils.E(utils.KindInvalidCredentials, "invalid credentials"))
			return
		}

		accessToken, refreshToken, err := issueTokenPair(user, cfg)
		if err != nil {
			utils.Fail(c, utils.Wrap(utils.KindInternal, "failed to generate tokens", err))
			return
		}

		payload := gin.H{
			"accessToken":  accessToken,
			"refreshToken": refreshToken,
		}
		if role == models.RoleAdmin {
			payload["name"] = user.Name
		}
		utils.Success(c, payload)
	}
}

// Refresh exchanges a valid refresh token for a fresh pair. Tokens are not
// persisted; validity is purely cryptographic, so the user is re-resolved
// from the store to drop tokens for deleted accounts.
func Refresh(users store.UserStore, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.RefreshDTO
		if err := c.ShouldBindJSON(&body); err != nil || body.RefreshToken == "" {
			utils.Fail(c, utils.E(utils.KindValidation, "missing refresh token"))
			return
		}

		claims, err := utils.ValidateToken(body.RefreshToken, cfg.JWTRefreshSecret)
		if err != nil {
			utils.Fail(c, err)
			return
		}

		userID, err := bson.ObjectIDFromHex(claims.Subject)
		if err != nil {
			utils.Fail(c, utils.E(utils.KindInvalidToken, "invalid or expired token"))
			return
		}

		user, err := users.FindByID(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				utils.Fail(c, utils.E(utils.KindInvalidToken, "invalid or expired token"))
				return
			}
			utils.Fail(c, utils.Wrap(utils.KindInternal, "something went wrong", err))
			return
		}

		accessToken, refreshToken, err := issueTokenPair(user, cfg)
		if err != nil {
			utils.Fail(c, utils.Wrap(utils.KindInternal, "failed to generate tokens", err))
			return
		}

		utils.Success(c, gin.H{
			"accessToken":  accessToken,
			"refreshToken": refreshToken,
		})
	}
}

func issueTokenPair(user *models.User, cfg *config.Config) (string, string, error) {
	accessToken, err := utils.GenerateAccessToken(user.ID.Hex(), user.Email, string(user.Role), cfg.JWTSecret, cfg.AccessTTL)
	if err != nil {
		return "", "", err
	}
	refreshToken, err := utils.GenerateRefreshToken(user.ID.Hex(), cfg.JWTRefreshSecret, cfg.RefreshTTL)
	if err != nil {
		return "", "", err
	}
	return accessToken, refreshToken, nil
}
