package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/JeuneDauphin/PersonalManagementApp-sub000/models"
	"github.com/JeuneDauphin/PersonalManagementApp-sub000/utils"
)

// AuthHandler owns the user account endpoints. Tokens are only issued when
// the process was started with a JWT secret.
type AuthHandler struct {
	*Handler
	Secret []byte
}

func NewAuth(h *Handler, secret []byte) *AuthHandler {
	return &AuthHandler{Handler: h, Secret: secret}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req models.AuthRequest
	if err := bindStrict(c, &req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request", err)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to hash password", err)
		return
	}

	now := time.Now().UTC()
	user := models.User{
		Username:  req.Username,
		Email:     req.Email,
		Password:  string(hashed),
		CreatedAt: now,
		UpdatedAt: now,
	}

	ctx, cancel := dbContext(c)
	defer cancel()
	if _, err := h.col("users").InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			respondError(c, http.StatusConflict, "User already exists", nil)
		} else {
			respondError(c, http.StatusInternalServerError, "Failed to create user", err)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully"})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req models.AuthRequest
	if err := bindStrict(c, &req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request", err)
		return
	}

	ctx, cancel := dbContext(c)
	defer cancel()

	var user models.User
	err := h.col("users").FindOne(ctx, bson.M{"email": req.Email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		respondError(c, http.StatusUnauthorized, "Invalid credentials", nil)
		return
	}
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Database error", err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		respondError(c, http.StatusUnauthorized, "Invalid credentials", nil)
		return
	}

	token, err := utils.GenerateJwt(h.Secret, user.ID.Hex())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to generate token", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"user":    user,
	})
}
