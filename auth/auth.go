package auth

import (
	"encoding/json"
	"net/http"
	"os"
	"time"

	"agrimitra/db"
	"agrimitra/models"
	"agrimitra/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Phone    string `json:"phone,omitempty"`
	Village  string `json:"village,omitempty"`
}

func issueToken(userID string) (string, error) {
	claims := jwt.MapClaims{
		"sub": userID,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

func Register(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var creds credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil || creds.Username == "" || len(creds.Password) < 6 {
		utils.RespondWithError(w, http.StatusBadRequest, "Username and a password of 6+ characters are required")
		return
	}

	ctx, cancel := db.Ctx()
	defer cancel()

	count, err := db.UserCollection.CountDocuments(ctx, bson.M{"username": creds.Username})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Registration failed")
		return
	}
	if count > 0 {
		utils.RespondWithError(w, http.StatusConflict, "Username already taken")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Registration failed")
		return
	}

	user := models.User{
		UserID:       uuid.NewString(),
		Username:     creds.Username,
		Phone:        creds.Phone,
		Village:      creds.Village,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	if _, err := db.UserCollection.InsertOne(ctx, user); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Registration failed")
		return
	}

	token, err := issueToken(user.UserID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Registration failed")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "token": token, "userid": user.UserID})
}

func Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var creds credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx, cancel := db.Ctx()
	defer cancel()

	var user models.User
	err := db.UserCollection.FindOne(ctx, bson.M{"username": creds.Username}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Login failed")
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)) != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := issueToken(user.UserID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Login failed")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "token": token, "userid": user.UserID})
}

// RefreshToken reissues a token for the already-authenticated caller.
func RefreshToken(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromContext(r.Context())
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	token, err := issueToken(userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Refresh failed")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "token": token})
}
