package controllers

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/bashafinder/backend/config"
	"github.com/bashafinder/backend/models"
	"github.com/bashafinder/backend/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type ContextKey string

const UserIDKey = ContextKey("userID")

type Response struct {
	Message string `json:"message"`
	Token   string `json:"token,omitempty"`
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	NameBn   string `json:"name_bn"`
	Phone    string `json:"phone"`
	Gender   string `json:"gender"`
}

func RegisterUser(client *mongo.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("Error decoding registration data: %v", err)
			http.Error(w, "Invalid request payload", http.StatusBadRequest)
			return
		}

		req.Email = strings.ToLower(strings.TrimSpace(req.Email))
		if req.Email == "" || req.Password == "" || req.Name == "" {
			http.Error(w, "email, password and name are required", http.StatusBadRequest)
			return
		}

		exists := config.UserCollection.FindOne(context.TODO(), bson.M{"email": req.Email})
		if exists.Err() == nil {
			log.Printf("User email already exists: %s", req.Email)
			http.Error(w, "Email already exists", http.StatusConflict)
			return
		}

		hashedPwd, err := utils.HashPassword(req.Password)
		if err != nil {
			log.Printf("Error hashing password: %v", err)
			http.Error(w, "Failed to hash password", http.StatusInternalServerError)
			return
		}

		user := models.User{
			NameEn:       req.Name,
			NameBn:       req.NameBn,
			Email:        req.Email,
			Password:     hashedPwd,
			Phone:        req.Phone,
			Gender:       req.Gender,
			Favorites:    []string{},
			MyProperties: []string{},
			CreatedAt:    time.Now(),
		}

		if _, err := config.UserCollection.InsertOne(context.TODO(), user); err != nil {
			log.Printf("Error inserting user into the database: %v", err)
			http.Error(w, "Failed to create user", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(Response{Message: "User registered successfully"})
	}
}

func LoginUser(client *mongo.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var credentials struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
			log.Printf("Error decoding login credentials: %v", err)
			http.Error(w, "Invalid payload", http.StatusBadRequest)
			return
		}

		email := strings.ToLower(strings.TrimSpace(credentials.Email))

		var dbUser models.User
		err := config.UserCollection.FindOne(context.TODO(), bson.M{"email": email}).Decode(&dbUser)
		if err != nil {
			log.Printf("User not found: %s", email)
			http.Error(w, "Invalid credentials", http.StatusUnauthorized)
			return
		}

		if !utils.CheckPasswordHash(credentials.Password, dbUser.Password) {
			log.Printf("Invalid credentials for user: %s", email)
			http.Error(w, "Invalid credentials", http.StatusUnauthorized)
			return
		}

		token, err := utils.GenerateJWT(dbUser.ID.Hex())
		if err != nil {
			log.Printf("Error generating JWT token: %v", err)
			http.Error(w, "Failed to generate token", http.StatusInternalServerError)
			return
		}

		json.NewEncoder(w).Encode(Response{Message: "Login successful", Token: token})
	}
}

// RequestPasswordReset issues a single-use token for the given email. The
// response does not reveal whether the account exists.
func RequestPasswordReset(client *mongo.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Email string `json:"email"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid payload", http.StatusBadRequest)
			return
		}
		email := strings.ToLower(strings.TrimSpace(req.Email))
		if email == "" {
			http.Error(w, "email is required", http.StatusBadRequest)
			return
		}

		err := config.UserCollection.FindOne(context.TODO(), bson.M{"email": email}).Err()
		if err == nil {
			buf := make([]byte, 24)
			if _, err := rand.Read(buf); err != nil {
				log.Printf("Error generating reset token: %v", err)
				http.Error(w, "Failed to create reset token", http.StatusInternalServerError)
				return
			}
			reset := models.PasswordReset{
				Email:     email,
				Token:     hex.EncodeToString(buf),
				ExpiresAt: time.Now().Add(1 * time.Hour),
				CreatedAt: time.Now(),
			}
			if _, err := config.PasswordResetCollection.InsertOne(context.TODO(), reset); err != nil {
				log.Printf("Error storing reset token: %v", err)
				http.Error(w, "Failed to create reset token", http.StatusInternalServerError)
				return
			}
			// Mail delivery is handled out of band.
			log.Printf("Password reset token issued for %s", email)
		} else if err != mongo.ErrNoDocuments {
			log.Printf("Error looking up user for reset: %v", err)
			http.Error(w, "Failed to create reset token", http.StatusInternalServerError)
			return
		}

		json.NewEncoder(w).Encode(Response{Message: "If the account exists, a reset link has been sent"})
	}
}
