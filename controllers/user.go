package controllers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/bashafinder/backend/config"
	"github.com/bashafinder/backend/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func GetProfile(client *mongo.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := r.Context().Value(UserIDKey).(string)
		if !ok {
			http.Error(w, "User ID missing in context", http.StatusUnauthorized)
			return
		}

		userObjID, err := primitive.ObjectIDFromHex(userID)
		if err != nil {
			http.Error(w, "Invalid user ID", http.StatusUnauthorized)
			return
		}

		var user models.User
		err = config.UserCollection.FindOne(context.TODO(), bson.M{"_id": userObjID}).Decode(&user)
		if err == mongo.ErrNoDocuments {
			http.Error(w, "User not found", http.StatusNotFound)
			return
		}
		if err != nil {
			log.Printf("Error fetching profile for %s: %v", userID, err)
			http.Error(w, "Failed to fetch profile", http.StatusInternalServerError)
			return
		}

		user.Password = ""
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(user)
	}
}

// UpdateProfile accepts the editable profile fields only; identity and
// bookkeeping fields are never writable through this endpoint.
func UpdateProfile(client *mongo.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := r.Context().Value(UserIDKey).(string)
		if !ok {
			http.Error(w, "User ID missing in context", http.StatusUnauthorized)
			return
		}

		userObjID, err := primitive.ObjectIDFromHex(userID)
		if err != nil {
			http.Error(w, "Invalid user ID", http.StatusUnauthorized)
			return
		}

		var req struct {
			NameEn            *string `json:"name_en"`
			NameBn            *string `json:"name_bn"`
			Phone             *string `json:"phone"`
			Gender            *string `json:"gender"`
			ProfilePictureURL *string `json:"profile_picture_url"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request payload", http.StatusBadRequest)
			return
		}

		set := bson.M{}
		if req.NameEn != nil {
			set["name_en"] = *req.NameEn
		}
		if req.NameBn != nil {
			set["name_bn"] = *req.NameBn
		}
		if req.Phone != nil {
			set["phone"] = *req.Phone
		}
		if req.Gender != nil {
			set["gender"] = *req.Gender
		}
		if req.ProfilePictureURL != nil {
			set["profile_picture_url"] = *req.ProfilePictureURL
		}
		if len(set) == 0 {
			http.Error(w, "Nothing to update", http.StatusBadRequest)
			return
		}

		res, err := config.UserCollection.UpdateOne(context.TODO(), bson.M{"_id": userObjID}, bson.M{"$set": set})
		if err != nil {
			log.Printf("Profile update failed for %s: %v", userID, err)
			http.Error(w, "Profile update failed", http.StatusInternalServerError)
			return
		}
		if res.MatchedCount == 0 {
			http.Error(w, "User not found", http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.APIResponse{Success: true, Message: "Profile updated"})
	}
}
