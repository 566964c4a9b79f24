package controllers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/bashafinder/backend/config"
	"github.com/bashafinder/backend/models"
	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Favorites live as an array of property ids on the user row, the shape
// the mobile and web clients already read.

// addFavoriteStatus maps an $addToSet result to an HTTP error. A missing
// user row matches nothing; a matched-but-unmodified row means the id was
// already in the set. Returns 0 when the update went through.
func addFavoriteStatus(matched, modified int64) (int, string) {
	switch {
	case matched == 0:
		return http.StatusNotFound, "User not found"
	case modified == 0:
		return http.StatusConflict, "Property is already in favorites"
	default:
		return 0, ""
	}
}

func AddFavorite(client *mongo.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := r.Context().Value(UserIDKey).(string)
		if !ok {
			log.Println("User ID missing in context")
			http.Error(w, "User ID missing in context", http.StatusUnauthorized)
			return
		}

		propertyIDHex := mux.Vars(r)["propertyID"]
		propertyObjID, err := primitive.ObjectIDFromHex(propertyIDHex)
		if err != nil {
			log.Println("Invalid property ID format ", err)
			http.Error(w, "Invalid property ID format", http.StatusBadRequest)
			return
		}

		err = config.PropertyCollection.FindOne(context.TODO(), bson.M{"_id": propertyObjID}).Err()
		if err == mongo.ErrNoDocuments {
			http.Error(w, "Property not found", http.StatusNotFound)
			return
		}
		if err != nil {
			log.Println("Failed to check property ", err)
			http.Error(w, "Failed to check property", http.StatusInternalServerError)
			return
		}

		userObjID, err := primitive.ObjectIDFromHex(userID)
		if err != nil {
			http.Error(w, "Invalid user ID", http.StatusUnauthorized)
			return
		}

		res, err := config.UserCollection.UpdateOne(context.TODO(),
			bson.M{"_id": userObjID},
			bson.M{"$addToSet": bson.M{"favorites": propertyIDHex}})
		if err != nil {
			log.Println("Failed to add property to favorites ", err)
			http.Error(w, "Failed to add property to favorites", http.StatusInternalServerError)
			return
		}
		if status, msg := addFavoriteStatus(res.MatchedCount, res.ModifiedCount); status != 0 {
			log.Println(msg)
			http.Error(w, msg, status)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.APIResponse{
			Success: true,
			Message: "Property added to favorites",
			Data:    propertyIDHex,
		})
	}
}

func GetFavorites(client *mongo.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := r.Context().Value(UserIDKey).(string)
		if !ok {
			log.Println("User ID missing in context")
			http.Error(w, "User ID missing in context", http.StatusUnauthorized)
			return
		}

		userObjID, err := primitive.ObjectIDFromHex(userID)
		if err != nil {
			http.Error(w, "Invalid user ID", http.StatusUnauthorized)
			return
		}

		var user models.User
		if err := config.UserCollection.FindOne(context.TODO(), bson.M{"_id": userObjID}).Decode(&user); err != nil {
			log.Println("Failed to fetch user ", err)
			http.Error(w, "Failed to fetch favorites", http.StatusInternalServerError)
			return
		}

		ids := make([]primitive.ObjectID, 0, len(user.Favorites))
		for _, idHex := range user.Favorites {
			if objID, err := primitive.ObjectIDFromHex(idHex); err == nil {
				ids = append(ids, objID)
			}
		}

		properties := make([]models.Property, 0, len(ids))
		if len(ids) > 0 {
			cursor, err := config.PropertyCollection.Find(context.TODO(), bson.M{"_id": bson.M{"$in": ids}})
			if err != nil {
				log.Println("Failed to fetch favorite properties ", err)
				http.Error(w, "Failed to fetch favorite properties", http.StatusInternalServerError)
				return
			}
			defer cursor.Close(context.TODO())

			var records []models.PropertyRecord
			if err := cursor.All(context.TODO(), &records); err != nil {
				log.Println("Failed to decode favorite properties ", err)
				http.Error(w, "Failed to decode favorite properties", http.StatusInternalServerError)
				return
			}
			for _, rec := range records {
				p := rec.ToProperty()
				p.IsFavorite = true
				properties = append(properties, p)
			}
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.APIResponse{
			Success: true,
			Message: "Fetched favorite properties",
			Data:    properties,
		})
	}
}

func DeleteFavorite(client *mongo.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := r.Context().Value(UserIDKey).(string)
		if !ok {
			log.Println("User ID missing in context")
			http.Error(w, "User ID missing in context", http.StatusUnauthorized)
			return
		}

		propertyIDHex := mux.Vars(r)["propertyID"]
		if _, err := primitive.ObjectIDFromHex(propertyIDHex); err != nil {
			log.Println("Invalid property ID format ", err)
			http.Error(w, "Invalid property ID format", http.StatusBadRequest)
			return
		}

		userObjID, err := primitive.ObjectIDFromHex(userID)
		if err != nil {
			http.Error(w, "Invalid user ID", http.StatusUnauthorized)
			return
		}

		res, err := config.UserCollection.UpdateOne(context.TODO(),
			bson.M{"_id": userObjID},
			bson.M{"$pull": bson.M{"favorites": propertyIDHex}})
		if err != nil {
			log.Println("Failed to remove property from favorites ", err)
			http.Error(w, "Failed to remove property from favorites", http.StatusInternalServerError)
			return
		}

		if res.ModifiedCount == 0 {
			log.Println("Favorite not found")
			http.Error(w, "Favorite not found", http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.APIResponse{
			Success: true,
			Message: "Property removed from favorites",
			Data:    nil,
		})
	}
}
