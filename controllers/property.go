package controllers

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/bashafinder/backend/config"
	"github.com/bashafinder/backend/models"
	"github.com/bashafinder/backend/search"
	"github.com/gorilla/mux"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateProperty validates the submission against the listing form table
// for its type, persists the row and records it under the owner's
// myproperties.
func CreateProperty(redisClient *redis.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := r.Context().Value(UserIDKey).(string)
		if !ok {
			log.Println("User ID missing in context")
			http.Error(w, "User ID missing in context", http.StatusUnauthorized)
			return
		}

		var property models.Property
		if err := json.NewDecoder(r.Body).Decode(&property); err != nil {
			log.Printf("Invalid request body: %v", err)
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		if problems := models.ValidateListing(property); len(problems) > 0 {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(models.APIResponse{
				Success: false,
				Message: "Listing is incomplete",
				Data:    problems,
			})
			return
		}

		record := property.ToRecord()
		record.ID = primitive.NewObjectID()
		record.CreatedBy = userID
		record.CreatedAt = time.Now()
		record.UpdatedAt = record.CreatedAt
		if record.LandlordID == "" {
			record.LandlordID = userID
		}

		if _, err := config.PropertyCollection.InsertOne(r.Context(), record); err != nil {
			log.Printf("Insert failed: %v", err)
			http.Error(w, "Failed to create property", http.StatusInternalServerError)
			return
		}

		userObjID, err := primitive.ObjectIDFromHex(userID)
		if err == nil {
			_, err = config.UserCollection.UpdateOne(context.TODO(),
				bson.M{"_id": userObjID},
				bson.M{"$addToSet": bson.M{"myproperties": record.ID.Hex()}})
		}
		if err != nil {
			log.Printf("Failed to record property %s under owner %s: %v", record.ID.Hex(), userID, err)
		}

		go func() {
			deleteListingCache(redisClient)
		}()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(record.ToProperty())
	}
}

// GetAllProperties serves the filtered listing search. Results are cached
// in redis per user and query; any listing write invalidates the cache.
func GetAllProperties(redisClient *redis.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := r.Context().Value(UserIDKey).(string)
		if !ok {
			log.Println("User ID missing in context for GetAllProperties")
			http.Error(w, "User ID missing in context", http.StatusUnauthorized)
			return
		}

		query := r.URL.Query()
		cacheKey := generateCacheKey(userID, query)

		cachedData, err := redisClient.Get(r.Context(), cacheKey).Result()
		if err == nil {
			log.Printf("Cache Hit for key: %s", cacheKey)
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(cachedData))
			return
		}
		if err != redis.Nil {
			log.Printf("Redis GET error for key %s: %v", cacheKey, err)
		}

		log.Printf("Cache Miss for key: %s", cacheKey)

		filters := search.ParseQuery(query)
		findOptions := options.Find().SetLimit(100).SetSort(bson.D{{Key: "created_at", Value: -1}})

		cursor, err := config.PropertyCollection.Find(r.Context(), search.MongoQuery(filters), findOptions)
		if err != nil {
			log.Printf("Error fetching properties with filters %+v: %v", filters, err)
			http.Error(w, "Error fetching properties", http.StatusInternalServerError)
			return
		}
		defer cursor.Close(r.Context())

		var records []models.PropertyRecord
		if err := cursor.All(r.Context(), &records); err != nil {
			log.Printf("Error decoding properties: %v", err)
			http.Error(w, "Error decoding properties", http.StatusInternalServerError)
			return
		}

		properties := make([]models.Property, 0, len(records))
		for _, rec := range records {
			properties = append(properties, rec.ToProperty())
		}
		markFavorites(r.Context(), userID, properties)

		resultBytes, err := json.Marshal(properties)
		if err != nil {
			log.Printf("Failed to serialize properties: %v", err)
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
			return
		}

		if err := redisClient.Set(r.Context(), cacheKey, resultBytes, 10*time.Minute).Err(); err != nil {
			log.Printf("Failed to cache response for key %s: %v", cacheKey, err)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write(resultBytes)
	}
}

// markFavorites flags the properties the user has favorited. A lookup
// failure only loses the flags, never the listing response.
func markFavorites(ctx context.Context, userID string, properties []models.Property) {
	userObjID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return
	}
	var user models.User
	if err := config.UserCollection.FindOne(ctx, bson.M{"_id": userObjID}).Decode(&user); err != nil {
		if err != mongo.ErrNoDocuments {
			log.Printf("Error fetching favorites for user %s: %v", userID, err)
		}
		return
	}
	favSet := make(map[string]bool, len(user.Favorites))
	for _, id := range user.Favorites {
		favSet[id] = true
	}
	for i := range properties {
		if favSet[properties[i].ID] {
			properties[i].IsFavorite = true
		}
	}
}

func GetPropertyByID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		propertyID := mux.Vars(r)["id"]
		objID, err := primitive.ObjectIDFromHex(propertyID)
		if err != nil {
			log.Printf("Invalid property ID %s: %v", propertyID, err)
			http.Error(w, "Invalid property ID", http.StatusBadRequest)
			return
		}

		var record models.PropertyRecord
		err = config.PropertyCollection.FindOne(r.Context(), bson.M{"_id": objID}).Decode(&record)
		if err == mongo.ErrNoDocuments {
			http.Error(w, "Property not found", http.StatusNotFound)
			return
		}
		if err != nil {
			log.Printf("Error fetching property %s: %v", propertyID, err)
			http.Error(w, "Error fetching property", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(record.ToProperty())
	}
}

func UpdateProperty(redisClient *redis.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := r.Context().Value(UserIDKey).(string)
		if !ok {
			log.Println("User ID missing in context")
			http.Error(w, "User ID missing in context", http.StatusUnauthorized)
			return
		}

		propertyID := mux.Vars(r)["id"]
		objID, err := primitive.ObjectIDFromHex(propertyID)
		if err != nil {
			log.Printf("Invalid property ID %s: %v", propertyID, err)
			http.Error(w, "Invalid property ID", http.StatusBadRequest)
			return
		}

		var updateData map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&updateData); err != nil {
			log.Printf("Invalid update data: %v", err)
			http.Error(w, "Invalid update data", http.StatusBadRequest)
			return
		}

		delete(updateData, "_id")
		delete(updateData, "created_by")
		delete(updateData, "created_at")
		updateData["updated_at"] = time.Now()

		filter := bson.M{"_id": objID, "created_by": userID}
		update := bson.M{"$set": updateData}

		res, err := config.PropertyCollection.UpdateOne(r.Context(), filter, update)
		if err != nil {
			log.Printf("Update failed for property %s: %v", propertyID, err)
			http.Error(w, "Update failed", http.StatusInternalServerError)
			return
		}

		if res.MatchedCount == 0 {
			log.Printf("No property found with ID %s and created_by %s, or unauthorized to update.", propertyID, userID)
			http.Error(w, "No property found or unauthorized", http.StatusForbidden)
			return
		}

		go func() {
			deleteListingCache(redisClient)
		}()

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "Property updated successfully"})
	}
}

func DeleteProperty(redisClient *redis.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := r.Context().Value(UserIDKey).(string)
		if !ok {
			log.Println("User ID missing in context")
			http.Error(w, "User ID missing in context", http.StatusUnauthorized)
			return
		}

		propertyID := mux.Vars(r)["id"]
		objID, err := primitive.ObjectIDFromHex(propertyID)
		if err != nil {
			log.Printf("Invalid property ID %s: %v", propertyID, err)
			http.Error(w, "Invalid property ID", http.StatusBadRequest)
			return
		}

		filter := bson.M{"_id": objID, "created_by": userID}

		res, err := config.PropertyCollection.DeleteOne(r.Context(), filter)
		if err != nil {
			log.Printf("Delete failed for property %s: %v", propertyID, err)
			http.Error(w, "Delete failed", http.StatusInternalServerError)
			return
		}

		if res.DeletedCount == 0 {
			log.Printf("No property found with ID %s and created_by %s, or unauthorized to delete.", propertyID, userID)
			http.Error(w, "No property found or unauthorized", http.StatusForbidden)
			return
		}

		if userObjID, err := primitive.ObjectIDFromHex(userID); err == nil {
			_, err = config.UserCollection.UpdateOne(context.TODO(),
				bson.M{"_id": userObjID},
				bson.M{"$pull": bson.M{"myproperties": propertyID}})
			if err != nil {
				log.Printf("Failed to remove property %s from owner %s: %v", propertyID, userID, err)
			}
		}

		go func() {
			deleteListingCache(redisClient)
		}()

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "Property deleted successfully"})
	}
}

// GetListingForm returns the field descriptors the post-a-listing form
// renders for a property type. The submit validator reads the same table.
func GetListingForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		propertyType := mux.Vars(r)["type"]
		fields, ok := models.ListingFormFields(propertyType)
		if !ok {
			http.Error(w, "Unknown property type", http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.APIResponse{
			Success: true,
			Message: "Listing form fields",
			Data:    fields,
		})
	}
}

func generateCacheKey(userID string, queryParams url.Values) string {
	keys := make([]string, 0, len(queryParams))
	for k := range queryParams {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	sb.WriteString(userID)
	sb.WriteString(":")

	for _, key := range keys {
		values := queryParams[key]
		sort.Strings(values)
		for _, val := range values {
			sb.WriteString(key)
			sb.WriteString("=")
			sb.WriteString(val)
			sb.WriteString("&")
		}
	}
	rawKey := strings.TrimSuffix(sb.String(), "&")

	sum := sha256.Sum256([]byte(rawKey))
	return "listing:" + hex.EncodeToString(sum[:])
}

func deleteListingCache(redisClient *redis.Client) {
	ctx := context.Background()
	const scanPattern = "listing:*"
	const scanCount = 100

	var keysToDelete []string
	var cursor uint64
	var err error

	log.Println("Starting listing cache invalidation...")

	for {
		var currentKeys []string
		currentKeys, cursor, err = redisClient.Scan(ctx, cursor, scanPattern, scanCount).Result()
		if err != nil {
			log.Printf("Error during Redis SCAN for pattern '%s': %v", scanPattern, err)
			return
		}
		keysToDelete = append(keysToDelete, currentKeys...)
		if cursor == 0 {
			break
		}
	}

	if len(keysToDelete) == 0 {
		log.Println("No listing cache keys found matching pattern to delete.")
		return
	}

	pipe := redisClient.Pipeline()
	for _, key := range keysToDelete {
		pipe.Del(ctx, key)
	}
	_, execErr := pipe.Exec(ctx)

	if execErr != nil {
		log.Printf("Error executing pipeline for deleting %d listing cache keys: %v", len(keysToDelete), execErr)
	} else {
		log.Printf("Listing cache invalidated: deleted %d keys matching '%s'.", len(keysToDelete), scanPattern)
	}
}
