package controllers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/bashafinder/backend/config"
	"github.com/bashafinder/backend/models"
	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func chatChannel(chatID string) string {
	return "chat:" + chatID
}

// CreateChat opens (or returns) the conversation between the requesting
// tenant and a property's owner. One chat per property/tenant pair.
func CreateChat(client *mongo.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := r.Context().Value(UserIDKey).(string)
		if !ok {
			http.Error(w, "User ID missing in context", http.StatusUnauthorized)
			return
		}
		tenantObjID, err := primitive.ObjectIDFromHex(userID)
		if err != nil {
			http.Error(w, "Invalid user ID", http.StatusUnauthorized)
			return
		}

		var req struct {
			PropertyID string `json:"property_id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request payload", http.StatusBadRequest)
			return
		}
		propObjID, err := primitive.ObjectIDFromHex(req.PropertyID)
		if err != nil {
			http.Error(w, "Invalid property ID", http.StatusBadRequest)
			return
		}

		var record models.PropertyRecord
		err = config.PropertyCollection.FindOne(context.TODO(), bson.M{"_id": propObjID}).Decode(&record)
		if err == mongo.ErrNoDocuments {
			http.Error(w, "Property not found", http.StatusNotFound)
			return
		}
		if err != nil {
			log.Printf("Error fetching property for chat: %v", err)
			http.Error(w, "Failed to open chat", http.StatusInternalServerError)
			return
		}

		ownerObjID, err := primitive.ObjectIDFromHex(record.CreatedBy)
		if err != nil {
			log.Printf("Property %s has malformed owner id %q", req.PropertyID, record.CreatedBy)
			http.Error(w, "Failed to open chat", http.StatusInternalServerError)
			return
		}
		if ownerObjID == tenantObjID {
			http.Error(w, "Cannot open a chat with yourself", http.StatusBadRequest)
			return
		}

		var existing models.Chat
		err = config.ChatCollection.FindOne(context.TODO(), bson.M{
			"property_id": propObjID,
			"tenant_id":   tenantObjID,
		}).Decode(&existing)
		if err == nil {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(existing)
			return
		}
		if err != mongo.ErrNoDocuments {
			log.Printf("Error checking existing chat: %v", err)
			http.Error(w, "Failed to open chat", http.StatusInternalServerError)
			return
		}

		now := time.Now()
		chat := models.Chat{
			ID:         primitive.NewObjectID(),
			PropertyID: propObjID,
			OwnerID:    ownerObjID,
			TenantID:   tenantObjID,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if _, err := config.ChatCollection.InsertOne(context.TODO(), chat); err != nil {
			log.Printf("Failed to create chat: %v", err)
			http.Error(w, "Failed to open chat", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(chat)
	}
}

// GetChats lists the conversations the user takes part in, most recently
// active first.
func GetChats(client *mongo.Client) http.HandlerFunc {
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

		filter := bson.M{"$or": []bson.M{
			{"owner_id": userObjID},
			{"tenant_id": userObjID},
		}}
		opts := options.Find().SetSort(bson.D{{Key: "last_message_time", Value: -1}})

		cursor, err := config.ChatCollection.Find(context.TODO(), filter, opts)
		if err != nil {
			log.Printf("Failed to fetch chats for %s: %v", userID, err)
			http.Error(w, "Failed to fetch chats", http.StatusInternalServerError)
			return
		}
		defer cursor.Close(context.TODO())

		var chats []models.Chat
		if err := cursor.All(context.TODO(), &chats); err != nil {
			log.Printf("Failed to decode chats: %v", err)
			http.Error(w, "Failed to decode chats", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.APIResponse{
			Success: true,
			Message: "Fetched chats",
			Data:    chats,
		})
	}
}

// loadChatForMember fetches a chat and checks the user belongs to it.
func loadChatForMember(ctx context.Context, chatIDHex, userID string) (models.Chat, primitive.ObjectID, int, string) {
	var chat models.Chat
	chatObjID, err := primitive.ObjectIDFromHex(chatIDHex)
	if err != nil {
		return chat, primitive.NilObjectID, http.StatusBadRequest, "Invalid chat ID"
	}
	userObjID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return chat, primitive.NilObjectID, http.StatusUnauthorized, "Invalid user ID"
	}
	err = config.ChatCollection.FindOne(ctx, bson.M{"_id": chatObjID}).Decode(&chat)
	if err == mongo.ErrNoDocuments {
		return chat, primitive.NilObjectID, http.StatusNotFound, "Chat not found"
	}
	if err != nil {
		log.Printf("Error fetching chat %s: %v", chatIDHex, err)
		return chat, primitive.NilObjectID, http.StatusInternalServerError, "Failed to fetch chat"
	}
	if chat.OwnerID != userObjID && chat.TenantID != userObjID {
		return chat, primitive.NilObjectID, http.StatusForbidden, "Not a member of this chat"
	}
	return chat, userObjID, 0, ""
}

func GetMessages(client *mongo.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := r.Context().Value(UserIDKey).(string)
		if !ok {
			http.Error(w, "User ID missing in context", http.StatusUnauthorized)
			return
		}

		chat, _, status, msg := loadChatForMember(r.Context(), mux.Vars(r)["id"], userID)
		if status != 0 {
			http.Error(w, msg, status)
			return
		}

		opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
		cursor, err := config.MessageCollection.Find(context.TODO(), bson.M{"chat_id": chat.ID}, opts)
		if err != nil {
			log.Printf("Failed to fetch messages for chat %s: %v", chat.ID.Hex(), err)
			http.Error(w, "Failed to fetch messages", http.StatusInternalServerError)
			return
		}
		defer cursor.Close(context.TODO())

		var messages []models.Message
		if err := cursor.All(context.TODO(), &messages); err != nil {
			log.Printf("Failed to decode messages: %v", err)
			http.Error(w, "Failed to decode messages", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.APIResponse{
			Success: true,
			Message: "Fetched messages",
			Data:    messages,
		})
	}
}

// SendMessage inserts a message, updates the parent chat's last_message /
// last_message_time / unread_count in the same handler, and publishes the
// message on the chat's redis channel for live subscribers.
func SendMessage(redisClient *redis.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := r.Context().Value(UserIDKey).(string)
		if !ok {
			http.Error(w, "User ID missing in context", http.StatusUnauthorized)
			return
		}

		chat, senderObjID, status, errMsg := loadChatForMember(r.Context(), mux.Vars(r)["id"], userID)
		if status != 0 {
			http.Error(w, errMsg, status)
			return
		}

		var req struct {
			Text string `json:"text"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Text == "" {
			http.Error(w, "Message text is required", http.StatusBadRequest)
			return
		}

		receiverObjID := chat.OwnerID
		if senderObjID == chat.OwnerID {
			receiverObjID = chat.TenantID
		}

		now := time.Now()
		message := models.Message{
			ID:         primitive.NewObjectID(),
			ChatID:     chat.ID,
			SenderID:   senderObjID,
			ReceiverID: receiverObjID,
			Text:       req.Text,
			CreatedAt:  now,
		}

		if _, err := config.MessageCollection.InsertOne(context.TODO(), message); err != nil {
			log.Printf("Failed to insert message: %v", err)
			http.Error(w, "Failed to send message", http.StatusInternalServerError)
			return
		}

		_, err := config.ChatCollection.UpdateOne(context.TODO(),
			bson.M{"_id": chat.ID},
			bson.M{
				"$set": bson.M{
					"last_message":      message.Text,
					"last_message_time": now,
					"updated_at":        now,
				},
				"$inc": bson.M{"unread_count": 1},
			})
		if err != nil {
			log.Printf("Failed to update chat %s after message insert: %v", chat.ID.Hex(), err)
		}

		payload, err := json.Marshal(message)
		if err == nil {
			if err := redisClient.Publish(context.TODO(), chatChannel(chat.ID.Hex()), payload).Err(); err != nil {
				log.Printf("Failed to publish message on %s: %v", chatChannel(chat.ID.Hex()), err)
			}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(message)
	}
}

// MarkMessagesRead marks the messages addressed to the user as read and
// resets the chat's unread counter.
func MarkMessagesRead(client *mongo.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := r.Context().Value(UserIDKey).(string)
		if !ok {
			http.Error(w, "User ID missing in context", http.StatusUnauthorized)
			return
		}

		chat, userObjID, status, errMsg := loadChatForMember(r.Context(), mux.Vars(r)["id"], userID)
		if status != 0 {
			http.Error(w, errMsg, status)
			return
		}

		_, err := config.MessageCollection.UpdateMany(context.TODO(),
			bson.M{"chat_id": chat.ID, "receiver_id": userObjID, "read": false},
			bson.M{"$set": bson.M{"read": true}})
		if err != nil {
			log.Printf("Failed to mark messages read in chat %s: %v", chat.ID.Hex(), err)
			http.Error(w, "Failed to mark messages read", http.StatusInternalServerError)
			return
		}

		_, err = config.ChatCollection.UpdateOne(context.TODO(),
			bson.M{"_id": chat.ID},
			bson.M{"$set": bson.M{"unread_count": 0}})
		if err != nil {
			log.Printf("Failed to reset unread count for chat %s: %v", chat.ID.Hex(), err)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.APIResponse{Success: true, Message: "Messages marked read"})
	}
}

// StreamChat delivers new messages for one chat over server-sent events.
// The redis subscription is closed as soon as the request context ends,
// so a torn-down view never keeps a channel open.
func StreamChat(redisClient *redis.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := r.Context().Value(UserIDKey).(string)
		if !ok {
			http.Error(w, "User ID missing in context", http.StatusUnauthorized)
			return
		}

		chat, _, status, errMsg := loadChatForMember(r.Context(), mux.Vars(r)["id"], userID)
		if status != 0 {
			http.Error(w, errMsg, status)
			return
		}

		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, "Streaming unsupported", http.StatusInternalServerError)
			return
		}

		sub := redisClient.Subscribe(r.Context(), chatChannel(chat.ID.Hex()))
		defer sub.Close()

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		flusher.Flush()

		ch := sub.Channel()
		for {
			select {
			case msg, open := <-ch:
				if !open {
					return
				}
				if _, err := w.Write([]byte("data: " + msg.Payload + "\n\n")); err != nil {
					return
				}
				flusher.Flush()
			case <-r.Context().Done():
				return
			}
		}
	}
}
