package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Chat struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PropertyID      primitive.ObjectID `bson:"property_id" json:"property_id"`
	OwnerID         primitive.ObjectID `bson:"owner_id" json:"owner_id"`
	TenantID        primitive.ObjectID `bson:"tenant_id" json:"tenant_id"`
	LastMessage     string             `bson:"last_message" json:"last_message"`
	LastMessageTime time.Time          `bson:"last_message_time" json:"last_message_time"`
	UnreadCount     int                `bson:"unread_count" json:"unread_count"`
	CreatedAt       time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time          `bson:"updated_at" json:"updated_at"`
}

type Message struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ChatID     primitive.ObjectID `bson:"chat_id" json:"chat_id"`
	SenderID   primitive.ObjectID `bson:"sender_id" json:"sender_id"`
	ReceiverID primitive.ObjectID `bson:"receiver_id" json:"receiver_id"`
	Text       string             `bson:"text" json:"text"`
	Read       bool               `bson:"read" json:"read"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
}
