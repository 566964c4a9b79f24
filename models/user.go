package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	NameEn            string             `bson:"name_en" json:"name_en"`
	NameBn            string             `bson:"name_bn,omitempty" json:"name_bn,omitempty"`
	Email             string             `bson:"email" json:"email"`
	Password          string             `bson:"password" json:"password,omitempty"`
	Phone             string             `bson:"phone" json:"phone"`
	Gender            string             `bson:"gender" json:"gender"`
	Favorites         []string           `bson:"favorites" json:"favorites"`
	MyProperties      []string           `bson:"myproperties" json:"myproperties"`
	ProfilePictureURL string             `bson:"profile_picture_url" json:"profile_picture_url"`
	CreatedAt         time.Time          `bson:"created_at" json:"createdAt"`
}

// PasswordReset is a single-use reset token. Expired rows are ignored on
// lookup rather than purged.
type PasswordReset struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Email     string             `bson:"email" json:"email"`
	Token     string             `bson:"token" json:"-"`
	ExpiresAt time.Time          `bson:"expires_at" json:"expiresAt"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
}
