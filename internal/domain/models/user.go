package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is a staff account stored in the users collection.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Username string             `bson:"username" json:"username"`
	Password string             `bson:"password" json:"-"`
	Role     string             `bson:"role" json:"role"`
}

// Identity carries the authenticated user and role through a request.
type Identity struct {
	User string `bson:"user" json:"user"`
	Role string `bson:"role" json:"role"`
}
