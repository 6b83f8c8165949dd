package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Category is a named tag for grouping stock items.
type Category struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name string             `bson:"Category" json:"name"`
}

// Brand is a named tag, stored uppercased.
type Brand struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name string             `bson:"Brand" json:"name"`
}

// Size is a predefined size option offered on the intake form.
type Size struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name string             `bson:"Size" json:"name"`
}
