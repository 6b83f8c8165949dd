package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// OrderLine is one sold item persisted in the orders collection. Several
// lines share a TransactionID when they belong to the same customer sale.
type OrderLine struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	TransactionID   string             `bson:"TransactionID" json:"transactionId"`
	CustomerPhone   string             `bson:"CustomerPhone" json:"customerPhone"`
	CustomerName    string             `bson:"CustomerName" json:"customerName"`
	ItemID          string             `bson:"ItemID" json:"itemId"`
	ItemName        string             `bson:"ItemName" json:"itemName"`
	Category        string             `bson:"Category" json:"category"`
	Brand           string             `bson:"Brand" json:"brand"`
	Amount          float64            `bson:"Amount" json:"amount"`
	TransactionDate string             `bson:"TransactionDate" json:"transactionDate"`
	TransactionTime string             `bson:"TransactionTime" json:"transactionTime"`
	TMonth          int                `bson:"TMonth" json:"transactionMonth"`
	TYear           int                `bson:"TYear" json:"transactionYear"`
}

// Customer is the phone-keyed contact record in the customer collection.
type Customer struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	PhoneNumber  string             `bson:"PhoneNumber" json:"phoneNumber"`
	CustomerName string             `bson:"CustomerName" json:"customerName"`
}
