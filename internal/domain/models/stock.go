package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// StockItem is one intake line persisted in the stocks collection. The bson
// field names match the schema the collections were created with, so existing
// data stays readable.
type StockItem struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	EnteredBy Identity           `bson:"UserBy" json:"enteredBy"`
	ItemID    string             `bson:"ItemID" json:"itemId"`
	ItemName  string             `bson:"ItemName" json:"itemName"`
	Category  string             `bson:"Category" json:"category"`
	Brand     string             `bson:"Brand" json:"brand"`
	Size      int                `bson:"Size" json:"size"`
	Amount    float64            `bson:"Amount" json:"amount"`
	StockDate string             `bson:"StockDate" json:"stockDate"`
	StockTime string             `bson:"StockTime" json:"stockTime"`
	TDay      int                `bson:"TDay" json:"transactionDay"`
	TMonth    int                `bson:"TMonth" json:"transactionMonth"`
	TYear     int                `bson:"TYear" json:"transactionYear"`
}

// StockFilter narrows stock listings; empty fields match everything.
type StockFilter struct {
	ItemID   string `json:"itemId" form:"itemid"`
	ItemName string `json:"itemName" form:"itemname"`
	Category string `json:"category" form:"category"`
	Brand    string `json:"brand" form:"brand"`
}
