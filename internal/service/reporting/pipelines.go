package reporting

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// stockRollupPipeline sums amount*size per brand or category. groupField is
// the bson field name ("Brand" or "Category"). Count sums item sizes, not
// documents, so it reflects units on the shelf.
func stockRollupPipeline(groupField string) mongo.Pipeline {
	return mongo.Pipeline{
		bson.D{{Key: "$addFields", Value: bson.D{
			{Key: "total", Value: bson.D{{Key: "$multiply", Value: bson.A{"$Amount", "$Size"}}}},
		}}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$" + groupField},
			{Key: "Amount", Value: bson.D{{Key: "$sum", Value: "$total"}}},
			{Key: groupField, Value: bson.D{{Key: "$first", Value: "$" + groupField}}},
			{Key: "Count", Value: bson.D{{Key: "$sum", Value: "$Size"}}},
		}}},
		bson.D{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: groupField, Value: 1},
			{Key: "Count", Value: 1},
			{Key: "Amount", Value: 1},
		}}},
	}
}

// monthlyMatch filters order lines to one calendar month.
func monthlyMatch(month, year int) bson.D {
	return bson.D{
		{Key: "TMonth", Value: month},
		{Key: "TYear", Value: year},
	}
}

// yearlyMatch filters order lines to one calendar year.
func yearlyMatch(year int) bson.D {
	return bson.D{{Key: "TYear", Value: year}}
}

// monthlySalesPipeline groups a month's order lines by the chosen dimension.
// The "all" dimension falls back to the natural time grouping, the
// transaction date.
func monthlySalesPipeline(month, year int, groupID string) mongo.Pipeline {
	return mongo.Pipeline{
		bson.D{{Key: "$match", Value: monthlyMatch(month, year)}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: groupID},
			{Key: "Count", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "Brand", Value: bson.D{{Key: "$first", Value: "$Brand"}}},
			{Key: "Category", Value: bson.D{{Key: "$first", Value: "$Category"}}},
			{Key: "Amount", Value: bson.D{{Key: "$sum", Value: "$Amount"}}},
		}}},
	}
}

// yearlySalesPipeline groups a year's order lines by the chosen dimension.
// The "all" dimension groups by month number.
func yearlySalesPipeline(year int, groupID string) mongo.Pipeline {
	return mongo.Pipeline{
		bson.D{{Key: "$match", Value: yearlyMatch(year)}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: groupID},
			{Key: "Count", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "Amount", Value: bson.D{{Key: "$sum", Value: "$Amount"}}},
		}}},
	}
}

// salesTotalPipeline computes the grand total over the same filter predicate
// as a grouped report, with no grouping.
func salesTotalPipeline(match bson.D) mongo.Pipeline {
	return mongo.Pipeline{
		bson.D{{Key: "$match", Value: match}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "Amount", Value: bson.D{{Key: "$sum", Value: "$Amount"}}},
			{Key: "Count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}
}

// transactionsPipeline rolls up one customer's order lines by transaction.
func transactionsPipeline(phone string) mongo.Pipeline {
	return mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{{Key: "CustomerPhone", Value: phone}}}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$TransactionID"},
			{Key: "Amount", Value: bson.D{{Key: "$sum", Value: "$Amount"}}},
			{Key: "TransactionDate", Value: bson.D{{Key: "$first", Value: "$TransactionDate"}}},
			{Key: "TransactionTime", Value: bson.D{{Key: "$first", Value: "$TransactionTime"}}},
			{Key: "CustomerPhone", Value: bson.D{{Key: "$first", Value: "$CustomerPhone"}}},
		}}},
	}
}

// dailyMatch filters order lines to one calendar day. The orders schema has
// no TDay field, so the match uses the formatted transaction date.
func dailyMatch(transactionDate string, month, year int) bson.D {
	return bson.D{
		{Key: "TransactionDate", Value: transactionDate},
		{Key: "TMonth", Value: month},
		{Key: "TYear", Value: year},
	}
}
