package models

// StockSummaryRow is one group of the stock rollup. Count sums item sizes and
// Amount sums amount*size over the group. Exactly one of Brand/Category is
// set, depending on the requested dimension.
type StockSummaryRow struct {
	Brand    string  `bson:"Brand,omitempty" json:"brand,omitempty"`
	Category string  `bson:"Category,omitempty" json:"category,omitempty"`
	Count    int     `bson:"Count" json:"count"`
	Amount   float64 `bson:"Amount" json:"amount"`
}

// SalesSummaryRow is one group of a monthly or yearly sales report. GroupKey
// is the grouping value: a brand or category name, a transaction date for
// monthly "all" reports, or a month number for yearly "all" reports.
type SalesSummaryRow struct {
	GroupKey any     `bson:"_id" json:"groupKey"`
	Count    int     `bson:"Count" json:"count"`
	Brand    string  `bson:"Brand,omitempty" json:"brand,omitempty"`
	Category string  `bson:"Category,omitempty" json:"category,omitempty"`
	Amount   float64 `bson:"Amount" json:"amount"`
}

// SalesTotal is the grand-total row computed over the same filter as the
// grouped report.
type SalesTotal struct {
	Amount float64 `bson:"Amount" json:"amount"`
	Count  int     `bson:"Count" json:"count"`
}

// SalesReport bundles the grouped rows with the grand total and the resolved
// reporting window. Row order is not defined; consumers sort at presentation
// time if order matters.
type SalesReport struct {
	Rows      []SalesSummaryRow `json:"rows"`
	Total     SalesTotal        `json:"total"`
	Dimension string            `json:"dimension"`
	MonthName string            `json:"monthName,omitempty"`
	Year      int               `json:"year"`
}

// TransactionSummary is one customer transaction rolled up from its order
// lines.
type TransactionSummary struct {
	TransactionID   string  `bson:"_id" json:"transactionId"`
	Amount          float64 `bson:"Amount" json:"amount"`
	TransactionDate string  `bson:"TransactionDate" json:"transactionDate"`
	TransactionTime string  `bson:"TransactionTime" json:"transactionTime"`
	CustomerPhone   string  `bson:"CustomerPhone" json:"customerPhone"`
}

// DailySnapshot is one day's sales total, exported to the bookkeeping sheet.
type DailySnapshot struct {
	Date   string  `json:"date"`
	Count  int     `json:"count"`
	Amount float64 `json:"amount"`
}

// HomeSummary carries the collection counts shown on the landing page.
type HomeSummary struct {
	Stocks     int64 `json:"stocks"`
	Orders     int64 `json:"orders"`
	Categories int64 `json:"categories"`
	Brands     int64 `json:"brands"`
}
