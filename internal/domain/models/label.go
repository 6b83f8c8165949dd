package models

// LabelProduct is the slice of a stock record needed to print one barcode
// label. The json keys match the payload the stock-selection page posts.
type LabelProduct struct {
	ItemID   string  `json:"ItemID"`
	ItemName string  `json:"ItemName"`
	Brand    string  `json:"Brand"`
	Amount   float64 `json:"Amount"`
	Size     int     `json:"Size"`
}

// Label is one rendered sticker: a PNG data URI plus the text printed above
// and below the bars.
type Label struct {
	Sticker    string `json:"sticker"`
	HeaderText string `json:"headerText"`
	FooterText string `json:"footerText"`
}
