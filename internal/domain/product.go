package domain

// Product is a read-only catalog record. Brand and Description are empty when absent.
type Product struct {
	ID           string
	Title        string
	Category     string
	Brand        string
	Description  string
	Price        Price
	ThumbnailURL string
	URL          string
}
