package domain

// Cart is an ordered snapshot of selected products. The same product may
// appear more than once; entries are never merged into quantities.
type Cart struct {
	Items []Product `json:"items"`
}

// Len returns the number of entries, duplicates included.
func (c Cart) Len() int {
	return len(c.Items)
}

// Total returns the sum of all entry prices.
func (c Cart) Total() float64 {
	var total float64
	for _, item := range c.Items {
		total += item.Price
	}
	return total
}
