// Package summary builds the read-only cart page model.
package summary

import "github.com/fjod/go_storefront/internal/domain"

// EmptyMessage is shown instead of the line list when the cart has no entries.
const EmptyMessage = "Your cart is empty."

// Line is one cart entry as listed on the cart page.
type Line struct {
	Title string  `json:"title"`
	Price float64 `json:"price"`
}

// View is the cart page model: the entries in order plus their total.
type View struct {
	Lines        []Line  `json:"lines"`
	Count        int     `json:"count"`
	Total        float64 `json:"total"`
	Empty        bool    `json:"empty"`
	EmptyMessage string  `json:"empty_message,omitempty"`
}

// Build lists every entry of c in insertion order together with the total.
func Build(c domain.Cart) View {
	if c.Len() == 0 {
		return View{Lines: []Line{}, Empty: true, EmptyMessage: EmptyMessage}
	}

	lines := make([]Line, 0, c.Len())
	for _, item := range c.Items {
		lines = append(lines, Line{Title: item.Title, Price: item.Price})
	}

	return View{
		Lines: lines,
		Count: c.Len(),
		Total: c.Total(),
	}
}
