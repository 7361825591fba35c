// Package nav describes the fixed set of pages and their sidebar entries.
package nav

import "strings"

const (
	HomePath = "/"
	ShopPath = "/shop"
	FlixPath = "/flix"
	FoodPath = "/food"
	CartPath = "/cart"
)

// Route maps a path to one page.
type Route struct {
	Name  string
	Path  string
	Title string
}

var routes = []Route{
	{Name: "home", Path: HomePath, Title: "Home"},
	{Name: "shop", Path: ShopPath, Title: "Shop"},
	{Name: "flix", Path: FlixPath, Title: "Flix"},
	{Name: "food", Path: FoodPath, Title: "Food"},
	{Name: "cart", Path: CartPath, Title: "Cart"},
}

// Routes returns the route table in sidebar order.
func Routes() []Route {
	out := make([]Route, len(routes))
	copy(out, routes)
	return out
}

// Match returns the route serving path. A single trailing slash is ignored.
func Match(path string) (Route, bool) {
	path = normalize(path)
	for _, r := range routes {
		if r.Path == path {
			return r, true
		}
	}
	return Route{}, false
}

// InSubtree reports whether path starts with root. This is a plain string
// prefix, so "/shopping" is in the "/shop" subtree.
func InSubtree(path, root string) bool {
	return strings.HasPrefix(normalize(path), normalize(root))
}

func normalize(path string) string {
	if path == "" {
		return HomePath
	}
	if len(path) > 1 && strings.HasSuffix(path, "/") {
		path = strings.TrimSuffix(path, "/")
	}
	return path
}
