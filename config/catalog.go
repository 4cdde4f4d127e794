package config

import (
	"encoding/json"
	"log"
	"os"

	"restaurant-orders/catalog"
)

// Catalog is the fixed menu, immutable after Init.
var Catalog catalog.Catalog

var defaultMenu = catalog.Catalog{
	{ID: 1, Name: "Margherita Pizza", Price: 300},
	{ID: 2, Name: "Pasta Alfredo", Price: 250},
	{ID: 3, Name: "Paneer Tikka", Price: 220},
	{ID: 4, Name: "Cheese and Corn", Price: 265},
	{ID: 5, Name: "Chicken Tikka", Price: 350},
	{ID: 6, Name: "Double Cheese Margherita", Price: 400},
}

// loadCatalog reads MENU_FILE (a JSON array of items) when set, falling
// back to the built-in menu.
func loadCatalog() catalog.Catalog {
	path := os.Getenv("MENU_FILE")
	if path == "" {
		return defaultMenu
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		log.Printf("menu file %s unreadable, using built-in menu: %v", path, err)
		return defaultMenu
	}
	var menu catalog.Catalog
	if err := json.Unmarshal(raw, &menu); err != nil || len(menu) == 0 {
		log.Printf("menu file %s invalid, using built-in menu: %v", path, err)
		return defaultMenu
	}
	return menu
}
