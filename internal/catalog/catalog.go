// Package catalog holds the static reference data: the operating system
// encyclopedia entries and the shop products. Everything here is compiled into
// the binary; nothing is persisted or mutated at runtime.
package catalog

import "github.com/swaupd/OsBlogApp/internal/models"

// OperatingSystems returns all blog entries, in display order.
func OperatingSystems() []models.OperatingSystem {
	return operatingSystems
}

// OSBySlug looks up one entry by its slug.
func OSBySlug(slug string) (models.OperatingSystem, bool) {
	for _, os := range operatingSystems {
		if os.Slug == slug {
			return os, true
		}
	}
	return models.OperatingSystem{}, false
}

// Products returns all shop products, in display order.
func Products() []models.Product {
	return products
}

// ProductByID looks up one product by its id.
func ProductByID(id int) (models.Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}
