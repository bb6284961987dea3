package catalog

import (
	"github.com/cladjidane/k-stockhome/entities"
)

// GroupByCategory partitions products into main-category buckets for display.
// Every bucket of the taxonomy is present in the result, empty ones included,
// so consumers can render empty-state sections without special-casing. Each
// product lands in exactly one bucket and relative input order is preserved
// within buckets.
func GroupByCategory(products []entities.Product, rules Taxonomy) map[string][]entities.Product {
	grouped := make(map[string][]entities.Product, len(rules)+1)
	for _, name := range BucketNames(rules) {
		grouped[name] = []entities.Product{}
	}

	for _, product := range products {
		bucket := Classify(product.Categories, rules)
		grouped[bucket] = append(grouped[bucket], product)
	}

	return grouped
}

// GroupByLocation buckets products by each location their multi-valued
// location field names, so a product stored in two places appears in both
// buckets. The location vocabulary is open-ended at runtime, so buckets exist
// only for locations that products actually name.
func GroupByLocation(products []entities.Product) map[string][]entities.Product {
	grouped := make(map[string][]entities.Product)

	for _, product := range products {
		for _, location := range splitLocations(product.Location) {
			grouped[location] = append(grouped[location], product)
		}
	}

	return grouped
}
