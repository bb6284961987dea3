package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		category string
		want     string
	}{
		{name: "sub-category of fresh products", category: "Produits laitiers", want: "Produits frais"},
		{name: "sub-category of grocery", category: "Conserves", want: "Épicerie"},
		{name: "sub-category of drinks", category: "Sodas", want: "Boissons"},
		{name: "sub-category of non food", category: "Entretien", want: "Non alimentaire"},
		{name: "case insensitive", category: "produits laitiers", want: "Produits frais"},
		{name: "upper case", category: "CONSERVES", want: "Épicerie"},
		{name: "main category name itself", category: "Boissons gazeuses", want: "Boissons"},
		{name: "unknown category", category: "Catégorie inconnue", want: "Autres"},
		{name: "empty category", category: "", want: "Autres"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.category, DefaultTaxonomy))
		})
	}
}

func TestClassifyDeterminism(t *testing.T) {
	first := Classify("Pâtes et riz", DefaultTaxonomy)
	second := Classify("Pâtes et riz", DefaultTaxonomy)

	assert.Equal(t, "Épicerie", first)
	assert.Equal(t, first, second)
}

func TestClassifyNamePriority(t *testing.T) {
	// "Boissons" is a keyword of the first bucket but also the name of the
	// second; the name match must win even though the first bucket comes
	// earlier in rule order.
	rules := Taxonomy{
		{Name: "Rayon liquide", Keywords: []string{"Boissons"}},
		{Name: "Boissons", Keywords: []string{"Sodas"}},
	}

	assert.Equal(t, "Boissons", Classify("Boissons fraîches", rules))
}

func TestClassifyKeywordFirstMatchWins(t *testing.T) {
	rules := Taxonomy{
		{Name: "Premier", Keywords: []string{"chocolat"}},
		{Name: "Second", Keywords: []string{"chocolat", "biscuit"}},
	}

	assert.Equal(t, "Premier", Classify("Biscuits au chocolat", rules))
}

func TestClassifyEmptyRuleTable(t *testing.T) {
	assert.Equal(t, FallbackCategory, Classify("Produits laitiers", Taxonomy{}))
	assert.Equal(t, FallbackCategory, Classify("", Taxonomy{}))
}

func TestBucketNames(t *testing.T) {
	names := BucketNames(DefaultTaxonomy)

	assert.Equal(t, []string{"Produits frais", "Épicerie", "Boissons", "Non alimentaire", "Autres"}, names)

	// fallback appended when the taxonomy does not declare it
	names = BucketNames(Taxonomy{{Name: "Boissons"}})
	assert.Equal(t, []string{"Boissons", "Autres"}, names)
}
