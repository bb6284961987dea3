package openfoodfacts

import (
	"context"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBarcode = "3017620422003"

func newTestClient() *client {
	c := NewClient("https://off.test").(*client)
	httpmock.ActivateNonDefault(c.httpClient)
	return c
}

func TestFetchProduct(t *testing.T) {
	c := newTestClient()
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("GET", "https://off.test/api/v0/product/"+testBarcode+".json",
		httpmock.NewStringResponder(200, `{
			"status": 1,
			"product": {
				"product_name_fr": "Pâte à tartiner",
				"product_name": "Hazelnut spread",
				"categories": "Petit-déjeuner, Pâtes à tartiner",
				"labels": "Sans gluten",
				"nutriscore_grade": "e",
				"image_url": "https://off.test/images/1.jpg",
				"nutriments": {
					"energy_100g": 2252,
					"proteins_100g": 6.3,
					"carbohydrates_100g": 57.5,
					"fat_100g": 30.9
				}
			}
		}`))

	data, err := c.FetchProduct(context.Background(), testBarcode)
	require.NoError(t, err)

	assert.Equal(t, "Pâte à tartiner", data.Name)
	assert.Equal(t, testBarcode, data.Barcode)
	assert.Equal(t, "Petit-déjeuner, Pâtes à tartiner", data.Categories)
	assert.Equal(t, "Sans gluten", data.Labels)
	assert.Equal(t, "e", data.Nutriscore)
	assert.Equal(t, 6.3, data.Nutriments.Proteins)
}

func TestFetchProductNameFallback(t *testing.T) {
	c := newTestClient()
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("GET", "https://off.test/api/v0/product/"+testBarcode+".json",
		httpmock.NewStringResponder(200, `{"status": 1, "product": {"product_name": "Hazelnut spread"}}`))

	data, err := c.FetchProduct(context.Background(), testBarcode)
	require.NoError(t, err)
	assert.Equal(t, "Hazelnut spread", data.Name)
}

func TestFetchProductUnknownName(t *testing.T) {
	c := newTestClient()
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("GET", "https://off.test/api/v0/product/"+testBarcode+".json",
		httpmock.NewStringResponder(200, `{"status": 1, "product": {}}`))

	data, err := c.FetchProduct(context.Background(), testBarcode)
	require.NoError(t, err)
	assert.Equal(t, "Produit inconnu", data.Name)
}

func TestFetchProductNotFound(t *testing.T) {
	c := newTestClient()
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("GET", "https://off.test/api/v0/product/0000.json",
		httpmock.NewStringResponder(200, `{"status": 0, "status_verbose": "product not found"}`))

	_, err := c.FetchProduct(context.Background(), "0000")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestFetchProductServerError(t *testing.T) {
	c := newTestClient()
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("GET", "https://off.test/api/v0/product/"+testBarcode+".json",
		httpmock.NewStringResponder(500, "oops"))

	_, err := c.FetchProduct(context.Background(), testBarcode)
	assert.Error(t, err)
}

func TestFetchProductCachesLookups(t *testing.T) {
	c := newTestClient()
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("GET", "https://off.test/api/v0/product/"+testBarcode+".json",
		httpmock.NewStringResponder(200, `{"status": 1, "product": {"product_name": "Hazelnut spread"}}`))

	_, err := c.FetchProduct(context.Background(), testBarcode)
	require.NoError(t, err)
	_, err = c.FetchProduct(context.Background(), testBarcode)
	require.NoError(t, err)

	assert.Equal(t, 1, httpmock.GetTotalCallCount())
}
