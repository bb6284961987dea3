package openfoodfacts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
)

const DefaultBaseURL = "https://world.openfoodfacts.org"

var ErrProductNotFound = errors.New("product not found in open food facts")

type (
	Client interface {
		FetchProduct(ctx context.Context, barcode string) (ProductData, error)
	}

	Nutriments struct {
		Energy   float64 `json:"energy_100g"`
		Proteins float64 `json:"proteins_100g"`
		Carbs    float64 `json:"carbohydrates_100g"`
		Fat      float64 `json:"fat_100g"`
	}

	ProductData struct {
		Barcode    string
		Name       string
		Categories string
		Labels     string
		Nutriscore string
		ImageURL   string
		Nutriments Nutriments
	}

	client struct {
		baseURL    string
		httpClient *http.Client
		cache      *cache.Cache
	}
)

// NewClient builds a lookup client against the given base URL (the public
// instance when empty). Successful lookups are cached so rescanning the same
// barcode does not re-hit the API.
func NewClient(baseURL string) Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
		cache:      cache.New(1*time.Hour, 10*time.Minute),
	}
}

func (c *client) FetchProduct(ctx context.Context, barcode string) (ProductData, error) {
	if cached, found := c.cache.Get(barcode); found {
		return cached.(ProductData), nil
	}

	url := fmt.Sprintf("%s/api/v0/product/%s.json", c.baseURL, barcode)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return ProductData{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ProductData{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ProductData{}, fmt.Errorf("open food facts error: %s", resp.Status)
	}

	var offResp struct {
		Status  int `json:"status"`
		Product struct {
			ProductNameFr   string     `json:"product_name_fr"`
			ProductName     string     `json:"product_name"`
			Categories      string     `json:"categories"`
			Labels          string     `json:"labels"`
			NutriscoreGrade string     `json:"nutriscore_grade"`
			ImageURL        string     `json:"image_url"`
			Nutriments      Nutriments `json:"nutriments"`
		} `json:"product"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&offResp); err != nil {
		return ProductData{}, err
	}

	if offResp.Status != 1 {
		return ProductData{}, ErrProductNotFound
	}

	name := offResp.Product.ProductNameFr
	if name == "" {
		name = offResp.Product.ProductName
	}
	if name == "" {
		name = "Produit inconnu"
	}

	data := ProductData{
		Barcode:    barcode,
		Name:       name,
		Categories: offResp.Product.Categories,
		Labels:     offResp.Product.Labels,
		Nutriscore: offResp.Product.NutriscoreGrade,
		ImageURL:   offResp.Product.ImageURL,
		Nutriments: offResp.Product.Nutriments,
	}

	c.cache.Set(barcode, data, cache.DefaultExpiration)

	return data, nil
}
