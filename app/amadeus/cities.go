package amadeus

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/voyago/voyago/internal/types"
)

type cityListResponse struct {
	Data []struct {
		ID       string `json:"id"`
		Name     string `json:"name"`
		IataCode string `json:"iataCode"`
		Address  struct {
			CountryName string `json:"countryName"`
		} `json:"address"`
	} `json:"data"`
}

// SearchCities looks up destinations by keyword and maps them into the
// internal Destination shape. The provider has no attractions field, so
// Attractions is always empty; image and description are synthesized from
// the city and country names.
func (c *Client) SearchCities(ctx context.Context, keyword string) ([]types.Destination, error) {
	q := url.Values{}
	q.Set("keyword", keyword)
	q.Set("max", "10")
	q.Set("include", "AIRPORTS")

	body, err := c.get(ctx, "/v1/reference-data/locations/cities", q)
	if err != nil {
		if err = c.degrade(ctx, "SearchCities", err); err != nil {
			return nil, err
		}
		return []types.Destination{}, nil
	}

	var resp cityListResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		_ = c.degrade(ctx, "SearchCities", err)
		return []types.Destination{}, nil
	}

	destinations := make([]types.Destination, 0, len(resp.Data))
	for _, city := range resp.Data {
		destinations = append(destinations, types.Destination{
			ID:          city.ID,
			City:        city.Name,
			Country:     city.Address.CountryName,
			CityCode:    city.IataCode,
			Image:       fmt.Sprintf("https://source.unsplash.com/800x600/?%s,city", url.QueryEscape(city.Name)),
			Attractions: []string{},
			Description: fmt.Sprintf("Explore %s, %s", city.Name, city.Address.CountryName),
		})
	}
	return destinations, nil
}
