package amadeus

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/voyago/voyago/internal/types"
)

// maxHotelIDs caps how many candidates from the by-city list are priced.
const maxHotelIDs = 5

type hotelListResponse struct {
	Data []struct {
		HotelID string `json:"hotelId"`
	} `json:"data"`
}

type hotelOffersResponse struct {
	Data []struct {
		Hotel struct {
			HotelID string `json:"hotelId"`
			Name    string `json:"name"`
			Rating  string `json:"rating"`
		} `json:"hotel"`
		Offers []struct {
			Price struct {
				Total string `json:"total"`
			} `json:"price"`
		} `json:"offers"`
	} `json:"data"`
}

// SearchHotels runs the two-step hotel search: list hotels for the city,
// then price the first candidates for the given 1-night window. A missing
// provider rating normalizes to 4.0.
func (c *Client) SearchHotels(ctx context.Context, cityCode, checkIn, checkOut string) ([]types.HotelOffer, error) {
	listQ := url.Values{}
	listQ.Set("cityCode", cityCode)
	listQ.Set("radius", "5")
	listQ.Set("radiusUnit", "KM")
	listQ.Set("hotelSource", "ALL")

	body, err := c.get(ctx, "/v1/reference-data/locations/hotels/by-city", listQ)
	if err != nil {
		if err = c.degrade(ctx, "SearchHotels", err); err != nil {
			return nil, err
		}
		return []types.HotelOffer{}, nil
	}

	var list hotelListResponse
	if err := json.Unmarshal(body, &list); err != nil {
		_ = c.degrade(ctx, "SearchHotels", err)
		return []types.HotelOffer{}, nil
	}
	if len(list.Data) == 0 {
		return []types.HotelOffer{}, nil
	}

	ids := make([]string, 0, maxHotelIDs)
	for _, h := range list.Data {
		ids = append(ids, h.HotelID)
		if len(ids) == maxHotelIDs {
			break
		}
	}

	offersQ := url.Values{}
	offersQ.Set("hotelIds", strings.Join(ids, ","))
	offersQ.Set("adults", "1")
	offersQ.Set("checkInDate", checkIn)
	offersQ.Set("checkOutDate", checkOut)

	body, err = c.get(ctx, "/v1/shopping/hotel-offers", offersQ)
	if err != nil {
		if err = c.degrade(ctx, "SearchHotels", err); err != nil {
			return nil, err
		}
		return []types.HotelOffer{}, nil
	}

	var offers hotelOffersResponse
	if err := json.Unmarshal(body, &offers); err != nil {
		_ = c.degrade(ctx, "SearchHotels", err)
		return []types.HotelOffer{}, nil
	}

	hotels := make([]types.HotelOffer, 0, len(offers.Data))
	for i, item := range offers.Data {
		if len(item.Offers) == 0 {
			continue
		}
		hotels = append(hotels, types.HotelOffer{
			ID:       fmt.Sprintf("hotel-%s-%d", item.Hotel.HotelID, i),
			Name:     item.Hotel.Name,
			Price:    roundPrice(item.Offers[0].Price.Total),
			Rating:   normalizeRating(item.Hotel.Rating),
			CheckIn:  checkIn,
			CheckOut: checkOut,
		})
	}
	return hotels, nil
}

// normalizeRating parses the provider star rating, substituting 4.0 when it
// is absent or unparseable and clamping to the 0-5 scale.
func normalizeRating(s string) float64 {
	if s == "" {
		return 4.0
	}
	r, err := strconv.ParseFloat(s, 64)
	if err != nil || r <= 0 {
		return 4.0
	}
	if r > 5 {
		r = 5
	}
	return r
}
