package amadeus

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/voyago/voyago/internal/types"
)

type flightOffersResponse struct {
	Data []struct {
		ID    string `json:"id"`
		Price struct {
			Total string `json:"total"`
		} `json:"price"`
		Itineraries []struct {
			Duration string `json:"duration"`
			Segments []struct {
				Departure struct {
					IataCode string `json:"iataCode"`
					At       string `json:"at"`
				} `json:"departure"`
				Arrival struct {
					IataCode string `json:"iataCode"`
					At       string `json:"at"`
				} `json:"arrival"`
				CarrierCode string `json:"carrierCode"`
			} `json:"segments"`
		} `json:"itineraries"`
	} `json:"data"`
}

// SearchFlights queries the flight-offers endpoint and normalizes each offer
// from its first itinerary's first segment. Prices are rounded to whole USD.
func (c *Client) SearchFlights(ctx context.Context, origin, destination, departureDate string, adults int) ([]types.FlightOffer, error) {
	q := url.Values{}
	q.Set("originLocationCode", origin)
	q.Set("destinationLocationCode", destination)
	q.Set("departureDate", departureDate)
	q.Set("adults", strconv.Itoa(adults))
	q.Set("max", "5")
	q.Set("currencyCode", "USD")

	body, err := c.get(ctx, "/v1/shopping/flight-offers", q)
	if err != nil {
		if err = c.degrade(ctx, "SearchFlights", err); err != nil {
			return nil, err
		}
		return []types.FlightOffer{}, nil
	}

	var resp flightOffersResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		_ = c.degrade(ctx, "SearchFlights", err)
		return []types.FlightOffer{}, nil
	}

	offers := make([]types.FlightOffer, 0, len(resp.Data))
	for i, offer := range resp.Data {
		if len(offer.Itineraries) == 0 || len(offer.Itineraries[0].Segments) == 0 {
			continue
		}
		segment := offer.Itineraries[0].Segments[0]
		offers = append(offers, types.FlightOffer{
			ID:            fmt.Sprintf("flight-%s-%d", offer.ID, i),
			Airline:       segment.CarrierCode,
			Price:         roundPrice(offer.Price.Total),
			Departure:     segment.Departure.IataCode,
			Arrival:       segment.Arrival.IataCode,
			Duration:      foldDuration(offer.Itineraries[0].Duration),
			DepartureTime: segment.Departure.At,
			ArrivalTime:   segment.Arrival.At,
		})
	}
	return offers, nil
}

// foldDuration turns the provider's ISO-8601-like duration (PT2H15M) into
// the display form 2h15m.
func foldDuration(iso string) string {
	return strings.ToLower(strings.TrimPrefix(iso, "PT"))
}

func roundPrice(total string) int {
	f, err := strconv.ParseFloat(total, 64)
	if err != nil {
		return 0
	}
	return int(math.Round(f))
}
