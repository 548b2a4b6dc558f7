// Package openweather wraps the weather provider's current-conditions and
// 5-day/3-hourly forecast endpoints, normalizing responses into the internal
// weather shapes. Unlike the travel provider there is no token lifecycle,
// only an API key on the query string.
package openweather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/voyago/voyago/app/observability/metrics"
	"github.com/voyago/voyago/internal/types"
)

// forecastDays caps the reduced forecast length.
const forecastDays = 5

// Client talks to the weather provider. Construct with New.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

func New(baseURL, apiKey string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

type currentResponse struct {
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

type forecastResponse struct {
	List []struct {
		Dt   int64 `json:"dt"`
		Main struct {
			TempMax float64 `json:"temp_max"`
			TempMin float64 `json:"temp_min"`
		} `json:"main"`
		Weather []struct {
			Main string `json:"main"`
		} `json:"weather"`
	} `json:"list"`
	City struct {
		Timezone int `json:"timezone"`
	} `json:"city"`
}

// CurrentWeather fetches metric current conditions for a city. Wind speed is
// converted from m/s to km/h.
func (c *Client) CurrentWeather(ctx context.Context, city string) (types.WeatherSnapshot, error) {
	var resp currentResponse
	if err := c.get(ctx, "/weather", city, nil, &resp); err != nil {
		return types.WeatherSnapshot{}, err
	}

	snapshot := types.WeatherSnapshot{
		Temp:      int(math.Round(resp.Main.Temp)),
		Humidity:  resp.Main.Humidity,
		WindSpeed: int(math.Round(resp.Wind.Speed * 3.6)),
	}
	if len(resp.Weather) > 0 {
		snapshot.Condition = resp.Weather[0].Main
		snapshot.Description = resp.Weather[0].Description
		snapshot.Icon = resp.Weather[0].Icon
	}
	return snapshot, nil
}

// Forecast fetches the 3-hourly forecast list and reduces it to at most one
// entry per calendar day, keeping the entry whose local hour falls between
// 11:00 and 13:00 as that day's noon-ish representative, capped at five days
// in chronological order.
func (c *Client) Forecast(ctx context.Context, city string) ([]types.ForecastDay, error) {
	var resp forecastResponse
	if err := c.get(ctx, "/forecast", city, url.Values{"cnt": {"40"}}, &resp); err != nil {
		return nil, err
	}

	loc := time.FixedZone("local", resp.City.Timezone)
	days := make([]types.ForecastDay, 0, forecastDays)
	seen := make(map[string]bool)

	for _, item := range resp.List {
		t := time.Unix(item.Dt, 0).In(loc)
		date := t.Format("2006-01-02")
		hour := t.Hour()
		if seen[date] || hour < 11 || hour > 13 {
			continue
		}
		seen[date] = true

		condition := ""
		if len(item.Weather) > 0 {
			condition = item.Weather[0].Main
		}
		days = append(days, types.ForecastDay{
			Day:       t.Format("Mon"),
			High:      int(math.Round(item.Main.TempMax)),
			Low:       int(math.Round(item.Main.TempMin)),
			Condition: types.ConditionGlyph(condition),
		})
		if len(days) == forecastDays {
			break
		}
	}
	return days, nil
}

func (c *Client) get(ctx context.Context, path, city string, extra url.Values, dst any) (err error) {
	ctx, span := otel.Tracer("OpenWeatherClient").Start(ctx, "get")
	defer span.End()
	span.SetAttributes(attribute.String("openweather.path", path), attribute.String("city", city))

	start := time.Now()
	defer func() { metrics.ObserveGatewayCall(ctx, "openweather", start, err) }()

	if c.apiKey == "" {
		return errors.New("openweather: api key not configured")
	}

	q := url.Values{}
	q.Set("q", city)
	q.Set("appid", c.apiKey)
	q.Set("units", "metric")
	for k, vs := range extra {
		for _, v := range vs {
			q.Add(k, v)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		span.RecordError(err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.WarnContext(ctx, "Weather call failed",
			slog.String("path", path), slog.Int("status", resp.StatusCode), slog.String("body", string(body)))
		return fmt.Errorf("openweather %s returned %d", path, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(dst)
}
