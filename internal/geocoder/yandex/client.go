// Пакет yandex — клиент геокодера Яндекс.Карт (HTTP API 1.x).
package yandex

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Gunvolt24/foodcart/internal/domain"
	"github.com/Gunvolt24/foodcart/internal/ports"
	"github.com/Gunvolt24/foodcart/pkg/metrics"
	"github.com/Gunvolt24/foodcart/pkg/telemetry"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
)

const (
	DefaultBaseURL = "https://geocode-maps.yandex.ru/1.x"
	DefaultTimeout = 10 * time.Second

	maxBodyBytes = 1 << 20
)

// Client — один GET на адрес, без повторов.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	log     ports.Logger
}

// Проверка, что Client удовлетворяет интерфейсу ports.Geocoder.
var _ ports.Geocoder = (*Client)(nil)

// NewClient — конструктор; пустой baseURL и нулевой timeout заменяются дефолтами.
func NewClient(baseURL, apiKey string, timeout time.Duration, log ports.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		log: log,
	}
}

// Поля — указатели: отсутствие поля отличаем от пустого значения.
type geocodeResponse struct {
	Response *struct {
		Collection *struct {
			FeatureMember *[]struct {
				GeoObject *struct {
					Point *struct {
						Pos *string `json:"pos"`
					} `json:"Point"`
				} `json:"GeoObject"`
			} `json:"featureMember"`
		} `json:"GeoObjectCollection"`
	} `json:"response"`
}

// Geocode — координаты адреса; пустой результат => found=false без ошибки.
func (c *Client) Geocode(ctx context.Context, address string) (domain.Coordinate, bool, error) {
	ctx, span := telemetry.Tracer("geocoder/yandex").Start(ctx, "yandex.Geocode")
	start := time.Now()
	coord, found, result, err := c.geocode(ctx, address)
	metrics.GeocoderLatency.Observe(time.Since(start).Seconds())
	metrics.GeocoderRequests.WithLabelValues(result).Inc()
	span.SetAttributes(attribute.String("geocoder.result", result))
	telemetry.EndSpan(span, err)
	return coord, found, err
}

func (c *Client) geocode(ctx context.Context, address string) (domain.Coordinate, bool, string, error) {
	q := url.Values{}
	q.Set("geocode", address)
	q.Set("apikey", c.apiKey)
	q.Set("format", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), http.NoBody)
	if err != nil {
		return domain.Coordinate{}, false, "unavailable", fmt.Errorf("build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.Coordinate{}, false, "unavailable", fmt.Errorf("%w: %v", domain.ErrGeocoderUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Warnf(ctx, "geocoder status=%d address=%q", resp.StatusCode, address)
		return domain.Coordinate{}, false, "unavailable",
			fmt.Errorf("%w: status %d", domain.ErrGeocoderUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return domain.Coordinate{}, false, "unavailable", fmt.Errorf("%w: read body: %v", domain.ErrGeocoderUnavailable, err)
	}

	coord, found, err := parseResponse(body)
	switch {
	case err != nil:
		c.log.Warnf(ctx, "geocoder malformed response address=%q err=%v", address, err)
		return domain.Coordinate{}, false, "malformed", err
	case !found:
		return domain.Coordinate{}, false, "not_found", nil
	default:
		return coord, true, "found", nil
	}
}

func parseResponse(body []byte) (domain.Coordinate, bool, error) {
	var payload geocodeResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return domain.Coordinate{}, false, fmt.Errorf("%w: %v", domain.ErrGeocoderMalformed, err)
	}
	if payload.Response == nil || payload.Response.Collection == nil || payload.Response.Collection.FeatureMember == nil {
		return domain.Coordinate{}, false, fmt.Errorf("%w: missing featureMember", domain.ErrGeocoderMalformed)
	}

	members := *payload.Response.Collection.FeatureMember
	if len(members) == 0 {
		return domain.Coordinate{}, false, nil
	}

	// первый элемент — самый релевантный
	first := members[0]
	if first.GeoObject == nil || first.GeoObject.Point == nil || first.GeoObject.Point.Pos == nil {
		return domain.Coordinate{}, false, fmt.Errorf("%w: missing GeoObject.Point.pos", domain.ErrGeocoderMalformed)
	}

	coord, err := parsePos(*first.GeoObject.Point.Pos)
	if err != nil {
		return domain.Coordinate{}, false, err
	}
	return coord, true, nil
}

// parsePos — строка "<lon> <lat>".
func parsePos(pos string) (domain.Coordinate, error) {
	parts := strings.Fields(pos)
	if len(parts) != 2 {
		return domain.Coordinate{}, fmt.Errorf("%w: pos %q", domain.ErrGeocoderMalformed, pos)
	}
	lon, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return domain.Coordinate{}, fmt.Errorf("%w: lon %q", domain.ErrGeocoderMalformed, parts[0])
	}
	lat, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return domain.Coordinate{}, fmt.Errorf("%w: lat %q", domain.ErrGeocoderMalformed, parts[1])
	}
	return domain.Coordinate{Lat: lat, Lon: lon}, nil
}
