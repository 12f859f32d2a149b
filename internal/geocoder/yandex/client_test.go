package yandex_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/Gunvolt24/foodcart/internal/domain"
	"github.com/Gunvolt24/foodcart/internal/geocoder/yandex"
	"github.com/stretchr/testify/require"
)

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

func newServer(t *testing.T, status int, body string) (*httptest.Server, chan url.Values) {
	t.Helper()
	queries := make(chan url.Values, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case queries <- r.URL.Query():
		default:
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, queries
}

func TestGeocode_FirstMemberWins(t *testing.T) {
	srv, queries := newServer(t, http.StatusOK, `{"response":{"GeoObjectCollection":{"featureMember":[
		{"GeoObject":{"Point":{"pos":"37.617635 55.755814"}}},
		{"GeoObject":{"Point":{"pos":"30.315868 59.939095"}}}
	]}}}`)

	c := yandex.NewClient(srv.URL, "secret", time.Second, noopLogger{})
	coord, found, err := c.Geocode(context.Background(), "Москва, Красная площадь")

	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, domain.Coordinate{Lat: 55.755814, Lon: 37.617635}, coord)

	q := <-queries
	require.Equal(t, "Москва, Красная площадь", q.Get("geocode"))
	require.Equal(t, "secret", q.Get("apikey"))
	require.Equal(t, "json", q.Get("format"))
}

func TestGeocode_EmptyResult_NotFound(t *testing.T) {
	srv, _ := newServer(t, http.StatusOK, `{"response":{"GeoObjectCollection":{"featureMember":[]}}}`)

	c := yandex.NewClient(srv.URL, "k", time.Second, noopLogger{})
	_, found, err := c.Geocode(context.Background(), "нигде")

	require.NoError(t, err)
	require.False(t, found)
}

func TestGeocode_Non2xx_Unavailable(t *testing.T) {
	srv, _ := newServer(t, http.StatusForbidden, `{"error":"Invalid key"}`)

	c := yandex.NewClient(srv.URL, "bad", time.Second, noopLogger{})
	_, _, err := c.Geocode(context.Background(), "Москва")

	require.True(t, errors.Is(err, domain.ErrGeocoderUnavailable), "err=%v", err)
}

func TestGeocode_TransportError_Unavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	addr := srv.URL
	srv.Close()

	c := yandex.NewClient(addr, "k", time.Second, noopLogger{})
	_, _, err := c.Geocode(context.Background(), "Москва")

	require.True(t, errors.Is(err, domain.ErrGeocoderUnavailable), "err=%v", err)
}

func TestGeocode_Malformed(t *testing.T) {
	cases := map[string]string{
		"not json":        `<html>`,
		"no response":     `{}`,
		"no collection":   `{"response":{}}`,
		"no point":        `{"response":{"GeoObjectCollection":{"featureMember":[{"GeoObject":{}}]}}}`,
		"pos one number":  `{"response":{"GeoObjectCollection":{"featureMember":[{"GeoObject":{"Point":{"pos":"37.6"}}}]}}}`,
		"pos not numeric": `{"response":{"GeoObjectCollection":{"featureMember":[{"GeoObject":{"Point":{"pos":"a b"}}}]}}}`,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			srv, _ := newServer(t, http.StatusOK, body)

			c := yandex.NewClient(srv.URL, "k", time.Second, noopLogger{})
			_, found, err := c.Geocode(context.Background(), "Москва")

			require.False(t, found)
			require.True(t, errors.Is(err, domain.ErrGeocoderMalformed), "err=%v", err)
		})
	}
}
