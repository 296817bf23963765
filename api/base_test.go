package api

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetPrice(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/simple/price", r.URL.Path)
		require.Equal(t, "near", r.URL.Query().Get("ids"))
		require.Equal(t, "usd", r.URL.Query().Get("vs_currencies"))
		fmt.Fprint(w, `{"near":{"usd":3.17}}`)
	}))
	defer srv.Close()

	client := NewClientWithConfig(Config{PriceAPI: srv.URL})

	price, err := client.GetPrice(ChainNear, "usd")
	require.NoError(t, err)
	require.Equal(t, "near", price.Token)
	require.Equal(t, "usd", price.Currency)
	require.InDelta(t, 3.17, price.Price.InexactFloat64(), 1e-9)
}

func TestGetPriceBaseQuotesEthereum(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "ethereum", r.URL.Query().Get("ids"))
		require.Equal(t, "eur", r.URL.Query().Get("vs_currencies"))
		fmt.Fprint(w, `{"ethereum":{"eur":2500.5}}`)
	}))
	defer srv.Close()

	client := NewClientWithConfig(Config{PriceAPI: srv.URL})

	price, err := client.GetPrice(ChainBase, "eur")
	require.NoError(t, err)
	require.Equal(t, "ethereum", price.Token)
	require.InDelta(t, 2500.5, price.Price.InexactFloat64(), 1e-9)
}

func TestGetPriceMissingCurrency(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"near":{}}`)
	}))
	defer srv.Close()

	client := NewClientWithConfig(Config{PriceAPI: srv.URL})

	_, err := client.GetPrice(ChainNear, "usd")
	require.Error(t, err)
	require.Contains(t, err.Error(), "price not found")
}

func TestGetPriceMalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `not json`)
	}))
	defer srv.Close()

	client := NewClientWithConfig(Config{PriceAPI: srv.URL})

	_, err := client.GetPrice(ChainNear, "usd")
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to parse response")
}

func TestNewClientDefaults(t *testing.T) {
	client := NewClient()
	require.Equal(t, DefaultPriceAPI, client.priceAPI)
	require.Equal(t, DefaultNearRPC, client.nearRPC)
	require.Equal(t, DefaultBaseRPC, client.baseRPC)
	require.Equal(t, DefaultArbRPC, client.arbRPC)
}
