package quotes

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/pocketly/wallet-service/internal/config"
)

const feedFixture = `<?xml version="1.0" encoding="utf-8"?>
<QuoteResponse>
	<Quote>
		<Symbol>AAPL</Symbol>
		<Price>231.50</Price>
	</Quote>
	<Quote>
		<Symbol>VTI</Symbol>
		<Price>289.10</Price>
	</Quote>
</QuoteResponse>`

func testClient(url string) *Client {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewClient(&config.Config{QuotesURL: url}, logger)
}

func TestParseResponse(t *testing.T) {
	t.Parallel()

	c := testClient("")

	price, err := c.parseResponse([]byte(feedFixture), "AAPL")
	require.NoError(t, err)
	require.True(t, price.Equal(decimal.RequireFromString("231.50")))

	price, err = c.parseResponse([]byte(feedFixture), "VTI")
	require.NoError(t, err)
	require.True(t, price.Equal(decimal.RequireFromString("289.10")))
}

func TestParseResponseUnknownSymbol(t *testing.T) {
	t.Parallel()

	c := testClient("")
	_, err := c.parseResponse([]byte(feedFixture), "TSLA")
	require.Error(t, err)
}

func TestParseResponseMalformedXML(t *testing.T) {
	t.Parallel()

	c := testClient("")
	_, err := c.parseResponse([]byte("<QuoteResponse><Quote>"), "AAPL")
	require.Error(t, err)
}

func TestGetQuote(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "POST", r.Method)
		_, _ = w.Write([]byte(feedFixture))
	}))
	defer server.Close()

	c := testClient(server.URL)
	price, err := c.GetQuote("AAPL")
	require.NoError(t, err)
	require.True(t, price.Equal(decimal.RequireFromString("231.50")))
}

func TestGetQuoteFeedError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	c := testClient(server.URL)
	_, err := c.GetQuote("AAPL")
	require.Error(t, err)
}
