package quotes

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/pocketly/wallet-service/internal/config"
)

// Client handles integration with the market quote feed
type Client struct {
	url    string
	client *http.Client
	log    *logrus.Logger
}

// NewClient initializes a new quote feed client
func NewClient(cfg *config.Config, log *logrus.Logger) *Client {
	return &Client{
		url: cfg.QuotesURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		log: log,
	}
}

// buildRequest creates the XML request body for a symbol lookup
func (c *Client) buildRequest(symbol string) string {
	asOf := time.Now().Format("2006-01-02")
	return fmt.Sprintf(`<?xml version="1.0" encoding="utf-8"?>
		<QuoteRequest>
			<Symbol>%s</Symbol>
			<AsOf>%s</AsOf>
		</QuoteRequest>`, symbol, asOf)
}

// sendRequest posts the XML request to the feed
func (c *Client) sendRequest(request string) ([]byte, error) {
	req, err := http.NewRequest("POST", c.url, bytes.NewBuffer([]byte(request)))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %v", err)
	}

	req.Header.Set("Content-Type", "application/xml; charset=utf-8")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %v", err)
	}

	c.log.Debugf("Quote feed XML response: %s", string(body))

	return body, nil
}

// parseResponse parses the XML response to extract the price for a symbol
func (c *Client) parseResponse(rawBody []byte, symbol string) (decimal.Decimal, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(rawBody); err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse XML: %v", err)
	}

	quoteElements := doc.FindElements("//QuoteResponse/Quote")
	if len(quoteElements) == 0 {
		return decimal.Zero, fmt.Errorf("no quote data found in XML")
	}

	for _, quote := range quoteElements {
		symbolElement := quote.FindElement("./Symbol")
		if symbolElement == nil || symbolElement.Text() != symbol {
			continue
		}
		priceElement := quote.FindElement("./Price")
		if priceElement == nil {
			return decimal.Zero, fmt.Errorf("price element not found for %s", symbol)
		}
		price, err := decimal.NewFromString(priceElement.Text())
		if err != nil {
			return decimal.Zero, fmt.Errorf("failed to parse price: %v", err)
		}
		return price, nil
	}

	return decimal.Zero, fmt.Errorf("symbol %s not present in response", symbol)
}

// GetQuote retrieves the latest price for a symbol from the feed
func (c *Client) GetQuote(symbol string) (decimal.Decimal, error) {
	request := c.buildRequest(symbol)
	body, err := c.sendRequest(request)
	if err != nil {
		return decimal.Zero, err
	}

	price, err := c.parseResponse(body, symbol)
	if err != nil {
		return decimal.Zero, err
	}

	c.log.Infof("Retrieved quote for %s: %s", symbol, price.String())
	return price, nil
}
