package exchangerate

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
)

// Client provides methods for fetching currency conversion rates from the
// exchangerate-api.com v6 API. It wraps an HTTP client and knows how to query
// "latest rates for base X" and extract a single counter-currency entry.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewClient creates a new exchange-rate client with default HTTP settings.
//
// Parameters:
//   - baseURL: API root, e.g. "https://v6.exchangerate-api.com/v6"
//   - apiKey: provider-issued API key, embedded in the request path
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		httpClient: &http.Client{},
		baseURL:    baseURL,
		apiKey:     apiKey,
	}
}

// LatestRates fetches the latest conversion rates quoted against the given
// base currency.
//
// Returns:
//   - Response: Parsed API response
//   - error: If the HTTP request fails, the response is not 2xx, parsing
//     fails, or the API reports an error result
func (c *Client) LatestRates(base string) (Response, error) {
	url := fmt.Sprintf("%s/%s/latest/%s", c.baseURL, c.apiKey, base)

	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return Response{}, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Response{}, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return Response{}, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Response{}, fmt.Errorf("exchange rate API returned status %d", resp.StatusCode)
	}

	var response Response
	if err := json.Unmarshal(data, &response); err != nil {
		return Response{}, err
	}

	if response.Result != "success" {
		return response, fmt.Errorf("exchange rate API error: %s", response.ErrorType)
	}

	return response, nil
}

// USDToINR fetches the current USD -> INR conversion rate.
//
// Returns:
//   - float64: the rate, guaranteed positive and finite
//   - error: If the request fails or the INR entry is missing or not a
//     positive finite number
func (c *Client) USDToINR() (float64, error) {
	return c.rateFor("USD", "INR")
}

// INRToUSD fetches the current INR -> USD conversion rate. This is the
// reverse lookup; callers that already hold a USD->INR sample can divide
// instead of fetching.
func (c *Client) INRToUSD() (float64, error) {
	return c.rateFor("INR", "USD")
}

// rateFor fetches the latest rates for base and extracts the counter entry.
func (c *Client) rateFor(base, counter string) (float64, error) {
	response, err := c.LatestRates(base)
	if err != nil {
		return 0, err
	}

	rate, ok := response.ConversionRates[counter]
	if !ok {
		return 0, fmt.Errorf("no %s rate in response for base %s", counter, base)
	}
	if rate <= 0 || math.IsNaN(rate) || math.IsInf(rate, 0) {
		return 0, fmt.Errorf("invalid %s rate %v for base %s", counter, rate, base)
	}

	return rate, nil
}
