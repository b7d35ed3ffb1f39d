package exchangerate

// Response represents the raw JSON response structure from the
// exchangerate-api.com v6 API.
//
// The structure includes:
//   - Result: "success" or "error"
//   - BaseCode: the base currency the rates are quoted against
//   - ConversionRates: map of currency code -> rate
//   - ErrorType: set when Result is "error" (e.g. "invalid-key", "quota-reached")
type Response struct {
	Result          string             `json:"result"`
	Documentation   string             `json:"documentation"`
	BaseCode        string             `json:"base_code"`
	TimeLastUpdate  int64              `json:"time_last_update_unix"`
	ConversionRates map[string]float64 `json:"conversion_rates"`
	ErrorType       string             `json:"error-type"`
}
