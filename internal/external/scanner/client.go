// Package scanner resolves equities against the TradingView global
// scanner API: ticker to EXCHANGE:SYMBOL resolution and logo lookup.
// Resolution is best-effort; every failure falls back to the input
// ticker so callers never branch on errors.
package scanner

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/jwyoon/equityboard/pkg/httputil"
	"github.com/jwyoon/equityboard/pkg/logger"
)

const logoBaseURL = "https://s3-symbol-logo.tradingview.com"

// Client handles communication with the scanner API
// SSOT: scanner API calls happen in this client only
type Client struct {
	httpClient *httputil.Client
	logger     *logger.Logger
	baseURL    string
}

// NewClient creates a new scanner client. Lookups are interactive, so
// the client runs without retries; the rate limit guards the upstream.
func NewClient(httpClient *httputil.Client, log *logger.Logger, baseURL string) *Client {
	return &Client{
		httpClient: httpClient.DisableRetry(),
		logger:     log,
		baseURL:    baseURL,
	}
}

// scanRequest is the scanner API request body
type scanRequest struct {
	Markets []string     `json:"markets"`
	Symbols scanSymbols  `json:"symbols"`
	Options scanOptions  `json:"options"`
	Filter  []scanFilter `json:"filter"`
	Columns []string     `json:"columns"`
	Sort    scanSort     `json:"sort"`
	Range   [2]int       `json:"range"`
}

type scanSymbols struct {
	Query   scanQuery `json:"query"`
	Tickers []string  `json:"tickers"`
}

type scanQuery struct {
	Types []string `json:"types"`
}

type scanOptions struct {
	Lang string `json:"lang"`
}

type scanFilter struct {
	Left      string `json:"left"`
	Operation string `json:"operation"`
	Right     string `json:"right"`
}

type scanSort struct {
	SortBy    string `json:"sortBy"`
	SortOrder string `json:"sortOrder"`
}

// scanResponse is the scanner API response envelope
type scanResponse struct {
	Data []scanRow `json:"data"`
}

type scanRow struct {
	Symbol  string            `json:"s"`
	Columns []json.RawMessage `json:"d"`
}

// tier is one priority-ordered resolution attempt
type tier struct {
	field     string
	query     string
	operation string
}

// Resolve maps a ticker to the scanner's EXCHANGE:SYMBOL form. Tiers
// run in priority order: exact ticker, name match, fuzzy ticker. The
// first non-empty result wins; total failure returns the input symbol.
func (c *Client) Resolve(ctx context.Context, symbol, name string, mics []string) string {
	markets := marketsForMICs(mics)
	tiers := []tier{
		{"name", symbol, "equal"},
		{"description", name, "match"},
		{"name", symbol, "match"},
	}

	for _, t := range tiers {
		if t.query == "" {
			continue
		}
		if resolved := c.tryScan(ctx, t, markets); resolved != "" {
			return resolved
		}
	}
	return symbol
}

// FetchLogo looks up the logo identifier for a resolved symbol; ""
// when unavailable
func (c *Client) FetchLogo(ctx context.Context, resolved string) string {
	body := map[string]interface{}{
		"symbols": map[string]interface{}{"tickers": []string{resolved}},
		"columns": []string{"logoid"},
	}

	var result scanResponse
	if err := c.scan(ctx, body, &result); err != nil {
		c.logger.WithError(err).WithField("symbol", resolved).Debug("Logo lookup failed")
		return ""
	}
	if len(result.Data) == 0 || len(result.Data[0].Columns) == 0 {
		return ""
	}

	var logoid string
	if err := json.Unmarshal(result.Data[0].Columns[0], &logoid); err != nil {
		return ""
	}
	return logoid
}

// LogoURL builds the SVG logo URL from a logo identifier
func LogoURL(logoid string) string {
	if logoid == "" {
		return ""
	}
	return fmt.Sprintf("%s/%s--big.svg", logoBaseURL, logoid)
}

// tryScan runs one resolution tier; "" means no match or failure
func (c *Client) tryScan(ctx context.Context, t tier, markets []string) string {
	body := scanRequest{
		Markets: markets,
		Symbols: scanSymbols{Query: scanQuery{Types: []string{"stock"}}, Tickers: []string{}},
		Options: scanOptions{Lang: "en"},
		Filter:  []scanFilter{{Left: t.field, Operation: t.operation, Right: t.query}},
		Columns: []string{"name", "description", "volume"},
		Sort:    scanSort{SortBy: "volume", SortOrder: "desc"},
		Range:   [2]int{0, 1},
	}

	var result scanResponse
	if err := c.scan(ctx, body, &result); err != nil {
		c.logger.WithError(err).WithFields(map[string]interface{}{
			"field": t.field,
			"query": t.query,
		}).Debug("Scan tier failed")
		return ""
	}
	if len(result.Data) == 0 {
		return ""
	}
	return result.Data[0].Symbol
}

func (c *Client) scan(ctx context.Context, body interface{}, result *scanResponse) error {
	resp, err := c.httpClient.PostJSON(ctx, c.baseURL+"/global/scan", body)
	if err != nil {
		return fmt.Errorf("scan request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode scan response: %w", err)
	}
	return nil
}
