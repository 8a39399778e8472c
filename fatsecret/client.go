package fatsecret

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/dghubble/oauth1"
	"github.com/rs/zerolog"
)

// APIURL is the single REST endpoint all operations are issued against.
const APIURL = "https://platform.fatsecret.com/rest/server.api"

// Client wraps the FatSecret Platform API.
//
// A client holds the consumer credentials and the signing HTTP session. It
// starts out public (consumer-signed only) unless an access token pair is
// adopted via WithAccessToken, and becomes authenticated once
// CompleteAuthorization succeeds.
type Client struct {
	config     *oauth1.Config
	httpClient *http.Client
	logger     zerolog.Logger
	apiURL     string
	timeout    time.Duration
	base       *http.Client

	accessToken   string
	accessSecret  string
	requestToken  string
	requestSecret string
}

// NewClient creates a new FatSecret client. The client performs no network
// traffic at construction time.
func NewClient(consumerKey, consumerSecret string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if consumerKey == "" || consumerSecret == "" {
		return nil, ErrMissingCredentials
	}

	options := clientOptions{
		timeout:  30 * time.Second,
		apiURL:   APIURL,
		endpoint: Endpoint,
	}
	for _, opt := range opts {
		opt(&options)
	}

	// An access token pair is all or nothing.
	if (options.accessToken == "") != (options.accessSecret == "") {
		return nil, ErrPartialToken
	}

	client := &Client{
		config: &oauth1.Config{
			ConsumerKey:    consumerKey,
			ConsumerSecret: consumerSecret,
			Endpoint:       options.endpoint,
		},
		logger:  logger,
		apiURL:  options.apiURL,
		timeout: options.timeout,
		base:    options.httpClient,
	}

	if options.accessToken != "" {
		client.accessToken = options.accessToken
		client.accessSecret = options.accessSecret
	}
	client.httpClient = client.signingClient()

	return client, nil
}

// signingClient builds an HTTP client that signs requests with the consumer
// credentials plus whatever access token the session currently holds.
func (c *Client) signingClient() *http.Client {
	ctx := context.Background()
	if c.base != nil {
		ctx = context.WithValue(ctx, oauth1.HTTPClient, c.base)
	}
	signed := c.config.Client(ctx, oauth1.NewToken(c.accessToken, c.accessSecret))
	signed.Timeout = c.timeout
	return signed
}

// Authenticated reports whether the client holds an access token pair.
func (c *Client) Authenticated() bool {
	return c.accessToken != "" && c.accessSecret != ""
}

// Close releases idle transport connections. Callers that create a client
// should ensure this runs on every exit path.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

// call issues a single signed GET against the REST endpoint and interprets
// the response envelope.
func (c *Client) call(ctx context.Context, params url.Values) (any, error) {
	params.Set("format", "json")
	requestURL := c.apiURL + "?" + params.Encode()

	c.logger.Debug().
		Str("api_method", params.Get("method")).
		Msg("Calling FatSecret API")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	return interpret(body)
}

// callRecords issues a call whose envelope unwraps to a list of records. The
// provider collapses single-element lists into a bare object; such results
// are normalized to a one-element slice.
func (c *Client) callRecords(ctx context.Context, params url.Values) ([]Record, error) {
	result, err := c.call(ctx, params)
	if err != nil {
		return nil, err
	}
	return toRecords(result), nil
}

// callRecord issues a call whose envelope holds a single object.
func (c *Client) callRecord(ctx context.Context, params url.Values) (Record, error) {
	result, err := c.call(ctx, params)
	if err != nil {
		return nil, err
	}
	if rec, ok := result.(map[string]any); ok {
		return Record(rec), nil
	}
	return nil, nil
}

// callBool issues a call that is acknowledged with a success envelope. It
// returns false without error when the response matched no known envelope.
func (c *Client) callBool(ctx context.Context, params url.Values) (bool, error) {
	result, err := c.call(ctx, params)
	if err != nil {
		return false, err
	}
	ok, _ := result.(bool)
	return ok, nil
}

// callPair issues a call whose envelope carries an auth token pair.
func (c *Client) callPair(ctx context.Context, params url.Values) (TokenPair, error) {
	result, err := c.call(ctx, params)
	if err != nil {
		return TokenPair{}, err
	}
	pair, _ := result.(TokenPair)
	return pair, nil
}

// toRecords coerces an interpreted payload into a record list.
func toRecords(v any) []Record {
	switch t := v.(type) {
	case []any:
		records := make([]Record, 0, len(t))
		for _, item := range t {
			if rec, ok := item.(map[string]any); ok {
				records = append(records, Record(rec))
			}
		}
		return records
	case map[string]any:
		return []Record{Record(t)}
	}
	return nil
}
