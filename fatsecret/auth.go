package fatsecret

import (
	"fmt"

	"github.com/dghubble/oauth1"
)

// Endpoint is FatSecret's OAuth1 provider endpoint.
var Endpoint = oauth1.Endpoint{
	RequestTokenURL: "https://www.fatsecret.com/oauth/request_token",
	AuthorizeURL:    "https://www.fatsecret.com/oauth/authorize",
	AccessTokenURL:  "https://www.fatsecret.com/oauth/access_token",
}

// OutOfBand is the callback sentinel for the PIN-based flow. The provider
// shows the user a verifier PIN instead of redirecting.
const OutOfBand = "oob"

// BeginAuthorization requests a temporary request token from the provider
// and returns the URL the end user must visit to grant access.
//
// callbackURL must be an absolute URL the provider redirects to with the
// verifier attached, or OutOfBand (the default when empty) for the PIN flow.
// The request token is held internally until CompleteAuthorization consumes
// it; calling BeginAuthorization again safely starts over.
func (c *Client) BeginAuthorization(callbackURL string) (string, error) {
	if callbackURL == "" {
		callbackURL = OutOfBand
	}
	c.config.CallbackURL = callbackURL

	requestToken, requestSecret, err := c.config.RequestToken()
	if err != nil {
		return "", fmt.Errorf("failed to obtain request token: %w", err)
	}
	c.requestToken = requestToken
	c.requestSecret = requestSecret

	authorizationURL, err := c.config.AuthorizationURL(requestToken)
	if err != nil {
		return "", fmt.Errorf("failed to build authorization URL: %w", err)
	}

	c.logger.Debug().
		Str("callback", callbackURL).
		Msg("Issued OAuth request token")

	return authorizationURL.String(), nil
}

// CompleteAuthorization exchanges the stored request token plus the
// user-supplied verifier for a permanent access token pair. On success the
// client's signing session is replaced with an authenticated one and the
// pair is returned so the caller can persist it for later resumption.
func (c *Client) CompleteAuthorization(verifier string) (TokenPair, error) {
	if c.requestToken == "" {
		return TokenPair{}, ErrNoRequestToken
	}

	accessToken, accessSecret, err := c.config.AccessToken(c.requestToken, c.requestSecret, verifier)
	if err != nil {
		return TokenPair{}, fmt.Errorf("failed to exchange access token: %w", err)
	}

	c.accessToken = accessToken
	c.accessSecret = accessSecret
	c.requestToken = ""
	c.requestSecret = ""
	c.httpClient = c.signingClient()

	c.logger.Info().Msg("OAuth authorization complete")

	return TokenPair{Token: accessToken, Secret: accessSecret}, nil
}
