// Package fatsecret provides a client for the FatSecret Platform REST API.
//
// FatSecret is a nutrition tracking service exposing foods, recipes, saved
// meals, food and exercise diaries, weight tracking and user profiles. The
// API is a single GET endpoint; the remote operation is selected with a
// "method" query parameter and every request is signed with OAuth 1.0
// (HMAC-SHA1).
//
// # Sessions
//
// A client is either public or authenticated. A public client can only read
// public data (food and recipe search); profile-bound operations require a
// three-legged OAuth handshake:
//
//	client, err := fatsecret.NewClient(consumerKey, consumerSecret, logger)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	authURL, err := client.BeginAuthorization(fatsecret.OutOfBand)
//	// direct the user to authURL; they receive a verifier PIN
//	pair, err := client.CompleteAuthorization(verifier)
//	// persist pair to resume the session later
//
// A previously issued access token pair can be adopted at construction, in
// which case the client is authenticated immediately and no network traffic
// occurs until the first call:
//
//	client, err := fatsecret.NewClient(consumerKey, consumerSecret, logger,
//	    fatsecret.WithAccessToken(pair.Token, pair.Secret))
//
// # Error Handling
//
// Remote failures are reported inside a JSON error envelope rather than via
// HTTP status codes. The client maps them onto *APIError values carrying a
// Kind (authentication, general, parameter or application), the numeric code
// and the provider's message:
//
//	var apiErr *fatsecret.APIError
//	if errors.As(err, &apiErr) && apiErr.IsAuthentication() {
//	    // re-run the authorization flow
//	}
//
// API calls may run concurrently. The authorization methods are the
// exception: they replace the client's token state and must not overlap with
// other calls on the same client.
package fatsecret
