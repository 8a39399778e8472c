package fatsecret

import (
	"context"
)

// ProfileCreate creates a new profile and returns its auth token pair. The
// pair is persisted indefinitely by the provider and can be used to resume
// profile-specific sessions. Supplying your own userID instead lets
// ProfileGetAuth retrieve the pair later.
func (c *Client) ProfileCreate(ctx context.Context, userID string) (TokenPair, error) {
	params := newParams("profile.create")
	setString(params, "user_id", userID)
	return c.callPair(ctx, params)
}

// ProfileGet returns general status information for the authenticated user.
func (c *Client) ProfileGet(ctx context.Context) (Record, error) {
	return c.callRecord(ctx, newParams("profile.get"))
}

// ProfileGetAuth returns the auth token pair for a profile previously
// created with a caller-chosen user ID.
func (c *Client) ProfileGetAuth(ctx context.Context, userID string) (TokenPair, error) {
	params := newParams("profile.get_auth")
	params.Set("user_id", userID)
	return c.callPair(ctx, params)
}
