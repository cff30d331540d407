package gewe

import "context"

// SetCallback registers the URL the gateway pushes messages to via
// /tools/setCallback. The route is token-scoped: it applies to every
// device under the token, so the payload carries the token, not an appId.
func (c *Client) SetCallback(ctx context.Context, callbackURL string) (map[string]any, error) {
	return c.Post(ctx, "/tools/setCallback", Params{
		"token":       c.token,
		"callbackUrl": callbackURL,
	})
}
