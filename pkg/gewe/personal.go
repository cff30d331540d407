package gewe

import "context"

// GetProfile fetches the logged-in account's profile via
// /personal/getProfile.
func (c *Client) GetProfile(ctx context.Context) (map[string]any, error) {
	return c.Post(ctx, "/personal/getProfile", Params{
		"appId": c.appID,
	})
}

// GetMyQRCode fetches the account's contact QR code via
// /personal/getQrCode.
func (c *Client) GetMyQRCode(ctx context.Context) (map[string]any, error) {
	return c.Post(ctx, "/personal/getQrCode", Params{
		"appId": c.appID,
	})
}
