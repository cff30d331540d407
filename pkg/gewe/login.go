package gewe

import "context"

// GetLoginQRCode requests a login QR code for the device via
// /login/getLoginQrCode. The response carries the code image and a uuid
// to poll with CheckLogin.
func (c *Client) GetLoginQRCode(ctx context.Context) (map[string]any, error) {
	return c.Post(ctx, "/login/getLoginQrCode", Params{
		"appId": c.appID,
	})
}

// CheckLogin polls the login state for a QR code via /login/checkLogin.
// captchaCode may be empty unless the gateway asked for one.
func (c *Client) CheckLogin(ctx context.Context, uuid, captchaCode string) (map[string]any, error) {
	return c.Post(ctx, "/login/checkLogin", Params{
		"appId":      c.appID,
		"uuid":       uuid,
		"captchCode": captchaCode,
	})
}

// Logout signs the device out via /login/logout.
func (c *Client) Logout(ctx context.Context) (map[string]any, error) {
	return c.Post(ctx, "/login/logout", Params{
		"appId": c.appID,
	})
}

// Reconnect re-establishes a dropped session via /login/reconnection.
func (c *Client) Reconnect(ctx context.Context) (map[string]any, error) {
	return c.Post(ctx, "/login/reconnection", Params{
		"appId": c.appID,
	})
}

// CheckOnline reports whether the device session is alive via
// /login/checkOnline.
func (c *Client) CheckOnline(ctx context.Context) (map[string]any, error) {
	return c.Post(ctx, "/login/checkOnline", Params{
		"appId": c.appID,
	})
}
