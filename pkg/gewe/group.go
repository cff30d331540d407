package gewe

import "context"

// CreateChatroom starts a group chat with the given members via
// /group/createChatroom. The gateway requires at least two.
func (c *Client) CreateChatroom(ctx context.Context, wxids []Wxid) (map[string]any, error) {
	return c.Post(ctx, "/group/createChatroom", Params{
		"appId": c.appID,
		"wxids": wxids,
	})
}

// ModifyChatroomName renames a group via /group/modifyChatroomName.
func (c *Client) ModifyChatroomName(ctx context.Context, chatroomID, name string) (map[string]any, error) {
	return c.Post(ctx, "/group/modifyChatroomName", Params{
		"appId":        c.appID,
		"chatroomId":   chatroomID,
		"chatroomName": name,
	})
}

// InviteMember invites contacts into a group via /group/inviteMember.
func (c *Client) InviteMember(ctx context.Context, chatroomID string, wxids []Wxid, reason string) (map[string]any, error) {
	return c.Post(ctx, "/group/inviteMember", Params{
		"appId":      c.appID,
		"chatroomId": chatroomID,
		"wxids":      joinWxids(wxids),
		"reason":     reason,
	})
}

// GetChatroomInfo fetches group metadata via /group/getChatroomInfo.
func (c *Client) GetChatroomInfo(ctx context.Context, chatroomID string) (map[string]any, error) {
	return c.Post(ctx, "/group/getChatroomInfo", Params{
		"appId":      c.appID,
		"chatroomId": chatroomID,
	})
}

// QuitChatroom leaves a group via /group/quitChatroom.
func (c *Client) QuitChatroom(ctx context.Context, chatroomID string) (map[string]any, error) {
	return c.Post(ctx, "/group/quitChatroom", Params{
		"appId":      c.appID,
		"chatroomId": chatroomID,
	})
}
