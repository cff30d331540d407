package gewe

import "context"

// ContactOp selects the action for UploadPhoneContacts.
type ContactOp int

const (
	ContactOpAdd    ContactOp = 1
	ContactOpRemove ContactOp = 2
)

// FetchContactsList retrieves the full contact list via
// /contacts/fetchContactsList. The gateway builds this on demand and it
// is slow on large accounts; prefer FetchContactsListCache when a
// ten-minute-old view is acceptable.
func (c *Client) FetchContactsList(ctx context.Context) (map[string]any, error) {
	return c.Post(ctx, "/contacts/fetchContactsList", Params{
		"appId": c.appID,
	})
}

// FetchContactsListCache retrieves the gateway's cached contact list via
// /contacts/fetchContactsListCache. The cache is a property of the remote
// service, not of this client.
func (c *Client) FetchContactsListCache(ctx context.Context) (map[string]any, error) {
	return c.Post(ctx, "/contacts/fetchContactsListCache", Params{
		"appId": c.appID,
	})
}

// SearchContact looks up a contact by keyword (phone number, wechat id
// alias, etc.) via /contacts/search.
func (c *Client) SearchContact(ctx context.Context, keyword string) (map[string]any, error) {
	return c.Post(ctx, "/contacts/search", Params{
		"appId":        c.appID,
		"contactsInfo": keyword,
	})
}

// AddContacts sends a friend request via /contacts/addContacts. The v3
// and v4 tokens come from a prior SearchContact response; scene encodes
// how the contact was found and option the request type.
func (c *Client) AddContacts(ctx context.Context, scene, option int, v3, v4, content string) (map[string]any, error) {
	return c.Post(ctx, "/contacts/addContacts", Params{
		"appId":   c.appID,
		"scene":   scene,
		"option":  option,
		"v3":      v3,
		"v4":      v4,
		"content": content,
	})
}

// DeleteFriend removes a contact via /contacts/deleteFriend.
func (c *Client) DeleteFriend(ctx context.Context, wxid Wxid) (map[string]any, error) {
	return c.Post(ctx, "/contacts/deleteFriend", Params{
		"appId": c.appID,
		"wxid":  wxid,
	})
}

// UploadPhoneContacts adds or removes phone-book numbers via
// /contacts/uploadPhoneAddressList.
func (c *Client) UploadPhoneContacts(ctx context.Context, phones []string, op ContactOp) (map[string]any, error) {
	return c.Post(ctx, "/contacts/uploadPhoneAddressList", Params{
		"appId":  c.appID,
		"phones": phones,
		"opType": int(op),
	})
}

// SetFriendOnlyChat toggles the chat-only restriction for a contact via
// /contacts/setFriendPermissions.
func (c *Client) SetFriendOnlyChat(ctx context.Context, wxid Wxid, onlyChat bool) (map[string]any, error) {
	return c.Post(ctx, "/contacts/setFriendPermissions", Params{
		"appId":    c.appID,
		"wxid":     wxid,
		"onlyChat": onlyChat,
	})
}

// SetFriendRemark sets the local display name for a contact via
// /contacts/setFriendRemark.
func (c *Client) SetFriendRemark(ctx context.Context, wxid Wxid, remark string) (map[string]any, error) {
	return c.Post(ctx, "/contacts/setFriendRemark", Params{
		"appId":  c.appID,
		"wxid":   wxid,
		"remark": remark,
	})
}

// GetBriefInfo retrieves brief information for a single contact via
// /contacts/getBriefInfo. The route always takes a list; the single wxid
// is wrapped in one.
func (c *Client) GetBriefInfo(ctx context.Context, wxid Wxid) (map[string]any, error) {
	return c.GetBriefInfoList(ctx, []Wxid{wxid})
}

// GetBriefInfoList retrieves brief information for several contacts in
// one call via /contacts/getBriefInfo.
func (c *Client) GetBriefInfoList(ctx context.Context, wxids []Wxid) (map[string]any, error) {
	return c.Post(ctx, "/contacts/getBriefInfo", Params{
		"appId": c.appID,
		"wxids": wxids,
	})
}

// GetDetailInfo retrieves detailed profiles for up to 20 contacts via
// /contacts/getDetailInfo.
func (c *Client) GetDetailInfo(ctx context.Context, wxids []Wxid) (map[string]any, error) {
	return c.Post(ctx, "/contacts/getDetailInfo", Params{
		"appId": c.appID,
		"wxids": wxids,
	})
}
