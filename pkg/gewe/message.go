package gewe

import (
	"context"
	"strings"
)

// PostText sends a text message via /message/postText. toWxid may be a
// contact wxid or a chatroom id; ats lists members to mention in a
// chatroom (the gateway expects them comma-joined).
func (c *Client) PostText(ctx context.Context, toWxid, content string, ats []Wxid) (map[string]any, error) {
	return c.Post(ctx, "/message/postText", Params{
		"appId":   c.appID,
		"toWxid":  toWxid,
		"content": content,
		"ats":     joinWxids(ats),
	})
}

// PostImage sends an image by URL via /message/postImage.
func (c *Client) PostImage(ctx context.Context, toWxid, imgURL string) (map[string]any, error) {
	return c.Post(ctx, "/message/postImage", Params{
		"appId":  c.appID,
		"toWxid": toWxid,
		"imgUrl": imgURL,
	})
}

// PostFile sends a file by URL via /message/postFile.
func (c *Client) PostFile(ctx context.Context, toWxid, fileURL, fileName string) (map[string]any, error) {
	return c.Post(ctx, "/message/postFile", Params{
		"appId":    c.appID,
		"toWxid":   toWxid,
		"fileUrl":  fileURL,
		"fileName": fileName,
	})
}

// PostLink sends a link card via /message/postLink.
func (c *Client) PostLink(ctx context.Context, toWxid, title, desc, linkURL, thumbURL string) (map[string]any, error) {
	return c.Post(ctx, "/message/postLink", Params{
		"appId":    c.appID,
		"toWxid":   toWxid,
		"title":    title,
		"desc":     desc,
		"linkUrl":  linkURL,
		"thumbUrl": thumbURL,
	})
}

// RevokeMessage recalls a previously sent message via /message/revokeMsg.
// The identifiers come from the response of the original send.
func (c *Client) RevokeMessage(ctx context.Context, toWxid, msgID, newMsgID, createTime string) (map[string]any, error) {
	return c.Post(ctx, "/message/revokeMsg", Params{
		"appId":      c.appID,
		"toWxid":     toWxid,
		"msgId":      msgID,
		"newMsgId":   newMsgID,
		"createTime": createTime,
	})
}

func joinWxids(wxids []Wxid) string {
	if len(wxids) == 0 {
		return ""
	}
	parts := make([]string, len(wxids))
	for i, w := range wxids {
		parts[i] = w.String()
	}
	return strings.Join(parts, ",")
}
