package callback

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/weflow-hq/gewe-go/pkg/publishers"
)

// Link-card messages arrive with MsgType 49 and an appmsg XML document in
// the content field (prefixed with the sender wxid in chatrooms).
const msgTypeAppMsg = 49

// extractLink pulls the title/url/description out of an appmsg payload.
// Returns nil when the content has no usable link card; malformed XML is
// not an error, the event simply carries no preview.
func extractLink(content string) *publishers.LinkPreview {
	idx := strings.Index(content, "<")
	if idx < 0 {
		return nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content[idx:]))
	if err != nil {
		return nil
	}

	appmsg := doc.Find("appmsg").First()
	if appmsg.Length() == 0 {
		return nil
	}

	title := strings.TrimSpace(appmsg.Find("title").First().Text())
	url := strings.TrimSpace(appmsg.Find("url").First().Text())
	if title == "" && url == "" {
		return nil
	}

	return &publishers.LinkPreview{
		Title:       title,
		URL:         url,
		Description: strings.TrimSpace(appmsg.Find("des").First().Text()),
	}
}

// pushLink inspects a push and extracts a link preview when the payload
// is a link-card message.
func pushLink(p Push) *publishers.LinkPreview {
	if p.TypeName != "AddMsg" {
		return nil
	}
	msgType, ok := intValue(p.Data["MsgType"])
	if !ok || msgType != msgTypeAppMsg {
		return nil
	}
	content, ok := p.Data["Content"].(map[string]any)
	if !ok {
		return nil
	}
	s, ok := content["string"].(string)
	if !ok {
		return nil
	}
	return extractLink(s)
}
