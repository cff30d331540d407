package callback

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/weflow-hq/gewe-go/pkg/publishers"
)

type fakeSink struct {
	events []publishers.Event
}

func (f *fakeSink) Publish(_ context.Context, evt publishers.Event) (int, error) {
	f.events = append(f.events, evt)
	return 1, nil
}

type memStore struct {
	seen map[string]bool
}

func newMemStore() *memStore { return &memStore{seen: map[string]bool{}} }

func (m *memStore) Close() error                        { return nil }
func (m *memStore) SeenMessage(id string) (bool, error) { return m.seen[id], nil }
func (m *memStore) MarkMessage(id string) error {
	m.seen[id] = true
	return nil
}

const samplePush = `{
	"TypeName": "AddMsg",
	"Appid": "app-1",
	"Wxid": "wxid_owner",
	"Data": {
		"NewMsgId": 8123456789,
		"MsgType": 1,
		"FromUserName": {"string": "wxid_peer"},
		"Content": {"string": "hello"}
	}
}`

func postCallback(t *testing.T, srv *Server, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/v2/api/callback/collect", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func TestCallbackPublishesEventAndAcks(t *testing.T) {
	sink := &fakeSink{}
	srv := NewServer("/v2/api/callback/collect", newMemStore(), sink, nil)

	rec := postCallback(t, srv, samplePush)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"ret":200`) {
		t.Fatalf("ack body = %s", rec.Body.String())
	}

	if len(sink.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(sink.events))
	}
	evt := sink.events[0]
	if evt.AccountID != "app-1" || evt.Wxid != "wxid_owner" || evt.TypeName != "AddMsg" {
		t.Fatalf("event envelope wrong: %#v", evt)
	}
	if evt.Message["NewMsgId"] != json.Number("8123456789") {
		t.Fatalf("message data not passed through: %#v", evt.Message)
	}
}

func TestCallbackDropsRedelivery(t *testing.T) {
	sink := &fakeSink{}
	srv := NewServer("/v2/api/callback/collect", newMemStore(), sink, nil)

	postCallback(t, srv, samplePush)
	rec := postCallback(t, srv, samplePush)
	if rec.Code != http.StatusOK {
		t.Fatalf("duplicate must still be acked, status = %d", rec.Code)
	}
	if len(sink.events) != 1 {
		t.Fatalf("duplicate was republished: %d events", len(sink.events))
	}
}

func TestCallbackDistinguishesAdjacentMessageIDs(t *testing.T) {
	// 19-digit ids differ only in their low bits, which a float64
	// cannot represent; both messages must be relayed.
	sink := &fakeSink{}
	srv := NewServer("/v2/api/callback/collect", newMemStore(), sink, nil)

	for _, id := range []string{"8454757900156789001", "8454757900156789002"} {
		body := fmt.Sprintf(`{
			"TypeName": "AddMsg",
			"Appid": "app-1",
			"Wxid": "wxid_owner",
			"Data": {"NewMsgId": %s, "MsgType": 1, "Content": {"string": "hi"}}
		}`, id)
		rec := postCallback(t, srv, body)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d for id %s", rec.Code, id)
		}
	}

	if len(sink.events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(sink.events))
	}
	if sink.events[0].Message["NewMsgId"] == sink.events[1].Message["NewMsgId"] {
		t.Fatalf("distinct message ids collapsed: %v", sink.events[0].Message["NewMsgId"])
	}
}

func TestCallbackAcksProbeWithoutPublishing(t *testing.T) {
	sink := &fakeSink{}
	srv := NewServer("/v2/api/callback/collect", newMemStore(), sink, nil)

	rec := postCallback(t, srv, `{"testMsg":"check","token":"tok-1"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if len(sink.events) != 0 {
		t.Fatalf("probe must not be published")
	}
}

func TestCallbackRejectsNonJSONBody(t *testing.T) {
	sink := &fakeSink{}
	srv := NewServer("/v2/api/callback/collect", newMemStore(), sink, nil)

	rec := postCallback(t, srv, "not json")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestDedupIDFallsBackToBodyHash(t *testing.T) {
	p := Push{Data: map[string]any{}}
	a := p.DedupID([]byte("body-a"))
	b := p.DedupID([]byte("body-b"))
	if a == "" || a == b {
		t.Fatalf("hash fallback not distinct: %q vs %q", a, b)
	}

	p = Push{Data: map[string]any{"NewMsgId": float64(42)}}
	if got := p.DedupID([]byte("ignored")); got != "42" {
		t.Fatalf("DedupID = %s, want 42", got)
	}
}

func TestDedupIDPreservesFullPrecisionIDs(t *testing.T) {
	for _, id := range []string{"8454757900156789001", "8454757900156789002"} {
		raw := []byte(`{"Data":{"NewMsgId":` + id + `}}`)
		push, err := decodePush(raw)
		if err != nil {
			t.Fatalf("decodePush: %v", err)
		}
		if got := push.DedupID(raw); got != id {
			t.Fatalf("DedupID = %s, want %s", got, id)
		}
	}
}
