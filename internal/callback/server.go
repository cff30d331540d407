// Package callback receives the gateway's push callbacks and relays them
// to configured downstream sinks.
package callback

import (
	"context"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/weflow-hq/gewe-go/internal/logger"
	"github.com/weflow-hq/gewe-go/internal/storage"
	"github.com/weflow-hq/gewe-go/pkg/publishers"
)

// Sink receives relayed events; satisfied by publishers.Fanout.
type Sink interface {
	Publish(ctx context.Context, evt publishers.Event) (int, error)
}

// Server handles the gateway's callback POSTs.
type Server struct {
	echo  *echo.Echo
	store storage.Store
	sink  Sink
	log   logger.Logger
}

// NewServer builds a Server exposing POST path for callbacks plus a
// health endpoint.
func NewServer(path string, store storage.Store, sink Sink, log logger.Logger) *Server {
	if log == nil {
		log = &logger.NopLogger{}
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s := &Server{
		echo:  e,
		store: store,
		sink:  sink,
		log:   log,
	}

	e.POST(path, s.handleCallback)
	e.GET("/healthz", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	return s
}

// Handler exposes the underlying handler for tests.
func (s *Server) Handler() http.Handler { return s.echo }

// Start serves until Shutdown or a listener error.
func (s *Server) Start(addr string) error { return s.echo.Start(addr) }

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error { return s.echo.Shutdown(ctx) }

// handleCallback acknowledges every well-formed push with the gateway's
// expected {"ret":200} body. Redeliveries are acked without republishing,
// and sink failures are logged but still acked: the gateway would
// otherwise retry forever while consumers already got the event.
func (s *Server) handleCallback(c echo.Context) error {
	raw, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "read body")
	}

	push, err := decodePush(raw)
	if err != nil {
		s.log.WarnObj("callback body is not JSON", "callback_decode_error", err.Error())
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON body")
	}

	if push.IsProbe() {
		s.log.InfoObj("callback probe received", "probe", push.TestMsg)
		return c.JSON(http.StatusOK, map[string]any{"ret": 200})
	}

	id := push.DedupID(raw)
	seen, err := s.store.SeenMessage(id)
	if err != nil {
		s.log.ErrorObj("dedup lookup failed", "callback_store_error", err.Error())
	}
	if seen {
		s.log.DebugObj("duplicate callback dropped", "callback_dup", id)
		return c.JSON(http.StatusOK, map[string]any{"ret": 200})
	}

	evt := publishers.NewEvent(push.Appid, push.Wxid, push.TypeName, push.Data)
	evt.Link = pushLink(push)

	ctx := c.Request().Context()
	delivered, err := s.sink.Publish(ctx, evt)
	if err != nil {
		s.log.ErrorObj("event fanout incomplete", "callback_fanout_error", map[string]any{
			"message_id": id,
			"delivered":  delivered,
			"error":      err.Error(),
		})
	}

	if err := s.store.MarkMessage(id); err != nil {
		s.log.ErrorObj("dedup mark failed", "callback_store_error", err.Error())
	}

	return c.JSON(http.StatusOK, map[string]any{"ret": 200})
}
