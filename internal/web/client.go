package web

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gorilla/websocket"
	channerics "github.com/niceyeti/channerics/channels"
	"golang.org/x/sync/errgroup"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = time.Second
	// Maximum message size allowed from peer.
	maxMessageSize = 512
	pingPeriod     = 2 * time.Second
	// Peers that miss this many ping periods are dropped.
	pongWait = pingPeriod * 4
)

var upgrader = websocket.Upgrader{}

var errClientGone = errors.New("spectator disconnected")

// client pushes hub frames to a single websocket peer.
type client struct {
	ws  *websocket.Conn
	hub *Hub
}

func newClient(ws *websocket.Conn, hub *Hub) *client {
	return &client{ws: ws, hub: hub}
}

// sync runs the read, ping, and publish loops until the peer leaves or ctx
// is done. A normal disconnect returns nil.
func (c *client) sync(ctx context.Context) error {
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error { return c.readMessages() })
	group.Go(func() error { return c.ping(groupCtx) })
	group.Go(func() error { return c.publish(groupCtx) })

	err := group.Wait()
	if errors.Is(err, errClientGone) {
		return nil
	}
	return err
}

// readMessages drains the peer so pong and close frames are processed.
// Spectators are read-only; payloads are discarded.
func (c *client) readMessages() error {
	c.ws.SetReadLimit(maxMessageSize)
	_ = c.ws.SetReadDeadline(time.Now().Add(pongWait))
	c.ws.SetPongHandler(func(string) error {
		return c.ws.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := c.ws.ReadMessage(); err != nil {
			if isError(err) {
				return fmt.Errorf("read: %w", err)
			}
			return errClientGone
		}
	}
}

// ping keeps the peer's read deadline moving. Once ctx is done it expires
// the read deadline so readMessages returns.
func (c *client) ping(ctx context.Context) error {
	pinger := channerics.NewTicker(ctx.Done(), pingPeriod)
	for {
		select {
		case <-ctx.Done():
			_ = c.ws.SetReadDeadline(time.Now())
			return nil
		case <-pinger:
			if err := c.ws.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return fmt.Errorf("ping: %w", err)
			}
		}
	}
}

func (c *client) publish(ctx context.Context) error {
	frames := c.hub.Subscribe(ctx.Done())
	for f := range channerics.OrDone(ctx.Done(), frames) {
		if err := c.ws.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
			return fmt.Errorf("deadline: %w", err)
		}
		if err := c.ws.WriteJSON(f); err != nil {
			if isError(err) {
				return fmt.Errorf("publish: %w", err)
			}
			return errClientGone
		}
	}
	return nil
}

func (c *client) close() {
	_ = c.ws.WriteControl(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(writeWait))
	_ = c.ws.Close()
}

func isError(err error) bool {
	return err != nil && websocket.IsUnexpectedCloseError(
		err,
		websocket.CloseNormalClosure,
		websocket.CloseGoingAway)
}
