package control

import (
	"context"
	"fmt"

	"github.com/sourcegraph/jsonrpc2"

	"github.com/alucardeht/dirdoc/pkg/protocol"
)

type Client struct {
	conn *jsonrpc2.Conn
}

type noopHandler struct{}

func (noopHandler) Handle(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) {}

// Dial connects to a running watcher's control socket.
func Dial(ctx context.Context, socketPath string) (*Client, error) {
	netConn, err := NewSocketConnector(socketPath).Connect()
	if err != nil {
		return nil, fmt.Errorf("connect to watcher socket: %w", err)
	}

	stream := jsonrpc2.NewBufferedStream(netConn, jsonrpc2.PlainObjectCodec{})
	return &Client{conn: jsonrpc2.NewConn(ctx, stream, noopHandler{})}, nil
}

func (c *Client) Status(ctx context.Context) (*protocol.StatusResponse, error) {
	var resp protocol.StatusResponse
	if err := c.conn.Call(ctx, MethodStatus, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Regenerate(ctx context.Context) error {
	var resp protocol.RegenerateResponse
	return c.conn.Call(ctx, MethodRegenerate, nil, &resp)
}

func (c *Client) Shutdown(ctx context.Context) error {
	var resp protocol.ShutdownResponse
	return c.conn.Call(ctx, MethodShutdown, nil, &resp)
}

func (c *Client) Close() error {
	return c.conn.Close()
}
