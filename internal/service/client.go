package service

import (
	"context"
	"fmt"

	pb "github.com/jmcardle/pickwheel/gen/picker"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// #region types
// PickParams are the caller-facing inputs for one Pick RPC.
type PickParams struct {
	ContextName string
	Total       int
	Weights     []float64
	Strategy    string
	Signature   string
	Items       []string
	Seed        string
	AvoidRepeat bool
}

// PickResult holds the response from a Pick RPC call.
type PickResult struct {
	Index     int
	Picked    bool
	ContextID string
}

// ContextState mirrors the server's view of a context.
type ContextState struct {
	ContextID      string
	Name           string
	Strategy       string
	Seed           string
	AvoidRepeat    bool
	PreviousIndex  int
	Signature      string
	QueueRemaining int
}

// #endregion types

// #region client-struct
// PickerClient wraps the gRPC connection to a pickerd server.
type PickerClient struct {
	conn   *grpc.ClientConn
	client pb.PickerServiceClient
}

// #endregion client-struct

// #region constructor
// NewPickerClient connects to a pickerd gRPC server.
func NewPickerClient(addr string) (*PickerClient, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("grpc dial %s: %w", addr, err)
	}
	return &PickerClient{
		conn:   conn,
		client: pb.NewPickerServiceClient(conn),
	}, nil
}

// NewPickerClientWithService creates a PickerClient with an injected service
// implementation. Used for testing without a real gRPC connection.
func NewPickerClientWithService(svc pb.PickerServiceClient) *PickerClient {
	return &PickerClient{client: svc}
}

// #endregion constructor

// #region close
// Close shuts down the gRPC connection.
func (c *PickerClient) Close() error {
	return c.conn.Close()
}

// #endregion close

// #region pick
// Pick requests the next index for a named context.
func (c *PickerClient) Pick(ctx context.Context, params PickParams) (PickResult, error) {
	resp, err := c.client.Pick(ctx, &pb.PickRequest{
		ContextName: params.ContextName,
		Total:       int32(params.Total),
		Weights:     params.Weights,
		Strategy:    params.Strategy,
		Signature:   params.Signature,
		Items:       params.Items,
		Seed:        params.Seed,
		AvoidRepeat: params.AvoidRepeat,
	})
	if err != nil {
		return PickResult{}, fmt.Errorf("pick rpc: %w", err)
	}
	return PickResult{
		Index:     int(resp.Index),
		Picked:    resp.Picked,
		ContextID: resp.ContextId,
	}, nil
}

// #endregion pick

// #region get-context
// GetContext fetches the stored state of a named context.
func (c *PickerClient) GetContext(ctx context.Context, name string) (ContextState, error) {
	resp, err := c.client.GetContext(ctx, &pb.GetContextRequest{ContextName: name})
	if err != nil {
		return ContextState{}, fmt.Errorf("get context rpc: %w", err)
	}
	return ContextState{
		ContextID:      resp.ContextId,
		Name:           resp.Name,
		Strategy:       resp.Strategy,
		Seed:           resp.Seed,
		AvoidRepeat:    resp.AvoidRepeat,
		PreviousIndex:  int(resp.PreviousIndex),
		Signature:      resp.Signature,
		QueueRemaining: int(resp.QueueRemaining),
	}, nil
}

// #endregion get-context

// #region reset-context
// ResetContext clears a named context's pick state.
func (c *PickerClient) ResetContext(ctx context.Context, name string) error {
	if _, err := c.client.ResetContext(ctx, &pb.ResetContextRequest{ContextName: name}); err != nil {
		return fmt.Errorf("reset context rpc: %w", err)
	}
	return nil
}

// #endregion reset-context
