// Package service exposes the selection engine over gRPC. The server owns
// the per-context serialization the engine itself does not provide: one
// mutex guards every pick, so two calls can never mutate the same shuffle
// state concurrently.
package service

//go:generate protoc --go_out=../../gen/picker --go_opt=paths=source_relative --go-grpc_out=../../gen/picker --go-grpc_opt=paths=source_relative -I ../../proto picker.proto

import (
	"context"
	"fmt"
	"sync"

	pb "github.com/jmcardle/pickwheel/gen/picker"
	"github.com/jmcardle/pickwheel/internal/engine"
	"github.com/jmcardle/pickwheel/internal/logging"
	"github.com/jmcardle/pickwheel/internal/rng"
	"github.com/jmcardle/pickwheel/internal/signature"
	"github.com/jmcardle/pickwheel/internal/state"
)

// #region server-struct

// PickerServer implements pb.PickerServiceServer on top of a context store.
// Seeded streams live in memory per context; the shuffle bag and previous
// index persist in the store, so a restart resumes mid-cycle with a fresh
// stream position.
type PickerServer struct {
	pb.UnimplementedPickerServiceServer

	store *state.Store

	mu      sync.Mutex
	sources map[string]rng.Source // context_id → stream
}

// NewPickerServer creates a server backed by the given store.
func NewPickerServer(store *state.Store) *PickerServer {
	return &PickerServer{
		store:   store,
		sources: make(map[string]rng.Source),
	}
}

// #endregion server-struct

// #region pick

// Pick selects the next index for a named context, creating the context on
// first use. Picked=false is the valid empty-pool outcome, not an error.
func (s *PickerServer) Pick(_ context.Context, req *pb.PickRequest) (*pb.PickResponse, error) {
	if req.ContextName == "" {
		return nil, fmt.Errorf("context_name is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, err := s.getOrCreateContext(req)
	if err != nil {
		return nil, err
	}

	strat := ctx.Strategy
	if req.Strategy != "" {
		strat, err = engine.ParseStrategy(req.Strategy)
		if err != nil {
			return nil, err
		}
	}

	sig := req.Signature
	if sig == "" {
		if len(req.Items) > 0 {
			sig = signature.OfItems(req.Items)
		} else {
			sig = signature.OfTotal(int(req.Total))
		}
	}

	prev := ctx.Previous
	idx, ok := engine.PickNext(engine.Request{
		Total:       int(req.Total),
		Weights:     req.Weights,
		Strategy:    strat,
		Previous:    prev,
		AvoidRepeat: ctx.AvoidRepeat,
		Signature:   sig,
		Rand:        s.sourceFor(ctx),
	}, &ctx.Shuffle)

	if ok {
		ctx.Previous = idx
	} else {
		ctx.Previous = engine.PrevNone
		idx = engine.NoIndex
	}
	if err := s.store.SaveContext(ctx); err != nil {
		return nil, fmt.Errorf("persist context: %w", err)
	}

	if ok {
		entry := logging.PickEntry{
			ContextID:     ctx.ContextID,
			Index:         idx,
			Total:         int(req.Total),
			Strategy:      string(strat),
			Signature:     sig,
			Weights:       req.Weights,
			EligibleCount: engine.EligibleCount(int(req.Total), prev, ctx.AvoidRepeat),
			Reason:        "pick",
		}
		if err := logging.LogPick(s.store.DB(), entry); err != nil {
			return nil, fmt.Errorf("log pick: %w", err)
		}
	}

	return &pb.PickResponse{
		Index:     int32(idx),
		Picked:    ok,
		ContextId: ctx.ContextID,
	}, nil
}

// getOrCreateContext loads the named context or creates it from the
// request's seed/strategy/avoidance on first use.
func (s *PickerServer) getOrCreateContext(req *pb.PickRequest) (state.Context, error) {
	ctx, err := s.store.GetContextByName(req.ContextName)
	if err == nil {
		return ctx, nil
	}

	strat, perr := engine.ParseStrategy(req.Strategy)
	if perr != nil {
		return state.Context{}, perr
	}
	ctx, err = s.store.CreateContext(req.ContextName, strat, req.Seed, req.AvoidRepeat)
	if err != nil {
		return state.Context{}, fmt.Errorf("create context: %w", err)
	}
	return ctx, nil
}

// sourceFor returns the context's in-memory stream, building it from the
// stored seed on first use.
func (s *PickerServer) sourceFor(ctx state.Context) rng.Source {
	if src, ok := s.sources[ctx.ContextID]; ok {
		return src
	}
	var src rng.Source
	if ctx.Seed != "" {
		src = rng.NewFromString(ctx.Seed).Source()
	} else {
		src = rng.TimeSource()
	}
	s.sources[ctx.ContextID] = src
	return src
}

// #endregion pick

// #region get-context

// GetContext reports a context's stored configuration and pick state.
func (s *PickerServer) GetContext(_ context.Context, req *pb.GetContextRequest) (*pb.ContextInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, err := s.store.GetContextByName(req.ContextName)
	if err != nil {
		return nil, err
	}
	return &pb.ContextInfo{
		ContextId:      ctx.ContextID,
		Name:           ctx.Name,
		Strategy:       string(ctx.Strategy),
		Seed:           ctx.Seed,
		AvoidRepeat:    ctx.AvoidRepeat,
		PreviousIndex:  int32(ctx.Previous),
		Signature:      ctx.Shuffle.Signature,
		QueueRemaining: int32(len(ctx.Shuffle.Queue)),
	}, nil
}

// #endregion get-context

// #region reset-context

// ResetContext clears a context's previous index and shuffle bag, and
// restarts its stream from the stored seed.
func (s *PickerServer) ResetContext(_ context.Context, req *pb.ResetContextRequest) (*pb.ResetContextResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, err := s.store.GetContextByName(req.ContextName)
	if err != nil {
		return nil, err
	}
	if err := s.store.ResetContext(ctx.ContextID); err != nil {
		return nil, err
	}
	delete(s.sources, ctx.ContextID)
	return &pb.ResetContextResponse{Reset_: true}, nil
}

// #endregion reset-context
