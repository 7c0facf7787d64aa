package snapshot

import (
	"context"
	"errors"
	"fmt"

	da "github.com/lintang-b-s/greenroute/pkg/datastructure"
	"golang.org/x/sync/errgroup"
)

var ErrSnapshotFetch = errors.New("graph snapshot fetch failed")

// Provider. graph store contract. the store keeps nodes and edges consistent with each other at fetch time.
type Provider interface {
	ListNodes(ctx context.Context) ([]da.Node, error)
	ListEdges(ctx context.Context) ([]da.Edge, error)
}

// SnapshotLister. implemented by stores that load nodes and edges from one source in a single read.
// Fetch prefers it over the two concurrent listings so both halves come from the same read.
type SnapshotLister interface {
	ListSnapshot(ctx context.Context) ([]da.Node, []da.Edge, error)
}

// Fetch. one scoped acquisition: nodes and edges are listed concurrently and frozen into an immutable graph.
// failures are wrapped with ErrSnapshotFetch and never retried here.
func Fetch(ctx context.Context, p Provider) (*da.Graph, error) {
	nodes, edges, err := list(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSnapshotFetch, err)
	}

	g, err := da.NewGraph(nodes, edges)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSnapshotFetch, err)
	}
	return g, nil
}

func list(ctx context.Context, p Provider) ([]da.Node, []da.Edge, error) {
	if sl, ok := p.(SnapshotLister); ok {
		nodes, edges, err := sl.ListSnapshot(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("list snapshot: %w", err)
		}
		return nodes, edges, nil
	}

	var (
		nodes []da.Node
		edges []da.Edge
	)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		nodes, err = p.ListNodes(egCtx)
		if err != nil {
			return fmt.Errorf("list nodes: %w", err)
		}
		return nil
	})
	eg.Go(func() error {
		var err error
		edges, err = p.ListEdges(egCtx)
		if err != nil {
			return fmt.Errorf("list edges: %w", err)
		}
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, nil, err
	}
	return nodes, edges, nil
}

// StaticProvider. in-memory graph store
type StaticProvider struct {
	nodes []da.Node
	edges []da.Edge
}

func NewStaticProvider(nodes []da.Node, edges []da.Edge) *StaticProvider {
	return &StaticProvider{nodes: nodes, edges: edges}
}

func (sp *StaticProvider) ListNodes(ctx context.Context) ([]da.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	nodes := make([]da.Node, len(sp.nodes))
	copy(nodes, sp.nodes)
	return nodes, nil
}

func (sp *StaticProvider) ListEdges(ctx context.Context) ([]da.Edge, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	edges := make([]da.Edge, len(sp.edges))
	copy(edges, sp.edges)
	return edges, nil
}
