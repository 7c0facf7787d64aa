package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	da "github.com/lintang-b-s/greenroute/pkg/datastructure"
	"go.uber.org/zap"
)

const (
	nodesTable = "campus_nodes"
	edgesTable = "campus_edges"
)

// RestProvider. graph store behind a PostgREST style api: GET {baseURL}/rest/v1/{table}?select=*
type RestProvider struct {
	baseURL string
	apiKey  string
	client  *http.Client
	log     *zap.Logger
}

func NewRestProvider(baseURL, apiKey string, timeout time.Duration, log *zap.Logger) *RestProvider {
	return &RestProvider{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
		log:     log,
	}
}

func (rp *RestProvider) ListNodes(ctx context.Context) ([]da.Node, error) {
	var nodes []da.Node
	if err := rp.selectAll(ctx, nodesTable, &nodes); err != nil {
		return nil, err
	}
	return nodes, nil
}

func (rp *RestProvider) ListEdges(ctx context.Context) ([]da.Edge, error) {
	var edges []da.Edge
	if err := rp.selectAll(ctx, edgesTable, &edges); err != nil {
		return nil, err
	}
	return edges, nil
}

func (rp *RestProvider) selectAll(ctx context.Context, table string, dst any) error {
	url := fmt.Sprintf("%s/rest/v1/%s?select=*", rp.baseURL, table)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if rp.apiKey != "" {
		req.Header.Set("apikey", rp.apiKey)
		req.Header.Set("Authorization", "Bearer "+rp.apiKey)
	}

	before := time.Now()
	resp, err := rp.client.Do(req)
	if err != nil {
		return fmt.Errorf("select %s: %w", table, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("select %s: unexpected status %d: %s", table, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("decode %s: %w", table, err)
	}

	rp.log.Debug("fetched graph table", zap.String("table", table), zap.Duration("latency", time.Since(before)))
	return nil
}
