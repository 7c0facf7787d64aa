package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	da "github.com/lintang-b-s/greenroute/pkg/datastructure"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type graphFile struct {
	Nodes []da.Node `json:"nodes" yaml:"nodes"`
	Edges []da.Edge `json:"edges" yaml:"edges"`
}

// FileProvider. graph store backed by a json or yaml export of the campus_nodes and campus_edges tables.
// the file is re-read on every fetch, so edits show up on the next planning call.
type FileProvider struct {
	path string
	log  *zap.Logger
}

var _ SnapshotLister = (*FileProvider)(nil)

func NewFileProvider(path string, log *zap.Logger) *FileProvider {
	return &FileProvider{path: path, log: log}
}

func (fp *FileProvider) ListNodes(ctx context.Context) ([]da.Node, error) {
	gf, err := fp.read(ctx)
	if err != nil {
		return nil, err
	}
	return gf.Nodes, nil
}

func (fp *FileProvider) ListEdges(ctx context.Context) ([]da.Edge, error) {
	gf, err := fp.read(ctx)
	if err != nil {
		return nil, err
	}
	return gf.Edges, nil
}

// ListSnapshot. nodes and edges from a single read and parse of the file.
func (fp *FileProvider) ListSnapshot(ctx context.Context) ([]da.Node, []da.Edge, error) {
	gf, err := fp.read(ctx)
	if err != nil {
		return nil, nil, err
	}
	return gf.Nodes, gf.Edges, nil
}

func (fp *FileProvider) read(ctx context.Context) (*graphFile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(fp.path)
	if err != nil {
		return nil, fmt.Errorf("read graph file %s: %w", fp.path, err)
	}

	var gf graphFile
	switch strings.ToLower(filepath.Ext(fp.path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &gf)
	case ".json":
		err = json.Unmarshal(data, &gf)
	default:
		return nil, fmt.Errorf("unsupported graph file extension %q", filepath.Ext(fp.path))
	}
	if err != nil {
		return nil, fmt.Errorf("parse graph file %s: %w", fp.path, err)
	}

	fp.log.Debug("read graph file", zap.String("path", fp.path),
		zap.Int("nodes", len(gf.Nodes)), zap.Int("edges", len(gf.Edges)))
	return &gf, nil
}
