// Movielinks - Actor Connection Game Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielinks

package graph

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"

	"github.com/goccy/go-json"
)

// fingerprint is the canonical structure hashed by Checksum. Fleet-diff
// tooling compares the resulting digest across deployments, so the encoding
// must stay byte-stable: sorted node and edge strings, compact JSON.
type fingerprint struct {
	Nodes []string `json:"nodes"`
	Edges []string `json:"edges"`
}

// Checksum returns the hex SHA-256 digest of the graph's structure. Nodes are
// encoded as "id|type" and sorted; edges as "u->v" with u <= v and sorted.
// Movie metadata does not participate, so enrichment-only rebuilds keep the
// same digest.
func (g *Graph) Checksum() (string, error) {
	fp := fingerprint{
		Nodes: make([]string, 0, len(g.nodes)),
		Edges: make([]string, 0, g.edgeCount),
	}

	for id, n := range g.nodes {
		fp.Nodes = append(fp.Nodes, id+"|"+n.Type)
	}
	sort.Strings(fp.Nodes)

	seen := make(map[string]struct{}, g.edgeCount)
	for _, u := range g.order {
		for _, v := range g.neighbors[u] {
			a, b := u, v
			if a > b {
				a, b = b, a
			}
			key := a + "->" + b
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			fp.Edges = append(fp.Edges, key)
		}
	}
	sort.Strings(fp.Edges)

	blob, err := json.Marshal(fp)
	if err != nil {
		return "", fmt.Errorf("encode graph fingerprint: %w", err)
	}
	sum := sha256.Sum256(blob)
	return hex.EncodeToString(sum[:]), nil
}
