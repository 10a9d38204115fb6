// Movielinks - Actor Connection Game Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielinks

// Package main is the metadiff fleet-diff tool. It fetches /meta from one or
// two Movielinks deployments and compares the dataset totals and structural
// checksum, exiting nonzero on mismatch.
//
// Usage:
//
//	metadiff https://api.staging.example.com
//	metadiff https://api.staging.example.com https://api.prod.example.com
package main

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

// meta mirrors the /meta response fields. compare checks actors, movies,
// edges and the checksum; the playable and starting-pool counts are decoded
// but neither printed nor compared.
type meta struct {
	Ready              bool   `json:"ready"`
	Actors             int    `json:"actors"`
	PlayableActors     int    `json:"playable_actors"`
	StartingPoolActors int    `json:"starting_pool_actors"`
	Movies             int    `json:"movies"`
	Edges              int    `json:"edges"`
	Checksum           string `json:"checksum"`
}

func fetchMeta(baseURL string) (*meta, error) {
	client := &http.Client{Timeout: 15 * time.Second}
	url := strings.TrimRight(baseURL, "/") + "/meta"

	resp, err := client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	var m meta
	if err := json.NewDecoder(resp.Body).Decode(&m); err != nil {
		return nil, fmt.Errorf("decode %s: %w", url, err)
	}
	return &m, nil
}

func printMeta(tag string, m *meta) {
	fmt.Printf("\n[%s]\n", tag)
	fmt.Printf(" ready:    %v\n", m.Ready)
	fmt.Printf(" actors:   %d\n", m.Actors)
	fmt.Printf(" movies:   %d\n", m.Movies)
	fmt.Printf(" edges:    %d\n", m.Edges)
	fmt.Printf(" checksum: %s\n", m.Checksum)
}

func compare(a, b *meta) int {
	var mismatches []string
	if a.Actors != b.Actors {
		mismatches = append(mismatches, "actors")
	}
	if a.Movies != b.Movies {
		mismatches = append(mismatches, "movies")
	}
	if a.Edges != b.Edges {
		mismatches = append(mismatches, "edges")
	}
	if a.Checksum != b.Checksum {
		mismatches = append(mismatches, "checksum")
	}

	if len(mismatches) == 0 {
		fmt.Println("\nMATCH: datasets are identical.")
		return 0
	}
	fmt.Printf("\nMISMATCH in: %s\n", strings.Join(mismatches, ", "))
	return 1
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  metadiff <base-url>")
	fmt.Fprintln(os.Stderr, "  metadiff <base-url-a> <base-url-b>")
}

func main() {
	switch len(os.Args) {
	case 2:
		m, err := fetchMeta(os.Args[1])
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		printMeta("ENV", m)
		if !m.Ready {
			os.Exit(2)
		}

	case 3:
		a, err := fetchMeta(os.Args[1])
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		b, err := fetchMeta(os.Args[2])
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		printMeta("ENV A", a)
		printMeta("ENV B", b)
		os.Exit(compare(a, b))

	default:
		usage()
		os.Exit(1)
	}
}
