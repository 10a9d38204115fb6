// Movielinks - Actor Connection Game Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielinks

package index

// Thumbnail sizes served by the TMDb image CDN.
const (
	ProfileSize = "w185"
	PosterSize  = "w500"
)

const imageBaseURL = "https://image.tmdb.org/t/p/"

// ImageURL builds a CDN URL for a TMDb image path at the given size. Paths
// start with a slash as delivered by the catalog API. Returns "" for an empty
// path so JSON shaping can emit null.
func ImageURL(path, size string) string {
	if path == "" {
		return ""
	}
	return imageBaseURL + size + path
}
