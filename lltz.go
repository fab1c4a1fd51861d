// Package lltz provides a high-performance, space-efficient binary spatial
// index for answering "which IANA timezone identifiers cover (lat, lon)",
// entirely offline and with no heap allocation beyond the returned result.
//
// # Core Features
//
//   - 1-degree equirectangular grid with per-cell quadtree refinement
//   - Exact integer ray-casting polygon containment, including holes
//   - Etc/GMT±N synthetic fallback for open ocean, poles, and the antimeridian
//   - Zero-allocation lookup hot path: a Reader touches no heap beyond its
//     result slice
//   - Optional distribution wrapper (package lltzfile) for shipping a
//     compressed index over the wire
//
// # Basic Usage
//
// Opening an index already held in memory (e.g. an embedded asset):
//
//	import "github.com/geoidx/lltz"
//
//	r, err := lltz.Open(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	zones, err := r.Lookup(40.7128, -74.0060)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(zones) // [America/New_York]
//
// Locating a bundled timezones.lltz file on disk instead:
//
//	import "github.com/geoidx/lltz/lltzfile"
//
//	r, err := lltzfile.OpenDefault()
//
// # Package Structure
//
// This package re-exports the index package's entry point for the common
// case. For distribution-wrapper handling and file search, use the
// lltzfile package directly.
package lltz

import "github.com/geoidx/lltz/index"

// Reader is an opened LLTZ index, safe for concurrent use by any number of
// goroutines.
type Reader = index.Reader

// Open validates an LLTZ byte range and returns a Reader ready for Lookup
// calls. data must remain unmodified for the Reader's entire lifetime.
func Open(data []byte) (*Reader, error) {
	return index.Open(data)
}
