// Command lltzquery looks up the IANA timezone(s) covering one or more
// (lat,lon) pairs against an LLTZ index file.
//
// Usage:
//
//	lltzquery [-file path/to/timezones.lltz] lat,lon [lat,lon ...]
//
// Without -file, the bundled index is located via lltzfile.OpenDefault's
// usual search order.
package main

import (
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/geoidx/lltz/index"
	"github.com/geoidx/lltz/internal/hash"
	"github.com/geoidx/lltz/lltzfile"
)

func main() {
	filePath := flag.String("file", "", "path to an LLTZ index file (default: search the usual locations)")
	flag.Parse()

	if flag.NArg() == 0 {
		log.Fatal("usage: lltzquery [-file path] lat,lon [lat,lon ...]")
	}

	r, err := openIndex(*filePath)
	if err != nil {
		log.Fatalf("lltzquery: %v", err)
	}

	cache := make(map[uint64][]string, flag.NArg())

	for _, arg := range flag.Args() {
		lat, lon, err := parseCoord(arg)
		if err != nil {
			log.Fatalf("lltzquery: %v", err)
		}

		key := hash.ID(arg)

		zones, ok := cache[key]
		if !ok {
			zones, err = r.Lookup(lat, lon)
			if err != nil {
				log.Fatalf("lltzquery: %s: %v", arg, err)
			}
			cache[key] = zones
		}

		fmt.Printf("%s -> %s\n", arg, strings.Join(zones, ", "))
	}
}

func openIndex(filePath string) (*index.Reader, error) {
	if filePath == "" {
		return lltzfile.OpenDefault()
	}

	return lltzfile.OpenAuto(filePath)
}

func parseCoord(arg string) (lat, lon float64, err error) {
	parts := strings.SplitN(arg, ",", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid coordinate %q, want lat,lon", arg)
	}

	lat, err = strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid latitude in %q: %w", arg, err)
	}

	lon, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid longitude in %q: %w", arg, err)
	}

	return lat, lon, nil
}
