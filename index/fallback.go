package index

import (
	"math"
	"strconv"
)

// polarFallback is the fixed 25-entry list spec.md §4.6 rule 1 returns for
// lat == 90 exactly. It is computed once at package init rather than per
// call, per the "precompute and intern these 25 strings once" guidance in
// spec.md §9.
var polarFallback = buildPolarFallback()

func buildPolarFallback() []string {
	out := make([]string, 0, 25)
	out = append(out, "Etc/GMT")
	for n := 1; n <= 12; n++ {
		out = append(out, "Etc/GMT+"+strconv.Itoa(n))
	}
	for n := 1; n <= 12; n++ {
		out = append(out, "Etc/GMT-"+strconv.Itoa(n))
	}

	return out
}

// antimeridianFallback is spec.md §4.6 rule 2's fixed 2-entry list.
var antimeridianFallback = []string{"Etc/GMT+12", "Etc/GMT-12"}

// fallback implements the resolver in spec.md §4.6, invoked whenever no
// polygon covers (lat, lon). lat and lon are the original degree values,
// not the quantized integer coordinates, since the rules are expressed in
// terms of exact degree equality and 15-degree longitude bands.
func fallback(lat, lon float64) []string {
	if lat == 90 {
		return polarFallback
	}

	if lon == -180 || lon == 180 {
		return antimeridianFallback
	}

	nMin := int(math.Ceil(lon/15 - 0.5))
	nMax := int(math.Floor(lon/15 + 0.5))

	out := make([]string, 0, 2)
	for n := nMin; n <= nMax; n++ {
		out = append(out, gmtName(n))
	}

	return out
}

// gmtName formats a single Etc/GMT±N identifier, where the sign is
// inverted relative to common UTC-offset notation: a positive n (east of
// Greenwich) produces "Etc/GMT-n", per spec.md §4.6's note on POSIX-style
// signs.
func gmtName(n int) string {
	switch {
	case n == 0:
		return "Etc/GMT"
	case n > 0:
		return "Etc/GMT-" + strconv.Itoa(n)
	default:
		return "Etc/GMT+" + strconv.Itoa(-n)
	}
}
