package dye

import (
	"fmt"
	"sort"

	"dyematch/internal/colour"
)

// Options constrain a nearest match search. The zero value applies no
// constraints.
type Options struct {
	// MaxResults caps the number of returned matches; 0 means unlimited.
	MaxResults int

	// MaxDistance drops candidates whose distance exceeds the ceiling;
	// 0 disables the ceiling.
	MaxDistance float64

	// ExcludeIDs removes already selected dyes from consideration.
	ExcludeIDs []int

	// HueWindow restricts candidates to within ±HueWindow degrees of
	// the window centre; 0 disables the window.
	HueWindow float64

	// HueCentre overrides the hue window centre. Nil centres the window
	// on the target's own hue.
	HueCentre *float64

	// Weights apply to the oklch-weighted method only; nil uses the
	// defaults.
	Weights *colour.Weights
}

// Match is one ranked search result. Matches are created per call and
// never mutated afterwards.
type Match struct {
	Dye         Dye         `json:"dye"`
	Distance    float64     `json:"distance"`
	HueDeviance float64     `json:"hue_deviance"`
	Band        colour.Band `json:"band"`
}

// FindMatches ranks catalog dyes by perceptual distance from the
// target colour. Results are ordered ascending by distance, with ties
// broken by hue deviance and then dye ID, so equal inputs always
// produce identical output. An empty catalog or a fully filtered
// result set returns an empty slice, not an error.
func FindMatches(target colour.Colour, dyes []Dye, method colour.Method, opts Options) ([]Match, error) {
	if opts.MaxResults < 0 {
		return nil, fmt.Errorf("%w: max results %d", colour.ErrInvalidRange, opts.MaxResults)
	}
	if opts.MaxDistance < 0 {
		return nil, fmt.Errorf("%w: max distance %v", colour.ErrInvalidRange, opts.MaxDistance)
	}
	if opts.HueWindow < 0 {
		return nil, fmt.Errorf("%w: hue window %v", colour.ErrInvalidRange, opts.HueWindow)
	}

	// Validate the method up front so an empty catalog still rejects a
	// bad method instead of silently returning nothing.
	if _, err := colour.Distance(target, target, method); err != nil {
		return nil, err
	}

	targetHue := target.ToHSV().H
	windowCentre := targetHue
	if opts.HueCentre != nil {
		windowCentre = *opts.HueCentre
	}

	excluded := make(map[int]struct{}, len(opts.ExcludeIDs))
	for _, id := range opts.ExcludeIDs {
		excluded[id] = struct{}{}
	}

	matches := make([]Match, 0, len(dyes))
	for _, d := range dyes {
		if _, skip := excluded[d.ID]; skip {
			continue
		}

		c, err := colour.ParseHex(d.Hex)
		if err != nil {
			return nil, fmt.Errorf("catalog dye %d: %w", d.ID, err)
		}

		hue := c.ToHSV().H
		if opts.HueWindow > 0 && colour.HueDeviance(hue, windowCentre) > opts.HueWindow {
			continue
		}

		dist, err := metric(target, c, method, opts.Weights)
		if err != nil {
			return nil, err
		}
		if opts.MaxDistance > 0 && dist > opts.MaxDistance {
			continue
		}

		band, err := colour.Classify(dist, method)
		if err != nil {
			return nil, err
		}

		matches = append(matches, Match{
			Dye:         d,
			Distance:    dist,
			HueDeviance: colour.HueDeviance(targetHue, hue),
			Band:        band,
		})
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Distance != matches[j].Distance {
			return matches[i].Distance < matches[j].Distance
		}
		if matches[i].HueDeviance != matches[j].HueDeviance {
			return matches[i].HueDeviance < matches[j].HueDeviance
		}
		return matches[i].Dye.ID < matches[j].Dye.ID
	})

	if opts.MaxResults > 0 && len(matches) > opts.MaxResults {
		matches = matches[:opts.MaxResults]
	}
	return matches, nil
}

// metric dispatches to the weighted OKLCH distance when custom weights
// are supplied, and to the standard distance otherwise.
func metric(a, b colour.Colour, method colour.Method, w *colour.Weights) (float64, error) {
	if method == colour.MethodOKLCHWeighted && w != nil {
		return colour.DistanceOKLCH(a, b, *w), nil
	}
	return colour.Distance(a, b, method)
}
