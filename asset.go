package simfolio

import (
	"fmt"
	"slices"
	"sort"
)

// Asset identifies a security by its ticker.
type Asset string

// AssetInfo describes an Asset of a Universe.
type AssetInfo struct {
	Asset       Asset
	Description string
}

// Universe is the ordered, immutable set of assets a simulation works on.
type Universe struct {
	assets []AssetInfo
}

// NewUniverse returns a Universe with the given assets in that order.
// Duplicated tickers are rejected.
func NewUniverse(assets ...AssetInfo) (Universe, error) {
	seen := make(map[Asset]bool, len(assets))
	for _, a := range assets {
		if a.Asset == "" {
			return Universe{}, fmt.Errorf("empty asset ticker in universe")
		}
		if seen[a.Asset] {
			return Universe{}, fmt.Errorf("asset %q is declared twice in universe", a.Asset)
		}
		seen[a.Asset] = true
	}
	return Universe{assets: slices.Clone(assets)}, nil
}

// Assets returns the tickers of the universe, in order.
func (u Universe) Assets() []Asset {
	tickers := make([]Asset, len(u.assets))
	for i, a := range u.assets {
		tickers[i] = a.Asset
	}
	return tickers
}

// Infos returns a copy of the universe description.
func (u Universe) Infos() []AssetInfo { return slices.Clone(u.assets) }

// Len returns the number of assets.
func (u Universe) Len() int { return len(u.assets) }

// Allocation maps an Asset to its weight in the portfolio, as a fraction of 1.
//
// Weights are used as supplied: they are neither validated nor renormalized.
type Allocation map[Asset]float64

// Total returns the sum of all weights.
func (a Allocation) Total() float64 {
	var sum float64
	for _, w := range a {
		sum += w
	}
	return sum
}

// Strategy is a named Allocation.
type Strategy struct {
	Name       string
	Allocation Allocation
}

// Strategies is the set of allocation strategies a user can choose from.
type Strategies struct {
	byName map[string]Allocation
	names  []string
}

// NewStrategies returns the set of strategies, in the given order.
func NewStrategies(strategies ...Strategy) (Strategies, error) {
	s := Strategies{byName: make(map[string]Allocation, len(strategies))}
	for _, st := range strategies {
		if _, exists := s.byName[st.Name]; exists {
			return Strategies{}, fmt.Errorf("strategy %q is declared twice", st.Name)
		}
		alloc := make(Allocation, len(st.Allocation))
		for k, v := range st.Allocation {
			alloc[k] = v
		}
		s.byName[st.Name] = alloc
		s.names = append(s.names, st.Name)
	}
	return s, nil
}

// Names returns the strategy names in declaration order.
func (s Strategies) Names() []string { return slices.Clone(s.names) }

// Get returns a copy of the named allocation.
func (s Strategies) Get(name string) (Allocation, error) {
	alloc, ok := s.byName[name]
	if !ok {
		known := slices.Clone(s.names)
		sort.Strings(known)
		return nil, fmt.Errorf("unknown strategy %q, want one of %v", name, known)
	}
	out := make(Allocation, len(alloc))
	for k, v := range alloc {
		out[k] = v
	}
	return out, nil
}
