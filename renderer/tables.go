package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/simfolio"
)

// tableRenderer writes markdown tables.
type tableRenderer struct {
	*strings.Builder
}

// Printf formats according to a format specifier and writes to the renderer's buffer.
func (r *tableRenderer) Printf(format string, args ...any) {
	fmt.Fprintf(r, format, args...)
}

func (r *tableRenderer) header(right bool, cols ...string) {
	r.Printf("| %s |\n|:---|", strings.Join(cols, " | "))
	align := ":---|"
	if right {
		align = "---:|"
	}
	r.Printf("%s\n", strings.Repeat(align, len(cols)-1))
}

// AssetsMarkdown describes the assets of the universe.
func AssetsMarkdown(u simfolio.Universe) string {
	r := &tableRenderer{&strings.Builder{}}
	r.Printf("# Assets\n\n")
	r.header(false, "Ticker", "Description")
	for _, info := range u.Infos() {
		r.Printf("| %s | %s |\n", info.Asset, info.Description)
	}
	return r.String()
}

// StrategiesMarkdown renders the weight of every asset in each strategy.
// A missing weight shows as "-".
func StrategiesMarkdown(u simfolio.Universe, s simfolio.Strategies) string {
	r := &tableRenderer{&strings.Builder{}}
	names := s.Names()
	r.Printf("# Strategies\n\n")
	r.header(true, append([]string{"Asset"}, names...)...)

	allocs := make([]simfolio.Allocation, len(names))
	for i, name := range names {
		allocs[i], _ = s.Get(name)
	}
	for _, asset := range u.Assets() {
		r.Printf("| %s |", asset)
		for _, alloc := range allocs {
			w, ok := alloc[asset]
			if !ok {
				r.Printf(" - |")
				continue
			}
			r.Printf(" %s |", simfolio.Fraction(w))
		}
		r.Printf("\n")
	}
	r.Printf("| **Total** |")
	for _, alloc := range allocs {
		r.Printf(" **%s** |", simfolio.Fraction(alloc.Total()))
	}
	r.Printf("\n")
	return r.String()
}

// RunsMarkdown lists runs, in the given order.
func RunsMarkdown(runs []*simfolio.Run, cur string) string {
	r := &tableRenderer{&strings.Builder{}}
	r.Printf("# Simulations\n\n")
	if len(runs) == 0 {
		r.Printf("No simulation yet.\n")
		return r.String()
	}
	r.header(false, "Run", "Strategy", "Range", "Final Value")
	for _, run := range runs {
		p := run.Params
		r.Printf("| [%s](/runs/%s) | %s | %s..%s | %s |\n", run.Label(), run.ID, p.Strategy, p.From, p.To, simfolio.M(run.Terminal, cur))
	}
	return r.String()
}
