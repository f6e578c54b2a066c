package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/cfscrape"
)

// Ensure Extractor implements cfscrape.Extractor at compile time.
var _ cfscrape.Extractor = (*Extractor)(nil)

// Extractor extracts problem fields from a page snapshot using a fixed
// marker table.
type Extractor struct {
	markers Markers
}

// NewExtractor creates an Extractor using the default Codeforces markers.
func NewExtractor() *Extractor {
	return &Extractor{markers: DefaultMarkers()}
}

// NewExtractorWithMarkers creates an Extractor with a custom marker set.
func NewExtractorWithMarkers(m Markers) *Extractor {
	return &Extractor{markers: m}
}

// Extract parses html and pulls out the problem fields.
//
// The statement region must be present; its absence is an ENOTFOUND error
// even when the live page reported it during the render wait, because the
// two lookups are independent. Every field inside the region is optional
// and contributes nothing when its marker is missing.
func (e *Extractor) Extract(html string) (*cfscrape.Problem, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, cfscrape.Errorf(cfscrape.EINVALID, "failed to parse HTML: %v", err)
	}

	region := doc.Find(e.markers.Statement).First()
	if region.Length() == 0 {
		return nil, cfscrape.Errorf(cfscrape.ENOTFOUND, "could not find problem statement")
	}

	problem := &cfscrape.Problem{
		Samples: []cfscrape.Sample{},
		Tags:    []string{},
	}

	if title := region.Find(e.markers.Title).First(); title.Length() > 0 {
		problem.Title = strings.TrimSpace(title.Text())
	}

	// More than one element can carry the time-limit marker; only the
	// first is kept.
	if tl := region.Find(e.markers.TimeLimit).First(); tl.Length() > 0 {
		problem.TimeLimit = strings.TrimSpace(tl.Text())
	}

	if ml := region.Find(e.markers.MemoryLimit).First(); ml.Length() > 0 {
		problem.MemoryLimit = strings.TrimSpace(ml.Text())
	}

	problem.Statement = e.ExtractStatement(region)

	// Sample blocks missing either the input or the output structure are
	// skipped silently; the rest are kept in document order.
	region.Find(e.markers.SampleTest).Each(func(_ int, test *goquery.Selection) {
		input := test.Find(e.markers.SampleIn).First().Find(e.markers.SamplePre).First()
		output := test.Find(e.markers.SampleOut).First().Find(e.markers.SamplePre).First()
		if input.Length() == 0 || output.Length() == 0 {
			return
		}
		problem.Samples = append(problem.Samples, cfscrape.Sample{
			Input:  strings.TrimSpace(input.Text()),
			Output: strings.TrimSpace(output.Text()),
		})
	})

	// Tags live outside the statement region; scan the whole document.
	doc.Find(e.markers.TagBox).Each(func(_ int, box *goquery.Selection) {
		if tag := box.Find(e.markers.Tag).First(); tag.Length() > 0 {
			problem.Tags = append(problem.Tags, strings.TrimSpace(tag.Text()))
		}
	})

	return problem, nil
}

// ExtractStatement builds the plain-text statement body from the
// statement region.
//
// Two separate scans run over the region: first every mathematical-markup
// span contributes its trimmed text wrapped in a "$$ ... $$" delimiter
// pair, then every paragraph-like container that does not itself contain
// a math span contributes its trimmed text. Fragments that are empty
// after trimming are dropped and the rest are joined with newlines.
//
// Because the scans are separate, the output follows scan order, not
// document order: all math fragments precede all prose fragments even
// when they interleave on the page. Downstream consumers diff these
// artifacts, so the ordering is kept as-is rather than corrected to an
// interleaved walk.
func (e *Extractor) ExtractStatement(region *goquery.Selection) string {
	var fragments []string

	region.Find(e.markers.Math).Each(func(_ int, math *goquery.Selection) {
		fragments = append(fragments, "$$ "+strings.TrimSpace(math.Text())+" $$")
	})

	region.Find(e.markers.Prose).Each(func(_ int, block *goquery.Selection) {
		if block.Find(e.markers.Math).Length() > 0 {
			return
		}
		fragments = append(fragments, strings.TrimSpace(block.Text()))
	})

	kept := fragments[:0]
	for _, f := range fragments {
		if f != "" {
			kept = append(kept, f)
		}
	}
	return strings.Join(kept, "\n")
}
