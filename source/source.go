package source

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/strata/jsonio"
	"github.com/tsawler/strata/model"
)

// Load decodes a JSON array of line records from r.
func Load(r io.Reader) ([]model.LineRecord, error) {
	var recs []model.LineRecord
	if err := jsonio.NewDecoder(r).Decode(&recs); err != nil {
		return nil, fmt.Errorf("decode line records: %w", err)
	}
	return recs, nil
}

// LoadFile decodes a JSON array of line records from a file.
func LoadFile(path string) ([]model.LineRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open line records %s: %w", path, err)
	}
	defer f.Close()

	recs, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return recs, nil
}

// Normalize prepares raw records for classification. It returns a new
// slice; the input is not modified. Text is NFC-normalized and trimmed,
// lines left empty by trimming are dropped, the result is sorted into
// reading order (page, then y0, then x0, stable), and SpaceAbove is
// recomputed as the gap between each line's top edge and the previous
// line's bottom edge on the same page, clamped at 0. The first line of
// each page gets SpaceAbove 0.
func Normalize(recs []model.LineRecord) []model.LineRecord {
	out := make([]model.LineRecord, 0, len(recs))
	for _, rec := range recs {
		rec.Text = strings.TrimSpace(norm.NFC.String(rec.Text))
		if rec.Text == "" {
			continue
		}
		out = append(out, rec)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Page != out[j].Page {
			return out[i].Page < out[j].Page
		}
		if out[i].BBox.Y0 != out[j].BBox.Y0 {
			return out[i].BBox.Y0 < out[j].BBox.Y0
		}
		return out[i].BBox.X0 < out[j].BBox.X0
	})

	for i := range out {
		if i == 0 || out[i].Page != out[i-1].Page {
			out[i].SpaceAbove = 0
			continue
		}
		gap := out[i].BBox.Y0 - out[i-1].BBox.Y1
		if gap < 0 {
			gap = 0
		}
		out[i].SpaceAbove = gap
	}

	return out
}
