package filter

import (
	"context"

	ds "github.com/faruk-akyol/computer-vision-project/pkg/dataset"
)

// ValidScore drops every record whose imdb_score is null or exactly zero.
// Surviving records keep their relative order.
type ValidScore struct{}

func (t *ValidScore) Name() string { return "valid_score" }

func (t *ValidScore) Apply(ctx context.Context, d *ds.Dataset) (*ds.Dataset, error) {
	kept := d.Records[:0]
	for _, r := range d.Records {
		if !r.ScoreValid || r.Score == 0 {
			continue
		}
		kept = append(kept, r)
	}
	d.Records = kept
	return d, nil
}
