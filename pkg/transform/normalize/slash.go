package normalize

import (
	"context"
	"strings"

	ds "github.com/faruk-akyol/computer-vision-project/pkg/dataset"
)

// SlashPaths rewrites every backslash in image_path to a forward slash so
// paths written on Windows resolve the same everywhere. Empty paths pass
// through.
type SlashPaths struct{}

func (t *SlashPaths) Name() string { return "slash_paths" }

func (t *SlashPaths) Apply(ctx context.Context, d *ds.Dataset) (*ds.Dataset, error) {
	for i := range d.Records {
		d.Records[i].ImagePath = strings.ReplaceAll(d.Records[i].ImagePath, "\\", "/")
	}
	return d, nil
}
