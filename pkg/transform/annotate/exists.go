package annotate

import (
	"context"
	"os"
	"path/filepath"

	ds "github.com/faruk-akyol/computer-vision-project/pkg/dataset"
)

// FileExists probes the filesystem for each record's image and stores the
// result on the record. A missing file is data, not an error. One probe per
// record, sequential.
type FileExists struct {
	// BaseDir is the directory image_path values are resolved against.
	BaseDir string
	// Stat reports whether a filesystem entry exists at path. Nil means the
	// real filesystem; tests inject their own.
	Stat func(path string) bool
}

func (t *FileExists) Name() string { return "file_exists" }

func (t *FileExists) Apply(ctx context.Context, d *ds.Dataset) (*ds.Dataset, error) {
	stat := t.Stat
	if stat == nil {
		stat = func(p string) bool {
			_, err := os.Stat(p)
			return err == nil
		}
	}
	d.MarkAnnotated()
	for i := range d.Records {
		p := filepath.Join(t.BaseDir, filepath.FromSlash(d.Records[i].ImagePath))
		d.Records[i].FileExists = stat(p)
		d.Records[i].Checked = true
	}
	return d, nil
}
