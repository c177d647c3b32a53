package csvio

import (
	"encoding/csv"
	"strconv"

	ds "github.com/faruk-akyol/computer-vision-project/pkg/dataset"
	iox "github.com/faruk-akyol/computer-vision-project/pkg/io/ioutils"
)

// Write serializes the dataset to path as CSV: header first, then rows in
// order, no index column. When records carry the existence annotation the
// file_exists column is written from it, appended at the end unless the
// input already had one. Any failure wraps in WriteError.
func Write(path string, d *ds.Dataset, opt Options) error {
	wc, err := iox.CreateOutput(path)
	if err != nil {
		return &ds.WriteError{Path: path, Err: err}
	}
	w := csv.NewWriter(wc)
	if opt.Delimiter != 0 {
		w.Comma = opt.Delimiter
	}

	cols := d.OutputColumns()
	if err := w.Write(cols); err != nil {
		_ = wc.Close()
		return &ds.WriteError{Path: path, Err: err}
	}

	row := make([]string, len(cols))
	for _, rec := range d.Records {
		for i, c := range cols {
			switch c {
			case ds.ColImagePath:
				row[i] = rec.ImagePath
			case ds.ColScore:
				if rec.ScoreValid {
					row[i] = strconv.FormatFloat(rec.Score, 'g', -1, 64)
				} else {
					row[i] = ""
				}
			case ds.ColFileExists:
				if rec.Checked {
					row[i] = strconv.FormatBool(rec.FileExists)
				} else {
					row[i] = rec.Extra[c]
				}
			default:
				row[i] = rec.Extra[c]
			}
		}
		if err := w.Write(row); err != nil {
			_ = wc.Close()
			return &ds.WriteError{Path: path, Err: err}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		_ = wc.Close()
		return &ds.WriteError{Path: path, Err: err}
	}
	if err := wc.Close(); err != nil {
		return &ds.WriteError{Path: path, Err: err}
	}
	return nil
}
