package jsonlio

import (
	"encoding/json"
	"io"
	"path/filepath"

	ds "github.com/faruk-akyol/computer-vision-project/pkg/dataset"
	iox "github.com/faruk-akyol/computer-vision-project/pkg/io/ioutils"
)

// MissingRecord describes one surviving row whose image file was absent at
// check time.
type MissingRecord struct {
	ImagePath    string  `json:"image_path"`
	Score        float64 `json:"imdb_score"`
	ResolvedPath string  `json:"resolved_path"`
}

// Writer emits one JSON object per line.
type Writer struct {
	wc  io.WriteCloser
	enc *json.Encoder
}

func Create(path string) (*Writer, error) {
	wc, err := iox.CreateOutput(path)
	if err != nil {
		return nil, &ds.WriteError{Path: path, Err: err}
	}
	return &Writer{wc: wc, enc: json.NewEncoder(wc)}, nil
}

func (w *Writer) Write(rec MissingRecord) error { return w.enc.Encode(rec) }

func (w *Writer) Close() error { return w.wc.Close() }

// WriteMissing logs every checked record in d whose file was absent,
// resolving paths against baseDir the same way the existence check did.
func WriteMissing(path string, d *ds.Dataset, baseDir string) error {
	w, err := Create(path)
	if err != nil {
		return err
	}
	for _, rec := range d.Records {
		if !rec.Checked || rec.FileExists {
			continue
		}
		mr := MissingRecord{
			ImagePath:    rec.ImagePath,
			Score:        rec.Score,
			ResolvedPath: filepath.Join(baseDir, filepath.FromSlash(rec.ImagePath)),
		}
		if err := w.Write(mr); err != nil {
			_ = w.Close()
			return &ds.WriteError{Path: path, Err: err}
		}
	}
	if err := w.Close(); err != nil {
		return &ds.WriteError{Path: path, Err: err}
	}
	return nil
}
