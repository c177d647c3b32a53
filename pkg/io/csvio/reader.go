package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/charmap"

	ds "github.com/faruk-akyol/computer-vision-project/pkg/dataset"
	iox "github.com/faruk-akyol/computer-vision-project/pkg/io/ioutils"
)

// Options control CSV parsing and serialization.
type Options struct {
	Delimiter rune   // 0 means ','
	Encoding  string // "", "utf-8", or "latin1"/"iso-8859-1" (input only)
}

// Load reads the whole CSV at path into a Dataset. The first row is the
// header. Score cells that are blank or unparsable load as null; a
// file_exists input column is plain passthrough. Any failure wraps in
// LoadError.
func Load(path string, opt Options) (*ds.Dataset, error) {
	rc, err := iox.OpenInput(path)
	if err != nil {
		return nil, &ds.LoadError{Path: path, Err: err}
	}
	defer func() { _ = rc.Close() }()

	var r io.Reader = rc
	switch strings.ToLower(opt.Encoding) {
	case "", "utf-8", "utf8":
	case "latin1", "iso-8859-1":
		r = charmap.ISO8859_1.NewDecoder().Reader(r)
	default:
		return nil, &ds.LoadError{Path: path, Err: fmt.Errorf("unsupported encoding %q", opt.Encoding)}
	}

	cr := csv.NewReader(r)
	if opt.Delimiter != 0 {
		cr.Comma = opt.Delimiter
	}
	cr.FieldsPerRecord = -1

	hdr, err := cr.Read()
	if err != nil {
		return nil, &ds.LoadError{Path: path, Err: err}
	}
	cols := make([]string, len(hdr))
	for i := range hdr {
		cols[i] = strings.ToValidUTF8(strings.TrimSpace(hdr[i]), "?")
	}
	// strip BOM on first header cell if present
	if len(cols) > 0 {
		cols[0] = strings.TrimPrefix(cols[0], "\ufeff")
	}

	pathIdx, scoreIdx := -1, -1
	for i, c := range cols {
		switch c {
		case ds.ColImagePath:
			pathIdx = i
		case ds.ColScore:
			scoreIdx = i
		}
	}

	out := ds.New(cols)
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &ds.LoadError{Path: path, Err: err}
		}
		row := ds.Record{Extra: make(map[string]string)}
		for i, c := range cols {
			if i >= len(rec) {
				continue
			}
			val := strings.ToValidUTF8(strings.TrimSpace(rec[i]), "?")
			switch i {
			case pathIdx:
				row.ImagePath = val
			case scoreIdx:
				if val == "" {
					continue
				}
				if x, err := strconv.ParseFloat(val, 64); err == nil {
					row.Score = x
					row.ScoreValid = true
				}
			default:
				row.Extra[c] = val
			}
		}
		out.Append(row)
	}
	return out, nil
}
