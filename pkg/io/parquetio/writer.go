package parquetio

import (
	"encoding/json"
	"fmt"
	"strconv"

	local "github.com/xitongsys/parquet-go-source/local"
	pw "github.com/xitongsys/parquet-go/writer"

	ds "github.com/faruk-akyol/computer-vision-project/pkg/dataset"
)

func schemaJSON(cols []string) string {
	// Minimal JSON schema for the parquet-go JSONWriter.
	type field struct {
		Tag string `json:"Tag"`
	}
	type schema struct {
		Tag    string  `json:"Tag"`
		Fields []field `json:"Fields"`
	}
	sc := schema{Tag: "name=schema, repetitiontype=REQUIRED"}
	for _, c := range cols {
		tag := "name=" + c + ", repetitiontype=OPTIONAL, type="
		switch c {
		case ds.ColScore:
			tag += "DOUBLE"
		case ds.ColFileExists:
			tag += "BOOLEAN"
		default:
			tag += "BYTE_ARRAY, convertedtype=UTF8"
		}
		sc.Fields = append(sc.Fields, field{Tag: tag})
	}
	b, _ := json.Marshal(sc)
	return string(b)
}

// Write persists the cleaned dataset as a parquet file with the same
// columns the CSV writer would emit. Any failure wraps in WriteError.
func Write(path string, d *ds.Dataset) error {
	fw, err := local.NewLocalFileWriter(path)
	if err != nil {
		return &ds.WriteError{Path: path, Err: err}
	}
	cols := d.OutputColumns()
	w, err := pw.NewJSONWriter(schemaJSON(cols), fw, 4)
	if err != nil {
		_ = fw.Close()
		return &ds.WriteError{Path: path, Err: fmt.Errorf("parquet writer init: %w", err)}
	}
	for _, rec := range d.Records {
		m := make(map[string]any, len(cols))
		for _, c := range cols {
			switch c {
			case ds.ColImagePath:
				m[c] = rec.ImagePath
			case ds.ColScore:
				if rec.ScoreValid {
					m[c] = rec.Score
				}
			case ds.ColFileExists:
				if rec.Checked {
					m[c] = rec.FileExists
				} else if v, err := strconv.ParseBool(rec.Extra[c]); err == nil {
					m[c] = v
				}
			default:
				if v, ok := rec.Extra[c]; ok {
					m[c] = v
				}
			}
		}
		row, err := json.Marshal(m)
		if err != nil {
			_ = w.WriteStop()
			_ = fw.Close()
			return &ds.WriteError{Path: path, Err: fmt.Errorf("parquet write row: %w", err)}
		}
		if err := w.Write(string(row)); err != nil {
			_ = w.WriteStop()
			_ = fw.Close()
			return &ds.WriteError{Path: path, Err: fmt.Errorf("parquet write row: %w", err)}
		}
	}
	if err := w.WriteStop(); err != nil {
		_ = fw.Close()
		return &ds.WriteError{Path: path, Err: err}
	}
	if err := fw.Close(); err != nil {
		return &ds.WriteError{Path: path, Err: err}
	}
	return nil
}
