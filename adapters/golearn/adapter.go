package golearn

// Package golearn converts the cleaned poster dataset into
// github.com/sjwhitworth/golearn/base DenseInstances so downstream training
// code can consume it directly.

import (
	"strconv"

	"github.com/sjwhitworth/golearn/base"

	ds "github.com/faruk-akyol/computer-vision-project/pkg/dataset"
)

// ToDenseInstances converts a Dataset into golearn DenseInstances with
// imdb_score as the float class attribute. The path, existence flag, and
// passthrough columns become categorical attributes.
func ToDenseInstances(d *ds.Dataset) (*base.DenseInstances, error) {
	cols := d.OutputColumns()
	attrs := make([]base.Attribute, len(cols))
	scoreIdx := -1
	for i, c := range cols {
		if c == ds.ColScore {
			attrs[i] = base.NewFloatAttribute(c)
			scoreIdx = i
			continue
		}
		ca := new(base.CategoricalAttribute)
		ca.SetName(c)
		attrs[i] = ca
	}

	inst := base.NewDenseInstances()
	specs := make([]base.AttributeSpec, len(attrs))
	for i, a := range attrs {
		specs[i] = inst.AddAttribute(a)
	}
	if err := inst.Extend(d.Rows()); err != nil {
		return nil, err
	}

	for r, rec := range d.Records {
		for c, name := range cols {
			switch name {
			case ds.ColScore:
				if rec.ScoreValid {
					inst.Set(specs[c], r, base.PackFloatToBytes(rec.Score))
				}
			case ds.ColImagePath:
				inst.Set(specs[c], r, base.Attribute.GetSysValFromString(attrs[c], rec.ImagePath))
			case ds.ColFileExists:
				v := rec.Extra[name]
				if rec.Checked {
					v = strconv.FormatBool(rec.FileExists)
				}
				inst.Set(specs[c], r, base.Attribute.GetSysValFromString(attrs[c], v))
			default:
				inst.Set(specs[c], r, base.Attribute.GetSysValFromString(attrs[c], rec.Extra[name]))
			}
		}
	}

	if scoreIdx >= 0 {
		if err := inst.AddClassAttribute(attrs[scoreIdx]); err != nil {
			return nil, err
		}
	}
	return inst, nil
}
