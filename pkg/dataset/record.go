package dataset

// Canonical column names: the two columns the cleaner depends on and the
// one it adds.
const (
	ColImagePath  = "image_path"
	ColScore      = "imdb_score"
	ColFileExists = "file_exists"
)

// Record is one row of the poster dataset. The two columns the cleaning
// logic cares about are typed fields; everything else from the input rides
// along in Extra untouched.
type Record struct {
	ImagePath  string
	Score      float64
	ScoreValid bool // false when imdb_score was blank or unparsable

	FileExists bool
	Checked    bool // FileExists has been populated by the existence check

	Extra map[string]string
}

// Dataset holds every record in memory, in input order, together with the
// input column order so output matches input column-for-column.
type Dataset struct {
	Columns []string
	Records []Record

	annotated bool
}

func New(columns []string) *Dataset {
	return &Dataset{Columns: columns}
}

func (d *Dataset) Rows() int { return len(d.Records) }

func (d *Dataset) Append(r Record) { d.Records = append(d.Records, r) }

func (d *Dataset) HasColumn(name string) bool {
	for _, c := range d.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// MarkAnnotated records that the existence check ran, so serialization emits
// the file_exists column even when no rows survived the filter.
func (d *Dataset) MarkAnnotated() { d.annotated = true }

// Annotated reports whether the existence check has run over the records.
func (d *Dataset) Annotated() bool {
	return d.annotated || (len(d.Records) > 0 && d.Records[0].Checked)
}

// OutputColumns is the column order for serialization: the input columns,
// with file_exists appended when the existence check ran and the input did
// not already carry that column.
func (d *Dataset) OutputColumns() []string {
	if !d.Annotated() || d.HasColumn(ColFileExists) {
		return d.Columns
	}
	cols := make([]string, 0, len(d.Columns)+1)
	cols = append(cols, d.Columns...)
	return append(cols, ColFileExists)
}
