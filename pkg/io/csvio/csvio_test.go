package csvio

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	ds "github.com/faruk-akyol/computer-vision-project/pkg/dataset"
	"github.com/faruk-akyol/computer-vision-project/pkg/transform/annotate"
	"github.com/faruk-akyol/computer-vision-project/pkg/transform/filter"
	"github.com/faruk-akyol/computer-vision-project/pkg/transform/normalize"
)

const sample = "image_path,imdb_score,title\n" +
	`poster_images\A\B.jpg,7.5,Alpha` + "\n" +
	"poster_images/C.jpg,0,Beta\n" +
	"poster_images/D.jpg,,Gamma\n" +
	"poster_images/E.jpg,n/a,Delta\n" +
	"poster_images/F.jpg,6.1,Epsilon\n"

func writeSample(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoad(t *testing.T) {
	p := writeSample(t, "posters.csv", sample)
	d, err := Load(p, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if d.Rows() != 5 {
		t.Fatalf("expected 5 rows, got %d", d.Rows())
	}
	if len(d.Columns) != 3 || d.Columns[2] != "title" {
		t.Fatalf("unexpected columns %v", d.Columns)
	}
	if !d.Records[0].ScoreValid || d.Records[0].Score != 7.5 {
		t.Fatalf("row 0 score not parsed: %+v", d.Records[0])
	}
	// blank and unparsable scores load as null
	if d.Records[2].ScoreValid || d.Records[3].ScoreValid {
		t.Fatal("blank/unparsable score should be null")
	}
	if d.Records[0].Extra["title"] != "Alpha" {
		t.Fatalf("passthrough column lost: %+v", d.Records[0].Extra)
	}
}

func TestLoadBOMHeader(t *testing.T) {
	p := writeSample(t, "bom.csv", "\ufeffimage_path,imdb_score\na.jpg,7.5\n")
	d, err := Load(p, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if d.Columns[0] != ds.ColImagePath {
		t.Fatalf("BOM not stripped from header, got %q", d.Columns[0])
	}
	if d.Records[0].ImagePath != "a.jpg" {
		t.Fatalf("image_path column not recognized: %+v", d.Records[0])
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"), Options{})
	var le *ds.LoadError
	if !errors.As(err, &le) {
		t.Fatalf("expected LoadError, got %v", err)
	}
}

func TestLoadLatin1(t *testing.T) {
	// "Amélie" with the latin1 byte 0xE9
	raw := []byte("image_path,imdb_score\nAm\xe9lie.jpg,8.3\n")
	p := filepath.Join(t.TempDir(), "latin1.csv")
	if err := os.WriteFile(p, raw, 0o644); err != nil {
		t.Fatal(err)
	}
	d, err := Load(p, Options{Encoding: "latin1"})
	if err != nil {
		t.Fatal(err)
	}
	if d.Records[0].ImagePath != "Amélie.jpg" {
		t.Fatalf("latin1 decode failed, got %q", d.Records[0].ImagePath)
	}
}

func TestWriteRoundTrip(t *testing.T) {
	in := writeSample(t, "posters.csv", sample)
	d, err := Load(in, Options{})
	if err != nil {
		t.Fatal(err)
	}
	loaded := d.Rows()

	p := ds.NewPipeline().
		Add(&normalize.SlashPaths{}).
		Add(&filter.ValidScore{}).
		Add(&annotate.FileExists{BaseDir: "base", Stat: func(path string) bool {
			return strings.HasSuffix(filepath.ToSlash(path), "A/B.jpg")
		}})
	out, err := p.Run(context.Background(), d)
	if err != nil {
		t.Fatal(err)
	}
	if loaded != 5 || out.Rows() != 2 {
		t.Fatalf("expected 2 surviving rows, got %d", out.Rows())
	}

	dst := filepath.Join(t.TempDir(), "clean.csv")
	if err := Write(dst, out, Options{}); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	if lines[0] != "image_path,imdb_score,title,file_exists" {
		t.Fatalf("unexpected header %q", lines[0])
	}
	if lines[1] != "poster_images/A/B.jpg,7.5,Alpha,true" {
		t.Fatalf("unexpected row %q", lines[1])
	}
	if lines[2] != "poster_images/F.jpg,6.1,Epsilon,false" {
		t.Fatalf("unexpected row %q", lines[2])
	}

	// re-running the filter on its own output removes nothing and keeps
	// file_exists as a single column
	d2, err := Load(dst, Options{})
	if err != nil {
		t.Fatal(err)
	}
	out2, err := p.Run(context.Background(), d2)
	if err != nil {
		t.Fatal(err)
	}
	if out2.Rows() != 2 {
		t.Fatalf("rerun dropped rows: %d", out2.Rows())
	}
	dst2 := filepath.Join(t.TempDir(), "clean2.csv")
	if err := Write(dst2, out2, Options{}); err != nil {
		t.Fatal(err)
	}
	b2, err := os.ReadFile(dst2)
	if err != nil {
		t.Fatal(err)
	}
	if string(b2) != string(b) {
		t.Fatalf("rerun output differs:\n%s\nvs\n%s", b2, b)
	}
}

func TestWriteAllRowsFiltered(t *testing.T) {
	// every score invalid: the output is header-only but still gains the
	// file_exists column
	in := writeSample(t, "invalid.csv", "image_path,imdb_score\na.jpg,0\nb.jpg,\n")
	d, err := Load(in, Options{})
	if err != nil {
		t.Fatal(err)
	}
	p := ds.NewPipeline().
		Add(&normalize.SlashPaths{}).
		Add(&filter.ValidScore{}).
		Add(&annotate.FileExists{BaseDir: "base", Stat: func(string) bool { return true }})
	out, err := p.Run(context.Background(), d)
	if err != nil {
		t.Fatal(err)
	}
	if out.Rows() != 0 {
		t.Fatalf("expected no surviving rows, got %d", out.Rows())
	}
	dst := filepath.Join(t.TempDir(), "empty.csv")
	if err := Write(dst, out, Options{}); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(string(b)); got != "image_path,imdb_score,file_exists" {
		t.Fatalf("unexpected header %q", got)
	}
}

func TestWriteBadDestination(t *testing.T) {
	d := ds.New([]string{ds.ColImagePath, ds.ColScore})
	d.Append(ds.Record{ImagePath: "a.jpg", Score: 1, ScoreValid: true})
	err := Write(filepath.Join(t.TempDir(), "no", "such", "dir", "out.csv"), d, Options{})
	var we *ds.WriteError
	if !errors.As(err, &we) {
		t.Fatalf("expected WriteError, got %v", err)
	}
}

func BenchmarkLoad(b *testing.B) {
	p := filepath.Join(b.TempDir(), "bench.csv")
	var sb strings.Builder
	sb.WriteString("image_path,imdb_score\n")
	for i := 0; i < 10000; i++ {
		sb.WriteString("poster_images/x.jpg,7.1\n")
	}
	if err := os.WriteFile(p, []byte(sb.String()), 0o644); err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		d, err := Load(p, Options{})
		if err != nil {
			b.Fatal(err)
		}
		if d.Rows() == 0 {
			b.Fatal("no rows")
		}
	}
}
