package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	ds "github.com/faruk-akyol/computer-vision-project/pkg/dataset"
	csvio "github.com/faruk-akyol/computer-vision-project/pkg/io/csvio"
	jsonlio "github.com/faruk-akyol/computer-vision-project/pkg/io/jsonlio"
	parquetio "github.com/faruk-akyol/computer-vision-project/pkg/io/parquetio"
	"github.com/faruk-akyol/computer-vision-project/pkg/report"
	"github.com/faruk-akyol/computer-vision-project/pkg/transform/annotate"
	"github.com/faruk-akyol/computer-vision-project/pkg/transform/filter"
	"github.com/faruk-akyol/computer-vision-project/pkg/transform/normalize"
)

var (
	version = "0.1.0-dev"
)

func main() {
	showVersion := flag.Bool("version", false, "Print version and exit")
	configPath := flag.String("config", "", "Path to run config (JSON, TOML, or YAML)")
	input := flag.String("input", "", "Input CSV path (\"-\" reads stdin)")
	output := flag.String("output", "", "Output path (\"-\" writes stdout)")
	format := flag.String("format", "", "Output format: csv or parquet (default csv)")
	baseDir := flag.String("base-dir", "", "Directory image_path values are resolved against (default: the input file's directory)")
	encoding := flag.String("encoding", "", "Input encoding: utf-8 or latin1")
	missingOut := flag.String("missing-out", "", "Optional JSONL log of rows whose image file is absent")
	summary := flag.Bool("summary", false, "Print a summary table to stderr")
	flag.Parse()

	if *showVersion {
		fmt.Println("posterclean", version)
		return
	}

	var cfg Config
	if *configPath != "" {
		c, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		cfg = c
	}
	if *input != "" {
		cfg.Input.Path = *input
	}
	if *encoding != "" {
		cfg.Input.Encoding = *encoding
	}
	if *output != "" {
		cfg.Output.Path = *output
	}
	if *format != "" {
		cfg.Output.Format = *format
	}
	if *baseDir != "" {
		cfg.Check.BaseDir = *baseDir
	}
	if *missingOut != "" {
		cfg.Report.MissingPath = *missingOut
	}
	if *summary {
		cfg.Report.Summary = true
	}

	if cfg.Input.Path == "" || cfg.Output.Path == "" {
		fmt.Fprintln(os.Stderr, "input and output are required; try -input <csv> -output <csv> or -config <file>")
		os.Exit(2)
	}
	switch cfg.Output.Format {
	case "", "csv", "parquet":
	default:
		fmt.Fprintf(os.Stderr, "unsupported output format %q\n", cfg.Output.Format)
		os.Exit(2)
	}
	if cfg.Check.BaseDir == "" && cfg.Input.Path != "-" {
		cfg.Check.BaseDir = filepath.Dir(cfg.Input.Path)
	}

	if err := run(context.Background(), cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg Config) error {
	opt := csvio.Options{Encoding: cfg.Input.Encoding, Delimiter: delimiterRune(cfg.Input.Delimiter)}
	d, err := csvio.Load(cfg.Input.Path, opt)
	if err != nil {
		return err
	}
	loaded := d.Rows()

	p := ds.NewPipeline().
		Add(&normalize.SlashPaths{}).
		Add(&filter.ValidScore{}).
		Add(&annotate.FileExists{BaseDir: cfg.Check.BaseDir})
	out, err := p.Run(ctx, d)
	if err != nil {
		return err
	}

	sum := report.Collect(out, loaded)
	fmt.Println(sum.Line())
	if cfg.Report.Summary {
		fmt.Fprintln(os.Stderr, sum.Table())
	}

	if cfg.Report.MissingPath != "" {
		if err := jsonlio.WriteMissing(cfg.Report.MissingPath, out, cfg.Check.BaseDir); err != nil {
			return err
		}
	}

	if cfg.Output.Format == "parquet" {
		return parquetio.Write(cfg.Output.Path, out)
	}
	wopt := csvio.Options{Delimiter: delimiterRune(cfg.Output.Delimiter)}
	return csvio.Write(cfg.Output.Path, out, wopt)
}
