// Command quire reconstructs the reading order of scanned or
// born-digital document pages and exports the result as plain text,
// CSV, JSON, XLSX or hOCR.
//
// Image inputs (PNG, JPEG, TIFF) go through OCR and require a binary
// built with the "ocr" tag; PDF inputs use the embedded text layer.
// Passing a directory processes every supported file in it.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/quirelab/quire"
	"github.com/quirelab/quire/export"
	"github.com/quirelab/quire/geom"
	"github.com/quirelab/quire/ocr"
	"github.com/quirelab/quire/pdftext"
	"github.com/quirelab/quire/text"
)

var formats = []string{"txt", "csv", "json", "xlsx", "hocr"}

// tesseractLang maps the engine's language codes to Tesseract's.
var tesseractLang = map[string]string{
	text.LangAuto: "eng",
	"de":          "deu",
	"en":          "eng",
	"fr":          "fra",
	"la":          "lat",
}

func main() {
	cmd := &cli.Command{
		Name:  "quire",
		Usage: "Reconstruct reading order and tables from document pages",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "input",
				Aliases:  []string{"i"},
				Usage:    "Input image, PDF, or directory of them",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output file, or directory for batch input (default: stdout)",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format: " + strings.Join(formats, ", "),
				Value:   "txt",
			},
			&cli.StringFlag{
				Name:    "lang",
				Aliases: []string{"l"},
				Usage:   "Recognition language: auto, de, en, fr, la",
				Value:   text.LangAuto,
			},
			&cli.BoolFlag{
				Name:  "table",
				Usage: "Reconstruct table rows and columns",
			},
			&cli.BoolFlag{
				Name:  "rtl",
				Usage: "Read columns right to left",
			},
			&cli.BoolFlag{
				Name:  "btt",
				Usage: "Read lines bottom to top",
			},
			&cli.BoolFlag{
				Name:  "auto-dir",
				Usage: "Pick column order from the dominant script",
			},
		},
		Action: run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(_ context.Context, cmd *cli.Command) error {
	input := cmd.String("input")
	output := cmd.String("output")
	format := cmd.String("format")
	if !validFormat(format) {
		return fmt.Errorf("unknown format %q (supported: %s)", format, strings.Join(formats, ", "))
	}
	lang := cmd.String("lang")
	if _, ok := tesseractLang[lang]; !ok {
		return fmt.Errorf("unknown language %q", lang)
	}

	opts := reconstructOptions(cmd, lang)

	info, err := os.Stat(input)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	if info.IsDir() {
		return processBatch(input, output, format, lang, opts)
	}
	return processFile(input, output, format, lang, opts)
}

func reconstructOptions(cmd *cli.Command, lang string) []quire.Option {
	var opts []quire.Option
	if cmd.Bool("table") {
		opts = append(opts, quire.WithTable())
	}
	if cmd.Bool("rtl") {
		opts = append(opts, quire.RightToLeft())
	}
	if cmd.Bool("btt") {
		opts = append(opts, quire.BottomToTop())
	}
	if cmd.Bool("auto-dir") {
		opts = append(opts, quire.AutoDirection())
	}
	if lang != text.LangAuto {
		opts = append(opts, quire.WithLanguage(lang))
	}
	return opts
}

// processBatch runs every supported file in a directory through the
// pipeline, writing one export per input. Individual failures are
// logged and skipped so one bad scan does not abort a whole folder.
func processBatch(dir, outDir, format, lang string, opts []quire.Option) error {
	if outDir == "" {
		outDir = dir
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("reading input directory: %w", err)
	}

	processed := 0
	for _, e := range entries {
		if e.IsDir() || !supportedInput(e.Name()) {
			continue
		}
		in := filepath.Join(dir, e.Name())
		base := strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))
		out := filepath.Join(outDir, base+"."+format)
		if err := processFile(in, out, format, lang, opts); err != nil {
			fmt.Fprintf(os.Stderr, "skipping %s: %v\n", in, err)
			continue
		}
		processed++
	}
	fmt.Fprintf(os.Stderr, "Processed %d file(s) into %s\n", processed, outDir)
	return nil
}

func processFile(input, output, format, lang string, opts []quire.Option) error {
	pages, err := ingest(input, lang)
	if err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("creating output: %w", err)
		}
		defer f.Close()
		w = f
	}

	for _, p := range pages {
		result := quire.Reconstruct(p.lines, p.page, opts...)
		if err := write(w, format, input, result); err != nil {
			return err
		}
	}
	return nil
}

type pageInput struct {
	lines []text.Line
	page  geom.Page
}

// ingest turns one input file into per-page line records: the text
// layer for PDFs, OCR for images.
func ingest(path, lang string) ([]pageInput, error) {
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		results, err := pdftext.Extract(path)
		if err != nil {
			return nil, err
		}
		pages := make([]pageInput, 0, len(results))
		for _, r := range results {
			pages = append(pages, pageInput{lines: r.Lines, page: r.Page})
		}
		return pages, nil
	}

	client, err := ocr.New()
	if err != nil {
		return nil, err
	}
	defer client.Close()
	if err := client.SetLanguage(tesseractLang[lang]); err != nil {
		return nil, fmt.Errorf("setting OCR language: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading image: %w", err)
	}
	lines, page, err := client.RecognizeLines(data)
	if err != nil {
		return nil, err
	}
	return []pageInput{{lines: lines, page: page}}, nil
}

func write(w io.Writer, format, source string, result *quire.Result) error {
	switch format {
	case "txt":
		return export.WriteText(w, result.Lines)
	case "csv":
		return export.WriteCSV(w, result.Grid())
	case "json":
		return export.WriteJSON(w, source, result.Grid())
	case "xlsx":
		return export.WriteXLSX(w, result.Grid())
	case "hocr":
		return export.WriteHOCR(w, result.Lines, result.Page)
	}
	return fmt.Errorf("unknown format %q", format)
}

func validFormat(format string) bool {
	for _, f := range formats {
		if f == format {
			return true
		}
	}
	return false
}

func supportedInput(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf", ".png", ".jpg", ".jpeg", ".tif", ".tiff":
		return true
	}
	return false
}
