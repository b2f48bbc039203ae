// cmd/catalog_import converts a catalog spreadsheet into the YAML document the
// server loads with catalog.path.
package main

import (
	"bytes"
	"flag"
	"log/slog"
	"os"

	"lexiscope/internal/catalog"
	"lexiscope/internal/importer"
)

func main() {
	in := flag.String("in", "", "path of the .xlsx workbook to import")
	out := flag.String("out", "", "path of the catalog YAML to write (stdout if empty)")
	sheet := flag.String("sheet", importer.DefaultSheet, "sheet holding the catalog rows")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	if *in == "" {
		logger.Error("Missing -in flag")
		flag.Usage()
		os.Exit(2)
	}

	f, err := os.Open(*in)
	if err != nil {
		logger.Error("Error opening workbook", slog.String("path", *in), slog.Any("error", err))
		os.Exit(1)
	}
	defer f.Close()

	categories, err := importer.Read(f, *sheet)
	if err != nil {
		logger.Error("Error importing workbook", slog.String("path", *in), slog.Any("error", err))
		os.Exit(1)
	}

	var buf bytes.Buffer
	if err := catalog.Encode(&buf, categories); err != nil {
		logger.Error("Error encoding catalog", slog.Any("error", err))
		os.Exit(1)
	}
	// The server refuses catalogs it cannot parse; check before writing.
	parsed, err := catalog.Parse(buf.Bytes())
	if err != nil {
		logger.Error("Imported catalog is invalid", slog.Any("error", err))
		os.Exit(1)
	}

	if *out == "" {
		_, err = os.Stdout.Write(buf.Bytes())
	} else {
		err = os.WriteFile(*out, buf.Bytes(), 0o644)
	}
	if err != nil {
		logger.Error("Error writing catalog", slog.String("path", *out), slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("Catalog imported", slog.Int("categories", parsed.Len()), slog.Int("words", parsed.TotalWords()))
}
