package scenario

import (
	"path/filepath"
	"strings"

	"github.com/ivlev/cinematool/internal/cinema"
)

// MultiExportName is the file name used when several records share one file.
const MultiExportName = "CINEMAS.EXPORT.TXT"

const exportSuffix = ".EXPORT.TXT"

// ExportFileName names the EXPORT file for a set of records: the record name
// for a single record, MultiExportName otherwise.
func ExportFileName(cs []*cinema.Cinema) string {
	if len(cs) != 1 {
		return MultiExportName
	}
	name := cleanName(cs[0].Name)
	if name == "" {
		name = cleanName(cs[0].GUID)
	}
	if name == "" {
		name = "CINEMA"
	}
	return name + exportSuffix
}

// ExportFileNameFor names the EXPORT file converted from input: the record
// name for a single record, the input's base name when it holds several.
func ExportFileNameFor(input string, cs []*cinema.Cinema) string {
	if len(cs) == 1 {
		return ExportFileName(cs)
	}
	if base := stem(input); base != "" {
		return base + exportSuffix
	}
	return MultiExportName
}

// ScenarioFileName derives the YAML file name for an input file.
func ScenarioFileName(input string) string {
	return stem(input) + ".yaml"
}

// stem is the cleaned base name of a path without its EXPORT suffix or
// extension.
func stem(path string) string {
	base := filepath.Base(path)
	upper := strings.ToUpper(base)
	switch {
	case strings.HasSuffix(upper, exportSuffix):
		base = base[:len(base)-len(exportSuffix)]
	default:
		base = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return cleanName(base)
}

func cleanName(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, " ", "_")
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		return r
	}, s)
}
