package core

import (
	"bytes"
	"embed"
	"fmt"
	"go/format"
	"path/filepath"
	"sort"
	"text/template"
	"unicode"

	"github.com/arnavsurve/rexgen/internal/info"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// LexerImportPath is the runtime imported by scanners not generated in
// independent mode.
const LexerImportPath = "github.com/arnavsurve/rexgen/pkg/lexer"

const defaultPackage = "scanner"

var scannerTemplate = template.Must(template.ParseFS(templatesFS, "templates/*.tmpl"))

type scannerData struct {
	Version     string
	Source      string
	Package     string
	Name        string
	RulesVar    string
	RuleType    string
	Imports     []string
	Independent bool
	Stub        bool
	States      []string
	Rules       []Rule
	Inner       string
}

func (g *Generator) scannerData() scannerData {
	gr := g.grammar
	d := scannerData{
		Version:     info.Version,
		Source:      filepath.Base(g.file),
		Package:     gr.Package,
		Name:        gr.Name,
		RulesVar:    lowerFirst(gr.Name) + "Rules",
		RuleType:    lowerFirst(gr.Name) + "Rule",
		Independent: g.cfg.Independent || gr.Options.Independent,
		Stub:        g.cfg.Stub || gr.Options.Stub,
		States:      gr.States(),
		Rules:       gr.Rules,
		Inner:       gr.Inner,
	}

	if d.Package == "" {
		d.Package = g.cfg.Package
	}
	if d.Package == "" {
		d.Package = defaultPackage
	}
	if d.Stub && d.Package != "main" {
		g.logger.Warn().Msgf("Stub code requires package main; overriding package %s", d.Package)
		d.Package = "main"
	}

	d.Imports = scannerImports(d.Independent, d.Stub, gr.Imports)
	return d
}

func scannerImports(independent, stub bool, extra []string) []string {
	set := map[string]bool{"regexp": true}
	if independent {
		set["fmt"], set["io"], set["strings"] = true, true, true
	} else {
		set[LexerImportPath] = true
	}
	if stub {
		set["fmt"], set["os"] = true, true
	}
	for _, p := range extra {
		set[p] = true
	}

	imports := make([]string, 0, len(set))
	for p := range set {
		imports = append(imports, p)
	}
	sort.Strings(imports)
	return imports
}

// emit renders the scanner source and formats it with gofmt rules.
func (g *Generator) emit() ([]byte, error) {
	var buf bytes.Buffer
	if err := scannerTemplate.ExecuteTemplate(&buf, "scanner", g.scannerData()); err != nil {
		return nil, fmt.Errorf("rendering scanner for %q: %w", g.file, err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting generated scanner for %q: %w", g.file, err)
	}
	return src, nil
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	// Keep all-caps prefixes readable: "HTTPScanner" becomes "httpScanner".
	i := 0
	for i < len(r) && unicode.IsUpper(r[i]) && (i == 0 || i+1 >= len(r) || unicode.IsUpper(r[i+1])) {
		r[i] = unicode.ToLower(r[i])
		i++
	}
	return string(r)
}
