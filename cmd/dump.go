package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/TykTechnologies/graphql-syntax/pkg/ast"
)

const (
	formatSpew = "spew"
	formatJSON = "json"
	formatYAML = "yaml"
)

type dumper func(out io.Writer, fileName string, document *ast.Document) error

// dumpedDocument tags every definition with its kind, the concrete type is lost in JSON and YAML
type dumpedDocument struct {
	File        string             `json:"file" yaml:"file"`
	Definitions []dumpedDefinition `json:"definitions" yaml:"definitions"`
}

type dumpedDefinition struct {
	Kind       ast.NodeKind   `json:"kind" yaml:"kind"`
	Definition ast.Definition `json:"definition" yaml:"definition"`
}

var spewConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

func dumperFor(format string) (dumper, error) {
	switch format {
	case formatSpew:
		return dumpSpew, nil
	case formatJSON:
		return dumpJSON, nil
	case formatYAML:
		return dumpYAML, nil
	default:
		return nil, errors.Errorf("unknown format %q, use %s, %s or %s", format, formatSpew, formatJSON, formatYAML)
	}
}

func newDumpedDocument(fileName string, document *ast.Document) dumpedDocument {
	out := dumpedDocument{
		File:        fileName,
		Definitions: make([]dumpedDefinition, len(document.Definitions)),
	}
	for i, definition := range document.Definitions {
		out.Definitions[i] = dumpedDefinition{
			Kind:       definition.Kind(),
			Definition: definition,
		}
	}
	return out
}

func dumpSpew(out io.Writer, fileName string, document *ast.Document) error {
	if _, err := fmt.Fprintf(out, "# %s\n", fileName); err != nil {
		return err
	}
	spewConfig.Fdump(out, document)
	return nil
}

func dumpJSON(out io.Writer, fileName string, document *ast.Document) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(newDumpedDocument(fileName, document))
}

func dumpYAML(out io.Writer, fileName string, document *ast.Document) error {
	data, err := yaml.Marshal(newDumpedDocument(fileName, document))
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(out, "---"); err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}
