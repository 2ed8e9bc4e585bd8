package ecmascript_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/ecmago/ecmaparse/pkg/ecmascript"
	"github.com/gkampitakis/go-snaps/snaps"
)

// TestFixtures walks testdata/fixtures/*.js, parses each one as a Script,
// and snapshot-matches the serialized AST and the flat token stream. A
// fixture failing to parse is a test failure: every fixture here is
// expected to be valid ECMAScript.
func TestFixtures(t *testing.T) {
	files, err := filepath.Glob("../../testdata/fixtures/*.js")
	if err != nil {
		t.Fatalf("glob fixtures: %v", err)
	}
	if len(files) == 0 {
		t.Fatal("no fixtures found under testdata/fixtures")
	}

	for _, path := range files {
		name := filepath.Base(path)
		t.Run(name, func(t *testing.T) {
			source, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("read %s: %v", path, err)
			}

			prog, err := ecmascript.ParseFile(string(source), name, ecmascript.Script)
			if err != nil {
				t.Fatalf("parse %s: %v", path, err)
			}
			astJSON, err := json.MarshalIndent(ecmascript.ToJSON(prog), "", "  ")
			if err != nil {
				t.Fatalf("marshal ast for %s: %v", path, err)
			}
			snaps.MatchJSON(t, astJSON)

			tokens, err := ecmascript.Tokenize(string(source))
			if err != nil {
				t.Fatalf("tokenize %s: %v", path, err)
			}
			snaps.MatchSnapshot(t, tokens)
		})
	}
}

func TestMain(m *testing.M) {
	v := m.Run()
	snaps.Clean(m)
	os.Exit(v)
}
