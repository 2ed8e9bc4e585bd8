//go:build js && wasm

// Package wasmapi exposes pkg/ecmascript to JavaScript as a global
// `ECMAParse` object, for use from a browser or other WASM host.
package wasmapi

import (
	"encoding/json"
	"syscall/js"

	"github.com/ecmago/ecmaparse/pkg/ecmascript"
)

// RegisterAPI installs window.ECMAParse.{parse,tokenize} as callable
// JavaScript functions backed by this module's parser.
func RegisterAPI() {
	api := js.Global().Get("Object").New()
	api.Set("parse", js.FuncOf(parse))
	api.Set("tokenize", js.FuncOf(tokenize))
	js.Global().Set("ECMAParse", api)
}

// parse(source, sourceType) -> { ok: bool, json?: string (the AST as JSON), error?: string }
func parse(this js.Value, args []js.Value) any {
	if len(args) < 1 {
		return errorResult("parse requires a source string argument")
	}
	source := args[0].String()
	typ := ecmascript.Unknown
	if len(args) > 1 {
		switch args[1].String() {
		case "script":
			typ = ecmascript.Script
		case "module":
			typ = ecmascript.Module
		}
	}

	prog, err := ecmascript.New(source, typ)
	if err != nil {
		return errorResult(err.Error())
	}
	astJSON, err := json.Marshal(ecmascript.ToJSON(prog))
	if err != nil {
		return errorResult(err.Error())
	}
	return successResult(string(astJSON))
}

// tokenize(source) -> { ok: bool, json?: string (a JSON array of tokens), error?: string }
func tokenize(this js.Value, args []js.Value) any {
	if len(args) < 1 {
		return errorResult("tokenize requires a source string argument")
	}
	tokens, err := ecmascript.Tokenize(args[0].String())
	if err != nil {
		return errorResult(err.Error())
	}
	out := make([]map[string]any, len(tokens))
	for i, tok := range tokens {
		out[i] = map[string]any{
			"type":    tok.Type.String(),
			"literal": tok.Literal,
			"start":   tok.Span.Start,
			"end":     tok.Span.End,
		}
	}
	data, err := json.Marshal(out)
	if err != nil {
		return errorResult(err.Error())
	}
	return successResult(string(data))
}

func errorResult(message string) map[string]any {
	return map[string]any{"ok": false, "error": message}
}

func successResult(jsonPayload string) map[string]any {
	return map[string]any{"ok": true, "json": jsonPayload}
}
