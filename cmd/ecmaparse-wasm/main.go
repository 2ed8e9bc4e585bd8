//go:build js && wasm

// Package main is the WebAssembly entry point for the ECMAScript front
// end. It exports pkg/wasmapi's parse/tokenize functions to JavaScript
// and then blocks forever, since exiting would tear down every exported
// function along with it.
//
// Build with:
//   GOOS=js GOARCH=wasm go build -o ecmaparse.wasm ./cmd/ecmaparse-wasm
//
// Usage from JavaScript:
//   <script src="wasm_exec.js"></script>
//   <script>
//     const go = new Go();
//     WebAssembly.instantiateStreaming(fetch("ecmaparse.wasm"), go.importObject)
//       .then((result) => {
//         go.run(result.instance);
//         // window.ECMAParse.parse(source, "module") is now available
//       });
//   </script>
package main

import (
	"syscall/js"

	"github.com/ecmago/ecmaparse/pkg/wasmapi"
)

func main() {
	done := make(chan struct{})

	wasmapi.RegisterAPI()
	js.Global().Get("console").Call("log", "ecmaparse WASM module initialized")

	<-done
}
