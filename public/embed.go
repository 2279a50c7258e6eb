// Package public holds the pages the static server delivers. The game page
// expects ny1609.wasm and wasm_exec.js next to it; build them with
//
//	GOOS=js GOARCH=wasm go build -o public/3d/ny1609.wasm .
//	cp "$(go env GOROOT)/lib/wasm/wasm_exec.js" public/3d/
package public

import "embed"

//go:embed index.html 3d
var FS embed.FS
