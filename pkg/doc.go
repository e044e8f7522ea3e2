// Package pkg provides the core libraries for cogmap.
//
// # Overview
//
// cogmap converts cognitive maps exported by Decision Explorer as XML into
// three flat tables (nodes, edges and node styles) that graph analysis
// tools can load directly. The pkg directory is organized as follows:
//
//  1. [dex] - Decision Explorer XML loading and conversion
//  2. [io] - JSON and CSV encoding of the converted tables
//  3. [pipeline] - Orchestration (load → convert → encode)
//  4. [errors] - Coded errors and input validation
//  5. [observability] - Hooks for timing and tracing each stage
//  6. [buildinfo] - Version information set at build time
//
// # Architecture
//
// The data flow through cogmap:
//
//	Decision Explorer XML export
//	         ↓
//	    [dex] package (load tree, extract concepts, links and styles)
//	         ↓
//	    [dex.Result] (nodes, edges, node_styles)
//	         ↓
//	    [io] package (JSON or CSV)
//
// # Quick Start
//
//	import (
//	    "os"
//
//	    "github.com/matzehuels/cogmap/pkg/dex"
//	    pkgio "github.com/matzehuels/cogmap/pkg/io"
//	)
//
//	res, err := dex.ConvertFile("model.xml", dex.Options{Scale: 5})
//	if err != nil {
//	    return err
//	}
//	return pkgio.WriteJSON(res, os.Stdout)
//
// Use [pipeline.Runner] when stage timings, logging or hooks are needed:
//
//	r := pipeline.NewRunner(logger)
//	out, err := r.Execute(ctx, pipeline.Options{Input: "model.xml", Format: "csv"})
//
// # Testing
//
//	go test ./pkg/...           # All tests
//	go test -run Example ./...  # Examples only
//
// [dex]: https://pkg.go.dev/github.com/matzehuels/cogmap/pkg/dex
// [io]: https://pkg.go.dev/github.com/matzehuels/cogmap/pkg/io
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/cogmap/pkg/pipeline
// [pipeline.Runner]: https://pkg.go.dev/github.com/matzehuels/cogmap/pkg/pipeline#Runner
// [errors]: https://pkg.go.dev/github.com/matzehuels/cogmap/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/cogmap/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/cogmap/pkg/buildinfo
//
// [dex.Result]: https://pkg.go.dev/github.com/matzehuels/cogmap/pkg/dex#Result
package pkg
