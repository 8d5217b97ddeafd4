// Package server implements the MCP (Model Context Protocol) server for the
// color-segmentation tools.
//
// This package provides a JSON-RPC 2.0 server that exposes model training,
// region growing, and lookup-table operations through the MCP protocol,
// enabling MCP-compatible clients to interactively build and inspect color
// models for Bayer-mosaic frames.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Frame handling:
//   - frame_load: Load an image file as a Bayer-mosaic frame
//   - frame_dimensions: Get frame width and height
//
// Model building:
//   - color_train: Fit a color model from a frame region
//   - region_grow: Find a sample rectangle around a seed pixel
//   - model_describe: Report a trained model's lines, goodness, and swatch
//   - chroma_classify: Test a chrominance pair against a trained model
//
// Lookup table:
//   - lut_populate: Fill the classification table for a trained class
//   - lut_clear: Reset one class or the whole table
//   - lut_lookup: Read the class tag for a chrominance pair
//   - lut_export_png: Render the table as a PNG image
//
// # State
//
// The server maintains an in-memory cache of loaded frames, keyed by path and
// reused across tool calls. It also holds one classification table and the
// most recent trained model per class (1 through 7). All requests are handled
// on the single Run goroutine, so no locking is needed beyond the frame
// cache's own.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// # Logging
//
// Stdout belongs to the protocol, so all logging goes to stderr as structured
// zerolog events. The caller constructs the logger and chooses the level.
//
// # Usage
//
// The server is typically started by an MCP client:
//
//	srv := server.New(bayer.ConvertOptions{}, logger)
//	if err := srv.Run(); err != nil {
//	    logger.Fatal().Err(err).Msg("server stopped")
//	}
package server
