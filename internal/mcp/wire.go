// Package mcp implements the JSON-RPC 2.0 dialect spoken by MCP clients:
// initialize, tools/list, tools/call, and acked notifications
package mcp

import (
	"bytes"
	"encoding/json"
)

// Protocol constants advertised during the initialize handshake
const (
	ProtocolVersion = "2024-11-05"
	ServerName      = "mcp-reportes-acceso"
	ServerVersion   = "1.0.0"
)

// Request is an inbound JSON-RPC message
// ID stays a RawMessage so null and absent ids both mirror back as null
type Request struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id,omitempty"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// Response is an outbound JSON-RPC message
type Response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  any             `json:"result,omitempty"`
	Error   *ErrorObj       `json:"error,omitempty"`
}

// ErrorObj is the JSON-RPC error member
type ErrorObj struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ContentItem is one entry of a tools/call result payload
type ContentItem struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// CallResult wraps a tool result the way tools/call responses are shaped
type CallResult struct {
	Content []ContentItem `json:"content"`
}

// NewResult builds a success response mirroring the request id
func NewResult(id json.RawMessage, result any) Response {
	return Response{JSONRPC: "2.0", ID: id, Result: result}
}

// NewError builds an error response mirroring the request id
func NewError(id json.RawMessage, code int, message string) Response {
	return Response{JSONRPC: "2.0", ID: id, Error: &ErrorObj{Code: code, Message: message}}
}

// TextResult stringifies v with two space indent and wraps it as text content.
// Non-ASCII is preserved so Spanish labels survive the round trip
func TextResult(v any) (CallResult, error) {
	s, err := MarshalIndent(v)
	if err != nil {
		return CallResult{}, err
	}
	return CallResult{Content: []ContentItem{{Type: "text", Text: s}}}, nil
}

// MarshalIndent encodes v as two space indented JSON without HTML escaping
func MarshalIndent(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n")), nil
}
