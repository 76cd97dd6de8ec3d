// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package mcptool

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"golang.org/x/time/rate"

	"github.com/jongio/azd-which/logutil"
	"github.com/jongio/azd-which/which"
)

// ToolName is the name the lookup tool is registered under.
const ToolName = "which"

// ServerName identifies the MCP server to clients.
const ServerName = "azd-which"

// DefaultRate is the sustained number of tool calls allowed per second.
// Bursts of twice this size are allowed.
const DefaultRate = 10

// LookupResult is the JSON payload returned by the tool.
type LookupResult struct {
	Command string   `json:"command"`
	Paths   []string `json:"paths"`
	Found   bool     `json:"found"`
}

// NewTool describes the lookup tool.
func NewTool() mcp.Tool {
	return mcp.NewTool(ToolName,
		mcp.WithDescription("Resolve a command name to executable paths the way a shell does"),
		mcp.WithString("command",
			mcp.Required(),
			mcp.Description("Command to resolve, for example \"node\" or \"./scripts/build\""),
		),
		mcp.WithBoolean("all",
			mcp.Description("Return every match in search order instead of the first"),
		),
		mcp.WithString("path",
			mcp.Description("Delimiter-separated directories to search instead of PATH"),
		),
		mcp.WithString("pathExt",
			mcp.Description("Delimiter-separated extensions to try on Windows instead of PATHEXT"),
		),
	)
}

// NewLimiter returns the limiter Handler uses by default.
func NewLimiter(perSecond int) *rate.Limiter {
	if perSecond <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	return rate.NewLimiter(rate.Limit(perSecond), perSecond*2)
}

// Handler returns the tool handler. opts apply to every lookup before the
// per-call arguments. A nil limiter disables rate limiting.
func Handler(limiter *rate.Limiter, opts ...which.Option) server.ToolHandlerFunc {
	log := logutil.NewLogger("mcp").WithCommand(ToolName)

	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if limiter != nil && !limiter.Allow() {
			log.Warn("rate limit exceeded")
			return mcp.NewToolResultError(fmt.Sprintf("rate limit exceeded for tool %q, please wait before retrying", ToolName)), nil
		}

		args := GetArgsMap(request)
		command, ok := GetStringParam(args, "command")
		if !ok || command == "" {
			return mcp.NewToolResultError("command is required and must be a non-empty string"), nil
		}

		callOpts := append([]which.Option{}, opts...)
		callOpts = append(callOpts, which.WithNoThrow())
		if all, _ := GetBoolParam(args, "all"); all {
			callOpts = append(callOpts, which.WithAll())
		}
		if path, ok := GetStringParam(args, "path"); ok {
			callOpts = append(callOpts, which.WithPath(path))
		}
		if pathExt, ok := GetStringParam(args, "pathExt"); ok {
			callOpts = append(callOpts, which.WithPathExt(pathExt))
		}

		out := <-which.LookupAsync(ctx, command, callOpts...)
		if out.Err != nil {
			if errors.Is(out.Err, context.Canceled) || errors.Is(out.Err, context.DeadlineExceeded) {
				return nil, out.Err
			}
			return mcp.NewToolResultError("lookup failed: " + out.Err.Error()), nil
		}

		log.Debug("lookup completed", "target", command, "matches", len(out.Paths))
		paths := out.Paths
		if paths == nil {
			paths = []string{}
		}
		return MarshalToolResult(LookupResult{Command: command, Paths: paths, Found: out.Found()})
	}
}

// NewServer returns an MCP server with the lookup tool registered.
func NewServer(version string, limiter *rate.Limiter, opts ...which.Option) *server.MCPServer {
	s := server.NewMCPServer(ServerName, version, server.WithToolCapabilities(false))
	s.AddTool(NewTool(), Handler(limiter, opts...))
	return s
}

// ServeStdio serves the lookup tool over stdin and stdout until the input is closed.
func ServeStdio(version string, opts ...which.Option) error {
	return server.ServeStdio(NewServer(version, NewLimiter(DefaultRate), opts...))
}

// GetArgsMap extracts the arguments map from a tool call request.
// Returns an empty map if arguments are nil or not a map.
func GetArgsMap(request mcp.CallToolRequest) map[string]interface{} {
	if request.Params.Arguments != nil {
		if m, ok := request.Params.Arguments.(map[string]interface{}); ok {
			return m
		}
	}
	return map[string]interface{}{}
}

// GetStringParam extracts a string parameter from the arguments map.
func GetStringParam(args map[string]interface{}, key string) (string, bool) {
	val, ok := args[key]
	if !ok {
		return "", false
	}
	s, ok := val.(string)
	return s, ok
}

// GetBoolParam extracts a boolean parameter from the arguments map.
func GetBoolParam(args map[string]interface{}, key string) (bool, bool) {
	val, ok := args[key]
	if !ok {
		return false, false
	}
	b, ok := val.(bool)
	return b, ok
}

// MarshalToolResult marshals data to JSON and returns it as a tool result.
func MarshalToolResult(data interface{}) (*mcp.CallToolResult, error) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return mcp.NewToolResultError("failed to marshal result: " + err.Error()), nil
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}
