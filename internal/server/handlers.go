package server

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/hikaeme/kotodama"
)

// ToolCallParams represents the parameters for a tools/call request.
type ToolCallParams struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments"`
}

// toolArgs is the argument shape shared by all three tools.
type toolArgs struct {
	Input      string `json:"input"`
	Language   string `json:"language,omitempty"`
	IsFilePath bool   `json:"is_file_path,omitempty"`
}

// handleToolsCall processes a tools/call request.
//
// Tool failures (unreadable file, tokenizer initialization failure, bad
// language) are reported inside the result with the isError flag set, never
// as a JSON-RPC error: the caller is expected to keep issuing requests, and a
// failed tokenizer build is retried on the next call.
func (s *Server) handleToolsCall(ctx context.Context, req *Request) *Response {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return &Response{
			JSONRPC: "2.0",
			ID:      req.ID,
			Error:   &RPCError{Code: -32602, Message: "Invalid params", Data: err.Error()},
		}
	}

	text, err := s.executeTool(ctx, params.Name, params.Arguments)
	isError := false
	if err != nil {
		kotodama.Logger.Warn().Err(err).Str("tool", params.Name).Msg("tool call failed")
		text = fmt.Sprintf("Error: %v", err)
		isError = true
	}

	return &Response{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{"type": "text", "text": text},
			},
			"isError": isError,
		},
	}
}

// executeTool dispatches tool execution and returns the formatted text block.
func (s *Server) executeTool(ctx context.Context, name string, rawArgs json.RawMessage) (string, error) {
	var args toolArgs
	if len(rawArgs) > 0 {
		if err := json.Unmarshal(rawArgs, &args); err != nil {
			return "", fmt.Errorf("invalid arguments: %w", err)
		}
	}

	text, err := resolveInput(args)
	if err != nil {
		return "", err
	}

	switch name {
	case "count_chars":
		return fmt.Sprintf("Character count (whitespace excluded): %d", kotodama.CountChars(text)), nil

	case "count_words":
		lang, err := kotodama.ParseLanguage(args.Language)
		if err != nil {
			return "", err
		}
		n, err := s.engine.CountWords(ctx, text, lang)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Word count (%s): %d", lang, n), nil

	case "analyze_text":
		report, err := s.engine.Analyze(ctx, text)
		if err != nil {
			return "", err
		}
		return report.Format(), nil
	}
	return "", fmt.Errorf("unknown tool: %s", name)
}

// resolveInput returns the literal input text, or the content of the file it
// points at when is_file_path is set.
func resolveInput(args toolArgs) (string, error) {
	if !args.IsFilePath {
		return args.Input, nil
	}
	b, err := os.ReadFile(args.Input)
	if err != nil {
		return "", fmt.Errorf("failed to read input file: %w", err)
	}
	return string(b), nil
}
