package server

// Tool represents an MCP tool definition.
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// GetToolDefinitions returns all available tools.
func GetToolDefinitions() []Tool {
	return []Tool{
		{
			Name:        "count_chars",
			Description: "Count the characters in a text with all whitespace and newlines excluded.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"input": map[string]interface{}{
						"type":        "string",
						"description": "The text to measure, or a file path when is_file_path is true",
					},
					"is_file_path": map[string]interface{}{
						"type":        "boolean",
						"description": "Treat input as a path and read the file instead",
						"default":     false,
					},
				},
				"required": []string{"input"},
			},
		},
		{
			Name:        "count_words",
			Description: "Count the words in a text. English text is split on whitespace; Japanese text is segmented morphologically, excluding punctuation and whitespace tokens.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"input": map[string]interface{}{
						"type":        "string",
						"description": "The text to measure, or a file path when is_file_path is true",
					},
					"language": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"english", "japanese"},
						"description": "Word segmentation strategy",
					},
					"is_file_path": map[string]interface{}{
						"type":        "boolean",
						"description": "Treat input as a path and read the file instead",
						"default":     false,
					},
				},
				"required": []string{"input", "language"},
			},
		},
		{
			Name:        "analyze_text",
			Description: "Produce a linguistic feature report for Japanese text: sentence statistics, part-of-speech and particle distributions, script distribution, vocabulary diversity, honorific frequency, and punctuation density.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"input": map[string]interface{}{
						"type":        "string",
						"description": "The text to analyze, or a file path when is_file_path is true",
					},
					"is_file_path": map[string]interface{}{
						"type":        "boolean",
						"description": "Treat input as a path and read the file instead",
						"default":     false,
					},
				},
				"required": []string{"input"},
			},
		},
	}
}

// handleToolsList returns the list of available tools.
func (s *Server) handleToolsList(req *Request) *Response {
	return &Response{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
