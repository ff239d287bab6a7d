package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/graftlang/reshape/pkg/reshape"
)

type executeInput struct {
	Input  interface{} `json:"input"  jsonschema:"The input JSON document to reshape"`
	Config interface{} `json:"config" jsonschema:"The pipeline config: root selector, ordered operation list, output template"`
}

type executeOutput struct {
	Result interface{} `json:"result"`
}

func handleExecute(_ context.Context, _ *mcp.CallToolRequest, input executeInput) (*mcp.CallToolResult, executeOutput, error) {
	config := reshape.FromRaw(input.Config)
	if ok, message := reshape.Validate(config); !ok {
		return errResult(fmt.Errorf("invalid pipeline: %s", message)), executeOutput{}, nil
	}
	result := reshape.Execute(reshape.FromRaw(input.Input), config)
	return nil, executeOutput{Result: result.Raw()}, nil
}

type validateInput struct {
	Config interface{} `json:"config" jsonschema:"The pipeline config to check"`
}

type validateOutput struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}

func handleValidate(_ context.Context, _ *mcp.CallToolRequest, input validateInput) (*mcp.CallToolResult, validateOutput, error) {
	ok, message := reshape.Validate(reshape.FromRaw(input.Config))
	return nil, validateOutput{Valid: ok, Message: message}, nil
}
