package mcp

import (
	"context"
	_ "embed"
	"encoding/json"
	"strings"

	"github.com/viant/jsonrpc"
	"github.com/viant/mcp-protocol/schema"
	protoserver "github.com/viant/mcp-protocol/server"
	"github.com/viant/uniffi-patch/service"
)

//go:embed tools/uniffiPatchSwiftVtables.md
var descPatchVtables string

//go:embed tools/uniffiInspectSwiftVtables.md
var descInspectVtables string

func registerTools(base *protoserver.DefaultHandler, h *Handler) error {
	svc := h.service

	// Patch vtables
	if err := protoserver.RegisterTool[*service.PatchFileInput, *service.PatchFileOutput](base.Registry, "uniffiPatchSwiftVtables", descPatchVtables, func(ctx context.Context, in *service.PatchFileInput) (*schema.CallToolResult, *jsonrpc.Error) {
		if strings.TrimSpace(in.Location) == "" {
			return buildErrorResult("location is required")
		}
		out, err := svc.PatchFile(ctx, in)
		if err != nil {
			return buildErrorResult(err.Error())
		}
		return buildSuccessResult(svc, out)
	}); err != nil {
		return err
	}

	// Inspect vtables
	if err := protoserver.RegisterTool[*service.InspectFileInput, *service.InspectFileOutput](base.Registry, "uniffiInspectSwiftVtables", descInspectVtables, func(ctx context.Context, in *service.InspectFileInput) (*schema.CallToolResult, *jsonrpc.Error) {
		if strings.TrimSpace(in.Location) == "" {
			return buildErrorResult("location is required")
		}
		out, err := svc.InspectFile(ctx, in)
		if err != nil {
			return buildErrorResult(err.Error())
		}
		return buildSuccessResult(svc, out)
	}); err != nil {
		return err
	}

	return nil
}

func buildErrorResult(message string) (*schema.CallToolResult, *jsonrpc.Error) {
	return nil, jsonrpc.NewError(jsonrpc.InvalidParams, message, nil)
}

func buildSuccessResult(svc *service.Service, payload any) (*schema.CallToolResult, *jsonrpc.Error) {
	if svc.UseTextField() {
		b, _ := json.Marshal(payload)
		return &schema.CallToolResult{Content: []schema.CallToolResultContentElem{{Type: "text", Text: string(b)}}}, nil
	}
	return &schema.CallToolResult{StructuredContent: map[string]any{"result": payload}}, nil
}
