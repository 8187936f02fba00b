package mcp

import (
	"context"
	"encoding/json"
	"maps"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/hpungsan/wordly/internal/errors"
	"github.com/hpungsan/wordly/internal/ops"
	"github.com/hpungsan/wordly/internal/word"
)

// Handlers holds dependencies for MCP tool handlers.
type Handlers struct {
	src   ops.WordSource
	store ops.HistoryStore
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(src ops.WordSource, store ops.HistoryStore) *Handlers {
	return &Handlers{src: src, store: store}
}

// Request types for each tool

// TodayRequest represents the arguments for word_today.
type TodayRequest struct {
	NoSave bool `json:"no_save,omitempty"`
}

// DefineRequest represents the arguments for word_define.
type DefineRequest struct {
	Headword string `json:"headword"`
	Save     bool   `json:"save,omitempty"`
}

// HistoryRequest represents the arguments for word_history.
type HistoryRequest struct {
	Limit  int `json:"limit,omitempty"`
	Offset int `json:"offset,omitempty"`
}

// ShowRequest represents the arguments for word_show.
type ShowRequest struct {
	Headword string `json:"headword"`
}

// Handler implementations

// HandleToday handles the word_today tool call.
func (h *Handlers) HandleToday(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[TodayRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Today(ctx, h.src, h.store, ops.TodayInput{NoSave: input.NoSave})
	if err != nil {
		return unsavedResult(err, result.Word), nil
	}

	return successResult(result)
}

// HandleDefine handles the word_define tool call.
func (h *Handlers) HandleDefine(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[DefineRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Define(ctx, h.src, h.store, ops.DefineInput{
		Headword: input.Headword,
		Save:     input.Save,
	})
	if err != nil {
		var fetched *word.Word
		if result != nil {
			fetched = result.Word
		}
		return unsavedResult(err, fetched), nil
	}

	return successResult(result)
}

// HandleHistory handles the word_history tool call.
func (h *Handlers) HandleHistory(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[HistoryRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.History(ctx, h.store, ops.HistoryInput{
		Limit:  input.Limit,
		Offset: input.Offset,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleShow handles the word_show tool call.
func (h *Handlers) HandleShow(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[ShowRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Show(ctx, h.store, ops.ShowInput{Headword: input.Headword})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleLatest handles the word_latest tool call.
func (h *Handlers) HandleLatest(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := ops.Latest(ctx, h.store)
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleClear handles the word_clear tool call.
func (h *Handlers) HandleClear(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := ops.Clear(ctx, h.store)
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// Result helpers

// errorResult creates an MCP error result from any error.
// Uses IsError: true so MCP clients recognize failures properly.
// Internal error details are not exposed.
func errorResult(err error) *mcp.CallToolResult {
	var payload map[string]any

	if we, ok := errors.As(err); ok {
		errorObj := map[string]any{
			"code":    we.Code,
			"message": we.Message,
			"status":  we.Status,
		}
		if we.Code != errors.ErrInternal && we.Details != nil {
			errorObj["details"] = we.Details
		}
		payload = map[string]any{"error": errorObj}
	} else {
		payload = map[string]any{
			"error": map[string]any{
				"code":    errors.ErrInternal,
				"message": "an internal error occurred",
				"status":  500,
			},
		}
	}

	content, _ := json.Marshal(payload)
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.TextContent{Type: "text", Text: string(content)}},
		IsError: true,
	}
}

// unsavedResult reports a failed save with the fetched word attached
// under details.entry, so the caller can still show it.
func unsavedResult(err error, w *word.Word) *mcp.CallToolResult {
	we, ok := errors.As(err)
	if !ok || w == nil {
		return errorResult(err)
	}
	withEntry := *we
	withEntry.Details = maps.Clone(we.Details)
	if withEntry.Details == nil {
		withEntry.Details = map[string]any{}
	}
	withEntry.Details["entry"] = w
	return errorResult(&withEntry)
}

// successResult creates an MCP success result from any data.
func successResult(data any) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultJSON(data)
}
