package server

import (
	"net/http"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"
	"github.com/openai/openai-go/v3"

	"atlas/pkg/recovery"
	"atlas/pkg/schema"
	"atlas/pkg/store"
	"atlas/pkg/utils"
)

type compareReq struct {
	Prompt string `json:"prompt"`
}

type CompareResponse struct {
	LogID          string            `json:"log_id"`
	NormalResponse string            `json:"normal_response"`
	AtlasResponse  schema.AtlasReply `json:"atlas_response"`
	Similarity     float64           `json:"similarity"`
	Delta          []utils.WordDelta `json:"delta"`
}

// POST /api/compare
//
// Runs the same prompt through the model twice, once plain and once with the
// analysis system prompt, and returns both answers side by side. Identical
// prompts in flight share a single round-trip through the flight cache.
func (s *Server) handlePostCompare(c echo.Context) error {
	var req compareReq
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid json")
	}
	req.Prompt = strings.TrimSpace(req.Prompt)
	if req.Prompt == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "prompt is required")
	}

	resp, err := s.compared.Get(req.Prompt)
	if err != nil {
		c.Logger().Errorf("comparison failed: %v", err)
		return c.JSON(http.StatusBadGateway, utils.ErrJSON("model backend unavailable"))
	}

	return c.JSON(http.StatusOK, resp)
}

// runComparison does the actual work behind /api/compare. The analysis leg
// always goes through the recovery pipeline, so a structured reply comes back
// even when the model mangles its JSON.
func (s *Server) runComparison(prompt string) (CompareResponse, error) {
	atlasParams := &openai.ChatCompletionNewParams{
		ResponseFormat: schema.StructuredOutputsResponseFormat(),
	}
	if tokens, err := utils.NumTokensFromMessages(atlasSystemPrompt + prompt); err == nil {
		atlasParams.MaxCompletionTokens = openai.Int(int64(tokens) + 2048)
	}

	var (
		wg                  sync.WaitGroup
		normalOut, atlasOut string
		normalErr, atlasErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		normalOut, normalErr = s.Inferencer.Infer(s.Ctx, nil, normalSystemPrompt, prompt)
	}()
	go func() {
		defer wg.Done()
		atlasOut, atlasErr = s.Inferencer.Infer(s.Ctx, atlasParams, atlasSystemPrompt, prompt)
	}()
	wg.Wait()

	if normalErr != nil && atlasErr != nil {
		log.Error("both inference calls failed", "normal", normalErr, "atlas", atlasErr)
		return CompareResponse{}, normalErr
	}
	if normalErr != nil {
		log.Error("plain inference failed", "err", normalErr)
		normalOut = "inference error: " + normalErr.Error()
	}
	if atlasErr != nil {
		log.Error("analysis inference failed", "err", atlasErr)
	}

	reply := recovery.Recover(atlasOut)

	resp := CompareResponse{
		NormalResponse: normalOut,
		AtlasResponse:  reply,
		Similarity:     utils.Similarity(normalOut, reply.UserFacingResponse),
		Delta:          utils.DiffWords(normalOut, reply.UserFacingResponse),
	}

	if s.Store != nil {
		entry := &store.ResponseLog{
			UserPrompt:     prompt,
			NormalResponse: normalOut,
			AtlasResponse:  atlasOut,
		}
		if err := s.Store.Create(s.Ctx, entry); err != nil {
			log.Error("failed to persist comparison", "err", err)
		} else {
			resp.LogID = entry.ID
		}
	}

	return resp, nil
}
