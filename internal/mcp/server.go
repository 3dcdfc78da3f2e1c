// Package mcp exposes the scoring engine as Model Context Protocol tools
// over stdio.
package mcp

import (
	"context"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/garrettladley/wellscore/internal/wellness"
)

type Server struct {
	mcpServer *server.MCPServer
}

// NewServer registers every tool. history may be nil, in which case
// list_assessments is not offered.
func NewServer(version string, engines *wellness.Holder, history History) *Server {
	s := server.NewMCPServer("wellscore", version,
		server.WithLogging(),
		server.WithRecovery(),
	)

	h := &handlers{engines: engines, history: history}
	registerTools(s, h)

	return &Server{mcpServer: s}
}

// Start serves on stdin/stdout until ctx is done.
func (s *Server) Start(ctx context.Context) error {
	stdioServer := server.NewStdioServer(s.mcpServer)
	return stdioServer.Listen(ctx, os.Stdin, os.Stdout)
}

func registerTools(s *server.MCPServer, h *handlers) {
	calcOpts := []mcp.ToolOption{
		mcp.WithDescription("Calculate the four category scores (metabolic, VO2 max, grip strength, body composition), the weighted total and the letter grade. Every metric is optional; missing or unparseable values are skipped. Age and sex are required for the fitness and body composition categories."),
	}
	for _, f := range metricFields {
		calcOpts = append(calcOpts, mcp.WithString(f.key, mcp.Description(f.desc)))
	}
	s.AddTool(mcp.NewTool("calculate_scores", calcOpts...), h.calculateScores)

	gradeTool := mcp.NewTool("grade_from_score",
		mcp.WithDescription("Map a total score (0-100) to its letter grade and meaning."),
		mcp.WithNumber("score",
			mcp.Required(),
			mcp.Description("Total wellness score"),
		),
	)
	s.AddTool(gradeTool, h.gradeFromScore)

	scenariosTool := mcp.NewTool("list_scenarios",
		mcp.WithDescription("List the built-in example profiles with their inputs and computed scores. Use a key with score_scenario."),
	)
	s.AddTool(scenariosTool, h.listScenarios)

	scenarioTool := mcp.NewTool("score_scenario",
		mcp.WithDescription("Score one built-in example profile by key."),
		mcp.WithString("key",
			mcp.Required(),
			mcp.Description("Scenario key, e.g. 'healthyMiddleAgedMale'. Use list_scenarios to see all."),
		),
	)
	s.AddTool(scenarioTool, h.scoreScenario)

	if h.history != nil {
		historyTool := mcp.NewTool("list_assessments",
			mcp.WithDescription("List saved assessments, newest first."),
			mcp.WithNumber("limit",
				mcp.Description("Maximum number of assessments to return"),
			),
		)
		s.AddTool(historyTool, h.listAssessments)
	}
}
