// Package commentserver wires the comment-scraping engine into MCP tools.
// It owns the caller-side concerns the pipeline deliberately avoids:
// the daily run quota and result export.
package commentserver

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// RegisterTools registers all comment tools on the given MCP server.
func RegisterTools(server *mcp.Server, quota *RunQuota) {
	registerCommentScrape(server, quota)
}
