package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"obotab/internal/adapters/tsv"
	"obotab/internal/application/commands"
	"obotab/internal/domain"
)

// subtreeLimit caps the number of terms a single subtree call returns.
const subtreeLimit = 500

// RegisterReadTools adds all read-only ontology tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, onto *domain.Ontology, rootID string) {
	s.AddTool(termTool(), termHandler(onto))
	s.AddTool(searchTool(), searchHandler(onto))
	s.AddTool(subtreeTool(), subtreeHandler(onto, rootID))
	s.AddTool(categoriesTool(), categoriesHandler(onto, rootID))
	s.AddTool(treeTool(), treeHandler(onto, rootID))
}

// --- term ---

func termTool() mcp.Tool {
	return mcp.NewTool("term",
		mcp.WithDescription("Show all tags of an ontology term by its ID."),
		mcp.WithString("id",
			mcp.Description("Term ID (e.g. HP:0000118)"),
			mcp.Required(),
		),
	)
}

func termHandler(onto *domain.Ontology) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := req.GetString("id", "")
		if id == "" {
			return toolError(fmt.Errorf("id is required"))
		}

		term, ok := onto.Get(id)
		if !ok {
			return toolError(fmt.Errorf("term %s not found", id))
		}

		var sb strings.Builder
		for _, tag := range term.Tags() {
			value, _ := term.Get(tag)
			fmt.Fprintf(&sb, "%s: %s\n", tsv.DisplayName(tag), value.String())
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- search ---

func searchTool() mcp.Tool {
	return mcp.NewTool("search",
		mcp.WithDescription("Fuzzy-search ontology terms by ID or name."),
		mcp.WithString("query",
			mcp.Description("Search query (at least 2 characters)"),
			mcp.Required(),
		),
	)
}

func searchHandler(onto *domain.Ontology) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query := req.GetString("query", "")
		if query == "" {
			return toolError(fmt.Errorf("query is required"))
		}

		var candidates []domain.SearchResult
		for term := range onto.Terms() {
			candidates = append(candidates, domain.SearchResult{
				ID:   term.ID,
				Name: term.Name(),
			})
		}
		results := commands.FuzzySort(candidates, query)

		if len(results) == 0 {
			return mcp.NewToolResultText("No results found."), nil
		}

		var sb strings.Builder
		for _, r := range results {
			fmt.Fprintf(&sb, "%s  %s\n", r.ID, r.Name)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- subtree ---

func subtreeTool() mcp.Tool {
	return mcp.NewTool("subtree",
		mcp.WithDescription("List all terms reachable from a term by following child links, breadth-first."),
		mcp.WithString("root_id",
			mcp.Description("Term ID to start from. Omit to start at the ontology root."),
		),
	)
}

func subtreeHandler(onto *domain.Ontology, rootID string) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := req.GetString("root_id", "")
		if start == "" {
			start = rootID
		}

		seq, err := onto.Subtree(start, nil)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		count := 0
		for term := range seq {
			if count == subtreeLimit {
				fmt.Fprintf(&sb, "... truncated at %d terms\n", subtreeLimit)
				break
			}
			fmt.Fprintf(&sb, "%s  %s\n", term.ID, term.Name())
			count++
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- categories ---

func categoriesTool() mcp.Tool {
	return mcp.NewTool("categories",
		mcp.WithDescription("List the top-level categories: the direct children of the ontology root."),
	)
}

func categoriesHandler(onto *domain.Ontology, rootID string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		root, ok := onto.Get(rootID)
		if !ok {
			return toolError(fmt.Errorf("root term %s not found", rootID))
		}

		children := root.Children()
		if len(children) == 0 {
			return mcp.NewToolResultText("The root term has no child terms."), nil
		}

		var sb strings.Builder
		for _, id := range children {
			name := ""
			if child, ok := onto.Get(id); ok {
				name = child.Name()
			}
			fmt.Fprintf(&sb, "%s  %s\n", id, name)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- tree ---

func treeTool() mcp.Tool {
	return mcp.NewTool("tree",
		mcp.WithDescription("Display the ontology hierarchy as an indented tree, starting from the root."),
		mcp.WithNumber("depth",
			mcp.Description("Maximum depth to render (default 2)"),
		),
	)
}

func treeHandler(onto *domain.Ontology, rootID string) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		depth := req.GetInt("depth", 2)
		if depth < 1 {
			depth = 1
		}

		root, err := onto.BuildTree(rootID)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		renderTree(&sb, root, "", depth)
		return mcp.NewToolResultText(sb.String()), nil
	}
}

func renderTree(sb *strings.Builder, node *domain.TreeNode, prefix string, depth int) {
	fmt.Fprintf(sb, "%s%s %s\n", prefix, node.ID, node.Name)
	if depth == 0 {
		return
	}
	for _, child := range node.Children {
		renderTree(sb, child, prefix+"  ", depth-1)
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}
