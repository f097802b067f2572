// Package mcpserver exposes the CMS content as MCP (Model Context Protocol)
// tools over stdio, so LLM agents can browse and edit the site.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/omegapc/omegacms/internal/chat"
	"github.com/omegapc/omegacms/internal/content"
	"github.com/omegapc/omegacms/internal/models"
)

// Server wraps the MCP server with content tools.
type Server struct {
	mcp       *server.MCPServer
	cache     *content.Cache
	assistant *chat.Service
}

// New creates an MCP server with all content tools registered.
func New(cache *content.Cache, assistant *chat.Service) *Server {
	s := &Server{cache: cache, assistant: assistant}

	s.mcp = server.NewMCPServer(
		"OMEGA CMS",
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("get_company_info",
		mcp.WithDescription("Read the company profile: name, contacts, mission, vision."),
	), s.getCompanyInfo)

	s.mcp.AddTool(mcp.NewTool("list_services",
		mcp.WithDescription("List the service catalog with short descriptions."),
	), s.listServices)

	s.mcp.AddTool(mcp.NewTool("get_service",
		mcp.WithDescription("Read one service entry in full."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Service id, e.g. rope-access")),
	), s.getService)

	s.mcp.AddTool(mcp.NewTool("list_blog_posts",
		mcp.WithDescription("List published blog posts, newest first."),
	), s.listBlogPosts)

	s.mcp.AddTool(mcp.NewTool("create_blog_post",
		mcp.WithDescription("Publish a new blog post. The post is prepended to the list."),
		mcp.WithString("title", mcp.Required(), mcp.Description("Post title")),
		mcp.WithString("content", mcp.Required(), mcp.Description("Post body")),
		mcp.WithString("author", mcp.Description("Author name (optional)")),
		mcp.WithString("category", mcp.Description("Category label (optional)")),
	), s.createBlogPost)

	s.mcp.AddTool(mcp.NewTool("ask_assistant",
		mcp.WithDescription("Ask the site chat assistant a visitor-style question."),
		mcp.WithString("message", mcp.Required(), mcp.Description("The question text")),
	), s.askAssistant)

	// Resource: the company profile.
	s.mcp.AddResource(
		mcp.NewResource("omega://company-profile", "Company Profile",
			mcp.WithResourceDescription("The company profile record served on the site."),
			mcp.WithMIMEType("application/json"),
		),
		s.readCompanyProfileResource,
	)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

func (s *Server) getCompanyInfo(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	out, _ := json.MarshalIndent(s.cache.CompanyInfo(), "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) listServices(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	type item struct {
		ID    string `json:"id"`
		Title string `json:"title"`
		Short string `json:"shortDescription"`
	}
	services := s.cache.Services()
	items := make([]item, len(services))
	for i, svc := range services {
		items[i] = item{ID: svc.ID, Title: svc.Title, Short: svc.ShortDescription}
	}
	out, _ := json.MarshalIndent(items, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) getService(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	for _, svc := range s.cache.Services() {
		if svc.ID == id {
			out, _ := json.MarshalIndent(svc, "", "  ")
			return mcp.NewToolResultText(string(out)), nil
		}
	}
	return mcp.NewToolResultError(fmt.Sprintf("service not found: %s", id)), nil
}

func (s *Server) listBlogPosts(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	out, _ := json.MarshalIndent(s.cache.BlogPosts(), "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) createBlogPost(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	title, err := req.RequireString("title")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	body, err := req.RequireString("content")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	author := "OMEGA Team"
	if a, aerr := req.RequireString("author"); aerr == nil && a != "" {
		author = a
	}
	category := "News"
	if c, cerr := req.RequireString("category"); cerr == nil && c != "" {
		category = c
	}

	post := models.BlogPost{
		ID:       fmt.Sprintf("post-%d", time.Now().UnixNano()),
		Title:    title,
		Excerpt:  excerpt(body),
		Content:  body,
		Author:   author,
		Date:     time.Now().Format("2006-01-02"),
		Category: category,
	}
	if err := s.cache.AddBlogPost(ctx, post); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("created: %s", post.ID)), nil
}

func (s *Server) askAssistant(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	message, err := req.RequireString("message")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	reply, err := s.assistant.Send(ctx, "mcp", message)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(reply.Text), nil
}

func (s *Server) readCompanyProfileResource(_ context.Context, _ mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	out, err := json.MarshalIndent(s.cache.CompanyInfo(), "", "  ")
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "omega://company-profile",
			MIMEType: "application/json",
			Text:     string(out),
		},
	}, nil
}

func excerpt(body string) string {
	const max = 160
	if len(body) <= max {
		return body
	}
	return body[:max] + "..."
}
