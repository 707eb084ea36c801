package mcp

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/nikbrunner/bizbook/internal/command"
	"github.com/nikbrunner/bizbook/internal/errors"
	"github.com/nikbrunner/bizbook/internal/model"
)

var executeToolDef = mcp.NewTool(ToolExecute,
	mcp.WithDescription("Run one address book command line, e.g. "+
		"\"add n/John Doe p/98765432 e/johnd@example.com a/John street t/friends\", "+
		"\"list t/friends\", \"undo\". Use \"man\" to list commands."),
	mcp.WithString("command",
		mcp.Required(),
		mcp.Description("The command line to run"),
	),
)

var contactsToolDef = mcp.NewTool(ToolContacts,
	mcp.WithDescription("List persons as JSON. By default returns the currently displayed "+
		"(filtered) list with the index numbers that edit and delete refer to."),
	mcp.WithBoolean("all",
		mcp.Description("Return every person instead of the filtered list"),
	),
)

var foldersToolDef = mcp.NewTool(ToolFolders,
	mcp.WithDescription("List tag folders with their live person counts, and business feature declarations."),
)

// ExecuteResponse is the result of bizbook_execute.
type ExecuteResponse struct {
	Feedback string `json:"feedback"`
	Manual   string `json:"manual,omitempty"`
	Exit     bool   `json:"exit,omitempty"`
}

// ContactJSON is one person in bizbook_contacts output.
type ContactJSON struct {
	Index   int      `json:"index"`
	Name    string   `json:"name"`
	Phone   string   `json:"phone"`
	Email   string   `json:"email"`
	Address string   `json:"address"`
	Tags    []string `json:"tags"`
}

// ContactsResponse is the result of bizbook_contacts.
type ContactsResponse struct {
	Filter   string        `json:"filter"`
	Total    int           `json:"total"`
	Contacts []ContactJSON `json:"contacts"`
}

// FolderJSON is one tag folder in bizbook_folders output.
type FolderJSON struct {
	Name        string   `json:"name"`
	Tags        []string `json:"tags"`
	Count       int      `json:"count"`
	UserCreated bool     `json:"userCreated"`
}

// FeatureJSON is one business feature in bizbook_folders output.
type FeatureJSON struct {
	Name  string   `json:"name"`
	Tags  []string `json:"tags"`
	Count int      `json:"count"`
}

// FoldersResponse is the result of bizbook_folders.
type FoldersResponse struct {
	Folders  []FolderJSON  `json:"folders"`
	Features []FeatureJSON `json:"features"`
}

// HandleExecute runs one command line.
func (h *Handlers) HandleExecute(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	line := req.GetString("command", "")
	if strings.TrimSpace(line) == "" {
		return errorResult(errors.NewInvalidFormat(command.HelpUsage)), nil
	}

	h.mu.Lock()
	res, err := h.manager.Execute(line)
	h.mu.Unlock()

	if err != nil {
		h.log.Debug().Err(err).Str("tool", ToolExecute).Msg("command failed")
		if errors.Is(err, errors.ErrStorage) {
			return errorResult(err, res.Feedback), nil
		}
		return errorResult(err), nil
	}

	out := ExecuteResponse{Feedback: res.Feedback, Exit: res.Exit}
	if res.ShowHelp {
		out.Manual = manualText()
	}
	return mcp.NewToolResultJSON(out)
}

// HandleContacts lists persons.
func (h *Handlers) HandleContacts(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	all := req.GetBool("all", false)

	h.mu.Lock()
	defer h.mu.Unlock()

	store := h.manager.Store()
	persons := store.FilteredPersons()
	filter := store.Filter().String()
	total := len(store.Persons())
	if all {
		persons = store.Persons()
		filter = model.ShowAll().String()
	}

	out := ContactsResponse{
		Filter:   filter,
		Total:    total,
		Contacts: make([]ContactJSON, len(persons)),
	}
	for i, p := range persons {
		out.Contacts[i] = ContactJSON{
			Index:   i + 1,
			Name:    string(p.Name),
			Phone:   string(p.Phone),
			Email:   string(p.Email),
			Address: string(p.Address),
			Tags:    tagNames(p.Tags),
		}
	}
	return mcp.NewToolResultJSON(out)
}

// HandleFolders lists tag folders and feature declarations.
func (h *Handlers) HandleFolders(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	store := h.manager.Store()
	folders := store.Folders()
	features := store.Features()
	persons := store.Persons()

	out := FoldersResponse{
		Folders:  make([]FolderJSON, len(folders)),
		Features: make([]FeatureJSON, len(features)),
	}
	for i, f := range folders {
		out.Folders[i] = FolderJSON{
			Name:        f.DisplayName,
			Tags:        tagNames(f.QueryTags),
			Count:       f.Count,
			UserCreated: f.UserCreated,
		}
	}
	for i, f := range features {
		count := 0
		for _, p := range persons {
			if f.Covers(p) {
				count++
			}
		}
		out.Features[i] = FeatureJSON{Name: f.Name, Tags: tagNames(f.Tags), Count: count}
	}
	return mcp.NewToolResultJSON(out)
}

// errorResult creates an MCP error result carrying the error code and the
// user-facing message. feedback is the result of a command that ran but
// could not be saved.
func errorResult(err error, feedback ...string) *mcp.CallToolResult {
	errorObj := map[string]any{"message": err.Error()}
	if e, ok := err.(*errors.Error); ok {
		errorObj["code"] = e.Code
		errorObj["kind"] = e.Kind().String()
	}
	if len(feedback) > 0 && feedback[0] != "" {
		errorObj["feedback"] = feedback[0]
	}

	content, _ := json.Marshal(map[string]any{"error": errorObj})
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.TextContent{Type: "text", Text: string(content)}},
		IsError: true,
	}
}

func manualText() string {
	var b strings.Builder
	for _, e := range command.Manual() {
		b.WriteString(e.Summary())
		b.WriteString("\n")
	}
	return b.String()
}

func tagNames(tags []model.Tag) []string {
	names := make([]string, len(tags))
	for i, t := range tags {
		names[i] = t.Name
	}
	return names
}
