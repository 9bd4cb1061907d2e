package catalog

import "github.com/aibox/boxctl/internal/domain"

// The backend speaks its own role enum and tool identifiers. The two
// tables below are the single source of truth for that vocabulary; they
// must stay bit-exact with the deployed backend.

// roleToBackend maps template ids to backend role enum values.
var roleToBackend = map[string]string{
	"lawyer":     "legal_advisor",
	"accountant": "accountant",
	"marketer":   "marketer",
	"designer":   "artist",
	"custom":     "custom",
}

// toolToBackend maps catalog tool ids to backend tool identifiers.
var toolToBackend = map[string]string{
	"pdf-parser":    "pdf_parser",
	"email":         "email_sender",
	"excel":         "spreadsheet_reader",
	"1c-api":        "c1_api_call",
	"doc-generator": "document_generator",
	"image-gen":     "image_generator",
	"web-search":    "web_search",
	"database":      "database_query",
}

var backendToTool = func() map[string]string {
	inv := make(map[string]string, len(toolToBackend))
	for id, backendID := range toolToBackend {
		inv[backendID] = id
	}
	return inv
}()

// RoleToBackend maps a template id to its backend role enum value.
// Unknown ids fall back to "custom"; this never fails.
func RoleToBackend(templateID string) string {
	if role, ok := roleToBackend[templateID]; ok {
		return role
	}
	return "custom"
}

// RoleToDisplay maps a backend role enum value to the display label of
// the template carrying that role. Unknown values pass through unchanged
// rather than being dropped; this asymmetry with the tool mapping is
// intentional and matches the backend contract.
func RoleToDisplay(backendRole string) string {
	for _, t := range Templates {
		if roleToBackend[t.ID] == backendRole {
			return t.Role
		}
	}
	return backendRole
}

// ToolToBackend maps a catalog tool id to its backend identifier.
// Unknown ids report ok=false; callers filter them out before hitting
// the wire.
func ToolToBackend(toolID string) (string, bool) {
	backendID, ok := toolToBackend[toolID]
	return backendID, ok
}

// ToolFromBackend maps a backend tool identifier to a catalog tool.
// Unmapped identifiers are tried verbatim against the catalog; if that
// also fails the tool is unresolvable and callers drop it.
func ToolFromBackend(backendID string) (domain.Tool, bool) {
	id, ok := backendToTool[backendID]
	if !ok {
		id = backendID
	}
	return ToolByID(id)
}
