// Package catalog holds the fixed reference data the console is built
// around: the tool catalog, the agent templates offered by the creation
// wizard, and the model list. All tables are initialized once and never
// mutated, so they are safe to read from anywhere without locking.
package catalog

import "github.com/aibox/boxctl/internal/domain"

// DefaultModel is the model assumed when a backend record carries none.
const DefaultModel = "llama3.1-8b"

// Model is a selectable LLM with a display label.
type Model struct {
	ID    string
	Label string
}

// Models lists the models offered at wizard step 4.
var Models = []Model{
	{ID: "llama3.1-8b", Label: "Llama 3.1 8B"},
	{ID: "llama3.1-70b", Label: "Llama 3.1 70B"},
	{ID: "mistral-7b", Label: "Mistral 7B"},
	{ID: "mixtral-8x7b", Label: "Mixtral 8x7B"},
}

// Tools is the full tool catalog. Agents may only reference tools that
// resolve here; anything else is dropped during normalization.
var Tools = []domain.Tool{
	{ID: "pdf-parser", Name: "PDF parser", Description: "Extracts text and data from PDF documents", Emoji: "📄"},
	{ID: "email", Name: "Email", Description: "Sends email messages", Emoji: "📧"},
	{ID: "excel", Name: "Spreadsheets", Description: "Works with Excel and Google Sheets", Emoji: "📊"},
	{ID: "1c-api", Name: "1C API", Description: "Integrates with the 1C accounting system", Emoji: "💼"},
	{ID: "doc-generator", Name: "Document generator", Description: "Produces documents in various formats", Emoji: "📝"},
	{ID: "image-gen", Name: "Image generator", Description: "Creates images from text descriptions", Emoji: "🎨"},
	{ID: "web-search", Name: "Web search", Description: "Searches the internet for information", Emoji: "🔍"},
	{ID: "database", Name: "Database", Description: "Queries the company database", Emoji: "🗄️"},
}

// Templates lists the wizard's starting configurations: four named roles
// plus the blank "custom" entry.
var Templates = []domain.AgentTemplate{
	{
		ID:            "lawyer",
		Name:          "Lawyer",
		Role:          "Lawyer",
		Emoji:         "⚖️",
		Description:   "Analyzes contracts and checks documents for legal compliance",
		DefaultPrompt: "You are an experienced lawyer with deep knowledge of the law. Your job is to analyze legal documents, surface risks, and give practical recommendations.",
		DefaultTools:  []string{"pdf-parser", "doc-generator"},
	},
	{
		ID:            "accountant",
		Name:          "Accountant",
		Role:          "Accountant",
		Emoji:         "📊",
		Description:   "Automates bookkeeping, prepares reports, integrates with 1C",
		DefaultPrompt: "You are a professional accountant. You help with bookkeeping, reporting, and working with primary documents.",
		DefaultTools:  []string{"1c-api", "excel", "doc-generator"},
	},
	{
		ID:            "marketer",
		Name:          "Marketer",
		Role:          "Marketer",
		Emoji:         "📢",
		Description:   "Creates social media content, analyzes audiences, plans posts",
		DefaultPrompt: "You are a creative SMM specialist. You produce engaging content, follow trends, and know how to work an audience.",
		DefaultTools:  []string{"image-gen", "web-search"},
	},
	{
		ID:            "designer",
		Name:          "Designer",
		Role:          "Designer",
		Emoji:         "🎨",
		Description:   "Creates graphics, banners, presentations and other visual material",
		DefaultPrompt: "You are a talented designer. You create visually appealing material and understand composition, color, and typography.",
		DefaultTools:  []string{"image-gen"},
	},
	{
		ID:            "custom",
		Name:          "Custom agent",
		Role:          "Custom",
		Emoji:         "⚙️",
		Description:   "Configure an agent for your own tasks from scratch",
		DefaultPrompt: "",
		DefaultTools:  []string{},
	},
}

// CustomTemplateID is the sentinel template that seeds an empty draft.
const CustomTemplateID = "custom"

// ToolByID resolves a tool against the catalog.
func ToolByID(id string) (domain.Tool, bool) {
	for _, t := range Tools {
		if t.ID == id {
			return t, true
		}
	}
	return domain.Tool{}, false
}

// TemplateByID resolves a template against the catalog.
func TemplateByID(id string) (domain.AgentTemplate, bool) {
	for _, t := range Templates {
		if t.ID == id {
			return t, true
		}
	}
	return domain.AgentTemplate{}, false
}

// ModelByID resolves a model against the catalog.
func ModelByID(id string) (Model, bool) {
	for _, m := range Models {
		if m.ID == id {
			return m, true
		}
	}
	return Model{}, false
}
