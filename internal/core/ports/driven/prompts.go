package driven

// PromptStore provides access to the assistant's prompt texts.
// Implementations may load prompts from files or embed them in the binary.
type PromptStore interface {
	// Load returns the prompt text for the given name.
	// If the prompt is not found, implementations return the built-in
	// default or an error.
	Load(name string) (string, error)

	// Reload clears any cached prompts, forcing fresh loads on next access.
	Reload()
}

// Well-known prompt names.
const (
	// PromptBaseIdentity is the assistant identity that opens every system prompt.
	PromptBaseIdentity = "base_identity"

	// PromptRepositories describes the repositories and goals available to the model.
	PromptRepositories = "repositories"
)
