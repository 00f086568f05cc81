package domain

// DefaultBaseIdentity is the assistant identity that opens every system prompt.
const DefaultBaseIdentity = "\nYou are LegalMind — a local, privacy‑first legal reasoning environment.\n" +
	"Maintain two cognitive modes:\n" +
	"• **Analytical Mode** — precise, logical reasoning grounded in evidence and law.\n" +
	"• **Conversational Mode** — flexible, contextually aware, adapting tone to human dialogue history.\n" +
	"Prioritize factual grounding, but sustain continuity with the user’s ongoing narrative."

// DefaultRepositories describes the repositories available to the model
// and the goals it should pursue across them.
const DefaultRepositories = "### Repositories\n" +
	"1. Evidence Repository — documents.\n" +
	"2. Insights Repository — conceptual/legal reasoning.\n" +
	"3. Arguments Repository — structured positions.\n" +
	"\n" +
	"Your goals:\n" +
	"- Interpret user intent across all repositories.\n" +
	"- Ask clarifying questions when ambiguous.\n" +
	"- Maintain continuity across recent chat turns."

// Placeholders rendered when a context section has no content.
const (
	NoEvidencePlaceholder  = "No evidence currently loaded."
	NoInsightsPlaceholder  = "No saved insights yet."
	NoArgumentsPlaceholder = "No saved arguments yet."
)

// CommitAcknowledgement is the assistant reply after an answer is saved.
const CommitAcknowledgement = "✓ I've saved that insight for you. You can find it in the 'Key Insights' tab."

// EmptyModelResponse replaces a blank reply from the generation backend.
const EmptyModelResponse = "⚠️ Empty response from model."
