package genai

import (
	"encoding/json"
	"fmt"
	"strings"

	"legalease/internal/domain"
)

// BuildSimplifyPrompt returns the prompt for rewriting a legal document in
// plain English.
func BuildSimplifyPrompt(originalText string, docType domain.DocumentType) string {
	return fmt.Sprintf(`You are a legal document simplification expert. Convert the following %s text into plain English that an 8th grader can understand, while preserving all legal meaning and important details.

Original text:
%s

Please provide a simplified version that:
1. Uses simple, everyday language
2. Explains legal terms in parentheses
3. Maintains all important legal obligations and rights
4. Uses bullet points for complex lists
5. Keeps the same structure and meaning

Also rate the overall fairness of the document to the non-drafting party as an integer from 0 to 100.

Return ONLY valid JSON with no markdown formatting, no code fences, no explanation. The object must have exactly two keys: "simplified_text" (string) and "fairness_score" (integer).`, docType, originalText)
}

// BuildAnswerPrompt returns the prompt for answering a question about a
// document, optionally carrying prior conversation turns.
func BuildAnswerPrompt(question, documentContext string, docType domain.DocumentType, history []domain.ConversationTurn) string {
	var b strings.Builder
	fmt.Fprintf(&b, `You are a legal document AI assistant. Answer the user's question about their %s based on the document context provided.

Document Context:
%s

`, docType, documentContext)

	if len(history) > 0 {
		b.WriteString("Conversation so far:\n")
		for _, turn := range history {
			fmt.Fprintf(&b, "%s: %s\n", turn.Role, turn.Content)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, `User Question: %s

Please provide a helpful, accurate answer that:
1. References specific parts of the document when relevant
2. Explains legal implications in simple terms
3. Suggests next steps or considerations
4. Warns about potential risks or important deadlines
5. Recommends consulting a lawyer for complex issues

Answer:`, question)

	return b.String()
}

// BuildSecurityPrompt returns the prompt for metadata-based security analysis.
func BuildSecurityPrompt(metadata domain.DocumentMetadata) string {
	encoded, err := json.Marshal(metadata)
	if err != nil {
		encoded = []byte("{}")
	}
	return fmt.Sprintf(`Analyze this document metadata for potential security risks and authenticity issues:
%s

Provide a security analysis with:
1. A security score from 0-100 (100 being most secure)
2. List of identified risks
3. Recommendations for the user

Return as JSON format with fields: score, risks, recommendations. Return ONLY valid JSON with no markdown formatting, no code fences, no explanation.`, string(encoded))
}
