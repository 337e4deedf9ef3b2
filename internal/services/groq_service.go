package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/NyaySahayak/nyaysahayak_backend/internal/config"
)

// GroqService forwards prompts to the Groq chat-completions API
type GroqService interface {
	// Summarize checks whether the submitted text is a legal document and
	// summarizes it
	Summarize(request map[string]interface{}) (map[string]interface{}, error)

	// Analyze runs the structured legal-document analysis prompt
	Analyze(request map[string]interface{}) (map[string]interface{}, error)

	// GetAdvice answers a legal query, optionally scoped to a category
	GetAdvice(query, category string) (map[string]interface{}, error)

	// Categories lists the supported legal advice categories
	Categories() map[string]interface{}
}

// groqService GroqService implementation
type groqService struct {
	cfg        *config.Config
	httpClient *http.Client
}

// NewGroqService creates a GroqService
func NewGroqService(cfg *config.Config) GroqService {
	return &groqService{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Groq.Timeout,
		},
	}
}

const summarizeSystemPrompt = "Check whether the following is a legal document or not. " +
	"If it is, summarize it briefly. If it is not, inform the user that it does not appear to be a legal document and suggest verifying the input."

const analysisPromptHeader = "You are a legal document analysis expert. Analyze the provided document comprehensively " +
	"and structure your response with the following sections:\n\n" +
	"1. SUMMARY: A concise summary of the document in 2-3 sentences.\n" +
	"2. DOCUMENT TYPE: Identify what kind of legal document this is.\n" +
	"3. KEY PARTIES: List and briefly describe all relevant parties mentioned.\n" +
	"4. KEY PROVISIONS: Identify the main clauses or provisions.\n" +
	"5. LEGAL IMPLICATIONS: Explain potential legal consequences or implications.\n" +
	"6. RECOMMENDATIONS: Provide actionable advice regarding this document.\n" +
	"7. RED FLAGS: Highlight any concerning elements requiring special attention.\n" +
	"8. EXAMPLES: Provide suitable examples where possible so the document is easier to understand.\n\n" +
	"Format each section with headers and clear points, in plain language a non-lawyer can follow. " +
	"Attach any real incident that is similar to this where relevant.\n\n" +
	"Document to analyze: "

const adviceBasePrompt = "You are an experienced legal advisor specializing in Indian law. " +
	"Provide helpful, accurate, and practical legal guidance while always emphasizing " +
	"that this is general information and not a substitute for professional legal advice. " +
	"Always recommend consulting with a qualified attorney for specific legal matters."

// Summarize forwards a chat request with the summarization system prompt
// prepended. The Groq response body is returned as-is.
func (s *groqService) Summarize(request map[string]interface{}) (map[string]interface{}, error) {
	// streaming is not supported on this endpoint
	request["stream"] = false

	if messages, ok := request["messages"].([]interface{}); ok && len(messages) > 0 {
		systemMessage := map[string]interface{}{
			"role":    "system",
			"content": summarizeSystemPrompt,
		}
		request["messages"] = append([]interface{}{systemMessage}, messages...)
	}

	return s.forward(request)
}

// Analyze rewrites the first user message with the structured analysis prompt
// and forwards the request
func (s *groqService) Analyze(request map[string]interface{}) (map[string]interface{}, error) {
	request["stream"] = false

	if messages, ok := request["messages"].([]interface{}); ok && len(messages) > 0 {
		if first, ok := messages[0].(map[string]interface{}); ok {
			userContent, _ := first["content"].(string)
			first["content"] = analysisPromptHeader + userContent
		}
	}

	return s.forward(request)
}

// GetAdvice builds a category-scoped advice request and reshapes the Groq
// response into {success, answer, references, usage}
func (s *groqService) GetAdvice(query, category string) (map[string]interface{}, error) {
	messages := []map[string]string{
		{"role": "system", "content": adviceSystemPrompt(category)},
		{"role": "user", "content": adviceUserPrompt(query, category)},
	}

	groqRequest := map[string]interface{}{
		"messages":    messages,
		"model":       s.cfg.Groq.Model,
		"temperature": 0.3,
		"max_tokens":  1000,
		"stream":      false,
	}

	groqResponse, err := s.forward(groqRequest)
	if err != nil {
		return nil, err
	}

	return processAdviceResponse(groqResponse), nil
}

// Categories returns the static list of legal advice categories
func (s *groqService) Categories() map[string]interface{} {
	categories := []map[string]string{
		{"value": "family", "name": "Family Law", "description": "Marriage, divorce, child custody, adoption"},
		{"value": "property", "name": "Property Law", "description": "Real estate, land disputes, property rights"},
		{"value": "criminal", "name": "Criminal Law", "description": "FIR, bail, criminal defense, IPC matters"},
		{"value": "civil", "name": "Civil Law", "description": "Contracts, torts, civil disputes"},
		{"value": "consumer", "name": "Consumer Rights", "description": "Product issues, service deficiencies"},
		{"value": "employment", "name": "Employment Law", "description": "Labor rights, workplace disputes"},
		{"value": "other", "name": "Other", "description": "General legal matters"},
	}

	return map[string]interface{}{
		"categories": categories,
		"success":    true,
	}
}

// forward posts the request body to the Groq API and decodes the response
func (s *groqService) forward(request map[string]interface{}) (map[string]interface{}, error) {
	requestBody, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("failed to encode groq request: %v", err)
	}

	req, err := http.NewRequest(http.MethodPost, s.cfg.Groq.APIURL, bytes.NewBuffer(requestBody))
	if err != nil {
		return nil, fmt.Errorf("failed to build groq request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.cfg.Groq.APIKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGroqUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: groq returned HTTP %d", ErrGroqUnavailable, resp.StatusCode)
	}

	var groqResponse map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&groqResponse); err != nil {
		return nil, fmt.Errorf("%w: could not parse groq response: %v", ErrGroqUnavailable, err)
	}

	return groqResponse, nil
}

// adviceSystemPrompt returns the system prompt for the category
func adviceSystemPrompt(category string) string {
	switch strings.ToLower(category) {
	case "family":
		return adviceBasePrompt + " Focus on family law matters including marriage, divorce, " +
			"child custody, adoption, and domestic relations under Indian law."
	case "property":
		return adviceBasePrompt + " Focus on property law including real estate transactions, " +
			"property disputes, land records, and property rights under Indian law."
	case "criminal":
		return adviceBasePrompt + " Focus on criminal law matters including FIRs, bail procedures, " +
			"criminal defense, and rights of accused under Indian Penal Code."
	case "civil":
		return adviceBasePrompt + " Focus on civil law matters including contracts, torts, " +
			"civil disputes, and civil procedure under Indian law."
	case "consumer":
		return adviceBasePrompt + " Focus on consumer rights, product liability, service deficiencies, " +
			"and remedies under Consumer Protection Act, 2019."
	case "employment":
		return adviceBasePrompt + " Focus on employment law including labor rights, workplace disputes, " +
			"termination, and employment contracts under Indian labor laws."
	default:
		return adviceBasePrompt
	}
}

// adviceUserPrompt builds the plain-text formatted user prompt
func adviceUserPrompt(query, category string) string {
	var prompt strings.Builder
	prompt.WriteString("Legal Query")
	if category != "" {
		prompt.WriteString(" (" + strings.ToUpper(category) + " LAW)")
	}
	prompt.WriteString(":\n" + query)
	prompt.WriteString("\n\nPlease provide your response in a clear, structured format using the following sections:\n\n")
	prompt.WriteString("1. LEGAL GUIDANCE: Provide clear, practical advice in simple language\n\n")
	prompt.WriteString("2. RELEVANT LEGAL PROVISIONS: List applicable laws, sections, or acts\n\n")
	prompt.WriteString("3. NEXT STEPS: Suggest concrete actions the person can take\n\n")
	prompt.WriteString("4. IMPORTANT DISCLAIMER: Remind about professional legal consultation\n\n")
	prompt.WriteString("IMPORTANT: Do not use markdown formatting like ** or # or any other markdown syntax. ")
	prompt.WriteString("Use plain text only with clear section headings and numbered points where needed. ")
	prompt.WriteString("Keep the language simple and accessible for non-lawyers. ")
	prompt.WriteString("Write in a conversational tone as if explaining to a friend.")
	return prompt.String()
}

// processAdviceResponse extracts the assistant answer and legal references
// from a raw Groq response
func processAdviceResponse(groqResponse map[string]interface{}) map[string]interface{} {
	processed := map[string]interface{}{}

	content, ok := extractContent(groqResponse)
	if !ok {
		processed["success"] = false
		processed["error"] = "Failed to process AI response"
		processed["answer"] = "I apologize, but I encountered an error while processing your legal query. " +
			"Please try again or consult with a qualified attorney for assistance."
		return processed
	}

	processed["success"] = true
	processed["answer"] = content

	if references := extractLegalReferences(content); len(references) > 0 {
		processed["references"] = references
	}

	if usage, ok := groqResponse["usage"]; ok {
		processed["usage"] = usage
	}

	return processed
}

// extractContent pulls choices[0].message.content out of a Groq response
func extractContent(groqResponse map[string]interface{}) (string, bool) {
	choices, ok := groqResponse["choices"].([]interface{})
	if !ok || len(choices) == 0 {
		return "", false
	}
	choice, ok := choices[0].(map[string]interface{})
	if !ok {
		return "", false
	}
	message, ok := choice["message"].(map[string]interface{})
	if !ok {
		return "", false
	}
	content, ok := message["content"].(string)
	return content, ok
}

var legalReferencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`Section \d+[A-Za-z]* of [^\n.]+`),
	regexp.MustCompile(`Article \d+[A-Za-z]* of [^\n.]+`),
	regexp.MustCompile(`[A-Za-z\s]+ Act,? \d{4}`),
	regexp.MustCompile(`IPC Section \d+[A-Za-z]*`),
	regexp.MustCompile(`CrPC Section \d+[A-Za-z]*`),
	regexp.MustCompile(`CPC Section \d+[A-Za-z]*`),
}

// extractLegalReferences collects up to 5 distinct legal citations from the
// answer text
func extractLegalReferences(content string) []string {
	var references []string
	seen := map[string]bool{}

	for _, pattern := range legalReferencePatterns {
		for _, match := range pattern.FindAllString(content, -1) {
			if len(references) >= 5 {
				return references
			}
			reference := strings.TrimSpace(match)
			if !seen[reference] {
				seen[reference] = true
				references = append(references, reference)
			}
		}
	}

	return references
}
