package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/NyaySahayak/nyaysahayak_backend/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func groqTestConfig(apiURL string) *config.Config {
	return &config.Config{
		Groq: config.GroqConfig{
			APIURL:  apiURL,
			APIKey:  "test-key",
			Model:   "llama3-8b-8192",
			Timeout: 5 * time.Second,
		},
	}
}

func TestGroqSummarizePrependsSystemMessage(t *testing.T) {
	var received map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"A summary."}}]}`))
	}))
	defer server.Close()

	service := NewGroqService(groqTestConfig(server.URL))

	request := map[string]interface{}{
		"messages": []interface{}{
			map[string]interface{}{"role": "user", "content": "some document text"},
		},
		"stream": true,
	}

	response, err := service.Summarize(request)
	require.NoError(t, err)

	// streaming is forced off and the system prompt goes first
	assert.Equal(t, false, received["stream"])
	messages := received["messages"].([]interface{})
	require.Len(t, messages, 2)
	first := messages[0].(map[string]interface{})
	assert.Equal(t, "system", first["role"])
	assert.Contains(t, first["content"], "legal document")

	// the Groq body is passed through untouched
	assert.Contains(t, response, "choices")
}

func TestGroqAnalyzeRewritesUserMessage(t *testing.T) {
	var received map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	service := NewGroqService(groqTestConfig(server.URL))

	request := map[string]interface{}{
		"messages": []interface{}{
			map[string]interface{}{"role": "user", "content": "the rental agreement text"},
		},
	}

	_, err := service.Analyze(request)
	require.NoError(t, err)

	messages := received["messages"].([]interface{})
	require.Len(t, messages, 1)
	content := messages[0].(map[string]interface{})["content"].(string)
	assert.Contains(t, content, "legal document analysis expert")
	assert.Contains(t, content, "RED FLAGS")
	assert.Contains(t, content, "Document to analyze: the rental agreement text")
}

func TestGroqGetAdvice(t *testing.T) {
	var received map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.Write([]byte(`{
			"choices":[{"message":{"role":"assistant","content":"You can file a complaint under Section 12 of Consumer Protection Act, 2019. See also IPC Section 420."}}],
			"usage":{"total_tokens":42}
		}`))
	}))
	defer server.Close()

	service := NewGroqService(groqTestConfig(server.URL))

	response, err := service.GetAdvice("My landlord kept my deposit", "consumer")
	require.NoError(t, err)

	assert.Equal(t, true, response["success"])
	assert.Contains(t, response["answer"], "Consumer Protection Act")
	assert.NotNil(t, response["usage"])

	references := response["references"].([]string)
	assert.Contains(t, references, "IPC Section 420")

	// the request carries the scoped system prompt and fixed parameters
	assert.Equal(t, "llama3-8b-8192", received["model"])
	assert.Equal(t, false, received["stream"])
	messages := received["messages"].([]interface{})
	require.Len(t, messages, 2)
	system := messages[0].(map[string]interface{})
	assert.Contains(t, system["content"], "Consumer Protection Act, 2019")
	user := messages[1].(map[string]interface{})
	assert.Contains(t, user["content"], "CONSUMER LAW")
	assert.Contains(t, user["content"], "My landlord kept my deposit")
}

func TestGroqGetAdviceMalformedChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	service := NewGroqService(groqTestConfig(server.URL))

	response, err := service.GetAdvice("question", "")
	require.NoError(t, err)
	assert.Equal(t, false, response["success"])
	assert.Contains(t, response["answer"], "qualified attorney")
}

func TestGroqUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	service := NewGroqService(groqTestConfig(server.URL))

	_, err := service.Summarize(map[string]interface{}{})
	assert.ErrorIs(t, err, ErrGroqUnavailable)
}

func TestGroqCategories(t *testing.T) {
	service := NewGroqService(groqTestConfig("http://unused"))

	response := service.Categories()
	assert.Equal(t, true, response["success"])

	categories := response["categories"].([]map[string]string)
	assert.Len(t, categories, 7)
	assert.Equal(t, "family", categories[0]["value"])
}

func TestExtractLegalReferences(t *testing.T) {
	content := "Under Section 138 of Negotiable Instruments Act you may proceed. " +
		"Also see Consumer Protection Act, 2019 and CrPC Section 200. " +
		"Article 21 of the Constitution applies."

	references := extractLegalReferences(content)
	assert.NotEmpty(t, references)
	assert.LessOrEqual(t, len(references), 5)
	assert.Contains(t, references, "CrPC Section 200")
}
