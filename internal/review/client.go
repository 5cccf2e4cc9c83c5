// Package review implements the AI dietary review of customized order items.
// A review never fails from the caller's point of view: when no credential is
// configured, or the model call or response parsing fails, the client degrades
// to a local fallback so the restaurant can keep taking orders.
package review

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/tmc/langchaingo/llms"

	"tablechef/internal/models"
	"tablechef/internal/monitoring"
)

const (
	msgKeyMissing  = "Safety verification skipped (API Key missing). Your notes are saved."
	msgCallFailed  = "Could not verify with AI, but your notes have been saved."
	defaultMaxToks = 1024
)

// Client performs dietary reviews against an LLM. A nil model means no
// credential was configured and every review takes the fallback path.
type Client struct {
	model     llms.Model
	modelName string
	metrics   *monitoring.Metrics
}

// NewClient creates a review client. Pass a nil model to run in degraded
// mode; metrics may be nil in tests.
func NewClient(model llms.Model, modelName string, metrics *monitoring.Metrics) *Client {
	return &Client{model: model, modelName: modelName, metrics: metrics}
}

// Live reports whether the client has a configured model behind it
func (c *Client) Live() bool {
	return c != nil && c.model != nil
}

// ReviewOrderItem reviews one menu item against the customer's customization.
// It returns a result in all cases; errors are logged and absorbed into the
// fallback.
func (c *Client) ReviewOrderItem(ctx context.Context, item models.MenuItem, customization models.CustomizationOptions) models.AiAnalysisResult {
	if !c.Live() {
		log.Println("dietary review skipped: no API key configured")
		return c.fallback(msgKeyMissing, customization)
	}

	if c.metrics != nil {
		c.metrics.ReviewRequests.Inc()
	}
	prompt := buildPrompt(item, customization)

	resp, err := c.model.GenerateContent(ctx,
		[]llms.MessageContent{llms.TextParts(llms.ChatMessageTypeHuman, prompt)},
		llms.WithModel(c.modelName),
		llms.WithTemperature(0.2),
		llms.WithMaxTokens(defaultMaxToks),
		llms.WithJSONMode(),
	)
	if err != nil {
		log.Printf("dietary review failed for %q: %v", item.Name, err)
		return c.fallback(msgCallFailed, customization)
	}

	if resp == nil || len(resp.Choices) == 0 {
		log.Printf("dietary review returned no choices for %q", item.Name)
		return c.fallback(msgCallFailed, customization)
	}

	result, err := parseResult(resp.Choices[0].Content)
	if err != nil {
		log.Printf("dietary review parse failed for %q: %v", item.Name, err)
		return c.fallback(msgCallFailed, customization)
	}

	return result
}

// buildPrompt renders the head-chef review prompt for one order item
func buildPrompt(item models.MenuItem, c models.CustomizationOptions) string {
	tags := make([]string, len(item.Tags))
	for i, t := range item.Tags {
		tags[i] = string(t)
	}

	var b strings.Builder
	b.WriteString("You are an expert Head Chef and Food Safety Officer.\n")
	b.WriteString("Review the following order for potential conflicts between the Menu Item and the Customer's Customizations (especially allergies and dietary restrictions).\n\n")
	fmt.Fprintf(&b, "Menu Item: %s\n", item.Name)
	fmt.Fprintf(&b, "Description: %s\n", item.Description)
	fmt.Fprintf(&b, "Ingredients/Tags: %s\n\n", strings.Join(tags, ", "))
	b.WriteString("Customer Customization:\n")
	fmt.Fprintf(&b, "- Low Salt: %t\n", c.LowSalt)
	fmt.Fprintf(&b, "- Low Sugar: %t\n", c.LowSugar)
	fmt.Fprintf(&b, "- Spice Level (0-4): %d\n", c.SpiceLevel)
	fmt.Fprintf(&b, "- Allergy Notes: %q\n", c.AllergyNotes)
	fmt.Fprintf(&b, "- Special Requests: %q\n\n", c.SpecialRequests)
	b.WriteString("Task 1: Determine if there is a conflict (e.g., user is allergic to nuts but item contains nuts, or user wants vegan but item is meat-heavy and cannot be made vegan easily).\n")
	b.WriteString("Task 2: Create a concise \"Kitchen Ticket\" string that highlights the modifications in standardized kitchen shorthand (e.g., 'NO SALT, ALLERGY: PEANUT').\n\n")
	b.WriteString("Return a JSON object with exactly these fields:\n")
	b.WriteString(`{"safe": boolean, "message": string, "kitchenTicketSummary": string}`)
	return b.String()
}

// parseResult decodes the model output against the three-field contract.
// Any deviation from the shape is treated as a parse failure.
func parseResult(text string) (models.AiAnalysisResult, error) {
	text = stripFences(text)
	if strings.TrimSpace(text) == "" {
		return models.AiAnalysisResult{}, fmt.Errorf("empty response")
	}

	var raw struct {
		Safe                 *bool   `json:"safe"`
		Message              *string `json:"message"`
		KitchenTicketSummary *string `json:"kitchenTicketSummary"`
	}

	dec := json.NewDecoder(bytes.NewReader([]byte(text)))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&raw); err != nil {
		return models.AiAnalysisResult{}, fmt.Errorf("decode response: %w", err)
	}
	if raw.Safe == nil || raw.Message == nil || raw.KitchenTicketSummary == nil {
		return models.AiAnalysisResult{}, fmt.Errorf("response missing required fields")
	}

	return models.AiAnalysisResult{
		Safe:                 *raw.Safe,
		Message:              *raw.Message,
		KitchenTicketSummary: *raw.KitchenTicketSummary,
	}, nil
}

// stripFences removes a markdown code fence if the model wrapped its JSON in one
func stripFences(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}

// fallback synthesizes the degraded-mode result. The ticket keeps the
// customer's own words so the kitchen still sees them.
func (c *Client) fallback(message string, opts models.CustomizationOptions) models.AiAnalysisResult {
	if c != nil && c.metrics != nil {
		c.metrics.ReviewFallbacks.Inc()
	}
	return models.AiAnalysisResult{
		Safe:                 true,
		Message:              message,
		KitchenTicketSummary: "NOTES: " + opts.AllergyNotes + " " + opts.SpecialRequests,
	}
}
