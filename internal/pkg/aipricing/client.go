package aipricing

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Client wraps the Gemini model used for listing price suggestions and
// condition grading. Responses are forced to JSON mode so they parse
// deterministically.
type Client struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewClient(ctx context.Context, apiKey string) (*Client, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	model := client.GenerativeModel("gemini-2.0-flash-001")
	model.ResponseMIMEType = "application/json"
	return &Client{client: client, model: model}, nil
}

// Close releases the underlying API connection.
func (c *Client) Close() error {
	return c.client.Close()
}

// Suggestion is the parsed model output for a pricing request.
type Suggestion struct {
	SuggestedPrice float64 `json:"suggested_price"`
	LowPrice       float64 `json:"low_price"`
	HighPrice      float64 `json:"high_price"`
	Grade          string  `json:"grade"`
	Reasoning      string  `json:"reasoning"`
}

// SuggestPrice asks the model for a market price band and a condition grade
// for a collectible described by the listing fields.
func (c *Client) SuggestPrice(ctx context.Context, title, category, condition string, year int64, recentViews int64) (*Suggestion, error) {
	popularity := "normal"
	if recentViews > 100 {
		popularity = "high"
	} else if recentViews < 10 && recentViews > 0 {
		popularity = "low"
	}

	prompt := fmt.Sprintf(`You are a pricing assistant for a consumer-to-consumer collectibles marketplace.

Item:
- Title: %q
- Category: %q
- Stated condition: %q
- Year: %d
- Demand signal: %s

Estimate a fair asking price in USD for a private sale, a realistic low/high
band, and a standard collectible condition grade (one of: mint, near_mint,
excellent, good, fair, poor).

Respond with JSON only, matching this schema:
{
  "suggested_price": 0.0,
  "low_price": 0.0,
  "high_price": 0.0,
  "grade": "near_mint",
  "reasoning": "one short paragraph"
}`, title, category, condition, year, popularity)

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, err
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("aipricing: empty model response")
	}

	txt, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return nil, fmt.Errorf("aipricing: unexpected response part type")
	}

	var out Suggestion
	if err := json.Unmarshal([]byte(txt), &out); err != nil {
		return nil, fmt.Errorf("aipricing: parse model response: %w", err)
	}
	return &out, nil
}
