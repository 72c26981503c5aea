package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"alfatih-backend/internal/utils"
)

// PlannerInput is the visitor's private-trip preference set.
type PlannerInput struct {
	Destination string   `json:"destination"`
	Days        int      `json:"days"`
	Travelers   string   `json:"travelers"`
	Interests   []string `json:"interests"`
}

// Fallback texts shown to visitors instead of raw API errors.
const (
	PlannerFallback      = "Maaf, sistem AI kami sedang mengalami kendala. Silakan coba lagi beberapa saat lagi."
	PlannerEmptyResponse = "Mohon maaf, saya tidak dapat membuat itinerary saat ini. Silakan coba lagi."
)

// PlannerService drafts private-trip itineraries through a hosted
// generative-text API. It never propagates failures: any transport or
// API problem yields the fallback message.
type PlannerService struct {
	Endpoint  string
	APIKey    string
	Client    *http.Client
	RequestID string
}

func (s PlannerService) client() *http.Client {
	if s.Client != nil {
		return s.Client
	}
	return &http.Client{Timeout: 30 * time.Second}
}

type promptPart struct {
	Text string `json:"text"`
}

type promptContent struct {
	Parts []promptPart `json:"parts"`
}

type generateRequest struct {
	Contents []promptContent `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content promptContent `json:"content"`
	} `json:"candidates"`
}

// GenerateItinerary returns an Indonesian draft itinerary for the input.
// The result is always human-presentable text.
func (s PlannerService) GenerateItinerary(ctx context.Context, input PlannerInput) string {
	req := generateRequest{
		Contents: []promptContent{{Parts: []promptPart{{Text: buildPrompt(input)}}}},
	}

	body, err := json.Marshal(req)
	if err != nil {
		return PlannerFallback
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.Endpoint, bytes.NewReader(body))
	if err != nil {
		return PlannerFallback
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", s.APIKey)

	resp, err := s.client().Do(httpReq)
	if err != nil {
		utils.LogEvent(s.RequestID, "planner", "generate_failed", err.Error())
		return PlannerFallback
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		utils.LogEvent(s.RequestID, "planner", "generate_failed", fmt.Sprintf("status=%d", resp.StatusCode))
		return PlannerFallback
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		utils.LogEvent(s.RequestID, "planner", "generate_failed", err.Error())
		return PlannerFallback
	}

	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return PlannerEmptyResponse
	}
	text := strings.TrimSpace(out.Candidates[0].Content.Parts[0].Text)
	if text == "" {
		return PlannerEmptyResponse
	}
	return text
}

func buildPrompt(input PlannerInput) string {
	return fmt.Sprintf(`You are the "Alfatih Private Trip Assistant", a world-class travel expert for Alfatih Dunia Wisata, a premium Indonesian travel agency specializing in Umrah and Halal-friendly international travel.

Task: Generate a detailed, inspiring, and practical PRIVATE TRIP draft itinerary based on user preferences.

User Preferences:
- Destination: %s
- Duration: %d Days
- Travelers: %s
- Key Interests: %s

Strict Requirements:
1. Language: The itinerary MUST be generated in Indonesian (Bahasa Indonesia).
2. Tone: Warm, professional, and Islamic-friendly (use "Assalamualaikum", "InshaAllah" where appropriate).
3. Halal Focus: For non-Muslim countries, always suggest specific areas or tips for finding Halal food and mention prayer facilities (Masjids or Musallas).
4. Structure: Start with an exciting "Draft Overview", then a day-by-day breakdown with titles (e.g., Hari 1: Kedatangan & Wisata Kota) and 3-4 activities per day, ending with "Pro Travel Tips".
5. Formatting: Use clean Markdown (Bold headers, bullet points).
6. Signature: Explicitly remind the user that this is a draft and they must contact Alfatih Dunia Wisata to get the official itinerary and pricing (Cek harga dan itinerary resmi ke tim Alfatih).`,
		input.Destination, input.Days, input.Travelers, strings.Join(input.Interests, ", "))
}
