package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func plannerInput() PlannerInput {
	return PlannerInput{
		Destination: "Istanbul",
		Days:        5,
		Travelers:   "Keluarga (4 orang)",
		Interests:   []string{"Sejarah", "Kuliner Halal"},
	}
}

func TestGenerateItineraryReturnsDraft(t *testing.T) {
	var gotPrompt string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req generateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Contents, 1)
		gotPrompt = req.Contents[0].Parts[0].Text

		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Hari 1: Kedatangan & Wisata Kota"}]}}]}`))
	}))
	defer srv.Close()

	svc := PlannerService{Endpoint: srv.URL, APIKey: "k", Client: srv.Client()}
	draft := svc.GenerateItinerary(context.Background(), plannerInput())

	assert.Equal(t, "Hari 1: Kedatangan & Wisata Kota", draft)
	assert.Contains(t, gotPrompt, "Istanbul")
	assert.Contains(t, gotPrompt, "5 Days")
	assert.Contains(t, gotPrompt, "Sejarah, Kuliner Halal")
}

func TestGenerateItineraryFallsBackOnAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exhausted", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	svc := PlannerService{Endpoint: srv.URL, Client: srv.Client()}
	assert.Equal(t, PlannerFallback, svc.GenerateItinerary(context.Background(), plannerInput()))
}

func TestGenerateItineraryFallsBackOnTransportError(t *testing.T) {
	svc := PlannerService{Endpoint: "http://127.0.0.1:1"}
	assert.Equal(t, PlannerFallback, svc.GenerateItinerary(context.Background(), plannerInput()))
}

func TestGenerateItineraryEmptyCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	svc := PlannerService{Endpoint: srv.URL, Client: srv.Client()}
	assert.Equal(t, PlannerEmptyResponse, svc.GenerateItinerary(context.Background(), plannerInput()))
}
