package models

import (
	"encoding/json"
	"testing"
)

func TestNotFoundSerializesEmptyReviews(t *testing.T) {
	data, err := json.Marshal(NotFound("the moon is cheese"))
	if err != nil {
		t.Fatalf("Failed to marshal FactCheckResponse: %v", err)
	}

	want := `{"claim":"the moon is cheese","found":false,"reviews":[]}`
	if string(data) != want {
		t.Errorf("Expected %s, got %s", want, data)
	}
}

func TestClaimReviewFieldNames(t *testing.T) {
	data, err := json.Marshal(ClaimReview{
		Publisher: "PolitiFact",
		Title:     "Fact check",
		URL:       "https://example.com/review",
		Text:      "False",
		Rating:    "False",
	})
	if err != nil {
		t.Fatalf("Failed to marshal ClaimReview: %v", err)
	}

	var result map[string]interface{}
	if err := json.Unmarshal(data, &result); err != nil {
		t.Fatalf("Failed to unmarshal JSON: %v", err)
	}

	for _, key := range []string{"publisher", "title", "url", "text", "rating"} {
		if _, ok := result[key]; !ok {
			t.Errorf("Expected %q field in %s", key, data)
		}
	}
	if len(result) != 5 {
		t.Errorf("Expected exactly 5 fields, got %d", len(result))
	}
}
