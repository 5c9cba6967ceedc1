package models

// FactCheckRequest is the body accepted by POST /fact-check.
type FactCheckRequest struct {
	Claim string `json:"claim" validate:"notblank"`
}

// ClaimReview is a single publisher's review of a claim, flattened from the
// upstream search result.
type ClaimReview struct {
	Publisher string `json:"publisher"`
	Title     string `json:"title"`
	URL       string `json:"url"`
	Text      string `json:"text"`
	Rating    string `json:"rating"`
}

// FactCheckResponse is returned by POST /fact-check.
type FactCheckResponse struct {
	Claim   string        `json:"claim"`
	Found   bool          `json:"found"`
	Reviews []ClaimReview `json:"reviews"`
}

// NotFound builds the response for a claim with no matching fact checks.
func NotFound(claim string) *FactCheckResponse {
	return &FactCheckResponse{
		Claim:   claim,
		Found:   false,
		Reviews: []ClaimReview{},
	}
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
