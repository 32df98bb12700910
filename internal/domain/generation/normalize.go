package generation

import "renova-server/internal/infrastructure/aiclient"

// Normalize splits a provider response into its inline binary payloads and
// its plain-text parts, in response order. Only the first candidate is
// inspected. Parts missing both kinds of content contribute nothing; this
// never fails, an empty response yields two empty slices.
func Normalize(resp *aiclient.Response) ([]aiclient.Payload, []string) {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil, nil
	}

	var payloads []aiclient.Payload
	var texts []string
	for _, part := range resp.Candidates[0].Content.Parts {
		if part.Inline != nil && !part.Inline.Data.IsZero() {
			payloads = append(payloads, part.Inline.Data)
		}
		if part.Text != "" {
			texts = append(texts, part.Text)
		}
	}
	return payloads, texts
}
