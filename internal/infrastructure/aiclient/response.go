package aiclient

import (
	"encoding/json"

	"google.golang.org/genai"
)

// Response is the normalized provider response: an ordered sequence of
// candidates, each carrying an ordered sequence of parts.
type Response struct {
	Candidates []Candidate `json:"candidates"`
}

// Candidate is one generation alternative.
type Candidate struct {
	Content Content `json:"content"`
}

// Content groups the parts of a candidate.
type Content struct {
	Parts []Part `json:"parts"`
}

// Part is one unit of a candidate. A part carries inline binary data, plain
// text, or nothing of interest. The REST surface spells the binary field
// either "inline_data" or "inlineData" depending on the API version, so both
// are accepted at unmarshal time.
type Part struct {
	Text   string
	Inline *Blob
}

// Blob carries inline binary data together with its declared media type.
type Blob struct {
	MIMEType string
	Data     Payload
}

// Payload holds inline binary data in whichever encoding the provider used:
// a base64 string straight off the wire, or raw bytes handed over by the SDK
// (which may themselves still be base64 text when the provider double-encodes).
type Payload struct {
	B64 string
	Raw []byte
}

// IsZero reports whether the payload carries no data at all.
func (p Payload) IsZero() bool {
	return p.B64 == "" && len(p.Raw) == 0
}

// Len returns the length of whichever representation is populated.
func (p Payload) Len() int {
	if p.B64 != "" {
		return len(p.B64)
	}
	return len(p.Raw)
}

type wireBlob struct {
	MIMEType    string `json:"mimeType"`
	MIMETypeAlt string `json:"mime_type"`
	Data        string `json:"data"`
}

func (b *wireBlob) blob() *Blob {
	if b == nil || b.Data == "" {
		return nil
	}
	mime := b.MIMEType
	if mime == "" {
		mime = b.MIMETypeAlt
	}
	return &Blob{
		MIMEType: mime,
		Data:     Payload{B64: b.Data},
	}
}

// UnmarshalJSON accepts both inline-data key spellings. A part with neither
// text nor usable inline data decodes to the zero Part and contributes
// nothing downstream.
func (p *Part) UnmarshalJSON(data []byte) error {
	var aux struct {
		Text          string    `json:"text"`
		InlineData    *wireBlob `json:"inline_data"`
		InlineDataAlt *wireBlob `json:"inlineData"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	p.Text = aux.Text
	p.Inline = aux.InlineData.blob()
	if p.Inline == nil {
		p.Inline = aux.InlineDataAlt.blob()
	}
	return nil
}

// ParseResponse decodes a raw generateContent wire payload.
func ParseResponse(data []byte) (*Response, error) {
	resp := &Response{}
	if err := json.Unmarshal(data, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// fromGenAI adapts an SDK response into the internal representation. The SDK
// surfaces inline data as raw bytes.
func fromGenAI(resp *genai.GenerateContentResponse) *Response {
	out := &Response{}
	if resp == nil {
		return out
	}

	for _, cand := range resp.Candidates {
		candidate := Candidate{}
		if cand != nil && cand.Content != nil {
			for _, part := range cand.Content.Parts {
				if part == nil {
					continue
				}
				p := Part{Text: part.Text}
				if part.InlineData != nil && len(part.InlineData.Data) > 0 {
					p.Inline = &Blob{
						MIMEType: part.InlineData.MIMEType,
						Data:     Payload{Raw: part.InlineData.Data},
					}
				}
				candidate.Content.Parts = append(candidate.Content.Parts, p)
			}
		}
		out.Candidates = append(out.Candidates, candidate)
	}
	return out
}
