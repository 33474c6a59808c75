package apod

import (
	"encoding/json"
	"fmt"
	"maps"
)

// Picture is one APOD record. The typed fields cover what the dashboard
// renders; every field of the upstream body, known or not, is kept so the
// record can be handed on unchanged.
type Picture struct {
	URL         string `json:"url"`
	Title       string `json:"title,omitempty"`
	Explanation string `json:"explanation,omitempty"`
	Date        string `json:"date,omitempty"`
	MediaType   string `json:"media_type,omitempty"`
	HDURL       string `json:"hdurl,omitempty"`
	Copyright   string `json:"copyright,omitempty"`

	fields map[string]json.RawMessage
}

// pictureFields avoids recursion into Picture's own (Un)MarshalJSON.
type pictureFields Picture

// UnmarshalJSON decodes the typed fields and retains the full object.
func (p *Picture) UnmarshalJSON(data []byte) error {
	var typed pictureFields
	if err := json.Unmarshal(data, &typed); err != nil {
		return err
	}

	var all map[string]json.RawMessage
	if err := json.Unmarshal(data, &all); err != nil {
		return err
	}

	*p = Picture(typed)
	p.fields = all
	return nil
}

// MarshalJSON writes every retained upstream field, with the typed fields
// laid over them.
func (p Picture) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(p.fields))
	for k, v := range p.fields {
		out[k] = v
	}

	typed := map[string]string{
		"url":         p.URL,
		"title":       p.Title,
		"explanation": p.Explanation,
		"date":        p.Date,
		"media_type":  p.MediaType,
		"hdurl":       p.HDURL,
		"copyright":   p.Copyright,
	}
	for k, v := range typed {
		if v != "" {
			out[k] = v
		}
	}

	b, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("marshal picture: %w", err)
	}
	return b, nil
}

// HasExplanation reports whether the record carries an explanation. A field
// that is present but empty counts; one that is absent or null does not.
func (p *Picture) HasExplanation() bool {
	if p.Explanation != "" {
		return true
	}
	raw, ok := p.fields["explanation"]
	return ok && string(raw) != "null"
}

// Fields returns a copy of the raw upstream fields.
func (p *Picture) Fields() map[string]json.RawMessage {
	return maps.Clone(p.fields)
}
