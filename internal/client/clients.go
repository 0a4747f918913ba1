package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
)

// Field is a loosely typed list element. The client list mixes strings and
// numbers, so Field keeps strings verbatim and other JSON values in their
// literal form; null becomes "".
type Field string

func (f *Field) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*f = ""
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = Field(s)
	default:
		*f = Field(b)
	}
	return nil
}

// ClientRecord is one row of GET /client/list.
type ClientRecord struct {
	DocID []Field `json:"doc_id"`
	Data  []Field `json:"data"`
}

// Summary is the displayable part of a ClientRecord.
type Summary struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// Summary extracts id and name. Only records carrying exactly three data
// entries are recognised as clients.
func (r ClientRecord) Summary() (Summary, bool) {
	if len(r.Data) != 3 || len(r.DocID) == 0 || r.DocID[0] == "" {
		return Summary{}, false
	}
	return Summary{ID: string(r.DocID[0]), Name: string(r.Data[1])}, true
}

// Summaries converts records, returning how many were skipped.
func Summaries(records []ClientRecord) ([]Summary, int) {
	out := make([]Summary, 0, len(records))
	skipped := 0
	for _, r := range records {
		s, ok := r.Summary()
		if !ok {
			skipped++
			continue
		}
		out = append(out, s)
	}
	return out, skipped
}

// ListClients fetches every client visible to the session.
func (c *Client) ListClients(ctx context.Context, auth AuthHeader) ([]ClientRecord, error) {
	var records []ClientRecord
	if err := c.get(ctx, "/client/list", &auth, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// NewClient is the body of POST /client/create.
type NewClient struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	POC         string `json:"poc"`
	POCEmail    string `json:"poc_email"`
}

type createClientResponse struct {
	ClientID Field `json:"client_id"`
}

// CreateClient creates a client and returns its id.
func (c *Client) CreateClient(ctx context.Context, auth AuthHeader, nc NewClient) (string, error) {
	var resp createClientResponse
	if err := c.postJSON(ctx, "/client/create", &auth, nc, &resp); err != nil {
		return "", err
	}
	if resp.ClientID == "" {
		return "", fmt.Errorf("%w: missing client_id", ErrMalformedResponse)
	}
	return string(resp.ClientID), nil
}
