package client

import (
	"context"
	"fmt"
)

// NewReport is the body of POST /client/{id}/report/create.
type NewReport struct {
	Name           string `json:"name"`
	Description    string `json:"description"`
	Status         string `json:"status"`
	Logistics      string `json:"logistics"`
	Template       string `json:"template"`
	StartDate      string `json:"start_date"`
	EndDate        string `json:"end_date"`
	FieldsTemplate string `json:"fields_template"`
}

// ImportReport is the report created to hold a Nessus import named after the scan file.
func ImportReport(name string) NewReport {
	return NewReport{
		Name:        name,
		Description: "Nessus import result: " + name,
		Status:      "Open",
	}
}

type createReportResponse struct {
	ReportID Field `json:"report_id"`
}

// CreateReport creates a report under clientID and returns its id.
func (c *Client) CreateReport(ctx context.Context, auth AuthHeader, clientID string, nr NewReport) (string, error) {
	var resp createReportResponse
	path := fmt.Sprintf("/client/%s/report/create", clientID)
	// JSON like every other endpoint here, not a form-encoded body.
	if err := c.postJSON(ctx, path, &auth, nr, &resp); err != nil {
		return "", err
	}
	if resp.ReportID == "" {
		return "", fmt.Errorf("%w: missing report_id", ErrMalformedResponse)
	}
	return string(resp.ReportID), nil
}
