package client

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
)

// ImportNessus streams a Nessus export as the multipart field "file" into an
// existing report.
func (c *Client) ImportNessus(ctx context.Context, auth AuthHeader, clientID, reportID, filename string, r io.Reader) error {
	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)
	done := make(chan struct{})
	go func() {
		defer close(done)
		part, err := mw.CreateFormFile("file", filename)
		if err == nil {
			_, err = io.Copy(part, r)
		}
		if err == nil {
			err = mw.Close()
		}
		pw.CloseWithError(err)
	}()

	path := fmt.Sprintf("/client/%s/report/%s/import/nessus", clientID, reportID)
	err := c.request(ctx, http.MethodPost, path, &auth, pr, mw.FormDataContentType(), nil)

	// Unblock the writer if the request ended before draining the body; r must
	// not be read after return.
	pr.Close()
	<-done
	return err
}

// ReportURL is the web UI address of a report's findings. The UI lives on the
// API host without the API port and path prefix.
func ReportURL(baseURL, clientID, reportID string) string {
	ui := strings.ReplaceAll(baseURL, ":4350", "")
	ui = strings.ReplaceAll(ui, APIPath, "")
	return fmt.Sprintf("%s/client/%s/report/%s/flaws", strings.TrimRight(ui, "/"), clientID, reportID)
}
