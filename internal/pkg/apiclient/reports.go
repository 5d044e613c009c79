package apiclient

import (
	"context"
	"fmt"
	"mime"
	"net/url"
	"time"

	"github.com/Kazuchan1889/hexasuite-revamp-sub000/internal/domain/report"
)

func (c *Client) DownloadReport(ctx context.Context, req report.ExportRequest) (report.File, error) {
	query := url.Values{}
	if req.StartDate != "" {
		query.Set("startDate", req.StartDate)
	}
	if req.EndDate != "" {
		query.Set("endDate", req.EndDate)
	}

	resp, err := c.Download(ctx, req.Kind.Path(), query)
	if err != nil {
		return report.File{}, fmt.Errorf("download %s report: %w", req.Kind, err)
	}

	file := report.File{
		Name:        req.DefaultName(time.Now()),
		ContentType: resp.Header.Get("Content-Type"),
		Body:        resp.Body,
	}
	if _, params, err := mime.ParseMediaType(resp.Header.Get("Content-Disposition")); err == nil && params["filename"] != "" {
		file.Name = params["filename"]
	}
	if file.ContentType == "" {
		file.ContentType = "text/csv"
	}
	return file, nil
}
