package linkcheck

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/Roma7-7-7/survey-bot/internal/study"
)

// Checker probes survey URLs before a study goes live. A URL passes when the
// page loads and carries a non-empty <title>; an empty title is how survey
// platforms typically render a dead or misconfigured link.
type Checker struct {
	loadPage func(context.Context, string) ([]byte, error)
}

func New() *Checker {
	return &Checker{
		loadPage: loadPage,
	}
}

// Result is the outcome of probing a single URL.
type Result struct {
	URL   string
	Title string
	Err   error
}

// CheckAll probes every distinct URL of the configuration, in first-seen
// order across categories and conditions.
func (c *Checker) CheckAll(ctx context.Context, conf *study.Config) []Result {
	seen := make(map[string]bool)
	var results []Result

	for _, id := range study.Categories() {
		for _, list := range conf.Category(id).URLs {
			for _, url := range list {
				if seen[url] {
					continue
				}
				seen[url] = true

				title, err := c.Check(ctx, url)
				results = append(results, Result{URL: url, Title: title, Err: err})
			}
		}
	}

	return results
}

// Check fetches url and returns the page title.
func (c *Checker) Check(ctx context.Context, url string) (string, error) {
	html, err := c.loadPage(ctx, url)
	if err != nil {
		return "", err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("parse HTML: %w", err)
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		return "", errors.New("page has no title")
	}

	return title, nil
}

func loadPage(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("get page=%s: %w", url, err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get page=%s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("get page=%s: status=%s", url, resp.Status)
	}

	var res bytes.Buffer
	_, err = res.ReadFrom(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read page=%s: %w", url, err)
	}

	return res.Bytes(), nil
}
