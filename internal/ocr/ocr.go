// Package ocr talks to the external OCR sidecar that turns an uploaded chart
// image into free text. The sidecar is job based: publish a job, poll its
// status, download the text.
package ocr

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"

	"cricket-insights-go/internal/config"
	"cricket-insights-go/internal/logger"
)

type Client struct {
	baseURL string
	mock    bool
	http    *http.Client
}

func NewClient(cfg config.OCRConfig) *Client {
	timeout := time.Duration(cfg.TimeoutSec) * time.Second
	if timeout <= 0 {
		timeout = 12 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		mock:    cfg.Mock,
		http:    &http.Client{Timeout: timeout},
	}
}

type publishResponse struct {
	Code int    `json:"Code"`
	Data struct {
		JobID   string `json:"JobId"`
		Status  string `json:"Status"`
		TextURL string `json:"TextURL"`
	} `json:"Data"`
	Reason string `json:"Reason,omitempty"`
}

type statusResponse struct {
	Code int    `json:"Code"`
	Data struct {
		Status  string `json:"Status"` // Success, Queued, Processing, Failed
		TextURL string `json:"TextURL"`
	} `json:"Data"`
	Reason string `json:"Reason,omitempty"`
}

// ExtractText resolves an image URL into lower-cased chart text. With mock
// mode on it returns a canned caption for offline demos.
func (c *Client) ExtractText(imageURL string) (string, error) {
	if c.mock {
		return "mock ocr text: manhattan runs per over by team", nil
	}
	if c.baseURL == "" {
		return "", errors.New("ocr base url not set")
	}
	log := logger.Component("ocr").WithField("image_url", imageURL)

	jobID, existingURL, err := c.publish(imageURL)
	if err != nil {
		return "", err
	}
	if existingURL != "" {
		return c.download(existingURL)
	}
	finalURL, err := c.poll(jobID)
	if err != nil {
		return "", err
	}
	log.WithField("final_url", finalURL).Info("ocr completed, downloading text")
	return c.download(finalURL)
}

func (c *Client) publish(imageURL string) (string, string, error) {
	endpoint := c.baseURL + "/extract"
	var b bytes.Buffer
	w := multipart.NewWriter(&b)
	w.WriteField("imageLink", imageURL)
	_ = w.Close()
	req, _ := http.NewRequest("POST", endpoint, &b)
	req.Header.Set("Content-Type", w.FormDataContentType())
	var resp publishResponse
	if err := c.doJSON(req, &resp); err != nil {
		return "", "", err
	}
	if resp.Code != 200 {
		return "", "", fmt.Errorf("ocr publish error: code=%d reason=%s", resp.Code, resp.Reason)
	}
	if resp.Data.TextURL != "" && strings.ToLower(resp.Data.Status) == "success" {
		return "", resp.Data.TextURL, nil
	}
	return resp.Data.JobID, "", nil
}

func (c *Client) poll(jobID string) (string, error) {
	base := c.baseURL + "/status"
	for i := 0; i < 40; i++ {
		time.Sleep(1500 * time.Millisecond)
		u, _ := url.Parse(base)
		q := u.Query()
		q.Set("jobId", jobID)
		u.RawQuery = q.Encode()
		req, _ := http.NewRequest("GET", u.String(), nil)
		var s statusResponse
		if err := c.doJSON(req, &s); err != nil {
			continue
		}
		switch s.Data.Status {
		case "Success":
			return s.Data.TextURL, nil
		case "Queued", "Processing":
			continue
		case "Failed":
			return "", fmt.Errorf("ocr failed: %s", s.Reason)
		}
	}
	return "", fmt.Errorf("ocr timeout")
}

func (c *Client) download(textURL string) (string, error) {
	resp, err := c.http.Get(textURL)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("download failed: %s", string(b))
	}
	b, _ := io.ReadAll(resp.Body)
	return strings.ToLower(string(b)), nil
}

func (c *Client) doJSON(req *http.Request, target interface{}) error {
	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = c.http.Timeout
	var lastErr error
	op := func() error {
		resp, err := c.http.Do(req)
		if err != nil {
			lastErr = err
			return err
		}
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		if resp.StatusCode >= 500 {
			lastErr = fmt.Errorf("server error: %s", string(body))
			return lastErr
		}
		if len(body) == 0 {
			lastErr = fmt.Errorf("empty body")
			return lastErr
		}
		if err := json.Unmarshal(body, target); err != nil {
			lastErr = fmt.Errorf("json decode error: %v body=%s", err, string(body))
			return lastErr
		}
		return nil
	}
	if err := backoff.Retry(op, bo); err != nil {
		return lastErr
	}
	return nil
}
