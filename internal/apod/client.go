// Package apod fetches NASA's astronomy picture of the day and maps the
// result to what the dashboard panel shows.
package apod

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/manav03panchal/stardeck/internal/errors"
	"github.com/manav03panchal/stardeck/internal/logging"
)

// Media types reported by the API.
const (
	MediaImage = "image"
	MediaVideo = "video"
)

// Picture is the subset of the API response the dashboard uses.
type Picture struct {
	Title        string `json:"title"`
	MediaType    string `json:"media_type"`
	URL          string `json:"url"`
	HDURL        string `json:"hdurl,omitempty"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
	Explanation  string `json:"explanation"`
	Date         string `json:"date,omitempty"`
	Copyright    string `json:"copyright,omitempty"`
}

const pictureSchema = `{
  "type": "object",
  "required": ["title", "media_type", "url", "explanation"],
  "properties": {
    "title": {"type": "string"},
    "media_type": {"type": "string"},
    "url": {"type": "string"},
    "hdurl": {"type": "string"},
    "thumbnail_url": {"type": "string"},
    "explanation": {"type": "string"}
  }
}`

var pictureValidator = jsonschema.MustCompileString("stardeck://apod.json", pictureSchema)

// Client fetches the picture of the day.
type Client struct {
	http    *HTTPClient
	baseURL string
	apiKey  string
	log     *logging.ContextLogger
}

// Options configures a Client.
type Options struct {
	URL     string
	APIKey  string
	Timeout time.Duration
}

// NewClient creates a new APOD client.
func NewClient(opts Options) *Client {
	return &Client{
		http:    NewHTTPClient(opts.Timeout),
		baseURL: opts.URL,
		apiKey:  opts.APIKey,
		log:     logging.FromContext(context.Background()).With(logging.KeyOperation, "apod.fetch"),
	}
}

// RequestURL returns the endpoint with the api key and thumbnail flag.
func (c *Client) RequestURL() (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set("api_key", c.apiKey)
	q.Set("thumbs", "true")
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// Fetch performs a single request for today's picture. It never retries.
func (c *Client) Fetch(ctx context.Context) (*Picture, error) {
	endpoint, err := c.RequestURL()
	if err != nil {
		return nil, errors.NewSystemErrorWithOp("apod fetch", "invalid endpoint", err)
	}

	res, err := c.http.Get(ctx, endpoint)
	if err != nil {
		c.log.Warn("picture of the day unavailable",
			logging.KeyURL, logging.MaskURL(endpoint),
			logging.KeyStatus, res.StatusCode,
			logging.KeyError, err)
		return nil, errors.NewSystemErrorWithOp("apod fetch", "telescope offline",
			fmt.Errorf("%w: %w", errors.ErrNetworkUnavailable, err))
	}

	pic, err := decodePicture(res.Body)
	if err != nil {
		c.log.Warn("picture of the day malformed",
			logging.KeyURL, logging.MaskURL(endpoint),
			logging.KeyError, err)
		return nil, errors.NewSystemErrorWithOp("apod fetch", "unexpected response", err)
	}

	c.log.Debug("picture of the day fetched",
		logging.KeyStatus, res.StatusCode,
		logging.KeyDuration, res.Duration.Milliseconds())
	return pic, nil
}

func decodePicture(body []byte) (*Picture, error) {
	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, err
	}
	if err := pictureValidator.Validate(doc); err != nil {
		return nil, err
	}
	var pic Picture
	if err := json.Unmarshal(body, &pic); err != nil {
		return nil, err
	}
	return &pic, nil
}
