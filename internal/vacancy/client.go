package vacancy

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/spigell/ats-analyzer/internal/logger"
)

const (
	apiURL          = "https://api.hh.ru"
	userAgent       = "spigell/ats-analyzer (spigelly@gmail.com)"
	contentType     = "application/json"
	contentEncoding = "gzip"
)

var (
	ErrInvalidID = errors.New("invalid vacancy id")

	idRegex = regexp.MustCompile(`^(?:https?://(?:[a-z]+\.)?hh\.[a-z]+/vacancy/)?(\d+)(?:[/?#].*)?$`)
)

// Client reads public vacancies from the HeadHunter API. No token is needed.
type Client struct {
	logger     *zap.Logger
	HTTPClient *http.Client
	UserAgent  string
	APIURL     string
}

func New(log *zap.Logger) *Client {
	return &Client{
		APIURL: apiURL,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger:    logger.OrNop(log),
		UserAgent: userAgent,
	}
}

// ParseID accepts a bare vacancy id or a vacancy page link and returns the id.
func ParseID(ref string) (string, error) {
	m := idRegex.FindStringSubmatch(strings.TrimSpace(ref))
	if m == nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidID, ref)
	}
	return m[1], nil
}

// Get fetches a single vacancy by id or link.
func (c *Client) Get(ctx context.Context, ref string) (*Vacancy, error) {
	id, err := ParseID(ref)
	if err != nil {
		return nil, err
	}

	var v Vacancy
	if err := c.getJSON(ctx, fmt.Sprintf("%s/vacancies/%s", strings.TrimRight(c.APIURL, "/"), url.PathEscape(id)), &v); err != nil {
		return nil, fmt.Errorf("get vacancy %s: %w", id, err)
	}

	c.logger.Debug("got vacancy from HH.ru",
		zap.String("id", v.ID),
		zap.String("name", v.Name),
		zap.Int("key_skills", len(v.KeySkills)),
	)

	return &v, nil
}

// JobDescription fetches a vacancy and renders it as plain job description text.
func (c *Client) JobDescription(ctx context.Context, ref string) (string, error) {
	v, err := c.Get(ctx, ref)
	if err != nil {
		return "", err
	}
	return v.Text()
}

func (c *Client) getJSON(ctx context.Context, u string, target any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}

	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set("Accept", contentType)
	req.Header.Set("Accept-Encoding", contentEncoding)

	c.logger.Debug("make request", zap.String("url", req.URL.String()))
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("bad status: %s", resp.Status)
	}

	var reader io.Reader = resp.Body
	if resp.Header.Get("Content-Encoding") == "gzip" {
		gzipReader, err := gzip.NewReader(resp.Body)
		if err != nil {
			return err
		}
		defer gzipReader.Close()
		reader = gzipReader
	}

	return json.NewDecoder(reader).Decode(target)
}
