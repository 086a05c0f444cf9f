package reddit

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"sync"
	"time"

	"reddit_analyzer/internal/domain"
)

const (
	SourceName = "reddit"

	// Reddit's listing endpoints cap out at 100 items per request. A
	// subreddit producing more than 100 posts inside the window will be
	// undercounted.
	listingLimit = 100

	// DefaultWindowHours is how far back FetchRecent looks by default.
	DefaultWindowHours = 24
)

// Config holds Reddit API endpoints and OAuth credentials.
type Config struct {
	BaseURL      string
	TokenURL     string
	UserAgent    string
	ClientID     string
	ClientSecret string
	Username     string
	Password     string
	Timeout      time.Duration
}

// Source fetches recent posts from the Reddit API using the OAuth
// password grant.
type Source struct {
	httpClient *http.Client
	baseURL    string
	tokenURL   string
	userAgent  string
	clientID   string
	secret     string
	username   string
	password   string
	logger     *slog.Logger

	mu          sync.Mutex
	token       string
	tokenExpiry time.Time
}

func New(cfg Config, logger *slog.Logger) *Source {
	return &Source{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		tokenURL:  cfg.TokenURL,
		userAgent: cfg.UserAgent,
		clientID:  cfg.ClientID,
		secret:    cfg.ClientSecret,
		username:  cfg.Username,
		password:  cfg.Password,
		logger:    logger.With("source", SourceName),
	}
}

// Name returns the source identifier used in logs and events.
func (s *Source) Name() string {
	return SourceName
}

// FetchRecent fetches up to 100 newest posts from the named subreddit,
// keeps those created within windowHours of now, and returns them sorted
// by score descending. Any API fault propagates as an UpstreamError; there
// is no retry.
func (s *Source) FetchRecent(ctx context.Context, subreddit string, windowHours int) ([]domain.Post, error) {
	if windowHours <= 0 {
		windowHours = DefaultWindowHours
	}

	s.logger.Info("fetching posts", "subreddit", subreddit, "window_hours", windowHours)

	listing, err := s.fetchListing(ctx, subreddit)
	if err != nil {
		return nil, &domain.UpstreamError{Service: SourceName, Err: err}
	}

	cutoff := time.Now().Add(-time.Duration(windowHours) * time.Hour)
	posts := s.transform(listing, cutoff)

	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].Score > posts[j].Score
	})

	s.logger.Info("fetched posts",
		"subreddit", subreddit,
		"listed", len(listing.Data.Children),
		"in_window", len(posts),
	)

	return posts, nil
}

func (s *Source) fetchListing(ctx context.Context, subreddit string) (*Listing, error) {
	token, err := s.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	reqURL := fmt.Sprintf("%s/r/%s/new?limit=%d&raw_json=1", s.baseURL, url.PathEscape(subreddit), listingLimit)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("listing r/%s: unexpected status %d", subreddit, resp.StatusCode)
	}

	var listing Listing
	if err := json.NewDecoder(resp.Body).Decode(&listing); err != nil {
		return nil, fmt.Errorf("decode listing: %w", err)
	}

	return &listing, nil
}

// accessToken returns a cached bearer token, requesting a new one via the
// password grant when the cached token has expired.
func (s *Source) accessToken(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token != "" && time.Now().Before(s.tokenExpiry) {
		return s.token, nil
	}

	form := url.Values{}
	form.Set("grant_type", "password")
	form.Set("username", s.username)
	form.Set("password", s.password)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("create token request: %w", err)
	}
	req.SetBasicAuth(s.clientID, s.secret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("execute token request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("token endpoint: unexpected status %d", resp.StatusCode)
	}

	var tr TokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return "", fmt.Errorf("decode token response: %w", err)
	}
	if tr.Error != "" || tr.AccessToken == "" {
		return "", fmt.Errorf("token endpoint: auth failed: %q", tr.Error)
	}

	s.token = tr.AccessToken
	// Renew a minute early so in-flight listing calls never carry an
	// expired token.
	s.tokenExpiry = time.Now().Add(time.Duration(tr.ExpiresIn)*time.Second - time.Minute)

	s.logger.Debug("obtained access token", "expires_in", tr.ExpiresIn)

	return s.token, nil
}

func (s *Source) transform(listing *Listing, cutoff time.Time) []domain.Post {
	posts := make([]domain.Post, 0, len(listing.Data.Children))

	for _, child := range listing.Data.Children {
		d := child.Data

		created := time.Unix(int64(d.CreatedUTC), 0).UTC()
		if !created.After(cutoff) {
			continue
		}

		content := d.Selftext
		posts = append(posts, domain.Post{
			RedditID:    d.ID,
			Title:       d.Title,
			Content:     &content,
			Score:       d.Score,
			NumComments: d.NumComments,
			URL:         "https://reddit.com" + d.Permalink,
			CreatedAt:   created,
		})
	}

	return posts
}
