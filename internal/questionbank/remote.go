package questionbank

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RemoteProvider fetches questions from an external question API. Responses
// are cached in Redis when a client is configured. Any transport failure
// degrades to the generic filler list; the provider contract stays
// error-free.
type RemoteProvider struct {
	base   string
	http   *http.Client
	cache  *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewRemoteProvider(baseURL string, cache *redis.Client, ttl time.Duration, logger *zap.Logger) *RemoteProvider {
	return &RemoteProvider{
		base:   baseURL,
		http:   &http.Client{Timeout: 10 * time.Second},
		cache:  cache,
		ttl:    ttl,
		logger: logger,
	}
}

type remoteQuestionsResponse struct {
	Questions []string `json:"questions"`
}

func (p *RemoteProvider) Questions(ctx context.Context, role, domain, interviewType string, count int) []string {
	list, err := p.fetch(ctx, role, domain, interviewType)
	if err != nil {
		p.logger.Sugar().Warnw("question api unavailable, using fallback",
			"role", role, "domain", domain, "type", interviewType, "err", err)
		list = Fallback(interviewType, role)
	}
	return Sample(list, count)
}

func (p *RemoteProvider) fetch(ctx context.Context, role, domain, interviewType string) ([]string, error) {
	key := fmt.Sprintf("qbank:%s:%s:%s", interviewType, role, domain)

	if p.cache != nil {
		if raw, err := p.cache.Get(ctx, key).Result(); err == nil {
			var cached []string
			if json.Unmarshal([]byte(raw), &cached) == nil && len(cached) > 0 {
				return cached, nil
			}
		}
	}

	u, err := url.Parse(p.base + "/questions")
	if err != nil {
		return nil, err
	}
	q := u.Query()
	q.Set("role", role)
	q.Set("domain", domain)
	q.Set("type", interviewType)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, "GET", u.String(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := p.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("question api returned status %d", resp.StatusCode)
	}

	var body remoteQuestionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode question api response: %w", err)
	}
	if len(body.Questions) == 0 {
		return nil, fmt.Errorf("question api returned no questions")
	}

	if p.cache != nil {
		if b, err := json.Marshal(body.Questions); err == nil {
			if err := p.cache.Set(ctx, key, b, p.ttl).Err(); err != nil {
				p.logger.Sugar().Warnw("failed to cache questions", "key", key, "err", err)
			}
		}
	}

	return body.Questions, nil
}
