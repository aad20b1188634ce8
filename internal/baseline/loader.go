// Package baseline seeds the player snapshot from the Old School hiscores.
package baseline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/RuneStatus_Go/internal/domain"
	"github.com/osse101/RuneStatus_Go/internal/logger"
)

// Config configures a Loader. Zero fields take the package defaults, except
// Retries, which counts extra attempts after a retryable failure: zero means
// a single attempt.
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	Retries    int
	RetryDelay time.Duration
	UserAgent  string
}

// Loader fetches a player's skills from the hiscores lite endpoint
type Loader struct {
	baseURL    string
	client     *http.Client
	retries    int
	retryDelay time.Duration
	userAgent  string
	upper      cases.Caser
}

// NewLoader creates a Loader
func NewLoader(cfg Config) *Loader {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Retries < 0 {
		cfg.Retries = 0
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = DefaultRetryDelay
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}

	return &Loader{
		baseURL:    cfg.BaseURL,
		client:     &http.Client{Timeout: cfg.Timeout},
		retries:    cfg.Retries,
		retryDelay: cfg.RetryDelay,
		userAgent:  cfg.UserAgent,
		upper:      cases.Upper(language.Und),
	}
}

// Load fetches username's skills and returns a snapshot holding only the
// username and stats. The combat level is derived from the fetched levels.
func (l *Loader) Load(ctx context.Context, username string) (*domain.Snapshot, error) {
	if strings.TrimSpace(username) == "" {
		return nil, domain.ErrUsernameRequired
	}

	log := logger.FromContext(ctx)
	log.Info(LogMsgFetching, "username", username)

	changes, err := l.FetchStats(ctx, username)
	if err != nil {
		return nil, err
	}

	stats := &domain.StatUpdate{
		Username:    username,
		CombatLevel: CombatLevel(changes),
		StatChanges: changes,
	}

	log.Info(LogMsgBaselineLoaded, "username", username, "skills", len(changes), "combat_level", stats.CombatLevel)
	return &domain.Snapshot{
		Username: domain.StringPtr(username),
		Stats:    stats,
	}, nil
}

// FetchStats returns one StatChange per skill row, in hiscores order
func (l *Loader) FetchStats(ctx context.Context, username string) ([]domain.StatChange, error) {
	body, err := l.fetch(ctx, username)
	if err != nil {
		return nil, err
	}
	return l.parse(body)
}

func (l *Loader) fetch(ctx context.Context, username string) (string, error) {
	endpoint, err := url.Parse(l.baseURL)
	if err != nil {
		return "", fmt.Errorf(ErrFmtBuildURL, domain.ErrHiscoresFailed, err)
	}
	q := endpoint.Query()
	q.Set(QueryParamPlayer, username)
	endpoint.RawQuery = q.Encode()

	log := logger.FromContext(ctx)

	var lastErr error
	for attempt := 0; attempt <= l.retries; attempt++ {
		if attempt > 0 {
			delay := l.retryDelay * time.Duration(1<<uint(attempt-1))
			log.Info(LogMsgRetrying, "attempt", attempt, "delay", delay)
			select {
			case <-ctx.Done():
				return "", fmt.Errorf("%w: %w", domain.ErrHiscoresFailed, ctx.Err())
			case <-time.After(delay):
			}
		}

		body, retry, err := l.do(ctx, endpoint.String())
		if err == nil {
			return body, nil
		}
		if !retry {
			return "", err
		}
		lastErr = err
	}

	return "", fmt.Errorf(ErrFmtRetries, domain.ErrHiscoresFailed, l.retries+1, lastErr)
}

// do performs one request and reports whether a failure is worth retrying
func (l *Loader) do(ctx context.Context, endpoint string) (string, bool, error) {
	log := logger.FromContext(ctx)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", false, fmt.Errorf("%w: %w", domain.ErrHiscoresFailed, err)
	}
	req.Header.Set("User-Agent", l.userAgent)

	resp, err := l.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", false, fmt.Errorf("%w: %w", domain.ErrHiscoresFailed, ctx.Err())
		}
		log.Warn(LogMsgRequestFailed, "error", err)
		return "", true, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return "", false, domain.ErrPlayerNotFound
	case resp.StatusCode >= http.StatusInternalServerError:
		log.Warn(LogMsgServerError, "status", resp.StatusCode)
		return "", true, fmt.Errorf(ErrFmtStatus, domain.ErrHiscoresFailed, resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return "", false, fmt.Errorf(ErrFmtStatus, domain.ErrHiscoresFailed, resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", true, fmt.Errorf(ErrFmtReadBody, domain.ErrHiscoresFailed, err)
	}
	return string(raw), false, nil
}

// parse reads the skill rows of a lite CSV body. Each row is
// "rank,level,xp"; unranked rows report -1 and get the level floors.
func (l *Loader) parse(body string) ([]domain.StatChange, error) {
	lines := strings.Split(strings.TrimSpace(body), "\n")

	changes := make([]domain.StatChange, 0, len(Skills)-1)
	for i, line := range lines {
		if i >= len(Skills) {
			break
		}
		line = strings.TrimSpace(line)
		if i == 0 {
			// Overall
			continue
		}

		fields := strings.Split(line, ",")
		if len(fields) != 3 {
			return nil, fmt.Errorf(ErrFmtBadRow, domain.ErrInvalidHiscores, i, Skills[i], line)
		}
		level, errLevel := strconv.Atoi(fields[1])
		xp, errXP := strconv.Atoi(fields[2])
		if errLevel != nil || errXP != nil {
			return nil, fmt.Errorf(ErrFmtBadRow, domain.ErrInvalidHiscores, i, Skills[i], line)
		}

		skill := l.upper.String(Skills[i])
		level = max(level, MinSkillLevel)
		if skill == domain.SkillHitpoints {
			level = max(level, MinHitpointsLevel)
		}

		changes = append(changes, domain.StatChange{
			Skill:        skill,
			Level:        level,
			BoostedLevel: level,
			XP:           max(xp, 0),
		})
	}

	if len(changes) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidHiscores, ErrMsgEmptyResult)
	}
	return changes, nil
}

// IsNotFound reports whether err means the player has no hiscores entry
func IsNotFound(err error) bool {
	return errors.Is(err, domain.ErrPlayerNotFound)
}
