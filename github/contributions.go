package github

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const contributionsQuery = `query($from: DateTime!, $to: DateTime!) {
  viewer {
    contributionsCollection(from: $from, to: $to) {
      contributionCalendar {
        weeks {
          contributionDays {
            date
            contributionCount
          }
        }
      }
    }
  }
}`

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type contributionsResponse struct {
	Data struct {
		Viewer struct {
			ContributionsCollection struct {
				ContributionCalendar struct {
					Weeks []struct {
						ContributionDays []struct {
							Date              string `json:"date"`
							ContributionCount int    `json:"contributionCount"`
						} `json:"contributionDays"`
					} `json:"weeks"`
				} `json:"contributionCalendar"`
			} `json:"contributionsCollection"`
		} `json:"viewer"`
	} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// ContributionCounts returns the viewer's contribution count per day
// for the span [from, to], keyed by civil date in YYYY-MM-DD form.
// GitHub caps the span at one year; callers with wider plans should
// expect an error rather than a truncated answer.
func (c *Client) ContributionCounts(ctx context.Context, from, to time.Time) (map[string]int, error) {
	body, err := json.Marshal(graphQLRequest{
		Query: contributionsQuery,
		Variables: map[string]any{
			"from": from.Format(time.RFC3339),
			"to":   to.Format(time.RFC3339),
		},
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("unable to query contribution calendar: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("contribution calendar query returned %s", resp.Status)
	}

	var parsed contributionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("unable to decode contribution calendar: %w", err)
	}
	if len(parsed.Errors) > 0 {
		return nil, fmt.Errorf("contribution calendar query failed: %s", parsed.Errors[0].Message)
	}

	counts := make(map[string]int)
	for _, week := range parsed.Data.Viewer.ContributionsCollection.ContributionCalendar.Weeks {
		for _, day := range week.ContributionDays {
			if day.ContributionCount > 0 {
				counts[day.Date] = day.ContributionCount
			}
		}
	}
	return counts, nil
}
