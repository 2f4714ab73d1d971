package github

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

const calendarFixture = `{
  "data": {
    "viewer": {
      "contributionsCollection": {
        "contributionCalendar": {
          "weeks": [
            {"contributionDays": [
              {"date": "2024-01-07", "contributionCount": 3},
              {"date": "2024-01-08", "contributionCount": 0},
              {"date": "2024-01-09", "contributionCount": 1}
            ]},
            {"contributionDays": [
              {"date": "2024-01-14", "contributionCount": 0}
            ]}
          ]
        }
      }
    }
  }
}`

func TestContributionCounts(t *testing.T) {
	var gotAuth string
	var gotReq graphQLRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("bad request body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(calendarFixture))
	}))
	defer srv.Close()

	client := NewClient(context.Background(), "test-token")
	client.endpoint = srv.URL

	from := time.Date(2024, time.January, 7, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, time.January, 20, 0, 0, 0, 0, time.UTC)
	counts, err := client.ContributionCounts(context.Background(), from, to)
	if err != nil {
		t.Fatal(err)
	}

	want := map[string]int{
		"2024-01-07": 3,
		"2024-01-09": 1,
	}
	if diff := cmp.Diff(want, counts); diff != "" {
		t.Errorf("counts mismatch (-want +got):\n%s", diff)
	}

	if gotAuth != "Bearer test-token" {
		t.Errorf("Authorization = %q, want bearer token", gotAuth)
	}
	if gotReq.Variables["from"] != from.Format(time.RFC3339) {
		t.Errorf("from variable = %v, want %s", gotReq.Variables["from"], from.Format(time.RFC3339))
	}
}

func TestContributionCountsGraphQLError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"errors": [{"message": "bad credentials"}]}`))
	}))
	defer srv.Close()

	client := NewClient(context.Background(), "test-token")
	client.endpoint = srv.URL

	_, err := client.ContributionCounts(context.Background(), time.Now(), time.Now())
	if err == nil {
		t.Fatal("expected error from GraphQL errors payload")
	}
}

func TestContributionCountsHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewClient(context.Background(), "test-token")
	client.endpoint = srv.URL

	_, err := client.ContributionCounts(context.Background(), time.Now(), time.Now())
	if err == nil {
		t.Fatal("expected error from non-200 status")
	}
}
