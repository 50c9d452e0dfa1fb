package aladhan

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleBody = `{
  "code": 200,
  "status": "OK",
  "data": {
    "timings": {
      "Fajr": "04:20", "Sunrise": "05:35", "Dhuhr": "11:50", "Asr": "15:10",
      "Sunset": "17:43", "Maghrib": "17:45", "Isha": "18:55", "Imsak": "04:10",
      "Midnight": "23:50"
    },
    "date": {
      "readable": "01 Mar 2025",
      "timestamp": "1740787200",
      "hijri": {
        "date": "01-09-1446",
        "day": "1",
        "weekday": {"en": "Al Sabt", "ar": "السبت"},
        "month": {"number": 9, "en": "Ramaḍān", "ar": "رَمَضان"},
        "year": "1446",
        "designation": {"abbreviated": "AH", "expanded": "Anno Hegirae"}
      }
    }
  }
}`

func TestTimingsDecodesDay(t *testing.T) {
	var gotPath, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleBody))
	}))
	defer srv.Close()

	client := NewClient(srv.URL+"/", time.Second)
	day, err := client.Timings(context.Background(), Query{
		City:    "Semarang",
		Country: "Indonesia",
		Method:  20,
		Date:    time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Equal(t, "/v1/timingsByCity/01-03-2025", gotPath)
	assert.Equal(t, "city=Semarang&country=Indonesia&method=20", gotQuery)
	assert.Equal(t, "04:10", day.Timings.Imsak)
	assert.Equal(t, "18:55", day.Timings.Isha)
	assert.Equal(t, "01 Mar 2025", day.Date.Readable)
	assert.Equal(t, "Ramaḍān", day.Date.Hijri.Month.En)
	assert.Equal(t, 9, day.Date.Hijri.Month.Number)
	assert.Equal(t, "AH", day.Date.Hijri.Designation.Abbreviated)
}

func TestTimingsMissingFieldsAreEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"code":200,"status":"OK","data":{"timings":{"Fajr":"04:20"}}}`))
	}))
	defer srv.Close()

	day, err := NewClient(srv.URL, time.Second).Timings(context.Background(), Query{City: "Semarang", Country: "Indonesia"})
	require.NoError(t, err)
	assert.Equal(t, "04:20", day.Timings.Fajr)
	assert.Empty(t, day.Timings.Isha)
	assert.Empty(t, day.Date.Readable)
}

func TestTimingsNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"code":400,"status":"Bad Request","data":"Unable to find city"}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, time.Second).Timings(context.Background(), Query{City: "Nowhere"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrStatus))
	assert.Contains(t, err.Error(), "400 Bad Request")
}

func TestTimingsMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, time.Second).Timings(context.Background(), Query{City: "Semarang"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode timings response")
}

func TestTimingsCanceledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(sampleBody))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewClient(srv.URL, time.Second).Timings(ctx, Query{City: "Semarang"})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTimingsURLWithoutDateOrMethod(t *testing.T) {
	c := NewClient("", 0)
	got := c.timingsURL(Query{City: "Semarang", Country: "Indonesia", Method: MethodServerDefault})
	assert.Equal(t, DefaultBaseURL+"/v1/timingsByCity?city=Semarang&country=Indonesia", got)
}

func TestTimingsURLKeepsMethodZero(t *testing.T) {
	c := NewClient("", 0)
	got := c.timingsURL(Query{City: "Qom", Country: "Iran", Method: 0})
	assert.Equal(t, DefaultBaseURL+"/v1/timingsByCity?city=Qom&country=Iran&method=0", got)
}
