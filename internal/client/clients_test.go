package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/seb0305/aenigma-verborum/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMyMemoryAPI_AlternateMeanings(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/get", r.URL.Path)
		assert.Equal(t, "la|de", r.URL.Query().Get("langpair"))

		if r.URL.Query().Get("q") == "error" {
			_, _ = w.Write([]byte(`{"responseData":{"translatedText":"","responseStatus":403,"responseDetails":"limit"}}`))
			return
		}
		_, _ = w.Write([]byte(`{
			"responseData":{"translatedText":"lieben","match":0.9,"responseStatus":200},
			"matches":[{"translation":"lieben"},{"translation":"Lieben"},{"translation":"mögen "},{"translation":""}]
		}`))
	}))
	t.Cleanup(srv.Close)

	api := NewMyMemoryAPI(srv.URL, srv.Client())

	got, err := api.AlternateMeanings(context.Background(), "amare")
	require.NoError(t, err)
	assert.Equal(t, []string{"lieben", "mögen"}, got)

	_, err = api.AlternateMeanings(context.Background(), "error")
	var lerr *models.LookupError
	require.True(t, errors.As(err, &lerr))
	assert.Equal(t, "meanings", lerr.Op)
}

type stubSource struct {
	classification models.Classification
	meanings       []string
	err            error
	calls          int
}

func (s *stubSource) Classify(context.Context, string) (models.Classification, error) {
	s.calls++
	return s.classification, s.err
}

func (s *stubSource) AlternateMeanings(context.Context, string) ([]string, error) {
	s.calls++
	return s.meanings, s.err
}

func TestLookup_AlternateMeanings(t *testing.T) {
	t.Parallel()

	failing := &stubSource{err: errors.New("down")}

	tests := []struct {
		name    string
		sources []MeaningsI
		want    []string
		wantErr bool
	}{
		{
			name:    "union without duplicates",
			sources: []MeaningsI{&stubSource{meanings: []string{"lieben", "mögen"}}, &stubSource{meanings: []string{"mögen", "gern haben"}}},
			want:    []string{"lieben", "mögen", "gern haben"},
		},
		{
			name:    "one failing source is tolerated",
			sources: []MeaningsI{failing, &stubSource{meanings: []string{"lieben"}}},
			want:    []string{"lieben"},
		},
		{
			name:    "every source failing",
			sources: []MeaningsI{failing, failing},
			wantErr: true,
		},
	}

	for _, tt := range tests {

		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			l := NewLookup(zap.NewNop(), &stubSource{}, tt.sources...)

			got, err := l.AlternateMeanings(context.Background(), "amare")
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

type mapCache struct {
	mu   sync.Mutex
	data map[string][]byte
	err  error
}

func (m *mapCache) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return false, m.err
	}
	raw, ok := m.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (m *mapCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.data[key] = raw
	return nil
}

func TestCachedLookup(t *testing.T) {
	t.Parallel()

	t.Run("memoizes successful results", func(t *testing.T) {
		t.Parallel()

		src := &stubSource{
			classification: models.Classification{Category: models.CategoryVerb, Inflection: "a-Konjugation"},
			meanings:       []string{"lieben"},
		}
		c := NewCachedLookup(src, &mapCache{data: map[string][]byte{}}, time.Hour, zap.NewNop())

		for i := 0; i < 3; i++ {
			class, err := c.Classify(context.Background(), "amare")
			require.NoError(t, err)
			assert.Equal(t, src.classification, class)

			meanings, err := c.AlternateMeanings(context.Background(), "amare")
			require.NoError(t, err)
			assert.Equal(t, []string{"lieben"}, meanings)
		}
		assert.Equal(t, 2, src.calls)
	})

	t.Run("errors are not cached", func(t *testing.T) {
		t.Parallel()

		src := &stubSource{err: errors.New("down")}
		c := NewCachedLookup(src, &mapCache{data: map[string][]byte{}}, time.Hour, zap.NewNop())

		_, err := c.Classify(context.Background(), "amare")
		require.Error(t, err)
		_, err = c.Classify(context.Background(), "amare")
		require.Error(t, err)
		assert.Equal(t, 2, src.calls)
	})

	t.Run("broken cache falls through", func(t *testing.T) {
		t.Parallel()

		src := &stubSource{meanings: []string{"lieben"}}
		c := NewCachedLookup(src, &mapCache{err: errors.New("redis down")}, time.Hour, zap.NewNop())

		got, err := c.AlternateMeanings(context.Background(), "amare")
		require.NoError(t, err)
		assert.Equal(t, []string{"lieben"}, got)
	})
}
