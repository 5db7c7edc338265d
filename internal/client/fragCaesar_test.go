package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/seb0305/aenigma-verborum/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const amarePage = `<html><body>
<h2>Übersetzung</h2>
<table><tr><td>ignored</td></tr></table>
<div>
<h2>Kurzübersicht</h2>
<p>für amare</p>
</div>
<table>
<tr><th>Latein</th><th>Typ</th><th>Flexionsart</th><th>Form</th><th>Deutsch</th></tr>
<tr><td>amare</td><td>Verb</td><td>a-Konjugation</td><td>Infinitiv</td><td>lieben,<br>gern haben; mögen</td></tr>
<tr><td>amo</td><td>Verb</td><td>a-Konjugation</td><td>1. Person</td><td>ich liebe</td></tr>
<tr><td>broken</td></tr>
</table>
</body></html>`

const templumPage = `<html><body>
<h2>Kurzübersicht</h2>
<table>
<tr><td>Latein</td><td>Typ</td><td>Flexionsart</td><td>Form</td><td>Deutsch</td></tr>
<tr><td>templum</td><td>Nomen</td><td>o-Deklination</td><td>Nominativ</td><td>Tempel</td></tr>
</table>
</body></html>`

func newFragCaesarServer(t *testing.T) *FragCaesarAPI {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/lateinwoerterbuch/amare-uebersetzung.html", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(amarePage))
	})
	mux.HandleFunc("/lateinwoerterbuch/templum-uebersetzung.html", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(templumPage))
	})
	mux.HandleFunc("/lateinwoerterbuch/bene-uebersetzung.html", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><body><h2>Kurzübersicht</h2><table><tr><th>Latein</th></tr></table></body></html>`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return NewFragCaesarAPI(srv.URL+"/", srv.Client())
}

func TestFragCaesarAPI_Overview(t *testing.T) {
	t.Parallel()

	api := newFragCaesarServer(t)

	entries, err := api.Overview(context.Background(), "amare")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, models.LookupEntry{
		Latin:       "amare",
		Type:        "Verb",
		FlexionType: "a-Konjugation",
		Form:        "Infinitiv",
		German:      "lieben, gern haben; mögen",
	}, entries[0])
	assert.Equal(t, "amare", entries[1].Latin)
}

func TestFragCaesarAPI_Classify(t *testing.T) {
	t.Parallel()

	api := newFragCaesarServer(t)

	tests := []struct {
		headword string
		want     models.Classification
		wantErr  bool
	}{
		{headword: "amare", want: models.Classification{Category: models.CategoryVerb, Inflection: "a-Konjugation"}},
		{headword: "templum", want: models.Classification{Category: models.CategoryNoun, Inflection: "o-Deklination"}},
		{headword: "bene", wantErr: true},
		{headword: "missing", wantErr: true},
	}

	for _, tt := range tests {

		tt := tt
		t.Run(tt.headword, func(t *testing.T) {
			t.Parallel()

			got, err := api.Classify(context.Background(), tt.headword)
			if tt.wantErr {
				var lerr *models.LookupError
				require.True(t, errors.As(err, &lerr))
				assert.Equal(t, "classify", lerr.Op)
				assert.Equal(t, tt.headword, lerr.Headword)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFragCaesarAPI_AlternateMeanings(t *testing.T) {
	t.Parallel()

	api := newFragCaesarServer(t)

	got, err := api.AlternateMeanings(context.Background(), "amare")
	require.NoError(t, err)
	assert.Equal(t, []string{"lieben, gern haben; mögen", "lieben", "gern haben", "mögen"}, got)

	got, err = api.AlternateMeanings(context.Background(), "templum")
	require.NoError(t, err)
	assert.Equal(t, []string{"Tempel"}, got)
}

func TestFragCaesarAPI_Timeout(t *testing.T) {
	t.Parallel()

	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-block:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(func() {
		close(block)
		srv.Close()
	})

	api := NewFragCaesarAPI(srv.URL, srv.Client())
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := api.AlternateMeanings(ctx, "amare")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
