package api

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clearline/recon-backend/internal/application/service"
	"github.com/clearline/recon-backend/internal/infrastructure/config"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cfg := &config.Config{}
	cfg.Matching.Threshold = 80
	cfg.Matching.AmountTolerance = 0.01
	svc := service.NewReconcileService(cfg, nil)
	return NewServer(DefaultConfig(), svc, nil)
}

// multipartUpload builds a multipart body from named CSV payloads and extra
// form fields.
func multipartUpload(t *testing.T, files map[string]string, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for field, content := range files {
		part, err := w.CreateFormFile(field, field+".csv")
		require.NoError(t, err)
		_, err = part.Write([]byte(content))
		require.NoError(t, err)
	}
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	srv.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, rec.Body.String())
}

func TestReconcileEndpoint(t *testing.T) {
	srv := newTestServer(t)

	bank := "Date,Description,Amount\n2024-01-15,Rent Jan,-100.00\n"
	ledger := "Date,Description,Amount\n2024-01-15,Rent January,-100.00\n"
	body, contentType := multipartUpload(t, map[string]string{"bank": bank, "ledger": ledger}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/reconcile", body)
	req.Header.Set("Content-Type", contentType)
	srv.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Success      bool             `json:"success"`
		Transactions []map[string]any `json:"transactions"`
		Mismatches   []map[string]any `json:"mismatches"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.True(t, resp.Success)
	require.Len(t, resp.Transactions, 2)
	assert.Empty(t, resp.Mismatches)

	tx := resp.Transactions[0]
	assert.Equal(t, "matched", tx["status"])
	assert.NotEmpty(t, tx["matchId"])
	assert.Equal(t, "Rent Jan", tx["Description"], "raw columns pass through to the response")
}

func TestReconcileEndpoint_MissingFile(t *testing.T) {
	srv := newTestServer(t)

	bank := "Date,Description,Amount\n2024-01-15,Rent,-100.00\n"
	body, contentType := multipartUpload(t, map[string]string{"bank": bank}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/reconcile", body)
	req.Header.Set("Content-Type", contentType)
	srv.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "ledger file is required")
}

func TestReconcileEndpoint_UnsupportedFormat(t *testing.T) {
	srv := newTestServer(t)

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	part, err := w.CreateFormFile("bank", "bank.pdf")
	require.NoError(t, err)
	_, err = part.Write([]byte("not a spreadsheet"))
	require.NoError(t, err)
	part, err = w.CreateFormFile("ledger", "ledger.csv")
	require.NoError(t, err)
	_, err = part.Write([]byte("Date,Amount\n2024-01-15,-1\n"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/reconcile", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	srv.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "bank file must be a CSV or XLSX file")
}

func TestReconcileEndpoint_InvalidThreshold(t *testing.T) {
	srv := newTestServer(t)

	csv := "Date,Description,Amount\n2024-01-15,Rent,-100.00\n"
	for _, bad := range []string{"abc", "101", "-5"} {
		body, contentType := multipartUpload(t,
			map[string]string{"bank": csv, "ledger": csv},
			map[string]string{"fuzzy_threshold": bad},
		)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/reconcile", body)
		req.Header.Set("Content-Type", contentType)
		srv.Router().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code, "threshold %q", bad)
		assert.Contains(t, rec.Body.String(), "fuzzy_threshold")
	}
}

func TestReconcileEndpoint_EmptyUpload(t *testing.T) {
	srv := newTestServer(t)

	csv := "Date,Description,Amount\n2024-01-15,Rent,-100.00\n"
	body, contentType := multipartUpload(t, map[string]string{"bank": "", "ledger": csv}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/reconcile", body)
	req.Header.Set("Content-Type", contentType)
	srv.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "bank file is empty")
}
