// Package handlers implements the HTTP endpoints of the reconciliation API.
package handlers

import (
	"errors"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/clearline/recon-backend/internal/api/dto"
	"github.com/clearline/recon-backend/internal/application/service"
	"github.com/clearline/recon-backend/internal/domain/normalizer"
	"github.com/clearline/recon-backend/internal/domain/transaction"
	"github.com/clearline/recon-backend/internal/ingest"
)

// ReconcileHandler handles reconciliation requests.
type ReconcileHandler struct {
	service *service.ReconcileService
	logger  *slog.Logger
	maxRows int
}

// NewReconcileHandler creates a reconcile handler. maxRows caps each
// uploaded dataset (0 = no cap); a smaller per-request max_rows wins.
func NewReconcileHandler(svc *service.ReconcileService, logger *slog.Logger, maxRows int) *ReconcileHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReconcileHandler{service: svc, logger: logger, maxRows: maxRows}
}

// Reconcile handles POST /reconcile.
//
// Multipart form with two files, "bank" and "ledger", plus optional
// "fuzzy_threshold" (0-100, default from config) and "max_rows" parameters.
// Responds with the combined transaction list and the mismatch report.
func (h *ReconcileHandler) Reconcile(c *gin.Context) {
	start := time.Now()

	bankFile, err := c.FormFile("bank")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("bank file is required"))
		return
	}
	ledgerFile, err := c.FormFile("ledger")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("ledger file is required"))
		return
	}

	threshold, ok := h.intParam(c, "fuzzy_threshold", -1)
	if !ok || threshold < -1 || threshold > 100 {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("fuzzy_threshold must be an integer between 0 and 100"))
		return
	}
	maxRows, ok := h.intParam(c, "max_rows", 0)
	if !ok || maxRows < 0 {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("max_rows must be a non-negative integer"))
		return
	}
	if h.maxRows > 0 && (maxRows == 0 || maxRows > h.maxRows) {
		maxRows = h.maxRows
	}

	h.logger.Info("reconciliation started",
		"bank_file", bankFile.Filename,
		"ledger_file", ledgerFile.Filename,
		"threshold", threshold,
		"max_rows", maxRows,
	)

	bankRows, ok := h.readUpload(c, bankFile, "bank")
	if !ok {
		return
	}
	ledgerRows, ok := h.readUpload(c, ledgerFile, "ledger")
	if !ok {
		return
	}

	result, err := h.service.Reconcile(c.Request.Context(), service.ReconcileRequest{
		Bank:      bankRows,
		Ledger:    ledgerRows,
		Threshold: threshold,
		MaxRows:   maxRows,
	})
	if err != nil {
		switch {
		case errors.Is(err, normalizer.ErrEmptyDataset):
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse("one of the uploaded files is empty"))
		case errors.Is(err, service.ErrInvalidThreshold):
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
		default:
			h.logger.Error("reconciliation failed", "error", err)
			c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("an error occurred during reconciliation"))
		}
		return
	}

	h.logger.Info("reconciliation finished",
		"transactions", len(result.Transactions),
		"mismatches", len(result.Mismatches),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	c.JSON(http.StatusOK, dto.NewReconcileResponse(result))
}

// readUpload opens and parses one uploaded file, writing the error response
// itself when parsing fails.
func (h *ReconcileHandler) readUpload(c *gin.Context, fh *multipart.FileHeader, name string) ([]transaction.RawRow, bool) {
	f, err := fh.Open()
	if err != nil {
		h.logger.Error("opening upload failed", "file", fh.Filename, "error", err)
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("could not read uploaded file"))
		return nil, false
	}
	defer f.Close()

	rows, err := ingest.ReadFile(f, fh.Filename)
	if err != nil {
		switch {
		case errors.Is(err, ingest.ErrUnsupportedFormat):
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse(name+" file must be a CSV or XLSX file"))
		case errors.Is(err, ingest.ErrEmptyFile):
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse(name+" file is empty"))
		default:
			h.logger.Warn("upload parsing failed", "file", fh.Filename, "error", err)
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse("error parsing "+name+" file"))
		}
		return nil, false
	}

	return rows, true
}

// intParam reads an integer from query or form, with a default when absent.
func (h *ReconcileHandler) intParam(c *gin.Context, name string, defaultVal int) (int, bool) {
	val := c.Query(name)
	if val == "" {
		val = c.PostForm(name)
	}
	if val == "" {
		return defaultVal, true
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return 0, false
	}
	return parsed, true
}
