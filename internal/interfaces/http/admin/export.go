package admin

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/sngm3741/facility-feedback-services/api/internal/interfaces/http/common"
)

// feedbackExportHandler renders the filtered record set as a PDF report.
// The same query parameters as the list endpoint apply, so the export
// always matches what the admin screen shows.
func (h *Handler) feedbackExportHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, err := h.parseListFilter(r.URL.Query())
		if err != nil {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
		defer cancel()

		records, err := h.queries.List(ctx, filter)
		if err != nil {
			h.logger.Printf("admin feedback export fetch failed: %v", err)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "フィードバック一覧の取得に失敗しました"})
			return
		}

		generatedAt := time.Now()
		data, err := h.renderer.Render(records, generatedAt)
		if err != nil {
			h.logger.Printf("admin feedback export render failed: %v", err)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "PDFの生成に失敗しました"})
			return
		}

		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exportFilename(generatedAt.In(h.location))))
		w.Header().Set("Content-Length", fmt.Sprintf("%d", len(data)))
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(data); err != nil {
			h.logger.Printf("admin feedback export write failed: %v", err)
		}
	}
}
