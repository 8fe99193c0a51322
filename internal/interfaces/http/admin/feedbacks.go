package admin

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/sngm3741/facility-feedback-services/api/internal/feedback/domain"
	"github.com/sngm3741/facility-feedback-services/api/internal/interfaces/http/common"
)

func (h *Handler) feedbackListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, err := h.parseListFilter(r.URL.Query())
		if err != nil {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		records, err := h.queries.List(ctx, filter)
		if err != nil {
			h.logger.Printf("admin feedback list fetch failed: %v", err)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "フィードバック一覧の取得に失敗しました"})
			return
		}

		items := make([]adminFeedbackResponse, 0, len(records))
		for _, record := range records {
			items = append(items, adminFeedbackDomainToResponse(record, false))
		}
		common.WriteJSON(h.logger, w, http.StatusOK, adminFeedbackListResponse{Items: items, Total: len(items)})
	}
}

func (h *Handler) feedbackDetailHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idParam := strings.TrimSpace(chi.URLParam(r, "id"))
		if idParam == "" {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "フィードバックIDが指定されていません"})
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		record, err := h.queries.Detail(ctx, idParam)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				common.WriteJSON(h.logger, w, http.StatusNotFound, map[string]string{"error": "フィードバックが見つかりません"})
				return
			}
			h.logger.Printf("admin feedback detail fetch failed id=%s err=%v", idParam, err)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "フィードバックの取得に失敗しました"})
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, adminFeedbackDomainToResponse(*record, true))
	}
}

func (h *Handler) feedbackUpdateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idParam := strings.TrimSpace(chi.URLParam(r, "id"))
		if idParam == "" {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "フィードバックIDが指定されていません"})
			return
		}

		var req updateFeedbackRequest
		if err := json.NewDecoder(io.LimitReader(r.Body, common.MaxFeedbackRequestBody)).Decode(&req); err != nil {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "リクエストの形式が不正です"})
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		existing, err := h.queries.Detail(ctx, idParam)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				common.WriteJSON(h.logger, w, http.StatusNotFound, map[string]string{"error": "フィードバックが見つかりません"})
				return
			}
			h.logger.Printf("admin feedback update detail fetch failed id=%s err=%v", idParam, err)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "フィードバックの取得に失敗しました"})
			return
		}

		cmd, err := buildUpdateCommand(req, len(existing.Attachments))
		if err != nil {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}

		updated, err := h.commands.Update(ctx, idParam, cmd)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				common.WriteJSON(h.logger, w, http.StatusNotFound, map[string]string{"error": "フィードバックが見つかりません"})
				return
			}
			h.logger.Printf("admin feedback update failed id=%s err=%v", idParam, err)
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, adminFeedbackDomainToResponse(*updated, true))
	}
}

func (h *Handler) feedbackDeleteHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idParam := strings.TrimSpace(chi.URLParam(r, "id"))
		if idParam == "" {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "フィードバックIDが指定されていません"})
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := h.commands.Delete(ctx, idParam); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				common.WriteJSON(h.logger, w, http.StatusNotFound, map[string]string{"error": "フィードバックが見つかりません"})
				return
			}
			h.logger.Printf("admin feedback delete failed id=%s err=%v", idParam, err)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "フィードバックの削除に失敗しました"})
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, map[string]string{"status": "deleted"})
	}
}
