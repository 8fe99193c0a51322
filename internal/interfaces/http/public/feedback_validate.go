package public

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/sngm3741/facility-feedback-services/api/internal/feedback/domain"
	"github.com/sngm3741/facility-feedback-services/api/internal/interfaces/http/common"
)

// feedbackValidateHandler checks one step of the submission form so the
// client can gate step transitions on the same rules the final submit
// enforces.
func (h *Handler) feedbackValidateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()

		var req validateFeedbackRequest
		decoder := json.NewDecoder(io.LimitReader(r.Body, common.MaxFeedbackRequestBody))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&req); err != nil {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{
				"error": fmt.Sprintf("リクエストの形式が不正です: %v", err),
			})
			return
		}

		if req.Step < domain.StepBasicInfo || req.Step > domain.StepReview {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{
				"error": fmt.Sprintf("不明なステップです: %d", req.Step),
			})
			return
		}

		draft := req.Feedback.toDraft()
		if err := draft.ValidateStep(req.Step); err != nil {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, map[string]bool{"valid": true})
	}
}

// feedbackOptionsHandler exposes the fixed form choices so clients never
// hardcode them.
func (h *Handler) feedbackOptionsHandler() http.HandlerFunc {
	shifts := []string{
		domain.ShiftA.String(),
		domain.ShiftB.String(),
		domain.ShiftGeneral.String(),
	}
	return func(w http.ResponseWriter, r *http.Request) {
		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{
			"locations": domain.Locations(),
			"shifts":    shifts,
		})
	}
}
