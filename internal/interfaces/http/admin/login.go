package admin

import (
	"crypto/subtle"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/sngm3741/facility-feedback-services/api/internal/interfaces/http/common"
)

// loginHandler exchanges the configured admin credentials for a signed
// session token. Comparison is constant-time so the endpoint leaks nothing
// about which of the two fields was wrong.
func (h *Handler) loginHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()

		var req loginRequest
		decoder := json.NewDecoder(io.LimitReader(r.Body, 1<<16))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&req); err != nil {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "リクエストの形式が不正です"})
			return
		}

		username := strings.TrimSpace(req.Username)
		usernameOK := subtle.ConstantTimeCompare([]byte(username), []byte(h.username)) == 1
		passwordOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.password)) == 1
		if !usernameOK || !passwordOK {
			common.WriteJSON(h.logger, w, http.StatusUnauthorized, map[string]string{"error": "ユーザー名またはパスワードが正しくありません"})
			return
		}

		now := time.Now()
		expiresAt := now.Add(h.tokenTTL)
		claims := jwt.RegisteredClaims{
			Subject:   username,
			Issuer:    h.jwtIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(h.jwtSecret)
		if err != nil {
			h.logger.Printf("セッショントークンの発行に失敗: %v", err)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "ログインに失敗しました"})
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, loginResponse{Token: token, ExpiresAt: expiresAt})
	}
}
