package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/fcoelho/salesnav-outreach/internal/auth"
)

type AuthHandler struct {
	Gate *auth.Gate
}

func NewAuthHandler(gate *auth.Gate) *AuthHandler {
	return &AuthHandler{Gate: gate}
}

// HandleLogin (POST /login) trades the configured password for a
// session token. No lockout, no attempt limiting: this guards a
// single-user tool, not a multi-tenant system.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid JSON payload: "+err.Error())
		return
	}

	token, ok := h.Gate.Login(body.Password)
	if !ok {
		writeJSONError(w, http.StatusUnauthorized, "password incorrect")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}
