package middlewares

import (
	"context"
	"net/http"
	"strings"

	"mediflow-onboarding/internal/pkg/constvars"
	"mediflow-onboarding/internal/pkg/exceptions"
	"mediflow-onboarding/internal/pkg/utils"
)

// WizardSession resolves the draft id from the session token and stores it in
// the request context. Every wizard endpoint past Begin requires it.
func (m *Middlewares) WizardSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get(constvars.HeaderWizardSession)
		if token == "" {
			authorization := r.Header.Get(constvars.HeaderAuthorization)
			token = strings.TrimPrefix(authorization, constvars.BearerPrefix)
		}
		if token == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenInvalidOrExpired(nil))
			return
		}

		draftID, err := utils.ParseWizardToken(token, m.InternalConfig.JWT.Secret)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_DRAFT_ID_KEY, draftID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
