package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"lexiscope/internal/model"
	"lexiscope/internal/webutil"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ProfileAuthenticator confirms that an authenticated profile still exists.
type ProfileAuthenticator interface {
	GetProfile(ctx context.Context, profileID uuid.UUID) (*model.Profile, error)
}

// JWTAuthMiddleware validates the bearer token (HS256) and stores its subject,
// the profile id, in the request context. When profiles is not nil the
// profile must exist.
func JWTAuthMiddleware(secret []byte, profiles ProfileAuthenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := GetLogger(r.Context())

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Warn("JWT auth failed: Authorization header missing")
				webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "Authorization header is required.", "", model.ErrUnauthorized))
				return
			}
			scheme, tokenString, ok := strings.Cut(authHeader, " ")
			if !ok || !strings.EqualFold(scheme, "bearer") || tokenString == "" {
				logger.Warn("JWT auth failed: Invalid Authorization header format")
				webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "Authorization header must be 'Bearer <token>'.", "", model.ErrUnauthorized))
				return
			}

			token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
				}
				return secret, nil
			}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
			if err != nil || !token.Valid {
				logger.Warn("JWT auth failed: Invalid token", "error", err)
				code, msg := "INVALID_TOKEN", "The token is invalid."
				if errors.Is(err, jwt.ErrTokenExpired) {
					code, msg = "TOKEN_EXPIRED", "The token has expired."
				}
				webutil.HandleError(w, logger, model.NewAppError(code, msg, "", model.ErrUnauthorized))
				return
			}

			subject, err := token.Claims.GetSubject()
			if err != nil || subject == "" {
				logger.Warn("JWT auth failed: Subject (sub) claim missing", "error", err)
				webutil.HandleError(w, logger, model.NewAppError("INVALID_TOKEN", "The token carries no profile.", "", model.ErrUnauthorized))
				return
			}
			profileID, err := uuid.Parse(subject)
			if err != nil {
				logger.Warn("JWT auth failed: Invalid subject (sub) format", "subject", subject, "error", err)
				webutil.HandleError(w, logger, model.NewAppError("INVALID_TOKEN", "The token carries an invalid profile.", "", model.ErrUnauthorized))
				return
			}

			// 削除済みプロフィールのトークンは 403 で弾く
			if profiles != nil {
				if _, err := profiles.GetProfile(r.Context(), profileID); err != nil {
					if errors.Is(err, model.ErrNotFound) {
						logger.Warn("JWT auth failed: profile does not exist", "profile_id", profileID.String())
						webutil.HandleError(w, logger, model.NewAppError("PROFILE_NOT_FOUND", "The profile of this token no longer exists.", "", model.ErrProfileNotFound))
						return
					}
					webutil.HandleError(w, logger, err)
					return
				}
			}

			// ★ リクエストコンテキストにプロフィールIDをセット
			ctx := context.WithValue(r.Context(), model.ProfileIDKey, profileID)
			ctx = WithLogger(ctx, logger.With("profile_id", profileID.String()))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetProfileIDFromContext returns the profile id stored by the auth middleware.
func GetProfileIDFromContext(ctx context.Context) (uuid.UUID, error) {
	value, ok := ctx.Value(model.ProfileIDKey).(uuid.UUID)
	if !ok {
		return uuid.Nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Could not read the profile from the request context.", "", model.ErrInternalServer)
	}
	return value, nil
}
