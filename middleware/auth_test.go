package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Madhav-Gupta-28/bazar-backend-go/models"
	"github.com/Madhav-Gupta-28/bazar-backend-go/utils"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newContext(authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func okHandler(called *bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		*called = true
		return c.String(http.StatusOK, "ok")
	}
}

func TestIsAuthMissingHeader(t *testing.T) {
	signer := utils.NewTokenSigner("session", "verify")
	c, rec := newContext("")

	var called bool
	if err := IsAuth(signer)(okHandler(&called))(c); err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if called {
		t.Fatal("next handler ran without a header")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Authorization header is required") {
		t.Fatalf("body = %s", rec.Body.String())
	}
}

func TestIsAuthRejectsBadTokens(t *testing.T) {
	signer := utils.NewTokenSigner("session", "verify")
	user := &models.User{ID: primitive.NewObjectID(), Email: "a@b.c"}

	verifyToken, _ := signer.TokenForVerify(user)
	forged, _ := utils.NewTokenSigner("other", "verify").SignInToken(user)

	for name, header := range map[string]string{
		"wrong secret":  "Bearer " + forged,
		"verify token":  "Bearer " + verifyToken,
		"garbage":       "Bearer abc.def.ghi",
		"no token part": "Bearer",
	} {
		t.Run(name, func(t *testing.T) {
			c, rec := newContext(header)
			var called bool
			if err := IsAuth(signer)(okHandler(&called))(c); err != nil {
				t.Fatalf("handler error = %v", err)
			}
			if called || rec.Code != http.StatusUnauthorized {
				t.Fatalf("called = %v, status = %d", called, rec.Code)
			}
			if !strings.Contains(rec.Body.String(), "Invalid or expired token") {
				t.Fatalf("body = %s", rec.Body.String())
			}
		})
	}
}

func TestIsAuthAttachesClaims(t *testing.T) {
	signer := utils.NewTokenSigner("session", "verify")
	user := &models.User{ID: primitive.NewObjectID(), Name: "Jane", Email: "jane@example.com"}
	token, err := signer.SignInToken(user)
	if err != nil {
		t.Fatal(err)
	}

	// The scheme is not checked.
	for _, scheme := range []string{"Bearer", "Token"} {
		c, rec := newContext(scheme + " " + token)
		var claims *utils.SessionClaims
		h := IsAuth(signer)(func(c echo.Context) error {
			claims = CurrentUser(c)
			return c.NoContent(http.StatusNoContent)
		})
		if err := h(c); err != nil {
			t.Fatalf("handler error = %v", err)
		}
		if rec.Code != http.StatusNoContent {
			t.Fatalf("%s: status = %d", scheme, rec.Code)
		}
		if claims == nil || claims.ID != user.ID.Hex() || claims.Email != user.Email {
			t.Fatalf("%s: claims = %+v", scheme, claims)
		}
	}
}
