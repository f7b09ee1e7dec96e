package api

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestLoginRejectsMalformedIdentity(t *testing.T) {
	app, _ := newJourneyTestApp(t)

	cases := []struct {
		name  string
		email string
		code  string
	}{
		{"missing email", "", testAccessCode},
		{"missing code", "a@example.com", ""},
		{"email without at sign", "not-an-address", testAccessCode},
	}

	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			request := jsonRequest(t, http.MethodPost, "/api/auth/login", fiber.Map{
				"email":       testCase.email,
				"access_code": testCase.code,
			})
			response, err := app.Test(request, -1)
			if err != nil {
				t.Fatalf("login request failed: %v", err)
			}
			defer response.Body.Close()

			if response.StatusCode != http.StatusBadRequest {
				t.Fatalf("expected status 400, got %d", response.StatusCode)
			}
		})
	}
}

func TestLoginWrongCodeKeepsEmailForRetry(t *testing.T) {
	app, _ := newJourneyTestApp(t)

	request := jsonRequest(t, http.MethodPost, "/api/auth/login", fiber.Map{
		"email":       "Hopeful@Example.com",
		"access_code": "wrong-code",
	})
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("login request failed: %v", err)
	}

	if response.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", response.StatusCode)
	}
	if cookie := responseCookieValue(response.Cookies(), authCookieName); cookie != "" {
		t.Fatal("expected no session cookie on rejected code")
	}

	payload := struct {
		Error string `json:"error"`
		Email string `json:"email"`
	}{}
	decodeJSONResponse(t, response, &payload)
	if payload.Email != "Hopeful@Example.com" {
		t.Fatalf("expected submitted email echoed back, got %q", payload.Email)
	}
}

func TestLoginNormalizesEmailAndReturnsDefaultJourney(t *testing.T) {
	app, _ := newJourneyTestApp(t)

	request := jsonRequest(t, http.MethodPost, "/api/auth/login", fiber.Map{
		"email":       "  Hopeful@Example.COM ",
		"access_code": testAccessCode,
	})
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("login request failed: %v", err)
	}

	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}
	if cookie := responseCookieValue(response.Cookies(), authCookieName); cookie == "" {
		t.Fatal("expected auth cookie on successful login")
	}

	payload := struct {
		Email   string `json:"email"`
		Journey struct {
			Step      string `json:"step"`
			Section   int    `json:"section"`
			ActiveTab string `json:"activeTab"`
		} `json:"journey"`
	}{}
	decodeJSONResponse(t, response, &payload)

	if payload.Email != "hopeful@example.com" {
		t.Fatalf("expected normalized email, got %q", payload.Email)
	}
	if payload.Journey.Step != "welcome" || payload.Journey.Section != 1 || payload.Journey.ActiveTab != "plan" {
		t.Fatalf("expected default journey, got %+v", payload.Journey)
	}
}

func TestLoginFormEncodedBodyAccepted(t *testing.T) {
	app, _ := newJourneyTestApp(t)

	form := url.Values{
		"email":       {"form@example.com"},
		"access_code": {testAccessCode},
	}
	request := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(form.Encode()))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("login request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}
}

func TestJourneyEndpointsRequireSession(t *testing.T) {
	app, _ := newJourneyTestApp(t)

	request := httptest.NewRequest(http.MethodGet, "/api/journey", nil)
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("journey request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", response.StatusCode)
	}
}

func TestLogoutResetsNavigationAndClearsCookie(t *testing.T) {
	app, _ := newJourneyTestApp(t)
	token := loginTestIdentity(t, app, "hopeful@example.com")

	beginResponse, err := app.Test(authedJSONRequest(t, http.MethodPost, "/api/journey/begin", token, nil), -1)
	if err != nil {
		t.Fatalf("begin request failed: %v", err)
	}
	beginResponse.Body.Close()

	logoutResponse, err := app.Test(authedJSONRequest(t, http.MethodPost, "/api/auth/logout", token, nil), -1)
	if err != nil {
		t.Fatalf("logout request failed: %v", err)
	}
	logoutResponse.Body.Close()
	if logoutResponse.StatusCode != http.StatusOK {
		t.Fatalf("expected logout status 200, got %d", logoutResponse.StatusCode)
	}

	cleared := false
	for _, cookie := range logoutResponse.Cookies() {
		if cookie.Name == authCookieName && cookie.Value == "" {
			cleared = true
		}
	}
	if !cleared {
		t.Fatal("expected logout to clear the auth cookie")
	}

	// A fresh login lands back on the welcome screen, answers intact.
	freshToken := loginTestIdentity(t, app, "hopeful@example.com")
	journeyResponse, err := app.Test(authedJSONRequest(t, http.MethodGet, "/api/journey", freshToken, nil), -1)
	if err != nil {
		t.Fatalf("journey request failed: %v", err)
	}

	journey := struct {
		Step string `json:"step"`
	}{}
	decodeJSONResponse(t, journeyResponse, &journey)
	if journey.Step != "welcome" {
		t.Fatalf("expected welcome after logout, got %q", journey.Step)
	}
}
