package test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/diegoclair/gpns-planner/internal/handlers"
	"github.com/diegoclair/gpns-planner/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zaptest"
)

// SigningSecret is the secret the test handlers verify requests with.
const SigningSecret = "test-signing-secret"

type ServiceMocks struct {
	PlanningServiceMock     *mocks.MockPlanningService
	SubscriptionServiceMock *mocks.MockSubscriptionService
	AbsenceServiceMock      *mocks.MockAbsenceService
	HoursServiceMock        *mocks.MockHoursService
	VisitServiceMock        *mocks.MockVisitService
}

// GetHandlerTest wires the API and Slack handlers on mocked services behind
// the real router.
func GetHandlerTest(t *testing.T) (m ServiceMocks, router http.Handler, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)
	m = ServiceMocks{
		PlanningServiceMock:     mocks.NewMockPlanningService(ctrl),
		SubscriptionServiceMock: mocks.NewMockSubscriptionService(ctrl),
		AbsenceServiceMock:      mocks.NewMockAbsenceService(ctrl),
		HoursServiceMock:        mocks.NewMockHoursService(ctrl),
		VisitServiceMock:        mocks.NewMockVisitService(ctrl),
	}

	log := zaptest.NewLogger(t)
	api := handlers.NewAPI(m.PlanningServiceMock, m.AbsenceServiceMock, m.HoursServiceMock, m.VisitServiceMock, log)
	slackHandler := handlers.New(m.PlanningServiceMock, m.SubscriptionServiceMock, SigningSecret, log)
	router = handlers.NewRouter(api, slackHandler, log)

	return
}

// CreateSlackRequest creates a properly signed Slack slash command request
func CreateSlackRequest(t *testing.T, text, channelID, signingSecret string) *http.Request {
	t.Helper()

	form := url.Values{
		"token":        {"test-token"},
		"team_id":      {"T123456789"},
		"team_domain":  {"test-team"},
		"channel_id":   {channelID},
		"channel_name": {"planning"},
		"user_id":      {"U987654321"},
		"user_name":    {"test-user"},
		"command":      {"/planning"},
		"text":         {text},
		"response_url": {"https://hooks.slack.com/commands/test"},
		"trigger_id":   {"test-trigger-id"},
	}

	body := form.Encode()

	req, err := http.NewRequest(http.MethodPost, "/slack/commands", strings.NewReader(body))
	require.NoError(t, err)

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	req.Header.Set("X-Slack-Request-Timestamp", timestamp)
	req.Header.Set("X-Slack-Signature", generateSlackSignature(signingSecret, timestamp, body))

	return req
}

func generateSlackSignature(signingSecret, timestamp, body string) string {
	baseString := fmt.Sprintf("v0:%s:%s", timestamp, body)
	h := hmac.New(sha256.New, []byte(signingSecret))
	h.Write([]byte(baseString))
	signature := hex.EncodeToString(h.Sum(nil))
	return fmt.Sprintf("v0=%s", signature)
}

func CreateTestRecorder() *httptest.ResponseRecorder {
	return httptest.NewRecorder()
}
