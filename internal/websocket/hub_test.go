package websocket

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"awqaf/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("ws-secret")

type memberChecker map[int64]string

func (m memberChecker) IsAuthorized(_ context.Context, govID int64, nationalID string) (bool, error) {
	return m[govID] == nationalID, nil
}

func testToken(t *testing.T) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":         "5f0c7a7e-4b7e-4a55-9d2a-0f6f3c7b9a11",
		"national_id": "1010101010",
		"exp":         time.Now().Add(time.Hour).Unix(),
	}).SignedString(testSecret)
	require.NoError(t, err)
	return token
}

func newServer(hub *Hub) *httptest.Server {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ws", func(c *gin.Context) {
		ServeWs(hub, c, testSecret, memberChecker{7: "1010101010"})
	})
	return httptest.NewServer(r)
}

func TestPublish_NeverBlocks(t *testing.T) {
	hub := NewHub(logger.Discard())

	done := make(chan struct{})
	go func() {
		for i := 0; i < 500; i++ {
			hub.Publish(7, "payout.created", map[string]int{"i": i})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Publish blocked without a running hub")
	}
	assert.Zero(t, hub.ClientCount())
}

func TestServeWs_Rejections(t *testing.T) {
	srv := newServer(NewHub(logger.Discard()))
	defer srv.Close()
	token := testToken(t)

	tests := []struct {
		name   string
		query  string
		status int
	}{
		{"missing token", "?waqf_gov_id=7", http.StatusUnauthorized},
		{"invalid token", "?token=garbage&waqf_gov_id=7", http.StatusUnauthorized},
		{"missing waqf", "?token=" + token, http.StatusBadRequest},
		{"not a member", "?token=" + token + "&waqf_gov_id=8", http.StatusForbidden},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res, err := http.Get(srv.URL + "/ws" + tc.query)
			require.NoError(t, err)
			defer res.Body.Close()
			assert.Equal(t, tc.status, res.StatusCode)
		})
	}
}

func TestHub_DeliversOnlyToWatchersOfTheWaqf(t *testing.T) {
	hub := NewHub(logger.Discard())
	go hub.Run()
	srv := newServer(hub)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws?token=" + testToken(t) + "&waqf_gov_id=7"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, 2*time.Second, 10*time.Millisecond)

	hub.Publish(8, "payout.created", "other waqf")
	hub.Publish(7, "payout.status_changed", map[string]string{"status": "completed"})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, raw, err := conn.ReadMessage()
	require.NoError(t, err)

	var msg Message
	require.NoError(t, json.Unmarshal(raw, &msg))
	assert.Equal(t, "payout.status_changed", msg.Event)
	assert.EqualValues(t, 7, msg.WaqfGovID)

	require.NoError(t, conn.Close())
	assert.Eventually(t, func() bool { return hub.ClientCount() == 0 }, 2*time.Second, 10*time.Millisecond)
}
