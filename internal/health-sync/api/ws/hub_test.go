package ws

import (
	"Source_Health_Sync/internal/health-sync/adapter"
	mockadapter "Source_Health_Sync/internal/health-sync/mocks/adapter"
	"Source_Health_Sync/internal/health-sync/model"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestHub_PushesStateOnConnectAndOnChange(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockMonitor := mockadapter.NewMockHealthMonitorAdapter(ctrl)

	changes := make(chan struct{}, 1)
	unsubscribed := make(chan struct{})
	mockMonitor.EXPECT().Subscribe().Return((<-chan struct{})(changes), func() { close(unsubscribed) })
	mockMonitor.EXPECT().Overview().Return(adapter.Overview{
		Connection: model.ConnectionState{Status: model.ConnectionStatusConnected},
	}).AnyTimes()
	mockMonitor.EXPECT().Sources().Return([]adapter.SourceView{
		{SourceHealthRecord: model.SourceHealthRecord{SourceID: "gov-open-data"}},
	}).AnyTimes()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	hub := NewHub(zap.NewNop(), mockMonitor)
	r.GET("/ws", hub.Handle())

	server := httptest.NewServer(r)
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws"
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	if resp != nil {
		defer resp.Body.Close()
	}

	var payload struct {
		Overview adapter.Overview     `json:"overview"`
		Sources  []adapter.SourceView `json:"sources"`
	}

	// initial push arrives without any change notification
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	require.NoError(t, conn.ReadJSON(&payload))
	assert.Equal(t, model.ConnectionStatusConnected, payload.Overview.Connection.Status)
	require.Len(t, payload.Sources, 1)
	assert.Equal(t, "gov-open-data", payload.Sources[0].SourceID)

	// a controller change triggers another push
	changes <- struct{}{}
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	require.NoError(t, conn.ReadJSON(&payload))
	assert.Len(t, payload.Sources, 1)

	// closing the client makes the next push fail, tearing the
	// subscription down
	require.NoError(t, conn.Close())
	deadline := time.After(2 * time.Second)
	for released := false; !released; {
		select {
		case <-unsubscribed:
			released = true
		case <-deadline:
			t.Fatal("subscription was not released after the client disconnected")
		case <-time.After(10 * time.Millisecond):
			select {
			case changes <- struct{}{}:
			default:
			}
		}
	}
}
