package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/mmynk/littlewardrobe/internal/metrics"
	"github.com/mmynk/littlewardrobe/pkg/api"
)

const pingProcedure = "/test.v1.PingService/Ping"

type ping struct {
	Fail bool `json:"fail"`
}

func setupPingServer(t *testing.T, m *metrics.Metrics) (*connect.Client[ping, ping], func()) {
	t.Helper()

	handler := connect.NewUnaryHandler(pingProcedure,
		func(ctx context.Context, req *connect.Request[ping]) (*connect.Response[ping], error) {
			if req.Msg.Fail {
				return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("bad ping"))
			}
			return connect.NewResponse(&ping{}), nil
		},
		connect.WithCodec(api.Codec{}),
		connect.WithInterceptors(LoggingInterceptor(), MetricsInterceptor(m)),
	)
	mux := http.NewServeMux()
	mux.Handle(pingProcedure, handler)
	server := httptest.NewServer(mux)

	client := connect.NewClient[ping, ping](http.DefaultClient, server.URL+pingProcedure, connect.WithCodec(api.Codec{}))
	return client, server.Close
}

func TestInterceptors(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	client, cleanup := setupPingServer(t, m)
	defer cleanup()

	if _, err := client.CallUnary(context.Background(), connect.NewRequest(&ping{})); err != nil {
		t.Fatalf("Ping failed: %v", err)
	}
	_, err := client.CallUnary(context.Background(), connect.NewRequest(&ping{Fail: true}))
	if connect.CodeOf(err) != connect.CodeInvalidArgument {
		t.Fatalf("expected invalid_argument, got %v", err)
	}

	if got := testutil.ToFloat64(m.RPCRequests.WithLabelValues(pingProcedure, "ok")); got != 1 {
		t.Errorf("ok count = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.RPCRequests.WithLabelValues(pingProcedure, "invalid_argument")); got != 1 {
		t.Errorf("invalid_argument count = %v, want 1", got)
	}
	if got := testutil.CollectAndCount(m.RPCDuration); got != 1 {
		t.Errorf("duration series = %d, want 1", got)
	}
}

func TestIsClientError(t *testing.T) {
	tests := []struct {
		code connect.Code
		want bool
	}{
		{connect.CodeInvalidArgument, true},
		{connect.CodeNotFound, true},
		{connect.CodeFailedPrecondition, true},
		{connect.CodeUnavailable, false},
		{connect.CodeInternal, false},
	}
	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			if got := isClientError(tt.code); got != tt.want {
				t.Errorf("isClientError(%s) = %v, want %v", tt.code, got, tt.want)
			}
		})
	}
}
