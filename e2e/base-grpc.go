package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gookit/color"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

type BaseSuite struct {
	suite.Suite
	Config Config
	http   *http.Client
}

// SetupSuite loads the environment configuration before running tests
func (s *BaseSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
	if s.Config.HTTPAddr == "" {
		s.T().Skip("WHISPERD_HTTP_ADDR is not set, skipping end-to-end scenarios")
	}
	s.http = &http.Client{Timeout: 10 * time.Second}
}

func (s *BaseSuite) header(name string) string {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	return header
}

// GrpcConn initializes a gRPC connection with logging, colors, and JSON debugging
func (s *BaseSuite) GrpcConn(t *testing.T, name string, addr string) *grpc.ClientConn {
	t.Log(s.header(name))

	marshaler := protojson.MarshalOptions{
		UseProtoNames:   true,
		Multiline:       true,
		EmitUnpopulated: true,
	}

	conn, err := grpc.NewClient(addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
			start := time.Now()
			err := invoker(ctx, method, req, reply, cc, opts...)

			logBuilder := strings.Builder{}
			fmt.Fprintf(&logBuilder, "GRPC %s [%s] in %v", method, status.Code(err), time.Since(start))

			// Log full JSON request/response bodies if E2E_DEBUG_JSON is enabled
			if s.Config.DebugJSON {
				fmt.Fprintln(&logBuilder, "\nREQUEST:")
				fmt.Fprintln(&logBuilder, marshaler.Format(req.(proto.Message)))
				if err != nil {
					fmt.Fprintln(&logBuilder, "ERROR:", err)
				} else {
					fmt.Fprintln(&logBuilder, "RESPONSE:")
					fmt.Fprintln(&logBuilder, marshaler.Format(reply.(proto.Message)))
				}
			}
			t.Log(logBuilder.String())
			return err
		}),
	)
	s.Require().NoError(err, "Failed to connect to gRPC server at "+addr)
	return conn
}

// WithHealth provides a health client within a contextual test step
func (s *BaseSuite) WithHealth(name string, fn func(ctx context.Context, client healthpb.HealthClient)) {
	conn := s.GrpcConn(s.T(), name, s.Config.GRPCAddr)
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	fn(ctx, healthpb.NewHealthClient(conn))
}

// DoJSON sends body as JSON and decodes the response into out when given. It returns the status code.
func (s *BaseSuite) DoJSON(name, method, path string, body, out any) int {
	t := s.T()
	t.Log(s.header(name))

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequest(method, "http://"+s.Config.HTTPAddr+path, reader)
	s.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := s.http.Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)

	t.Logf("HTTP %s %s [%d] in %v", method, path, resp.StatusCode, time.Since(start))
	if s.Config.DebugJSON {
		t.Logf("RESPONSE:\n%s", raw)
	}
	if out != nil && len(raw) > 0 {
		s.Require().NoError(json.Unmarshal(raw, out))
	}
	return resp.StatusCode
}

// Dial opens a WebSocket session on /ws.
func (s *BaseSuite) Dial(name string) *websocket.Conn {
	s.T().Log(s.header(name))
	conn, _, err := websocket.DefaultDialer.Dial("ws://"+s.Config.HTTPAddr+"/ws", nil)
	s.Require().NoError(err)
	return conn
}
