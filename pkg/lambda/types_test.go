package lambda

import (
	"testing"

	"github.com/aws/aws-lambda-go/events"
)

func TestFromAPIGatewayRequest(t *testing.T) {
	event := events.APIGatewayProxyRequest{
		HTTPMethod: "POST",
		Path:       "/dev/users",
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       `{"name":"Alice"}`,
	}

	req := FromAPIGatewayRequest(event)

	if req.Method != "POST" {
		t.Errorf("Method = %q, want POST", req.Method)
	}
	if req.RawPath != "/dev/users" {
		t.Errorf("RawPath = %q, want /dev/users", req.RawPath)
	}
	if string(req.Body) != `{"name":"Alice"}` {
		t.Errorf("Body = %q", req.Body)
	}
}

func TestResponse_ToAPIGatewayResponse(t *testing.T) {
	resp := &Response{
		StatusCode: 201,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       []byte(`{"id":"u1"}`),
	}

	out := resp.ToAPIGatewayResponse()

	if out.StatusCode != 201 {
		t.Errorf("StatusCode = %d, want 201", out.StatusCode)
	}
	if out.Body != `{"id":"u1"}` {
		t.Errorf("Body = %q", out.Body)
	}
	if out.Headers["Content-Type"] != "application/json" {
		t.Errorf("Headers = %v", out.Headers)
	}
}
