package lambda

import "github.com/aws/aws-lambda-go/events"

// Request represents a generic HTTP request for serverless functions
type Request struct {
	Method  string            `json:"method"`
	RawPath string            `json:"rawPath"`
	Headers map[string]string `json:"headers"`
	Body    []byte            `json:"body"`
}

// Response represents a generic HTTP response for serverless functions
type Response struct {
	StatusCode int               `json:"statusCode"`
	Headers    map[string]string `json:"headers"`
	Body       []byte            `json:"body"`
}

// FromAPIGatewayRequest converts an API Gateway proxy event to a generic request
func FromAPIGatewayRequest(event events.APIGatewayProxyRequest) *Request {
	return &Request{
		Method:  event.HTTPMethod,
		RawPath: event.Path,
		Headers: event.Headers,
		Body:    []byte(event.Body),
	}
}

// ToAPIGatewayResponse converts a generic response to an API Gateway proxy response
func (r *Response) ToAPIGatewayResponse() events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: r.StatusCode,
		Headers:    r.Headers,
		Body:       string(r.Body),
	}
}
