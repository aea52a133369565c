package health

// Response represents the health check response
type Response struct {
	Status   string   `json:"status"`
	Service  string   `json:"service"`
	Version  string   `json:"version,omitempty"`
	Upstream Upstream `json:"upstream"`
}

// the external generation and rendering service as the gateway sees it
type Upstream struct {
	Configured bool   `json:"configured"`
	Model      string `json:"model,omitempty"`
}

type PingResponse struct {
	Message string `json:"message"`
}
