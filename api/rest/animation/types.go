package animation

// Request represents the request body for animation generation
type Request struct {
	Prompt string `json:"prompt" binding:"required" example:"red rotating 3d cube"`
}

// Response represents a rendered animation
type Response struct {
	VideoURL string `json:"videoUrl" example:"https://cdn.example.com/GenScene.mp4"`
	Code     string `json:"code"`
}
