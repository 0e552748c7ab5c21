package planner

// ChatContext tells the backend where in the tool a message originated.
type ChatContext struct {
	Page      string `json:"page"`
	Tab       string `json:"tab"`
	Timestamp string `json:"timestamp"`
}

// HistoryMessage is one prior turn included with a chat request.
type HistoryMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the payload for the chat endpoint. The client truncates
// ConversationHistory to the most recent turns before sending.
type ChatRequest struct {
	Message             string           `json:"message"`
	Role                string           `json:"role"`
	Context             ChatContext      `json:"context"`
	ConversationHistory []HistoryMessage `json:"conversation_history"`
}

// ChatResponse is the success payload from the chat endpoint.
type ChatResponse struct {
	Response string `json:"response"`
}

// PlanRequest asks the backend for a borough evacuation plan.
type PlanRequest struct {
	Borough  string `json:"borough"`
	Scenario string `json:"scenario"`
}

// RouteSummary describes one evacuation route in a plan result.
type RouteSummary struct {
	Name  string  `json:"name"`
	Mode  string  `json:"mode"`
	Share float64 `json:"share"`
}

// PlanResult carries the planning narrative plus the headline metrics
// shown in the results banner. Response is markup-formatted text.
type PlanResult struct {
	Borough              string         `json:"borough"`
	Response             string         `json:"response"`
	ClearanceTimeMinutes float64        `json:"clearance_time_minutes"`
	FairnessIndex        float64        `json:"fairness_index"`
	Robustness           float64        `json:"robustness"`
	Routes               []RouteSummary `json:"routes"`
}

// apiError is the backend's error payload.
type apiError struct {
	Detail string `json:"detail"`
}
