package dto

type ChatRequest struct {
	Message string `json:"message" validate:"required"`
}

type ChatResponse struct {
	Response      string `json:"response"`
	Source        string `json:"source"`
	Policy        string `json:"policy,omitempty"`
	Model         string `json:"model,omitempty"`
	Note          string `json:"note,omitempty"`
	KnowledgeHits *int   `json:"knowledge_hits,omitempty"`
}
