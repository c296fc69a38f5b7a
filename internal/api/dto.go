package api

// TokenizeRequest selects an encoder and carries the text to process.
// Model and Encoding follow the same resolution rules as the library:
// at least one must be set, and both only if they agree.
type TokenizeRequest struct {
	Text     string `json:"text"`
	Model    string `json:"model,omitempty"`
	Encoding string `json:"encoding,omitempty"`
}

type TokenizeResponse struct {
	ID       string `json:"id"`
	Encoding string `json:"encoding"`
	Tokens   []int  `json:"tokens"`
	Count    int    `json:"count"`
}

type CountResponse struct {
	ID       string `json:"id"`
	Encoding string `json:"encoding"`
	Count    int    `json:"count"`
}

type ModelsResponse struct {
	Models map[string]string `json:"models"`
}

type EncodingsResponse struct {
	Encodings []string `json:"encodings"`
}

type ResponseError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}
