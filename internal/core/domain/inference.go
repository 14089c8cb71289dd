package domain

// InferenceRequest is a single model call, built per call and discarded after
type InferenceRequest struct {
	Model  string
	Prompt string
}

// InferencePayload is the wire body the endpoint expects
type InferencePayload struct {
	Inputs string `json:"inputs"`
}

func (r InferenceRequest) Payload() InferencePayload {
	return InferencePayload{Inputs: r.Prompt}
}

// Credential is a bearer token. String() never reveals it so it can't leak into logs.
type Credential string

func (c Credential) String() string {
	if c == "" {
		return ""
	}
	return "[redacted]"
}

func (c Credential) Value() string {
	return string(c)
}

func (c Credential) IsSet() bool {
	return c != ""
}

// MarshalYAML keeps the token out of config dumps
func (c Credential) MarshalYAML() (interface{}, error) {
	return c.String(), nil
}
