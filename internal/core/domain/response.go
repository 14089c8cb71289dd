package domain

import (
	"strings"

	"github.com/tidwall/gjson"
)

// ResponseKind names every response shape the inference endpoint is known to return.
// The same request can come back in any of them depending on the model and task.
type ResponseKind int

const (
	KindOpaque ResponseKind = iota
	KindGeneratedTextList
	KindGeneratedTextRecord
	KindErrorRecord
	KindChoicesRecord
)

func (k ResponseKind) String() string {
	switch k {
	case KindGeneratedTextList:
		return "generated_text_list"
	case KindGeneratedTextRecord:
		return "generated_text_record"
	case KindErrorRecord:
		return "error_record"
	case KindChoicesRecord:
		return "choices_record"
	default:
		return "opaque"
	}
}

// Response is a decoded inference payload. The set of implementations is closed.
type Response interface {
	Kind() ResponseKind
	isResponse()
}

// GeneratedTextList is the text-generation pipeline shape: [{"generated_text": "..."}]
type GeneratedTextList struct {
	Items []GeneratedText
}

type GeneratedText struct {
	Text string `json:"generated_text"`
}

// First is the only item the CLI ever displays
func (r GeneratedTextList) First() string {
	return r.Items[0].Text
}

// GeneratedTextRecord is a bare {"generated_text": "..."}
type GeneratedTextRecord struct {
	Text string
}

// ErrorRecord is {"error": ...}, usually with a 200 on some backends
type ErrorRecord struct {
	Message string
}

// ChoicesRecord is the OpenAI-compatible chat completion shape
type ChoicesRecord struct {
	Choices []Choice
}

type Choice struct {
	Message ChoiceMessage `json:"message"`
	Index   int           `json:"index"`
}

type ChoiceMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

func (r ChoicesRecord) Content() string {
	return r.Choices[0].Message.Content
}

// Opaque is valid JSON that matched nothing else, kept as its textual form
type Opaque struct {
	Text string
}

func (GeneratedTextList) Kind() ResponseKind   { return KindGeneratedTextList }
func (GeneratedTextRecord) Kind() ResponseKind { return KindGeneratedTextRecord }
func (ErrorRecord) Kind() ResponseKind         { return KindErrorRecord }
func (ChoicesRecord) Kind() ResponseKind       { return KindChoicesRecord }
func (Opaque) Kind() ResponseKind              { return KindOpaque }

func (GeneratedTextList) isResponse()   {}
func (GeneratedTextRecord) isResponse() {}
func (ErrorRecord) isResponse()         {}
func (ChoicesRecord) isResponse()       {}
func (Opaque) isResponse()              {}

const (
	fieldGeneratedText = "generated_text"
	fieldError         = "error"
	fieldChoices       = "choices"
	pathChoiceContent  = "message.content"
	pathChoiceRole     = "message.role"
)

// DecodeResponse classifies a response body into exactly one variant. Precedence
// matters when a record carries several fields: generated text, then error,
// then choices. Returns ErrUndecodableBody when the body is not JSON at all.
func DecodeResponse(body []byte) (Response, error) {
	if !gjson.ValidBytes(body) {
		return nil, ErrUndecodableBody
	}

	root := gjson.ParseBytes(body)

	switch {
	case root.IsArray():
		if list, ok := decodeGeneratedTextList(root); ok {
			return list, nil
		}
	case root.IsObject():
		if text := root.Get(fieldGeneratedText); text.Type == gjson.String {
			return GeneratedTextRecord{Text: text.Str}, nil
		}
		if errField := root.Get(fieldError); errField.Exists() {
			return ErrorRecord{Message: textOf(errField)}, nil
		}
		if choices, ok := decodeChoices(root.Get(fieldChoices)); ok {
			return choices, nil
		}
	}

	return Opaque{Text: textOf(root)}, nil
}

func decodeGeneratedTextList(root gjson.Result) (GeneratedTextList, bool) {
	elems := root.Array()
	if len(elems) == 0 || elems[0].Get(fieldGeneratedText).Type != gjson.String {
		return GeneratedTextList{}, false
	}

	items := make([]GeneratedText, 0, len(elems))
	for _, elem := range elems {
		// later entries are kept only when they share the shape of the first
		if text := elem.Get(fieldGeneratedText); text.Type == gjson.String {
			items = append(items, GeneratedText{Text: text.Str})
		}
	}
	return GeneratedTextList{Items: items}, true
}

func decodeChoices(field gjson.Result) (ChoicesRecord, bool) {
	if !field.IsArray() {
		return ChoicesRecord{}, false
	}
	elems := field.Array()
	if len(elems) == 0 || elems[0].Get(pathChoiceContent).Type != gjson.String {
		return ChoicesRecord{}, false
	}

	choices := make([]Choice, 0, len(elems))
	for i, elem := range elems {
		choices = append(choices, Choice{
			Index: i,
			Message: ChoiceMessage{
				Role:    elem.Get(pathChoiceRole).String(),
				Content: elem.Get(pathChoiceContent).String(),
			},
		})
	}
	return ChoicesRecord{Choices: choices}, true
}

// textOf renders a JSON value for display: strings unquoted, everything else as raw JSON
func textOf(r gjson.Result) string {
	if r.Type == gjson.String {
		return r.Str
	}
	return strings.TrimSpace(r.Raw)
}
