package util

import (
	"fmt"
	"net/url"
	"strings"
)

// JoinModelURL appends a model identifier to the inference base URL. Model ids
// are usually "org/name" so the slash is kept as a path separator while each
// segment is escaped. The base path prefix is preserved.
//
// Examples:
//   - JoinModelURL("https://router.huggingface.co/hf-inference/models", "HuggingFaceH4/zephyr-7b-beta")
//     -> "https://router.huggingface.co/hf-inference/models/HuggingFaceH4/zephyr-7b-beta"
//   - JoinModelURL("http://localhost:8080/", "gpt2") -> "http://localhost:8080/gpt2"
func JoinModelURL(baseURL, model string) (string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return "", fmt.Errorf("base URL %q must use http or https", baseURL)
	}
	if base.Host == "" {
		return "", fmt.Errorf("base URL %q has no host", baseURL)
	}

	model = strings.Trim(model, "/")
	if model == "" {
		return "", fmt.Errorf("model identifier is empty")
	}

	segments := strings.Split(model, "/")
	for i, seg := range segments {
		if seg == "" || seg == "." || seg == ".." {
			return "", fmt.Errorf("model identifier %q has an invalid path segment", model)
		}
		segments[i] = url.PathEscape(seg)
	}

	joined := strings.TrimSuffix(base.EscapedPath(), "/") + "/" + strings.Join(segments, "/")
	return base.Scheme + "://" + base.Host + joined, nil
}
