package domain

import (
	"fmt"
	"net/url"
	"strings"
)

// ResourceScheme is the URI scheme of every academic resource.
const ResourceScheme = "dhbw"

// ResourceKind identifies a family of key-addressed resources.
type ResourceKind string

// Resource kinds.
const (
	ResourceSyllabus     ResourceKind = "syllabus"
	ResourceNews         ResourceKind = "news"
	ResourcePublications ResourceKind = "publications"
)

// ResourceKinds lists every kind in registration order.
var ResourceKinds = []ResourceKind{ResourceSyllabus, ResourceNews, ResourcePublications}

// MIME types of resource payloads.
const (
	MIMETextPlain = "text/plain"
	MIMEJSON      = "application/json"
)

// Sentinels returned when a resource key is absent.
const (
	SyllabusNotFound     = "Not found."
	NewsNotFound         = "null"
	PublicationsNotFound = "[]"
)

// ParseResourceKind validates a kind name.
func ParseResourceKind(s string) (ResourceKind, error) {
	for _, k := range ResourceKinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownResource, s)
}

// Param returns the name of the kind's path parameter.
func (k ResourceKind) Param() string {
	switch k {
	case ResourceNews:
		return "article_id"
	case ResourcePublications:
		return "prof_id"
	default:
		return "code"
	}
}

// MIMEType returns the content type of the kind's payloads.
func (k ResourceKind) MIMEType() string {
	if k == ResourceSyllabus {
		return MIMETextPlain
	}
	return MIMEJSON
}

// NotFoundSentinel returns the payload served for a missing key.
func (k ResourceKind) NotFoundSentinel() string {
	switch k {
	case ResourceNews:
		return NewsNotFound
	case ResourcePublications:
		return PublicationsNotFound
	default:
		return SyllabusNotFound
	}
}

// URITemplate returns the RFC 6570 template, e.g. dhbw://syllabus/{code}.
func (k ResourceKind) URITemplate() string {
	return fmt.Sprintf("%s://%s/{%s}", ResourceScheme, k, k.Param())
}

// URI returns the concrete address of key.
func (k ResourceKind) URI(key string) string {
	return fmt.Sprintf("%s://%s/%s", ResourceScheme, k, url.PathEscape(key))
}

// ParseResourceURI splits a concrete resource URI into kind and key.
func ParseResourceURI(uri string) (ResourceKind, string, error) {
	prefix := ResourceScheme + "://"
	if !strings.HasPrefix(uri, prefix) {
		return "", "", fmt.Errorf("%w: %q", ErrUnknownResource, uri)
	}

	kindName, rawKey, ok := strings.Cut(strings.TrimPrefix(uri, prefix), "/")
	if !ok || rawKey == "" {
		return "", "", fmt.Errorf("%w: %q", ErrUnknownResource, uri)
	}

	kind, err := ParseResourceKind(kindName)
	if err != nil {
		return "", "", err
	}

	key, err := url.PathUnescape(rawKey)
	if err != nil {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidInput, uri)
	}
	return kind, key, nil
}

// ResourceDescriptor is one discoverable resource address.
type ResourceDescriptor struct {
	Kind        ResourceKind `json:"kind"`
	URI         string       `json:"uri"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	MIMEType    string       `json:"mime_type"`
}

// ResourceContent is the payload read from one address.
// Found is false when the sentinel was served.
type ResourceContent struct {
	URI      string `json:"uri"`
	MIMEType string `json:"mime_type"`
	Text     string `json:"text"`
	Found    bool   `json:"found"`
}
