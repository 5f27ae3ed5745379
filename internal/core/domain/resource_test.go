package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResourceKind_Templates(t *testing.T) {
	assert.Equal(t, "dhbw://syllabus/{code}", ResourceSyllabus.URITemplate())
	assert.Equal(t, "dhbw://news/{article_id}", ResourceNews.URITemplate())
	assert.Equal(t, "dhbw://publications/{prof_id}", ResourcePublications.URITemplate())
}

func TestResourceKind_MIMETypeAndSentinel(t *testing.T) {
	assert.Equal(t, MIMETextPlain, ResourceSyllabus.MIMEType())
	assert.Equal(t, MIMEJSON, ResourceNews.MIMEType())
	assert.Equal(t, MIMEJSON, ResourcePublications.MIMEType())

	assert.Equal(t, "Not found.", ResourceSyllabus.NotFoundSentinel())
	assert.Equal(t, "null", ResourceNews.NotFoundSentinel())
	assert.Equal(t, "[]", ResourcePublications.NotFoundSentinel())
}

func TestParseResourceURI(t *testing.T) {
	tests := []struct {
		name    string
		uri     string
		kind    ResourceKind
		key     string
		wantErr error
	}{
		{name: "syllabus", uri: "dhbw://syllabus/webeng", kind: ResourceSyllabus, key: "webeng"},
		{name: "news", uri: "dhbw://news/n1", kind: ResourceNews, key: "n1"},
		{name: "publications", uri: "dhbw://publications/p1", kind: ResourcePublications, key: "p1"},
		{name: "escaped key", uri: "dhbw://syllabus/web%20eng", kind: ResourceSyllabus, key: "web eng"},
		{name: "wrong scheme", uri: "file://syllabus/webeng", wantErr: ErrUnknownResource},
		{name: "unknown kind", uri: "dhbw://grades/s1001", wantErr: ErrUnknownResource},
		{name: "missing key", uri: "dhbw://syllabus/", wantErr: ErrUnknownResource},
		{name: "missing slash", uri: "dhbw://syllabus", wantErr: ErrUnknownResource},
		{name: "bad escape", uri: "dhbw://syllabus/%zz", wantErr: ErrInvalidInput},
		{name: "empty", uri: "", wantErr: ErrUnknownResource},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, key, err := ParseResourceURI(tt.uri)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.kind, kind)
			assert.Equal(t, tt.key, key)
		})
	}
}

func TestResourceKind_URIRoundTrip(t *testing.T) {
	for _, kind := range ResourceKinds {
		for _, key := range []string{"webeng", "n 1", "p/1", "ä"} {
			kind2, key2, err := ParseResourceURI(kind.URI(key))
			require.NoError(t, err)
			assert.Equal(t, kind, kind2)
			assert.Equal(t, key, key2)
		}
	}
}

func TestParseResourceKind(t *testing.T) {
	k, err := ParseResourceKind("news")
	require.NoError(t, err)
	assert.Equal(t, ResourceNews, k)

	_, err = ParseResourceKind("events")
	assert.ErrorIs(t, err, ErrUnknownResource)
}
