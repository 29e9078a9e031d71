package jsonschema

import (
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

// URLLoader fetches the raw document a schema $id/$ref points at. The
// compiler never interprets the scheme itself; it only dispatches to
// whichever loader is registered for it.
type URLLoader interface {
	Load(url string) (any, error)
}

// URLLoaderFunc adapts a plain function to URLLoader, mirroring the
// registration style used for formats and content handlers.
type URLLoaderFunc func(url string) (any, error)

func (f URLLoaderFunc) Load(url string) (any, error) { return f(url) }

// httpURLLoader fetches schemas over HTTP(S) with a bounded timeout, the
// same default the compiler wires in for remote $ref resolution.
type httpURLLoader struct {
	client *http.Client
}

func newHTTPLoader() *httpURLLoader {
	return &httpURLLoader{client: &http.Client{Timeout: 10 * time.Second}}
}

func (l *httpURLLoader) Load(url string) (any, error) {
	resp, err := l.client.Get(url)
	if err != nil {
		return nil, ErrNetworkFetch
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, ErrInvalidStatusCode
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, ErrDataRead
	}
	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, ErrJSONDecode
	}
	return doc, nil
}

// metaSchemaDrafts short-circuits the handful of well-known meta-schema
// URIs to their Draft without ever fetching them: the bodies of the
// meta-schemas themselves are not part of this engine's scope, only the
// ability to recognize "$schema" values that name one of them.
var metaSchemaDrafts = map[string]*Draft{
	"http://json-schema.org/draft-04/schema#":          Draft4,
	"http://json-schema.org/draft-06/schema#":           Draft6,
	"http://json-schema.org/draft-06/schema":            Draft6,
	"http://json-schema.org/draft-07/schema#":           Draft7,
	"http://json-schema.org/draft-07/schema":            Draft7,
	"https://json-schema.org/draft/2019-09/schema":      Draft2019,
	"https://json-schema.org/draft/2019-09/schema#":     Draft2019,
	"https://json-schema.org/draft/2020-12/schema":      Draft2020,
	"https://json-schema.org/draft/2020-12/schema#":     Draft2020,
}

func isMetaSchemaURL(u string) bool {
	_, ok := metaSchemaDrafts[strings.TrimSpace(u)]
	return ok
}
