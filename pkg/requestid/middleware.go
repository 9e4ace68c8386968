package requestid

import (
	"net/http"
	"regexp"

	"github.com/google/uuid"
)

// Header is the default header the id is read from and echoed in.
const Header = "X-Request-ID"

const maxLength = 128

var inboundID = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Option configures the middleware returned by New.
type Option func(*options)

type options struct {
	header       string
	trustInbound bool
	generate     func() string
}

// WithHeader changes the header the id is read from and echoed in.
func WithHeader(name string) Option {
	return func(o *options) {
		if name != "" {
			o.header = http.CanonicalHeaderKey(name)
		}
	}
}

// WithTrustInbound controls whether a client supplied id is reused.
func WithTrustInbound(trust bool) Option {
	return func(o *options) {
		o.trustInbound = trust
	}
}

// WithGenerator replaces the UUIDv4 generator.
func WithGenerator(fn func() string) Option {
	return func(o *options) {
		if fn != nil {
			o.generate = fn
		}
	}
}

// New returns a request id middleware configured by opts.
func New(opts ...Option) func(http.Handler) http.Handler {
	o := options{
		header:       Header,
		trustInbound: true,
		generate:     func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(&o)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var id string
			if o.trustInbound {
				id = r.Header.Get(o.header)
			}
			if !acceptable(id) {
				id = o.generate()
			}
			w.Header().Set(o.header, id)
			next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), id)))
		})
	}
}

// Middleware is New with default options.
func Middleware(next http.Handler) http.Handler {
	return New()(next)
}

func acceptable(id string) bool {
	return id != "" && len(id) <= maxLength && inboundID.MatchString(id)
}
