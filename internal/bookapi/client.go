package bookapi

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/Khan/genqlient/graphql"
	"github.com/RobBrazier/booklister/internal/version"
	"github.com/hashicorp/go-retryablehttp"
)

//go:generate go tool genqlient

type tokenKey struct{}

// WithToken attaches a bearer token to every request made with ctx. It takes
// precedence over the token the client was built with.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// TokenFrom returns the token attached with WithToken.
func TokenFrom(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenKey{}).(string)
	return token, ok && token != ""
}

type noRetryKey struct{}

// WithoutRetry marks requests made with ctx as unsafe to repeat. Mutations
// use it so a create is never sent twice.
func WithoutRetry(ctx context.Context) context.Context {
	return context.WithValue(ctx, noRetryKey{}, true)
}

func checkRetry(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if ctx.Value(noRetryKey{}) != nil {
		return false, nil
	}
	return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
}

type authTransport struct {
	token   string
	wrapped http.RoundTripper
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	token := t.token
	if ctxToken, ok := TokenFrom(req.Context()); ok {
		token = ctxToken
	}
	req = req.Clone(req.Context())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("User-Agent", fmt.Sprintf("booklister/%s (https://github.com/RobBrazier/booklister)", version.Version))
	return t.wrapped.RoundTrip(req)
}

type Options struct {
	URL      string
	Token    string
	RetryMax int
	// Transport is wrapped by the auth transport, defaults to http.DefaultTransport
	Transport http.RoundTripper
}

func GetClient(opts Options) graphql.Client {
	wrapped := opts.Transport
	if wrapped == nil {
		wrapped = http.DefaultTransport
	}
	retryClient := retryablehttp.NewClient()
	retryClient.HTTPClient = &http.Client{
		Transport: &authTransport{
			token:   opts.Token,
			wrapped: wrapped,
		},
	}
	retryClient.RetryMax = opts.RetryMax
	retryClient.CheckRetry = checkRetry
	retryClient.RetryWaitMin = 200 * time.Millisecond
	retryClient.RetryWaitMax = 2 * time.Second
	retryClient.Logger = slog.Default()
	httpClient := retryClient.StandardClient()
	return graphql.NewClient(opts.URL, httpClient)
}
