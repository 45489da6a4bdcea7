// Package driver issues raw HTTP calls and classifies transport failures.
package driver

import (
	"bytes"
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

// DefaultTimeout applies when neither the driver nor the caller set one.
const DefaultTimeout = 5 * time.Second

// Options control a single request.
type Options struct {
	// User enables Basic Auth together with Password when non-empty.
	User     string
	Password string
	// Timeout overrides the driver default for this call.
	Timeout time.Duration
	// InsecureSkipVerify disables TLS certificate verification. The probes
	// target internal endpoints, some with self-signed certificates.
	InsecureSkipVerify bool
	// Body is the optional request body.
	Body []byte
}

// Response is the raw outcome of a completed request with an acceptable
// status.
type Response struct {
	StatusCode int
	Body       []byte
}

// Driver sends one HTTP request per call with a configured timeout. It does
// not retry; the caller decides what a failure means.
type Driver struct {
	timeout time.Duration
	log     *zap.Logger
}

// New creates a driver with the given default timeout. A zero timeout falls
// back to DefaultTimeout.
func New(timeout time.Duration, log *zap.Logger) *Driver {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Driver{timeout: timeout, log: log}
}

// Request performs a single HTTP call and returns the raw response, or a
// tagged *Error describing why it failed.
func (d *Driver) Request(ctx context.Context, method, rawurl string, opts Options) (*Response, error) {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = d.timeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var body io.Reader
	if len(opts.Body) > 0 {
		body = bytes.NewReader(opts.Body)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawurl, body)
	if err != nil {
		return nil, &Error{Kind: KindUnexpected, Message: "create request", Err: err}
	}
	if opts.User != "" {
		req.SetBasicAuth(opts.User, opts.Password)
	}

	d.log.Debug("sending request", zap.String("method", method), zap.String("url", rawurl))
	if len(opts.Body) > 0 {
		d.log.Debug("request body", zap.ByteString("body", opts.Body))
	}

	resp, err := d.client(opts).Do(req)
	if err != nil {
		return nil, d.classify(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		d.log.Error("reading response body failed", zap.Error(err))
		return nil, &Error{Kind: KindUnexpected, Message: "read response body", Err: err}
	}

	if resp.StatusCode == http.StatusUnauthorized {
		d.log.Error("authentication failed", zap.Int("status", resp.StatusCode))
		return nil, &Error{
			Kind:       KindAuthentication,
			StatusCode: resp.StatusCode,
			Message:    "authentication failed",
		}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		d.log.Error("http error", zap.Int("status", resp.StatusCode), zap.ByteString("body", data))
		return nil, &Error{
			Kind:       KindStatus,
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("HTTP error occurred: %d", resp.StatusCode),
		}
	}

	d.log.Debug("response", zap.Int("status", resp.StatusCode), zap.ByteString("body", data))
	return &Response{StatusCode: resp.StatusCode, Body: data}, nil
}

func (d *Driver) client(opts Options) *http.Client {
	tr := &http.Transport{}
	if opts.InsecureSkipVerify {
		tr.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}
	return &http.Client{Transport: tr}
}

// classify maps a transport error onto the failure taxonomy.
func (d *Driver) classify(err error) *Error {
	var uerr *url.Error
	if errors.As(err, &uerr) {
		if uerr.Timeout() || errors.Is(err, context.DeadlineExceeded) {
			d.log.Error("request timed out", zap.Error(err))
			return &Error{Kind: KindTimeout, Message: "request timed out", Err: err}
		}
		var operr *net.OpError
		var dnserr *net.DNSError
		if errors.As(err, &operr) || errors.As(err, &dnserr) {
			d.log.Error("connection failed", zap.Error(err))
			return &Error{Kind: KindConnection, Message: "error trying to connect to HTTP server", Err: err}
		}
	}
	d.log.Error("unexpected request error", zap.Error(err))
	return &Error{Kind: KindUnexpected, Message: "unexpected error", Err: err}
}
