package sentry

import (
	"time"

	sentrygo "github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
)

const FlushTime = 2 * time.Second

type Reporter struct {
	hub *sentrygo.Hub
}

// WithContext returns a reporter bound to the request hub installed by the
// sentry echo middleware, falling back to the current hub.
func WithContext(c echo.Context) *Reporter {
	if hub := sentryecho.GetHubFromContext(c); hub != nil {
		return &Reporter{hub: hub}
	}

	return &Reporter{hub: sentrygo.CurrentHub()}
}

func (r *Reporter) Error(err error) {
	r.hub.CaptureException(err)
}

func (r *Reporter) Message(msg string) {
	r.hub.CaptureMessage(msg)
}
