// Package screens holds the interactive app screens and what they share.
package screens

import (
	"context"
	"time"

	"github.com/mungbws1031/leo-study/internal/history"
	"github.com/mungbws1031/leo-study/internal/mission"
	"github.com/mungbws1031/leo-study/internal/pkg/logger"
	"github.com/mungbws1031/leo-study/internal/profile"
	"github.com/mungbws1031/leo-study/internal/report"
)

// Services are the backends the screens call.
type Services struct {
	Profiles *profile.Store
	Missions *mission.Generator
	History  *history.Store
	Reports  *report.Generator
	Log      *logger.Logger

	// Timeout bounds each generation call. Zero means no deadline.
	Timeout time.Duration
	// Now is the clock; nil means time.Now.
	Now func() time.Time
}

// Clock returns the current time.
func (s Services) Clock() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

// CallContext returns a context bounded by Timeout.
func (s Services) CallContext() (context.Context, context.CancelFunc) {
	if s.Timeout > 0 {
		return context.WithTimeout(context.Background(), s.Timeout)
	}
	return context.WithCancel(context.Background())
}
