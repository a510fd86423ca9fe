// Package notify rings the terminal bell and sends desktop notifications.
package notify

import (
	"github.com/gen2brain/beeep"
	"go.uber.org/zap"
)

// AppName is the application name shown on desktop notifications.
const AppName = "launchbox"

// Notifier rings the bell when completion finds nothing and reports launch
// failures that happen after the UI has closed.
type Notifier struct {
	bell   bool
	logger *zap.Logger

	beep   func(freq float64, duration int) error
	notify func(title, message string, icon any) error
}

// New creates a Notifier. When bell is false, Bell does nothing.
// The logger is optional (can be nil).
func New(bell bool, logger *zap.Logger) *Notifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	beeep.AppName = AppName
	return &Notifier{
		bell:   bell,
		logger: logger,
		beep:   beeep.Beep,
		notify: beeep.Notify,
	}
}

// Bell rings the bell if enabled. Failures are logged, never returned.
func (n *Notifier) Bell() {
	if !n.bell {
		return
	}
	if err := n.beep(beeep.DefaultFreq, beeep.DefaultDuration); err != nil {
		n.logger.Debug("failed to ring bell", zap.Error(err))
	}
}

// LaunchFailed shows a desktop notification for a command that could not
// be started.
func (n *Notifier) LaunchFailed(line string, cause error) {
	if err := n.notify(AppName, "Failed to run "+line+": "+cause.Error(), ""); err != nil {
		n.logger.Warn("failed to send notification", zap.Error(err))
	}
}
