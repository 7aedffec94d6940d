package delivery

import (
	"github.com/gen2brain/beeep"
	log "github.com/sirupsen/logrus"
)

type Notifier interface {
	Notify(title, message string) error
}

// DesktopNotifier shows the run outcome as a desktop notification.
type DesktopNotifier struct{}

func NewDesktopNotifier(appName string) *DesktopNotifier {
	beeep.AppName = appName
	return &DesktopNotifier{}
}

func (n *DesktopNotifier) Notify(title, message string) error {
	if err := beeep.Notify(title, message, ""); err != nil {
		log.Warnf("Desktop notification failed: %v", err)
		return err
	}
	return nil
}

type NoopNotifier struct{}

func (NoopNotifier) Notify(title, message string) error {
	return nil
}
