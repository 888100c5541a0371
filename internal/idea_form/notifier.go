package ideaform

type NotificationKind string

const (
	NotificationSuccess NotificationKind = "success"
	NotificationError   NotificationKind = "error"
)

// Notification is the transient message shown when a submission settles.
type Notification struct {
	Kind        NotificationKind
	Title       string
	Description string
}

var (
	SuccessNotification = Notification{
		Kind:        NotificationSuccess,
		Title:       "Success!",
		Description: "Project title generated successfully.",
	}
	FailureNotification = Notification{
		Kind:        NotificationError,
		Title:       "Error!",
		Description: "Failed to generate project title.",
	}
)

type Notifier interface {
	Notify(Notification)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(Notification)

func (f NotifierFunc) Notify(n Notification) { f(n) }

type discardNotifier struct{}

func (discardNotifier) Notify(Notification) {}
