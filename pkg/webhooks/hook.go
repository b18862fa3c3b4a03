package webhooks

const (
	WebHookName   = "web"
	WebHookURLKey = "url"

	// legacy GitHub service hooks of Jenkins
	ServiceHookName   = "jenkins"
	ServiceHookURLKey = "jenkins_hook_url"
)

// Hook is a read-only snapshot of a remote repository hook.
type Hook struct {
	ID     int
	Name   string
	Config map[string]string
	Events EventSet
}
