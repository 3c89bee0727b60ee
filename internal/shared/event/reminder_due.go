package event

const ReminderDueDestination string = "reminder_due"
const ReminderDueConsumerNotifier string = "reminder_due_notifier"

type ReminderDueMessage struct {
	ReminderID int64  `json:"reminder_id"`
	Message    string `json:"message"`
	RemindAt   string `json:"remind_at"`
}
