package queue

// Sender publishes domain messages to a named queue.
type Sender interface {
	SendMessage(queueName string, body any) error
}
