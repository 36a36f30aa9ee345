package rabbitmq

// QueueConfig описывает очередь и ключ маршрутизации для exchange "notifications".
type QueueConfig struct {
	QueueName  string
	RoutingKey string
}

// UpcomingQueue — очередь напоминаний о счетах в окне напоминания.
const UpcomingQueue = "notifications.upcoming"

// OverdueQueue — очередь уведомлений о просроченных счетах.
const OverdueQueue = "notifications.overdue"

// GetNotificationQueues возвращает очереди уведомлений о счетах.
func GetNotificationQueues() []QueueConfig {
	return []QueueConfig{
		{QueueName: UpcomingQueue, RoutingKey: "upcoming"},
		{QueueName: OverdueQueue, RoutingKey: "overdue"},
	}
}
