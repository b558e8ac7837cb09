package event_bus

// UserDeleted is published after a user row is removed. Subscribers clean up
// the rows the user left behind (notes, tasks, feeds, credentials).
const UserDeleted EventType = "user.deleted"

type UserDeletedData struct {
	Uid string
}
