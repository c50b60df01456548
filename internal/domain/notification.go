package domain

// Event is the only shape that crosses the wire to a client.
type Event struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

// Audience selects how a notification is routed.
type Audience int

const (
	AudienceSocket Audience = iota + 1
	AudienceUser
	AudienceRoom
	AudienceServer
)

func (a Audience) String() string {
	switch a {
	case AudienceSocket:
		return "socket"
	case AudienceUser:
		return "user"
	case AudienceRoom:
		return "room"
	case AudienceServer:
		return "server"
	default:
		return "unknown"
	}
}

// Notification is a routing request produced by handlers and delivered by the hub.
type Notification struct {
	Audience Audience
	SocketID string
	UserID   string
	Room     LocationKey
	// Ignore lists socket IDs excluded from room and server deliveries.
	Ignore []string
	// From is the originating user; recipients ignoring From are skipped.
	From  string
	Event Event
}

func NotifySocket(socketID string, ev Event) Notification {
	return Notification{Audience: AudienceSocket, SocketID: socketID, Event: ev}
}

func NotifyUser(userID string, ev Event) Notification {
	return Notification{Audience: AudienceUser, UserID: userID, Event: ev}
}

func NotifyRoom(loc LocationKey, ev Event, ignore ...string) Notification {
	return Notification{Audience: AudienceRoom, Room: loc, Event: ev, Ignore: ignore}
}

func NotifyServer(ev Event, ignore ...string) Notification {
	return Notification{Audience: AudienceServer, Event: ev, Ignore: ignore}
}

// WithSender marks the notification as originating from userID.
func (n Notification) WithSender(userID string) Notification {
	n.From = userID
	return n
}
