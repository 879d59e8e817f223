package bomberquest

import "errors"

var errNoLevels = errors.New("bomberquest: no levels found")

// messageTTL is how long a ticker message stays on screen, in seconds.
const messageTTL = 2.5

// maxMessages bounds the ticker backlog.
const maxMessages = 4

type message struct {
	text string
	ttl  float64
}

// messageLog is the in-game message ticker. The newest message is shown
// until it expires, then the previous one resumes.
type messageLog struct {
	items []message
}

func (l *messageLog) push(text string, ttl float64) {
	l.items = append(l.items, message{text: text, ttl: ttl})
	if len(l.items) > maxMessages {
		l.items = l.items[len(l.items)-maxMessages:]
	}
}

// advance ages every message and drops the expired ones.
func (l *messageLog) advance(dt float64) {
	kept := l.items[:0]
	for _, m := range l.items {
		m.ttl -= dt
		if m.ttl > 0 {
			kept = append(kept, m)
		}
	}
	l.items = kept
}

func (l *messageLog) current() string {
	if len(l.items) == 0 {
		return ""
	}
	return l.items[len(l.items)-1].text
}
