package player

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net"
	"sync"

	"github.com/aschmelyun/tcut/log"
)

// observed lists the properties mpv pushes to the event listener.
var observed = []string{"time-pos", "duration", "pause", "idle-active"}

// EventListener keeps one connection open and receives property changes for
// the observed properties. Observers belong to the connection that registered
// them, so registration happens on the same connection that is read.
type EventListener struct {
	socketPath string
	handle     func(property string, data interface{})
	onClose    func()

	conn     net.Conn
	done     chan struct{}
	stopOnce sync.Once
}

// NewEventListener creates a listener. handle is called from the read goroutine
// for every property change; onClose runs once when the connection ends.
func NewEventListener(socketPath string, handle func(string, interface{}), onClose func()) *EventListener {
	return &EventListener{
		socketPath: socketPath,
		handle:     handle,
		onClose:    onClose,
		done:       make(chan struct{}),
	}
}

// Start registers the observers and begins reading.
func (el *EventListener) Start() error {
	conn, err := net.Dial("unix", el.socketPath)
	if err != nil {
		return fmt.Errorf("event listener connect: %w", err)
	}

	for i, name := range observed {
		payload, err := json.Marshal(ipcCommand{
			Command:   []interface{}{"observe_property", i + 1, name},
			RequestID: requestSeq.Add(1),
		})
		if err != nil {
			conn.Close()
			return fmt.Errorf("observe %s: %w", name, err)
		}
		if _, err := conn.Write(append(payload, '\n')); err != nil {
			conn.Close()
			return fmt.Errorf("observe %s: %w", name, err)
		}
	}

	el.conn = conn
	go el.readLoop()

	log.Infof("mpv event listener started on %s", el.socketPath)
	return nil
}

// Stop closes the connection and waits for the read loop to finish.
func (el *EventListener) Stop() {
	el.stopOnce.Do(func() {
		if el.conn != nil {
			el.conn.Close()
			<-el.done
		}
	})
}

func (el *EventListener) readLoop() {
	defer close(el.done)
	if el.onClose != nil {
		defer el.onClose()
	}

	scanner := bufio.NewScanner(el.conn)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		el.processEvent(scanner.Bytes())
	}

	if err := scanner.Err(); err != nil {
		log.Debugf("event listener stopped: %v", err)
	}
}

func (el *EventListener) processEvent(line []byte) {
	var msg ipcMessage
	if err := json.Unmarshal(line, &msg); err != nil {
		return
	}

	if msg.Event == "property-change" && msg.Name != "" && el.handle != nil {
		el.handle(msg.Name, msg.Data)
	}
}
