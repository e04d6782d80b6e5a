package ws

import (
	"errors"
	"log"
	"net/http"
	"sync"
	"time"

	"pizzapalace/entity"
	"pizzapalace/repository"
	"pizzapalace/services"
	"pizzapalace/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// OrderFeed pushes status updates to clients watching an order.
// It implements services.StatusListener.
type OrderFeed struct {
	clients    map[string]map[*websocket.Conn]bool // order number -> connections
	updates    chan *entity.Order
	register   chan subscription
	unregister chan subscription
	done       chan struct{}
	mu         sync.Mutex
}

type subscription struct {
	conn   *websocket.Conn
	number string
}

type statusUpdate struct {
	Number    string             `json:"number"`
	Status    entity.OrderStatus `json:"status"`
	UpdatedAt time.Time          `json:"updatedAt"`
}

func NewOrderFeed() *OrderFeed {
	return &OrderFeed{
		clients:    make(map[string]map[*websocket.Conn]bool),
		updates:    make(chan *entity.Order, 64),
		register:   make(chan subscription),
		unregister: make(chan subscription),
		done:       make(chan struct{}),
	}
}

// Run owns the client map; call it in its own goroutine and Stop to
// shut down.
func (f *OrderFeed) Run() {
	for {
		select {
		case sub := <-f.register:
			f.mu.Lock()
			if f.clients[sub.number] == nil {
				f.clients[sub.number] = make(map[*websocket.Conn]bool)
			}
			f.clients[sub.number][sub.conn] = true
			f.mu.Unlock()

		case sub := <-f.unregister:
			f.mu.Lock()
			if _, ok := f.clients[sub.number][sub.conn]; ok {
				delete(f.clients[sub.number], sub.conn)
				sub.conn.Close()
			}
			f.mu.Unlock()

		case o := <-f.updates:
			msg := statusUpdate{Number: o.Number, Status: o.Status, UpdatedAt: o.UpdatedAt}
			f.mu.Lock()
			for conn := range f.clients[o.Number] {
				if err := conn.WriteJSON(msg); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(f.clients[o.Number], conn)
				}
			}
			f.mu.Unlock()

		case <-f.done:
			f.mu.Lock()
			for _, conns := range f.clients {
				for conn := range conns {
					conn.Close()
				}
			}
			f.clients = make(map[string]map[*websocket.Conn]bool)
			f.mu.Unlock()
			return
		}
	}
}

func (f *OrderFeed) Stop() {
	close(f.done)
}

// OrderUpdated never blocks; if the feed is saturated the update is
// dropped (clients can always GET the order).
func (f *OrderFeed) OrderUpdated(o *entity.Order) {
	select {
	case f.updates <- o:
	default:
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/orders/:number — auth middleware runs first, then the
// ownership check reuses the order service before upgrading.
func (f *OrderFeed) HandleWebSocket(svc *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		number := c.Param("number")
		uid := utils.CurrentUserID(c)

		if _, err := svc.GetByNumber(number, uid, utils.IsStaff(c)); err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, repository.ErrNotFound) {
				status = http.StatusNotFound
			} else if errors.Is(err, services.ErrForbidden) {
				status = http.StatusForbidden
			}
			c.JSON(status, gin.H{"ok": false, "error": err.Error()})
			return
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Printf("ws upgrade failed: %v", err)
			return
		}

		sub := subscription{conn: conn, number: number}
		f.register <- sub

		// read pump: only there to detect the close
		go func() {
			defer func() { f.unregister <- sub }()
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()
	}
}
