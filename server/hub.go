package server

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"naca/deque"
	"naca/model"
)

// Hub 每个 websocket 连接一个，持有该会话的最近参数和历史
type Hub struct {
	id   uuid.UUID
	svc  *Service
	conn *websocket.Conn
	// request
	msg chan model.Msg
	// response
	reply chan model.Msg
	done  chan struct{}

	last    *model.AirfoilQuery
	history deque.Deque[model.HistoryItem]
}

func NewHub(svc *Service, conn *websocket.Conn, historySize int) *Hub {
	return &Hub{
		id:      uuid.New(),
		svc:     svc,
		conn:    conn,
		msg:     make(chan model.Msg, 10),
		reply:   make(chan model.Msg, 10),
		done:    make(chan struct{}),
		history: deque.NewArrDeque[model.HistoryItem](historySize),
	}
}

func (h *Hub) logger() *log.Entry {
	return log.WithField("session", h.id.String())
}

// handleRequest 处理请求，结果写入 reply
func (h *Hub) handleRequest() {
	defer close(h.reply)
	for msg := range h.msg {
		h.reply <- h.dispatch(msg)
	}
}

// handleResponse 将结果写回客户端
func (h *Hub) handleResponse() {
	defer close(h.done)
	for reply := range h.reply {
		if err := h.conn.WriteJSON(&reply); err != nil {
			h.logger().WithError(err).Warn("写回失败")
		}
	}
}

func (h *Hub) dispatch(msg model.Msg) model.Msg {
	switch msg.Type {
	case model.TypeParams:
		q, err := h.query(msg.Content)
		if err != nil {
			return errorMsg(err)
		}
		geo, err := h.svc.Geometry(q)
		if err != nil {
			return errorMsg(err)
		}
		h.last = &q
		h.record(model.HistoryItem{Designation: geo.Designation, Query: q})
		return jsonMsg(model.TypeGeometry, geo)
	case model.TypeExport:
		q := model.AirfoilQuery{}
		if msg.Content != "" {
			var err error
			if q, err = h.query(msg.Content); err != nil {
				return errorMsg(err)
			}
		} else if h.last != nil {
			q = *h.last
		}
		dat, err := h.svc.Dat(q)
		if err != nil {
			return errorMsg(err)
		}
		h.logger().WithField("file", dat.FileName).Info("导出 dat")
		return jsonMsg(model.TypeDat, dat)
	case model.TypeHistory:
		return jsonMsg(model.TypeHistory, h.history.Slice())
	default:
		h.logger().WithField("type", msg.Type).Warn("no such type")
		return errorMsg(fmt.Errorf("no such type %q", msg.Type))
	}
}

// record 追加历史；与上一条同一翼型时只保留最新的参数
func (h *Hub) record(item model.HistoryItem) {
	if n := h.history.Size(); n > 0 && h.history.Get(n-1).Designation == item.Designation {
		h.history.RemoveLast()
	}
	h.history.AddLast(item)
}

func (h *Hub) query(content string) (model.AirfoilQuery, error) {
	var q model.AirfoilQuery
	if content == "" {
		return q, nil
	}
	if err := json.Unmarshal([]byte(content), &q); err != nil {
		return q, err
	}
	if err := binding.Validator.ValidateStruct(&q); err != nil {
		return q, errors.New(describe(err))
	}
	return q, nil
}

func jsonMsg(typ string, v any) model.Msg {
	data, err := json.Marshal(v)
	if err != nil {
		return errorMsg(err)
	}
	return model.Msg{Type: typ, Content: string(data)}
}

func errorMsg(err error) model.Msg {
	return model.Msg{Type: model.TypeError, Content: err.Error()}
}
