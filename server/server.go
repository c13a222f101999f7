package server

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"naca/airfoil"
	"naca/config"
	"naca/model"
	"naca/render"
)

type Server struct {
	cfg      *config.Config
	svc      *Service
	upgrader websocket.Upgrader
	engine   *gin.Engine
}

func NewServer(cfg *config.Config) *Server {
	gin.SetMode(cfg.Server.Mode)
	s := &Server{
		cfg: cfg,
		svc: NewService(cfg),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
	if cfg.Server.AllowAllOrigins {
		s.upgrader.CheckOrigin = func(r *http.Request) bool {
			return true
		}
	}

	r := gin.New()
	r.Use(gin.Recovery(), accessLog())
	api := r.Group("/api")
	{
		api.GET("/airfoil", s.getAirfoil)
		api.GET("/airfoil/dat", s.getDat)
		api.GET("/airfoil/plot/:format", s.getPlot)
	}
	r.GET("/ws", s.serveWs)
	s.engine = r
	return s
}

// Handler exposes the routes, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) Serve() error {
	log.WithField("addr", s.cfg.Server.Addr).Info("服务启动")
	return s.engine.Run(s.cfg.Server.Addr)
}

func accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		log.WithFields(log.Fields{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
			"query":  c.Request.URL.RawQuery,
			"status": c.Writer.Status(),
		}).Info("request")
	}
}

func (s *Server) bindQuery(c *gin.Context) (model.AirfoilQuery, bool) {
	var q model.AirfoilQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": describe(err)})
		return q, false
	}
	return q, true
}

func (s *Server) getAirfoil(c *gin.Context) {
	q, ok := s.bindQuery(c)
	if !ok {
		return
	}
	geo, err := s.svc.Geometry(q)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, geo)
}

func (s *Server) getDat(c *gin.Context) {
	q, ok := s.bindQuery(c)
	if !ok {
		return
	}
	dat, err := s.svc.Dat(q)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", dat.FileName))
	c.Data(http.StatusOK, dat.MIMEType+"; charset=us-ascii", []byte(dat.Content))
}

func (s *Server) getPlot(c *gin.Context) {
	format := c.Param("format")
	mime, ok := render.Formats[format]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unsupported format " + format})
		return
	}
	q, ok := s.bindQuery(c)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := s.svc.Plot(&buf, q, format); err != nil {
		s.fail(c, err)
		return
	}
	c.Data(http.StatusOK, mime, buf.Bytes())
}

func (s *Server) fail(c *gin.Context, err error) {
	c.JSON(statusOf(err), gin.H{"error": err.Error()})
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, ErrSampleRange):
		return http.StatusBadRequest
	case errors.Is(err, airfoil.ErrSampleCount),
		errors.Is(err, airfoil.ErrCamberPosition),
		errors.Is(err, airfoil.ErrThickness):
		return http.StatusUnprocessableEntity
	default:
		log.WithError(err).Error("请求处理失败")
		return http.StatusInternalServerError
	}
}

// describe turns binding errors into one line per offending field.
func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: %v violates %s=%s", strings.ToLower(fe.Field()), fe.Value(), fe.Tag(), fe.Param()))
	}
	return strings.Join(msgs, "; ")
}

// serveWs handles websocket requests from the peer.
func (s *Server) serveWs(c *gin.Context) {
	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.WithError(err).Warn("websocket 升级失败")
		return
	}
	defer conn.Close()

	hub := NewHub(s.svc, conn, s.cfg.Session.HistorySize)
	hub.logger().Info("会话建立")
	go hub.handleRequest()
	go hub.handleResponse()

	for {
		var msg model.Msg
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				hub.logger().WithError(err).Warn("读取失败")
			}
			break
		}
		hub.msg <- msg
	}
	close(hub.msg)
	<-hub.done
	hub.logger().Info("会话结束")
}
