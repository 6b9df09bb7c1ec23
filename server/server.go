package server

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"doc_auto_formatter/config"
	"doc_auto_formatter/generator"
	"doc_auto_formatter/logger"
	"doc_auto_formatter/render"
)

const Version = "1.0.0"

const serviceName = "doc-auto-formatter"

type Server struct {
	pipeline *generator.Pipeline
	cfg      config.ServerConfig
	provider string
	store    *documentStore
	log      *logger.Logger
}

// ForcedLLMSettings returns the LLM settings the HTTP service runs with.
// server.force_provider, when set, overrides llm.provider so a client can
// never pick a billed backend.
func ForcedLLMSettings(cfg config.Config) generator.LLMSettings {
	provider := cfg.LLM.Provider
	if p := strings.TrimSpace(cfg.Server.ForceProvider); p != "" {
		provider = p
	}
	return generator.LLMSettings{
		Provider:   provider,
		Model:      cfg.LLM.Model,
		APIKey:     cfg.LLM.APIKey,
		BaseURL:    cfg.LLM.BaseURL,
		MaxRetries: cfg.LLM.MaxRetries,
		Timeout:    cfg.LLM.Timeout,
	}
}

// New builds a Server around pipeline. provider is only used to report
// which backend requests are actually served by.
func New(pipeline *generator.Pipeline, cfg config.ServerConfig, provider string, log *logger.Logger) (*Server, error) {
	if pipeline == nil {
		return nil, errors.New("generator pipeline required")
	}
	if log == nil {
		log = logger.Nop()
	}
	if cfg.GenerateTimeout <= 0 {
		cfg.GenerateTimeout = 60 * time.Second
	}
	return &Server{
		pipeline: pipeline,
		cfg:      cfg,
		provider: provider,
		store:    newDocumentStore(cfg.CacheTTL),
		log:      log,
	}, nil
}

func (s *Server) Routes() *gin.Engine {
	if s.cfg.Mode != "" {
		gin.SetMode(s.cfg.Mode)
	}

	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(gin.Recovery(), s.logMiddleware(), otelgin.Middleware(serviceName))

	origins := s.cfg.AllowOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:  origins,
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, errorResp("Method not allowed"))
	})
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, errorResp("Not found"))
	})

	api := r.Group("/api")
	{
		api.GET("", s.handleHealth)
		api.GET("/health", s.handleHealth)
		api.POST("", s.handleGenerate)
		api.POST("/generate", s.handleGenerate)
		api.GET("/documents/:id", s.handleDocument)
	}
	return r
}

// --- Handlers ---

type generateReq struct {
	Input           map[string]any `json:"input"`
	Format          string         `json:"format"`
	LLMProviderType string         `json:"llm_provider_type"`
}

type generateResp struct {
	Success    bool   `json:"success"`
	Document   string `json:"document"`
	Message    string `json:"message"`
	DocumentID string `json:"document_id,omitempty"`
}

type healthResp struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Version string `json:"version"`
}

type errResp struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func errorResp(msg string) errResp {
	return errResp{Success: false, Message: msg}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, healthResp{
		Success: true,
		Message: "Document Auto Formatter API is running",
		Version: Version,
	})
}

func (s *Server) handleGenerate(c *gin.Context) {
	var req generateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResp("잘못된 요청 형식입니다: "+err.Error()))
		return
	}
	if req.Input == nil {
		c.JSON(http.StatusBadRequest, errorResp("input 필드가 필요합니다."))
		return
	}
	format, err := render.ParseFormat(req.Format)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResp(err.Error()))
		return
	}
	if req.LLMProviderType != "" && !strings.EqualFold(req.LLMProviderType, s.provider) {
		s.log.Warn("client llm provider ignored", "requested", req.LLMProviderType, "forced", s.provider)
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), s.cfg.GenerateTimeout)
	defer cancel()
	doc, err := s.pipeline.Run(ctx, req.Input)
	if err != nil {
		s.log.Error("document generation failed", "error", err, "provider", s.provider)
		c.JSON(http.StatusInternalServerError, errorResp("서버 오류: "+err.Error()))
		return
	}
	out, err := render.Render(doc, format)
	if err != nil {
		s.log.Error("document render failed", "error", err, "format", string(format))
		c.JSON(http.StatusInternalServerError, errorResp("서버 오류: "+err.Error()))
		return
	}

	id := uuid.NewString()
	s.store.set(id, doc)
	c.JSON(http.StatusOK, generateResp{
		Success:    true,
		Document:   out,
		Message:    "문서가 성공적으로 생성되었습니다.",
		DocumentID: id,
	})
}

// handleDocument re-renders a cached document. With raw=true the rendered
// body is returned as-is instead of wrapped in JSON.
func (s *Server) handleDocument(c *gin.Context) {
	id := c.Param("id")
	doc, ok := s.store.get(id)
	if !ok {
		c.JSON(http.StatusNotFound, errorResp("문서를 찾을 수 없습니다."))
		return
	}
	format, err := render.ParseFormat(c.Query("format"))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResp(err.Error()))
		return
	}
	out, err := render.Render(doc, format)
	if err != nil {
		s.log.Error("document render failed", "error", err, "document_id", id)
		c.JSON(http.StatusInternalServerError, errorResp("서버 오류: "+err.Error()))
		return
	}
	if c.Query("raw") == "true" {
		c.Data(http.StatusOK, format.ContentType(), []byte(out))
		return
	}
	c.JSON(http.StatusOK, generateResp{Success: true, Document: out, DocumentID: id})
}

// --- Helpers ---

func (s *Server) logMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Info("http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
		)
	}
}
