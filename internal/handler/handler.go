package handler

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/seb0305/aenigma-verborum/internal/models"
	"go.uber.org/zap"
)

type VocabularyServiceI interface {
	AddVocabulary(ctx context.Context, in models.NewVocabulary) (models.VocabularyItem, error)
	ListVocabulary(ctx context.Context, userID int64, filter models.VocabularyFilter) ([]models.VocabularyItem, error)
	UpdateVocabulary(ctx context.Context, userID, id int64, patch models.VocabularyPatch) (models.VocabularyItem, error)
	DeleteVocabulary(ctx context.Context, userID, id int64) error
}

type QuizServiceI interface {
	StartSession(ctx context.Context, userID int64) (int64, error)
	NextQuestion(ctx context.Context, userID int64, sessionID *int64) (models.Question, error)
	SubmitAnswer(ctx context.Context, userID, sessionID, itemID int64, answer string) (models.AnswerResult, error)
	FinishSession(ctx context.Context, userID, sessionID int64) error
	StartDrill(ctx context.Context, userID int64, category models.Category) (int64, error)
	NextDrillItem(ctx context.Context, userID int64, category models.Category) (models.DrillQuestion, error)
	SubmitDrillAnswer(ctx context.Context, userID int64, category models.Category, headword, inflection string) (models.AnswerResult, error)
}

type RewardServiceI interface {
	RewardCards(ctx context.Context, userID int64) ([]models.RewardCard, error)
}

type ServiceI interface {
	VocabularyServiceI
	QuizServiceI
	RewardServiceI
}

type Options struct {
	UserID      int64
	StaticDir   string
	CORSOrigins []string
}

type Handler struct {
	service ServiceI
	log     *zap.Logger
	opts    Options
}

func NewHandler(service ServiceI, log *zap.Logger, opts Options) *Handler {
	return &Handler{
		service: service,
		log:     log,
		opts:    opts,
	}
}

func (h *Handler) InitRoutes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestID(), h.accessLog())

	if len(h.opts.CORSOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:  h.opts.CORSOrigins,
			AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:  []string{"Content-Type", "Content-Length", "Accept", "Origin", requestIDHeader},
			ExposeHeaders: []string{"Content-Length", requestIDHeader},
			MaxAge:        12 * time.Hour,
		}))
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api", h.identity())
	{
		vocab := api.Group("/vocab")
		{
			vocab.GET("", h.listVocabulary)
			vocab.POST("", h.addVocabulary)
			vocab.PUT("/:id", h.updateVocabulary)
			vocab.DELETE("/:id", h.deleteVocabulary)
		}

		quiz := api.Group("/quiz")
		{
			quiz.POST("/start", h.startSession)
			quiz.GET("/next", h.nextQuestion)
			quiz.POST("/answer", h.submitAnswer)
			quiz.POST("/finish", h.finishSession)

			drill := quiz.Group("/drill/:category")
			{
				drill.POST("/start", h.startDrill)
				drill.GET("/next", h.nextDrillItem)
				drill.POST("/answer", h.submitDrillAnswer)
			}
		}

		api.GET("/cards", h.rewardCards)
	}

	if h.opts.StaticDir != "" {
		if _, err := os.Stat(h.opts.StaticDir); err == nil {
			r.StaticFile("/", h.opts.StaticDir+"/index.html")
			r.Static("/static", h.opts.StaticDir)
		} else {
			h.log.Warn("static dir not found, skipping", zap.String("dir", h.opts.StaticDir), zap.Error(err))
		}
	}

	return r
}
