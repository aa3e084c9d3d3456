package api

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"intermarket/internal/logger"
	"intermarket/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ApiHandler struct {
	IntermarketService service.IntermarketService
}

func (m ApiHandler) InitializeRouterEngine() *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(m.logRequestMiddlware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to intermarket"})
	})
	router.POST("/correlations", m.calculateCorrelations)
	router.POST("/leaders", m.identifyLeaders)
	router.POST("/spillover", m.detectSpillover)
	router.POST("/network", m.getMarketNetwork)
	router.POST("/regime", m.analyzeMarketRegime)
	router.POST("/regimeCommentary", m.describeRegime)

	return router
}

func (m ApiHandler) StartApi(port int) error {
	return m.InitializeRouterEngine().Run(fmt.Sprintf(":%d", port))
}

func returnErrorJson(err error, c *gin.Context) {
	logger.FromContext(c).Warnf("request failed: %s", err.Error())
	c.AbortWithStatusJSON(500, gin.H{
		"error": err.Error(),
	})
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	logger.FromContext(c).Warnf("request failed: %s", err.Error())
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

// returnServiceError maps data-starved analyses to 422 so callers can tell
// "you asked for something the data can't answer" apart from a failure on
// our side.
func returnServiceError(err error, c *gin.Context) {
	var insufficientErr service.InsufficientDataError
	if errors.As(err, &insufficientErr) {
		returnErrorJsonCode(err, c, 422)
		return
	}
	returnErrorJson(err, c)
}

type responseBodyWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (r responseBodyWriter) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

func (m ApiHandler) logRequestMiddlware(ctx *gin.Context) {
	w := &responseBodyWriter{body: &bytes.Buffer{}, ResponseWriter: ctx.Writer}
	ctx.Writer = w

	requestID := uuid.New().String()
	lg := logger.New().With(
		"requestId", requestID,
		"method", ctx.Request.Method,
		"route", ctx.Request.URL.Path,
	)
	ctx.Set(logger.ContextKey, lg)
	ctx.Header("X-Request-Id", requestID)

	start := time.Now().UTC()
	ctx.Next()

	status := ctx.Writer.Status()
	lg = lg.With(
		"status", status,
		"durationMs", time.Since(start).Milliseconds(),
		"clientIp", ctx.ClientIP(),
	)
	if status >= 400 {
		lg.Warnw("request completed", "responseBody", w.body.String())
	} else {
		lg.Infow("request completed")
	}
}
