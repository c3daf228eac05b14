package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"careerquest/internal/service"
)

// NewRouter configura el router de Gin con middlewares y rutas.
func NewRouter(
	logger *zap.Logger,
	pool *pgxpool.Pool,
	jwtServ *service.JWTService,
	authH *AuthHandler,
	studentH *StudentHandler,
	assessH *AssessmentHandler,
) *gin.Engine {
	r := gin.New()

	// Middlewares basicos: logging, recovery y JSON content-type.
	r.Use(zapLoggerMiddleware(logger), gin.Recovery(), jsonContentTypeMiddleware())

	r.GET("/healthz", healthHandler(pool))

	auth := r.Group("/auth")
	auth.POST("/register", authH.Register)
	auth.POST("/login", authH.Login)
	auth.POST("/refresh", authH.Refresh)
	auth.POST("/logout", authH.Logout)
	auth.GET("/me", JWTAuthMiddleware(jwtServ), authH.Me)

	// La gestion de estudiantes es del counselor y requiere sesion.
	students := r.Group("/students", JWTAuthMiddleware(jwtServ))
	students.POST("", studentH.Create)
	students.GET("", studentH.List)
	students.GET("/:id", studentH.Get)
	students.DELETE("/:id", studentH.Delete)
	students.POST("/import", studentH.Import)
	students.POST("/bulk", studentH.Bulk)
	students.POST("/:id/photo", studentH.UploadPhoto)

	// El flujo de evaluacion corre en el kiosco sin login.
	r.POST("/capture", assessH.Capture)
	assessments := r.Group("/assessments")
	assessments.POST("", assessH.Start)
	assessments.GET("/recent", JWTAuthMiddleware(jwtServ), assessH.Recent)
	assessments.GET("/:id/avatar", assessH.Avatar)
	assessments.GET("/:id/question", assessH.Question)
	assessments.POST("/:id/answer", assessH.Answer)
	assessments.POST("/:id/advance", assessH.Advance)
	assessments.GET("/:id/results", assessH.Results)
	assessments.GET("/:id/report.pdf", assessH.ReportPDF)
	assessments.POST("/:id/email", assessH.EmailReport)
	assessments.DELETE("/:id", assessH.Clear)

	return r
}

// healthHandler responde 200 si la base contesta el ping.
func healthHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if pool != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := pool.Ping(ctx); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "error": "database unreachable"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// jsonContentTypeMiddleware fuerza Content-Type: application/json en responses.
func jsonContentTypeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json")
		c.Next()
	}
}
