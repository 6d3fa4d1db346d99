package api

import (
	"Minbar/internal/api/handler"
	"Minbar/internal/api/middleware"
	"Minbar/internal/pkg/consts"
	"Minbar/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "pong"})
		})

		articleGroup := apiGroup.Group("/articles")
		{
			articleGroup.GET("", group.ArticleHandler.ListArticles)
			articleGroup.GET("/:id", group.ArticleHandler.GetArticle)
			articleGroup.GET("/:id/cover", group.ArticleHandler.GetArticleCover)

			registerEngagement(articleGroup, group.EngagementHandler, consts.TargetArticle)

			authGroup := articleGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("", group.ArticleHandler.CreateArticle)
				authGroup.PUT("/:id", group.ArticleHandler.UpdateArticle)
				authGroup.DELETE("/:id", group.ArticleHandler.DeleteArticle)
			}
		}

		fatwaGroup := apiGroup.Group("/fatwas")
		{
			fatwaGroup.GET("", group.FatwaHandler.ListWebsiteFatwas)
			fatwaGroup.GET("/latest", group.FatwaHandler.LatestFatwas)
			fatwaGroup.GET("/search", group.FatwaHandler.SearchFatwas)
			fatwaGroup.GET("/:id", group.FatwaHandler.GetFatwa)
			fatwaGroup.POST("/submit", group.FatwaHandler.SubmitFatwa)

			registerEngagement(fatwaGroup, group.EngagementHandler, consts.TargetFatwa)

			authGroup := fatwaGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.GET("/dashboard", group.FatwaHandler.ListDashboardFatwas)
				authGroup.GET("/pending", group.FatwaHandler.ListPendingFatwas)
				authGroup.POST("", group.FatwaHandler.CreateFatwa)
				authGroup.POST("/:id/answer", group.FatwaHandler.AnswerFatwa)
				authGroup.PUT("/:id", group.FatwaHandler.UpdateFatwa)
				authGroup.DELETE("/:id", group.FatwaHandler.DeleteFatwa)
			}
		}

		bookGroup := apiGroup.Group("/books")
		{
			bookGroup.GET("", group.BookHandler.ListBooks)
			bookGroup.GET("/:id", group.BookHandler.GetBook)
			bookGroup.GET("/:id/cover", group.BookHandler.GetBookCover)
			bookGroup.GET("/:id/pdf", group.BookHandler.GetBookPdf)

			authGroup := bookGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("", group.BookHandler.CreateBook)
				authGroup.PUT("/:id/cover", group.BookHandler.ReplaceBookCover)
				authGroup.PUT("/:id/pdf", group.BookHandler.ReplaceBookPdf)
				authGroup.PUT("/:id", group.BookHandler.UpdateBook)
				authGroup.DELETE("/:id", group.BookHandler.DeleteBook)
			}
		}

		writerGroup := apiGroup.Group("/writers")
		{
			writerGroup.GET("", group.WriterHandler.ListWriters)
			writerGroup.GET("/:id", group.WriterHandler.GetWriter)
			writerGroup.GET("/:id/photo", group.WriterHandler.GetWriterPhoto)

			authGroup := writerGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("", group.WriterHandler.CreateWriter)
				authGroup.PUT("/:id", group.WriterHandler.UpdateWriter)
				authGroup.DELETE("/:id", group.WriterHandler.DeleteWriter)
			}
		}

		scholarGroup := apiGroup.Group("/scholars")
		{
			scholarGroup.GET("", group.ScholarHandler.ListScholars)
			scholarGroup.GET("/:id", group.ScholarHandler.GetScholar)
			scholarGroup.GET("/:id/portrait", group.ScholarHandler.GetScholarPortrait)

			authGroup := scholarGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("", group.ScholarHandler.CreateScholar)
				authGroup.PUT("/:id", group.ScholarHandler.UpdateScholar)
				authGroup.DELETE("/:id", group.ScholarHandler.DeleteScholar)
			}
		}

		tagGroup := apiGroup.Group("/tags")
		{
			tagGroup.GET("", group.TagHandler.ListTags)
			tagGroup.GET("/:id", group.TagHandler.GetTag)
			tagGroup.GET("/:id/cover", group.TagHandler.GetTagCover)

			authGroup := tagGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("", group.TagHandler.CreateTag)
				authGroup.PUT("/:id", group.TagHandler.UpdateTag)
				authGroup.DELETE("/:id", group.TagHandler.DeleteTag)
			}
		}

		topicGroup := apiGroup.Group("/topics")
		{
			topicGroup.GET("", group.TopicHandler.ListTopics)
			topicGroup.GET("/:id", group.TopicHandler.GetTopic)

			authGroup := topicGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("", group.TopicHandler.CreateTopic)
				authGroup.PUT("/:id", group.TopicHandler.UpdateTopic)
				authGroup.DELETE("/:id", group.TopicHandler.DeleteTopic)
			}
		}

		userGroup := apiGroup.Group("/users")
		{
			userGroup.POST("/login", group.UserHandler.Login)

			// User management is admin only.
			adminGroup := userGroup.Group("")
			adminGroup.Use(middleware.AuthMiddleware(), middleware.CheckRole(consts.RoleAdmin))
			{
				adminGroup.POST("", group.UserHandler.CreateUser)
				adminGroup.GET("", group.UserHandler.ListUsers)
				adminGroup.GET("/:id", group.UserHandler.GetUser)
				adminGroup.PUT("/:id", group.UserHandler.UpdateUser)
				adminGroup.DELETE("/:id", group.UserHandler.DeleteUser)
			}
		}

		questionGroup := apiGroup.Group("/questions")
		{
			questionGroup.POST("", group.QuestionHandler.SubmitQuestion)

			authGroup := questionGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.GET("", group.QuestionHandler.ListQuestions)
				authGroup.GET("/:id", group.QuestionHandler.GetQuestion)
				authGroup.POST("/:id/answer", group.QuestionHandler.AnswerQuestion)
				authGroup.DELETE("/:id", group.QuestionHandler.DeleteQuestion)
			}
		}

		qnaGroup := apiGroup.Group("/qna")
		{
			qnaGroup.GET("", group.QnaHandler.ListRecords)

			authGroup := qnaGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("", group.QnaHandler.AddRecord)
			}
		}

		statsGroup := apiGroup.Group("/stats")
		statsGroup.Use(middleware.AuthMiddleware())
		{
			statsGroup.GET("/totals", group.StatsHandler.GetTotals)
			statsGroup.GET("/latest", group.StatsHandler.GetLatest)
		}

		apiGroup.GET("/activity/recent", group.StatsHandler.GetRecentActivity)
	}

	return r
}

// registerEngagement mounts the anonymous engagement endpoints on a
// target group. Writes go through the visitor cookie and the per-IP
// rate limiter.
func registerEngagement(group *gin.RouterGroup, h *handler.EngagementHandler, kind string) {
	readGroup := group.Group("")
	readGroup.Use(middleware.AnonIDMiddleware())
	{
		readGroup.GET("/:id/like/me", h.LikeStatus(kind))
		readGroup.GET("/:id/engagement", h.GetCounts(kind))
	}

	writeGroup := group.Group("")
	writeGroup.Use(middleware.AnonIDMiddleware(), middleware.RateLimitMiddleware())
	{
		writeGroup.POST("/:id/view", h.RecordView(kind))
		writeGroup.POST("/:id/like", h.Like(kind))
		writeGroup.DELETE("/:id/like", h.Unlike(kind))
	}

	group.GET("/:id/engagement/7d", h.Trend7Days(kind))
	group.GET("/:id/engagement/30d", h.Trend30Days(kind))

	adminGroup := group.Group("")
	adminGroup.Use(middleware.AuthMiddleware(), middleware.CheckRole(consts.RoleAdmin))
	{
		adminGroup.POST("/:id/engagement/recount", h.Recount(kind))
	}
}
