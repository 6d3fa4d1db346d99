package wire

import (
	"Minbar/internal/api"
	"Minbar/internal/api/config"
	"Minbar/internal/api/handler"
	"Minbar/internal/job"
	"Minbar/internal/pkg/cron"
	"Minbar/internal/pkg/kafka"
	"Minbar/internal/repository"
	"Minbar/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer bundles the top level components of the app.
type ApplicationContainer struct {
	Router   *gin.Engine
	DB       *gorm.DB
	CronMgr  *cron.Manager
	Producer *kafka.Producer
}

func BuildApplication(db *gorm.DB, cfg *config.Config) (*ApplicationContainer, error) {
	articleRepo := repository.NewArticleRepo(db)
	fatwaRepo := repository.NewFatwaRepo(db)
	bookRepo := repository.NewBookRepo(db)
	writerRepo := repository.NewWriterRepo(db)
	scholarRepo := repository.NewScholarRepo(db)
	tagRepo := repository.NewTagRepo(db)
	topicRepo := repository.NewTopicRepo(db)
	userRepo := repository.NewUserRepo(db)
	questionRepo := repository.NewQuestionRepo(db)
	qnaRepo := repository.NewQnaRepo(db)
	statsRepo := repository.NewStatsRepo(db)
	engagementRepo := repository.NewEngagementRepo(db)
	metricRepo := repository.NewEngagementMetricRepo(db)

	producer, err := kafka.NewProducer(cfg.Kafka)
	if err != nil {
		return nil, err
	}

	articleService := service.NewArticleService(articleRepo)
	fatwaService := service.NewFatwaService(fatwaRepo)
	bookService := service.NewBookService(bookRepo)
	writerService := service.NewWriterService(writerRepo)
	scholarService := service.NewScholarService(scholarRepo)
	tagService := service.NewTagService(tagRepo)
	topicService := service.NewTopicService(topicRepo)
	userService := service.NewUserService(userRepo)
	questionService := service.NewQuestionService(questionRepo)
	qnaService := service.NewQnaService(qnaRepo)
	statsService := service.NewStatsService(statsRepo)
	engagementService := service.NewEngagementService(engagementRepo, articleRepo, fatwaRepo, producer)
	metricService := service.NewEngagementMetricService(metricRepo)

	handlers := &api.HandlersGroup{
		ArticleHandler:    handler.NewArticleHandler(articleService),
		FatwaHandler:      handler.NewFatwaHandler(fatwaService),
		BookHandler:       handler.NewBookHandler(bookService),
		WriterHandler:     handler.NewWriterHandler(writerService),
		ScholarHandler:    handler.NewScholarHandler(scholarService),
		TagHandler:        handler.NewTagHandler(tagService),
		TopicHandler:      handler.NewTopicHandler(topicService),
		UserHandler:       handler.NewUserHandler(userService),
		QuestionHandler:   handler.NewQuestionHandler(questionService),
		QnaHandler:        handler.NewQnaHandler(qnaService),
		StatsHandler:      handler.NewStatsHandler(statsService),
		EngagementHandler: handler.NewEngagementHandler(engagementService, metricService),
	}

	router := api.SetupRouter(handlers)

	syncJob := job.NewEngagementSyncJob(engagementService, metricService)
	cronMgr := cron.NewCronManager(syncJob)

	return &ApplicationContainer{
		Router:   router,
		DB:       db,
		CronMgr:  cronMgr,
		Producer: producer,
	}, nil
}
